package convert

import (
	"math"

	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
)

// redefineComplementarityLinear rewrites  f(x) >= 0  ⊥  x >= 0  (f linear)
// as: f(x) >= 0 asserted directly, ComplVar's lower bound tightened to 0,
// and a disjunctive selector forcing exactly one side to zero:
//
//	b=1 => ComplVar == 0
//	b=0 => f(x) == 0
func (conv *Converter) redefineComplementarityLinear(c *constraint.ComplementarityLinear) error {
	args := c.Args()
	if err := conv.model.Var(c.ComplVar).TightenBounds(0, math.Inf(1)); err != nil {
		return err
	}

	row := append([]int{}, args...)
	rowCoefs := append([]float64{}, c.Coefs...)
	if _, err := conv.addLinConGE(row, rowCoefs, -c.Const); err != nil {
		return err
	}

	b, err := conv.redefineVariable(0, 1, flatconv.Integer)
	if err != nil {
		return err
	}

	complZero := constraint.NewIndicatorConstraintLinEQ(b.Index(), 1, []int{c.ComplVar}, []float64{1}, 0)
	if _, err := addGeneric(conv, conv.model.IndicatorLinEQ, complZero); err != nil {
		return err
	}
	fZero := constraint.NewIndicatorConstraintLinEQ(b.Index(), 0, args, c.Coefs, -c.Const)
	_, err = addGeneric(conv, conv.model.IndicatorLinEQ, fZero)
	return err
}

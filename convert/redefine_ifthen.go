package convert

import (
	"math"

	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
)

// redefineIfThen rewrites y = cond ? then : else as two indicators:
//
//	cond=1 => y == x[then]
//	cond=0 => y == x[else]
func (conv *Converter) redefineIfThen(c *constraint.IfThen) error {
	thenB, elseB := conv.varBounds(c.Then()), conv.varBounds(c.Else())
	lb := math.Min(thenB.LB, elseB.LB)
	ub := math.Max(thenB.UB, elseB.UB)
	y, err := conv.redefineVariable(lb, ub, flatconv.Continuous)
	if err != nil {
		return err
	}
	c.SetResultVar(y.Index())

	eqThen := constraint.NewIndicatorConstraintLinEQ(c.Cond(), 1, []int{y.Index(), c.Then()}, []float64{1, -1}, 0)
	if _, err := addGeneric(conv, conv.model.IndicatorLinEQ, eqThen); err != nil {
		return err
	}
	eqElse := constraint.NewIndicatorConstraintLinEQ(c.Cond(), 0, []int{y.Index(), c.Else()}, []float64{1, -1}, 0)
	_, err = addGeneric(conv, conv.model.IndicatorLinEQ, eqElse)
	return err
}

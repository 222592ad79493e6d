package convert

import (
	"math"

	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
	"github.com/costela/flatconv/model"
)

// redefineDiv rewrites y = x[Numerator] / x[Denominator] as the equivalent
// quadratic equality  y*den - num == 0, pushed as a QuadConEQ. Requires the
// denominator's domain to exclude zero; that is an invariant on Div's
// construction, not re-checked here.
func (conv *Converter) redefineDiv(c *constraint.Div) error {
	num, den := conv.varBounds(c.Numerator()), conv.varBounds(c.Denominator())
	lb, ub := divBounds(num, den)
	y, err := conv.redefineVariable(lb, ub, flatconv.Continuous)
	if err != nil {
		return err
	}
	c.SetResultVar(y.Index())

	eq := constraint.NewQuadConEQ(
		[]int{c.Numerator()}, []float64{-1},
		[]constraint.QuadTerm{{Row: y.Index(), Col: c.Denominator(), Coef: 1}},
		0,
	)
	_, err = addGeneric(conv, conv.model.QuadConEQ, eq)
	return err
}

func divBounds(num, den model.Bounds) (float64, float64) {
	var corners []float64
	for _, n := range []float64{num.LB, num.UB} {
		for _, d := range []float64{den.LB, den.UB} {
			if d != 0 {
				corners = append(corners, n/d)
			}
		}
	}
	if len(corners) == 0 {
		return math.Inf(-1), math.Inf(1)
	}
	lb, ub := corners[0], corners[0]
	for _, v := range corners[1:] {
		if v < lb {
			lb = v
		}
		if v > ub {
			ub = v
		}
	}
	return lb, ub
}

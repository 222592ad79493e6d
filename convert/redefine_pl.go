package convert

import (
	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
)

// redefinePL rewrites y = pwl(x[Arg]) via the lambda method: one weight
// variable per breakpoint, summing to 1, SOS2-constrained so at most two
// *consecutive* weights are nonzero, with x and y recovered as the
// weighted combination of breakpoint coordinates.
func (conv *Converter) redefinePL(c *constraint.PLConstraint) error {
	n := len(c.Breakpoints)
	lambdas := make([]int, n)
	weights := make([]float64, n)
	for i := range c.Breakpoints {
		v, err := conv.redefineVariable(0, 1, flatconv.Continuous)
		if err != nil {
			return err
		}
		lambdas[i] = v.Index()
		weights[i] = float64(i + 1)
	}

	if _, err := conv.addSOS2(lambdas, weights); err != nil {
		return err
	}

	onesCoefs := make([]float64, n)
	for i := range onesCoefs {
		onesCoefs[i] = 1
	}
	if _, err := conv.addLinConEQ(lambdas, onesCoefs, 1); err != nil {
		return err
	}

	xCoefs := make([]float64, n)
	yCoefs := make([]float64, n)
	yLB, yUB := c.Breakpoints[0].Y, c.Breakpoints[0].Y
	for i, bp := range c.Breakpoints {
		xCoefs[i] = bp.X
		yCoefs[i] = bp.Y
		if bp.Y < yLB {
			yLB = bp.Y
		}
		if bp.Y > yUB {
			yUB = bp.Y
		}
	}
	xVars := append([]int{c.Arg()}, lambdas...)
	xRow := append([]float64{-1}, xCoefs...)
	if _, err := conv.addLinConEQ(xVars, xRow, 0); err != nil {
		return err
	}

	y, err := conv.redefineVariable(yLB, yUB, flatconv.Continuous)
	if err != nil {
		return err
	}
	c.SetResultVar(y.Index())

	yVars := append([]int{y.Index()}, lambdas...)
	yRow := append([]float64{-1}, yCoefs...)
	_, err = conv.addLinConEQ(yVars, yRow, 0)
	return err
}

// redefineSOS1 and redefineSOS2 are the dispatch targets for ModelAPIs
// that reject SOS natively; both rewrite to the big-M binary formulation
// of redefineSOSBigM.
func (conv *Converter) redefineSOS1(c *constraint.SOS1) error {
	return conv.redefineSOSBigM(c.Args(), 1)
}

func (conv *Converter) redefineSOS2(c *constraint.SOS2) error {
	return conv.redefineSOSBigM(c.Args(), 2)
}

// redefineSOSBigM rewrites an SOS-k constraint (k is 1 or 2) as one binary
// selector per argument plus a cardinality row (at most k selectors may be
// 1); for k == 2 every pair of non-neighbouring selectors also gets a row
// allowing at most one of them, so the selected members are consecutive
// in argument order. A variable may only be nonzero while its selector is
// 1 (enforced via indicator equalities to zero).
func (conv *Converter) redefineSOSBigM(args []int, k int) error {
	sel := make([]int, len(args))
	for i, a := range args {
		b, err := conv.redefineVariable(0, 1, flatconv.Integer)
		if err != nil {
			return err
		}
		sel[i] = b.Index()
		zero := constraint.NewIndicatorConstraintLinEQ(b.Index(), 0, []int{a}, []float64{1}, 0)
		if _, err := addGeneric(conv, conv.model.IndicatorLinEQ, zero); err != nil {
			return err
		}
	}
	coefs := make([]float64, len(sel))
	for i := range coefs {
		coefs[i] = 1
	}
	if _, err := conv.addLinConLE(sel, coefs, float64(k)); err != nil || k != 2 {
		return err
	}
	// SOS2: two selected members must be neighbours in argument order.
	for i := range sel {
		for j := i + 2; j < len(sel); j++ {
			if _, err := conv.addLinConLE([]int{sel[i], sel[j]}, []float64{1, 1}, 1); err != nil {
				return err
			}
		}
	}
	return nil
}

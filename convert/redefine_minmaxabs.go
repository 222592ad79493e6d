package convert

import (
	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
)

// redefineAbs rewrites y = |x[arg]| as: y >= x, y >= -x (lower-bounding
// rows, always valid and sufficient whenever y only appears with a
// minimizing sense), plus an exact tie via one binary selector so y is
// correct even when some other constraint pushes it down:
//
//	b=1 => y ==  x
//	b=0 => y == -x
func (conv *Converter) redefineAbs(c *constraint.Abs) error {
	arg := c.Args()[0]
	bnds := absBounds(conv, arg)
	y, err := conv.redefineVariable(bnds.LB, bnds.UB, flatconv.Continuous)
	if err != nil {
		return err
	}
	c.SetResultVar(y.Index())

	if _, err := conv.addLinConGE([]int{y.Index(), arg}, []float64{1, -1}, 0); err != nil {
		return err
	}
	if _, err := conv.addLinConGE([]int{y.Index(), arg}, []float64{1, 1}, 0); err != nil {
		return err
	}

	b, err := conv.redefineVariable(0, 1, flatconv.Integer)
	if err != nil {
		return err
	}
	eq1 := constraint.NewIndicatorConstraintLinEQ(b.Index(), 1, []int{y.Index(), arg}, []float64{1, -1}, 0)
	eq0 := constraint.NewIndicatorConstraintLinEQ(b.Index(), 0, []int{y.Index(), arg}, []float64{1, 1}, 0)
	if _, err := addGeneric(conv, conv.model.IndicatorLinEQ, eq1); err != nil {
		return err
	}
	if _, err := addGeneric(conv, conv.model.IndicatorLinEQ, eq0); err != nil {
		return err
	}
	return nil
}

// redefineMax rewrites y = max(x[args]) as y >= x[i] for every i (the
// lower-bounding rows every LP relaxation needs) plus one indicator per
// argument asserting equality when that argument is the selected maximum,
// guarded by a one-hot selector so exactly one indicator is active.
func (conv *Converter) redefineMax(c *constraint.Max) error {
	args := c.Args()
	bnds := maxBounds(conv, args)
	y, err := conv.redefineVariable(bnds.LB, bnds.UB, flatconv.Continuous)
	if err != nil {
		return err
	}
	c.SetResultVar(y.Index())

	sel := make([]int, len(args))
	for i, a := range args {
		if _, err := conv.addLinConGE([]int{y.Index(), a}, []float64{1, -1}, 0); err != nil {
			return err
		}
		b, err := conv.redefineVariable(0, 1, flatconv.Integer)
		if err != nil {
			return err
		}
		sel[i] = b.Index()
		eq := constraint.NewIndicatorConstraintLinEQ(b.Index(), 1, []int{y.Index(), a}, []float64{1, -1}, 0)
		if _, err := addGeneric(conv, conv.model.IndicatorLinEQ, eq); err != nil {
			return err
		}
	}
	selCoefs := make([]float64, len(sel))
	for i := range selCoefs {
		selCoefs[i] = 1
	}
	_, err = conv.addLinConEQ(sel, selCoefs, 1)
	return err
}

// redefineMin mirrors redefineMax with the inequality direction reversed.
func (conv *Converter) redefineMin(c *constraint.Min) error {
	args := c.Args()
	bnds := minBounds(conv, args)
	y, err := conv.redefineVariable(bnds.LB, bnds.UB, flatconv.Continuous)
	if err != nil {
		return err
	}
	c.SetResultVar(y.Index())

	sel := make([]int, len(args))
	for i, a := range args {
		if _, err := conv.addLinConLE([]int{y.Index(), a}, []float64{1, -1}, 0); err != nil {
			return err
		}
		b, err := conv.redefineVariable(0, 1, flatconv.Integer)
		if err != nil {
			return err
		}
		sel[i] = b.Index()
		eq := constraint.NewIndicatorConstraintLinEQ(b.Index(), 1, []int{y.Index(), a}, []float64{1, -1}, 0)
		if _, err := addGeneric(conv, conv.model.IndicatorLinEQ, eq); err != nil {
			return err
		}
	}
	selCoefs := make([]float64, len(sel))
	for i := range selCoefs {
		selCoefs[i] = 1
	}
	_, err = conv.addLinConEQ(sel, selCoefs, 1)
	return err
}

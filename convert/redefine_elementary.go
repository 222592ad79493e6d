package convert

import (
	"math"

	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
)

// elementaryArg is the narrow view every single-argument elementary
// nonlinear constraint type exposes.
type elementaryArg interface {
	constraint.Constraint
	constraint.ResultSetter
	Arg() int
}

// redefineElementary rewrites any of Exp/ExpA/Log/LogA/Pow/Sin/Cos/Tan as a
// PLConstraint, sampling the underlying function over the argument's
// current bounds. The resulting PLConstraint is appended to its own
// keeper and picked up by the next conversion pass (redefinePL), so the
// nonlinear function never needs its own ModelAPI-facing rewrite target.
func (conv *Converter) redefineElementary(c constraint.Constraint) error {
	e, ok := c.(elementaryArg)
	if !ok {
		return flatconv.NewConstraintConversionError(c.TypeName(), conv.api.Name())
	}
	f, err := elementaryFunc(c)
	if err != nil {
		return err
	}
	bnds := conv.varBounds(e.Arg())
	if math.IsInf(bnds.LB, -1) || math.IsInf(bnds.UB, 1) {
		return flatconv.NewUnboundedBigMError(c.TypeName())
	}

	const samples = 16
	breakpoints := make([]constraint.Breakpoint, 0, samples+1)
	step := (bnds.UB - bnds.LB) / float64(samples)
	for i := 0; i <= samples; i++ {
		x := bnds.LB + float64(i)*step
		breakpoints = append(breakpoints, constraint.Breakpoint{X: x, Y: f(x)})
	}

	pl := constraint.NewPLConstraint(e.Arg(), breakpoints)
	idx, err := addGeneric(conv, conv.model.PLConstraint, pl)
	if err != nil {
		return err
	}
	item := conv.model.PLConstraint.Get(idx)
	if v, ok := item.ResultVar(); ok {
		e.SetResultVar(v)
		return nil
	}
	yLB, yUB := breakpoints[0].Y, breakpoints[0].Y
	for _, bp := range breakpoints[1:] {
		if bp.Y < yLB {
			yLB = bp.Y
		}
		if bp.Y > yUB {
			yUB = bp.Y
		}
	}
	y, err := conv.redefineVariable(yLB, yUB, flatconv.Continuous)
	if err != nil {
		return err
	}
	item.SetResultVar(y.Index())
	e.SetResultVar(y.Index())
	return nil
}

func elementaryFunc(c constraint.Constraint) (func(float64) float64, error) {
	switch t := c.(type) {
	case *constraint.Exp:
		return math.Exp, nil
	case *constraint.ExpA:
		base := t.Param
		return func(x float64) float64 { return math.Pow(base, x) }, nil
	case *constraint.Log:
		return math.Log, nil
	case *constraint.LogA:
		base := t.Param
		return func(x float64) float64 { return math.Log(x) / math.Log(base) }, nil
	case *constraint.Pow:
		exp := t.Param
		return func(x float64) float64 { return math.Pow(x, exp) }, nil
	case *constraint.Sin:
		return math.Sin, nil
	case *constraint.Cos:
		return math.Cos, nil
	case *constraint.Tan:
		return math.Tan, nil
	default:
		return nil, flatconv.NewConstraintConversionError(c.TypeName(), "")
	}
}

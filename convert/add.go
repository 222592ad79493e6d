package convert

import (
	"math"

	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
	"github.com/costela/flatconv/keeper"
	"github.com/costela/flatconv/model"
)

// addGeneric is the single chokepoint every typed Add* helper funnels
// through: consult the keeper's dedup map first (MapFind), and only
// Add a fresh item on a genuine miss. Every call records its NodeRange
// into the currently-open autolink scope, if any.
func addGeneric[C constraint.Constraint](conv *Converter, k *keeper.Keeper[C], c C) (int, error) {
	if existing, ok := k.MapFind(c); ok {
		conv.recordTarget(k.SelectValueNodeRange(existing))
		return existing, nil
	}
	idx, err := k.Add(c)
	if err != nil {
		return 0, err
	}
	conv.recordTarget(k.SelectValueNodeRange(idx))
	return idx, nil
}

// assignResult2Args allocates (or reuses, via dedup) a result variable for
// a functional constraint c, computing fresh bounds/type from bnds/typ and
// attaching the variable through constraint.ResultSetter. Per-type
// redefinition rules call this once they've picked the concrete C to add.
func assignResult2Args[C interface {
	constraint.Constraint
	constraint.ResultSetter
}](conv *Converter, k *keeper.Keeper[C], c C, bnds model.Bounds, typ flatconv.VarType) (*flatconv.Variable, int, error) {
	idx, err := addGeneric(conv, k, c)
	if err != nil {
		return nil, 0, err
	}
	// On a dedup hit, item is the pre-existing structurally-equal
	// constraint, which already carries a result variable below.
	item := k.Get(idx)
	if v, ok := item.ResultVar(); ok {
		return conv.model.Var(v), v, nil
	}
	v, err := conv.model.AddDefinedVar(typ, bnds.LB, bnds.UB)
	if err != nil {
		return nil, 0, err
	}
	item.SetResultVar(v.Index())
	v.SetInitExpr(k.TypeName(), idx)
	return v, v.Index(), nil
}

// convert2Var materializes an affine combination of variables as a single
// variable, via a LinearFunctionalConstraint, returning the existing
// result variable if an equal expression has already been materialized.
func (conv *Converter) convert2Var(vars []int, coefs []float64, constant float64) (*flatconv.Variable, error) {
	c := constraint.NewLinearFunctionalConstraint(vars, coefs, constant)
	lb, ub := affineBounds(conv, vars, coefs, constant)
	v, _, err := assignResult2Args(conv, conv.model.LinearFunctional, c, model.Bounds{LB: lb, UB: ub}, flatconv.Continuous)
	return v, err
}

// affineBounds computes interval-arithmetic bounds for
// sum(coefs[i]*x[vars[i]]) + constant, used to bound freshly materialized
// linear-functional result variables.
func affineBounds(conv *Converter, vars []int, coefs []float64, constant float64) (float64, float64) {
	lb, ub := constant, constant
	for i, vi := range vars {
		v := conv.model.Var(vi)
		l, u := v.Bounds()
		c := coefs[i]
		if c >= 0 {
			lb += c * l
			ub += c * u
		} else {
			lb += c * u
			ub += c * l
		}
	}
	return lb, ub
}

// fixAsTrue asserts binary variable v must equal 1, by tightening its
// bounds to [1,1]. Used by redefinition rules that assert a boolean result
// directly (ContextPositive And) rather than linearizing it.
func (conv *Converter) fixAsTrue(v int) error {
	return conv.model.Var(v).SetBounds(1, 1)
}

// fixAsFalse is the Not-analogue of fixAsTrue.
func (conv *Converter) fixAsFalse(v int) error {
	return conv.model.Var(v).SetBounds(0, 0)
}

// redefineVariable allocates a fresh variable with the given bounds/type.
// It records nothing in the enclosing autolink scope: variables have no
// value node, so only the constraints a rule adds are linked.
func (conv *Converter) redefineVariable(lb, ub float64, typ flatconv.VarType) (*flatconv.Variable, error) {
	v, err := conv.model.AddDefinedVar(typ, lb, ub)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// addLinConLE/GE/EQ/Range and their quadratic counterparts are the plain
// (non-dedupable, non-functional) algebraic Add* helpers redefinition
// rules use to push rewritten rows.

func (conv *Converter) addLinConLE(vars []int, coefs []float64, rhs float64) (int, error) {
	return addGeneric(conv, conv.model.LinConLE, constraint.NewLinConLE(vars, coefs, rhs))
}
func (conv *Converter) addLinConGE(vars []int, coefs []float64, rhs float64) (int, error) {
	return addGeneric(conv, conv.model.LinConGE, constraint.NewLinConGE(vars, coefs, rhs))
}
func (conv *Converter) addLinConEQ(vars []int, coefs []float64, rhs float64) (int, error) {
	return addGeneric(conv, conv.model.LinConEQ, constraint.NewLinConEQ(vars, coefs, rhs))
}
func (conv *Converter) addLinConRange(vars []int, coefs []float64, lb, ub float64) (int, error) {
	return addGeneric(conv, conv.model.LinConRange, constraint.NewLinConRange(vars, coefs, lb, ub))
}

func (conv *Converter) addSOS1(vars []int, weights []float64) (int, error) {
	return addGeneric(conv, conv.model.SOS1, constraint.NewSOS1(vars, weights))
}
func (conv *Converter) addSOS2(vars []int, weights []float64) (int, error) {
	return addGeneric(conv, conv.model.SOS2, constraint.NewSOS2(vars, weights))
}

// bigM computes a valid big-M constant for bounding an affine expression
// sum(coefs[i]*x[vars[i]]) against rhs, as ub - rhs (or rhs - lb), per the
// worked examples' convention. Returns an error if any referenced variable
// is unbounded on the needed side.
func bigM(conv *Converter, vars []int, coefs []float64, rhs float64, typeName string) (float64, error) {
	lb, ub := affineBounds(conv, vars, coefs, 0)
	if math.IsInf(ub, 1) || math.IsInf(lb, -1) {
		return 0, flatconv.NewUnboundedBigMError(typeName)
	}
	m := ub - rhs
	if alt := rhs - lb; alt > m {
		m = alt
	}
	return m, nil
}

package flatconv

import "math"

// VarType is a variable's domain: continuous or integer. Binary variables
// are simply Integer variables bounded to [0,1]; unlike the teacher's
// cgo-bound Model, flatconv has no separate BinaryVariable kind, since
// nothing downstream treats binary columns differently once bounds are
// known.
type VarType int

const (
	Continuous VarType = iota
	Integer
)

// InitExpr identifies the functional constraint whose result variable a
// Variable is. At most one InitExpr may be attached to a variable; it is
// replaced only by SetInitExpr.
type InitExpr struct {
	Keeper string // keeper name, e.g. "Abs"
	Index  int
}

// Variable is a column in the flat model: a non-negative integer index,
// extended-real bounds, a type, and an optional init expression.
type Variable struct {
	index int
	lb, ub float64
	typ    VarType
	init   *InitExpr
}

// NewVariable constructs a variable with the given index and default
// bounds of [-inf, +inf], mirroring golpa's AddVariable default of an
// unbounded continuous column.
func NewVariable(index int) *Variable {
	return &Variable{index: index, lb: math.Inf(-1), ub: math.Inf(1)}
}

func (v *Variable) Index() int { return v.index }

func (v *Variable) Type() VarType { return v.typ }

func (v *Variable) SetType(t VarType) { v.typ = t }

// Bounds returns the variable's current lower and upper bounds.
func (v *Variable) Bounds() (lower, upper float64) { return v.lb, v.ub }

// SetBounds narrows or widens the variable's bounds. Unlike golpa's
// SetBounds (which hands infinities straight to the native solver), this
// checks lb <= ub immediately: a model requiring lb > ub is infeasible
// before any solve is attempted, per the domain's InfeasibleDomain error
// kind.
func (v *Variable) SetBounds(lower, upper float64) error {
	if lower > upper {
		return NewInfeasibleDomainError(v.index, lower, upper)
	}
	v.lb, v.ub = lower, upper
	return nil
}

// TightenBounds narrows the variable's bounds to the intersection of its
// current bounds and [lower, upper]. Bounds only ever narrow during
// conversion (Testable Property 3: lb never decreases, ub never increases).
func (v *Variable) TightenBounds(lower, upper float64) error {
	newLB := math.Max(v.lb, lower)
	newUB := math.Min(v.ub, upper)
	return v.SetBounds(newLB, newUB)
}

// InitExprRef returns the functional constraint defining this variable's
// value, if any.
func (v *Variable) InitExprRef() (InitExpr, bool) {
	if v.init == nil {
		return InitExpr{}, false
	}
	return *v.init, true
}

// SetInitExpr replaces the variable's init expression. Used by
// assignResult2Args (package convert) when it allocates a fresh result
// variable.
func (v *Variable) SetInitExpr(keeper string, index int) {
	v.init = &InitExpr{Keeper: keeper, Index: index}
}

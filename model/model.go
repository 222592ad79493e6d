// Package model implements FlatModel: the working model being built and
// converted — variables, objectives, and one ConstraintKeeper per
// constraint type, iterated in a fixed registration order for
// reproducibility of generated auxiliary-variable indices.
package model

import (
	"math"

	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
	"github.com/costela/flatconv/keeper"
)

// FlatModel owns every variable and constraint pool in the model being
// converted. FinishModelInput marks it frozen (see Frozen); keepers and
// variables do not consult that flag, so items can still be added and
// bounds changed afterwards.
type FlatModel struct {
	vars      []*flatconv.Variable
	fixedVars map[float64]int

	objCoefs map[int]float64 // iobj 0 linear coefficients, keyed by variable
	objQuad  []constraint.QuadTerm
	maximize bool

	frozen bool

	// Keepers, in fixed registration order. Round-robin conversion
	// iterates this slice; index generation order (and therefore
	// auxiliary-variable numbering) depends on it, so it must never be
	// reordered once established.
	keepers []keeper.AnyKeeper

	LinConLE   *keeper.Keeper[*constraint.LinConLE]
	LinConGE   *keeper.Keeper[*constraint.LinConGE]
	LinConEQ   *keeper.Keeper[*constraint.LinConEQ]
	LinConRange *keeper.Keeper[*constraint.LinConRange]

	QuadConLE    *keeper.Keeper[*constraint.QuadConLE]
	QuadConGE    *keeper.Keeper[*constraint.QuadConGE]
	QuadConEQ    *keeper.Keeper[*constraint.QuadConEQ]
	QuadConRange *keeper.Keeper[*constraint.QuadConRange]

	LinearFunctional    *keeper.Keeper[*constraint.LinearFunctionalConstraint]
	QuadraticFunctional *keeper.Keeper[*constraint.QuadraticFunctionalConstraint]

	Max *keeper.Keeper[*constraint.Max]
	Min *keeper.Keeper[*constraint.Min]
	Abs *keeper.Keeper[*constraint.Abs]
	And *keeper.Keeper[*constraint.And]
	Or  *keeper.Keeper[*constraint.Or]
	Not *keeper.Keeper[*constraint.Not]
	Div *keeper.Keeper[*constraint.Div]

	IfThen *keeper.Keeper[*constraint.IfThen]

	CondLinConEQ *keeper.Keeper[*constraint.CondLinConEQ]
	CondLinConLE *keeper.Keeper[*constraint.CondLinConLE]
	CondLinConLT *keeper.Keeper[*constraint.CondLinConLT]
	CondLinConGE *keeper.Keeper[*constraint.CondLinConGE]
	CondLinConGT *keeper.Keeper[*constraint.CondLinConGT]

	CondQuadConEQ *keeper.Keeper[*constraint.CondQuadConEQ]
	CondQuadConLE *keeper.Keeper[*constraint.CondQuadConLE]
	CondQuadConLT *keeper.Keeper[*constraint.CondQuadConLT]
	CondQuadConGE *keeper.Keeper[*constraint.CondQuadConGE]
	CondQuadConGT *keeper.Keeper[*constraint.CondQuadConGT]

	Count         *keeper.Keeper[*constraint.Count]
	NumberofConst *keeper.Keeper[*constraint.NumberofConst]
	NumberofVar   *keeper.Keeper[*constraint.NumberofVar]
	AllDiff       *keeper.Keeper[*constraint.AllDiff]

	Exp  *keeper.Keeper[*constraint.Exp]
	ExpA *keeper.Keeper[*constraint.ExpA]
	Log  *keeper.Keeper[*constraint.Log]
	LogA *keeper.Keeper[*constraint.LogA]
	Pow  *keeper.Keeper[*constraint.Pow]
	Sin  *keeper.Keeper[*constraint.Sin]
	Cos  *keeper.Keeper[*constraint.Cos]
	Tan  *keeper.Keeper[*constraint.Tan]

	IndicatorLinLE  *keeper.Keeper[*constraint.IndicatorConstraintLinLE]
	IndicatorLinEQ  *keeper.Keeper[*constraint.IndicatorConstraintLinEQ]
	IndicatorLinGE  *keeper.Keeper[*constraint.IndicatorConstraintLinGE]
	IndicatorQuadLE *keeper.Keeper[*constraint.IndicatorConstraintQuadLE]
	IndicatorQuadEQ *keeper.Keeper[*constraint.IndicatorConstraintQuadEQ]
	IndicatorQuadGE *keeper.Keeper[*constraint.IndicatorConstraintQuadGE]

	SOS1 *keeper.Keeper[*constraint.SOS1]
	SOS2 *keeper.Keeper[*constraint.SOS2]

	ComplementarityLinear    *keeper.Keeper[*constraint.ComplementarityLinear]
	ComplementarityQuadratic *keeper.Keeper[*constraint.ComplementarityQuadratic]

	PLConstraint *keeper.Keeper[*constraint.PLConstraint]
}

// New builds an empty FlatModel with every keeper registered, in the fixed
// order above.
func New(maximize bool) *FlatModel {
	m := &FlatModel{
		fixedVars: make(map[float64]int),
		objCoefs:  make(map[int]float64),
		maximize:  maximize,
	}

	m.LinConLE = keeper.New[*constraint.LinConLE]("LinConLE", false)
	m.LinConGE = keeper.New[*constraint.LinConGE]("LinConGE", false)
	m.LinConEQ = keeper.New[*constraint.LinConEQ]("LinConEQ", false)
	m.LinConRange = keeper.New[*constraint.LinConRange]("LinConRange", false)

	m.QuadConLE = keeper.New[*constraint.QuadConLE]("QuadConLE", false)
	m.QuadConGE = keeper.New[*constraint.QuadConGE]("QuadConGE", false)
	m.QuadConEQ = keeper.New[*constraint.QuadConEQ]("QuadConEQ", false)
	m.QuadConRange = keeper.New[*constraint.QuadConRange]("QuadConRange", false)

	m.LinearFunctional = keeper.New[*constraint.LinearFunctionalConstraint]("LinearFunctionalConstraint", true)
	m.QuadraticFunctional = keeper.New[*constraint.QuadraticFunctionalConstraint]("QuadraticFunctionalConstraint", true)

	m.Max = keeper.New[*constraint.Max]("Max", true)
	m.Min = keeper.New[*constraint.Min]("Min", true)
	m.Abs = keeper.New[*constraint.Abs]("Abs", true)
	m.And = keeper.New[*constraint.And]("And", true)
	m.Or = keeper.New[*constraint.Or]("Or", true)
	m.Not = keeper.New[*constraint.Not]("Not", true)
	m.Div = keeper.New[*constraint.Div]("Div", true)

	m.IfThen = keeper.New[*constraint.IfThen]("IfThen", true)

	m.CondLinConEQ = keeper.New[*constraint.CondLinConEQ]("CondLinConEQ", true)
	m.CondLinConLE = keeper.New[*constraint.CondLinConLE]("CondLinConLE", true)
	m.CondLinConLT = keeper.New[*constraint.CondLinConLT]("CondLinConLT", true)
	m.CondLinConGE = keeper.New[*constraint.CondLinConGE]("CondLinConGE", true)
	m.CondLinConGT = keeper.New[*constraint.CondLinConGT]("CondLinConGT", true)

	m.CondQuadConEQ = keeper.New[*constraint.CondQuadConEQ]("CondQuadConEQ", false)
	m.CondQuadConLE = keeper.New[*constraint.CondQuadConLE]("CondQuadConLE", false)
	m.CondQuadConLT = keeper.New[*constraint.CondQuadConLT]("CondQuadConLT", false)
	m.CondQuadConGE = keeper.New[*constraint.CondQuadConGE]("CondQuadConGE", false)
	m.CondQuadConGT = keeper.New[*constraint.CondQuadConGT]("CondQuadConGT", false)

	m.Count = keeper.New[*constraint.Count]("Count", true)
	m.NumberofConst = keeper.New[*constraint.NumberofConst]("NumberofConst", true)
	m.NumberofVar = keeper.New[*constraint.NumberofVar]("NumberofVar", true)
	m.AllDiff = keeper.New[*constraint.AllDiff]("AllDiff", false)

	m.Exp = keeper.New[*constraint.Exp]("Exp", true)
	m.ExpA = keeper.New[*constraint.ExpA]("ExpA", true)
	m.Log = keeper.New[*constraint.Log]("Log", true)
	m.LogA = keeper.New[*constraint.LogA]("LogA", true)
	m.Pow = keeper.New[*constraint.Pow]("Pow", true)
	m.Sin = keeper.New[*constraint.Sin]("Sin", true)
	m.Cos = keeper.New[*constraint.Cos]("Cos", true)
	m.Tan = keeper.New[*constraint.Tan]("Tan", true)

	m.IndicatorLinLE = keeper.New[*constraint.IndicatorConstraintLinLE]("IndicatorConstraintLinLE", false)
	m.IndicatorLinEQ = keeper.New[*constraint.IndicatorConstraintLinEQ]("IndicatorConstraintLinEQ", false)
	m.IndicatorLinGE = keeper.New[*constraint.IndicatorConstraintLinGE]("IndicatorConstraintLinGE", false)
	m.IndicatorQuadLE = keeper.New[*constraint.IndicatorConstraintQuadLE]("IndicatorConstraintQuadLE", false)
	m.IndicatorQuadEQ = keeper.New[*constraint.IndicatorConstraintQuadEQ]("IndicatorConstraintQuadEQ", false)
	m.IndicatorQuadGE = keeper.New[*constraint.IndicatorConstraintQuadGE]("IndicatorConstraintQuadGE", false)

	m.SOS1 = keeper.New[*constraint.SOS1]("SOS1", false)
	m.SOS2 = keeper.New[*constraint.SOS2]("SOS2", false)

	m.ComplementarityLinear = keeper.New[*constraint.ComplementarityLinear]("ComplementarityLinear", false)
	m.ComplementarityQuadratic = keeper.New[*constraint.ComplementarityQuadratic]("ComplementarityQuadratic", false)

	m.PLConstraint = keeper.New[*constraint.PLConstraint]("PLConstraint", true)

	m.keepers = []keeper.AnyKeeper{
		m.LinConLE, m.LinConGE, m.LinConEQ, m.LinConRange,
		m.QuadConLE, m.QuadConGE, m.QuadConEQ, m.QuadConRange,
		m.LinearFunctional, m.QuadraticFunctional,
		m.Max, m.Min, m.Abs, m.And, m.Or, m.Not, m.Div,
		m.IfThen,
		m.CondLinConEQ, m.CondLinConLE, m.CondLinConLT, m.CondLinConGE, m.CondLinConGT,
		m.CondQuadConEQ, m.CondQuadConLE, m.CondQuadConLT, m.CondQuadConGE, m.CondQuadConGT,
		m.Count, m.NumberofConst, m.NumberofVar, m.AllDiff,
		m.Exp, m.ExpA, m.Log, m.LogA, m.Pow, m.Sin, m.Cos, m.Tan,
		m.IndicatorLinLE, m.IndicatorLinEQ, m.IndicatorLinGE,
		m.IndicatorQuadLE, m.IndicatorQuadEQ, m.IndicatorQuadGE,
		m.SOS1, m.SOS2,
		m.ComplementarityLinear, m.ComplementarityQuadratic,
		m.PLConstraint,
	}

	return m
}

// Keepers returns every registered keeper in fixed registration order.
func (m *FlatModel) Keepers() []keeper.AnyKeeper { return m.keepers }

// AddVar allocates a new, unbounded continuous variable and returns it.
func (m *FlatModel) AddVar() *flatconv.Variable {
	v := flatconv.NewVariable(len(m.vars))
	m.vars = append(m.vars, v)
	return v
}

// AddDefinedVar allocates a new variable with the given type and bounds.
func (m *FlatModel) AddDefinedVar(typ flatconv.VarType, lb, ub float64) (*flatconv.Variable, error) {
	v := m.AddVar()
	v.SetType(typ)
	if err := v.SetBounds(lb, ub); err != nil {
		return nil, err
	}
	return v, nil
}

// Var returns the variable at index i.
func (m *FlatModel) Var(i int) *flatconv.Variable { return m.vars[i] }

// NumVars returns the number of variables currently in the model.
func (m *FlatModel) NumVars() int { return len(m.vars) }

// Vars returns every variable in the model, in index order.
func (m *FlatModel) Vars() []*flatconv.Variable { return m.vars }

// FixedVar returns the canonical variable representing the constant value,
// allocating a new [value,value]-bounded variable the first time value is
// requested.
func (m *FlatModel) FixedVar(value float64) *flatconv.Variable {
	if idx, ok := m.fixedVars[value]; ok {
		return m.vars[idx]
	}
	v, err := m.AddDefinedVar(flatconv.Continuous, value, value)
	if err != nil {
		// value == value can never be infeasible.
		panic(err)
	}
	m.fixedVars[value] = v.Index()
	return v
}

// SetLinearObjectiveCoef sets the objective-0 linear coefficient for
// variable v.
func (m *FlatModel) SetLinearObjectiveCoef(v int, coef float64) {
	m.objCoefs[v] = coef
}

// AddQuadraticObjectiveTerm adds a quadratic term to objective 0.
func (m *FlatModel) AddQuadraticObjectiveTerm(t constraint.QuadTerm) {
	m.objQuad = append(m.objQuad, t)
}

func (m *FlatModel) LinearObjective() map[int]float64 { return m.objCoefs }

func (m *FlatModel) QuadraticObjective() []constraint.QuadTerm { return m.objQuad }

func (m *FlatModel) Maximize() bool { return m.maximize }

// Relax drops integrality on every variable, implementing alg:relax.
func (m *FlatModel) Relax() {
	for _, v := range m.vars {
		v.SetType(flatconv.Continuous)
	}
}

// Frozen reports whether FinishModelInput has been called.
func (m *FlatModel) Frozen() bool { return m.frozen }

// FinishModelInput sets the flag Frozen reports. Nothing else reads it:
// keepers still accept items and variable bounds can still change. It does
// not validate that every keeper is solver-acceptable, and the converter
// makes no such check either.
func (m *FlatModel) FinishModelInput() {
	m.frozen = true
}

// Bounds is a convenience tuple used by bound-propagation helpers.
type Bounds struct{ LB, UB float64 }

// Infinite reports whether b spans the full real line.
func (b Bounds) Infinite() bool {
	return math.IsInf(b.LB, -1) && math.IsInf(b.UB, 1)
}

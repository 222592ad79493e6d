// Package refsolver is a small, dependency-free ModelAPI and Backend used
// as flatconv's own integration-test fixture: it accepts only the plain
// linear-row family (LinConLE/GE/EQ/Range) natively, which forces the
// converter's full redefinition catalog to run before anything reaches
// it — every other structured/functional type the test suite exercises is
// unwound down to linear rows and binary indicators before Solve ever
// sees it. Its model shape (column bounds/costs, row bounds, a sparse
// nonzero list) follows bartolsthoorn/gohighs's Model, the one real
// optimization-model shape surfaced anywhere in the retrieval pack; its
// solve loop is a compact two-phase Big-M simplex plus depth-first
// branch-and-bound for integer columns, since nothing in the pack ships a
// pure-Go LP/MIP algorithm to adapt.
package refsolver

import (
	"context"
	"math"

	"github.com/costela/flatconv"
	"github.com/costela/flatconv/backend"
	"github.com/costela/flatconv/constraint"
	"github.com/costela/flatconv/modelapi"
)

// clampInf bounds an effectively-unbounded column to a large finite
// sentinel: the tableau method below needs every column's range to be
// finite. Models built for the example pack's worked scenarios never
// depend on a truly unbounded column surviving into refsolver, since the
// converter's own redefinition rules require finite bounds anyway (big-M
// construction already returns ErrUnboundedBigM otherwise).
const clampInf = 1e7

// row is one pushed linear constraint, in the solver's own normalized
// shape: lower <= sum(coefs[i]*vars[i]) <= upper.
type row struct {
	vars  []int
	coefs []float64
	lower float64
	upper float64
}

// Solver is both the modelapi.ModelAPI the converter pushes a flat model
// into, and the backend.Backend that solves it.
type Solver struct {
	maximize bool

	colLower []float64
	colUpper []float64
	colCost  map[int]float64
	varTypes []flatconv.VarType

	rows []row

	lastResult *backend.Result
}

// New returns an empty refsolver instance.
func New() *Solver {
	return &Solver{colCost: make(map[int]float64)}
}

func (s *Solver) Name() string { return "refsolver" }

// Accepts declares Recommended only for the plain linear-row family;
// everything else is NotAccepted, so the converter's redefinition catalog
// unwinds it down to linear rows (and, transitively, binary indicators
// further rewritten into big-M linear rows) before FinishModelInput.
func (s *Solver) Accepts(c constraint.Constraint) modelapi.Acceptance {
	switch c.(type) {
	case *constraint.LinConLE, *constraint.LinConGE, *constraint.LinConEQ, *constraint.LinConRange:
		return modelapi.Recommended
	default:
		return modelapi.NotAccepted
	}
}

func (s *Solver) Infinity() float64      { return math.Inf(1) }
func (s *Solver) MinusInfinity() float64 { return math.Inf(-1) }

func (s *Solver) InitProblemModificationPhase(info modelapi.ProblemInfo) error {
	s.maximize = info.Maximize
	return nil
}

func (s *Solver) AddVariables(lb, ub []float64, types []flatconv.VarType) error {
	s.colLower = append([]float64(nil), lb...)
	s.colUpper = append([]float64(nil), ub...)
	s.varTypes = append([]flatconv.VarType(nil), types...)
	return nil
}

func (s *Solver) SetLinearObjective(iobj int, coefs map[int]float64) error {
	if iobj != 0 {
		return flatconv.NewSolverNativeError("SetLinearObjective", iobj, nil)
	}
	for k, v := range coefs {
		s.colCost[k] = v
	}
	return nil
}

func (s *Solver) SetQuadraticObjective(iobj int, terms []constraint.QuadTerm) error {
	return flatconv.NewConstraintConversionError("QuadraticObjective", s.Name())
}

func (s *Solver) AddConstraint(c constraint.Constraint) error {
	switch t := c.(type) {
	case *constraint.LinConLE:
		s.rows = append(s.rows, row{vars: t.Args(), coefs: t.Coefs, lower: math.Inf(-1), upper: t.RHS})
	case *constraint.LinConGE:
		s.rows = append(s.rows, row{vars: t.Args(), coefs: t.Coefs, lower: t.RHS, upper: math.Inf(1)})
	case *constraint.LinConEQ:
		s.rows = append(s.rows, row{vars: t.Args(), coefs: t.Coefs, lower: t.RHS, upper: t.RHS})
	case *constraint.LinConRange:
		s.rows = append(s.rows, row{vars: t.Args(), coefs: t.Coefs, lower: t.LB, upper: t.UB})
	default:
		return flatconv.NewConstraintConversionError(c.TypeName(), s.Name())
	}
	return nil
}

func (s *Solver) FinishProblemModificationPhase() error { return nil }

// Supports reports that refsolver offers none of the optional Backend
// features: it is a correctness fixture, not a production solver.
func (s *Solver) Supports(backend.Feature) bool { return false }

// Solve runs branch-and-bound over the pushed model, bottoming out at
// bounded-variable LP relaxations solved by simplex.
func (s *Solver) Solve(ctx context.Context) (*backend.Result, error) {
	n := len(s.colLower)
	lb := make([]float64, n)
	ub := make([]float64, n)
	for i := range lb {
		lb[i], ub[i] = clamp(s.colLower[i]), clamp(s.colUpper[i])
	}

	best, bestObj, status := s.branchAndBound(ctx, lb, ub, math.Inf(-1))
	result := &backend.Result{Status: status}
	if status == backend.Solved {
		result.VarValues = best
		result.ObjectiveVal = bestObj
	}
	s.lastResult = result
	return result, nil
}

func clamp(v float64) float64 {
	if math.IsInf(v, -1) {
		return -clampInf
	}
	if math.IsInf(v, 1) {
		return clampInf
	}
	return v
}

// branchAndBound performs depth-first branch-and-bound with simple
// most-fractional branching. incumbent is the best objective found so far
// in the solver's optimization sense (always compared as "maximize");
// pass -Inf initially.
func (s *Solver) branchAndBound(ctx context.Context, lb, ub []float64, incumbentObj float64) ([]float64, float64, backend.Status) {
	if err := ctx.Err(); err != nil {
		return nil, 0, backend.Interrupted
	}

	x, obj, feasible := s.solveRelaxation(lb, ub)
	if !feasible {
		return nil, 0, backend.Infeasible
	}

	branchVar := -1
	for i, t := range s.varTypes {
		if t != flatconv.Integer {
			continue
		}
		frac := x[i] - math.Floor(x[i])
		if frac > 1e-6 && frac < 1-1e-6 {
			branchVar = i
			break
		}
	}

	if branchVar == -1 {
		return x, obj, backend.Solved
	}

	// sense maps the model-sense objective onto the maximize scale the
	// incumbent is kept in.
	sense := 1.0
	if !s.maximize {
		sense = -1
	}
	if sense*obj <= incumbentObj+1e-9 {
		return nil, 0, backend.Infeasible
	}

	floorUB := append([]float64(nil), ub...)
	floorUB[branchVar] = math.Floor(x[branchVar])
	xFloor, objFloor, statusFloor := s.branchAndBound(ctx, lb, floorUB, incumbentObj)

	ceilLB := append([]float64(nil), lb...)
	ceilLB[branchVar] = math.Ceil(x[branchVar])
	newIncumbent := incumbentObj
	if statusFloor == backend.Solved && sense*objFloor > newIncumbent {
		newIncumbent = sense * objFloor
	}
	xCeil, objCeil, statusCeil := s.branchAndBound(ctx, ceilLB, ub, newIncumbent)

	switch {
	case statusFloor == backend.Solved && statusCeil == backend.Solved:
		if sense*objFloor >= sense*objCeil {
			return xFloor, objFloor, backend.Solved
		}
		return xCeil, objCeil, backend.Solved
	case statusFloor == backend.Solved:
		return xFloor, objFloor, backend.Solved
	case statusCeil == backend.Solved:
		return xCeil, objCeil, backend.Solved
	default:
		return nil, 0, backend.Infeasible
	}
}

// solveRelaxation solves the continuous relaxation over [lb,ub] via the
// shift-to-standard-form + Big-M simplex in tableau.go, always internally
// maximizing (negating costs first if the model minimizes) and negating
// the result back.
func (s *Solver) solveRelaxation(lb, ub []float64) (x []float64, obj float64, feasible bool) {
	n := len(lb)
	cost := make([]float64, n)
	for i := range cost {
		c := s.colCost[i]
		if !s.maximize {
			c = -c
		}
		cost[i] = c
	}

	allRows := make([]row, len(s.rows), len(s.rows)+n)
	copy(allRows, s.rows)
	for i := 0; i < n; i++ {
		allRows = append(allRows, row{vars: []int{i}, coefs: []float64{1}, lower: lb[i], upper: ub[i]})
	}

	xShift := make([]float64, n)
	copy(xShift, lb)

	t := buildTableau(n, cost, allRows, xShift)
	sol, objVal, ok := t.solve()
	if !ok {
		return nil, 0, false
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = xShift[i] + sol[i]
	}
	if !s.maximize {
		objVal = -objVal
	}
	return out, objVal, true
}

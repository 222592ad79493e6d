// Package backend declares the abstract Backend contract: once a Converter
// has pushed a flat model into a ModelAPI, a Backend runs the actual solve
// and reports a Status plus, on success, primal (and where supported,
// dual) values.
package backend

import "context"

// Status mirrors the solver-outcome taxonomy used across the native
// bindings this package's concrete backends adapt (lp_solve's
// OPTIMAL/INFEASIBLE/UNBOUNDED/... return codes, GLPK's glp_status codes),
// collapsed to one small enum so callers never branch on a
// backend-specific constant.
type Status int

const (
	// Uncertain means the solve did not reach a definitive conclusion
	// (e.g. iteration or time limit hit before convergence).
	Uncertain Status = iota
	Solved
	Infeasible
	// InfeasibleOrUnbounded is for backends that cannot distinguish the two
	// without a further solve; none of the backends in this module returns it.
	InfeasibleOrUnbounded
	Unbounded
	Interrupted
	Unknown
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Infeasible:
		return "infeasible"
	case InfeasibleOrUnbounded:
		return "infeasible-or-unbounded"
	case Unbounded:
		return "unbounded"
	case Interrupted:
		return "interrupted"
	case Uncertain:
		return "uncertain"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Solve call.
type Result struct {
	Status       Status
	ObjectiveVal float64
	VarValues    []float64
}

// Backend is the abstract solve contract. A concrete Backend is always
// paired with a modelapi.ModelAPI implementation that shares its native
// understanding of the model (the ModelAPI receives the flat model; the
// Backend runs it and reads back results), mirroring how golpa keeps model
// construction (golpa.Model) and solving (golpa.Model.Solve) on the same
// cgo handle but exposes them as two concerns here so a pure-Go reference
// backend can share the ModelAPI abstraction with cgo-bound ones.
type Backend interface {
	// Solve runs the solve, honoring ctx cancellation where the native
	// library supports interrupting an in-progress solve.
	Solve(ctx context.Context) (*Result, error)
}

// Feature identifies an optional Backend capability, queried via Supports
// before a caller type-asserts to the corresponding interface below.
type Feature int

const (
	FeatureBasis Feature = iota
	FeatureMIPStart
	FeatureIIS
	FeatureGap
	FeatureDualBound
	FeatureRay
	FeatureSensitivity
	FeatureCutMarker
	FeatureWarmStart
	FeatureFixedModelResolve
)

// FeatureSupporter is implemented by every Backend; callers check Supports
// before type-asserting to the narrower optional interfaces below, mirroring
// the pattern modelapi.ProblemWriter already establishes for ModelAPI.
type FeatureSupporter interface {
	Supports(Feature) bool
}

// BasisProvider exposes the optimal basis (which columns/rows are basic),
// for warm-starting a subsequent solve or for sensitivity analysis.
type BasisProvider interface {
	Basis() (varBasis, rowBasis []int)
}

// MIPStarter accepts a feasible integer solution as a starting incumbent.
type MIPStarter interface {
	SetMIPStart(values []float64)
}

// IISProvider reports an irreducible infeasible subsystem after an
// Infeasible result: the indices of constraints jointly responsible.
type IISProvider interface {
	IIS() []int
}

// GapSetter configures the relative MIP optimality gap at which
// branch-and-bound may stop early.
type GapSetter interface {
	SetGap(relative float64)
}

// DualBoundProvider reports the best proven bound even when the solve
// stopped before closing the gap (Interrupted or gap-limited Solved).
type DualBoundProvider interface {
	DualBound() float64
}

// RayProvider reports an unbounded or infeasible ray after an Unbounded or
// Infeasible result.
type RayProvider interface {
	Ray() []float64
}

// SensitivityProvider exposes post-solve ranging information (how far an
// objective coefficient or a bound can move before the basis changes).
type SensitivityProvider interface {
	Sensitivity() (objRanges, rhsRanges [][2]float64)
}

// CutMarker lets a caller flag which constraints were added as cutting
// planes during solve, vs. part of the original pushed model.
type CutMarker interface {
	Cuts() []int
}

// WarmStarter accepts a previous solve's basis to accelerate a re-solve
// after small model changes (the "change one bound, re-solve" pattern
// golpa.Model.ChangeRange/ChangeObj exist to support cheaply).
type WarmStarter interface {
	WarmStart(varBasis, rowBasis []int)
}

// FixedModelResolver re-solves with all integer variables fixed at their
// current incumbent values, recovering LP dual values for a MIP solution.
type FixedModelResolver interface {
	ResolveFixed(ctx context.Context) (*Result, error)
}

// Package modelapi declares the abstract contract every solver binding
// implements: which constraint types it accepts natively, and how the
// final flat model is pushed into it.
package modelapi

import (
	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
)

// Acceptance is how willing a ModelAPI is to receive a given constraint
// type directly, without the converter rewriting it first.
type Acceptance int

const (
	// NotAccepted means the ModelAPI cannot receive this type at all; the
	// converter must rewrite every instance before FinishModelInput.
	NotAccepted Acceptance = iota
	// AcceptedButNotRecommended means the ModelAPI can receive the type,
	// but a rewrite usually performs better (e.g. numerically). The
	// converter treats it like Recommended and does not rewrite such items
	// unless NeedsConversion flags them or an acc:<tag> override sets the
	// level to NotAccepted.
	AcceptedButNotRecommended
	// Recommended means the ModelAPI's native handling of this type is
	// preferred over any rewrite.
	Recommended
)

func (a Acceptance) String() string {
	switch a {
	case NotAccepted:
		return "not-accepted"
	case AcceptedButNotRecommended:
		return "accepted-but-not-recommended"
	case Recommended:
		return "recommended"
	default:
		return "unknown"
	}
}

// ProblemInfo carries the shape of the problem about to be pushed, so a
// ModelAPI can pre-size its native structures before the first
// AddVariables/AddConstraint call, mirroring the size hints lp_solve's
// make_lp(rows, cols) and GLPK's glp_add_rows/glp_add_cols take up front.
type ProblemInfo struct {
	NumVars        int
	NumConstraints int
	Maximize       bool
}

// ModelAPI is the abstract interface a native solver binding implements.
// The converter drives it in exactly the sequence: InitProblemModificationPhase,
// AddVariables, SetLinearObjective/SetQuadraticObjective,
// AddConstraint (one call per accepted item, after conversion),
// FinishProblemModificationPhase.
type ModelAPI interface {
	// Name identifies the ModelAPI for error messages ("gurobi", "lpsolve",
	// "refsolver", ...).
	Name() string

	// Accepts reports the acceptance level for c's concrete type.
	Accepts(c constraint.Constraint) Acceptance

	Infinity() float64
	MinusInfinity() float64

	InitProblemModificationPhase(info ProblemInfo) error

	// AddVariables declares every variable in the final model at once,
	// after conversion has finished allocating auxiliary variables.
	AddVariables(lb, ub []float64, types []flatconv.VarType) error

	// SetLinearObjective sets objective iobj's linear coefficients, keyed
	// by variable index. Only iobj == 0 is fully specified; see
	// DESIGN.md's Open Question on multi-objective support.
	SetLinearObjective(iobj int, coefs map[int]float64) error

	// SetQuadraticObjective sets objective iobj's quadratic terms.
	SetQuadraticObjective(iobj int, terms []constraint.QuadTerm) error

	// AddConstraint pushes one constraint of an accepted type. The
	// converter never calls this for a type whose Accepts is NotAccepted.
	AddConstraint(c constraint.Constraint) error

	FinishProblemModificationPhase() error
}

// ProblemWriter is an optional interface: ModelAPIs that can export the
// pushed model to an .lp/.mps-like file implement it, and the converter
// calls it when the writeprob=<file> option is set.
type ProblemWriter interface {
	WriteProblem(path string) error
}

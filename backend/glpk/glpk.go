/*
Copyright © 2015 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package glpk adapts the GNU Linear Programming Kit into a
// modelapi.ModelAPI/backend.Backend pair, offering both of the solve
// strategies the simplex.go/branchcut.go split exposed: a pure simplex
// pass for continuous relaxations, and glp_intopt's branch-and-cut for
// models carrying integer or binary columns. Like lpsolve and refsolver,
// it only accepts the plain linear-row family natively.
package glpk

// #cgo LDFLAGS: -lglpk
// #include <glpk.h>
// #include <stdlib.h>
import "C"

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/costela/flatconv"
	"github.com/costela/flatconv/backend"
	"github.com/costela/flatconv/constraint"
	"github.com/costela/flatconv/modelapi"
)

// glpkError maps a glp_simplex/glp_intopt return code to a Go error, nil
// for GLP_OK (0).
func glpkError(code C.int) error {
	if code == 0 {
		return nil
	}
	return fmt.Errorf("glpk: solve failed with code %d", int(code))
}

// Solver is both the modelapi.ModelAPI pushed into by the converter and
// the backend.Backend that dispatches to glp_simplex or glp_intopt.
type Solver struct {
	prob       *C.glp_prob
	maximize   bool
	nvars      int
	hasInteger bool
	Presolve   bool
}

// New creates an empty GLPK problem, with its destructor (glp_delete_prob)
// registered via runtime.SetFinalizer.
func New() *Solver {
	prob := C.glp_create_prob()
	s := &Solver{prob: prob, Presolve: true}
	runtime.SetFinalizer(s, func(s *Solver) { C.glp_delete_prob(s.prob) })
	return s
}

func (s *Solver) Name() string { return "glpk" }

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
	if info.Maximize {
		C.glp_set_obj_dir(s.prob, C.GLP_MAX)
	} else {
		C.glp_set_obj_dir(s.prob, C.GLP_MIN)
	}
	return nil
}

// AddVariables adds all columns at once via glp_add_cols, then sets each
// column's bound kind and type, mirroring variable.SetBounds's
// case-by-case mapping to GLPK's GLP_FR/GLP_LO/GLP_UP/GLP_DB/GLP_FX
// boundary kinds.
func (s *Solver) AddVariables(lb, ub []float64, types []flatconv.VarType) error {
	s.nvars = len(lb)
	if s.nvars == 0 {
		return nil
	}
	C.glp_add_cols(s.prob, C.int(s.nvars))
	for i := range lb {
		col := C.int(i + 1)

		switch {
		case math.IsInf(lb[i], -1) && math.IsInf(ub[i], 1):
			C.glp_set_col_bnds(s.prob, col, C.GLP_FR, 0, 0)
		case math.IsInf(lb[i], -1):
			C.glp_set_col_bnds(s.prob, col, C.GLP_UP, 0, C.double(ub[i]))
		case math.IsInf(ub[i], 1):
			C.glp_set_col_bnds(s.prob, col, C.GLP_LO, C.double(lb[i]), 0)
		case lb[i] == ub[i]:
			C.glp_set_col_bnds(s.prob, col, C.GLP_FX, C.double(lb[i]), 0)
		default:
			C.glp_set_col_bnds(s.prob, col, C.GLP_DB, C.double(lb[i]), C.double(ub[i]))
		}

		if types[i] == flatconv.Integer {
			C.glp_set_col_kind(s.prob, col, C.GLP_IV)
			s.hasInteger = true
		} else {
			C.glp_set_col_kind(s.prob, col, C.GLP_CV)
		}
	}
	return nil
}

func (s *Solver) SetLinearObjective(iobj int, coefs map[int]float64) error {
	if iobj != 0 {
		return flatconv.NewSolverNativeError("SetLinearObjective", iobj, nil)
	}
	for idx, coef := range coefs {
		C.glp_set_obj_coef(s.prob, C.int(idx+1), C.double(coef))
	}
	return nil
}

func (s *Solver) SetQuadraticObjective(iobj int, terms []constraint.QuadTerm) error {
	return flatconv.NewConstraintConversionError("QuadraticObjective", s.Name())
}

// AddConstraint adds one row via glp_add_rows + glp_set_mat_row, following
// the same lower/upper-bound case split the lp_solve-backed siblings use,
// translated to GLPK's row-bound-kind convention.
func (s *Solver) AddConstraint(c constraint.Constraint) error {
	var vars []int
	var coefs []float64
	var lower, upper float64

	switch t := c.(type) {
	case *constraint.LinConLE:
		vars, coefs, lower, upper = t.Args(), t.Coefs, math.Inf(-1), t.RHS
	case *constraint.LinConGE:
		vars, coefs, lower, upper = t.Args(), t.Coefs, t.RHS, math.Inf(1)
	case *constraint.LinConEQ:
		vars, coefs, lower, upper = t.Args(), t.Coefs, t.RHS, t.RHS
	case *constraint.LinConRange:
		vars, coefs, lower, upper = t.Args(), t.Coefs, t.LB, t.UB
	default:
		return flatconv.NewConstraintConversionError(c.TypeName(), s.Name())
	}

	if len(vars) != len(coefs) {
		return fmt.Errorf("glpk: inconsistent number of variables and coefficients: %d != %d", len(vars), len(coefs))
	}

	C.glp_add_rows(s.prob, 1)
	row := C.int(C.glp_get_num_rows(s.prob))

	switch {
	case math.IsInf(lower, -1) && math.IsInf(upper, 1):
		C.glp_set_row_bnds(s.prob, row, C.GLP_FR, 0, 0)
	case math.IsInf(lower, -1):
		C.glp_set_row_bnds(s.prob, row, C.GLP_UP, 0, C.double(upper))
	case math.IsInf(upper, 1):
		C.glp_set_row_bnds(s.prob, row, C.GLP_LO, C.double(lower), 0)
	case upper == lower:
		C.glp_set_row_bnds(s.prob, row, C.GLP_FX, C.double(upper), 0)
	default:
		C.glp_set_row_bnds(s.prob, row, C.GLP_DB, C.double(lower), C.double(upper))
	}

	// GLPK's sparse-row setters are 1-indexed and ignore index 0, matching
	// the convention already used for column/row numbers above.
	ind := make([]C.int, len(vars)+1)
	val := make([]C.double, len(vars)+1)
	for i, v := range vars {
		ind[i+1] = C.int(v + 1)
		val[i+1] = C.double(coefs[i])
	}
	C.glp_set_mat_row(s.prob, row, C.int(len(vars)), &ind[0], &val[0])

	return nil
}

func (s *Solver) FinishProblemModificationPhase() error { return nil }

func (s *Solver) Supports(f backend.Feature) bool {
	switch f {
	case backend.FeatureDualBound:
		return true
	default:
		return false
	}
}

func (s *Solver) DualBound() float64 {
	return float64(C.glp_get_obj_val(s.prob))
}

// Solve runs glp_simplex unconditionally (GLPK's branch-and-cut requires a
// solved relaxation as its starting basis), then glp_intopt on top if any
// column was declared integer, exactly mirroring SolveSimplex/SolveBranchCut
// being offered as two distinct strategies over the same loaded matrix.
// ctx is checked before each phase; GLPK itself offers no mid-solve
// interrupt hook the way lp_solve's abort callback does.
func (s *Solver) Solve(ctx context.Context) (*backend.Result, error) {
	if err := ctx.Err(); err != nil {
		return &backend.Result{Status: backend.Interrupted}, nil
	}

	var smcp C.glp_smcp
	C.glp_init_smcp(&smcp)
	smcp.msg_lev = C.GLP_MSG_OFF
	if s.Presolve {
		smcp.presolve = C.GLP_ON
	}
	if err := glpkError(C.glp_simplex(s.prob, &smcp)); err != nil {
		return &backend.Result{Status: backend.Unknown}, nil
	}

	switch C.glp_get_status(s.prob) {
	case C.GLP_INFEAS, C.GLP_NOFEAS:
		return &backend.Result{Status: backend.Infeasible}, nil
	case C.GLP_UNBND:
		return &backend.Result{Status: backend.Unbounded}, nil
	}

	if !s.hasInteger {
		return s.readLPResult(), nil
	}

	if err := ctx.Err(); err != nil {
		return &backend.Result{Status: backend.Interrupted}, nil
	}

	var iocp C.glp_iocp
	C.glp_init_iocp(&iocp)
	iocp.msg_lev = C.GLP_MSG_OFF
	if s.Presolve {
		iocp.presolve = C.GLP_ON
	}
	if err := glpkError(C.glp_intopt(s.prob, &iocp)); err != nil {
		return &backend.Result{Status: backend.Unknown}, nil
	}

	switch C.glp_mip_status(s.prob) {
	case C.GLP_NOFEAS, C.GLP_UNDEF:
		return &backend.Result{Status: backend.Infeasible}, nil
	}
	return s.readMIPResult(), nil
}

func (s *Solver) readLPResult() *backend.Result {
	vals := make([]float64, s.nvars)
	for i := range vals {
		vals[i] = float64(C.glp_get_col_prim(s.prob, C.int(i+1)))
	}
	return &backend.Result{
		Status:       backend.Solved,
		ObjectiveVal: float64(C.glp_get_obj_val(s.prob)),
		VarValues:    vals,
	}
}

func (s *Solver) readMIPResult() *backend.Result {
	vals := make([]float64, s.nvars)
	for i := range vals {
		vals[i] = float64(C.glp_mip_col_val(s.prob, C.int(i+1)))
	}
	return &backend.Result{
		Status:       backend.Solved,
		ObjectiveVal: float64(C.glp_mip_obj_val(s.prob)),
		VarValues:    vals,
	}
}


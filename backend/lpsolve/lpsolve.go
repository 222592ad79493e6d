/*
Copyright © 2015-2022 Leo Antunes <leo@costela.net>

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

// Package lpsolve adapts lp_solve (via its C API) into a
// modelapi.ModelAPI/backend.Backend pair. Like the reference solver, it
// natively accepts only the plain linear-row family (LinConLE/GE/EQ/Range);
// everything structured or functional is left to the converter's
// redefinition catalog. Column/row construction mirrors golpa.Model
// (add_columnex/add_constraintex over a single *C.lprec handle); Solve
// additionally wires ctx cancellation through lp_solve's abort callback,
// which golpa itself left unused.
package lpsolve

// #cgo CFLAGS: -I/usr/include/lpsolve/
// #cgo LDFLAGS: -llpsolve55 -lm -ldl -lcolamd
// #include <lp_lib.h>
// #include <stdlib.h>
//
// extern int goAbortCheck(void *handle);
//
// static int abort_trampoline(lprec *lp, void *userhandle) {
//     return goAbortCheck(userhandle);
// }
import "C"

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"unsafe"

	"github.com/costela/flatconv"
	"github.com/costela/flatconv/backend"
	"github.com/costela/flatconv/constraint"
	"github.com/costela/flatconv/modelapi"
)

// Solver is both the modelapi.ModelAPI pushed into by the converter and the
// backend.Backend that hands the built lp_solve problem to solve().
type Solver struct {
	prob     *C.lprec
	maximize bool
	nvars    int
}

// New creates an empty lp_solve problem. The returned Solver's destructor
// (delete_lp) is registered via runtime.SetFinalizer, mirroring
// golpa.NewModel's lifetime handling, since *C.lprec has no Go-visible
// finalizer of its own.
func New() *Solver {
	prob := C.make_lp(0, 0)
	C.set_verbose(prob, C.FALSE)
	s := &Solver{prob: prob}
	runtime.SetFinalizer(s, func(s *Solver) { C.delete_lp(s.prob) })
	return s
}

func (s *Solver) Name() string { return "lpsolve" }

// Accepts declares Recommended only for the plain linear-row family, for
// the same reason refsolver does: everything else must be unwound by the
// redefinition catalog before FinishProblemModificationPhase.
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
		C.set_maxim(s.prob)
	} else {
		C.set_minim(s.prob)
	}
	return nil
}

// AddVariables adds one lp_solve column per variable via add_columnex with
// no initial nonzeros, then sets its bounds and type, following
// golpa.Model.AddDefinedVariable's sequence (add empty column, name it,
// set type, set bounds). flatconv has no separate binary VarType: a binary
// variable is simply an Integer variable bounded to [0,1], arriving here
// via the same lb/ub pair as any other bound.
func (s *Solver) AddVariables(lb, ub []float64, types []flatconv.VarType) error {
	s.nvars = len(lb)
	for i := range lb {
		C.add_columnex(s.prob, 0, nil, nil)
		col := C.int(i + 1)

		if types[i] == flatconv.Integer {
			C.set_int(s.prob, col, C.TRUE)
		}
		C.set_bounds(s.prob, col, C.REAL(lb[i]), C.REAL(ub[i]))
	}
	return nil
}

func (s *Solver) SetLinearObjective(iobj int, coefs map[int]float64) error {
	if iobj != 0 {
		return flatconv.NewSolverNativeError("SetLinearObjective", iobj, nil)
	}
	for idx, coef := range coefs {
		C.set_obj(s.prob, C.int(idx+1), C.REAL(coef))
	}
	return nil
}

func (s *Solver) SetQuadraticObjective(iobj int, terms []constraint.QuadTerm) error {
	return flatconv.NewConstraintConversionError("QuadraticObjective", s.Name())
}

// AddConstraint adds one row via add_constraintex, translating the four
// accepted shapes into lp_solve's lower/upper row-bound convention exactly
// as golpa.Model.AddConstraint does, including the unbounded-both-ways and
// genuine-range special cases.
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
		return fmt.Errorf("lpsolve: inconsistent number of variables and coefficients: %d != %d", len(vars), len(coefs))
	}

	row := make([]C.REAL, len(vars))
	colno := make([]C.int, len(vars))
	for i, v := range vars {
		colno[i] = C.int(v + 1)
		row[i] = C.REAL(coefs[i])
	}

	switch {
	case math.IsInf(lower, -1) && math.IsInf(upper, 1):
		// no-op row
	case math.IsInf(lower, -1):
		C.add_constraintex(s.prob, C.int(len(vars)), &row[0], &colno[0], C.LE, C.REAL(upper))
	case math.IsInf(upper, 1):
		C.add_constraintex(s.prob, C.int(len(vars)), &row[0], &colno[0], C.GE, C.REAL(lower))
	case upper == lower:
		C.add_constraintex(s.prob, C.int(len(vars)), &row[0], &colno[0], C.EQ, C.REAL(upper))
	default:
		C.add_constraintex(s.prob, C.int(len(vars)), &row[0], &colno[0], C.LE, C.REAL(upper))
		C.set_rh_range(s.prob, C.get_Nrows(s.prob), C.REAL(upper-lower))
	}

	return nil
}

func (s *Solver) FinishProblemModificationPhase() error { return nil }

// Supports reports FeatureGap (lp_solve's set_break_at_value-adjacent
// mipgap options) and FeatureDualBound (available via get_bb_heuristicOF
// after a solve); every other optional capability this package leaves
// unimplemented for now.
func (s *Solver) Supports(f backend.Feature) bool {
	switch f {
	case backend.FeatureGap, backend.FeatureDualBound:
		return true
	default:
		return false
	}
}

func (s *Solver) SetGap(relative float64) {
	C.set_mip_gap(s.prob, C.FALSE, C.REAL(relative))
}

// DualBound reports the best bound lp_solve proved on the relaxation,
// available even when branch-and-bound was interrupted before closing
// the gap.
func (s *Solver) DualBound() float64 {
	return float64(C.get_bb_heuristicOF(s.prob))
}

// Solve runs lp_solve's own branch-and-bound (golpa.Model.Solve's C.solve),
// wiring ctx cancellation through put_abortfunc/goAbortCheck so a
// cancelled context stops an in-progress solve instead of only being
// checked before/after it, which golpa's own Solve never did.
func (s *Solver) Solve(ctx context.Context) (*backend.Result, error) {
	handle := saveContext(ctx)
	defer dropContext(handle)
	C.put_abortfunc(s.prob, (C.abortfunc)(unsafe.Pointer(C.abort_trampoline)), handle)

	ret := C.solve(s.prob)

	result := &backend.Result{}
	switch ret {
	case C.OPTIMAL, C.SUBOPTIMAL:
		result.Status = backend.Solved
		result.ObjectiveVal = float64(C.get_objective(s.prob))
		result.VarValues = make([]float64, s.nvars)
		nrows := int(C.get_Nrows(s.prob))
		for i := range result.VarValues {
			// get_var_primalresult indexes 0=objective, then rows, then
			// columns, exactly as golpa.SolveResult.GetPrimalValue documents.
			result.VarValues[i] = float64(C.get_var_primalresult(s.prob, C.int(i+nrows+1)))
		}
	case C.INFEASIBLE:
		result.Status = backend.Infeasible
	case C.UNBOUNDED:
		result.Status = backend.Unbounded
	case C.USERABORT, C.TIMEOUT:
		result.Status = backend.Interrupted
	default:
		result.Status = backend.Unknown
	}
	return result, nil
}

//export goAbortCheck
func goAbortCheck(handle unsafe.Pointer) C.int {
	ctx := loadContext(handle)
	if ctx != nil && ctx.Err() != nil {
		return C.TRUE
	}
	return C.FALSE
}

package refsolver

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
	"github.com/costela/flatconv/modelapi"
)

const epsilon = 1e-6

func pushLinearModel(t *testing.T, s *Solver, maximize bool, lb, ub []float64, types []flatconv.VarType, obj map[int]float64, rows []constraint.Constraint) {
	t.Helper()
	require.NoError(t, s.InitProblemModificationPhase(modelapi.ProblemInfo{NumVars: len(lb), Maximize: maximize}))
	require.NoError(t, s.AddVariables(lb, ub, types))
	require.NoError(t, s.SetLinearObjective(0, obj))
	for _, r := range rows {
		require.NoError(t, s.AddConstraint(r))
	}
	require.NoError(t, s.FinishProblemModificationPhase())
}

func TestSolveMaximizeBoundedLP(t *testing.T) {
	s := New()
	pushLinearModel(t, s, true,
		[]float64{0, 0}, []float64{40, 10},
		[]flatconv.VarType{flatconv.Continuous, flatconv.Continuous},
		map[int]float64{0: 1, 1: 2},
		[]constraint.Constraint{constraint.NewLinConLE([]int{0, 1}, []float64{1, 1}, 20)},
	)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "solved", res.Status.String())
	assert.InDelta(t, 30, res.ObjectiveVal, epsilon) // x=10,y=10 -> 1*10+2*10=30
}

func TestSolveMinimizeLP(t *testing.T) {
	s := New()
	pushLinearModel(t, s, false,
		[]float64{0, 0}, []float64{math.Inf(1), math.Inf(1)},
		[]flatconv.VarType{flatconv.Continuous, flatconv.Continuous},
		map[int]float64{0: 1, 1: 1},
		[]constraint.Constraint{constraint.NewLinConGE([]int{0, 1}, []float64{1, 1}, 4)},
	)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "solved", res.Status.String())
	assert.InDelta(t, 4, res.ObjectiveVal, epsilon)
}

func TestSolveInfeasible(t *testing.T) {
	s := New()
	pushLinearModel(t, s, true,
		[]float64{0}, []float64{5},
		[]flatconv.VarType{flatconv.Continuous},
		map[int]float64{0: 1},
		[]constraint.Constraint{constraint.NewLinConGE([]int{0}, []float64{1}, 10)},
	)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "infeasible", res.Status.String())
}

func TestSolveIntegerRounding(t *testing.T) {
	s := New()
	pushLinearModel(t, s, true,
		[]float64{0}, []float64{10},
		[]flatconv.VarType{flatconv.Integer},
		map[int]float64{0: 1},
		[]constraint.Constraint{constraint.NewLinConLE([]int{0}, []float64{1}, 7.5)},
	)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "solved", res.Status.String())
	assert.InDelta(t, 7, res.VarValues[0], epsilon)
}

func TestSolveRangeRow(t *testing.T) {
	s := New()
	pushLinearModel(t, s, true,
		[]float64{0, 0}, []float64{40, 10},
		[]flatconv.VarType{flatconv.Continuous, flatconv.Continuous},
		map[int]float64{1: 1},
		[]constraint.Constraint{constraint.NewLinConRange([]int{0, 1}, []float64{-1, 1}, 0, 10)},
	)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "solved", res.Status.String())
	assert.InDelta(t, 10, res.ObjectiveVal, epsilon)
}

func TestAcceptsOnlyPlainLinearRows(t *testing.T) {
	s := New()
	assert.Equal(t, modelapi.Recommended, s.Accepts(constraint.NewLinConLE([]int{0}, []float64{1}, 1)))
	assert.Equal(t, modelapi.NotAccepted, s.Accepts(constraint.NewAbs(0)))
}

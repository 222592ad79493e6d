package convert_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costela/flatconv"
	"github.com/costela/flatconv/backend"
	"github.com/costela/flatconv/backend/refsolver"
	"github.com/costela/flatconv/constraint"
	"github.com/costela/flatconv/convert"
	"github.com/costela/flatconv/model"
)

const epsilon = 1e-6

// convertAndSolve runs the full pipeline a real caller would: convert,
// push to the backend, and solve. It is the regression harness for the
// ConvertItems ordering bug: a single fixed forward pass over keepers
// never revisited PLConstraint's SOS2 output or ComplementarityLinear's
// IndicatorConstraintLinEQ output, so both failed at FinishModelInput
// before the fixed-point loop existed.
func convertAndSolve(t *testing.T, conv *convert.Converter, s *refsolver.Solver) *backend.Result {
	t.Helper()
	require.NoError(t, conv.ConvertItems())
	require.NoError(t, conv.FinishModelInput())
	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, "solved", res.Status.String())
	return res
}

// TestConvertPLConstraintThroughSOS2 exercises the PL->SOS2 path from
// spec.md's tent-function scenario: breakpoints (0,0),(1,1),(2,0).
// PLConstraint is registered after SOS2 in FlatModel.keepers, so the
// SOS2 item redefinePL emits is only reachable by a second conversion
// pass.
func TestConvertPLConstraintThroughSOS2(t *testing.T) {
	fm := model.New(true)
	s := refsolver.New()
	conv, err := convert.New(fm, s)
	require.NoError(t, err)

	x, err := fm.AddDefinedVar(flatconv.Continuous, 0, 2)
	require.NoError(t, err)

	pl := constraint.NewPLConstraint(x.Index(), []constraint.Breakpoint{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0},
	})
	_, err = fm.PLConstraint.Add(pl)
	require.NoError(t, err)

	require.NoError(t, conv.ConvertItems())
	y, ok := pl.ResultVar()
	require.True(t, ok, "PLConstraint should carry a result variable after conversion")
	fm.SetLinearObjectiveCoef(y, 1)

	require.NoError(t, conv.FinishModelInput())
	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, "solved", res.Status.String())
	assert.InDelta(t, 1, res.ObjectiveVal, epsilon)
	assert.InDelta(t, 1, res.VarValues[x.Index()], epsilon)
	assert.InDelta(t, 1, res.VarValues[y], epsilon)
}

// TestConvertComplementarityLinearThroughIndicator exercises the
// Complementarity->IndicatorConstraintLinEQ path. IndicatorLinEQ is
// registered before ComplementarityLinear in FlatModel.keepers, so the
// indicator rows redefineComplementarityLinear emits are only reachable
// by a second conversion pass.
func TestConvertComplementarityLinearThroughIndicator(t *testing.T) {
	fm := model.New(false)
	s := refsolver.New()
	conv, err := convert.New(fm, s)
	require.NoError(t, err)

	x, err := fm.AddDefinedVar(flatconv.Continuous, 0, 5)
	require.NoError(t, err)
	z, err := fm.AddDefinedVar(flatconv.Continuous, -1, 5)
	require.NoError(t, err)

	// f(x) = x - 2, complementary to z.
	compl := constraint.NewComplementarityLinear([]int{x.Index()}, []float64{1}, -2, z.Index())
	_, err = fm.ComplementarityLinear.Add(compl)
	require.NoError(t, err)

	fm.SetLinearObjectiveCoef(x.Index(), 1)
	fm.SetLinearObjectiveCoef(z.Index(), 1)

	res := convertAndSolve(t, conv, s)
	assert.InDelta(t, 2, res.ObjectiveVal, epsilon)
	assert.InDelta(t, 2, res.VarValues[x.Index()], epsilon)
	assert.InDelta(t, 0, res.VarValues[z.Index()], epsilon)
}

// TestConvertAbsEndToEnd checks y = |x| for a fixed negative x.
func TestConvertAbsEndToEnd(t *testing.T) {
	fm := model.New(false)
	s := refsolver.New()
	conv, err := convert.New(fm, s)
	require.NoError(t, err)

	x, err := fm.AddDefinedVar(flatconv.Continuous, -5, 5)
	require.NoError(t, err)
	require.NoError(t, x.SetBounds(-4, -4))

	abs := constraint.NewAbs(x.Index())
	_, err = fm.Abs.Add(abs)
	require.NoError(t, err)

	res := convertAndSolve(t, conv, s)
	y, ok := abs.ResultVar()
	require.True(t, ok)
	assert.InDelta(t, 4, res.VarValues[y], epsilon)
}

// TestConvertMaxEndToEnd checks y = max(x1,x2,x3) for fixed arguments. The
// redefinition's own bounds on y (the widest span across all arguments)
// already pin y to the true maximum here, since the binding y>=x_i row
// coincides with y's own upper bound.
func TestConvertMaxEndToEnd(t *testing.T) {
	fm := model.New(false)
	s := refsolver.New()
	conv, err := convert.New(fm, s)
	require.NoError(t, err)

	x1, err := fm.AddDefinedVar(flatconv.Continuous, 0, 10)
	require.NoError(t, err)
	x2, err := fm.AddDefinedVar(flatconv.Continuous, 0, 10)
	require.NoError(t, err)
	x3, err := fm.AddDefinedVar(flatconv.Continuous, 0, 10)
	require.NoError(t, err)
	require.NoError(t, x1.SetBounds(3, 3))
	require.NoError(t, x2.SetBounds(7, 7))
	require.NoError(t, x3.SetBounds(5, 5))

	max := constraint.NewMax([]int{x1.Index(), x2.Index(), x3.Index()})
	_, err = fm.Max.Add(max)
	require.NoError(t, err)

	res := convertAndSolve(t, conv, s)
	y, ok := max.ResultVar()
	require.True(t, ok)
	assert.InDelta(t, 7, res.VarValues[y], epsilon)
}

// TestConvertCountEndToEnd checks y = count(x[i] == 2) maximized, so the
// solver is pushed to set every admissible selector, reaching the true
// count rather than merely a feasible lower value.
func TestConvertCountEndToEnd(t *testing.T) {
	fm := model.New(true)
	s := refsolver.New()
	conv, err := convert.New(fm, s)
	require.NoError(t, err)

	x1, err := fm.AddDefinedVar(flatconv.Integer, 0, 3)
	require.NoError(t, err)
	x2, err := fm.AddDefinedVar(flatconv.Integer, 0, 3)
	require.NoError(t, err)
	x3, err := fm.AddDefinedVar(flatconv.Integer, 0, 3)
	require.NoError(t, err)
	require.NoError(t, x1.SetBounds(2, 2))
	require.NoError(t, x2.SetBounds(2, 2))
	require.NoError(t, x3.SetBounds(1, 1))

	count := constraint.NewCount([]int{x1.Index(), x2.Index(), x3.Index()}, 2)
	_, err = fm.Count.Add(count)
	require.NoError(t, err)

	require.NoError(t, conv.ConvertItems())
	y, ok := count.ResultVar()
	require.True(t, ok)
	fm.SetLinearObjectiveCoef(y, 1)

	require.NoError(t, conv.FinishModelInput())
	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, "solved", res.Status.String())
	assert.InDelta(t, 2, res.VarValues[y], epsilon)
}

// TestConvertAllDiffEndToEnd checks that alldiff(x1,x2,x3) over domain
// {1,2,3} forces a permutation.
func TestConvertAllDiffEndToEnd(t *testing.T) {
	fm := model.New(false)
	s := refsolver.New()
	conv, err := convert.New(fm, s)
	require.NoError(t, err)

	x1, err := fm.AddDefinedVar(flatconv.Integer, 1, 3)
	require.NoError(t, err)
	x2, err := fm.AddDefinedVar(flatconv.Integer, 1, 3)
	require.NoError(t, err)
	x3, err := fm.AddDefinedVar(flatconv.Integer, 1, 3)
	require.NoError(t, err)

	_, err = fm.AllDiff.Add(constraint.NewAllDiff([]int{x1.Index(), x2.Index(), x3.Index()}))
	require.NoError(t, err)

	res := convertAndSolve(t, conv, s)

	vals := []float64{res.VarValues[x1.Index()], res.VarValues[x2.Index()], res.VarValues[x3.Index()]}
	seen := map[float64]bool{}
	for _, v := range vals {
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 3.0)
		assert.False(t, seen[v], "alldiff values must be pairwise distinct, got %v", vals)
		seen[v] = true
	}
}

package lpsolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/costela/flatconv/backend"
	"github.com/costela/flatconv/constraint"
	"github.com/costela/flatconv/modelapi"
)

func TestAcceptsOnlyPlainLinearRows(t *testing.T) {
	s := New()
	assert.Equal(t, modelapi.Recommended, s.Accepts(constraint.NewLinConLE([]int{0}, []float64{1}, 1)))
	assert.Equal(t, modelapi.Recommended, s.Accepts(constraint.NewLinConRange([]int{0}, []float64{1}, 0, 1)))
	assert.Equal(t, modelapi.NotAccepted, s.Accepts(constraint.NewAbs(0)))
}

func TestNameAndInfinity(t *testing.T) {
	s := New()
	assert.Equal(t, "lpsolve", s.Name())
	assert.True(t, s.Infinity() > 0)
	assert.True(t, s.MinusInfinity() < 0)
	assert.True(t, s.Supports(backend.FeatureGap))
	assert.False(t, s.Supports(backend.FeatureBasis))
}

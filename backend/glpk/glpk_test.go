package glpk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/costela/flatconv/backend"
	"github.com/costela/flatconv/constraint"
	"github.com/costela/flatconv/modelapi"
)

func TestAcceptsOnlyPlainLinearRows(t *testing.T) {
	s := New()
	assert.Equal(t, modelapi.Recommended, s.Accepts(constraint.NewLinConGE([]int{0}, []float64{1}, 1)))
	assert.Equal(t, modelapi.NotAccepted, s.Accepts(constraint.NewAbs(0)))
}

func TestNameAndSupports(t *testing.T) {
	s := New()
	assert.Equal(t, "glpk", s.Name())
	assert.True(t, s.Supports(backend.FeatureDualBound))
	assert.False(t, s.Supports(backend.FeatureWarmStart))
}

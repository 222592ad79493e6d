package constraint

// SOS1 asserts that at most one of x[args] is nonzero, ordered by Weights.
type SOS1 struct {
	Base
	Weights []float64
}

func NewSOS1(vars []int, weights []float64) *SOS1 {
	return &SOS1{Base: NewBase(vars), Weights: append([]float64(nil), weights...)}
}

func (c *SOS1) TypeName() string { return "SOS1" }

// SOS2 asserts that at most two *consecutive* (by Weights order) of
// x[args] are nonzero.
type SOS2 struct {
	Base
	Weights []float64
}

func NewSOS2(vars []int, weights []float64) *SOS2 {
	return &SOS2{Base: NewBase(vars), Weights: append([]float64(nil), weights...)}
}

func (c *SOS2) TypeName() string { return "SOS2" }

package constraint

// ComplementarityLinear asserts  f(x) >= 0  ⊥  x >= 0, where f is linear:
// f(x) = sum(Coefs[i]*x[Args()[i]]) + Const, complementary to the variable
// ComplVar.
type ComplementarityLinear struct {
	Base
	Coefs    []float64
	Const    float64
	ComplVar int
}

func NewComplementarityLinear(vars []int, coefs []float64, constant float64, complVar int) *ComplementarityLinear {
	return &ComplementarityLinear{
		Base:     NewBase(vars),
		Coefs:    append([]float64(nil), coefs...),
		Const:    constant,
		ComplVar: complVar,
	}
}

func (c *ComplementarityLinear) TypeName() string { return "ComplementarityLinear" }

// ComplementarityQuadratic is the quadratic analogue of
// ComplementarityLinear.
type ComplementarityQuadratic struct {
	Base
	Coefs    []float64
	Quad     []QuadTerm
	Const    float64
	ComplVar int
}

func NewComplementarityQuadratic(vars []int, coefs []float64, quad []QuadTerm, constant float64, complVar int) *ComplementarityQuadratic {
	return &ComplementarityQuadratic{
		Base:     NewBase(vars),
		Coefs:    append([]float64(nil), coefs...),
		Quad:     append([]QuadTerm(nil), quad...),
		Const:    constant,
		ComplVar: complVar,
	}
}

func (c *ComplementarityQuadratic) TypeName() string { return "ComplementarityQuadratic" }

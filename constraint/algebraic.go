package constraint

import "fmt"

// LinConLE is a linear row  sum(coefs[i]*x[vars[i]]) <= rhs.
type LinConLE struct {
	Base
	Coefs []float64
	RHS   float64
}

func NewLinConLE(vars []int, coefs []float64, rhs float64) *LinConLE {
	return &LinConLE{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), RHS: rhs}
}

func (c *LinConLE) TypeName() string { return "LinConLE" }

// LinConGE is a linear row  sum(coefs[i]*x[vars[i]]) >= rhs.
type LinConGE struct {
	Base
	Coefs []float64
	RHS   float64
}

func NewLinConGE(vars []int, coefs []float64, rhs float64) *LinConGE {
	return &LinConGE{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), RHS: rhs}
}

func (c *LinConGE) TypeName() string { return "LinConGE" }

// LinConEQ is a linear row  sum(coefs[i]*x[vars[i]]) == rhs.
type LinConEQ struct {
	Base
	Coefs []float64
	RHS   float64
}

func NewLinConEQ(vars []int, coefs []float64, rhs float64) *LinConEQ {
	return &LinConEQ{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), RHS: rhs}
}

func (c *LinConEQ) TypeName() string { return "LinConEQ" }

// LinConRange is a linear row  lb <= sum(coefs[i]*x[vars[i]]) <= ub.
type LinConRange struct {
	Base
	Coefs  []float64
	LB, UB float64
}

func NewLinConRange(vars []int, coefs []float64, lb, ub float64) *LinConRange {
	return &LinConRange{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), LB: lb, UB: ub}
}

func (c *LinConRange) TypeName() string { return "LinConRange" }

// QuadTerm is one entry of a quadratic form: coef * x[Row] * x[Col].
type QuadTerm struct {
	Row, Col int
	Coef     float64
}

// QuadConLE is sum(linCoefs[i]*x[vars[i]]) + sum(quad terms) <= rhs.
type QuadConLE struct {
	Base
	Coefs []float64
	Quad  []QuadTerm
	RHS   float64
}

func NewQuadConLE(vars []int, coefs []float64, quad []QuadTerm, rhs float64) *QuadConLE {
	return &QuadConLE{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), Quad: append([]QuadTerm(nil), quad...), RHS: rhs}
}

func (c *QuadConLE) TypeName() string { return "QuadConLE" }

// QuadConGE is the >= analogue of QuadConLE.
type QuadConGE struct {
	Base
	Coefs []float64
	Quad  []QuadTerm
	RHS   float64
}

func NewQuadConGE(vars []int, coefs []float64, quad []QuadTerm, rhs float64) *QuadConGE {
	return &QuadConGE{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), Quad: append([]QuadTerm(nil), quad...), RHS: rhs}
}

func (c *QuadConGE) TypeName() string { return "QuadConGE" }

// QuadConEQ is the == analogue of QuadConLE.
type QuadConEQ struct {
	Base
	Coefs []float64
	Quad  []QuadTerm
	RHS   float64
}

func NewQuadConEQ(vars []int, coefs []float64, quad []QuadTerm, rhs float64) *QuadConEQ {
	return &QuadConEQ{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), Quad: append([]QuadTerm(nil), quad...), RHS: rhs}
}

func (c *QuadConEQ) TypeName() string { return "QuadConEQ" }

// QuadConRange is the two-sided analogue of QuadConLE.
type QuadConRange struct {
	Base
	Coefs  []float64
	Quad   []QuadTerm
	LB, UB float64
}

func NewQuadConRange(vars []int, coefs []float64, quad []QuadTerm, lb, ub float64) *QuadConRange {
	return &QuadConRange{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), Quad: append([]QuadTerm(nil), quad...), LB: lb, UB: ub}
}

func (c *QuadConRange) TypeName() string { return "QuadConRange" }

func quadString(vars []int, coefs []float64, quad []QuadTerm) string {
	s := ""
	for i, v := range vars {
		s += fmt.Sprintf("%g*x%d+", coefs[i], v)
	}
	for _, q := range quad {
		s += fmt.Sprintf("%g*x%d*x%d+", q.Coef, q.Row, q.Col)
	}
	return s
}

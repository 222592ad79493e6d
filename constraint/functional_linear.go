package constraint

import "fmt"

// LinearFunctionalConstraint is  y = sum(coefs[i]*x[vars[i]]) + const,
// where y is Base.ResultVar. Built by Convert2Var when an affine
// expression needs to be materialized as a variable.
type LinearFunctionalConstraint struct {
	Base
	Coefs []float64
	Const float64
}

func NewLinearFunctionalConstraint(vars []int, coefs []float64, constant float64) *LinearFunctionalConstraint {
	return &LinearFunctionalConstraint{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), Const: constant}
}

func (c *LinearFunctionalConstraint) TypeName() string { return "LinearFunctionalConstraint" }

func (c *LinearFunctionalConstraint) HashKey() string {
	return fmt.Sprintf("lin|%s|%g", coefKey(c.Args(), c.Coefs), c.Const)
}

// QuadraticFunctionalConstraint is  y = sum(coefs[i]*x[vars[i]]) +
// sum(quad terms) + const.
type QuadraticFunctionalConstraint struct {
	Base
	Coefs []float64
	Quad  []QuadTerm
	Const float64
}

func NewQuadraticFunctionalConstraint(vars []int, coefs []float64, quad []QuadTerm, constant float64) *QuadraticFunctionalConstraint {
	return &QuadraticFunctionalConstraint{
		Base:  NewBase(vars),
		Coefs: append([]float64(nil), coefs...),
		Quad:  append([]QuadTerm(nil), quad...),
		Const: constant,
	}
}

func (c *QuadraticFunctionalConstraint) TypeName() string { return "QuadraticFunctionalConstraint" }

func (c *QuadraticFunctionalConstraint) HashKey() string {
	key := fmt.Sprintf("quad|%s|%g|", coefKey(c.Args(), c.Coefs), c.Const)
	for _, q := range c.Quad {
		key += fmt.Sprintf("%d*%d*%g,", q.Row, q.Col, q.Coef)
	}
	return key
}

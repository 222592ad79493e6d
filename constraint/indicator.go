package constraint

import "fmt"

// indicatorBase is embedded by every indicator constraint: BinVar=BinVal
// implies the wrapped algebraic row holds. BinVar is not itself part of
// Base.Args (the linear/quadratic expression's variables are), so that
// redefinition rules can treat the implied row uniformly.
type indicatorBase struct {
	Base
	BinVar int
	BinVal int // 0 or 1
	Coefs  []float64
	RHS    float64
}

func newIndicatorBase(binVar, binVal int, vars []int, coefs []float64, rhs float64) indicatorBase {
	return indicatorBase{
		Base:   NewBase(vars),
		BinVar: binVar,
		BinVal: binVal,
		Coefs:  append([]float64(nil), coefs...),
		RHS:    rhs,
	}
}

func (c *indicatorBase) hashKey(kind string) string {
	return fmt.Sprintf("%s|%d=%d|%s|%g", kind, c.BinVar, c.BinVal, coefKey(c.Args(), c.Coefs), c.RHS)
}

// IndicatorConstraintLinLE is  BinVar=BinVal => sum(coefs*vars) <= rhs.
type IndicatorConstraintLinLE struct{ indicatorBase }

func NewIndicatorConstraintLinLE(binVar, binVal int, vars []int, coefs []float64, rhs float64) *IndicatorConstraintLinLE {
	return &IndicatorConstraintLinLE{newIndicatorBase(binVar, binVal, vars, coefs, rhs)}
}
func (c *IndicatorConstraintLinLE) TypeName() string { return "IndicatorConstraintLinLE" }

// IndicatorConstraintLinEQ is  BinVar=BinVal => sum(coefs*vars) == rhs.
type IndicatorConstraintLinEQ struct{ indicatorBase }

func NewIndicatorConstraintLinEQ(binVar, binVal int, vars []int, coefs []float64, rhs float64) *IndicatorConstraintLinEQ {
	return &IndicatorConstraintLinEQ{newIndicatorBase(binVar, binVal, vars, coefs, rhs)}
}
func (c *IndicatorConstraintLinEQ) TypeName() string { return "IndicatorConstraintLinEQ" }

// IndicatorConstraintLinGE is  BinVar=BinVal => sum(coefs*vars) >= rhs.
type IndicatorConstraintLinGE struct{ indicatorBase }

func NewIndicatorConstraintLinGE(binVar, binVal int, vars []int, coefs []float64, rhs float64) *IndicatorConstraintLinGE {
	return &IndicatorConstraintLinGE{newIndicatorBase(binVar, binVal, vars, coefs, rhs)}
}
func (c *IndicatorConstraintLinGE) TypeName() string { return "IndicatorConstraintLinGE" }

// indicatorQuadBase adds quadratic terms to indicatorBase, for the Quad
// variants of indicator constraints.
type indicatorQuadBase struct {
	indicatorBase
	Quad []QuadTerm
}

func newIndicatorQuadBase(binVar, binVal int, vars []int, coefs []float64, quad []QuadTerm, rhs float64) indicatorQuadBase {
	return indicatorQuadBase{
		indicatorBase: newIndicatorBase(binVar, binVal, vars, coefs, rhs),
		Quad:          append([]QuadTerm(nil), quad...),
	}
}

// IndicatorConstraintQuadLE is the quadratic analogue of
// IndicatorConstraintLinLE.
type IndicatorConstraintQuadLE struct{ indicatorQuadBase }

func NewIndicatorConstraintQuadLE(binVar, binVal int, vars []int, coefs []float64, quad []QuadTerm, rhs float64) *IndicatorConstraintQuadLE {
	return &IndicatorConstraintQuadLE{newIndicatorQuadBase(binVar, binVal, vars, coefs, quad, rhs)}
}

func (c *IndicatorConstraintQuadLE) TypeName() string { return "IndicatorConstraintQuadLE" }

// IndicatorConstraintQuadEQ is the quadratic analogue of
// IndicatorConstraintLinEQ.
type IndicatorConstraintQuadEQ struct{ indicatorQuadBase }

func NewIndicatorConstraintQuadEQ(binVar, binVal int, vars []int, coefs []float64, quad []QuadTerm, rhs float64) *IndicatorConstraintQuadEQ {
	return &IndicatorConstraintQuadEQ{newIndicatorQuadBase(binVar, binVal, vars, coefs, quad, rhs)}
}

func (c *IndicatorConstraintQuadEQ) TypeName() string { return "IndicatorConstraintQuadEQ" }

// IndicatorConstraintQuadGE is the quadratic analogue of
// IndicatorConstraintLinGE.
type IndicatorConstraintQuadGE struct{ indicatorQuadBase }

func NewIndicatorConstraintQuadGE(binVar, binVal int, vars []int, coefs []float64, quad []QuadTerm, rhs float64) *IndicatorConstraintQuadGE {
	return &IndicatorConstraintQuadGE{newIndicatorQuadBase(binVar, binVal, vars, coefs, quad, rhs)}
}

func (c *IndicatorConstraintQuadGE) TypeName() string { return "IndicatorConstraintQuadGE" }

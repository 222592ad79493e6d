package constraint

import "fmt"

// CondLinConLE is  b <=> (sum(coefs[i]*x[vars[i]]) <= rhs), b binary and
// the constraint's ResultVar. The LT/GE/GT/EQ variants below share the
// same shape, differing only in comparator.
type CondLinConLE struct {
	Base
	Coefs []float64
	RHS   float64
}

func NewCondLinConLE(vars []int, coefs []float64, rhs float64) *CondLinConLE {
	return &CondLinConLE{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), RHS: rhs}
}
func (c *CondLinConLE) TypeName() string  { return "CondLinConLE" }
func (c *CondLinConLE) UsesContext() bool { return true }
func (c *CondLinConLE) HashKey() string   { return fmt.Sprintf("condle|%s|%g", coefKey(c.Args(), c.Coefs), c.RHS) }

type CondLinConLT struct {
	Base
	Coefs []float64
	RHS   float64
}

func NewCondLinConLT(vars []int, coefs []float64, rhs float64) *CondLinConLT {
	return &CondLinConLT{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), RHS: rhs}
}
func (c *CondLinConLT) TypeName() string  { return "CondLinConLT" }
func (c *CondLinConLT) UsesContext() bool { return true }
func (c *CondLinConLT) HashKey() string   { return fmt.Sprintf("condlt|%s|%g", coefKey(c.Args(), c.Coefs), c.RHS) }

type CondLinConGE struct {
	Base
	Coefs []float64
	RHS   float64
}

func NewCondLinConGE(vars []int, coefs []float64, rhs float64) *CondLinConGE {
	return &CondLinConGE{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), RHS: rhs}
}
func (c *CondLinConGE) TypeName() string  { return "CondLinConGE" }
func (c *CondLinConGE) UsesContext() bool { return true }
func (c *CondLinConGE) HashKey() string   { return fmt.Sprintf("condge|%s|%g", coefKey(c.Args(), c.Coefs), c.RHS) }

type CondLinConGT struct {
	Base
	Coefs []float64
	RHS   float64
}

func NewCondLinConGT(vars []int, coefs []float64, rhs float64) *CondLinConGT {
	return &CondLinConGT{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), RHS: rhs}
}
func (c *CondLinConGT) TypeName() string  { return "CondLinConGT" }
func (c *CondLinConGT) UsesContext() bool { return true }
func (c *CondLinConGT) HashKey() string   { return fmt.Sprintf("condgt|%s|%g", coefKey(c.Args(), c.Coefs), c.RHS) }

type CondLinConEQ struct {
	Base
	Coefs []float64
	RHS   float64
}

func NewCondLinConEQ(vars []int, coefs []float64, rhs float64) *CondLinConEQ {
	return &CondLinConEQ{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), RHS: rhs}
}
func (c *CondLinConEQ) TypeName() string  { return "CondLinConEQ" }
func (c *CondLinConEQ) UsesContext() bool { return true }
func (c *CondLinConEQ) HashKey() string   { return fmt.Sprintf("condeq|%s|%g", coefKey(c.Args(), c.Coefs), c.RHS) }

// CondQuadConLE, ..., mirror the CondLinCon* family for a quadratic
// comparison expression.
type CondQuadConLE struct {
	Base
	Coefs []float64
	Quad  []QuadTerm
	RHS   float64
}

func NewCondQuadConLE(vars []int, coefs []float64, quad []QuadTerm, rhs float64) *CondQuadConLE {
	return &CondQuadConLE{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), Quad: append([]QuadTerm(nil), quad...), RHS: rhs}
}
func (c *CondQuadConLE) TypeName() string  { return "CondQuadConLE" }
func (c *CondQuadConLE) UsesContext() bool { return true }

type CondQuadConLT struct {
	Base
	Coefs []float64
	Quad  []QuadTerm
	RHS   float64
}

func NewCondQuadConLT(vars []int, coefs []float64, quad []QuadTerm, rhs float64) *CondQuadConLT {
	return &CondQuadConLT{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), Quad: append([]QuadTerm(nil), quad...), RHS: rhs}
}
func (c *CondQuadConLT) TypeName() string  { return "CondQuadConLT" }
func (c *CondQuadConLT) UsesContext() bool { return true }

type CondQuadConGE struct {
	Base
	Coefs []float64
	Quad  []QuadTerm
	RHS   float64
}

func NewCondQuadConGE(vars []int, coefs []float64, quad []QuadTerm, rhs float64) *CondQuadConGE {
	return &CondQuadConGE{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), Quad: append([]QuadTerm(nil), quad...), RHS: rhs}
}
func (c *CondQuadConGE) TypeName() string  { return "CondQuadConGE" }
func (c *CondQuadConGE) UsesContext() bool { return true }

type CondQuadConGT struct {
	Base
	Coefs []float64
	Quad  []QuadTerm
	RHS   float64
}

func NewCondQuadConGT(vars []int, coefs []float64, quad []QuadTerm, rhs float64) *CondQuadConGT {
	return &CondQuadConGT{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), Quad: append([]QuadTerm(nil), quad...), RHS: rhs}
}
func (c *CondQuadConGT) TypeName() string  { return "CondQuadConGT" }
func (c *CondQuadConGT) UsesContext() bool { return true }

type CondQuadConEQ struct {
	Base
	Coefs []float64
	Quad  []QuadTerm
	RHS   float64
}

func NewCondQuadConEQ(vars []int, coefs []float64, quad []QuadTerm, rhs float64) *CondQuadConEQ {
	return &CondQuadConEQ{Base: NewBase(vars), Coefs: append([]float64(nil), coefs...), Quad: append([]QuadTerm(nil), quad...), RHS: rhs}
}
func (c *CondQuadConEQ) TypeName() string  { return "CondQuadConEQ" }
func (c *CondQuadConEQ) UsesContext() bool { return true }

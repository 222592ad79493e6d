package constraint

import "fmt"

// And is  y = AND(x[args]), y binary. Context-sensitive: in ContextPositive
// the conjuncts are asserted directly rather than linearized.
type And struct {
	Base
}

func NewAnd(vars []int) *And { return &And{Base: NewBase(vars)} }

func (c *And) TypeName() string     { return "And" }
func (c *And) UsesContext() bool    { return true }
func (c *And) HashKey() string      { return "and|" + argsKey(c.Args()) }

// Or is  y = OR(x[args]), y binary.
type Or struct {
	Base
}

func NewOr(vars []int) *Or { return &Or{Base: NewBase(vars)} }

func (c *Or) TypeName() string  { return "Or" }
func (c *Or) UsesContext() bool { return true }
func (c *Or) HashKey() string   { return "or|" + argsKey(c.Args()) }

// Not is  y = 1 - x[arg], x and y binary.
type Not struct {
	Base
}

func NewNot(arg int) *Not { return &Not{Base: NewBase([]int{arg})} }

func (c *Not) TypeName() string  { return "Not" }
func (c *Not) UsesContext() bool { return true }
func (c *Not) HashKey() string   { return fmt.Sprintf("not|%d", c.Args()[0]) }

package constraint

import "fmt"

// Div is  y = x[Numerator] / x[Denominator].
type Div struct {
	Base
}

func NewDiv(numerator, denominator int) *Div {
	return &Div{Base: NewBase([]int{numerator, denominator})}
}

func (c *Div) TypeName() string { return "Div" }

func (c *Div) Numerator() int   { return c.Args()[0] }
func (c *Div) Denominator() int { return c.Args()[1] }

func (c *Div) HashKey() string { return fmt.Sprintf("div|%d/%d", c.Numerator(), c.Denominator()) }

package constraint

import "fmt"

// IfThen is  y = cond ? then : else, cond binary.
type IfThen struct {
	Base
}

func NewIfThen(cond, then, els int) *IfThen {
	return &IfThen{Base: NewBase([]int{cond, then, els})}
}

func (c *IfThen) TypeName() string { return "IfThen" }

func (c *IfThen) Cond() int { return c.Args()[0] }
func (c *IfThen) Then() int { return c.Args()[1] }
func (c *IfThen) Else() int { return c.Args()[2] }

func (c *IfThen) HashKey() string {
	return fmt.Sprintf("ifthen|%d?%d:%d", c.Cond(), c.Then(), c.Else())
}

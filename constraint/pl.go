package constraint

// Breakpoint is one (x, y) vertex of a piecewise-linear function.
type Breakpoint struct {
	X, Y float64
}

// PLConstraint is  y = pwl(x[Arg]), defined by an ordered list of
// breakpoints (increasing X). y is Base.ResultVar.
type PLConstraint struct {
	Base
	Breakpoints []Breakpoint
}

func NewPLConstraint(arg int, breakpoints []Breakpoint) *PLConstraint {
	return &PLConstraint{Base: NewBase([]int{arg}), Breakpoints: append([]Breakpoint(nil), breakpoints...)}
}

func (c *PLConstraint) TypeName() string { return "PLConstraint" }

func (c *PLConstraint) Arg() int { return c.Args()[0] }

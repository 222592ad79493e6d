package constraint

// AllDiff asserts that x[args] take pairwise-distinct integer values. Not
// dedupable: it is a static assertion, not a functional expression, so it
// has no result variable.
type AllDiff struct {
	Base
}

func NewAllDiff(vars []int) *AllDiff {
	return &AllDiff{Base: NewBase(vars)}
}

func (c *AllDiff) TypeName() string { return "AllDiff" }

package constraint

// Max is  y = max(x[args]).
type Max struct {
	Base
}

func NewMax(vars []int) *Max { return &Max{Base: NewBase(vars)} }

func (c *Max) TypeName() string  { return "Max" }
func (c *Max) UsesContext() bool { return true }
func (c *Max) HashKey() string   { return "max|" + argsKey(c.Args()) }

// Min is  y = min(x[args]).
type Min struct {
	Base
}

func NewMin(vars []int) *Min { return &Min{Base: NewBase(vars)} }

func (c *Min) TypeName() string  { return "Min" }
func (c *Min) UsesContext() bool { return true }
func (c *Min) HashKey() string   { return "min|" + argsKey(c.Args()) }

// Abs is  y = |x[arg]|.
type Abs struct {
	Base
}

func NewAbs(arg int) *Abs { return &Abs{Base: NewBase([]int{arg})} }

func (c *Abs) TypeName() string  { return "Abs" }
func (c *Abs) UsesContext() bool { return true }
func (c *Abs) HashKey() string   { return "abs|" + argsKey(c.Args()) }

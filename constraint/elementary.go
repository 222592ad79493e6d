package constraint

import "fmt"

// elementary is embedded by every single-argument elementary nonlinear
// function constraint (y = f(x[arg])), optionally parameterized (base,
// exponent).
type elementary struct {
	Base
	Param    float64
	hasParam bool
}

func newElementary(arg int) elementary {
	return elementary{Base: NewBase([]int{arg})}
}

func newElementaryParam(arg int, param float64) elementary {
	return elementary{Base: NewBase([]int{arg}), Param: param, hasParam: true}
}

func (e *elementary) Arg() int { return e.Args()[0] }

// Exp is  y = exp(x[arg]).
type Exp struct{ elementary }

func NewExp(arg int) *Exp { return &Exp{newElementary(arg)} }

func (c *Exp) TypeName() string { return "Exp" }
func (c *Exp) HashKey() string  { return fmt.Sprintf("exp|%d", c.Arg()) }

// ExpA is  y = Param^x[arg] (a general base, vs. Exp's fixed base e).
type ExpA struct{ elementary }

func NewExpA(arg int, base float64) *ExpA { return &ExpA{newElementaryParam(arg, base)} }

func (c *ExpA) TypeName() string { return "ExpA" }
func (c *ExpA) HashKey() string  { return fmt.Sprintf("expa|%d|%g", c.Arg(), c.Param) }

// Log is  y = ln(x[arg]).
type Log struct{ elementary }

func NewLog(arg int) *Log { return &Log{newElementary(arg)} }

func (c *Log) TypeName() string { return "Log" }
func (c *Log) HashKey() string  { return fmt.Sprintf("log|%d", c.Arg()) }

// LogA is  y = log base Param of x[arg].
type LogA struct{ elementary }

func NewLogA(arg int, base float64) *LogA { return &LogA{newElementaryParam(arg, base)} }

func (c *LogA) TypeName() string { return "LogA" }
func (c *LogA) HashKey() string  { return fmt.Sprintf("loga|%d|%g", c.Arg(), c.Param) }

// Pow is  y = x[arg]^Param.
type Pow struct{ elementary }

func NewPow(arg int, exponent float64) *Pow { return &Pow{newElementaryParam(arg, exponent)} }

func (c *Pow) TypeName() string { return "Pow" }
func (c *Pow) HashKey() string  { return fmt.Sprintf("pow|%d|%g", c.Arg(), c.Param) }

// Sin is  y = sin(x[arg]).
type Sin struct{ elementary }

func NewSin(arg int) *Sin { return &Sin{newElementary(arg)} }

func (c *Sin) TypeName() string { return "Sin" }
func (c *Sin) HashKey() string  { return fmt.Sprintf("sin|%d", c.Arg()) }

// Cos is  y = cos(x[arg]).
type Cos struct{ elementary }

func NewCos(arg int) *Cos { return &Cos{newElementary(arg)} }

func (c *Cos) TypeName() string { return "Cos" }
func (c *Cos) HashKey() string  { return fmt.Sprintf("cos|%d", c.Arg()) }

// Tan is  y = tan(x[arg]).
type Tan struct{ elementary }

func NewTan(arg int) *Tan { return &Tan{newElementary(arg)} }

func (c *Tan) TypeName() string { return "Tan" }
func (c *Tan) HashKey() string  { return fmt.Sprintf("tan|%d", c.Arg()) }

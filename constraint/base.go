// Package constraint defines every concrete constraint shape the converter
// understands: algebraic rows, functional "y = f(args)" expressions, and
// static structured constraints (indicator, SOS, complementarity, PL).
package constraint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/costela/flatconv"
)

// Constraint is the interface every concrete constraint type satisfies. A
// static structural equality/hash is exposed separately through Dedupable
// and HashKey, since only functional constraints participate in CSE-style
// deduplication.
type Constraint interface {
	TypeName() string
	Args() []int
	ResultVar() (int, bool)
	Context() flatconv.Context
	SetContext(flatconv.Context)
	// UsesContext reports whether this constraint type's rewrite depends on
	// its context annotation (logical connectives, conditionals); purely
	// algebraic and structured types do not and report false.
	UsesContext() bool
}

// ResultSetter is implemented by every functional constraint type (via the
// embedded Base), letting the converter attach a freshly-allocated result
// variable without any constraint type needing bespoke plumbing.
type ResultSetter interface {
	SetResultVar(int)
}

// Dedupable is implemented by constraint types that participate in a
// keeper's CSE map: functional constraints of the shape y = f(args), where
// re-adding a structurally-equal expression should return the existing
// result variable rather than a new one.
type Dedupable interface {
	HashKey() string
}

// Base is embedded by every concrete constraint type. It carries the
// fields common to all of them: the argument variables, the optional
// result variable (functional constraints only), and the context
// annotation.
type Base struct {
	args      []int
	resultVar int
	hasResult bool
	ctx       flatconv.Context
}

func NewBase(args []int) Base {
	cp := make([]int, len(args))
	copy(cp, args)
	return Base{args: cp}
}

func (b *Base) Args() []int { return b.args }

func (b *Base) ResultVar() (int, bool) { return b.resultVar, b.hasResult }

// SetResultVar attaches a result variable to a functional constraint. It is
// an internal operation of the converter: assignResult2Args calls it when it
// allocates the result variable, and redefinition rules that allocate the
// result variable themselves call it directly.
func (b *Base) SetResultVar(v int) {
	b.resultVar = v
	b.hasResult = true
}

func (b *Base) Context() flatconv.Context { return b.ctx }

func (b *Base) SetContext(c flatconv.Context) { b.ctx = c }

func (b *Base) UsesContext() bool { return false }

// coefKey renders a (variable -> coefficient) map as a stable string for
// hashing, sorting by variable index so map iteration order never affects
// the key.
func coefKey(vars []int, coefs []float64) string {
	type pair struct {
		v int
		c float64
	}
	pairs := make([]pair, len(vars))
	for i := range vars {
		pairs[i] = pair{vars[i], coefs[i]}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].v < pairs[j].v })
	var sb strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&sb, "%d:%g,", p.v, p.c)
	}
	return sb.String()
}

// argsKey renders an ordered argument list as a stable string; unlike
// coefKey it does not sort, since argument order is significant for most
// functional types (e.g. Div's numerator/denominator, IfThen's branches).
func argsKey(args []int) string {
	var sb strings.Builder
	for _, a := range args {
		fmt.Fprintf(&sb, "%d,", a)
	}
	return sb.String()
}

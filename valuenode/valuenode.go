// Package valuenode implements the value-presolve DAG: typed per-entity
// value arrays (one per constraint family; variables and objectives have
// none in this module) plus the
// links that record how values on rewritten constraints map back to the
// constraints the flattener originally submitted.
package valuenode

import "fmt"

// ValueNode is a growable, typed array of per-entity scalars. One
// ValueNode exists per constraint ConstraintKeeper; this module creates
// none for variables or objectives.
type ValueNode struct {
	name   string
	values []float64
}

// NewValueNode creates an empty value node for the named family.
func NewValueNode(name string) *ValueNode {
	return &ValueNode{name: name}
}

func (n *ValueNode) Name() string { return n.name }

// Grow appends size zero-valued entries and returns the index of the first
// one. Value nodes only ever grow during conversion; they never shrink.
func (n *ValueNode) Grow(size int) int {
	first := len(n.values)
	n.values = append(n.values, make([]float64, size)...)
	return first
}

func (n *ValueNode) Len() int { return len(n.values) }

func (n *ValueNode) Get(i int) float64 { return n.values[i] }

func (n *ValueNode) Set(i int, v float64) { n.values[i] = v }

// NodeRange is a contiguous slice [First, First+Size) into a ValueNode,
// used to wire link endpoints.
type NodeRange struct {
	Node  *ValueNode
	First int
	Size  int
}

// Values returns the slice of values covered by the range.
func (r NodeRange) Values() []float64 {
	if r.Node == nil {
		return nil
	}
	return r.Node.values[r.First : r.First+r.Size]
}

func (r NodeRange) String() string {
	name := "<nil>"
	if r.Node != nil {
		name = r.Node.name
	}
	return fmt.Sprintf("%s[%d:%d]", name, r.First, r.First+r.Size)
}

// Aggregator reduces several target values down to the single source value
// a One2ManyLink copies backward during postsolve.
type Aggregator func(targets []float64) float64

// SumAggregator adds every target value together. Used, e.g., to recover a
// PL constraint's multiplier sum, or an original variable's value as the
// sum of lambda-weighted breakpoints.
func SumAggregator(targets []float64) float64 {
	var sum float64
	for _, v := range targets {
		sum += v
	}
	return sum
}

// FirstAggregator returns the first target value, used for duals where the
// dominant row of a rewritten constraint carries the meaningful value
// (e.g. the first row of a range-linear split).
func FirstAggregator(targets []float64) float64 {
	if len(targets) == 0 {
		return 0
	}
	return targets[0]
}

// FirstNonzeroAggregator returns the first nonzero target value, or zero if
// all targets are zero.
func FirstNonzeroAggregator(targets []float64) float64 {
	for _, v := range targets {
		if v != 0 {
			return v
		}
	}
	return 0
}

// Link is a directed edge in the presolve DAG describing how values on a
// target NodeRange map back to a source NodeRange.
type Link interface {
	Source() NodeRange
	Target() NodeRange
	// Postsolve writes the backward-mapped values into dst, which must have
	// length Source().Size.
	Postsolve(dst []float64)
}

// CopyLink is an element-wise copy: Source().Size == Target().Size.
type CopyLink struct {
	src, tgt NodeRange
}

// NewCopyLink builds a CopyLink, panicking if the ranges' sizes differ —
// this would be an internal defect (a malformed autolink scope), not a
// recoverable runtime condition.
func NewCopyLink(src, tgt NodeRange) *CopyLink {
	if src.Size != tgt.Size {
		panic(fmt.Sprintf("valuenode: CopyLink size mismatch: %s vs %s", src, tgt))
	}
	return &CopyLink{src: src, tgt: tgt}
}

func (l *CopyLink) Source() NodeRange { return l.src }
func (l *CopyLink) Target() NodeRange { return l.tgt }

func (l *CopyLink) Postsolve(dst []float64) {
	copy(dst, l.tgt.Values())
}

// One2ManyLink maps one source element to several target elements (e.g. a
// PLConstraint rewritten into several linear rows), reducing backward with
// Aggregator. Source().Size must be 1.
type One2ManyLink struct {
	src        NodeRange
	tgt        NodeRange
	aggregator Aggregator
}

// NewOne2ManyLink builds a One2ManyLink. aggregator defaults to
// SumAggregator when nil.
func NewOne2ManyLink(src, tgt NodeRange, aggregator Aggregator) *One2ManyLink {
	if src.Size != 1 {
		panic(fmt.Sprintf("valuenode: One2ManyLink source must have size 1, got %s", src))
	}
	if aggregator == nil {
		aggregator = SumAggregator
	}
	return &One2ManyLink{src: src, tgt: tgt, aggregator: aggregator}
}

func (l *One2ManyLink) Source() NodeRange { return l.src }
func (l *One2ManyLink) Target() NodeRange { return l.tgt }

func (l *One2ManyLink) Postsolve(dst []float64) {
	dst[0] = l.aggregator(l.tgt.Values())
}

// Presolver is the value-presolve DAG: the ordered list of links recorded
// during conversion. Links are walked in reverse registration order during
// postsolve, mirroring how conversion only ever appends new constraints
// derived from earlier ones.
type Presolver struct {
	links []Link
}

// NewPresolver returns an empty presolve DAG.
func NewPresolver() *Presolver {
	return &Presolver{}
}

// AddLink registers a new link. Called once per autolink scope exit.
func (p *Presolver) AddLink(l Link) {
	p.links = append(p.links, l)
}

// Links returns the registered links in registration order.
func (p *Presolver) Links() []Link {
	return p.links
}

// Postsolve walks every link in reverse registration order, writing each
// link's backward-mapped values into the source value node. Because later
// links can depend on values produced by applying earlier (in reverse:
// later-registered) links first, walking newest-to-oldest guarantees that
// by the time a link's target range is read, any rewrite chain feeding it
// has already been resolved.
func (p *Presolver) Postsolve() {
	for i := len(p.links) - 1; i >= 0; i-- {
		link := p.links[i]
		src := link.Source()
		buf := make([]float64, src.Size)
		link.Postsolve(buf)
		for j, v := range buf {
			src.Node.Set(src.First+j, v)
		}
	}
}

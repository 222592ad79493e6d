// Package keeper implements ConstraintKeeper<C>: a per-type, append-only
// pool of constraints, optionally backed by a CSE dedup map, each wired to
// one value node for carrying solution data (duals, basis, status) back
// through postsolve.
package keeper

import (
	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
	"github.com/costela/flatconv/modelapi"
	"github.com/costela/flatconv/valuenode"
)

// Converter is the subset of *convert.Converter a keeper needs to drive
// conversion, expressed as an interface here to avoid an import cycle
// between keeper and convert (convert.Converter embeds a Keeper registry).
type Converter interface {
	// RunConversion dispatches constraint i (already known to need
	// conversion) to its type-specific rewrite rule.
	RunConversion(c constraint.Constraint, keeperName string, index int) error
	// NeedsConversion reports a solver-specific predicate beyond plain
	// acceptance, e.g. Gurobi's Pow requiring a non-negative base.
	NeedsConversion(c constraint.Constraint) bool
	// Accepts reports the active ModelAPI's acceptance level for c's type,
	// after applying any acc:<tag> override.
	Accepts(c constraint.Constraint) modelapi.Acceptance
}

// AnyKeeper is the type-erased view of a Keeper[C], used by FlatModel to
// hold every keeper in one fixed-order slice for round-robin conversion
// regardless of C.
type AnyKeeper interface {
	TypeName() string
	Empty() bool
	ConvertAllConstraints(conv Converter) error
}

// Keeper is a typed pool of constraints of shape C. For dedupable types
// (those implementing constraint.Dedupable), Add consults and maintains a
// hash map from HashKey to index so structurally-equal functional
// expressions collapse onto one result variable.
type Keeper[C constraint.Constraint] struct {
	typeName string
	mapped   bool
	items    []C
	index    map[string]int
	node     *valuenode.ValueNode
}

// New constructs an empty keeper for constraint type C, named typeName
// (used in error messages and value-node naming). mapped should be true
// for functional constraint types that support CSE dedup.
func New[C constraint.Constraint](typeName string, mapped bool) *Keeper[C] {
	k := &Keeper[C]{
		typeName: typeName,
		mapped:   mapped,
		node:     valuenode.NewValueNode(typeName),
	}
	if mapped {
		k.index = make(map[string]int)
	}
	return k
}

func (k *Keeper[C]) TypeName() string { return k.typeName }

func (k *Keeper[C]) Len() int { return len(k.items) }

func (k *Keeper[C]) Node() *valuenode.ValueNode { return k.node }

// Add appends c to the pool, extends the value node by one entry, and
// returns the new index. For mapped keepers, a second Add of a
// structurally-equal item is a defect: callers are expected to consult
// MapFind first (via AssignResult2Args), so an unconditional re-Add here
// means the dedup contract was violated upstream.
func (k *Keeper[C]) Add(c C) (int, error) {
	if k.mapped {
		if dd, ok := constraint.Constraint(c).(constraint.Dedupable); ok {
			key := dd.HashKey()
			if existing, ok := k.index[key]; ok {
				return existing, flatconv.NewDuplicateMapInsertError(k.typeName, existing)
			}
			idx := len(k.items)
			k.items = append(k.items, c)
			k.node.Grow(1)
			k.index[key] = idx
			return idx, nil
		}
	}
	idx := len(k.items)
	k.items = append(k.items, c)
	k.node.Grow(1)
	return idx, nil
}

// MapFind looks up a dedupable constraint by structural equality, without
// inserting it. Returns the index of an existing structurally-equal item
// and true, or (0, false) if none exists.
func (k *Keeper[C]) MapFind(c C) (int, bool) {
	if !k.mapped {
		return 0, false
	}
	dd, ok := constraint.Constraint(c).(constraint.Dedupable)
	if !ok {
		return 0, false
	}
	idx, ok := k.index[dd.HashKey()]
	return idx, ok
}

func (k *Keeper[C]) Get(i int) C { return k.items[i] }

// SelectValueNodeRange returns the single-entry NodeRange for item i, used
// to wire autolink sources.
func (k *Keeper[C]) SelectValueNodeRange(i int) valuenode.NodeRange {
	return valuenode.NodeRange{Node: k.node, First: i, Size: 1}
}

// ConvertAllConstraints iterates every stored item (the length is re-read
// on each step, so items appended to this keeper by rewrites during the
// loop are reached in the same call) and dispatches to conv.RunConversion for any item the active ModelAPI
// does not accept, or that conv.NeedsConversion flags regardless of
// acceptance.
func (k *Keeper[C]) ConvertAllConstraints(conv Converter) error {
	for i := 0; i < len(k.items); i++ {
		c := k.items[i]
		accepted := conv.Accepts(c) != modelapi.NotAccepted
		if accepted && !conv.NeedsConversion(c) {
			continue
		}
		if err := conv.RunConversion(c, k.typeName, i); err != nil {
			return err
		}
	}
	return nil
}

// RemoveWhere deletes every item for which pred returns true, compacting
// the backing slice and rebuilding the value node to match. Only safe to
// call before any autolink scope has referenced this keeper's node — once
// conversion begins, value nodes only ever grow, never shrink or
// renumber, since a registered Link's NodeRange indices would otherwise go
// stale. Preprocessing is the only caller, and it runs before ConvertItems
// opens its first scope.
func (k *Keeper[C]) RemoveWhere(pred func(c C) bool) int {
	kept := k.items[:0]
	var newIndex map[string]int
	if k.mapped {
		newIndex = make(map[string]int, len(k.index))
	}
	removed := 0
	for _, c := range k.items {
		if pred(c) {
			removed++
			continue
		}
		if k.mapped {
			if dd, ok := constraint.Constraint(c).(constraint.Dedupable); ok {
				newIndex[dd.HashKey()] = len(kept)
			}
		}
		kept = append(kept, c)
	}
	k.items = kept
	if k.mapped {
		k.index = newIndex
	}
	k.node = valuenode.NewValueNode(k.typeName)
	k.node.Grow(len(k.items))
	return removed
}

// Empty reports whether the keeper currently holds no items.
func (k *Keeper[C]) Empty() bool { return len(k.items) == 0 }

// PushAll sends every remaining item to api.AddConstraint, in index order.
// Called once, after the conversion loop has rewritten everything the
// active ModelAPI does not accept.
func (k *Keeper[C]) PushAll(api modelapi.ModelAPI) error {
	for _, c := range k.items {
		if err := api.AddConstraint(c); err != nil {
			return err
		}
	}
	return nil
}

// Package convert implements the FlatConverter: the driver that stores
// incoming constraints, dispatches rewrites for whatever the active
// ModelAPI rejects, and pushes the resulting solver-acceptable model to
// the ModelAPI.
package convert

import (
	"context"
	"fmt"

	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
	"github.com/costela/flatconv/keeper"
	"github.com/costela/flatconv/model"
	"github.com/costela/flatconv/modelapi"
	"github.com/costela/flatconv/valuenode"
)

// NeedsConversionFunc is a solver-specific predicate beyond plain
// acceptance — e.g. Gurobi's Pow requiring a non-negative base even when
// Pow is otherwise Recommended. The default NeedsConversionFunc always
// returns false.
type NeedsConversionFunc func(c constraint.Constraint) bool

// Converter is the FlatConverter: it owns the FlatModel, drives the
// conversion loop against an active ModelAPI, and records every rewrite in
// a value-presolve DAG so solution values can be walked back to the
// original model after solving.
type Converter struct {
	model *model.FlatModel
	api   modelapi.ModelAPI
	cfg   *flatconv.Config

	presolver *valuenode.Presolver
	scopes    []*autolinkScope

	needsConversion NeedsConversionFunc
	conversions     int // bumped by RunConversion; used to detect a dry pass
}

// autolinkScope accumulates every NodeRange of a constraint added (or found
// by dedup) while converting one source constraint, so a single Link can
// be built from the source range to the union of targets on scope exit.
// Variables allocated in the scope are not recorded.
type autolinkScope struct {
	source     valuenode.NodeRange
	targets    []valuenode.NodeRange
	aggregator valuenode.Aggregator
}

// New constructs a Converter over fm, driving api, configured by opts.
func New(fm *model.FlatModel, api modelapi.ModelAPI, opts ...flatconv.Option) (*Converter, error) {
	cfg, err := flatconv.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Converter{
		model:           fm,
		api:             api,
		cfg:             cfg,
		presolver:       valuenode.NewPresolver(),
		needsConversion: func(constraint.Constraint) bool { return false },
	}, nil
}

// SetNeedsConversionFunc installs a solver-specific predicate consulted in
// addition to plain ModelAPI acceptance.
func (conv *Converter) SetNeedsConversionFunc(f NeedsConversionFunc) {
	if f == nil {
		f = func(constraint.Constraint) bool { return false }
	}
	conv.needsConversion = f
}

func (conv *Converter) Model() *model.FlatModel    { return conv.model }
func (conv *Converter) Config() *flatconv.Config   { return conv.cfg }
func (conv *Converter) Presolver() *valuenode.Presolver { return conv.presolver }

// Accepts reports the effective acceptance level for c, applying any
// acc:<tag> override over the ModelAPI's own declared level.
func (conv *Converter) Accepts(c constraint.Constraint) modelapi.Acceptance {
	if lvl, ok := conv.cfg.AcceptanceFor(tagFor(c.TypeName())); ok {
		return modelapi.Acceptance(lvl)
	}
	return conv.api.Accepts(c)
}

func (conv *Converter) NeedsConversion(c constraint.Constraint) bool {
	return conv.needsConversion(c)
}

func tagFor(typeName string) string {
	// acc:<tag> options use the lower-cased type name as tag, e.g. "abs",
	// "linconle", matching golpa-style terse option keys.
	out := make([]byte, 0, len(typeName))
	for _, r := range typeName {
		if r >= 'A' && r <= 'Z' {
			r = r - 'A' + 'a'
		}
		out = append(out, byte(r))
	}
	return string(out)
}

// inScope reports whether a conversion is currently being dispatched.
func (conv *Converter) inScope() bool { return len(conv.scopes) > 0 }

func (conv *Converter) currentScope() *autolinkScope {
	return conv.scopes[len(conv.scopes)-1]
}

// recordTarget appends r to the currently-open autolink scope's target
// list, if one is open (outside a conversion dispatch, e.g. during initial
// model construction, there is nothing to record into).
func (conv *Converter) recordTarget(r valuenode.NodeRange) {
	if conv.inScope() {
		s := conv.currentScope()
		s.targets = append(s.targets, r)
	}
}

// SetLinkAggregator overrides the default (sum) aggregator used for the
// One2ManyLink built when the current autolink scope closes. No
// redefinition rule in this module calls it, so every One2ManyLink the
// converter builds uses the sum.
func (conv *Converter) SetLinkAggregator(agg valuenode.Aggregator) {
	if conv.inScope() {
		conv.currentScope().aggregator = agg
	}
}

// RunConversion dispatches the rewrite for one rejected (or
// NeedsConversion-flagged) constraint, wiring an autolink scope around it.
func (conv *Converter) RunConversion(c constraint.Constraint, keeperName string, index int) error {
	conv.conversions++

	if c.UsesContext() && c.Context() == flatconv.ContextNone {
		c.SetContext(flatconv.ContextMixed)
	}

	source := conv.sourceRange(keeperName, index)

	scope := &autolinkScope{source: source}
	conv.scopes = append(conv.scopes, scope)
	defer func() {
		conv.scopes = conv.scopes[:len(conv.scopes)-1]
	}()

	if err := conv.dispatch(c, index); err != nil {
		return err
	}

	conv.closeScope(scope)
	return nil
}

// closeScope builds and registers the Link for a completed autolink scope.
// A single target of size 1 becomes a CopyLink; anything else becomes a
// One2ManyLink using the scope's aggregator (default: sum).
func (conv *Converter) closeScope(scope *autolinkScope) {
	if len(scope.targets) == 0 {
		return
	}
	totalSize := 0
	node := scope.targets[0].Node
	first := scope.targets[0].First
	contiguous := true
	for i, t := range scope.targets {
		if i > 0 && (t.Node != node || t.First != first+totalSize) {
			contiguous = false
		}
		totalSize += t.Size
	}

	var target valuenode.NodeRange
	if contiguous {
		target = valuenode.NodeRange{Node: node, First: first, Size: totalSize}
	} else {
		// Targets span disjoint value nodes; fall back to wrapping each
		// range as its own link sharing the same source, so no value goes
		// unlinked (Testable Property 4: link completeness).
		for _, t := range scope.targets {
			conv.registerLink(scope.source, t, scope.aggregator)
		}
		return
	}

	conv.registerLink(scope.source, target, scope.aggregator)
}

func (conv *Converter) registerLink(source, target valuenode.NodeRange, agg valuenode.Aggregator) {
	if source.Size == 1 && target.Size == 1 {
		conv.presolver.AddLink(valuenode.NewCopyLink(source, target))
		return
	}
	conv.presolver.AddLink(valuenode.NewOne2ManyLink(source, target, agg))
}

func (conv *Converter) sourceRange(keeperName string, index int) valuenode.NodeRange {
	k := conv.keeperNode(keeperName)
	return valuenode.NodeRange{Node: k, First: index, Size: 1}
}

func (conv *Converter) keeperNode(name string) *valuenode.ValueNode {
	for _, k := range conv.model.Keepers() {
		if k.TypeName() == name {
			if withNode, ok := k.(interface{ Node() *valuenode.ValueNode }); ok {
				return withNode.Node()
			}
		}
	}
	panic(fmt.Sprintf("convert: unknown keeper %q", name))
}

// maxConversionPasses bounds the fixed-point loop in ConvertItems. The
// redefinition catalog contains no cycles by construction, so a genuine
// model converges in a small number of passes (one rewrite type feeding
// another, e.g. PLConstraint -> SOS2 -> MIP big-M, is at most a handful of
// keepers deep); hitting this cap means something is actually cyclic.
const maxConversionPasses = 64

// ConvertItems runs the conversion loop to a fixed point: it repeatedly
// walks every keeper (fixed registration order) and converts whatever is
// rejected, until a full pass over all keepers makes no further rewrites.
// A single keeper's own ConvertAllConstraints already reaches constraints
// appended to itself mid-pass, but a rewrite can just as easily target a
// keeper whose own pass has already finished for this round (e.g. PL's
// redefinition emits an SOS2 item, and SOS2 is registered earlier than
// PLConstraint) — so convergence requires looping over the whole keeper
// list, not just one pass through it.
func (conv *Converter) ConvertItems() error {
	if conv.cfg.Relax {
		conv.model.Relax()
	}
	if err := conv.preprocessEqualities(); err != nil {
		return err
	}
	for pass := 0; ; pass++ {
		if pass >= maxConversionPasses {
			return flatconv.NewConversionDidNotConvergeError(maxConversionPasses)
		}
		before := conv.conversions
		for _, k := range conv.model.Keepers() {
			if err := k.ConvertAllConstraints(converterAdapter{conv}); err != nil {
				return err
			}
		}
		if conv.conversions == before {
			return nil
		}
	}
}

// converterAdapter lets *Converter satisfy keeper.Converter without
// exposing RunConversion/NeedsConversion/Accepts signatures that collide
// with other meanings on Converter's own exported surface.
type converterAdapter struct{ conv *Converter }

func (a converterAdapter) RunConversion(c constraint.Constraint, keeperName string, index int) error {
	return a.conv.RunConversion(c, keeperName, index)
}
func (a converterAdapter) NeedsConversion(c constraint.Constraint) bool { return a.conv.NeedsConversion(c) }
func (a converterAdapter) Accepts(c constraint.Constraint) modelapi.Acceptance {
	return a.conv.Accepts(c)
}

// FinishModelInput freezes the FlatModel, pushes every keeper's final
// contents to the ModelAPI in the sequence InitProblemModificationPhase,
// AddVariables, SetObjective, AddConstraint*, FinishProblemModificationPhase.
// It makes no separate acceptance check: an item the ModelAPI does not take
// surfaces as the error of its AddConstraint call.
func (conv *Converter) FinishModelInput() error {
	conv.model.FinishModelInput()

	info := modelapi.ProblemInfo{
		NumVars:  conv.model.NumVars(),
		Maximize: conv.model.Maximize(),
	}
	if err := conv.api.InitProblemModificationPhase(info); err != nil {
		return flatconv.NewSolverNativeError("InitProblemModificationPhase", 0, err)
	}

	lb := make([]float64, conv.model.NumVars())
	ub := make([]float64, conv.model.NumVars())
	typs := make([]flatconv.VarType, conv.model.NumVars())
	for i, v := range conv.model.Vars() {
		l, u := v.Bounds()
		lb[i], ub[i] = l, u
		typs[i] = v.Type()
	}
	if err := conv.api.AddVariables(lb, ub, typs); err != nil {
		return flatconv.NewSolverNativeError("AddVariables", 0, err)
	}

	if err := conv.api.SetLinearObjective(0, conv.model.LinearObjective()); err != nil {
		return flatconv.NewSolverNativeError("SetLinearObjective", 0, err)
	}
	if quad := conv.model.QuadraticObjective(); len(quad) > 0 {
		if err := conv.api.SetQuadraticObjective(0, quad); err != nil {
			return flatconv.NewSolverNativeError("SetQuadraticObjective", 0, err)
		}
	}

	for _, k := range conv.model.Keepers() {
		if err := pushKeeper(conv, k); err != nil {
			return err
		}
	}

	if err := conv.api.FinishProblemModificationPhase(); err != nil {
		return flatconv.NewSolverNativeError("FinishProblemModificationPhase", 0, err)
	}

	if path := conv.cfg.WriteProblemPath; path != "" {
		if writer, ok := conv.api.(modelapi.ProblemWriter); ok {
			if err := writer.WriteProblem(path); err != nil {
				return flatconv.NewSolverNativeError("WriteProblem", 0, err)
			}
		}
	}
	if path := conv.cfg.WriteGraphPath; path != "" {
		if err := conv.writeGraph(path); err != nil {
			return err
		}
	}

	return nil
}

// pushKeeperLister is implemented by every keeper.Keeper[C] to let
// FinishModelInput push heterogeneous keepers without generic code at the
// call site.
type pushKeeperLister interface {
	PushAll(api modelapi.ModelAPI) error
}

func pushKeeper(conv *Converter, k keeper.AnyKeeper) error {
	pusher, ok := k.(pushKeeperLister)
	if !ok {
		return fmt.Errorf("convert: keeper %q does not implement PushAll", k.TypeName())
	}
	return pusher.PushAll(conv.api)
}

// PostsolveSolution walks the presolve DAG in reverse, carrying the values
// held in converted items' value-node entries back to their source entries.
// Nothing in this module writes a Backend result into the value nodes; the
// caller fills them before calling this. Variables have no value node.
func (conv *Converter) PostsolveSolution() {
	conv.presolver.Postsolve()
}

// SolveWithContext returns ctx.Err() if ctx is already done and otherwise
// runs ConvertItems. It neither pushes nor solves the model, and ctx is not
// consulted again once conversion has started.
func (conv *Converter) SolveWithContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return conv.ConvertItems()
}

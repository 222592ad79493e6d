package convert

import (
	"math"

	"github.com/costela/flatconv/model"
)

// varBounds fetches variable i's bounds as a model.Bounds pair.
func (conv *Converter) varBounds(i int) model.Bounds {
	lb, ub := conv.model.Var(i).Bounds()
	return model.Bounds{LB: lb, UB: ub}
}

// maxBounds computes the bounds of y = max(x[args]).
func maxBounds(conv *Converter, args []int) model.Bounds {
	lb, ub := math.Inf(1), math.Inf(-1)
	for _, a := range args {
		b := conv.varBounds(a)
		if b.LB < lb {
			lb = b.LB
		}
		if b.UB > ub {
			ub = b.UB
		}
	}
	return model.Bounds{LB: lb, UB: ub}
}

// minBounds computes the bounds of y = min(x[args]).
func minBounds(conv *Converter, args []int) model.Bounds {
	lb, ub := math.Inf(1), math.Inf(-1)
	for _, a := range args {
		b := conv.varBounds(a)
		if b.LB < lb {
			lb = b.LB
		}
		if b.UB > ub {
			ub = b.UB
		}
	}
	return model.Bounds{LB: lb, UB: ub}
}

// absBounds computes the bounds of y = |x[arg]|.
func absBounds(conv *Converter, arg int) model.Bounds {
	b := conv.varBounds(arg)
	hi := math.Max(math.Abs(b.LB), math.Abs(b.UB))
	lo := 0.0
	if b.LB > 0 {
		lo = b.LB
	} else if b.UB < 0 {
		lo = -b.UB
	}
	return model.Bounds{LB: lo, UB: hi}
}

// boolBounds is the [0,1] integer bounds shared by every binary result
// variable (And/Or/Not, logical predicates, CondLinCon* indicators).
func boolBounds() model.Bounds { return model.Bounds{LB: 0, UB: 1} }

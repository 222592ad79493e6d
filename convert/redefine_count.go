package convert

import (
	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
)

// countLike is the narrow view redefineCount needs from both Count and
// NumberofConst (they share the same "count of args equal to a constant"
// shape, differing only in whether value is allowed to vary at solve
// time — irrelevant to the rewrite itself).
type countLike interface {
	constraint.Constraint
	constraint.ResultSetter
}

// redefineCount rewrites y = count(x[args] == value) using one indicator
// binary per argument, z_i=1 => x_i == value, and y = sum(z_i). This is a
// one-directional linearization: z_i=1 forces x_i == value, so y never
// exceeds the true count, and y can reach it by setting every matching
// z_i; nothing forces z_i=1 when x_i == value, so y may also be smaller
// than the true count.
func (conv *Converter) redefineCount(c countLike, value float64) error {
	args := c.Args()
	z := make([]int, len(args))
	for i, a := range args {
		b, err := conv.redefineVariable(0, 1, flatconv.Integer)
		if err != nil {
			return err
		}
		z[i] = b.Index()
		eq := constraint.NewIndicatorConstraintLinEQ(b.Index(), 1, []int{a}, []float64{1}, value)
		if _, err := addGeneric(conv, conv.model.IndicatorLinEQ, eq); err != nil {
			return err
		}
	}
	y, err := conv.redefineVariable(0, float64(len(args)), flatconv.Integer)
	if err != nil {
		return err
	}
	c.SetResultVar(y.Index())

	vars := append([]int{y.Index()}, z...)
	coefs := make([]float64, len(vars))
	coefs[0] = 1
	for i := range z {
		coefs[i+1] = -1
	}
	_, err = conv.addLinConEQ(vars, coefs, 0)
	return err
}

// redefineNumberofVar mirrors redefineCount, but the target is itself a
// variable rather than a compile-time constant: each indicator's RHS
// becomes a per-argument linear equality against Target instead of a
// literal, via a QuadConEQ-free row since Target enters linearly too
// (x_i - target == 0 is still linear, just with two variable columns).
func (conv *Converter) redefineNumberofVar(c *constraint.NumberofVar) error {
	args := c.Args()
	z := make([]int, len(args))
	for i, a := range args {
		b, err := conv.redefineVariable(0, 1, flatconv.Integer)
		if err != nil {
			return err
		}
		z[i] = b.Index()
		eq := constraint.NewIndicatorConstraintLinEQ(b.Index(), 1, []int{a, c.Target}, []float64{1, -1}, 0)
		if _, err := addGeneric(conv, conv.model.IndicatorLinEQ, eq); err != nil {
			return err
		}
	}
	y, err := conv.redefineVariable(0, float64(len(args)), flatconv.Integer)
	if err != nil {
		return err
	}
	c.SetResultVar(y.Index())

	vars := append([]int{y.Index()}, z...)
	coefs := make([]float64, len(vars))
	coefs[0] = 1
	for i := range z {
		coefs[i+1] = -1
	}
	_, err = conv.addLinConEQ(vars, coefs, 0)
	return err
}

// redefineAllDiff rewrites pairwise-distinctness over a bounded integer
// domain as one NumberofVar-style indicator pair per unordered pair of
// arguments: x_i != x_j, enforced by requiring their difference to fall
// outside (-eps, eps) via a disjunctive big-M pair (each pair gets its own
// order binary). The arguments are integer, so eps is 1.
func (conv *Converter) redefineAllDiff(c *constraint.AllDiff) error {
	args := c.Args()
	const eps = 1
	for i := 0; i < len(args); i++ {
		for j := i + 1; j < len(args); j++ {
			order, err := conv.redefineVariable(0, 1, flatconv.Integer)
			if err != nil {
				return err
			}
			// order=1  =>  x_i - x_j >= eps
			// order=0  =>  x_j - x_i >= eps
			geHi := constraint.NewIndicatorConstraintLinGE(order.Index(), 1, []int{args[i], args[j]}, []float64{1, -1}, eps)
			geLo := constraint.NewIndicatorConstraintLinGE(order.Index(), 0, []int{args[j], args[i]}, []float64{1, -1}, eps)
			if _, err := addGeneric(conv, conv.model.IndicatorLinGE, geHi); err != nil {
				return err
			}
			if _, err := addGeneric(conv, conv.model.IndicatorLinGE, geLo); err != nil {
				return err
			}
		}
	}
	return nil
}

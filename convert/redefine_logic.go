package convert

import (
	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
)

// redefineAnd rewrites y = AND(x[args]). In ContextPositive — y is only
// ever consumed where a truthy value is required — the conjuncts are
// asserted directly (each fixed to 1) instead of linearized, since no
// downstream constraint can observe y being anything but true. Otherwise
// the standard two-directional linearization applies:
//
//	y <= x_i            for every i
//	y >= sum(x_i) - (n-1)
func (conv *Converter) redefineAnd(c *constraint.And) error {
	args := c.Args()
	y, err := conv.redefineVariable(0, 1, flatconv.Integer)
	if err != nil {
		return err
	}
	c.SetResultVar(y.Index())

	if c.Context() == flatconv.ContextPositive {
		for _, a := range args {
			if err := conv.fixAsTrue(a); err != nil {
				return err
			}
		}
		return conv.fixAsTrue(y.Index())
	}

	for _, a := range args {
		if _, err := conv.addLinConLE([]int{y.Index(), a}, []float64{1, -1}, 0); err != nil {
			return err
		}
	}
	vars := append([]int{y.Index()}, args...)
	coefs := make([]float64, len(vars))
	coefs[0] = 1
	for i := range args {
		coefs[i+1] = -1
	}
	_, err = conv.addLinConGE(vars, coefs, float64(1-len(args)))
	return err
}

// redefineOr rewrites y = OR(x[args]). In ContextNegative — y is only ever
// consumed where a falsy value is required — the disjuncts are asserted
// directly (each fixed to 0). Otherwise:
//
//	y >= x_i   for every i
//	y <= sum(x_i)
func (conv *Converter) redefineOr(c *constraint.Or) error {
	args := c.Args()
	y, err := conv.redefineVariable(0, 1, flatconv.Integer)
	if err != nil {
		return err
	}
	c.SetResultVar(y.Index())

	if c.Context() == flatconv.ContextNegative {
		for _, a := range args {
			if err := conv.fixAsFalse(a); err != nil {
				return err
			}
		}
		return conv.fixAsFalse(y.Index())
	}

	for _, a := range args {
		if _, err := conv.addLinConGE([]int{y.Index(), a}, []float64{1, -1}, 0); err != nil {
			return err
		}
	}
	vars := append([]int{y.Index()}, args...)
	coefs := make([]float64, len(vars))
	coefs[0] = 1
	for i := range args {
		coefs[i+1] = -1
	}
	_, err = conv.addLinConLE(vars, coefs, 0)
	return err
}

// redefineNot rewrites y = 1 - x[arg] as the single row  y + x == 1.
func (conv *Converter) redefineNot(c *constraint.Not) error {
	arg := c.Args()[0]
	y, err := conv.redefineVariable(0, 1, flatconv.Integer)
	if err != nil {
		return err
	}
	c.SetResultVar(y.Index())
	_, err = conv.addLinConEQ([]int{y.Index(), arg}, []float64{1, 1}, 1)
	return err
}

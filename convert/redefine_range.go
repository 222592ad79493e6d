package convert

import "github.com/costela/flatconv/constraint"

// redefineLinConRange splits a two-sided row into its LE and GE halves,
// for ModelAPIs that only accept one-sided rows.
func (conv *Converter) redefineLinConRange(c *constraint.LinConRange) error {
	args, coefs := c.Args(), c.Coefs
	if _, err := conv.addLinConLE(args, coefs, c.UB); err != nil {
		return err
	}
	_, err := conv.addLinConGE(args, coefs, c.LB)
	return err
}

// redefineLinearFunctional rewrites y = sum(coefs*args)+const as a plain
// algebraic equality y - sum(coefs*args) == const, for ModelAPIs that
// reject the functional-constraint family (tracking result variables)
// natively but accept ordinary equality rows.
func (conv *Converter) redefineLinearFunctional(c *constraint.LinearFunctionalConstraint) error {
	v, hasResult := c.ResultVar()
	if !hasResult {
		// Nothing has consumed this expression's value yet; there is
		// nothing to assert until AssignResult2Args allocates v.
		return nil
	}
	vars := append([]int{v}, c.Args()...)
	coefs := append([]float64{1}, negate(c.Coefs)...)
	_, err := conv.addLinConEQ(vars, coefs, c.Const)
	return err
}

func negate(in []float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = -v
	}
	return out
}

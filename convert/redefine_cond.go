package convert

import (
	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
)

const condEps = 1e-6

// condResult is the narrow view redefineCondLinCon needs to attach the
// reified binary back to whichever concrete CondLinCon* type dispatched
// into it.
type condResult interface {
	constraint.Constraint
	constraint.ResultSetter
}

// redefineCondLinCon rewrites  b <=> (sum(coefs*args) <op> rhs)  as a pair
// of big-M indicators reifying both directions of the comparator. Binary
// equality (op == eqOp) uses an extra disjunction binary for its "not
// equal" direction, mirroring redefineAllDiff's pairwise disequality
// pattern.
func (conv *Converter) redefineCondLinCon(args []int, coefs []float64, rhs float64, op comparator, c condResult) error {
	m, err := bigM(conv, args, coefs, rhs, c.TypeName())
	if err != nil {
		return err
	}

	b, err := conv.redefineVariable(0, 1, flatconv.Integer)
	if err != nil {
		return err
	}
	c.SetResultVar(b.Index())

	switch op {
	case leOp:
		if err := conv.pushIndicatorBigMLE(args, coefs, rhs, m, b.Index(), 1); err != nil {
			return err
		}
		return conv.pushIndicatorBigMGE(args, coefs, rhs+condEps, m, b.Index(), 0)
	case ltOp:
		if err := conv.pushIndicatorBigMLE(args, coefs, rhs-condEps, m, b.Index(), 1); err != nil {
			return err
		}
		return conv.pushIndicatorBigMGE(args, coefs, rhs, m, b.Index(), 0)
	case geOp:
		if err := conv.pushIndicatorBigMGE(args, coefs, rhs, m, b.Index(), 1); err != nil {
			return err
		}
		return conv.pushIndicatorBigMLE(args, coefs, rhs-condEps, m, b.Index(), 0)
	case gtOp:
		if err := conv.pushIndicatorBigMGE(args, coefs, rhs+condEps, m, b.Index(), 1); err != nil {
			return err
		}
		return conv.pushIndicatorBigMLE(args, coefs, rhs, m, b.Index(), 0)
	default: // eqOp
		if err := conv.pushIndicatorBigMLE(args, coefs, rhs, m, b.Index(), 1); err != nil {
			return err
		}
		if err := conv.pushIndicatorBigMGE(args, coefs, rhs, m, b.Index(), 1); err != nil {
			return err
		}
		disj, err := conv.redefineVariable(0, 1, flatconv.Integer)
		if err != nil {
			return err
		}
		// b=0 => expr >= rhs+eps (disj=1) or expr <= rhs-eps (disj=0); the
		// extra M*b term relaxes both rows when b=1.
		mm := m + condEps
		vars := append(append([]int{}, args...), disj.Index(), b.Index())
		geRow := append(append([]float64{}, coefs...), -mm, mm)
		if _, err := conv.addLinConGE(vars, geRow, rhs+condEps-mm); err != nil {
			return err
		}
		leRow := append(append([]float64{}, coefs...), -mm, -mm)
		_, err = conv.addLinConLE(vars, leRow, rhs-condEps)
		return err
	}
}

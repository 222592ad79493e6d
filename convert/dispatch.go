package convert

import (
	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
)

// dispatch looks up the redefinition rule for c's concrete type and runs
// it. Every rule either pushes one or more already-accepted constraints
// (algebraic rows, SOS, indicator-with-bigM) or recurses into simpler
// functional constraints, relying on ConvertItems's round-robin to convert
// those in turn.
func (conv *Converter) dispatch(c constraint.Constraint, index int) error {
	switch t := c.(type) {
	case *constraint.Abs:
		return conv.redefineAbs(t)
	case *constraint.Max:
		return conv.redefineMax(t)
	case *constraint.Min:
		return conv.redefineMin(t)
	case *constraint.And:
		return conv.redefineAnd(t)
	case *constraint.Or:
		return conv.redefineOr(t)
	case *constraint.Not:
		return conv.redefineNot(t)
	case *constraint.Div:
		return conv.redefineDiv(t)
	case *constraint.IfThen:
		return conv.redefineIfThen(t)
	case *constraint.AllDiff:
		return conv.redefineAllDiff(t)
	case *constraint.Count:
		return conv.redefineCount(t, t.Value)
	case *constraint.NumberofConst:
		return conv.redefineCount(t, t.Value)
	case *constraint.NumberofVar:
		return conv.redefineNumberofVar(t)
	case *constraint.PLConstraint:
		return conv.redefinePL(t)
	case *constraint.Exp, *constraint.ExpA, *constraint.Log, *constraint.LogA,
		*constraint.Pow, *constraint.Sin, *constraint.Cos, *constraint.Tan:
		return conv.redefineElementary(t)
	case *constraint.SOS1:
		return conv.redefineSOS1(t)
	case *constraint.SOS2:
		return conv.redefineSOS2(t)
	case *constraint.IndicatorConstraintLinLE:
		return conv.redefineIndicatorLin(t.Args(), t.Coefs, t.RHS, leOp, t.BinVar, t.BinVal)
	case *constraint.IndicatorConstraintLinGE:
		return conv.redefineIndicatorLin(t.Args(), t.Coefs, t.RHS, geOp, t.BinVar, t.BinVal)
	case *constraint.IndicatorConstraintLinEQ:
		return conv.redefineIndicatorLin(t.Args(), t.Coefs, t.RHS, eqOp, t.BinVar, t.BinVal)
	case *constraint.ComplementarityLinear:
		return conv.redefineComplementarityLinear(t)
	case *constraint.LinConRange:
		return conv.redefineLinConRange(t)
	case *constraint.CondLinConLE:
		return conv.redefineCondLinCon(t.Args(), t.Coefs, t.RHS, leOp, t)
	case *constraint.CondLinConLT:
		return conv.redefineCondLinCon(t.Args(), t.Coefs, t.RHS, ltOp, t)
	case *constraint.CondLinConGE:
		return conv.redefineCondLinCon(t.Args(), t.Coefs, t.RHS, geOp, t)
	case *constraint.CondLinConGT:
		return conv.redefineCondLinCon(t.Args(), t.Coefs, t.RHS, gtOp, t)
	case *constraint.CondLinConEQ:
		return conv.redefineCondLinCon(t.Args(), t.Coefs, t.RHS, eqOp, t)
	case *constraint.LinearFunctionalConstraint:
		return conv.redefineLinearFunctional(t)
	default:
		return flatconv.NewConstraintConversionError(c.TypeName(), conv.api.Name())
	}
}

// comparator identifies which relational operator an algebraic row or
// CondLinCon* uses, so shared redefinition helpers (bigM, range-splitting)
// don't need one copy per comparator.
type comparator int

const (
	leOp comparator = iota
	ltOp
	geOp
	gtOp
	eqOp
)

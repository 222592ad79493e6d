package convert

import (
	"github.com/costela/flatconv"
	"github.com/costela/flatconv/constraint"
)

// preprocessEqualities implements the Preprocessors mixin: cheap arithmetic
// simplifications over the raw LinConEQ pool, run once before the
// conversion loop starts (so later redefinition-introduced equalities, e.g.
// an indicator's big-M row, are left alone — those are already in their
// final, intentional shape). Gated by cvt:pre:all plus the individual
// cvt:pre:eqresult/cvt:pre:eqbinary flags.
func (conv *Converter) preprocessEqualities() error {
	if !conv.cfg.PreprocessAll {
		return nil
	}
	if conv.cfg.PreprocessEqResult {
		if err := conv.preprocessEqResult(); err != nil {
			return err
		}
	}
	if conv.cfg.PreprocessEqBinary {
		if err := conv.preprocessEqBinary(); err != nil {
			return err
		}
	}
	return nil
}

// preprocessEqResult folds any single-variable equality row
// coef*x[v] == rhs into a direct bound fix on v, eliminating the row: an
// equality over one free variable already determines that variable's
// value, so there is nothing left for a solver row to enforce.
func (conv *Converter) preprocessEqResult() error {
	var fixErr error
	conv.model.LinConEQ.RemoveWhere(func(c *constraint.LinConEQ) bool {
		if fixErr != nil {
			return false
		}
		args := c.Args()
		if len(args) != 1 || c.Coefs[0] == 0 {
			return false
		}
		val := c.RHS / c.Coefs[0]
		if err := conv.model.Var(args[0]).TightenBounds(val, val); err != nil {
			fixErr = err
			return false
		}
		return true
	})
	return fixErr
}

// preprocessEqBinary folds a two-variable equality row between binary
// columns into a bound fix on the other variable whenever one side is
// already pinned to a constant — by an earlier preprocessEqResult pass, or
// by the model itself. This is a single pass, not a fixed point: a chain of
// several binary equalities each depending on the previous one's fix may
// need more than one preprocessing round to fully resolve, which is an
// accepted simplification rather than a defect, since any
// row left standing is still pushed and solved correctly, just not
// eliminated.
func (conv *Converter) preprocessEqBinary() error {
	var fixErr error
	conv.model.LinConEQ.RemoveWhere(func(c *constraint.LinConEQ) bool {
		if fixErr != nil {
			return false
		}
		args := c.Args()
		if len(args) != 2 {
			return false
		}
		for i := 0; i < 2; i++ {
			fixed, other := conv.model.Var(args[i]), conv.model.Var(args[1-i])
			if !isBinary(fixed) || !isBinary(other) || c.Coefs[1-i] == 0 {
				continue
			}
			lb, ub := fixed.Bounds()
			if lb != ub {
				continue
			}
			val := (c.RHS - c.Coefs[i]*lb) / c.Coefs[1-i]
			if err := other.TightenBounds(val, val); err != nil {
				fixErr = err
				return false
			}
			return true
		}
		return false
	})
	return fixErr
}

// isBinary reports whether v is an integer column bounded within [0,1] —
// flatconv has no separate Binary VarType, so this is the only way to spot
// one (see flatconv.VarType's doc comment).
func isBinary(v *flatconv.Variable) bool {
	if v.Type() != flatconv.Integer {
		return false
	}
	lb, ub := v.Bounds()
	return lb >= 0 && ub <= 1
}

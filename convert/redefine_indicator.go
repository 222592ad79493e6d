package convert

// redefineIndicatorLin rewrites BinVar=BinVal => sum(coefs*args) <op> rhs
// into one or two big-M linear rows, for ModelAPIs that reject the
// indicator family natively.
func (conv *Converter) redefineIndicatorLin(args []int, coefs []float64, rhs float64, op comparator, binVar, binVal int) error {
	m, err := bigM(conv, args, coefs, rhs, "IndicatorConstraintLin")
	if err != nil {
		return err
	}

	switch op {
	case leOp:
		return conv.pushIndicatorBigMLE(args, coefs, rhs, m, binVar, binVal)
	case geOp:
		return conv.pushIndicatorBigMGE(args, coefs, rhs, m, binVar, binVal)
	case eqOp:
		if err := conv.pushIndicatorBigMLE(args, coefs, rhs, m, binVar, binVal); err != nil {
			return err
		}
		return conv.pushIndicatorBigMGE(args, coefs, rhs, m, binVar, binVal)
	default:
		return conv.pushIndicatorBigMLE(args, coefs, rhs, m, binVar, binVal)
	}
}

// pushIndicatorBigMLE builds  sum(coefs*args) + s*M*binVar <= rhs + s'*M,
// where the sign pair (s, s') depends on binVal so the row is slack
// (always satisfiable) exactly when binVar != binVal.
func (conv *Converter) pushIndicatorBigMLE(args []int, coefs []float64, rhs, m float64, binVar, binVal int) error {
	vars := append(append([]int{}, args...), binVar)
	row := append(append([]float64{}, coefs...), 0.0)
	if binVal == 1 {
		row[len(row)-1] = m
		_, err := conv.addLinConLE(vars, row, rhs+m)
		return err
	}
	row[len(row)-1] = -m
	_, err := conv.addLinConLE(vars, row, rhs)
	return err
}

// pushIndicatorBigMGE is the >= analogue of pushIndicatorBigMLE.
func (conv *Converter) pushIndicatorBigMGE(args []int, coefs []float64, rhs, m float64, binVar, binVal int) error {
	vars := append(append([]int{}, args...), binVar)
	row := append(append([]float64{}, coefs...), 0.0)
	if binVal == 1 {
		row[len(row)-1] = -m
		_, err := conv.addLinConGE(vars, row, rhs-m)
		return err
	}
	row[len(row)-1] = m
	_, err := conv.addLinConGE(vars, row, rhs)
	return err
}

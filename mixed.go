//go:build !fixed_nomix

package fixed

import "fmt"

// checkMix panics if the build does not allow an operand of scale S2 to be
// combined into a result of scale S.
func checkMix[S, S2 Scale]() {
	if Mixing == MixSafe && digitsOf[S2]() > digitsOf[S]() {
		panic(fmt.Sprintf("mixing scales %v and %v loses precision", digitsOf[S](), digitsOf[S2]()))
	}
}

// AddMixed returns the sum of d and e in the scale of d.
// If e has more digits than d, e is rounded using R first.
func AddMixed[S, S2 Scale, R Rounder](d Decimal[S, R], e Decimal[S2, R]) Decimal[S, R] {
	checkMix[S, S2]()
	return d.Add(Rescale[S, R](e))
}

// SubMixed returns the difference of d and e in the scale of d.
// If e has more digits than d, e is rounded using R first.
func SubMixed[S, S2 Scale, R Rounder](d Decimal[S, R], e Decimal[S2, R]) Decimal[S, R] {
	checkMix[S, S2]()
	return d.Sub(Rescale[S, R](e))
}

// MulMixed returns the product of d and e in the scale of d, rounded using R.
// The product is computed from the unscaled e, so it is rounded only once.
func MulMixed[S, S2 Scale, R Rounder](d Decimal[S, R], e Decimal[S2, R]) Decimal[S, R] {
	var r R
	checkMix[S, S2]()
	return Decimal[S, R]{raw: multDiv(r, d.raw, e.raw, factorOf[S2]())}
}

// QuoMixed returns the quotient of d and e in the scale of d, rounded using R.
//
// QuoMixed panics if e is 0.
func QuoMixed[S, S2 Scale, R Rounder](d Decimal[S, R], e Decimal[S2, R]) Decimal[S, R] {
	var r R
	checkMix[S, S2]()
	return Decimal[S, R]{raw: multDiv(r, d.raw, factorOf[S2](), e.raw)}
}

// CmpMixed compares d and e numerically, without rounding either of them.
// See also method [Decimal.Cmp].
func CmpMixed[S, S2 Scale, R Rounder](d Decimal[S, R], e Decimal[S2, R]) int {
	dint, dfrac := d.Unpack()
	eint, efrac := e.Unpack()
	switch {
	case dint < eint:
		return -1
	case dint > eint:
		return 1
	}
	// Fractions are below 10^18 in magnitude, so aligning them is exact.
	ds, es := digitsOf[S](), digitsOf[S2]()
	if ds < es {
		dfrac = lsh(dfrac, es-ds)
	} else {
		efrac = lsh(efrac, ds-es)
	}
	switch {
	case dfrac < efrac:
		return -1
	case dfrac > efrac:
		return 1
	}
	return 0
}

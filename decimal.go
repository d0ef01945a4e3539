package fixed

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Decimal type is a representation of a fixed-point decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal holds a single int64, the unbiased value, which is equal to
// the numeric value multiplied by 10^S.
// For example, a decimal with scale [Scale2] and unbiased value 12345
// represents the value 123.45.
// The scale and the rounding policy are part of the type, so decimals with
// different scales can only be combined by an explicit conversion, see
// [Rescale], or by the mixed-scale functions such as [AddMixed].
//
// Results that do not fit into int64 are clamped to the nearest
// representable value, they never wrap around.
type Decimal[S Scale, R Rounder] struct {
	raw int64 // the unbiased value
}

// FromInt returns a decimal equal to v.
// Values beyond the range of the decimal are clamped.
func FromInt[S Scale, R Rounder, I constraints.Integer](v I) Decimal[S, R] {
	var d Decimal[S, R]
	if v < 0 {
		d.SetInt64(int64(v))
	} else {
		d.SetUint64(uint64(v))
	}
	return d
}

// FromFloat returns a decimal equal to f rounded to S digits using R.
// The integer part of f is scaled exactly, the fractional part is rounded.
// Values beyond the range of the decimal are clamped, NaN is converted to 0.
func FromFloat[S Scale, R Rounder, F constraints.Float](f F) Decimal[S, R] {
	var d Decimal[S, R]
	d.SetFloat64(float64(f))
	return d
}

// FromUnbiased returns a decimal with the given unbiased value,
// that is, a decimal equal to raw / 10^S.
func FromUnbiased[S Scale, R Rounder](raw int64) Decimal[S, R] {
	return Decimal[S, R]{raw: raw}
}

// Pack returns a decimal assembled from the integer part before and
// the fractional part after, where after is expressed in units of 10^-S.
// For negative values both parts must be non-positive.
// Also see method [Decimal.Unpack].
func Pack[S Scale, R Rounder](before, after int64) Decimal[S, R] {
	var d Decimal[S, R]
	d.SetPacked(before, after)
	return d
}

// PackRounded is like [Pack], but the fractional part after has the
// given number of digits, which may exceed S.
// Excess digits are rounded using R.
func PackRounded[S Scale, R Rounder](before, after int64, digits int) Decimal[S, R] {
	var r R
	scale := digitsOf[S]()
	x := lsh(before, scale)
	return Decimal[S, R]{raw: add(x, rshOdd(r, after, digits-scale, x&1 != 0))}
}

// BuildWithExponent returns a decimal equal to mantissa * 10^exponent,
// rounded using R if the exponent is less than -S.
// Also see method [Decimal.WithExponent].
func BuildWithExponent[S Scale, R Rounder](mantissa int64, exponent int) Decimal[S, R] {
	var d Decimal[S, R]
	d.SetWithExponent(mantissa, exponent)
	return d
}

// Rescale converts d to a decimal with scale S2 and rounding policy R2.
// When the scale decreases, the value is rounded using R2.
func Rescale[S2 Scale, R2 Rounder, S Scale, R Rounder](d Decimal[S, R]) Decimal[S2, R2] {
	var r R2
	return Decimal[S2, R2]{raw: rsh(r, d.raw, digitsOf[S]()-digitsOf[S2]())}
}

// SetInt64 sets d to v.
func (d *Decimal[S, R]) SetInt64(v int64) {
	d.raw = mul(v, factorOf[S]())
}

// SetUint64 sets d to v.
func (d *Decimal[S, R]) SetUint64(v uint64) {
	if v > math.MaxInt64 {
		d.raw = math.MaxInt64
		return
	}
	d.SetInt64(int64(v))
}

// SetFloat64 sets d to f rounded to S digits using R.
func (d *Decimal[S, R]) SetFloat64(f float64) {
	var r R
	whole := math.Trunc(f)
	frac := r.RoundToInt((f - whole) * float64(factorOf[S]()))
	d.raw = add(mul(toInt64(whole), factorOf[S]()), frac)
}

// SetUnbiased sets the unbiased value of d.
func (d *Decimal[S, R]) SetUnbiased(raw int64) {
	d.raw = raw
}

// SetPacked sets d to before + after / 10^S.
// Digits of after beyond S are dropped, so after should be in the
// range (-10^S, 10^S).
func (d *Decimal[S, R]) SetPacked(before, after int64) {
	factor := factorOf[S]()
	d.raw = add(mul(before, factor), after%factor)
}

// SetWithExponent sets d to mantissa * 10^exponent.
// If the exponent is less than -S, the value is rounded using R.
func (d *Decimal[S, R]) SetWithExponent(mantissa int64, exponent int) {
	var r R
	d.raw = rsh(r, mantissa, -(exponent + digitsOf[S]()))
}

// Unbiased returns the unbiased value of d, that is d * 10^S.
func (d Decimal[S, R]) Unbiased() int64 {
	return d.raw
}

// PrecFactor returns 10^S.
func (d Decimal[S, R]) PrecFactor() int64 {
	return factorOf[S]()
}

// Scale returns number of digits after the decimal point.
func (d Decimal[S, R]) Scale() int {
	return digitsOf[S]()
}

// Unpack splits d into its integer part and its fractional part, where the
// fractional part is expressed in units of 10^-S.
// For negative values both parts are non-positive.
func (d Decimal[S, R]) Unpack() (before, after int64) {
	factor := factorOf[S]()
	return d.raw / factor, d.raw % factor
}

// WithExponent returns a mantissa and an exponent such that
// d = mantissa * 10^exponent and mantissa has no trailing zeros.
// For zero it returns (0, -S).
func (d Decimal[S, R]) WithExponent() (mantissa int64, exponent int) {
	n := ntz(d.raw)
	return d.raw / pow10[n], n - digitsOf[S]()
}

// Int64 returns d rounded to an integer using R.
func (d Decimal[S, R]) Int64() int64 {
	var r R
	return rsh(r, d.raw, digitsOf[S]())
}

// Float64 returns the nearest binary floating-point number to d.
func (d Decimal[S, R]) Float64() float64 {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return float64(d.raw) / float64(factorOf[S]())
	}
	return f
}

// Round returns d rounded to an integer using R.
func (d Decimal[S, R]) Round() Decimal[S, R] {
	var r R
	return d.roundInt(r)
}

// Trunc returns the integer part of d.
func (d Decimal[S, R]) Trunc() Decimal[S, R] {
	return d.roundInt(ToZero{})
}

// Floor returns the greatest integer value less than or equal to d.
func (d Decimal[S, R]) Floor() Decimal[S, R] {
	return d.roundInt(ToNegativeInf{})
}

// Ceil returns the least integer value greater than or equal to d.
func (d Decimal[S, R]) Ceil() Decimal[S, R] {
	return d.roundInt(ToPositiveInf{})
}

func (d Decimal[S, R]) roundInt(r Rounder) Decimal[S, R] {
	scale := digitsOf[S]()
	return Decimal[S, R]{raw: lsh(rsh(r, d.raw, scale), scale)}
}

// Frac returns the fractional part of d, with the same sign as d.
func (d Decimal[S, R]) Frac() Decimal[S, R] {
	return Decimal[S, R]{raw: d.raw % factorOf[S]()}
}

// Neg returns d with opposite sign.
func (d Decimal[S, R]) Neg() Decimal[S, R] {
	return Decimal[S, R]{raw: sub(0, d.raw)}
}

// Abs returns absolute value of d.
func (d Decimal[S, R]) Abs() Decimal[S, R] {
	if d.raw < 0 {
		return d.Neg()
	}
	return d
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal[S, R]) Sign() int {
	switch {
	case d.raw < 0:
		return -1
	case d.raw > 0:
		return 1
	}
	return 0
}

// IsPos returns true if d > 0.
func (d Decimal[S, R]) IsPos() bool {
	return d.raw > 0
}

// IsNeg returns true if d < 0.
func (d Decimal[S, R]) IsNeg() bool {
	return d.raw < 0
}

// IsZero returns true if d == 0.
func (d Decimal[S, R]) IsZero() bool {
	return d.raw == 0
}

// IsInt returns true if fractional part of d is zero.
func (d Decimal[S, R]) IsInt() bool {
	return d.raw%factorOf[S]() == 0
}

// Add returns the sum of d and e.
// The sum is exact unless it is beyond the range of the decimal.
func (d Decimal[S, R]) Add(e Decimal[S, R]) Decimal[S, R] {
	return Decimal[S, R]{raw: add(d.raw, e.raw)}
}

// Sub returns the difference of d and e.
// The difference is exact unless it is beyond the range of the decimal.
func (d Decimal[S, R]) Sub(e Decimal[S, R]) Decimal[S, R] {
	return Decimal[S, R]{raw: sub(d.raw, e.raw)}
}

// Mul returns the product of d and e rounded using R.
func (d Decimal[S, R]) Mul(e Decimal[S, R]) Decimal[S, R] {
	var r R
	return Decimal[S, R]{raw: multDiv(r, d.raw, e.raw, factorOf[S]())}
}

// Quo returns the quotient of d and e rounded using R.
//
// Quo panics if e is 0.
func (d Decimal[S, R]) Quo(e Decimal[S, R]) Decimal[S, R] {
	var r R
	return Decimal[S, R]{raw: multDiv(r, d.raw, factorOf[S](), e.raw)}
}

// AddInt returns d + i.
func (d Decimal[S, R]) AddInt(i int64) Decimal[S, R] {
	return Decimal[S, R]{raw: add(d.raw, mul(i, factorOf[S]()))}
}

// SubInt returns d - i.
func (d Decimal[S, R]) SubInt(i int64) Decimal[S, R] {
	return Decimal[S, R]{raw: sub(d.raw, mul(i, factorOf[S]()))}
}

// MulInt returns d * i, which is exact unless it is beyond the range
// of the decimal.
func (d Decimal[S, R]) MulInt(i int64) Decimal[S, R] {
	return Decimal[S, R]{raw: mul(d.raw, i)}
}

// QuoInt returns d / i rounded using R.
//
// QuoInt panics if i is 0.
func (d Decimal[S, R]) QuoInt(i int64) Decimal[S, R] {
	var r R
	q, ok := r.RoundedDiv(d.raw, i)
	if !ok {
		q = multDiv(r, d.raw, 1, i)
	}
	return Decimal[S, R]{raw: q}
}

// AddAssign sets d to d + e.
func (d *Decimal[S, R]) AddAssign(e Decimal[S, R]) {
	*d = d.Add(e)
}

// SubAssign sets d to d - e.
func (d *Decimal[S, R]) SubAssign(e Decimal[S, R]) {
	*d = d.Sub(e)
}

// MulAssign sets d to d * e.
func (d *Decimal[S, R]) MulAssign(e Decimal[S, R]) {
	*d = d.Mul(e)
}

// QuoAssign sets d to d / e.
//
// QuoAssign panics if e is 0.
func (d *Decimal[S, R]) QuoAssign(e Decimal[S, R]) {
	*d = d.Quo(e)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal[S, R]) Cmp(e Decimal[S, R]) int {
	switch {
	case d.raw < e.raw:
		return -1
	case d.raw > e.raw:
		return 1
	}
	return 0
}

// Equal returns true if d == e.
func (d Decimal[S, R]) Equal(e Decimal[S, R]) bool {
	return d.raw == e.raw
}

// Less returns true if d < e.
func (d Decimal[S, R]) Less(e Decimal[S, R]) bool {
	return d.raw < e.raw
}

// Max returns maximum of d and e.
func (d Decimal[S, R]) Max(e Decimal[S, R]) Decimal[S, R] {
	if d.raw < e.raw {
		return e
	}
	return d
}

// Min returns minimum of d and e.
func (d Decimal[S, R]) Min(e Decimal[S, R]) Decimal[S, R] {
	if d.raw > e.raw {
		return e
	}
	return d
}

// Clamp returns:
//
//	min if d < min
//	max if d > max
//	  d otherwise
//
// Clamp panics if min > max.
func (d Decimal[S, R]) Clamp(min, max Decimal[S, R]) Decimal[S, R] {
	if min.raw > max.raw {
		panic("Clamp(" + min.String() + ", " + max.String() + ") failed: min > max")
	}
	return d.Max(min).Min(max)
}

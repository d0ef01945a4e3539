package fixed

import "math"

// Rounder is a rounding policy.
// The set of implementations is closed:
//
//   - [ToZero]: truncate towards zero.
//   - [HalfUp]: round to nearest, ties away from zero.
//   - [HalfDown]: round to nearest, ties towards zero.
//   - [HalfEven]: round to nearest, ties to even ("banker's rounding").
//   - [ToPositiveInf]: round towards +∞ (ceiling).
//   - [ToNegativeInf]: round towards -∞ (floor).
//   - [AwayFromZero]: round any non-zero remainder away from zero.
//   - [Arithmetic]: the default arithmetic rounding, ties away from zero.
type Rounder interface {
	// RoundToInt converts x to an integer.
	// Values outside of the int64 range are clamped to the nearest bound,
	// NaN is converted to 0.
	RoundToInt(x float64) int64

	// RoundedDiv calculates a / b using integer arithmetic only.
	// ok is false if the quotient does not fit into int64.
	// RoundedDiv panics if b is 0.
	RoundedDiv(a, b int64) (q int64, ok bool)

	// inc reports whether the magnitude of a truncated quotient must be
	// incremented, given its sign, parity, non-zero remainder rem and
	// divisor div, where 0 < rem < div.
	inc(neg, odd bool, rem, div uint64) bool
}

type (
	// ToZero truncates towards zero.
	ToZero struct{}

	// HalfUp rounds to nearest, with ties away from zero.
	HalfUp struct{}

	// HalfDown rounds to nearest, with ties towards zero.
	HalfDown struct{}

	// HalfEven rounds to nearest, with ties to the even neighbour.
	HalfEven struct{}

	// ToPositiveInf rounds towards positive infinity.
	ToPositiveInf struct{}

	// ToNegativeInf rounds towards negative infinity.
	ToNegativeInf struct{}

	// AwayFromZero rounds any inexact result away from zero.
	AwayFromZero struct{}

	// Arithmetic rounds to nearest, with ties away from zero.
	// It differs from [HalfUp] only when converting floats, see [Arithmetic.RoundToInt].
	Arithmetic struct{}
)

// DefaultRounding is the policy used when nothing more specific is required.
type DefaultRounding = Arithmetic

// half compares the remainder with half of the divisor without overflow.
func half(rem, div uint64) int {
	switch other := div - rem; {
	case rem > other:
		return 1
	case rem < other:
		return -1
	}
	return 0
}

func (ToZero) inc(_, _ bool, _, _ uint64) bool { return false }
func (HalfUp) inc(_, _ bool, rem, div uint64) bool { return half(rem, div) >= 0 }
func (HalfDown) inc(_, _ bool, rem, div uint64) bool { return half(rem, div) > 0 }
func (ToPositiveInf) inc(neg, _ bool, _, _ uint64) bool { return !neg }
func (ToNegativeInf) inc(neg, _ bool, _, _ uint64) bool { return neg }
func (AwayFromZero) inc(_, _ bool, _, _ uint64) bool { return true }
func (Arithmetic) inc(_, _ bool, rem, div uint64) bool { return half(rem, div) >= 0 }
func (HalfEven) inc(_, odd bool, rem, div uint64) bool {
	h := half(rem, div)
	return h > 0 || (h == 0 && odd)
}

func (ToZero) RoundToInt(x float64) int64 { return toInt64(math.Trunc(x)) }
func (HalfUp) RoundToInt(x float64) int64 { return toInt64(math.Round(x)) }
func (HalfEven) RoundToInt(x float64) int64 { return toInt64(math.RoundToEven(x)) }
func (ToPositiveInf) RoundToInt(x float64) int64 { return toInt64(math.Ceil(x)) }
func (ToNegativeInf) RoundToInt(x float64) int64 { return toInt64(math.Floor(x)) }

func (HalfDown) RoundToInt(x float64) int64 {
	t := math.Trunc(x)
	if math.Abs(x-t) == 0.5 {
		return toInt64(t)
	}
	return toInt64(math.Round(x))
}

func (AwayFromZero) RoundToInt(x float64) int64 {
	if x < 0 {
		return toInt64(math.Floor(x))
	}
	return toInt64(math.Ceil(x))
}

// RoundToInt adds ±0.5 and truncates, which is how arithmetic rounding
// is traditionally computed.
// Unlike [HalfUp], the addition itself may round, so values just below
// a tie such as 0.49999999999999994 are rounded up.
func (Arithmetic) RoundToInt(x float64) int64 {
	if x < 0 {
		return toInt64(math.Trunc(x - 0.5))
	}
	return toInt64(math.Trunc(x + 0.5))
}

func (p ToZero) RoundedDiv(a, b int64) (int64, bool) { return roundedDiv(p, a, b) }
func (p HalfUp) RoundedDiv(a, b int64) (int64, bool) { return roundedDiv(p, a, b) }
func (p HalfDown) RoundedDiv(a, b int64) (int64, bool) { return roundedDiv(p, a, b) }
func (p HalfEven) RoundedDiv(a, b int64) (int64, bool) { return roundedDiv(p, a, b) }
func (p ToPositiveInf) RoundedDiv(a, b int64) (int64, bool) { return roundedDiv(p, a, b) }
func (p ToNegativeInf) RoundedDiv(a, b int64) (int64, bool) { return roundedDiv(p, a, b) }
func (p AwayFromZero) RoundedDiv(a, b int64) (int64, bool) { return roundedDiv(p, a, b) }
func (p Arithmetic) RoundedDiv(a, b int64) (int64, bool) { return roundedDiv(p, a, b) }

// roundedDiv calculates a / b and rounds the quotient using r.
func roundedDiv(r Rounder, a, b int64) (int64, bool) {
	if a == math.MinInt64 && b == -1 {
		return 0, false
	}
	q := a / b // panics if b == 0
	rem := a - q*b
	if rem == 0 {
		return q, true
	}
	neg := (a < 0) != (b < 0)
	if r.inc(neg, q&1 != 0, abs(rem), abs(b)) {
		if neg {
			q--
		} else {
			q++
		}
	}
	return q, true
}

// roundFraction rounds ±rem / div to an integer, where 0 < rem < div.
// odd is the parity used to break ties.
func roundFraction(r Rounder, neg, odd bool, rem, div uint64) int64 {
	if !r.inc(neg, odd, rem, div) {
		return 0
	}
	if neg {
		return -1
	}
	return 1
}

// abs returns |x| as uint64, which is exact for math.MinInt64.
func abs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// toInt64 converts an integral float to int64, clamping out-of-range values.
func toInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64: // float64(math.MaxInt64) == 2^63
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

package fixed

import (
	"math"
	"math/bits"
)

// IsMultOverflow reports whether v1 * v2 does not fit into int64.
func IsMultOverflow(v1, v2 int64) bool {
	if v1 == 0 || v2 == 0 {
		return false
	}
	hi, lo := bits.Mul64(abs(v1), abs(v2))
	if hi != 0 {
		return true
	}
	if (v1 < 0) != (v2 < 0) {
		return lo > 1<<63 // |math.MinInt64|
	}
	return lo > math.MaxInt64
}

// MultDiv calculates v1 * v2 / divisor and rounds the result using R.
// The product is never truncated: if it does not fit into int64, the
// division is carried out on a 128-bit intermediate.
// If the quotient itself does not fit into int64, the result is clamped
// to math.MinInt64 or math.MaxInt64.
//
// MultDiv panics if divisor is 0.
func MultDiv[R Rounder](v1, v2, divisor int64) int64 {
	var r R
	return multDiv(r, v1, v2, divisor)
}

func multDiv(r Rounder, v1, v2, divisor int64) int64 {
	// Fast path
	if !IsMultOverflow(v1, v2) {
		if q, ok := r.RoundedDiv(v1*v2, divisor); ok {
			return q
		}
	}

	// Slow path
	neg := (v1 < 0) != (v2 < 0) != (divisor < 0)
	hi, lo := bits.Mul64(abs(v1), abs(v2))
	div := abs(divisor)
	if div != 0 && hi >= div {
		return clamp(neg, math.MaxUint64)
	}
	q, rem := bits.Div64(hi, lo, div) // panics if div == 0
	if rem != 0 && r.inc(neg, q&1 != 0, rem, div) {
		if q == math.MaxUint64 {
			return clamp(neg, q)
		}
		q++
	}
	return clamp(neg, q)
}

// clamp converts magnitude u with the given sign to int64, saturating
// at the int64 bounds.
func clamp(neg bool, u uint64) int64 {
	if neg {
		if u > 1<<63 {
			return math.MinInt64
		}
		return int64(-u)
	}
	if u > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(u)
}

// add calculates x + y, saturating at the int64 bounds.
func add(x, y int64) int64 {
	z := x + y
	switch {
	case x > 0 && y > 0 && z < 0:
		return math.MaxInt64
	case x < 0 && y < 0 && z >= 0:
		return math.MinInt64
	}
	return z
}

// sub calculates x - y, saturating at the int64 bounds.
func sub(x, y int64) int64 {
	z := x - y
	switch {
	case x >= 0 && y < 0 && z < 0:
		return math.MaxInt64
	case x < 0 && y > 0 && z >= 0:
		return math.MinInt64
	}
	return z
}

// mul calculates x * y, saturating at the int64 bounds.
func mul(x, y int64) int64 {
	if IsMultOverflow(x, y) {
		return clamp((x < 0) != (y < 0), math.MaxUint64)
	}
	return x * y
}

// lsh (Left Shift) calculates x * 10^shift, saturating at the int64 bounds.
func lsh(x int64, shift int) int64 {
	switch {
	case shift <= 0 || x == 0:
		return x
	case shift > MaxScale:
		return clamp(x < 0, math.MaxUint64)
	}
	return mul(x, pow10[shift])
}

// rsh (Right Shift) calculates x / 10^shift and rounds the result using r.
func rsh(r Rounder, x int64, shift int) int64 {
	return rshOdd(r, x, shift, false)
}

// rshOdd is like rsh, but breaks ties as if the quotient were added to
// an odd number when odd is true.
func rshOdd(r Rounder, x int64, shift int, odd bool) int64 {
	switch {
	case shift <= 0:
		return lsh(x, -shift)
	case x == 0:
		return 0
	case shift <= MaxScale:
		q, rem := x/pow10[shift], x%pow10[shift]
		if rem != 0 && r.inc(x < 0, (q&1 != 0) != odd, abs(rem), uint64(pow10[shift])) {
			if x < 0 {
				q--
			} else {
				q++
			}
		}
		return q
	case shift == MaxScale+1:
		return roundFraction(r, x < 0, odd, abs(x), 10_000_000_000_000_000_000)
	}
	// |x| < 10^19, so the quotient is below half a unit.
	return roundFraction(r, x < 0, odd, 1, math.MaxUint64)
}

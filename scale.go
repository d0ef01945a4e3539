package fixed

// MaxScale is the maximum number of digits after the decimal point.
const MaxScale = 18

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]int64{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// ScaleFactor returns 10^n.
// It returns 0 if n is less than 0 or greater than [MaxScale], so callers
// must check the result before using it as a divisor.
func ScaleFactor(n int) int64 {
	if n < 0 || n >= len(pow10) {
		return 0
	}
	return pow10[n]
}

// Scale is a type-level number of digits after the decimal point.
// The set of implementations is closed: [Scale0] through [Scale18].
type Scale interface {
	Digits() int
	scale()
}

type (
	// Scale0 is the scale of integers, with no fractional digits.
	Scale0 struct{}

	// Scale1 is the scale of decimals with 1 fractional digit.
	Scale1 struct{}

	// Scale2 is the scale of decimals with 2 fractional digits.
	Scale2 struct{}

	// Scale3 is the scale of decimals with 3 fractional digits.
	Scale3 struct{}

	// Scale4 is the scale of decimals with 4 fractional digits.
	Scale4 struct{}

	// Scale5 is the scale of decimals with 5 fractional digits.
	Scale5 struct{}

	// Scale6 is the scale of decimals with 6 fractional digits.
	Scale6 struct{}

	// Scale7 is the scale of decimals with 7 fractional digits.
	Scale7 struct{}

	// Scale8 is the scale of decimals with 8 fractional digits.
	Scale8 struct{}

	// Scale9 is the scale of decimals with 9 fractional digits.
	Scale9 struct{}

	// Scale10 is the scale of decimals with 10 fractional digits.
	Scale10 struct{}

	// Scale11 is the scale of decimals with 11 fractional digits.
	Scale11 struct{}

	// Scale12 is the scale of decimals with 12 fractional digits.
	Scale12 struct{}

	// Scale13 is the scale of decimals with 13 fractional digits.
	Scale13 struct{}

	// Scale14 is the scale of decimals with 14 fractional digits.
	Scale14 struct{}

	// Scale15 is the scale of decimals with 15 fractional digits.
	Scale15 struct{}

	// Scale16 is the scale of decimals with 16 fractional digits.
	Scale16 struct{}

	// Scale17 is the scale of decimals with 17 fractional digits.
	Scale17 struct{}

	// Scale18 is the scale of decimals with 18 fractional digits.
	Scale18 struct{}
)

func (Scale0) Digits() int { return 0 }
func (Scale1) Digits() int { return 1 }
func (Scale2) Digits() int { return 2 }
func (Scale3) Digits() int { return 3 }
func (Scale4) Digits() int { return 4 }
func (Scale5) Digits() int { return 5 }
func (Scale6) Digits() int { return 6 }
func (Scale7) Digits() int { return 7 }
func (Scale8) Digits() int { return 8 }
func (Scale9) Digits() int { return 9 }
func (Scale10) Digits() int { return 10 }
func (Scale11) Digits() int { return 11 }
func (Scale12) Digits() int { return 12 }
func (Scale13) Digits() int { return 13 }
func (Scale14) Digits() int { return 14 }
func (Scale15) Digits() int { return 15 }
func (Scale16) Digits() int { return 16 }
func (Scale17) Digits() int { return 17 }
func (Scale18) Digits() int { return 18 }

func (Scale0) scale() {}
func (Scale1) scale() {}
func (Scale2) scale() {}
func (Scale3) scale() {}
func (Scale4) scale() {}
func (Scale5) scale() {}
func (Scale6) scale() {}
func (Scale7) scale() {}
func (Scale8) scale() {}
func (Scale9) scale() {}
func (Scale10) scale() {}
func (Scale11) scale() {}
func (Scale12) scale() {}
func (Scale13) scale() {}
func (Scale14) scale() {}
func (Scale15) scale() {}
func (Scale16) scale() {}
func (Scale17) scale() {}
func (Scale18) scale() {}

// digitsOf returns the number of fractional digits of scale S.
func digitsOf[S Scale]() int {
	var s S
	return s.Digits()
}

// factorOf returns 10^digitsOf[S]().
func factorOf[S Scale]() int64 {
	return pow10[digitsOf[S]()]
}

// ntz returns number of trailing zeros in x.
// ntz assumes that 0 has no trailing zeros.
func ntz(x int64) int {
	if x == 0 {
		return 0
	}
	// No int64 has more than 18 trailing zeros.
	n := 0
	for n < MaxScale && x%pow10[n+1] == 0 {
		n++
	}
	return n
}

package fixed

import (
	"unicode/utf8"
)

// Locale describes the punctuation used in the text form of a decimal.
// The zero value uses '.' as the decimal point and no digit grouping.
type Locale struct {
	DecimalPoint   rune // defaults to '.'
	Grouping       bool // whether integer digits are grouped by thousands
	GroupSeparator rune // defaults to ',', or to '.' if DecimalPoint is ','
}

func (l Locale) point() rune {
	if l.DecimalPoint == 0 {
		return '.'
	}
	return l.DecimalPoint
}

func (l Locale) separator() rune {
	if l.GroupSeparator == 0 {
		if l.point() == ',' {
			return '.'
		}
		return ','
	}
	return l.GroupSeparator
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a decimal value.
// The returned string is formatted according to the following EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// The fractional part always has exactly S digits.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal[S, R]) String() string {
	var buf [24]byte
	return string(appendDecimal(buf[:0], d.raw, digitsOf[S](), Locale{}))
}

// Text returns a string representation of d using the punctuation of loc.
func (d Decimal[S, R]) Text(loc Locale) string {
	return string(d.Append(nil, loc))
}

// Append appends the text form of d using the punctuation of loc to buf
// and returns the extended buffer.
func (d Decimal[S, R]) Append(buf []byte, loc Locale) []byte {
	return appendDecimal(buf, d.raw, digitsOf[S](), loc)
}

func appendDecimal(buf []byte, raw int64, scale int, loc Locale) []byte {
	if raw < 0 {
		buf = append(buf, '-')
	}
	return appendDigits(buf, abs(raw), scale, loc)
}

// appendDigits appends the unsigned coefficient u with scale fractional digits.
func appendDigits(buf []byte, u uint64, scale int, loc Locale) []byte {
	var (
		tmp [64]byte
		pos = len(tmp)
	)

	// Fraction
	for i := 0; i < scale; i++ {
		pos--
		tmp[pos] = byte(u%10) + '0'
		u /= 10
	}

	// Decimal point
	if scale > 0 {
		pos -= utf8.RuneLen(loc.point())
		utf8.EncodeRune(tmp[pos:], loc.point())
	}

	// Integer
	for n := 0; ; n++ {
		if loc.Grouping && n > 0 && n%3 == 0 {
			pos -= utf8.RuneLen(loc.separator())
			utf8.EncodeRune(tmp[pos:], loc.separator())
		}
		pos--
		tmp[pos] = byte(u%10) + '0'
		u /= 10
		if u == 0 {
			break
		}
	}

	return append(buf, tmp[pos:]...)
}

// parsedNumber is the outcome of scanning the text form of a decimal.
type parsedNumber struct {
	neg         bool
	before      uint64 // magnitude of the integer part
	after       int64  // fractional digits as an integer
	afterDigits int    // number of digits in after
	guard       uint8  // first fractional digit beyond MaxScale
	sticky      bool   // whether any digit after guard is non-zero
}

type scanState int

const (
	stateSign scanState = iota
	stateBeforeFirstDigit
	stateBeforeDecimal
	stateAfterDecimal
	stateEnd
)

// scan reads a number from the beginning of s and returns it together with
// the number of bytes consumed.
// Leading blanks are skipped, group separators are ignored before the
// decimal point, and fractional digits beyond [MaxScale] are reduced to
// a guard digit and a sticky flag.
// The first character that does not fit the current state ends the scan.
func scan(s string, loc Locale) (num parsedNumber, n int, ok bool) {
	var (
		state   = stateSign
		point   = loc.point()
		sep     = loc.separator()
		digits  = 0
		dropped = 0
	)

	ok = true
	for n < len(s) && state != stateEnd {
		c, size := utf8.DecodeRuneInString(s[n:])
		switch state {
		case stateSign:
			switch {
			case c == '-':
				num.neg = true
				state = stateBeforeFirstDigit
			case c == '+':
				state = stateBeforeFirstDigit
			case isDigit(c):
				state = stateBeforeDecimal
				continue
			case c == point:
				state = stateAfterDecimal
			case c == ' ' || c == '\t':
				// skip
			default:
				state, ok = stateEnd, false
				continue
			}
		case stateBeforeFirstDigit:
			switch {
			case isDigit(c):
				state = stateBeforeDecimal
				continue
			case c == point:
				state = stateAfterDecimal
			default:
				state, ok = stateEnd, false
				continue
			}
		case stateBeforeDecimal:
			switch {
			case isDigit(c):
				v := uint64(c - '0')
				if num.before > (1<<63-v)/10 {
					return parsedNumber{}, n, false
				}
				num.before = num.before*10 + v
				digits++
			case c == point:
				state = stateAfterDecimal
			case loc.Grouping && c == sep:
				// skip
			default:
				state = stateEnd
				continue
			}
		case stateAfterDecimal:
			if !isDigit(c) {
				state = stateEnd
				continue
			}
			switch {
			case num.afterDigits < MaxScale:
				num.after = num.after*10 + int64(c-'0')
				num.afterDigits++
			case dropped == 0:
				num.guard = uint8(c - '0')
				dropped++
			case c != '0':
				num.sticky = true
			}
			digits++
		}
		n += size
	}

	if !ok || digits == 0 {
		return parsedNumber{}, n, false
	}
	return num, n, true
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// fromParsed converts num to a decimal.
// Fractional digits beyond S are rounded using R.
// ok is false if the integer part does not fit into the decimal.
func fromParsed[S Scale, R Rounder](num parsedNumber) (d Decimal[S, R], ok bool) {
	var r R

	if !num.neg && num.before > 1<<63-1 {
		return d, false
	}
	before := int64(num.before)
	if num.neg {
		before = int64(-num.before)
	}

	factor := factorOf[S]()
	if IsMultOverflow(before, factor) {
		return d, false
	}
	x := before * factor
	y := scaleFraction[S](r, num, uint64(x))
	z := x + y
	if (x > 0 && y > 0 && z < 0) || (x < 0 && y < 0 && z >= 0) {
		return d, false
	}
	return Decimal[S, R]{raw: z}, true
}

// scaleFraction scales the fractional digits of num to S digits, rounding
// them using r, and returns them with the sign of num.
// x is the scaled integer part, used only for its parity.
func scaleFraction[S Scale, R Rounder](r R, num parsedNumber, x uint64) int64 {
	var q, rem, div uint64
	switch shift := num.afterDigits - digitsOf[S](); {
	case digitsOf[S]() == MaxScale:
		q = uint64(num.after) * uint64(pow10[-shift])
		rem, div = 2*uint64(num.guard), 20
		if num.sticky {
			rem++
		}
	case shift <= 0:
		q = uint64(num.after) * uint64(pow10[-shift])
	case num.guard != 0 || num.sticky:
		// Below MaxScale the dropped digits can only break a tie or make
		// the remainder non-zero, so a trailing 1 stands for all of them.
		frac := uint64(num.after)*10 + 1
		div = uint64(10_000_000_000_000_000_000) / uint64(factorOf[S]())
		q, rem = frac/div, frac%div
	default:
		div = uint64(pow10[shift])
		q, rem = uint64(num.after)/div, uint64(num.after)%div
	}
	if rem != 0 && r.inc(num.neg, (x+q)&1 != 0, rem, div) {
		q++
	}
	if num.neg {
		return -int64(q)
	}
	return int64(q)
}

// Parse converts a string to a decimal.
// The string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	.5
//	5.
//
// Leading blanks are skipped and parsing stops at the first character that
// cannot continue the number, so "12 apples" yields 12.
// If the string has more fractional digits than S, the value is rounded
// using R.
//
// Parse returns false and a zero decimal if no digits were found, if a sign
// or the decimal point is followed by an unexpected character, or if the
// integer part is beyond the range of the decimal.
func Parse[S Scale, R Rounder](s string) (Decimal[S, R], bool) {
	return ParseLocale[S, R](s, Locale{})
}

// ParseLocale is like [Parse], but uses the punctuation of loc.
// When loc enables grouping, group separators before the decimal point
// are ignored.
func ParseLocale[S Scale, R Rounder](s string, loc Locale) (Decimal[S, R], bool) {
	var d Decimal[S, R]
	ok := d.setString(s, loc)
	return d, ok
}

// SetString sets d to the value of s, see [Parse].
// On failure d is set to zero and false is returned.
func (d *Decimal[S, R]) SetString(s string) bool {
	return d.setString(s, Locale{})
}

func (d *Decimal[S, R]) setString(s string, loc Locale) bool {
	num, _, ok := scan(s, loc)
	if ok {
		*d, ok = fromParsed[S, R](num)
	}
	if !ok {
		d.raw = 0
	}
	return ok
}

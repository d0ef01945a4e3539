package fixed

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// ParseStrict is like [Parse], but the whole string must form the number,
// apart from leading and trailing blanks.
// It returns an error of class [Error] on failure.
func ParseStrict[S Scale, R Rounder](s string) (Decimal[S, R], error) {
	return parseStrict[S, R](s, Locale{})
}

func parseStrict[S Scale, R Rounder](s string, loc Locale) (Decimal[S, R], error) {
	num, n, ok := scan(s, loc)
	if !ok {
		return Decimal[S, R]{}, Error.New("parsing %q: %w", s, errInvalidDecimal)
	}
	if rest := strings.Trim(s[n:], " \t"); rest != "" {
		return Decimal[S, R]{}, Error.New("parsing %q: %w %q", s, errTrailing, rest)
	}
	d, ok := fromParsed[S, R](num)
	if !ok {
		return Decimal[S, R]{}, Error.New("parsing %q: %w", s, errRange)
	}
	return d, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [ParseStrict].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal[S, R]) UnmarshalText(text []byte) error {
	var err error
	*d, err = ParseStrict[S, R](string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal[S, R]) MarshalText() ([]byte, error) {
	return d.Append(nil, Locale{}), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler] interface.
// The data must hold the unbiased value as 8 bytes in big-endian order.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (d *Decimal[S, R]) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return Error.New("unmarshaling %v bytes: %w", len(data), errBinaryLength)
	}
	d.raw = int64(binary.BigEndian.Uint64(data))
	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler] interface.
// It encodes the unbiased value as 8 bytes in big-endian order, the scale
// is not encoded.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (d Decimal[S, R]) MarshalBinary() ([]byte, error) {
	return binary.BigEndian.AppendUint64(make([]byte, 0, 8), uint64(d.raw)), nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts string, []byte, int64 and float64 values.
// Strings are parsed with [ParseStrict], floats are rounded using R.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal[S, R]) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = ParseStrict[S, R](value)
	case []byte:
		*d, err = ParseStrict[S, R](string(value))
	case int64:
		if IsMultOverflow(value, factorOf[S]()) {
			return Error.New("scanning %v: %w", value, errRange)
		}
		d.SetInt64(value)
	case float64:
		limit := float64(math.MaxInt64) / float64(factorOf[S]())
		if math.IsNaN(value) || value >= limit || value <= -limit {
			return Error.New("scanning %v: %w", value, errRange)
		}
		d.SetFloat64(value)
	default:
		return Error.New("scanning %T: %w", value, errUnsupported)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal[S, R]) Value() (driver.Value, error) {
	return d.String(), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for %f verb.
// The default precision is S, a smaller precision rounds the value using R.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal[S, R]) Format(state fmt.State, verb rune) {
	var r R

	// Rescaling
	raw, scale, tzeros := d.raw, d.Scale(), 0
	if verb == 'f' || verb == 'F' {
		if p, ok := state.Precision(); ok {
			switch {
			case p < scale:
				raw = rsh(r, raw, scale-p)
				scale = p
			case p > scale:
				tzeros = p - scale
			}
		}
	}

	// Digits
	body := appendDigits(make([]byte, 0, 24), abs(raw), scale, Locale{})
	if tzeros > 0 && scale == 0 {
		body = append(body, '.')
	}
	for i := 0; i < tzeros; i++ {
		body = append(body, '0')
	}

	// Arithmetic sign
	var sign string
	switch {
	case raw < 0:
		sign = "-"
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	// Quotes
	var quote string
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Padding
	width := 2*len(quote) + len(sign) + len(body)
	lspaces, tspaces, lzeros := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeros = w - width
		default:
			lspaces = w - width
		}
	}

	var buf strings.Builder
	buf.WriteString(strings.Repeat(" ", lspaces))
	buf.WriteString(quote)
	buf.WriteString(sign)
	buf.WriteString(strings.Repeat("0", lzeros))
	buf.Write(body)
	buf.WriteString(quote)
	buf.WriteString(strings.Repeat(" ", tspaces))

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		fmt.Fprint(state, buf.String())
	default:
		fmt.Fprintf(state, "%%!%c(fixed.Decimal=%s)", verb, d.String())
	}
}

// Null represents a decimal that can be null.
// Its zero value is null.
// Null is not thread-safe.
type Null[S Scale, R Rounder] struct {
	Decimal Decimal[S, R]
	Valid   bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Decimal.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *Null[S, R]) Scan(value any) error {
	if value == nil {
		n.Decimal, n.Valid = Decimal[S, R]{}, false
		return nil
	}
	err := n.Decimal.Scan(value)
	if err != nil {
		n.Decimal, n.Valid = Decimal[S, R]{}, false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Decimal.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n Null[S, R]) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Decimal.Value()
}

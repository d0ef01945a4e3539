package fixed

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse[S Scale, R Rounder](s string) Decimal[S, R] {
	d, ok := Parse[S, R](s)
	if !ok {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, errInvalidDecimal))
	}
	return d
}

// MustParseStrict is like [ParseStrict] but panics if the string cannot be parsed.
func MustParseStrict[S Scale, R Rounder](s string) Decimal[S, R] {
	d, err := ParseStrict[S, R](s)
	if err != nil {
		panic(fmt.Sprintf("MustParseStrict(%q) failed: %v", s, err))
	}
	return d
}

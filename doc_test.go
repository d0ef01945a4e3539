package fixed_test

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/govalues/fixed"
)

type USD = fixed.Decimal[fixed.Scale2, fixed.HalfEven]

func evaluate(input string) (USD, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return USD{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return USD{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return USD{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]USD, error) {
	stack := make([]USD, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []USD, token string) ([]USD, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result USD
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/":
		if right.IsZero() {
			return nil, fmt.Errorf("evaluating \"%s %s %s\": division by zero", left, token, right)
		}
		result = left.Quo(right)
	}
	return append(stack, result), nil
}

func processOperand(stack []USD, token string) ([]USD, error) {
	d, err := fixed.ParseStrict[fixed.Scale2, fixed.HalfEven](token)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}

// This example implements a simple calculator that evaluates mathematical
// expressions written in prefix notation.
// Every intermediate result is rounded to cents.
func Example_prefixCalculator() {
	d, err := evaluate("* 10 + 1.23 4.56")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	d, err = evaluate("/ * 143.13 3.33 333")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	_, err = evaluate("/ 1 0")
	fmt.Println(err)
	// Output:
	// 57.90
	// 1.43
	// processing tokens: processing token "/": evaluating "1.00 / 0.00": division by zero
}

func ExampleParse() {
	fmt.Println(fixed.Parse[fixed.Scale2, fixed.HalfEven]("-1.235"))
	fmt.Println(fixed.Parse[fixed.Scale2, fixed.HalfEven]("12 apples"))
	fmt.Println(fixed.Parse[fixed.Scale2, fixed.HalfEven]("apples"))
	// Output:
	// -1.24 true
	// 12.00 true
	// 0.00 false
}

func ExampleParseStrict() {
	fmt.Println(fixed.ParseStrict[fixed.Scale2, fixed.HalfEven](" 1.5 "))
	fmt.Println(fixed.ParseStrict[fixed.Scale2, fixed.HalfEven]("12 apples"))
	// Output:
	// 1.50 <nil>
	// 0.00 fixed: parsing "12 apples": unexpected trailing characters "apples"
}

func ExampleParseLocale() {
	loc := fixed.Locale{DecimalPoint: ',', Grouping: true, GroupSeparator: '.'}
	fmt.Println(fixed.ParseLocale[fixed.Scale2, fixed.HalfEven]("1.234,56", loc))
	// Output: 1234.56 true
}

func ExampleMustParse() {
	fmt.Println(fixed.MustParse[fixed.Scale3, fixed.HalfEven](".123"))
	fmt.Println(fixed.MustParse[fixed.Scale2, fixed.HalfEven]("123."))
	// Output:
	// 0.123
	// 123.00
}

func ExampleFromFloat() {
	fmt.Println(fixed.FromFloat[fixed.Scale2, fixed.HalfEven](0.125))
	fmt.Println(fixed.FromFloat[fixed.Scale2, fixed.Arithmetic](0.125))
	fmt.Println(fixed.FromFloat[fixed.Scale2, fixed.ToZero](-2.759))
	// Output:
	// 0.12
	// 0.13
	// -2.75
}

func ExampleFromInt() {
	fmt.Println(fixed.FromInt[fixed.Scale2, fixed.HalfEven](-7))
	fmt.Println(fixed.FromInt[fixed.Scale0, fixed.HalfEven](uint8(255)))
	// Output:
	// -7.00
	// 255
}

func ExamplePack() {
	d := fixed.Pack[fixed.Scale2, fixed.HalfEven](-1, -5)
	fmt.Println(d)
	fmt.Println(d.Unpack())
	// Output:
	// -1.05
	// -1 -5
}

func ExamplePackRounded() {
	fmt.Println(fixed.PackRounded[fixed.Scale2, fixed.HalfEven](1, 125, 3))
	fmt.Println(fixed.PackRounded[fixed.Scale2, fixed.HalfEven](1, 135, 3))
	// Output:
	// 1.12
	// 1.14
}

func ExampleBuildWithExponent() {
	fmt.Println(fixed.BuildWithExponent[fixed.Scale2, fixed.HalfEven](12345, -3))
	fmt.Println(fixed.BuildWithExponent[fixed.Scale2, fixed.HalfEven](12, 3))
	// Output:
	// 12.34
	// 12000.00
}

func ExampleDecimal_WithExponent() {
	fmt.Println(fixed.MustParse[fixed.Scale2, fixed.HalfEven]("12300").WithExponent())
	fmt.Println(fixed.MustParse[fixed.Scale2, fixed.HalfEven]("-0.50").WithExponent())
	fmt.Println(fixed.MustParse[fixed.Scale2, fixed.HalfEven]("0").WithExponent())
	// Output:
	// 123 2
	// -5 -1
	// 0 -2
}

func ExampleRescale() {
	d := fixed.MustParse[fixed.Scale4, fixed.HalfEven]("2.3450")
	fmt.Println(fixed.Rescale[fixed.Scale2, fixed.HalfEven](d))
	fmt.Println(fixed.Rescale[fixed.Scale2, fixed.HalfUp](d))
	fmt.Println(fixed.Rescale[fixed.Scale6, fixed.HalfEven](d))
	// Output:
	// 2.34
	// 2.35
	// 2.345000
}

func ExampleMultDiv() {
	fmt.Println(fixed.MultDiv[fixed.HalfEven](25, 1, 10))
	fmt.Println(fixed.MultDiv[fixed.Arithmetic](25, 1, 10))
	fmt.Println(fixed.MultDiv[fixed.Arithmetic](9_000_000_000_000_000_000, 4, 6))
	// Output:
	// 2
	// 3
	// 6000000000000000000
}

func ExampleDecimal_QuoInt() {
	d := fixed.MustParse[fixed.Scale2, fixed.Arithmetic]("143125.11")
	fmt.Println(d.QuoInt(1000))
	// Output: 143.13
}

func ExampleDecimal_Mul() {
	d := fixed.MustParse[fixed.Scale2, fixed.HalfEven]("1.25")
	e := fixed.MustParse[fixed.Scale2, fixed.HalfEven]("0.50")
	fmt.Println(d.Mul(e))
	// Output: 0.62
}

func ExampleDecimal_Int64() {
	fmt.Println(fixed.MustParse[fixed.Scale2, fixed.HalfEven]("2.50").Int64())
	fmt.Println(fixed.MustParse[fixed.Scale2, fixed.Arithmetic]("2.50").Int64())
	// Output:
	// 2
	// 3
}

func ExampleDecimal_Text() {
	d := fixed.MustParse[fixed.Scale2, fixed.HalfEven]("-1234567.891")
	fmt.Println(d.Text(fixed.Locale{Grouping: true}))
	fmt.Println(d.Text(fixed.Locale{DecimalPoint: ',', Grouping: true, GroupSeparator: '.'}))
	// Output:
	// -1,234,567.89
	// -1.234.567,89
}

func ExampleDecimal_Format() {
	d := fixed.MustParse[fixed.Scale2, fixed.HalfEven]("-123.456")
	fmt.Printf("%v %.1f %+.3f %q\n", d, d, d, d)
	// Output: -123.46 -123.5 -123.460 "-123.46"
}

func ExampleDecimal_MarshalText() {
	type Item struct {
		Price USD `json:"price"`
	}
	data, err := json.Marshal(Item{Price: fixed.MustParse[fixed.Scale2, fixed.HalfEven]("9.99")})
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output: {"price":"9.99"}
}

func ExampleDecimal_UnmarshalText() {
	type Item struct {
		Price USD `json:"price"`
	}
	var item Item
	err := json.Unmarshal([]byte(`{"price":"9.995"}`), &item)
	fmt.Println(item.Price, err)
	// Output: 10.00 <nil>
}

func ExampleDecimal_Scan() {
	var d USD
	err := d.Scan("1.5")
	fmt.Println(d, err)
	err = d.Scan(int64(7))
	fmt.Println(d, err)
	// Output:
	// 1.50 <nil>
	// 7.00 <nil>
}

/*
Package fixed implements fixed-point decimal numbers.
It is specifically designed for use in financial systems, where the rounding
behavior of binary floating-point numbers is unacceptable.

# Representation

[Decimal] is a struct with a single int64 field, the unbiased value.
The numerical value of a decimal is calculated as:

	Unbiased / 10^S

where S is the scale, the number of digits after the decimal point.
For example, a decimal with scale 2 and unbiased value 12345 represents the
value 123.45.

The scale and the rounding policy are type parameters rather than runtime
state:

	type USD = fixed.Decimal[fixed.Scale2, fixed.HalfEven]

Decimals with different scales are different types.

# Constraints

The range of a decimal is determined by its scale.
Here are the ranges for frequently used scales:

	| Example      | Scale | Minimum                    | Maximum                   |
	| ------------ | ----- | -------------------------- | ------------------------- |
	| Japanese Yen | 0     | -9,223,372,036,854,775,808 | 9,223,372,036,854,775,807 |
	| US Dollar    | 2     | -92,233,720,368,547,758.08 | 92,233,720,368,547,758.07 |
	| Omani Rial   | 3     | -9,223,372,036,854,775.808 | 9,223,372,036,854,775.807 |
	| Bitcoin      | 8     | -92,233,720,368.54775808   | 92,233,720,368.54775807   |

The maximum scale is [MaxScale], which is 18.

# Conversions

The package provides functions for converting decimals:

  - from/to string:
    [Parse], [ParseLocale], [ParseStrict], [Decimal.String], [Decimal.Text],
    [Decimal.Format].
  - from/to float64:
    [FromFloat], [Decimal.Float64].
  - from/to integers:
    [FromInt], [Decimal.Int64], [FromUnbiased], [Decimal.Unbiased].
  - from/to integer and fractional parts:
    [Pack], [PackRounded], [Decimal.Unpack].
  - from/to mantissa and exponent:
    [BuildWithExponent], [Decimal.WithExponent].
  - between scales and rounding policies:
    [Rescale].

# Operations

[Decimal.Add] and [Decimal.Sub] operate on the unbiased values directly and
are exact.

[Decimal.Mul] and [Decimal.Quo] are carried out by [MultDiv], which computes
round(v1 * v2 / divisor) in two steps:

 1. If v1 * v2 fits into int64, the quotient is computed and rounded
    using int64 arithmetic.

 2. Otherwise the product is computed as a 128-bit integer and divided
    with [math/bits], and the remainder is rounded using the policy.

The result is therefore always the exact quotient rounded once.
There is no "wrap around" at the int64 bounds: results that do not fit are
clamped to the largest or smallest representable decimal.

# Rounding

Rounding is applied by multiplication, division, conversion from floats,
conversion to a smaller scale and parsing of excess fractional digits.
The rounding policy is the type parameter R:

  - [HalfUp], [Arithmetic]: round to nearest, ties away from zero.
  - [HalfDown]: round to nearest, ties towards zero.
  - [HalfEven]: round to nearest, ties to even.
  - [ToPositiveInf]: round towards positive infinity.
  - [ToNegativeInf]: round towards negative infinity.
  - [ToZero]: truncate.
  - [AwayFromZero]: round away from zero.

# Mixing scales

Operations on decimals with different scales are provided by [AddMixed],
[SubMixed], [MulMixed], [QuoMixed] and [CmpMixed].
Their availability is a build-time setting, see [MixLevel].

# Errors

Arithmetic operations do not return errors.
Division by zero panics in the same way as integer division does.

[Parse] reports failure with a boolean and leaves the decimal at zero.
[ParseStrict], the encoding interfaces and the [sql.Scanner] implementation
return errors of class [Error].

[sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
*/
package fixed

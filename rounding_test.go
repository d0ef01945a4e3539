package fixed

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rounders = []struct {
	name string
	r    Rounder
}{
	{"ToZero", ToZero{}},
	{"HalfUp", HalfUp{}},
	{"HalfDown", HalfDown{}},
	{"HalfEven", HalfEven{}},
	{"ToPositiveInf", ToPositiveInf{}},
	{"ToNegativeInf", ToNegativeInf{}},
	{"AwayFromZero", AwayFromZero{}},
	{"Arithmetic", Arithmetic{}},
}

func TestRounder_RoundToInt(t *testing.T) {
	inputs := []float64{2.5, 3.5, -2.5, 2.4, -2.4, 2.6}
	tests := map[string][]int64{
		"ToZero":        {2, 3, -2, 2, -2, 2},
		"HalfUp":        {3, 4, -3, 2, -2, 3},
		"HalfDown":      {2, 3, -2, 2, -2, 3},
		"HalfEven":      {2, 4, -2, 2, -2, 3},
		"ToPositiveInf": {3, 4, -2, 3, -2, 3},
		"ToNegativeInf": {2, 3, -3, 2, -3, 2},
		"AwayFromZero":  {3, 4, -3, 3, -3, 3},
		"Arithmetic":    {3, 4, -3, 2, -2, 3},
	}
	for _, rr := range rounders {
		want := tests[rr.name]
		for i, x := range inputs {
			got := rr.r.RoundToInt(x)
			assert.Equal(t, want[i], got, "%v.RoundToInt(%v)", rr.name, x)
		}
	}

	t.Run("clamping", func(t *testing.T) {
		for _, rr := range rounders {
			assert.Equal(t, int64(math.MaxInt64), rr.r.RoundToInt(1e300), rr.name)
			assert.Equal(t, int64(math.MaxInt64), rr.r.RoundToInt(math.Inf(1)), rr.name)
			assert.Equal(t, int64(math.MinInt64), rr.r.RoundToInt(-1e300), rr.name)
			assert.Equal(t, int64(math.MinInt64), rr.r.RoundToInt(math.Inf(-1)), rr.name)
			assert.Equal(t, int64(0), rr.r.RoundToInt(math.NaN()), rr.name)
		}
	})

	t.Run("arithmetic", func(t *testing.T) {
		// 0.49999999999999994 + 0.5 rounds to 1 in float64.
		assert.Equal(t, int64(1), Arithmetic{}.RoundToInt(0.49999999999999994))
		assert.Equal(t, int64(0), HalfUp{}.RoundToInt(0.49999999999999994))
	})
}

func TestRounder_RoundedDiv(t *testing.T) {
	inputs := [][2]int64{
		{7, 2}, {-7, 2}, {5, 2}, {-5, 2},
		{7, 3}, {-7, 3}, {8, 3}, {-8, 3},
		{6, 3}, {1, -2},
	}
	tests := map[string][]int64{
		"ToZero":        {3, -3, 2, -2, 2, -2, 2, -2, 2, 0},
		"HalfUp":        {4, -4, 3, -3, 2, -2, 3, -3, 2, -1},
		"HalfDown":      {3, -3, 2, -2, 2, -2, 3, -3, 2, 0},
		"HalfEven":      {4, -4, 2, -2, 2, -2, 3, -3, 2, 0},
		"ToPositiveInf": {4, -3, 3, -2, 3, -2, 3, -2, 2, 0},
		"ToNegativeInf": {3, -4, 2, -3, 2, -3, 2, -3, 2, -1},
		"AwayFromZero":  {4, -4, 3, -3, 3, -3, 3, -3, 2, -1},
		"Arithmetic":    {4, -4, 3, -3, 2, -2, 3, -3, 2, -1},
	}
	for _, rr := range rounders {
		want := tests[rr.name]
		for i, in := range inputs {
			got, ok := rr.r.RoundedDiv(in[0], in[1])
			require.True(t, ok, "%v.RoundedDiv(%v, %v)", rr.name, in[0], in[1])
			assert.Equal(t, want[i], got, "%v.RoundedDiv(%v, %v)", rr.name, in[0], in[1])
		}
	}

	t.Run("bounds", func(t *testing.T) {
		for _, rr := range rounders {
			_, ok := rr.r.RoundedDiv(math.MinInt64, -1)
			assert.False(t, ok, rr.name)

			got, ok := rr.r.RoundedDiv(math.MinInt64, 1)
			assert.True(t, ok, rr.name)
			assert.Equal(t, int64(math.MinInt64), got, rr.name)

			got, ok = rr.r.RoundedDiv(math.MaxInt64, -1)
			assert.True(t, ok, rr.name)
			assert.Equal(t, int64(-math.MaxInt64), got, rr.name)

			// The remainder is close to the divisor, which must not overflow.
			_, ok = rr.r.RoundedDiv(math.MaxInt64, math.MinInt64)
			assert.True(t, ok, rr.name)
		}
	})

	t.Run("division by zero", func(t *testing.T) {
		for _, rr := range rounders {
			assert.Panics(t, func() { rr.r.RoundedDiv(1, 0) }, rr.name)
		}
	})
}

func TestRoundFraction(t *testing.T) {
	tests := []struct {
		r        Rounder
		neg, odd bool
		rem, div uint64
		want     int64
	}{
		{HalfEven{}, false, false, 5, 10, 0},
		{HalfEven{}, false, true, 5, 10, 1},
		{HalfEven{}, true, true, 5, 10, -1},
		{HalfUp{}, false, false, 5, 10, 1},
		{HalfUp{}, true, false, 5, 10, -1},
		{HalfDown{}, false, false, 6, 10, 1},
		{ToPositiveInf{}, false, false, 1, math.MaxUint64, 1},
		{ToPositiveInf{}, true, false, 1, math.MaxUint64, 0},
		{ToNegativeInf{}, true, false, 1, math.MaxUint64, -1},
		{AwayFromZero{}, true, false, 1, math.MaxUint64, -1},
		{Arithmetic{}, false, false, 1, math.MaxUint64, 0},
	}
	for _, tt := range tests {
		name := fmt.Sprintf("%T(%v, %v, %v, %v)", tt.r, tt.neg, tt.odd, tt.rem, tt.div)
		assert.Equal(t, tt.want, roundFraction(tt.r, tt.neg, tt.odd, tt.rem, tt.div), name)
	}
}

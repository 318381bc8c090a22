package algebra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFractionNormalizes(t *testing.T) {
	tests := []struct {
		n, d     int64
		wantNum  int64
		wantDen  int64
		wantText string
	}{
		{6, -4, -3, 2, "-3/2"},
		{-6, -4, 3, 2, "3/2"},
		{10, 5, 2, 1, "2"},
		{0, 7, 0, 1, "0"},
		{5, 0, 0, 1, "0"},
	}

	for _, tt := range tests {
		f := NewFraction(tt.n, tt.d)
		assert.Equal(t, tt.wantNum, f.Num(), "NewFraction(%d, %d) numerator", tt.n, tt.d)
		assert.Equal(t, tt.wantDen, f.Den(), "NewFraction(%d, %d) denominator", tt.n, tt.d)
		assert.Equal(t, tt.wantText, f.String())
	}
}

func TestFractionAlwaysReduced(t *testing.T) {
	for n := int64(-24); n <= 24; n++ {
		for d := int64(-24); d <= 24; d++ {
			if d == 0 {
				continue
			}
			f := NewFraction(n, d)
			require.Positive(t, f.Den(), "NewFraction(%d, %d)", n, d)
			require.Equal(t, int64(1), gcd(abs64(f.Num()), f.Den()), "NewFraction(%d, %d) = %s", n, d, f)
		}
	}
}

func TestFractionArithmetic(t *testing.T) {
	half, third, sixth := NewFraction(1, 2), NewFraction(1, 3), NewFraction(1, 6)

	tests := []struct {
		name string
		op   func() (Fraction, bool)
		want Fraction
	}{
		{"add", func() (Fraction, bool) { return third.Add(sixth) }, half},
		{"sub", func() (Fraction, bool) { return half.Sub(third) }, sixth},
		{"mul", func() (Fraction, bool) { return NewFraction(2, 3).Mul(NewFraction(3, 4)) }, half},
		{"div", func() (Fraction, bool) { return half.Div(NewFraction(1, 4)) }, Integer(2)},
		{"div by zero degrades to 0/1", func() (Fraction, bool) { return half.Div(Integer(0)) }, Integer(0)},
		{"pow", func() (Fraction, bool) { return NewFraction(2, 3).Pow(3) }, NewFraction(8, 27)},
		{"negative pow", func() (Fraction, bool) { return NewFraction(2, 3).Pow(-2) }, NewFraction(9, 4)},
		{"zero pow", func() (Fraction, bool) { return NewFraction(7, 5).Pow(0) }, Integer(1)},
		{"cross cancel", func() (Fraction, bool) {
			return Integer(math.MaxInt64).Mul(NewFraction(1, math.MaxInt64))
		}, Integer(1)},
	}

	for _, tt := range tests {
		got, ok := tt.op()
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	assert.Equal(t, NewFraction(-1, 2), half.Neg())
	assert.Equal(t, Integer(2), half.Reciprocal())
}

func TestFractionOverflow(t *testing.T) {
	big := Integer(math.MaxInt64)

	tests := []struct {
		name string
		op   func() (Fraction, bool)
	}{
		{"sum", func() (Fraction, bool) { return big.Add(Integer(1)) }},
		{"difference", func() (Fraction, bool) { return big.Neg().Sub(Integer(1)) }},
		{"common denominator", func() (Fraction, bool) {
			return NewFraction(1, math.MaxInt64).Add(NewFraction(1, math.MaxInt64-1))
		}},
		{"square", func() (Fraction, bool) { return Integer(3037000500).Mul(Integer(3037000500)) }},
		{"negative product", func() (Fraction, bool) { return Integer(-3037000500).Mul(Integer(3037000500)) }},
		{"power", func() (Fraction, bool) { return Integer(100000).Pow(4) }},
		{"reciprocal power", func() (Fraction, bool) { return NewFraction(1, 100000).Pow(-4) }},
	}

	for _, tt := range tests {
		_, ok := tt.op()
		assert.False(t, ok, tt.name)
	}

	got, ok := big.Add(Integer(0))
	require.True(t, ok)
	assert.Equal(t, big, got)
}

func TestExactRoot(t *testing.T) {
	tests := []struct {
		v, n   int64
		want   int64
		wantOK bool
	}{
		{27, 3, 3, true},
		{-27, 3, -3, true},
		{-16, 2, 0, false},
		{10, 2, 0, false},
		{1024, 10, 2, true},
		{0, 4, 0, true},
		{1, 7, 1, true},
		{81, 4, 3, true},
		{80, 4, 0, false},
	}

	for _, tt := range tests {
		got, ok := ExactRoot(tt.v, tt.n)
		assert.Equal(t, tt.wantOK, ok, "ExactRoot(%d, %d)", tt.v, tt.n)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "ExactRoot(%d, %d)", tt.v, tt.n)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		lit  string
		want Fraction
	}{
		{"12", Integer(12)},
		{"3.14", NewFraction(157, 50)},
		{".5", NewFraction(1, 2)},
		{"2.50", NewFraction(5, 2)},
		{"7.", Integer(7)},
		{"0.1234567890123454", NewFraction(123456789012345, 1000000000000000)},
		{"0.1234567890123456789", NewFraction(123456789012346, 1000000000000000)},
		{"0.9999999999999999", Integer(1)},
	}

	for _, tt := range tests {
		got, ok := parseDecimal(tt.lit)
		require.True(t, ok, "parseDecimal(%q)", tt.lit)
		assert.Equal(t, tt.want, got, "parseDecimal(%q)", tt.lit)
	}
}

package algebra

import (
	"math"
	"math/bits"
	"strconv"
)

// Fraction is an exact rational number kept as a reduced numerator/denominator
// pair. The denominator is always positive. Fractions are values: every
// operation returns a new normalized Fraction.
type Fraction struct {
	num int64
	den int64
}

// NewFraction builds n/d in lowest terms with a positive denominator.
// A zero denominator yields 0/1 so arithmetic over a tree is always total.
func NewFraction(n, d int64) Fraction {
	if d == 0 {
		return Fraction{num: 0, den: 1}
	}
	if d < 0 {
		n, d = -n, -d
	}
	if g := gcd(abs64(n), d); g > 1 {
		n /= g
		d /= g
	}
	return Fraction{num: n, den: d}
}

// Integer returns n/1.
func Integer(n int64) Fraction { return Fraction{num: n, den: 1} }

var (
	zeroFraction     = Integer(0)
	oneFraction      = Integer(1)
	minusOneFraction = Integer(-1)
)

func (f Fraction) Num() int64 { return f.num }

func (f Fraction) Den() int64 {
	if f.den == 0 {
		return 1
	}
	return f.den
}

func (f Fraction) IsZero() bool     { return f.num == 0 }
func (f Fraction) IsOne() bool      { return f.num == 1 && f.Den() == 1 }
func (f Fraction) IsInteger() bool  { return f.Den() == 1 }
func (f Fraction) IsNegative() bool { return f.num < 0 }

// Add returns f+o. ok is false when the exact result does not fit in int64.
func (f Fraction) Add(o Fraction) (sum Fraction, ok bool) {
	g := gcd(f.Den(), o.Den())
	a, ok1 := mul64(f.num, o.Den()/g)
	b, ok2 := mul64(o.num, f.Den()/g)
	d, ok3 := mul64(f.Den()/g, o.Den())
	if !ok1 || !ok2 || !ok3 {
		return Fraction{}, false
	}
	n, ok := add64(a, b)
	if !ok {
		return Fraction{}, false
	}
	return NewFraction(n, d), true
}

func (f Fraction) Sub(o Fraction) (Fraction, bool) { return f.Add(o.Neg()) }

// Mul returns f*o. ok is false when the exact result does not fit in int64.
func (f Fraction) Mul(o Fraction) (product Fraction, ok bool) {
	// Cross-cancel first to keep intermediates small.
	g1 := gcd(abs64(f.num), o.Den())
	g2 := gcd(abs64(o.num), f.Den())
	n, ok1 := mul64(f.num/g1, o.num/g2)
	d, ok2 := mul64(f.Den()/g2, o.Den()/g1)
	if !ok1 || !ok2 {
		return Fraction{}, false
	}
	return NewFraction(n, d), true
}

// Div divides f by o. Dividing by zero follows NewFraction and yields 0/1;
// the engine checks for a zero divisor before it gets here.
func (f Fraction) Div(o Fraction) (Fraction, bool) { return f.Mul(o.Reciprocal()) }

func (f Fraction) Neg() Fraction { return Fraction{num: -f.num, den: f.Den()} }

func (f Fraction) Reciprocal() Fraction { return NewFraction(f.Den(), f.num) }

// Pow raises f to an integer power, reporting false on overflow. Callers keep
// |exp| small; the engine never asks for more than MaxExponent.
func (f Fraction) Pow(exp int64) (Fraction, bool) {
	if exp == 0 {
		return oneFraction, true
	}
	base := f
	if exp < 0 {
		base = f.Reciprocal()
		exp = -exp
	}
	result := oneFraction
	for ; exp > 0; exp-- {
		var ok bool
		if result, ok = result.Mul(base); !ok {
			return Fraction{}, false
		}
	}
	return result, true
}

func (f Fraction) String() string {
	if f.IsInteger() {
		return strconv.FormatInt(f.num, 10)
	}
	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.Den(), 10)
}

// ExactRoot returns the integer n-th root of v when v is a perfect n-th power.
// Negative values have a root only for odd n.
func ExactRoot(v int64, n int64) (int64, bool) {
	if n < 1 {
		return 0, false
	}
	if n == 1 || v == 0 || v == 1 {
		return v, true
	}
	if v < 0 {
		if n%2 == 0 {
			return 0, false
		}
		r, ok := ExactRoot(-v, n)
		return -r, ok
	}
	guess := int64(math.Round(math.Pow(float64(v), 1/float64(n))))
	for _, r := range []int64{guess - 1, guess, guess + 1} {
		if r < 0 {
			continue
		}
		if p, ok := ipow(r, n); ok && p == v {
			return r, true
		}
	}
	return 0, false
}

// ipow computes b^n for b >= 0, reporting false on overflow.
func ipow(b, n int64) (int64, bool) {
	result := uint64(1)
	for i := int64(0); i < n; i++ {
		hi, lo := bits.Mul64(result, uint64(b))
		if hi != 0 || lo > math.MaxInt64 {
			return 0, false
		}
		result = lo
	}
	return int64(result), true
}

// mul64 returns a*b, reporting false when the product falls outside
// [-MaxInt64, MaxInt64]. MinInt64 is excluded so that Neg never overflows.
func mul64(a, b int64) (int64, bool) {
	hi, lo := bits.Mul64(uint64(abs64(a)), uint64(abs64(b)))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	if (a < 0) != (b < 0) {
		return -int64(lo), true
	}
	return int64(lo), true
}

// add64 returns a+b under the same range rule as mul64.
func add64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) || s == math.MinInt64 {
		return 0, false
	}
	return s, true
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// parseDecimal turns a numeric literal such as "12", "3.14" or ".5" into an
// exact fraction: a literal with k fractional digits is round(v*10^k)/10^k,
// with k at most maxFractionDigits.
func parseDecimal(lit string) (Fraction, bool) {
	intPart, fracPart := lit, ""
	for i := 0; i < len(lit); i++ {
		if lit[i] == '.' {
			intPart, fracPart = lit[:i], lit[i+1:]
			break
		}
	}
	roundUp := false
	if len(fracPart) > maxFractionDigits {
		roundUp = fracPart[maxFractionDigits] >= '5'
		fracPart = fracPart[:maxFractionDigits]
	}
	digits := intPart + fracPart
	if digits == "" {
		return Fraction{}, false
	}
	scale, _ := ipow(10, int64(len(fracPart)))
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		if !roundUp {
			return NewFraction(n, scale), true
		}
		if n, ok := add64(n, 1); ok {
			return NewFraction(n, scale), true
		}
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil || v > math.MaxInt64/float64(scale) {
		return Fraction{}, false
	}
	return NewFraction(int64(math.Round(v*float64(scale))), scale), true
}

const maxFractionDigits = 15

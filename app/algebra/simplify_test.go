package algebra

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// SimplifySuite covers the canonical rewrite rules and the fixed-point loop.
type SimplifySuite struct {
	suite.Suite
}

func (s *SimplifySuite) parse(input string) Expr {
	e, err := Parse(Lex(input))
	s.Require().NoError(err, "Parse(%q)", input)
	return e
}

func (s *SimplifySuite) TestRules() {
	tests := []struct {
		input string
		want  string
	}{
		// Add
		{"0 + x", "x"},
		{"x + 0", "x"},
		{"x + 2 + x + 3", "2 * x + 5"},
		{"y + x + 1 + x", "2 * x + y + 1"},
		{"x - x", "0"},
		{"3 - 3 + x^2", "x ^ 2"},
		{"x^2 + x + x^2", "x ^ 2 + x ^ 2 + x"},
		{"1/3 + 1/6", "1/2"},
		{"x - 2x", "-x"},
		{"5 - x", "-x + 5"},

		// Multiply
		{"-1 * (5 * x)", "-5 * x"},
		{"(2 * x) * 3", "6 * x"},
		{"2 * (3 * (4 * x))", "24 * x"},
		{"x * 1", "x"},
		{"1 * x", "x"},
		{"0 * x", "0"},
		{"x * 0", "0"},
		{"2 * 3", "6"},
		{"x * 4", "4 * x"},
		{"x * x", "x * x"},

		// Divide
		{"x / 4", "1/4 * x"},
		{"0 / x", "0"},
		{"6 / 4", "3/2"},
		{"6 / x", "6 / x"},
		{"(6 * x) / 3", "2 * x"},

		// Power
		{"2 ^ 10", "1024"},
		{"2 ^ -2", "1/4"},
		{"4 ^ (1/2)", "2"},
		{"(8/27) ^ (2/3)", "4/9"},
		{"(-8) ^ (1/3)", "-2"},
		{"2 ^ (1/2)", "2 ^ (1/2)"},
		{"(-4) ^ (1/2)", "(-4) ^ (1/2)"},
		{"2 ^ 11", "2 ^ 11"},
		{"x ^ 0", "1"},
		{"0 ^ 0", "1"},
		{"x ^ 1", "x"},
		{"0 ^ x", "0"},
	}

	for _, tt := range tests {
		got := Render(Simplify(s.parse(tt.input)))
		s.Equal(tt.want, got, "Simplify(%q)", tt.input)
	}
}

func (s *SimplifySuite) TestErrors() {
	tests := []string{
		"x / 0",
		"1 / (2 - 2)",
		"0 ^ -1",
		"x + 1 / 0",
		// A zero factor does not hide an error on the other side.
		"0 * (1 / 0)",
		"(1 / 0) * 0",
	}

	for _, input := range tests {
		got := Simplify(s.parse(input))
		e, ok := got.(*Error)
		s.Require().True(ok, "Simplify(%q) = %s, want error", input, Render(got))
		s.Equal(KindDivisionByZero, e.Kind)
		s.Equal("division by zero", e.Msg)
	}
}

func (s *SimplifySuite) TestOverflow() {
	tests := []string{
		"3037000500 * 3037000500",
		"100000 ^ 4",
		"9223372036854775807 + 1",
		"9223372036854775807x + x",
		"2 * (4611686018427387904 * x)",
		"1 / 3037000500 / 3037000500",
	}

	for _, input := range tests {
		got := Simplify(s.parse(input))
		e, ok := got.(*Error)
		s.Require().True(ok, "Simplify(%q) = %s, want error", input, Render(got))
		s.Equal(KindOverflow, e.Kind)
		s.Equal("number too large", e.Msg)
	}
}

func (s *SimplifySuite) TestIdempotent() {
	inputs := []string{
		"x + 2 + x + 3",
		"-1 * (5 * x)",
		"(x + 1) * (x + 2)",
		"y / 4 + 2 ^ (1/2) - x",
		"3 * (x + y) - 2 * (y - x)",
		"x ^ 2 ^ 3 / 7",
	}

	for _, input := range inputs {
		once := Simplify(Expand(s.parse(input)))
		twice := Simplify(once)
		s.True(Equal(once, twice), "Simplify not idempotent for %q: %s vs %s", input, Render(once), Render(twice))
	}
}

func (s *SimplifySuite) TestExpandThenSimplifyDistributes() {
	operands := [][3]Expr{
		{v("x"), n(2), v("y")},
		{v("a"), v("b"), n(3)},
		{n(5), v("x"), &Power{Left: v("x"), Right: n(2)}},
	}

	for _, ops := range operands {
		a, b, c := ops[0], ops[1], ops[2]
		left := Simplify(Expand(&Multiply{Left: &Add{Left: a, Right: b}, Right: c}))
		right := Simplify(&Add{
			Left:  &Multiply{Left: Clone(a), Right: Clone(c)},
			Right: &Multiply{Left: Clone(b), Right: Clone(c)},
		})
		s.True(Equal(left, right), "%s vs %s", Render(left), Render(right))
	}
}

func (s *SimplifySuite) TestExpandLeavesNoProductOfSums() {
	inputs := []string{
		"(x + 1)(x + 2)",
		"3(x + 2(y + 1))",
		"-(a - b)(c + d)",
		"(x + 1) ^ 2 * (y + 1)",
	}

	for _, input := range inputs {
		expanded := Expand(s.parse(input))
		s.False(hasProductOfSums(expanded), "Expand(%q) = %s", input, Render(expanded))
	}
}

func (s *SimplifySuite) TestExpandCollect() {
	got := Render(Simplify(Expand(s.parse("(x + 1)(x + 2)"))))
	s.Equal("x * x + 3 * x + 2", got)

	got = Render(Simplify(Expand(s.parse("(x + 4) / 2"))))
	s.Equal("1/2 * x + 2", got)
}

func hasProductOfSums(e Expr) bool {
	switch n := e.(type) {
	case *Multiply:
		_, l := n.Left.(*Add)
		_, r := n.Right.(*Add)
		return l || r || hasProductOfSums(n.Left) || hasProductOfSums(n.Right)
	case *Add:
		return hasProductOfSums(n.Left) || hasProductOfSums(n.Right)
	case *Divide:
		return hasProductOfSums(n.Left) || hasProductOfSums(n.Right)
	case *Power:
		return hasProductOfSums(n.Left) || hasProductOfSums(n.Right)
	}
	return false
}

func TestSimplifySuite(t *testing.T) {
	suite.Run(t, new(SimplifySuite))
}

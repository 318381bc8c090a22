package algebra

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// SolveSuite exercises variable isolation through the text entry point.
type SolveSuite struct {
	suite.Suite
}

func (s *SolveSuite) TestLinear() {
	tests := []struct {
		input string
		want  string
	}{
		{"2x + 5 = 15", "x = 5"},
		{"3 * (x + 2) = 18", "x = 4"},
		{"x / 4 = 3", "x = 12"},
		{"x = 5", "x = 5"},
		{"2 = x", "x = 2"},
		{"2(x - 3) = 4x", "x = -3"},
		{"0.5x = 2", "x = 4"},
		{"(x + 2) / 2 = 3", "x = 4"},
		{"x - 1/3 = 1/6", "x = 1/2"},
		{"7 - x = 10", "x = -3"},
	}

	for _, tt := range tests {
		s.Equal(tt.want, Solve(tt.input), "Solve(%q)", tt.input)
	}
}

func (s *SolveSuite) TestInverseOperations() {
	tests := []struct {
		input string
		want  string
	}{
		{"6 / x = 3", "x = 2"},
		{"x^2 = 9", "x = 3"},
		{"x^3 = -8", "x = -2"},
		{"x^2 = 2", "x = 2 ^ (1/2)"},
		{"4x^2 = 1", "x = 1/4"},
		{"2x^2 = 16", "x = 2"},
		{"1/2x = 3", "x = 1/6"},
	}

	for _, tt := range tests {
		s.Equal(tt.want, Solve(tt.input), "Solve(%q)", tt.input)
	}
}

func (s *SolveSuite) TestFailures() {
	tests := []struct {
		input string
		want  string
	}{
		{"x = x", "infinite solutions (identity)"},
		{"5 = 5", "infinite solutions (identity)"},
		{"2(x + 1) = 2x + 2", "infinite solutions (identity)"},
		{"x + 1 = x", "no solution (contradiction)"},
		{"5 = 6", "no solution (contradiction)"},
		{"1 / x = 0", "no solution (contradiction)"},
		{"2^x = 8", "exponential equation unsupported"},
		{"x^2 + x = 0", "could not isolate variable"},
		{"x * x = 4", "could not isolate variable"},
		{"x = 1 / 0", "division by zero"},
		{"x = 0 * (1 / 0)", "division by zero"},
	}

	for _, tt := range tests {
		s.Equal(tt.want, Solve(tt.input), "Solve(%q)", tt.input)
	}
}

// The variable solved for is simply the lexically first name present. For
// input with several unknowns this is an arbitrary but stable choice.
func (s *SolveSuite) TestAutoSelectedVariable() {
	tests := []struct {
		input string
		want  string
	}{
		{"y + x = 10", "x = -y + 10"},
		{"b = 2a", "a = 1/2 * b"},
		{"z + 1 = 3", "z = 2"},
		{"B + a = 0", "B = -a"},
	}

	for _, tt := range tests {
		s.Equal(tt.want, Solve(tt.input), "Solve(%q)", tt.input)
	}
}

func (s *SolveSuite) TestIsolateDirect() {
	// 3x = 12, given directly rather than through text.
	got := Isolate(&Multiply{Left: n(3), Right: v("x")}, n(12), "x")
	s.True(Equal(n(4), got), "got %s", Render(got))

	// The target does not appear: equal sides are an identity.
	got = Isolate(v("y"), v("y"), "x")
	e, ok := got.(*Error)
	s.Require().True(ok)
	s.Equal(KindInfiniteSolutions, e.Kind)

	// Errors on either side pass straight through.
	got = Isolate(v("x"), &Divide{Left: n(1), Right: n(0)}, "x")
	e, ok = got.(*Error)
	s.Require().True(ok)
	s.Equal(KindDivisionByZero, e.Kind)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

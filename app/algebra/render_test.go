package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	half := num(NewFraction(1, 2))
	tests := []struct {
		expr Expr
		want string
	}{
		{n(5), "5"},
		{num(NewFraction(-3, 4)), "-3/4"},
		{&Add{Left: v("x"), Right: n(1)}, "x + 1"},
		{&Add{Left: v("x"), Right: n(-3)}, "x - 3"},
		{&Add{Left: v("x"), Right: negate(n(3))}, "x - 3"},
		{&Add{Left: v("x"), Right: negate(v("y"))}, "x - y"},
		{&Add{Left: v("x"), Right: &Multiply{Left: n(-2), Right: v("y")}}, "x - 2 * y"},
		{&Add{Left: v("x"), Right: negate(&Add{Left: v("a"), Right: v("b")})}, "x - (a + b)"},
		{negate(v("x")), "-x"},
		{negate(&Add{Left: v("a"), Right: v("b")}), "-(a + b)"},
		{negate(&Power{Left: v("x"), Right: n(2)}), "-(x ^ 2)"},
		{negate(&Multiply{Left: &Power{Left: v("x"), Right: n(2)}, Right: v("y")}), "-(x ^ 2 * y)"},
		{negate(&Divide{Left: &Power{Left: v("x"), Right: n(2)}, Right: v("y")}), "-(x ^ 2 / y)"},
		{negate(&Multiply{Left: half, Right: v("x")}), "-(1/2 * x)"},
		{negate(&Multiply{Left: v("x"), Right: v("y")}), "-x * y"},
		{negate(&Divide{Left: n(2), Right: v("y")}), "-2 / y"},
		{&Multiply{Left: n(2), Right: &Add{Left: v("x"), Right: n(1)}}, "2 * (x + 1)"},
		{&Multiply{Left: v("x"), Right: n(-3)}, "x * (-3)"},
		{&Multiply{Left: half, Right: v("x")}, "1/2 * x"},
		{&Divide{Left: v("x"), Right: &Multiply{Left: v("y"), Right: v("z")}}, "x / (y * z)"},
		{&Power{Left: v("x"), Right: half}, "x ^ (1/2)"},
		{&Power{Left: n(-2), Right: n(2)}, "(-2) ^ 2"},
		{&Power{Left: &Power{Left: v("x"), Right: n(2)}, Right: n(3)}, "x ^ 2 ^ 3"},
		{&Power{Left: v("x"), Right: &Power{Left: n(2), Right: n(3)}}, "x ^ (2 ^ 3)"},
		{errorNode(KindDivisionByZero, "division by zero"), "division by zero"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Render(tt.expr))
	}
}

// Rendering then parsing gives back the same tree.
func TestRenderRoundTrip(t *testing.T) {
	inputs := []string{
		"2 * x + 5",
		"x / (y * z)",
		"(x + 1) * (x - 1)",
		"x ^ (1/2) - 3",
		"a - (b - c)",
	}

	for _, input := range inputs {
		e := mustParse(t, input)
		again := mustParse(t, Render(e))
		assert.True(t, Equal(e, again), "%q rendered as %q", input, Render(e))
	}
}

// A simplified tree survives rendering and re-parsing. A leading minus must
// not capture the base of a power.
func TestRenderRoundTripSimplified(t *testing.T) {
	sq := func() Expr { return &Power{Left: v("x"), Right: n(2)} }
	trees := []Expr{
		negate(&Multiply{Left: sq(), Right: v("y")}),
		negate(&Divide{Left: sq(), Right: v("y")}),
		&Add{Left: negate(&Multiply{Left: sq(), Right: v("y")}), Right: v("y")},
		&Add{Left: v("a"), Right: negate(&Multiply{Left: sq(), Right: v("y")})},
		&Multiply{Left: n(-3), Right: sq()},
		&Power{Left: n(-2), Right: v("x")},
	}

	for _, tree := range trees {
		want := Simplify(tree)
		text := Render(want)
		got := Simplify(mustParse(t, text))
		assert.True(t, Equal(want, got), "%s re-parsed as %s", text, Render(got))
	}
}

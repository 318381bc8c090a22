package algebra

import "strings"

// Binding strength of each node when rendered as infix text.
const (
	precSum = iota + 1
	precProduct
	precPower
	precAtom
)

// Render formats e as infix text. Adding a negative term is shown as a
// subtraction and -1 * X as -X. Parentheses appear only where the grammar
// would otherwise read the text differently.
func Render(e Expr) string {
	var b strings.Builder
	render(&b, e)
	return b.String()
}

func render(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Number:
		b.WriteString(n.Value.String())
	case *Variable:
		b.WriteString(n.Name)
	case *Error:
		b.WriteString(n.Msg)
	case *Add:
		renderOperand(b, n.Left, precSum, false)
		if abs, ok := negativeTerm(n.Right); ok {
			b.WriteString(" - ")
			renderOperand(b, abs, precSum, true)
			return
		}
		b.WriteString(" + ")
		renderOperand(b, n.Right, precSum, true)
	case *Multiply:
		if c, ok := n.Left.(*Number); ok && c.Value == minusOneFraction {
			// Unary minus binds tighter than ^, so "-" may only prefix a
			// product whose first factor is a bare name or integer.
			b.WriteString("-")
			lead := leadingFactor(n.Right)
			if _, ok := lead.(*Variable); ok || isPlainInteger(lead) {
				render(b, n.Right)
			} else {
				wrap(b, n.Right)
			}
			return
		}
		renderOperand(b, n.Left, precProduct, false)
		b.WriteString(" * ")
		renderOperand(b, n.Right, precProduct, true)
	case *Divide:
		renderOperand(b, n.Left, precProduct, false)
		b.WriteString(" / ")
		renderOperand(b, n.Right, precProduct, true)
	case *Power:
		renderOperand(b, n.Left, precPower, false)
		b.WriteString(" ^ ")
		renderOperand(b, n.Right, precPower, true)
	}
}

// renderOperand renders a child of an operator with binding strength prec.
// Operators are left-associative, so a right operand also needs parentheses
// when it binds exactly as tightly as its parent.
func renderOperand(b *strings.Builder, e Expr, prec int, right bool) {
	p := precedence(e)
	if p < prec || (right && p == prec) {
		wrap(b, e)
		return
	}
	render(b, e)
}

func wrap(b *strings.Builder, e Expr) {
	b.WriteByte('(')
	render(b, e)
	b.WriteByte(')')
}

func precedence(e Expr) int {
	switch n := e.(type) {
	case *Add:
		return precSum
	case *Multiply, *Divide:
		return precProduct
	case *Power:
		return precPower
	case *Number:
		if !isPlainInteger(n) {
			// -3 and 1/2 read like a negation and a quotient.
			return precProduct
		}
	}
	return precAtom
}

// leadingFactor returns the leftmost operand of a chain of products and
// quotients, or e itself.
func leadingFactor(e Expr) Expr {
	for {
		switch n := e.(type) {
		case *Multiply:
			e = n.Left
		case *Divide:
			e = n.Left
		default:
			return e
		}
	}
}

func isPlainInteger(e Expr) bool {
	n, ok := e.(*Number)
	return ok && n.Value.IsInteger() && !n.Value.IsNegative()
}

// negativeTerm reports whether e is a negative constant or a product with a
// negative coefficient, and returns the term with the sign removed.
func negativeTerm(e Expr) (Expr, bool) {
	switch n := e.(type) {
	case *Number:
		if n.Value.IsNegative() {
			return num(n.Value.Neg()), true
		}
	case *Multiply:
		c, ok := n.Left.(*Number)
		if !ok || !c.Value.IsNegative() {
			return nil, false
		}
		if c.Value == minusOneFraction {
			return n.Right, true
		}
		return &Multiply{Left: num(c.Value.Neg()), Right: n.Right}, true
	}
	return nil, false
}

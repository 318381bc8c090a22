package algebra

// DefaultVariable is solved for when an equation mentions no variable at all.
const DefaultVariable = "x"

// Isolate solves left = right for the variable target by peeling the outer
// operation off left and applying its inverse to right until left is the bare
// variable. The result is the simplified right side or an Error node.
//
// Each step replaces left with one of its operands, so recursion depth is
// bounded by the depth of the original left tree.
func Isolate(left, right Expr, target string) Expr {
	left, right = Simplify(left), Simplify(right)
	if e, ok := left.(*Error); ok {
		return e
	}
	if e, ok := right.(*Error); ok {
		return e
	}

	if !Contains(left, target) {
		if Equal(left, right) {
			return errorNode(KindInfiniteSolutions, msgInfiniteSolutions)
		}
		return errorNode(KindNoSolution, msgNoSolution)
	}

	switch n := left.(type) {
	case *Variable:
		if Contains(right, target) {
			// x * x = x + 2 and friends: the variable is on both sides.
			return errorNode(KindUnsupported, msgCannotIsolate)
		}
		return right

	case *Add:
		if Contains(n.Left, target) {
			return Isolate(n.Left, &Add{Left: right, Right: negate(n.Right)}, target)
		}
		return Isolate(n.Right, &Add{Left: right, Right: negate(n.Left)}, target)

	case *Multiply:
		if Contains(n.Left, target) {
			return Isolate(n.Left, &Divide{Left: right, Right: n.Right}, target)
		}
		return Isolate(n.Right, &Divide{Left: right, Right: n.Left}, target)

	case *Divide:
		if Contains(n.Left, target) {
			return Isolate(n.Left, &Multiply{Left: right, Right: n.Right}, target)
		}
		if isZero(right) {
			// c / x never reaches zero.
			return errorNode(KindNoSolution, msgNoSolution)
		}
		return Isolate(n.Right, &Divide{Left: n.Left, Right: right}, target)

	case *Power:
		if Contains(n.Right, target) {
			return errorNode(KindUnsupported, msgExponential)
		}
		exp, ok := n.Right.(*Number)
		if !ok {
			return errorNode(KindUnsupported, msgCannotIsolate)
		}
		return Isolate(n.Left, &Power{Left: right, Right: num(exp.Value.Reciprocal())}, target)
	}
	return errorNode(KindUnsupported, msgCannotIsolate)
}

// SolveFor picks the variable to solve for: the lexically first name in e,
// or DefaultVariable when e has none.
func SolveFor(e Expr) string {
	if names := Variables(e); len(names) > 0 {
		return names[0]
	}
	return DefaultVariable
}

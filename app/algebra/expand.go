package algebra

// Expand distributes multiplication over addition until no Multiply node has
// an Add operand. It does not merge like terms; that is Simplify's job.
//
// A sum divided by a constant is distributed the same way, so (a + b) / 2
// becomes a/2 + b/2 and its terms can be collected later.
func Expand(e Expr) Expr {
	switch n := e.(type) {
	case *Add:
		return &Add{Left: Expand(n.Left), Right: Expand(n.Right)}

	case *Multiply:
		left, right := Expand(n.Left), Expand(n.Right)
		if a, ok := left.(*Add); ok {
			// (a + b) * c -> a*c + b*c
			return &Add{
				Left:  Expand(&Multiply{Left: a.Left, Right: right}),
				Right: Expand(&Multiply{Left: a.Right, Right: Clone(right)}),
			}
		}
		if a, ok := right.(*Add); ok {
			// a * (b + c) -> a*b + a*c
			return &Add{
				Left:  Expand(&Multiply{Left: left, Right: a.Left}),
				Right: Expand(&Multiply{Left: Clone(left), Right: a.Right}),
			}
		}
		return &Multiply{Left: left, Right: right}

	case *Divide:
		left, right := Expand(n.Left), Expand(n.Right)
		if a, ok := left.(*Add); ok {
			if d, ok := right.(*Number); ok && !d.Value.IsZero() {
				return &Add{
					Left:  Expand(&Divide{Left: a.Left, Right: d}),
					Right: Expand(&Divide{Left: a.Right, Right: num(d.Value)}),
				}
			}
		}
		return &Divide{Left: left, Right: right}

	case *Power:
		return &Power{Left: Expand(n.Left), Right: Expand(n.Right)}
	}
	return e
}

package algebra

import "golang.org/x/exp/slices"

// MaxExponent bounds the integer exponents folded by Simplify and the
// numerator and denominator of rational exponents tried as exact radicals.
const MaxExponent = 10

// maxSimplifyPasses caps the fixed-point loop. Each pass is terminating and
// real inputs settle within a handful of passes.
const maxSimplifyPasses = 64

// Simplify rewrites e into canonical form by repeating a single rewrite pass
// until two consecutive results are structurally equal. One pass can expose
// structure that only folds on the next, e.g. -1 * (5 * x) becomes (-5) * x.
func Simplify(e Expr) Expr {
	cur := simplifyPass(e)
	for i := 0; i < maxSimplifyPasses; i++ {
		next := simplifyPass(cur)
		if Equal(next, cur) {
			return next
		}
		cur = next
	}
	return cur
}

func simplifyPass(e Expr) Expr {
	switch n := e.(type) {
	case *Add:
		return simplifyAdd(n)
	case *Multiply:
		return simplifyMultiply(n)
	case *Divide:
		return simplifyDivide(n)
	case *Power:
		return simplifyPower(n)
	}
	// Number, Variable and Error are already canonical.
	return e
}

// childError returns the first of l and r that is an Error node. Errors bubble
// up one level per pass, so after a full pass any error is at the root.
func childError(l, r Expr) (*Error, bool) {
	if e, ok := l.(*Error); ok {
		return e, true
	}
	if e, ok := r.(*Error); ok {
		return e, true
	}
	return nil, false
}

func simplifyAdd(n *Add) Expr {
	l, r := simplifyPass(n.Left), simplifyPass(n.Right)
	if e, ok := childError(l, r); ok {
		return e
	}
	if isZero(l) {
		return r
	}
	if isZero(r) {
		return l
	}

	var terms []Expr
	flattenAdd(l, &terms)
	flattenAdd(r, &terms)
	return collectTerms(terms)
}

// flattenAdd appends every operand of an additive chain to terms, left to right.
func flattenAdd(e Expr, terms *[]Expr) {
	if a, ok := e.(*Add); ok {
		flattenAdd(a.Left, terms)
		flattenAdd(a.Right, terms)
		return
	}
	*terms = append(*terms, e)
}

// collectTerms merges the constants and the coefficients of each variable
// in terms. Anything else is kept unmerged in first-seen order. The result is
// complex terms, then variables by ascending name, then the constant.
func collectTerms(terms []Expr) Expr {
	constant := zeroFraction
	coeffs := map[string]Fraction{}
	var names []string
	var complexTerms []Expr

	addCoeff := func(name string, c Fraction) bool {
		if _, seen := coeffs[name]; !seen {
			names = append(names, name)
		}
		sum, ok := coeffs[name].Add(c)
		coeffs[name] = sum
		return ok
	}

	for _, t := range terms {
		ok := true
		switch v := t.(type) {
		case *Number:
			constant, ok = constant.Add(v.Value)
		case *Variable:
			ok = addCoeff(v.Name, oneFraction)
		default:
			if c, name, isCoeff := coefficientTerm(t); isCoeff {
				ok = addCoeff(name, c)
			} else {
				complexTerms = append(complexTerms, t)
			}
		}
		if !ok {
			return overflow()
		}
	}

	result := complexTerms
	slices.Sort(names)
	for _, name := range names {
		c := coeffs[name]
		switch {
		case c.IsZero():
			continue
		case c.IsOne():
			result = append(result, &Variable{Name: name})
		default:
			result = append(result, &Multiply{Left: num(c), Right: &Variable{Name: name}})
		}
	}
	if !constant.IsZero() || len(result) == 0 {
		result = append(result, num(constant))
	}

	sum := result[0]
	for _, t := range result[1:] {
		sum = &Add{Left: sum, Right: t}
	}
	return sum
}

// coefficientTerm matches number * variable.
func coefficientTerm(e Expr) (Fraction, string, bool) {
	m, ok := e.(*Multiply)
	if !ok {
		return Fraction{}, "", false
	}
	c, ok := m.Left.(*Number)
	if !ok {
		return Fraction{}, "", false
	}
	v, ok := m.Right.(*Variable)
	if !ok {
		return Fraction{}, "", false
	}
	return c.Value, v.Name, true
}

func simplifyMultiply(n *Multiply) Expr {
	l, r := simplifyPass(n.Left), simplifyPass(n.Right)
	if e, ok := childError(l, r); ok {
		return e
	}
	if isZero(l) || isZero(r) {
		return integer(0)
	}

	ln, lok := l.(*Number)
	rn, rok := r.(*Number)
	switch {
	case lok && rok:
		return numOrOverflow(ln.Value.Mul(rn.Value))
	case lok && ln.Value.IsOne():
		return r
	case rok && rn.Value.IsOne():
		return l
	case rok:
		// Coefficients go on the left.
		l, r = r, l
		ln, lok = rn, true
	}

	if lok {
		// c1 * (c2 * X) -> (c1*c2) * X
		if inner, ok := r.(*Multiply); ok {
			if c, ok := inner.Left.(*Number); ok {
				coeff, ok := ln.Value.Mul(c.Value)
				if !ok {
					return overflow()
				}
				return simplifyPass(&Multiply{Left: num(coeff), Right: inner.Right})
			}
		}
	}
	return &Multiply{Left: l, Right: r}
}

func simplifyDivide(n *Divide) Expr {
	l, r := simplifyPass(n.Left), simplifyPass(n.Right)
	if e, ok := childError(l, r); ok {
		return e
	}
	rn, rok := r.(*Number)
	if rok && rn.Value.IsZero() {
		return errorNode(KindDivisionByZero, msgDivisionByZero)
	}
	if isZero(l) {
		return integer(0)
	}
	if !rok {
		return &Divide{Left: l, Right: r}
	}
	if ln, ok := l.(*Number); ok {
		return numOrOverflow(ln.Value.Div(rn.Value))
	}
	// X / c -> (1/c) * X, so term collection only ever sees coefficients.
	return simplifyPass(&Multiply{Left: num(rn.Value.Reciprocal()), Right: l})
}

func simplifyPower(n *Power) Expr {
	base, exp := simplifyPass(n.Left), simplifyPass(n.Right)
	if e, ok := childError(base, exp); ok {
		return e
	}

	en, eok := exp.(*Number)
	if eok {
		if bn, ok := base.(*Number); ok {
			if folded, ok := foldPower(bn.Value, en.Value); ok {
				return folded
			}
		}
		if en.Value.IsZero() {
			return integer(1)
		}
		if en.Value.IsOne() {
			return base
		}
	}
	if isZero(base) {
		return integer(0)
	}
	return &Power{Left: base, Right: exp}
}

// foldPower evaluates base^exp when the result is exact and the exponent is
// within MaxExponent. A rational exponent p/q is tried as an exact q-th root
// raised to p; when no exact root exists the power is left alone.
func foldPower(base, exp Fraction) (Expr, bool) {
	p, q := exp.Num(), exp.Den()
	if abs64(p) > MaxExponent || q > MaxExponent {
		return nil, false
	}
	if base.IsZero() && p < 0 {
		return errorNode(KindDivisionByZero, msgDivisionByZero), true
	}
	if q == 1 {
		return numOrOverflow(base.Pow(p)), true
	}
	rootNum, ok := ExactRoot(base.Num(), q)
	if !ok {
		return nil, false
	}
	rootDen, ok := ExactRoot(base.Den(), q)
	if !ok {
		return nil, false
	}
	return numOrOverflow(NewFraction(rootNum, rootDen).Pow(p)), true
}

// numOrOverflow wraps the result of a Fraction operation, turning a result
// that left the int64 range into an Error node.
func numOrOverflow(f Fraction, ok bool) Expr {
	if !ok {
		return overflow()
	}
	return num(f)
}

func overflow() *Error { return errorNode(KindOverflow, msgOverflow) }

func isZero(e Expr) bool {
	n, ok := e.(*Number)
	return ok && n.Value.IsZero()
}

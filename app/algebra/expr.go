package algebra

import "golang.org/x/exp/slices"

// Expr is a node of an expression tree. The set of node types is closed:
// Number, Variable, Add, Multiply, Divide, Power and Error. Subtraction is
// never a node of its own; a - b is Add(a, Multiply(Number(-1), b)).
//
// Trees are never shared or mutated. Every transform returns a new tree.
type Expr interface {
	exprTag()
}

// Number is a constant leaf.
type Number struct {
	Value Fraction
}

// Variable is a symbol leaf.
type Variable struct {
	Name string
}

// Add is the sum Left + Right.
type Add struct {
	Left, Right Expr
}

// Multiply is the product Left * Right.
type Multiply struct {
	Left, Right Expr
}

// Divide is the quotient Left / Right.
type Divide struct {
	Left, Right Expr
}

// Power is Left raised to Right.
type Power struct {
	Left, Right Expr
}

// Error is a terminal node for a failed computation. Transforms pass it
// through instead of combining it with anything else.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (*Number) exprTag()   {}
func (*Variable) exprTag() {}
func (*Add) exprTag()      {}
func (*Multiply) exprTag() {}
func (*Divide) exprTag()   {}
func (*Power) exprTag()    {}
func (*Error) exprTag()    {}

// Err converts the node to a Go error.
func (e *Error) Err() error {
	return &EvalError{Kind: e.Kind, Msg: e.Msg}
}

func num(f Fraction) *Number                   { return &Number{Value: f} }
func integer(n int64) *Number                  { return &Number{Value: Integer(n)} }
func errorNode(k ErrorKind, msg string) *Error { return &Error{Kind: k, Msg: msg} }

// negate builds -e in the canonical Multiply(Number(-1), e) shape.
func negate(e Expr) Expr {
	return &Multiply{Left: num(minusOneFraction), Right: e}
}

// Clone returns a deep copy of e. Operands duplicated by a rewrite are
// cloned so that no two parents ever share a subtree.
func Clone(e Expr) Expr {
	switch n := e.(type) {
	case *Number:
		return num(n.Value)
	case *Variable:
		return &Variable{Name: n.Name}
	case *Add:
		return &Add{Left: Clone(n.Left), Right: Clone(n.Right)}
	case *Multiply:
		return &Multiply{Left: Clone(n.Left), Right: Clone(n.Right)}
	case *Divide:
		return &Divide{Left: Clone(n.Left), Right: Clone(n.Right)}
	case *Power:
		return &Power{Left: Clone(n.Left), Right: Clone(n.Right)}
	case *Error:
		return errorNode(n.Kind, n.Msg)
	}
	return e
}

// Equal reports whether a and b are structurally identical trees.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Number:
		y, ok := b.(*Number)
		return ok && x.Value == y.Value
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	case *Add:
		y, ok := b.(*Add)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Multiply:
		y, ok := b.(*Multiply)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Divide:
		y, ok := b.(*Divide)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Power:
		y, ok := b.(*Power)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Error:
		y, ok := b.(*Error)
		return ok && x.Kind == y.Kind && x.Msg == y.Msg
	}
	return false
}

// Contains reports whether the variable name occurs anywhere in e.
func Contains(e Expr, name string) bool {
	switch n := e.(type) {
	case *Variable:
		return n.Name == name
	case *Add:
		return Contains(n.Left, name) || Contains(n.Right, name)
	case *Multiply:
		return Contains(n.Left, name) || Contains(n.Right, name)
	case *Divide:
		return Contains(n.Left, name) || Contains(n.Right, name)
	case *Power:
		return Contains(n.Left, name) || Contains(n.Right, name)
	}
	return false
}

// Variables returns the distinct variable names in e, sorted.
func Variables(e Expr) []string {
	var names []string
	collectVariables(e, &names)
	slices.Sort(names)
	return names
}

func collectVariables(e Expr, names *[]string) {
	switch n := e.(type) {
	case *Variable:
		if !slices.Contains(*names, n.Name) {
			*names = append(*names, n.Name)
		}
	case *Add:
		collectVariables(n.Left, names)
		collectVariables(n.Right, names)
	case *Multiply:
		collectVariables(n.Left, names)
		collectVariables(n.Right, names)
	case *Divide:
		collectVariables(n.Left, names)
		collectVariables(n.Right, names)
	case *Power:
		collectVariables(n.Left, names)
		collectVariables(n.Right, names)
	}
}


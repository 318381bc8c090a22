// Package algebra turns a line of arithmetic or algebra into a canonical
// simplified form, or, when the line is an equation in one unknown, into an
// explicit solution.
//
// Text is lexed and parsed into an expression tree, expanded, simplified to a
// fixed point and, for equations, solved by isolating the variable. All
// arithmetic is exact: numbers are reduced fractions, never floats.
package algebra

import "strings"

// Result is the value of one evaluated line.
type Result struct {
	Var   string // variable solved for; empty for a plain expression
	Value Expr   // simplified value, never an *Error
}

func (r Result) String() string {
	if r.Var != "" {
		return r.Var + " = " + Render(r.Value)
	}
	return Render(r.Value)
}

// Solve evaluates input and always returns text: the simplified expression,
// "x = value" for an equation, or an error message. Blank input yields "0".
func Solve(input string) string {
	if strings.TrimSpace(input) == "" {
		return "0"
	}
	res, err := EvalLine(input, nil)
	if err != nil {
		return err.Error()
	}
	return res.String()
}

// Visualize renders the parsed statement as "L: left | R: right" without
// simplifying or solving it. Blank input yields "".
func Visualize(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	stmt, err := ParseStatement(Lex(Normalize(input)), nil)
	if err != nil {
		return err.Error()
	}
	return "L: " + Render(stmt.Left) + " | R: " + Render(stmt.Right)
}

// CountTokens returns the number of tokens in input, not counting the end marker.
func CountTokens(input string) int {
	return len(Lex(Normalize(input))) - 1
}

// EvalLine lexes, parses and evaluates a single line. resolve supplies the
// values of #N line references and may be nil.
func EvalLine(line string, resolve Resolver) (Result, error) {
	tokens := Lex(Normalize(line))
	if len(tokens) == 1 {
		return Result{}, syntaxError("empty expression")
	}
	stmt, err := ParseStatement(tokens, resolve)
	if err != nil {
		return Result{}, err
	}
	return Evaluate(stmt)
}

// Evaluate simplifies a plain expression, or moves everything in an equation
// to the left side and isolates the lexically first variable.
func Evaluate(stmt Statement) (Result, error) {
	if !stmt.HasEquals {
		v := Simplify(Expand(stmt.Left))
		if e, ok := v.(*Error); ok {
			return Result{}, e.Err()
		}
		return Result{Value: v}, nil
	}

	unified := Simplify(Expand(&Add{Left: stmt.Left, Right: negate(stmt.Right)}))
	target := SolveFor(unified)
	v := Isolate(unified, integer(0), target)
	if e, ok := v.(*Error); ok {
		return Result{}, e.Err()
	}
	return Result{Var: target, Value: v}, nil
}

package algebra

// ErrorKind classifies a failed computation.
type ErrorKind int

const (
	KindSyntax ErrorKind = iota
	KindDivisionByZero
	KindNoSolution
	KindInfiniteSolutions
	KindUnsupported
	KindOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax error"
	case KindDivisionByZero:
		return "division by zero"
	case KindNoSolution:
		return "no solution"
	case KindInfiniteSolutions:
		return "infinite solutions"
	case KindUnsupported:
		return "unsupported"
	case KindOverflow:
		return "overflow"
	}
	return "unknown error"
}

// Messages produced by the engine.
const (
	msgDivisionByZero    = "division by zero"
	msgNoSolution        = "no solution (contradiction)"
	msgInfiniteSolutions = "infinite solutions (identity)"
	msgExponential       = "exponential equation unsupported"
	msgCannotIsolate     = "could not isolate variable"
	msgOverflow          = "number too large"
)

// EvalError represents a failed parse or evaluation.
type EvalError struct {
	Kind ErrorKind
	Msg  string
}

func (e *EvalError) Error() string {
	return e.Msg
}

func syntaxError(msg string) *EvalError {
	return &EvalError{Kind: KindSyntax, Msg: msg}
}

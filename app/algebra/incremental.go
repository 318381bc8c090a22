package algebra

import (
	"strconv"
	"strings"
)

// CachedLine holds the cached state for a single line.
type CachedLine struct {
	Text    string
	Result  Result
	Err     error
	Refs    []int // 1-based line numbers referenced with #N
	IsEmpty bool  // line was blank or comment
}

// EvalResult is the result of evaluating a single line.
type EvalResult struct {
	Text   string // formatted result
	IsErr  bool
	Solved bool // the line was an equation and Text is its solution
}

// EvalState holds the incremental evaluation cache for a notebook.
type EvalState struct {
	Lines []CachedLine
}

// LineRefs returns the line numbers referenced with #N in line, in order.
func LineRefs(line string) []int {
	var refs []int
	tokens := Lex(Normalize(line))
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Type != TOKEN_HASH || tokens[i+1].Type != TOKEN_NUMBER {
			continue
		}
		if n, err := strconv.Atoi(tokens[i+1].Literal); err == nil {
			refs = append(refs, n)
		}
	}
	return refs
}

// IsComment reports whether a line is blank or a comment and yields no result.
func IsComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "//")
}

// EvalAllIncremental evaluates lines, reusing cached results for lines whose
// text is unchanged and whose referenced lines produced the same result.
func (es *EvalState) EvalAllIncremental(lines []string) []EvalResult {
	results := make([]EvalResult, len(lines))

	// Full reset when line count changes
	if len(lines) != len(es.Lines) {
		es.Lines = make([]CachedLine, len(lines))
		for i := range es.Lines {
			es.Lines[i].Text = "\x00" // force dirty
		}
	}

	changed := make(map[int]bool)

	for i, line := range lines {
		cached := &es.Lines[i]

		dirty := cached.Text != line
		if !dirty {
			for _, ref := range cached.Refs {
				if changed[ref] {
					dirty = true
					break
				}
			}
		}

		if !dirty {
			results[i] = cached.evalResult()
			continue
		}

		old := *cached
		cached.Text = line
		cached.IsEmpty = IsComment(line)
		cached.Refs = nil
		cached.Result = Result{}
		cached.Err = nil

		if !cached.IsEmpty {
			cached.Refs = LineRefs(line)
			cached.Result, cached.Err = EvalLine(line, es.resolver(i))
		}

		results[i] = cached.evalResult()
		if !sameOutcome(old, *cached) {
			changed[i+1] = true
		}
	}

	return results
}

// resolver resolves #N for line index i against lines above it.
func (es *EvalState) resolver(i int) Resolver {
	return func(n int) (Expr, error) {
		if n < 1 || n > i {
			return nil, undefinedRef(n)
		}
		ref := es.Lines[n-1]
		if ref.IsEmpty || ref.Err != nil || ref.Result.Value == nil {
			return nil, undefinedRef(n)
		}
		return Clone(ref.Result.Value), nil
	}
}

func undefinedRef(n int) error {
	return &EvalError{Kind: KindUnsupported, Msg: "undefined reference #" + strconv.Itoa(n)}
}

func (c *CachedLine) evalResult() EvalResult {
	switch {
	case c.IsEmpty:
		return EvalResult{}
	case c.Err != nil:
		return EvalResult{Text: c.Err.Error(), IsErr: true}
	}
	return EvalResult{Text: c.Result.String(), Solved: c.Result.Var != ""}
}

func sameOutcome(a, b CachedLine) bool {
	if a.IsEmpty != b.IsEmpty || (a.Err == nil) != (b.Err == nil) {
		return false
	}
	if a.Err != nil {
		return a.Err.Error() == b.Err.Error()
	}
	if a.Result.Value == nil || b.Result.Value == nil {
		return a.Result.Value == nil && b.Result.Value == nil
	}
	return a.Result.Var == b.Result.Var && Equal(a.Result.Value, b.Result.Value)
}

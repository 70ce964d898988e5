package topdown

import (
	"fmt"

	"github.com/topdown-go/topdown/lexer"
)

// Reason classifies why an expansion failed.
type Reason int

const (
	// TokenMismatch is returned when a terminal does not match the current token.
	TokenMismatch Reason = iota + 1
	// AlternativesExhausted is returned when no production of a nonterminal matched.
	AlternativesExhausted
	// TrailingInput is returned when the start symbol matched but tokens remained.
	TrailingInput
)

func (r Reason) String() string {
	switch r {
	case TokenMismatch:
		return "token mismatch"
	case AlternativesExhausted:
		return "alternatives exhausted"
	case TrailingInput:
		return "trailing input"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Sentinels for use with errors.Is.
var (
	ErrTokenMismatch         = &Error{Reason: TokenMismatch}
	ErrAlternativesExhausted = &Error{Reason: AlternativesExhausted}
	ErrTrailingInput         = &Error{Reason: TrailingInput}
)

// Error is returned when an expansion or parse fails.
//
// For AlternativesExhausted, Cause is the failure that got furthest into the input, the earliest
// one on ties.
type Error struct {
	Reason Reason
	// Symbol being expanded.
	Symbol lexer.Symbol
	// Found is the symbol of the token at which expansion failed.
	Found lexer.Symbol
	// Pos is the unit index of that token.
	Pos   int
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message()
	}
	return e.Message() + ": " + e.Cause.Error()
}

// Message returns the error without its cause.
func (e *Error) Message() string {
	switch e.Reason {
	case TokenMismatch:
		return fmt.Sprintf("%s: unexpected %s", e.Symbol, e.Found)
	case AlternativesExhausted:
		return fmt.Sprintf("%s: no alternative matched at %s", e.Symbol, e.Found)
	case TrailingInput:
		return fmt.Sprintf("%s: unexpected %s after complete parse", e.Symbol, e.Found)
	}
	return fmt.Sprintf("%s: %s", e.Symbol, e.Reason)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches an *Error with the same Reason and, if target has one, the same Symbol.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Reason == e.Reason && (t.Symbol == "" || t.Symbol == e.Symbol)
}

func mismatch(sym lexer.Symbol, c lexer.Cursor) error {
	return &Error{Reason: TokenMismatch, Symbol: sym, Found: c.Symbol, Pos: c.Pos}
}

func exhausted(sym lexer.Symbol, c lexer.Cursor, cause error) error {
	return &Error{Reason: AlternativesExhausted, Symbol: sym, Found: c.Symbol, Pos: c.Pos, Cause: cause}
}

// reach returns the position of the innermost *Error in the cause chain of err, or -1.
func reach(err error) int {
	pos := -1
	for e, ok := err.(*Error); ok; e, ok = e.Cause.(*Error) {
		pos = e.Pos
	}
	return pos
}

// further returns true if err got further into the input than best.
func further(err, best error) bool {
	return best == nil || reach(err) > reach(best)
}

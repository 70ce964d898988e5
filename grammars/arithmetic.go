package grammars

import (
	"fmt"

	"github.com/topdown-go/topdown"
	"github.com/topdown-go/topdown/lexer"
)

// Symbols of the arithmetic grammar.
const (
	E     lexer.Symbol = "E"
	T     lexer.Symbol = "T"
	F     lexer.Symbol = "F"
	NUM   lexer.Symbol = "NUM"
	PLUS  lexer.Symbol = "PLUS"
	MULT  lexer.Symbol = "MULT"
	OPEN  lexer.Symbol = "OPEN"
	CLOSE lexer.Symbol = "CLOSE"
)

// ArithmeticGrammar returns
//
//	E = T PLUS E | T .
//	T = F MULT T | F .
//	F = NUM | OPEN E CLOSE .
//
// Operators are right recursive, as left recursion is not supported.
//
// Every failed alternative is retried from scratch, so parse time grows about fourfold with each
// level of parenthesis nesting. Inputs nested more than eight deep take seconds.
func ArithmeticGrammar() *topdown.Grammar {
	return topdown.Must(topdown.NewGrammarBuilder(E).
		Rule(E, T, PLUS, E).
		Rule(E, T).
		Rule(T, F, MULT, T).
		Rule(T, F).
		Rule(F, NUM).
		Rule(F, OPEN, E, CLOSE).
		Grammar())
}

// ArithmeticLexicon returns the character lexicon of the arithmetic grammar: single digits,
// operators and parentheses. Any other character is skipped.
func ArithmeticLexicon() lexer.Definition {
	return lexer.Must(lexer.Chars(map[lexer.Symbol]string{
		NUM:   "0123456789",
		PLUS:  "+",
		MULT:  "*",
		OPEN:  "(",
		CLOSE: ")",
	}))
}

// NewArithmeticParser creates a parser for the arithmetic grammar.
func NewArithmeticParser(options ...topdown.Option) (*topdown.Parser, error) {
	return topdown.New(ArithmeticGrammar(), ArithmeticLexicon(), options...)
}

// Names of the built-in grammars, for New.
var Names = []string{"sentence", "arithmetic"}

// New creates a parser for the named built-in grammar.
func New(name string, options ...topdown.Option) (*topdown.Parser, error) {
	switch name {
	case "sentence":
		return NewSentenceParser(options...)
	case "arithmetic":
		return NewArithmeticParser(options...)
	}
	return nil, fmt.Errorf("unknown grammar %q", name)
}

package lexer

import (
	"fmt"
	"sort"
)

// Symbol identifies a grammar vocabulary element.
//
// Terminal kinds are produced by a Definition; nonterminal kinds only appear in grammars.
type Symbol string

const (
	// EOS is the symbol of the cursor once the input is exhausted.
	EOS Symbol = "EOS"
	// ErrorSymbol marks a failed parse.
	ErrorSymbol Symbol = "ERROR"
)

// Sentinel returns true if s is one of the reserved symbols EOS or ErrorSymbol.
func (s Symbol) Sentinel() bool {
	return s == EOS || s == ErrorSymbol
}

func (s Symbol) String() string {
	return string(s)
}

// Definition is a fixed lexicon mapping input units to terminal symbols.
type Definition interface {
	// Symbols returns the terminal symbols this definition can produce, sorted by name.
	Symbols() []Symbol
	// Split breaks normalised input into units (eg. words or characters).
	Split(input string) []string
	// Classify returns the terminal symbol of a unit, or false if the unit is not in the lexicon.
	Classify(unit string) (Symbol, bool)
	// Lexemes returns every unit classified as sym, sorted.
	Lexemes(sym Symbol) []string
}

// A Token is a classified input unit.
type Token struct {
	Symbol Symbol
	Value  string
	// Pos is the index of the unit in the split input.
	Pos int
}

// EOF returns true if this Token is the end of input.
func (t Token) EOF() bool {
	return t.Symbol == EOS
}

func (t Token) String() string {
	if t.EOF() {
		return "<EOS>"
	}
	return fmt.Sprintf("(%s %s)", t.Symbol, t.Value)
}

func (t Token) GoString() string {
	return fmt.Sprintf("Token@%d{%s, %q}", t.Pos, t.Symbol, t.Value)
}

// Cursor is a position in a Stream: the current token and the unit index at which scanning resumes.
//
// Cursors are values. Advancing a cursor returns a new one and never affects copies held elsewhere,
// which is what lets a parser retry alternatives from the same starting point.
type Cursor struct {
	Token
	Next int
}

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%s", c.Pos, c.Token)
}

// Must takes the result of a Definition constructor call and returns the definition, but panics if
// it errors.
//
// eg.
//
//	lex = lexer.Must(lexer.Words(map[lexer.Symbol][]string{"N": {"cat"}}))
func Must[D Definition](def D, err error) D {
	if err != nil {
		panic(err)
	}
	return def
}

func sortedSymbols(table map[Symbol][]string) []Symbol {
	out := make([]Symbol, 0, len(table))
	for sym := range table {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

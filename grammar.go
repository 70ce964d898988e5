package topdown

import (
	"fmt"
	"strings"

	"github.com/topdown-go/topdown/lexer"
)

// A Production is one ordered right-hand side of a grammar rule.
type Production []lexer.Symbol

func (p Production) String() string {
	out := make([]string, len(p))
	for i, sym := range p {
		out[i] = string(sym)
	}
	return strings.Join(out, " ")
}

// Grammar maps nonterminal symbols to their ordered alternative productions.
//
// A symbol without alternatives is a terminal and is matched directly against the token stream.
// Alternatives are tried in the order they were declared. A Grammar is immutable.
type Grammar struct {
	start        lexer.Symbol
	rules        map[lexer.Symbol][]Production
	nonterminals []lexer.Symbol
	terminals    []lexer.Symbol
}

// GrammarBuilder accumulates rules for a Grammar.
//
//	g, err := topdown.NewGrammarBuilder("S").
//		Rule("S", "NP", "VP").
//		Rule("NP", "ART", "N").
//		Rule("NP", "ART", "ADJ", "N").
//		Grammar()
type GrammarBuilder struct {
	start lexer.Symbol
	rules map[lexer.Symbol][]Production
	order []lexer.Symbol
	err   error
}

// NewGrammarBuilder starts a grammar with the given start symbol.
func NewGrammarBuilder(start lexer.Symbol) *GrammarBuilder {
	return &GrammarBuilder{
		start: start,
		rules: map[lexer.Symbol][]Production{},
	}
}

// Rule appends an alternative for lhs. Alternatives are tried in the order they are added.
func (b *GrammarBuilder) Rule(lhs lexer.Symbol, rhs ...lexer.Symbol) *GrammarBuilder {
	if b.err != nil {
		return b
	}
	if lhs == "" || lhs.Sentinel() {
		b.err = fmt.Errorf("invalid rule symbol %q", lhs)
		return b
	}
	if len(rhs) == 0 {
		b.err = fmt.Errorf("%s: empty productions are not supported", lhs)
		return b
	}
	for _, sym := range rhs {
		if sym == "" || sym.Sentinel() {
			b.err = fmt.Errorf("%s: invalid symbol %q in production", lhs, sym)
			return b
		}
	}
	if _, ok := b.rules[lhs]; !ok {
		b.order = append(b.order, lhs)
	}
	b.rules[lhs] = append(b.rules[lhs], append(Production(nil), rhs...))
	return b
}

// Grammar validates the accumulated rules and returns the Grammar.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if _, ok := b.rules[b.start]; !ok {
		return nil, fmt.Errorf("no rules for start symbol %s", b.start)
	}
	g := &Grammar{
		start:        b.start,
		rules:        make(map[lexer.Symbol][]Production, len(b.rules)),
		nonterminals: append([]lexer.Symbol(nil), b.order...),
	}
	seen := map[lexer.Symbol]bool{}
	for _, lhs := range b.order {
		for _, prod := range b.rules[lhs] {
			g.rules[lhs] = append(g.rules[lhs], append(Production(nil), prod...))
			for _, sym := range prod {
				if _, nonterminal := b.rules[sym]; !nonterminal && !seen[sym] {
					seen[sym] = true
					g.terminals = append(g.terminals, sym)
				}
			}
		}
	}
	if err := validate(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Must panics if err is non-nil, otherwise returns g.
func Must(g *Grammar, err error) *Grammar {
	if err != nil {
		panic(err)
	}
	return g
}

// Start returns the start symbol.
func (g *Grammar) Start() lexer.Symbol {
	return g.start
}

// IsTerminal returns true if sym has no productions.
func (g *Grammar) IsTerminal(sym lexer.Symbol) bool {
	_, ok := g.rules[sym]
	return !ok
}

// Alternatives returns a copy of the ordered productions of sym, or nil if sym is a terminal.
func (g *Grammar) Alternatives(sym lexer.Symbol) []Production {
	alternatives := g.rules[sym]
	if alternatives == nil {
		return nil
	}
	out := make([]Production, len(alternatives))
	for i, prod := range alternatives {
		out[i] = append(Production(nil), prod...)
	}
	return out
}

func (g *Grammar) alternatives(sym lexer.Symbol) []Production {
	return g.rules[sym]
}

// Nonterminals returns the nonterminal symbols in declaration order.
func (g *Grammar) Nonterminals() []lexer.Symbol {
	return append([]lexer.Symbol(nil), g.nonterminals...)
}

// Terminals returns the terminal symbols in order of first appearance.
func (g *Grammar) Terminals() []lexer.Symbol {
	return append([]lexer.Symbol(nil), g.terminals...)
}

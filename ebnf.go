package topdown

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"

	"github.com/topdown-go/topdown/lexer"
)

// String returns the EBNF for the grammar, one rule per line in declaration order.
func (g *Grammar) String() string {
	out := make([]string, 0, len(g.nonterminals))
	for _, sym := range g.nonterminals {
		out = append(out, g.rule(sym))
	}
	return strings.Join(out, "\n")
}

func (g *Grammar) rule(sym lexer.Symbol) string {
	alternatives := make([]string, 0, len(g.rules[sym]))
	for _, prod := range g.rules[sym] {
		alternatives = append(alternatives, prod.String())
	}
	return fmt.Sprintf("%s = %s .", sym, strings.Join(alternatives, " | "))
}

// Verify checks that every symbol of the grammar is either a nonterminal or a terminal of the
// lexicon, and that every nonterminal is reachable from the start symbol.
//
// Terminals become productions of their lexemes, and the combined grammar is checked with
// golang.org/x/exp/ebnf.
func (g *Grammar) Verify(def lexer.Definition) error {
	names := map[string]lexer.Symbol{}
	name := func(sym lexer.Symbol) (string, error) {
		// Lower case names are lexical productions in EBNF, which may not refer to
		// non-lexical ones, so every name is forced to start with an upper case letter.
		r, size := utf8.DecodeRuneInString(string(sym))
		n := string(unicode.ToUpper(r)) + string(sym)[size:]
		if prev, ok := names[n]; ok && prev != sym {
			return "", fmt.Errorf("symbols %s and %s can not be distinguished", prev, sym)
		}
		names[n] = sym
		return n, nil
	}
	grammar := ebnf.Grammar{}
	for _, sym := range g.nonterminals {
		lhs, err := name(sym)
		if err != nil {
			return err
		}
		alternatives := ebnf.Alternative{}
		for _, prod := range g.rules[sym] {
			seq := ebnf.Sequence{}
			for _, s := range prod {
				n, err := name(s)
				if err != nil {
					return err
				}
				seq = append(seq, &ebnf.Name{String: n})
			}
			alternatives = append(alternatives, seq)
		}
		grammar[lhs] = &ebnf.Production{Name: &ebnf.Name{String: lhs}, Expr: alternatives}
	}
	for _, sym := range g.terminals {
		lexemes := def.Lexemes(sym)
		if len(lexemes) == 0 {
			// Left undefined so that Verify reports it.
			continue
		}
		lhs, err := name(sym)
		if err != nil {
			return err
		}
		alternatives := ebnf.Alternative{}
		for _, lexeme := range lexemes {
			alternatives = append(alternatives, &ebnf.Token{String: lexeme})
		}
		grammar[lhs] = &ebnf.Production{Name: &ebnf.Name{String: lhs}, Expr: alternatives}
	}
	start, err := name(g.start)
	if err != nil {
		return err
	}
	if err := ebnf.Verify(grammar, start); err != nil {
		return fmt.Errorf("grammar does not match lexicon: %w", err)
	}
	return nil
}

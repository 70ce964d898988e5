package lexer

import (
	"sort"
	"strings"
)

// WordDefinition is a lexicon of whitespace-delimited words.
type WordDefinition struct {
	words   map[string]Symbol
	symbols []Symbol
	lexemes map[Symbol][]string
}

var _ Definition = &WordDefinition{}

// Words builds a word lexicon from a table of terminal symbol to the words it covers.
//
// Words are normalised with Normalise. A word may only belong to one symbol, and the reserved
// symbols EOS and ErrorSymbol may not be used.
func Words(table map[Symbol][]string) (*WordDefinition, error) {
	d := &WordDefinition{
		words:   map[string]Symbol{},
		lexemes: map[Symbol][]string{},
	}
	for _, sym := range sortedSymbols(table) {
		if sym.Sentinel() || sym == "" {
			return nil, Errorf("", "invalid terminal symbol %q", sym)
		}
		for _, word := range table[sym] {
			word = Normalise(strings.TrimSpace(word))
			if word == "" || strings.ContainsAny(word, " \t\r\n") {
				return nil, Errorf(word, "words must be non-empty and contain no whitespace")
			}
			if prev, ok := d.words[word]; ok && prev != sym {
				return nil, Errorf(word, "word is both %s and %s", prev, sym)
			}
			if _, ok := d.words[word]; ok {
				continue
			}
			d.words[word] = sym
			d.lexemes[sym] = append(d.lexemes[sym], word)
		}
		if len(d.lexemes[sym]) == 0 {
			return nil, Errorf("", "terminal symbol %s has no words", sym)
		}
		sort.Strings(d.lexemes[sym])
		d.symbols = append(d.symbols, sym)
	}
	return d, nil
}

func (d *WordDefinition) Symbols() []Symbol {
	return append([]Symbol(nil), d.symbols...)
}

func (d *WordDefinition) Split(input string) []string {
	return strings.Fields(input)
}

func (d *WordDefinition) Classify(unit string) (Symbol, bool) {
	sym, ok := d.words[unit]
	return sym, ok
}

func (d *WordDefinition) Lexemes(sym Symbol) []string {
	return append([]string(nil), d.lexemes[sym]...)
}

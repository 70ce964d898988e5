package lexer

import (
	"sort"
	"unicode"
)

// CharDefinition is a lexicon of character classes. Every character of the input is a unit.
type CharDefinition struct {
	chars   map[rune]Symbol
	symbols []Symbol
	lexemes map[Symbol][]string
}

var _ Definition = &CharDefinition{}

// Chars builds a character-class lexicon from a table of terminal symbol to the characters in its
// class, eg. {"NUM": "0123456789", "PLUS": "+"}.
func Chars(table map[Symbol]string) (*CharDefinition, error) {
	d := &CharDefinition{
		chars:   map[rune]Symbol{},
		lexemes: map[Symbol][]string{},
	}
	syms := make([]Symbol, 0, len(table))
	for sym := range table {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	for _, sym := range syms {
		if sym.Sentinel() || sym == "" {
			return nil, Errorf("", "invalid terminal symbol %q", sym)
		}
		for _, r := range Normalise(table[sym]) {
			if unicode.IsSpace(r) {
				return nil, Errorf(string(r), "whitespace can not be a character class member")
			}
			if prev, ok := d.chars[r]; ok {
				if prev != sym {
					return nil, Errorf(string(r), "character is both %s and %s", prev, sym)
				}
				continue
			}
			d.chars[r] = sym
			d.lexemes[sym] = append(d.lexemes[sym], string(r))
		}
		if len(d.lexemes[sym]) == 0 {
			return nil, Errorf("", "terminal symbol %s has no characters", sym)
		}
		sort.Strings(d.lexemes[sym])
		d.symbols = append(d.symbols, sym)
	}
	return d, nil
}

func (d *CharDefinition) Symbols() []Symbol {
	return append([]Symbol(nil), d.symbols...)
}

func (d *CharDefinition) Split(input string) []string {
	out := make([]string, 0, len(input))
	for _, r := range input {
		out = append(out, string(r))
	}
	return out
}

func (d *CharDefinition) Classify(unit string) (Symbol, bool) {
	runes := []rune(unit)
	if len(runes) != 1 {
		return "", false
	}
	sym, ok := d.chars[runes[0]]
	return sym, ok
}

func (d *CharDefinition) Lexemes(sym Symbol) []string {
	return append([]string(nil), d.lexemes[sym]...)
}

package lexer

import (
	"strings"
	"unicode"
)

type mapperDef struct {
	Definition
	f MapFunc
}

// MapFunc transforms units before they are classified.
//
// If "" is returned the unit is discarded.
type MapFunc func(unit string) string

// Map is a Definition that applies a mapping function to each unit of another Definition's input.
func Map(def Definition, f MapFunc) Definition {
	return &mapperDef{def, f}
}

func (m *mapperDef) Split(input string) []string {
	units := m.Definition.Split(input)
	out := units[:0:0]
	for _, unit := range units {
		if unit = m.f(unit); unit != "" {
			out = append(out, unit)
		}
	}
	return out
}

// TrimPunctuation is a MapFunc that strips leading and trailing punctuation, so that "pen." lexes
// as "pen".
func TrimPunctuation(unit string) string {
	return strings.TrimFunc(unit, unicode.IsPunct)
}

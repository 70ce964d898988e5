package lexer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Stream is lexed input: the normalised units of an input string together with the Definition
// used to classify them.
//
// A Stream is immutable. All progress through it is carried by Cursor values.
type Stream struct {
	def   Definition
	units []string
}

// Lex case-normalises input and splits it into units with def.
func Lex(def Definition, input string) *Stream {
	return &Stream{
		def:   def,
		units: def.Split(Normalise(input)),
	}
}

// Normalise lower-cases input.
func Normalise(input string) string {
	return cases.Lower(language.Und).String(input)
}

// Units returns a copy of the split input, including units not in the lexicon.
func (s *Stream) Units() []string {
	return append([]string(nil), s.units...)
}

// Start returns a cursor at the first recognised token.
func (s *Stream) Start() Cursor {
	return s.Scan(Cursor{})
}

// Scan returns a cursor at the first recognised token at or after c.Next.
//
// Units that are not in the lexicon are skipped. Once the input is exhausted the returned cursor
// has Symbol EOS and Pos equal to the number of units.
func (s *Stream) Scan(c Cursor) Cursor {
	for i := c.Next; i < len(s.units); i++ {
		if sym, ok := s.def.Classify(s.units[i]); ok {
			return Cursor{
				Token: Token{Symbol: sym, Value: s.units[i], Pos: i},
				Next:  i + 1,
			}
		}
	}
	return Cursor{
		Token: Token{Symbol: EOS, Pos: len(s.units)},
		Next:  len(s.units),
	}
}

// Tokens returns every recognised token, excluding the terminating EOS.
func (s *Stream) Tokens() []Token {
	tokens := []Token{}
	for c := s.Start(); !c.EOF(); c = s.Scan(c) {
		tokens = append(tokens, c.Token)
	}
	return tokens
}

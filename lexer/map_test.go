package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	def := Must(Words(map[Symbol][]string{"N": {"cat", "pen"}, "V": {"catch"}}))

	// Strip plurals and drop noise words.
	mapper := Map(def, func(unit string) string {
		if unit == "ignored" {
			return ""
		}
		return strings.TrimSuffix(unit, "s")
	})

	s := Lex(mapper, "Cats ignored catch pens")
	require.Equal(t, []string{"cat", "catch", "pen"}, s.Units())
	expected := []Token{
		{Symbol: "N", Value: "cat", Pos: 0},
		{Symbol: "V", Value: "catch", Pos: 1},
		{Symbol: "N", Value: "pen", Pos: 2},
	}
	require.Equal(t, expected, s.Tokens())
}

func TestTrimPunctuation(t *testing.T) {
	def := Map(Must(Words(map[Symbol][]string{"N": {"pen"}, "ART": {"a"}})), TrimPunctuation)
	s := Lex(def, `"a pen."`)
	require.Equal(t, []Token{
		{Symbol: "ART", Value: "a", Pos: 0},
		{Symbol: "N", Value: "pen", Pos: 1},
	}, s.Tokens())
	require.Equal(t, "", TrimPunctuation("..."))
}

func TestMapPreservesLexicon(t *testing.T) {
	def := Must(Words(map[Symbol][]string{"N": {"cat"}}))
	mapper := Map(def, TrimPunctuation)
	require.Equal(t, def.Symbols(), mapper.Symbols())
	require.Equal(t, []string{"cat"}, mapper.Lexemes("N"))
	sym, ok := mapper.Classify("cat")
	require.True(t, ok)
	require.Equal(t, Symbol("N"), sym)
}

package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	def, err := Words(map[Symbol][]string{
		"N":   {"pen", "Cat", "cat"},
		"ART": {"the", "a"},
	})
	require.NoError(t, err)
	require.Equal(t, []Symbol{"ART", "N"}, def.Symbols())
	require.Equal(t, []string{"a", "the"}, def.Lexemes("ART"))
	require.Equal(t, []string{"cat", "pen"}, def.Lexemes("N"))
	require.Empty(t, def.Lexemes("V"))
	require.Equal(t, []string{"the", "cat"}, def.Split(" the \t cat\n"))

	sym, ok := def.Classify("cat")
	require.True(t, ok)
	require.Equal(t, Symbol("N"), sym)
	_, ok = def.Classify("dog")
	require.False(t, ok)
}

func TestWordsErrors(t *testing.T) {
	tests := []struct {
		name  string
		table map[Symbol][]string
		err   string
	}{
		{name: "Conflict",
			table: map[Symbol][]string{"N": {"catch"}, "V": {"catch"}},
			err:   `"catch": word is both N and V`},
		{name: "Sentinel",
			table: map[Symbol][]string{EOS: {"end"}},
			err:   `invalid terminal symbol "EOS"`},
		{name: "ErrorSentinel",
			table: map[Symbol][]string{ErrorSymbol: {"oops"}},
			err:   `invalid terminal symbol "ERROR"`},
		{name: "Empty",
			table: map[Symbol][]string{"N": {}},
			err:   `terminal symbol N has no words`},
		{name: "Whitespace",
			table: map[Symbol][]string{"N": {"big cat"}},
			err:   `"big cat": words must be non-empty and contain no whitespace`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Words(test.table)
			require.EqualError(t, err, test.err)
		})
	}
}

func TestMustPanics(t *testing.T) {
	require.Panics(t, func() {
		Must(Words(map[Symbol][]string{"N": {"x"}, "V": {"x"}}))
	})
}

func TestWordsErrorIsLexerError(t *testing.T) {
	_, err := Words(map[Symbol][]string{"N": {"cat"}, ErrorSymbol: {"oops"}})
	var lerr *Error
	require.True(t, errors.As(err, &lerr))
	require.Equal(t, `invalid terminal symbol "ERROR"`, lerr.Message)
	require.True(t, ErrorSymbol.Sentinel())
}

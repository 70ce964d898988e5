package topdown_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/topdown-go/topdown"
	"github.com/topdown-go/topdown/grammars"
	"github.com/topdown-go/topdown/lexer"
)

func TestEBNF(t *testing.T) {
	require.Equal(t, `S = NP VP .
NP = ART N | ART ADJ N .
VP = V NP | V .`, grammars.SentenceGrammar().String())
	require.Equal(t, `E = T PLUS E | T .
T = F MULT T | F .
F = NUM | OPEN E CLOSE .`, grammars.ArithmeticGrammar().String())
}

func TestVerify(t *testing.T) {
	require.NoError(t, grammars.SentenceGrammar().Verify(grammars.SentenceLexicon()))
	require.NoError(t, grammars.ArithmeticGrammar().Verify(grammars.ArithmeticLexicon()))
}

func TestVerifyMissingTerminal(t *testing.T) {
	g := topdown.Must(topdown.NewGrammarBuilder("S").
		Rule("S", "N", "ADV").
		Grammar())
	lex := lexer.Must(lexer.Words(map[lexer.Symbol][]string{"N": {"cat"}}))
	err := g.Verify(lex)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing production ADV")

	_, err = topdown.New(g, lex)
	require.Error(t, err)
}

func TestVerifyUnreachable(t *testing.T) {
	g := topdown.Must(topdown.NewGrammarBuilder("S").
		Rule("S", "N").
		Rule("X", "N").
		Grammar())
	lex := lexer.Must(lexer.Words(map[lexer.Symbol][]string{"N": {"cat"}}))
	err := g.Verify(lex)
	require.Error(t, err)
	require.Contains(t, err.Error(), "X is unreachable")
}

func TestVerifyLowerCaseSymbols(t *testing.T) {
	g := topdown.Must(topdown.NewGrammarBuilder("sentence").
		Rule("sentence", "noun", "Verb").
		Grammar())
	lex := lexer.Must(lexer.Words(map[lexer.Symbol][]string{
		"noun": {"cat"},
		"Verb": {"sleeps"},
	}))
	require.NoError(t, g.Verify(lex))
}

func TestVerifyIndistinguishableSymbols(t *testing.T) {
	g := topdown.Must(topdown.NewGrammarBuilder("S").
		Rule("S", "noun", "Noun").
		Grammar())
	lex := lexer.Must(lexer.Words(map[lexer.Symbol][]string{
		"noun": {"cat"},
		"Noun": {"dog"},
	}))
	require.EqualError(t, g.Verify(lex), "symbols noun and Noun can not be distinguished")
}

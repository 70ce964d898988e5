package topdown_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/topdown-go/topdown"
	"github.com/topdown-go/topdown/grammars"
	"github.com/topdown-go/topdown/lexer"
)

func TestGrammarAccessors(t *testing.T) {
	g := grammars.SentenceGrammar()
	require.Equal(t, lexer.Symbol("S"), g.Start())
	require.Equal(t, []lexer.Symbol{"S", "NP", "VP"}, g.Nonterminals())
	require.Equal(t, []lexer.Symbol{"ART", "N", "ADJ", "V"}, g.Terminals())
	require.True(t, g.IsTerminal("ART"))
	require.True(t, g.IsTerminal("UNKNOWN"))
	require.False(t, g.IsTerminal("NP"))
	require.Equal(t, []topdown.Production{{"ART", "N"}, {"ART", "ADJ", "N"}}, g.Alternatives("NP"))
	require.Nil(t, g.Alternatives("ART"))
}

func TestGrammarIsImmutable(t *testing.T) {
	g := grammars.SentenceGrammar()
	alternatives := g.Alternatives("NP")
	alternatives[0][0] = "V"
	alternatives[1] = nil
	require.Equal(t, []topdown.Production{{"ART", "N"}, {"ART", "ADJ", "N"}}, g.Alternatives("NP"))

	nonterminals := g.Nonterminals()
	nonterminals[0] = "X"
	require.Equal(t, lexer.Symbol("S"), g.Nonterminals()[0])
}

func TestGrammarBuilderCopiesRules(t *testing.T) {
	b := topdown.NewGrammarBuilder("S").Rule("S", "A")
	g, err := b.Grammar()
	require.NoError(t, err)
	b.Rule("S", "B")
	require.Equal(t, []topdown.Production{{"A"}}, g.Alternatives("S"))
}

func TestGrammarBuilderErrors(t *testing.T) {
	tests := []struct {
		name    string
		builder *topdown.GrammarBuilder
		err     string
	}{
		{"MissingStart", topdown.NewGrammarBuilder("S").Rule("NP", "ART"), "no rules for start symbol S"},
		{"EmptyProduction", topdown.NewGrammarBuilder("S").Rule("S"), "S: empty productions are not supported"},
		{"SentinelLHS", topdown.NewGrammarBuilder("S").Rule("EOS", "A"), `invalid rule symbol "EOS"`},
		{"SentinelRHS", topdown.NewGrammarBuilder("S").Rule("S", "A", "ERROR"), `S: invalid symbol "ERROR" in production`},
		{"EmptySymbol", topdown.NewGrammarBuilder("S").Rule("S", ""), `S: invalid symbol "" in production`},
		{"FirstErrorWins", topdown.NewGrammarBuilder("S").Rule("S").Rule("EOS", "A"), "S: empty productions are not supported"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.builder.Grammar()
			require.EqualError(t, err, test.err)
		})
	}
}

func TestMustPanics(t *testing.T) {
	require.Panics(t, func() {
		topdown.Must(topdown.NewGrammarBuilder("S").Grammar())
	})
}

func TestProductionString(t *testing.T) {
	require.Equal(t, "ART ADJ N", topdown.Production{"ART", "ADJ", "N"}.String())
}

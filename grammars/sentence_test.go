package grammars_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/topdown-go/topdown"
	"github.com/topdown-go/topdown/grammars"
	"github.com/topdown-go/topdown/lexer"
)

func TestSentenceLexicon(t *testing.T) {
	lex := grammars.SentenceLexicon()
	assert.Equal(t, []lexer.Symbol{"ADJ", "ART", "N", "V"}, lex.Symbols())
	assert.Equal(t, []string{"a", "the"}, lex.Lexemes(grammars.ART))
	assert.Equal(t, []string{"the", "dog"}, lex.Split("the, dog."))
}

func TestSentence(t *testing.T) {
	parser, err := grammars.NewSentenceParser()
	assert.NoError(t, err)
	tree, err := parser.Parse("The boy beats the ugly dog.")
	assert.NoError(t, err)
	assert.Equal(t, "(S (NP (ART the) (N boy)) (VP (V beats) (NP (ART the) (ADJ ugly) (N dog))))", tree.String())
}

func TestNew(t *testing.T) {
	for _, name := range grammars.Names {
		parser, err := grammars.New(name)
		assert.NoError(t, err)
		assert.True(t, parser != nil)
	}
	_, err := grammars.New("lisp")
	assert.EqualError(t, err, `unknown grammar "lisp"`)
	_, err = grammars.New("sentence", topdown.UseStrategy(topdown.Strategy(-1)))
	assert.Error(t, err)
}

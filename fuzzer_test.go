package topdown_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/repr"

	"github.com/topdown-go/topdown"
	"github.com/topdown-go/topdown/grammars"
	"github.com/topdown-go/topdown/lexer"
)

// derive a random sentence of sym, preferring the shortest production once deep enough.
func derive(r *rand.Rand, g *topdown.Grammar, lex lexer.Definition, sym lexer.Symbol, depth int) []string {
	alternatives := g.Alternatives(sym)
	if alternatives == nil {
		lexemes := lex.Lexemes(sym)
		return []string{lexemes[r.Intn(len(lexemes))]}
	}
	prod := alternatives[r.Intn(len(alternatives))]
	if depth > 6 {
		for _, alternative := range alternatives {
			if len(alternative) < len(prod) {
				prod = alternative
			}
		}
	}
	var out []string
	for _, child := range prod {
		out = append(out, derive(r, g, lex, child, depth+1)...)
	}
	return out
}

func doFuzzTest(t *testing.T, newParser func(options ...topdown.Option) (*topdown.Parser, error)) {
	t.Helper()
	recursive, err := newParser()
	assert.NoError(t, err)
	worklist, err := newParser(topdown.UseStrategy(topdown.Worklist))
	assert.NoError(t, err)

	r := rand.New(rand.NewSource(0))
	for i := 0; i < 50; i++ {
		units := derive(r, recursive.Grammar(), recursive.Lexer(), recursive.Grammar().Start(), 0)
		input := strings.Join(units, " ")

		tree, err := recursive.Parse(input)
		if err != nil {
			t.Fatalf("error parsing %q: %s", input, err)
		}
		assert.Equal(t, units, topdown.Lexemes(tree), input)

		again, err := recursive.Parse(input)
		assert.NoError(t, err)
		assert.Equal(t, tree, again, input)

		other, err := worklist.Parse(input)
		assert.NoError(t, err)
		assert.Equal(t, topdown.Pretty(tree), topdown.Pretty(other), repr.String(other))
	}
}

func TestFuzz_Sentence(t *testing.T) {
	doFuzzTest(t, grammars.NewSentenceParser)
}

func TestFuzz_Arithmetic(t *testing.T) {
	doFuzzTest(t, grammars.NewArithmeticParser)
}

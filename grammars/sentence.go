package grammars

import (
	"github.com/topdown-go/topdown"
	"github.com/topdown-go/topdown/lexer"
)

// Symbols of the sentence grammar.
const (
	S   lexer.Symbol = "S"
	NP  lexer.Symbol = "NP"
	VP  lexer.Symbol = "VP"
	ART lexer.Symbol = "ART"
	N   lexer.Symbol = "N"
	V   lexer.Symbol = "V"
	ADJ lexer.Symbol = "ADJ"
)

// SentenceGrammar returns
//
//	S  = NP VP .
//	NP = ART N | ART ADJ N .
//	VP = V NP | V .
func SentenceGrammar() *topdown.Grammar {
	return topdown.Must(topdown.NewGrammarBuilder(S).
		Rule(S, NP, VP).
		Rule(NP, ART, N).
		Rule(NP, ART, ADJ, N).
		Rule(VP, V, NP).
		Rule(VP, V).
		Grammar())
}

// SentenceLexicon returns the word lexicon of the sentence grammar. Surrounding punctuation is
// stripped from words, so "pen." is a noun.
func SentenceLexicon() lexer.Definition {
	return lexer.Map(lexer.Must(lexer.Words(map[lexer.Symbol][]string{
		ART: {"the", "a"},
		N:   {"cat", "dog", "boy", "pen"},
		V:   {"catch", "receive", "beats"},
		ADJ: {"ugly", "beautiful"},
	})), lexer.TrimPunctuation)
}

// NewSentenceParser creates a parser for the sentence grammar.
func NewSentenceParser(options ...topdown.Option) (*topdown.Parser, error) {
	return topdown.New(SentenceGrammar(), SentenceLexicon(), options...)
}

// Package topdown parses sentences of ambiguous context-free grammars by top-down recursive
// descent with ordered-choice backtracking.
//
// A grammar maps each nonterminal to an ordered list of productions. Symbols without productions
// are terminals, produced by a lexer.Definition. To expand a nonterminal the parser tries its
// productions in the order they were declared, each from the same starting cursor, and the first
// derivation that consumes the whole input wins.
//
// Here's the grammar of a small English fragment:
//
//	S  = NP VP .
//	NP = ART N | ART ADJ N .
//	VP = V NP | V .
//
// Built with the GrammarBuilder and a word lexicon:
//
//	g := topdown.Must(topdown.NewGrammarBuilder("S").
//		Rule("S", "NP", "VP").
//		Rule("NP", "ART", "N").
//		Rule("NP", "ART", "ADJ", "N").
//		Rule("VP", "V", "NP").
//		Rule("VP", "V").
//		Grammar())
//	lex := lexer.Must(lexer.Words(map[lexer.Symbol][]string{
//		"ART": {"the", "a"},
//		"N":   {"cat", "dog", "boy", "pen"},
//		"V":   {"catch", "receive", "beats"},
//		"ADJ": {"ugly", "beautiful"},
//	}))
//	parser := topdown.MustNew(g, lex)
//	tree, err := parser.Parse("a cat catch the pen")
//
// On success tree prints as:
//
//	(S (NP (ART a) (N cat)) (VP (V catch) (NP (ART the) (N pen))))
//
// Left-recursive grammars are rejected when they are built.
package topdown

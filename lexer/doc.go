// Package lexer defines the fixed lexicons used by topdown parsers and the Stream and Cursor types
// the parse engine moves through.
//
// The primary interface is Definition. There are two implementations: Words, which classifies
// whitespace-delimited words, and Chars, which classifies single characters. Units missing from a
// lexicon are skipped when scanning, never reported.
package lexer

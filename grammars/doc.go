// Package grammars contains ready-made grammars and lexicons: a fragment of English over words and
// integer arithmetic over characters.
package grammars

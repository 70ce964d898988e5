package topdown

import (
	"io"

	"github.com/topdown-go/topdown/lexer"
)

// Context for a single parse.
type parseContext struct {
	*lexer.Stream
	grammar  *Grammar
	truncate bool
	trace    io.Writer
}

func newParseContext(p *Parser, stream *lexer.Stream) *parseContext {
	return &parseContext{
		Stream:   stream,
		grammar:  p.grammar,
		truncate: p.truncate,
		trace:    p.trace,
	}
}

// truncates returns true if the production being matched may stop before symbol i.
func (ctx *parseContext) truncates(i int, c lexer.Cursor) bool {
	return ctx.truncate && i > 0 && c.EOF()
}

// acceptFunc receives each successful expansion in ordered-choice order. Returning an error rejects
// the expansion and resumes the search.
type acceptFunc func(n Node, next lexer.Cursor) error

type engine interface {
	expand(ctx *parseContext, c lexer.Cursor, sym lexer.Symbol, accept acceptFunc) error
}

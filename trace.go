package topdown

import (
	"fmt"
	"strings"

	"github.com/topdown-go/topdown/lexer"
)

const traceIndent = 2

func (ctx *parseContext) traceExpand(depth int, sym lexer.Symbol, c lexer.Cursor) {
	if ctx.trace == nil {
		return
	}
	fmt.Fprintf(ctx.trace, "%s%s @%d %s\n", strings.Repeat(" ", depth*traceIndent), sym, c.Pos, c.Token)
}

func (ctx *parseContext) traceAlternative(depth int, sym lexer.Symbol, i int, prod Production) {
	if ctx.trace == nil {
		return
	}
	fmt.Fprintf(ctx.trace, "%s%s#%d = %s\n", strings.Repeat(" ", (depth+1)*traceIndent), sym, i+1, prod)
}

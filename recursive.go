package topdown

import "github.com/topdown-go/topdown/lexer"

// recursive expands symbols by direct recursion, passing each successful expansion to a
// continuation. A failing continuation makes the enclosing nonterminal try its next alternative from
// the same cursor, so a parse succeeds if any derivation consumes the whole input.
type recursive struct{}

func (r recursive) expand(ctx *parseContext, c lexer.Cursor, sym lexer.Symbol, accept acceptFunc) error {
	return r.symbol(ctx, c, sym, 0, accept)
}

func (r recursive) symbol(ctx *parseContext, c lexer.Cursor, sym lexer.Symbol, depth int, accept acceptFunc) error {
	ctx.traceExpand(depth, sym, c)
	alternatives := ctx.grammar.alternatives(sym)
	if alternatives == nil {
		if c.Symbol != sym {
			return mismatch(sym, c)
		}
		return accept(&Atom{Symbol: sym, Lexeme: c.Value}, ctx.Scan(c))
	}
	snapshot := c
	var best error
	for i, prod := range alternatives {
		ctx.traceAlternative(depth, sym, i, prod)
		err := r.sequence(ctx, snapshot, prod, 0, nil, depth+1, func(children []Node, next lexer.Cursor) error {
			return accept(&Compound{Symbol: sym, Children: children}, next)
		})
		if err == nil {
			return nil
		}
		if further(err, best) {
			best = err
		}
	}
	return exhausted(sym, snapshot, best)
}

// sequence matches prod[i:] from c, having already matched children for prod[:i].
func (r recursive) sequence(
	ctx *parseContext, c lexer.Cursor, prod Production, i int, children []Node, depth int,
	done func(children []Node, next lexer.Cursor) error,
) error {
	if i == len(prod) || ctx.truncates(i, c) {
		return done(children, c)
	}
	return r.symbol(ctx, c, prod[i], depth, func(n Node, next lexer.Cursor) error {
		// Full slice expression so sibling derivations never share a backing array.
		return r.sequence(ctx, next, prod, i+1, append(children[:i:i], n), depth, done)
	})
}

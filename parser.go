package topdown

import (
	"errors"
	"fmt"
	"io"

	"github.com/tliron/commonlog"

	"github.com/topdown-go/topdown/lexer"
)

// A Parser recognises sentences of a Grammar over the tokens of a lexicon.
//
// A Parser holds no per-parse state and is safe for concurrent use.
type Parser struct {
	grammar  *Grammar
	lex      lexer.Definition
	strategy Strategy
	truncate bool
	trace    io.Writer
	log      commonlog.Logger
}

// Result of expanding a single symbol.
type Result struct {
	// Node is the expansion's tree, or the error marker if OK is false.
	Node Node
	OK   bool
	// ReachedEnd is true if the input was exhausted after a successful expansion.
	ReachedEnd bool
	// Cursor after the expansion, or the starting cursor if OK is false.
	Cursor lexer.Cursor
	Err    error
}

// New creates a Parser for the grammar over the lexicon.
//
// The grammar is verified against the lexicon: every terminal must have lexemes and every
// nonterminal must be reachable from the start symbol.
func New(g *Grammar, def lexer.Definition, options ...Option) (*Parser, error) {
	if g == nil {
		return nil, errors.New("nil grammar")
	}
	if def == nil {
		return nil, errors.New("nil lexer definition")
	}
	p := &Parser{
		grammar:  g,
		lex:      def,
		strategy: Recursive,
	}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	if p.log == nil {
		p.log = commonlog.GetLogger("topdown")
	}
	if err := g.Verify(def); err != nil {
		return nil, err
	}
	return p, nil
}

// MustNew calls New and panics on error.
func MustNew(g *Grammar, def lexer.Definition, options ...Option) *Parser {
	p, err := New(g, def, options...)
	if err != nil {
		panic(err)
	}
	return p
}

// Grammar returns the Parser's grammar.
func (p *Parser) Grammar() *Grammar { return p.grammar }

// Lexer returns the Parser's lexicon.
func (p *Parser) Lexer() lexer.Definition { return p.lex }

// Lex input with the Parser's lexicon.
func (p *Parser) Lex(input string) *lexer.Stream {
	return lexer.Lex(p.lex, input)
}

// Parse input from the start symbol.
//
// The parse succeeds only if the derivation consumes every recognised token. On failure the error
// marker is returned along with an *Error.
func (p *Parser) Parse(input string) (Node, error) {
	return p.ParseStream(p.Lex(input))
}

// ParseStream parses lexed input from the start symbol.
func (p *Parser) ParseStream(stream *lexer.Stream) (Node, error) {
	ctx := newParseContext(p, stream)
	start := p.grammar.start
	var (
		tree     Node
		trailing *Error
	)
	err := p.engine().expand(ctx, stream.Start(), start, func(n Node, next lexer.Cursor) error {
		if next.EOF() {
			tree = n
			return nil
		}
		rejected := &Error{Reason: TrailingInput, Symbol: start, Found: next.Symbol, Pos: next.Pos}
		if trailing == nil {
			trailing = rejected
		}
		return rejected
	})
	if err != nil {
		if trailing != nil {
			err = trailing
		}
		p.log.Debugf("parse failed with %s strategy: %s", p.strategy, err)
		return ErrorNode(), err
	}
	p.log.Debugf("parsed %s with %s strategy", Pretty(tree), p.strategy)
	return tree, nil
}

// Expand sym from the cursor c of a stream, returning the first successful expansion.
//
// Unlike Parse, Expand does not require the input to be exhausted afterwards.
func (p *Parser) Expand(stream *lexer.Stream, c lexer.Cursor, sym lexer.Symbol) Result {
	ctx := newParseContext(p, stream)
	var result Result
	err := p.engine().expand(ctx, c, sym, func(n Node, next lexer.Cursor) error {
		result = Result{Node: n, OK: true, ReachedEnd: next.EOF(), Cursor: next}
		return nil
	})
	if err != nil {
		return Result{Node: ErrorNode(), Cursor: c, Err: err}
	}
	return result
}

func (p *Parser) engine() engine {
	switch p.strategy {
	case Recursive:
		return recursive{}
	case Worklist:
		return worklist{}
	}
	panic(fmt.Sprintf("unsupported strategy %s", p.strategy))
}

package topdown

import "github.com/topdown-go/topdown/lexer"

// Node is a parse tree node.
//
// The set of node kinds is closed: every Node is either an *Atom or a *Compound.
type Node interface {
	// Kind returns the grammar symbol the node was built for.
	Kind() lexer.Symbol
	String() string
	node()
}

// Atom is a leaf holding a matched terminal.
type Atom struct {
	Symbol lexer.Symbol
	Lexeme string
}

// Compound is built when one of a nonterminal's productions matches.
//
// Children are in production order, one per matched symbol.
type Compound struct {
	Symbol   lexer.Symbol
	Children []Node
}

var (
	_ Node = &Atom{}
	_ Node = &Compound{}
)

func (a *Atom) Kind() lexer.Symbol { return a.Symbol }
func (a *Atom) String() string     { return Pretty(a) }
func (*Atom) node()                {}

func (c *Compound) Kind() lexer.Symbol { return c.Symbol }
func (c *Compound) String() string     { return Pretty(c) }
func (*Compound) node()                {}

// ErrorNode returns the marker returned in place of a tree when a parse fails.
func ErrorNode() *Atom {
	return &Atom{Symbol: lexer.ErrorSymbol, Lexeme: "error"}
}

// IsError returns true if n is the marker returned by a failed parse.
func IsError(n Node) bool {
	a, ok := n.(*Atom)
	return ok && a.Symbol == lexer.ErrorSymbol
}

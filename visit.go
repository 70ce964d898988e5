package topdown

import "fmt"

// Visitor is called for every node of a tree. Calling next visits the node's children.
type Visitor func(n Node, next func() error) error

// Visit walks the tree rooted at n depth first, left to right.
func Visit(n Node, visitor Visitor) error {
	return visitor(n, func() error {
		switch n := n.(type) {
		case *Compound:
			for _, child := range n.Children {
				if err := Visit(child, visitor); err != nil {
					return err
				}
			}

		case *Atom:

		default:
			panic(fmt.Sprintf("unsupported node %T", n))
		}
		return nil
	})
}

// Lexemes returns the matched lexemes of the tree in input order. The error marker has none.
func Lexemes(n Node) []string {
	var out []string
	_ = Visit(n, func(n Node, next func() error) error {
		if a, ok := n.(*Atom); ok && !IsError(a) {
			out = append(out, a.Lexeme)
		}
		return next()
	})
	return out
}

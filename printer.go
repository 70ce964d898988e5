package topdown

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Pretty renders a tree in its compact bracketed form.
//
//	(S (NP (ART the) (N dog)) (VP (V cried)))
func Pretty(n Node) string {
	w := &strings.Builder{}
	pretty(w, n)
	return w.String()
}

func pretty(w *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Atom:
		fmt.Fprintf(w, "(%s %s)", n.Symbol, n.Lexeme)

	case *Compound:
		fmt.Fprintf(w, "(%s", n.Symbol)
		for _, child := range n.Children {
			w.WriteByte(' ')
			pretty(w, child)
		}
		w.WriteByte(')')

	default:
		panic(fmt.Sprintf("unsupported node %T", n))
	}
}

// Tree is a labelled view of a parse tree, suitable for display.
type Tree struct {
	Label    string
	Children []*Tree
}

// Render builds the display tree for n. Atoms are labelled with their bracketed form and
// compounds with their symbol.
func Render(n Node) *Tree {
	switch n := n.(type) {
	case *Atom:
		return &Tree{Label: Pretty(n)}

	case *Compound:
		t := &Tree{Label: string(n.Symbol)}
		for _, child := range n.Children {
			t.Children = append(t.Children, Render(child))
		}
		return t

	default:
		panic(fmt.Sprintf("unsupported node %T", n))
	}
}

// String draws the tree with box-drawing characters.
func (t *Tree) String() string {
	root := treeprint.NewWithRoot(t.Label)
	t.add(root)
	return root.String()
}

func (t *Tree) add(branch treeprint.Tree) {
	for _, child := range t.Children {
		if len(child.Children) == 0 {
			branch.AddNode(child.Label)
			continue
		}
		child.add(branch.AddBranch(child.Label))
	}
}

package grammars

import (
	"fmt"
	"strconv"

	"github.com/topdown-go/topdown"
)

// Eval computes the value of a tree produced by the arithmetic grammar.
func Eval(n topdown.Node) (int, error) {
	switch n := n.(type) {
	case *topdown.Atom:
		if n.Symbol != NUM {
			return 0, fmt.Errorf("can't evaluate %s", n)
		}
		return strconv.Atoi(n.Lexeme)

	case *topdown.Compound:
		switch {
		case n.Symbol == F && len(n.Children) == 3:
			// OPEN E CLOSE
			return Eval(n.Children[1])

		case (n.Symbol == E || n.Symbol == T) && len(n.Children) == 3:
			lhs, err := Eval(n.Children[0])
			if err != nil {
				return 0, err
			}
			rhs, err := Eval(n.Children[2])
			if err != nil {
				return 0, err
			}
			if n.Symbol == E {
				return lhs + rhs, nil
			}
			return lhs * rhs, nil

		case (n.Symbol == E || n.Symbol == T || n.Symbol == F) && len(n.Children) == 1:
			return Eval(n.Children[0])
		}
		return 0, fmt.Errorf("can't evaluate %s", n)
	}
	return 0, fmt.Errorf("unsupported node %T", n)
}

package topdown

import (
	"fmt"
	"strings"

	"github.com/topdown-go/topdown/lexer"
)

// Perform some post-construction validation. This currently does:
//
// Checks for left recursion, which would send the engine into unbounded recursion.
func validate(g *Grammar) error {
	const (
		unvisited = iota
		active
		done
	)
	state := map[lexer.Symbol]int{}
	var path []lexer.Symbol
	var visit func(sym lexer.Symbol) []lexer.Symbol
	visit = func(sym lexer.Symbol) []lexer.Symbol {
		state[sym] = active
		path = append(path, sym)
		for _, prod := range g.rules[sym] {
			left := prod[0]
			if g.IsTerminal(left) {
				continue
			}
			switch state[left] {
			case active:
				for i, s := range path {
					if s == left {
						return append([]lexer.Symbol(nil), path[i:]...)
					}
				}
			case unvisited:
				if cycle := visit(left); cycle != nil {
					return cycle
				}
			}
		}
		path = path[:len(path)-1]
		state[sym] = done
		return nil
	}
	for _, sym := range g.nonterminals {
		if state[sym] != unvisited {
			continue
		}
		if cycle := visit(sym); cycle != nil {
			lines := make([]string, len(cycle))
			for i, s := range cycle {
				lines[i] = "  " + g.rule(s)
			}
			return fmt.Errorf("left recursion detected on\n\n%s", strings.Join(lines, "\n"))
		}
	}
	return nil
}

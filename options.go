package topdown

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"
)

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Strategy selects how the Parser explores alternatives.
type Strategy int

const (
	// Recursive expands symbols by direct recursion.
	Recursive Strategy = iota
	// Worklist expands symbols with an explicit stack of pending states, so deep derivations do not
	// grow the goroutine stack.
	Worklist
)

var strategyNames = map[Strategy]string{
	Recursive: "recursive",
	Worklist:  "worklist",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy returns the Strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

// UseStrategy selects the expansion strategy. Both strategies produce identical results.
func UseStrategy(s Strategy) Option {
	return func(p *Parser) error {
		if _, ok := strategyNames[s]; !ok {
			return fmt.Errorf("unknown strategy %s", s)
		}
		p.strategy = s
		return nil
	}
}

// TruncateAtEnd stops a production early, successfully, once the input is exhausted after at least
// one of its symbols has matched.
//
// With this option "the dog" is accepted by a grammar requiring a verb phrase after the noun phrase.
func TruncateAtEnd() Option {
	return func(p *Parser) error {
		p.truncate = true
		return nil
	}
}

// Trace the parse to "w".
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}

// Logger sets the logger for parse outcomes.
func Logger(log commonlog.Logger) Option {
	return func(p *Parser) error {
		p.log = log
		return nil
	}
}

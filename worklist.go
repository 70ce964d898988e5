package topdown

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/topdown-go/topdown/lexer"
)

// worklist explores the same derivations as recursive, in the same order, using an explicit stack
// of states in place of the goroutine stack.
//
// Each state holds the symbols still to be matched, the cursor and the derivation steps taken so
// far. Both lists are persistent and shared between states. Alternatives are pushed in reverse so
// that the first declared is popped first.
//
// A failure is reported as the nonterminals open at the failure that got furthest, each wrapping
// the next, which is the chain the recursive engine unwinds through.
type worklist struct{}

type pending struct {
	sym   lexer.Symbol
	depth int
	// index of sym within its production, and the production's length.
	index, size int
	next        *pending
}

type stepKind int

const (
	stepAtom stepKind = iota
	stepChoice
	stepTruncate
)

// A step of a derivation, most recent first.
type step struct {
	kind   stepKind
	sym    lexer.Symbol
	lexeme string
	alt    int
	// Cursor a choice was made at.
	entry lexer.Cursor
	prev  *step
}

type state struct {
	pending *pending
	cursor  lexer.Cursor
	steps   *step
	// Set on states that begin an alternative, for tracing.
	choice *step
	depth  int
}

func (w worklist) expand(ctx *parseContext, c lexer.Cursor, sym lexer.Symbol, accept acceptFunc) error {
	stack := arraystack.New()
	stack.Push(&state{pending: &pending{sym: sym, size: 1}, cursor: c})
	var (
		failure error
		failed  *step
	)
	fail := func(err error, steps *step) {
		if further(err, failure) {
			failure, failed = err, steps
		}
	}
	for !stack.Empty() {
		v, _ := stack.Pop()
		st := v.(*state)
		if st.choice != nil {
			ctx.traceAlternative(st.depth, st.choice.sym, st.choice.alt, ctx.grammar.alternatives(st.choice.sym)[st.choice.alt])
		}
		if st.pending == nil {
			err := accept(w.rebuild(ctx.grammar, sym, st.steps), st.cursor)
			if err == nil {
				return nil
			}
			fail(err, st.steps)
			continue
		}
		head := st.pending
		if ctx.truncates(head.index, st.cursor) {
			rest := head
			for i := head.index; i < head.size; i++ {
				rest = rest.next
			}
			stack.Push(&state{
				pending: rest,
				cursor:  st.cursor,
				steps:   &step{kind: stepTruncate, prev: st.steps},
			})
			continue
		}
		ctx.traceExpand(head.depth, head.sym, st.cursor)
		alternatives := ctx.grammar.alternatives(head.sym)
		if alternatives == nil {
			if st.cursor.Symbol != head.sym {
				fail(mismatch(head.sym, st.cursor), st.steps)
				continue
			}
			stack.Push(&state{
				pending: head.next,
				cursor:  ctx.Scan(st.cursor),
				steps:   &step{kind: stepAtom, sym: head.sym, lexeme: st.cursor.Value, prev: st.steps},
			})
			continue
		}
		for i := len(alternatives) - 1; i >= 0; i-- {
			prod := alternatives[i]
			rest := head.next
			for j := len(prod) - 1; j >= 0; j-- {
				rest = &pending{sym: prod[j], depth: head.depth + 1, index: j, size: len(prod), next: rest}
			}
			choice := &step{kind: stepChoice, sym: head.sym, alt: i, entry: st.cursor, prev: st.steps}
			stack.Push(&state{
				pending: rest,
				cursor:  st.cursor,
				steps:   choice,
				choice:  choice,
				depth:   head.depth,
			})
		}
	}
	return w.unwind(failure, failed)
}

// unwind wraps err in the nonterminals chosen along steps, innermost first.
func (w worklist) unwind(err error, steps *step) error {
	for s := steps; s != nil; s = s.prev {
		if s.kind == stepChoice {
			err = exhausted(s.sym, s.entry, err)
		}
	}
	return err
}

// rebuild replays a completed derivation into a tree rooted at sym.
func (w worklist) rebuild(g *Grammar, sym lexer.Symbol, last *step) Node {
	var steps []*step
	for s := last; s != nil; s = s.prev {
		steps = append(steps, s)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	var build func(sym lexer.Symbol) Node
	build = func(sym lexer.Symbol) Node {
		s := steps[0]
		steps = steps[1:]
		if s.kind == stepAtom {
			return &Atom{Symbol: sym, Lexeme: s.lexeme}
		}
		prod := g.alternatives(sym)[s.alt]
		children := make([]Node, 0, len(prod))
		for _, child := range prod {
			if len(steps) > 0 && steps[0].kind == stepTruncate {
				steps = steps[1:]
				break
			}
			children = append(children, build(child))
		}
		return &Compound{Symbol: sym, Children: children}
	}
	return build(sym)
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/topdown-go/topdown"
	"github.com/topdown-go/topdown/grammars"
)

type parseCmd struct {
	Grammar  string   `short:"g" enum:"sentence,arithmetic" default:"sentence" help:"Grammar to parse with (${enum})."`
	Strategy string   `short:"s" enum:"recursive,worklist" default:"recursive" help:"Expansion strategy (${enum})."`
	Truncate bool     `help:"Accept productions cut short by the end of input."`
	Trace    bool     `help:"Trace expansions to stderr."`
	Dump     bool     `help:"Dump the parse tree as Go values."`
	Eval     bool     `help:"Print the value of arithmetic expressions."`
	Input    []string `arg:"" optional:"" help:"Input to parse, read line by line from stdin if omitted."`
}

func (c *parseCmd) Help() string {
	return `
Parses each input with a built-in grammar and prints the bracketed tree and its
rendering. Failed parses print (ERROR error) and the reason to stderr.
`
}

func (c *parseCmd) Run() error {
	strategy, err := topdown.ParseStrategy(c.Strategy)
	if err != nil {
		return err
	}
	options := []topdown.Option{topdown.UseStrategy(strategy)}
	if c.Truncate {
		options = append(options, topdown.TruncateAtEnd())
	}
	if c.Trace {
		options = append(options, topdown.Trace(os.Stderr))
	}
	parser, err := grammars.New(c.Grammar, options...)
	if err != nil {
		return err
	}
	inputs := []string{strings.Join(c.Input, " ")}
	if len(c.Input) == 0 {
		if inputs, err = readLines(os.Stdin); err != nil {
			return err
		}
	}
	failed := 0
	for _, input := range inputs {
		if !c.parse(parser, input) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed to parse", failed, len(inputs))
	}
	return nil
}

func (c *parseCmd) parse(parser *topdown.Parser, input string) bool {
	tree, err := parser.Parse(input)
	fmt.Println(topdown.Pretty(tree))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%q: %s\n", input, err)
		return false
	}
	fmt.Print(topdown.Render(tree))
	if c.Dump {
		repr.Println(tree, repr.Indent("  "), repr.OmitEmpty(true))
	}
	if c.Eval {
		value, err := grammars.Eval(tree)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%q: %s\n", input, err)
			return false
		}
		fmt.Println(value)
	}
	return true
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

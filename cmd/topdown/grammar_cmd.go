package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/topdown-go/topdown/grammars"
)

type grammarCmd struct {
	Name string `arg:"" optional:"" enum:"sentence,arithmetic" default:"sentence" help:"Grammar to print (${enum})."`
}

func (c *grammarCmd) Run() error {
	// Construction verifies the grammar against its lexicon.
	parser, err := grammars.New(c.Name)
	if err != nil {
		return err
	}
	fmt.Println(parser.Grammar())
	for _, sym := range parser.Grammar().Terminals() {
		lexemes := parser.Lexer().Lexemes(sym)
		for i, lexeme := range lexemes {
			lexemes[i] = strconv.Quote(lexeme)
		}
		fmt.Printf("%s = %s .\n", sym, strings.Join(lexemes, " | "))
	}
	return nil
}

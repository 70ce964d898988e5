// Package main is a command-line harness for the built-in grammars.
package main

import (
	"github.com/alecthomas/kong"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	version = "dev"
	cli     struct {
		Version kong.VersionFlag
		Verbose int `short:"v" type:"counter" help:"Increase log verbosity."`

		Parse   parseCmd   `cmd:"" help:"Parse input with a built-in grammar."`
		Grammar grammarCmd `cmd:"" help:"Print and verify a built-in grammar."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Top-down backtracking parser for ambiguous grammars.`),
		kong.Vars{"version": version},
	)
	commonlog.Configure(cli.Verbose, nil)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}

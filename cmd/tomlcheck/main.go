package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/toml/cmds"
	"github.com/reusee/toml/debugs"
	"github.com/reusee/toml/lex"
	"github.com/reusee/toml/logs"
	"github.com/reusee/toml/modes"
	"github.com/reusee/toml/nets"
	"github.com/reusee/toml/tomlconfigs"
	"golang.org/x/term"
)

var (
	dumpFlag = cmds.Switch("-dump")
	treeFlag = cmds.Switch("-tree")
	tapFlag  = cmds.Switch("-tap")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		client nets.HTTPClient,
		maxErrors tomlconfigs.MaxErrors,
		format tomlconfigs.OutputFormat,
		tap debugs.Tap,
	) {

		names := inputs
		if len(names) == 0 {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				cmds.GlobalExecutor.PrintUsage()
				os.Exit(0)
			}
			names = []string{"-"}
		}

		failed := 0
		for _, name := range names {
			docCtx, _ := newSpan(ctx, "")

			text, err := readDocument(client, name)
			ce(err)

			symbols, err := lex.Scan(text)
			if err != nil {
				failed++
				logger.ErrorContext(docCtx, "invalid document",
					"name", name,
					"error", logs.WrapSpan(docCtx, err),
				)
				reportFailure(name, text, err)
				if failed >= int(maxErrors) {
					break
				}
				continue
			}
			logger.InfoContext(docCtx, "ok",
				"name", name,
				"symbols", len(symbols),
			)

			if *dumpFlag {
				ce(dumpSymbols(format, text, symbols))
			}
			if *treeFlag {
				ce(dumpTree(format, text, symbols))
			}
			if *tapFlag {
				tap(docCtx, name, debugs.SymbolGlobals(text, symbols))
			}
		}

		if failed > 0 {
			os.Exit(1)
		}
	})

}

func reportFailure(name string, text string, err error) {
	pos := lex.Offset(err)
	fmt.Fprintf(os.Stderr, "%s:%s: %v\n", name, lex.Locate(text, pos), err)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprint(os.Stderr, lex.Annotate(text, pos))
	}
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/dscope"
	"github.com/reusee/toml/cmds"
	"github.com/reusee/toml/lex"
	"github.com/reusee/toml/modes"
	"github.com/reusee/toml/tomlconfigs"
	"github.com/reusee/toml/trees"
)

var treeFlag = cmds.Switch("-tree")

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		historyFile tomlconfigs.HistoryFile,
	) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      "toml> ",
			HistoryFile: string(historyFile),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		defer rl.Close()

		var block []string
		for {
			line, err := rl.Readline()
			if err != nil { // Ctrl-C or Ctrl-D
				break
			}

			// a lone """ opens or closes a multi-line document
			if strings.TrimSpace(line) == `"""` {
				if block == nil {
					block = []string{}
					rl.SetPrompt("  ... ")
					continue
				}
				text := strings.Join(block, "\n") + "\n"
				block = nil
				rl.SetPrompt("toml> ")
				run(text)
				continue
			}
			if block != nil {
				block = append(block, line)
				continue
			}
			if line == "" {
				continue
			}
			run(line)
		}
	})

}

func run(text string) {
	symbols, err := lex.Scan(text)
	if err != nil {
		pos := lex.Offset(err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", lex.Locate(text, pos), err)
		fmt.Fprint(os.Stderr, lex.Annotate(text, pos))
		return
	}

	if *treeFlag {
		tree, err := trees.Build(text, symbols)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		fmt.Print(trees.Render(tree))
		return
	}

	for _, sym := range symbols {
		if sym.IsPayload() {
			fmt.Printf("%6d\t%s\t%q\n", sym.Position(), sym.Sym, sym.Span.Of(text))
		} else {
			fmt.Printf("%6d\t%s\n", sym.Position(), sym.Sym)
		}
	}
}

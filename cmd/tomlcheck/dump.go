package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/reusee/toml/lex"
	"github.com/reusee/toml/tomlconfigs"
	"github.com/reusee/toml/trees"
)

func dumpSymbols(format tomlconfigs.OutputFormat, text string, symbols []lex.Symbol) error {
	if format == tomlconfigs.FormatJSON {
		type entry struct {
			Kind    string `json:"kind"`
			Lo      int    `json:"lo"`
			Hi      int    `json:"hi"`
			Payload string `json:"payload,omitempty"`
		}
		entries := make([]entry, 0, len(symbols))
		for _, sym := range symbols {
			e := entry{
				Kind: sym.Sym.String(),
				Lo:   sym.Span.Lo,
				Hi:   sym.Span.Hi,
			}
			if sym.IsPayload() {
				e.Payload = sym.Span.Of(text)
			}
			entries = append(entries, e)
		}
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(entries)
	}

	for _, sym := range symbols {
		if sym.IsPayload() {
			fmt.Printf("%6d\t%s\t%q\n", sym.Position(), sym.Sym, sym.Span.Of(text))
		} else {
			fmt.Printf("%6d\t%s\n", sym.Position(), sym.Sym)
		}
	}
	return nil
}

func dumpTree(format tomlconfigs.OutputFormat, text string, symbols []lex.Symbol) error {
	tree, err := trees.Build(text, symbols)
	if err != nil {
		return wrap(err)
	}
	if format == tomlconfigs.FormatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	}
	fmt.Print(trees.Render(tree))
	return nil
}

package debugs

import (
	"github.com/reusee/toml/lex"
)

// SymbolGlobals binds a scanned document for tap inspection: the raw text,
// the symbol list, and helpers resolving symbols back to the text.
func SymbolGlobals(text string, symbols []lex.Symbol) map[string]any {
	return map[string]any{
		"text":    text,
		"symbols": symbols,

		"kind": func(i int) string {
			return symbols[i].Sym.String()
		},
		"payload": func(i int) string {
			return symbols[i].Span.Of(text)
		},
		"at": func(offset int) string {
			return lex.Locate(text, offset).String()
		},
	}
}

// Package trees materializes a scanned symbol stream into nested maps,
// slices, and scalar values. The scanner leaves escape processing and value
// range checks to this layer; structural validation beyond paths, such as
// duplicate key detection, stays out of scope and the last assignment wins.
package trees

import (
	"strings"

	"github.com/reusee/toml/lex"
)

// Parse scans text and builds its tree in one step.
func Parse(text string) (map[string]any, error) {
	symbols, err := lex.Scan(text)
	if err != nil {
		return nil, err
	}
	return Build(text, symbols)
}

// Build walks a symbol stream produced from text and returns the document
// root.
func Build(text string, symbols []lex.Symbol) (map[string]any, error) {
	b := &builder{
		text:    text,
		symbols: symbols,
	}
	root := make(map[string]any)
	current := root

	for {
		switch sym := b.head(); sym.Sym {

		case lex.SymEOF:
			return root, nil

		case lex.SymTable:
			b.pos++
			path, err := b.path(lex.SymTableEnd)
			if err != nil {
				return nil, err
			}
			current = defineTable(root, path)

		case lex.SymArrayOfTable:
			b.pos++
			path, err := b.path(lex.SymTableEnd)
			if err != nil {
				return nil, err
			}
			current = appendTable(root, path)

		case lex.SymKey, lex.SymString:
			path, err := b.path(lex.SymAssign)
			if err != nil {
				return nil, err
			}
			value, err := b.value()
			if err != nil {
				return nil, err
			}
			assign(current, path, value)

		default:
			// the scanner never emits anything else at statement level
			panic("unreachable: " + sym.Sym.String())
		}
	}
}

type builder struct {
	text    string
	symbols []lex.Symbol
	pos     int
}

func (b *builder) head() lex.Symbol {
	return b.symbols[b.pos]
}

// path collects key segments up to the given end marker and consumes it.
func (b *builder) path(end lex.Sym) ([]string, error) {
	var segments []string
	for {
		sym := b.head()
		b.pos++
		switch sym.Sym {
		case end:
			return segments, nil
		case lex.SymKey:
			segments = append(segments, sym.Span.Of(b.text))
		case lex.SymString:
			segment, err := b.decodeString(sym.Span)
			if err != nil {
				return nil, err
			}
			segments = append(segments, segment)
		default:
			panic("unreachable: " + sym.Sym.String())
		}
	}
}

func (b *builder) value() (any, error) {
	sym := b.head()
	b.pos++
	raw := sym.Span.Of(b.text)

	switch sym.Sym {

	case lex.SymString:
		return b.decodeString(sym.Span)

	case lex.SymInteger:
		return parseInteger(raw, sym.Span.Lo)

	case lex.SymFloat:
		return parseFloat(raw, sym.Span.Lo)

	case lex.SymBool:
		return raw == "true", nil

	case lex.SymDateTime:
		return parseDateTime(raw, sym.Span.Lo)

	case lex.SymArray:
		values := []any{}
		for b.head().Sym != lex.SymArrayEnd {
			value, err := b.value()
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
		b.pos++
		return values, nil

	case lex.SymInlineTable:
		table := make(map[string]any)
		for b.head().Sym != lex.SymInlineTableEnd {
			path, err := b.path(lex.SymAssign)
			if err != nil {
				return nil, err
			}
			value, err := b.value()
			if err != nil {
				return nil, err
			}
			assign(table, path, value)
		}
		b.pos++
		return table, nil

	default:
		panic("unreachable: " + sym.Sym.String())
	}
}

// decodeString turns a string payload span into its value. The quote byte
// before the span tells literal from basic, and the two bytes before that
// tell single-line from multiline.
func (b *builder) decodeString(span lex.Span) (string, error) {
	body := span.Of(b.text)
	quote := b.text[span.Lo-1]
	multiline := span.Lo >= 3 &&
		b.text[span.Lo-2] == quote && b.text[span.Lo-3] == quote

	base := span.Lo
	if multiline {
		trimmed := trimLeadingBreak(body)
		base += len(body) - len(trimmed)
		body = trimmed
	}

	if quote == '\'' {
		return body, nil
	}
	return unescapeBasic(body, base, multiline)
}

// descend resolves one step of a table path, creating a table when the key
// is absent or holds a non-table. Array-of-table values resolve to their
// last element.
func descend(table map[string]any, key string) map[string]any {
	switch existing := table[key].(type) {
	case map[string]any:
		return existing
	case []any:
		if len(existing) > 0 {
			if last, ok := existing[len(existing)-1].(map[string]any); ok {
				return last
			}
		}
	}
	created := make(map[string]any)
	table[key] = created
	return created
}

func defineTable(root map[string]any, path []string) map[string]any {
	current := root
	for _, key := range path {
		current = descend(current, key)
	}
	return current
}

func appendTable(root map[string]any, path []string) map[string]any {
	current := root
	for _, key := range path[:len(path)-1] {
		current = descend(current, key)
	}

	last := path[len(path)-1]
	entry := make(map[string]any)
	if existing, ok := current[last].([]any); ok {
		current[last] = append(existing, entry)
	} else {
		current[last] = []any{entry}
	}
	return entry
}

// assign writes value at a dotted path under table, creating intermediate
// tables.
func assign(table map[string]any, path []string, value any) {
	for _, key := range path[:len(path)-1] {
		table = descend(table, key)
	}
	table[path[len(path)-1]] = value
}

// Render formats a tree the way tomlcheck prints it: sorted keys, one
// scalar per line. Defined here so the REPL and the checker agree.
func Render(tree map[string]any) string {
	var sb strings.Builder
	renderInto(&sb, tree, "")
	return sb.String()
}

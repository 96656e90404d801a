package lex

// Span is a half-open byte range [Lo, Hi) into the scanned text.
type Span struct {
	Lo int
	Hi int
}

func (s Span) Len() int {
	return s.Hi - s.Lo
}

// Of returns the bytes the span covers in text.
func (s Span) Of(text string) string {
	return text[s.Lo:s.Hi]
}

// Sym classifies a symbol.
type Sym uint8

const (
	SymEOF Sym = iota
	SymTable
	SymArrayOfTable
	SymTableEnd
	SymInlineTable
	SymInlineTableEnd
	SymArray
	SymArrayEnd
	SymAssign
	SymKey
	SymString
	SymInteger
	SymFloat
	SymBool
	SymDateTime
)

var symNames = [...]string{
	SymEOF:            "EOF",
	SymTable:          "Table",
	SymArrayOfTable:   "ArrayOfTable",
	SymTableEnd:       "TableEnd",
	SymInlineTable:    "InlineTable",
	SymInlineTableEnd: "InlineTableEnd",
	SymArray:          "Array",
	SymArrayEnd:       "ArrayEnd",
	SymAssign:         "Assign",
	SymKey:            "Key",
	SymString:         "String",
	SymInteger:        "Integer",
	SymFloat:          "Float",
	SymBool:           "Bool",
	SymDateTime:       "DateTime",
}

func (s Sym) String() string {
	if int(s) < len(symNames) {
		return symNames[s]
	}
	return "Sym?"
}

// Symbol is one classified, span-tagged unit of lexical output.
// Marker symbols (brackets, Assign, the structural begin/end pairs, EOF)
// carry a zero-width span at the triggering byte. Payload symbols carry the
// span of the literal content only, with quotes and punctuation excluded.
type Symbol struct {
	Sym  Sym
	Span Span
}

// Marker returns a zero-width symbol at pos.
func Marker(s Sym, pos int) Symbol {
	return Symbol{
		Sym:  s,
		Span: Span{Lo: pos, Hi: pos},
	}
}

// Spanned returns a payload symbol covering [lo, hi).
func Spanned(s Sym, lo int, hi int) Symbol {
	return Symbol{
		Sym:  s,
		Span: Span{Lo: lo, Hi: hi},
	}
}

// Position is the byte offset the symbol was emitted at.
func (s Symbol) Position() int {
	return s.Span.Lo
}

// IsPayload reports whether the symbol's span covers literal content.
func (s Symbol) IsPayload() bool {
	switch s.Sym {
	case SymKey, SymString, SymInteger, SymFloat, SymBool, SymDateTime:
		return true
	}
	return false
}

package lex

import "testing"

func TestLiteralStrings(t *testing.T) {
	expectSymbols(t, "a = ''", []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Spanned(SymString, 5, 5),
		Marker(SymEOF, 6),
	})
	expectSymbols(t, `a = 'C:\Users\nodejs'`, []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Spanned(SymString, 5, 20),
		Marker(SymEOF, 21),
	})
}

func TestLiteralStringsFail(t *testing.T) {
	expectError(t, "a = 'oops", UnterminatedStringError{Start: 5, Pos: 5})
	expectError(t, "a = 'oops\nb = 'fine'", UnterminatedStringError{Start: 5, Pos: 10})
}

func TestMultilineLiteralStrings(t *testing.T) {
	expectSymbols(t, "a = '''hello\nworld'''", []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Spanned(SymString, 7, 18),
		Marker(SymEOF, 21),
	})
	expectSymbols(t, "a = ''''''", []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Spanned(SymString, 7, 7),
		Marker(SymEOF, 10),
	})
	// content may end in up to two quote characters
	expectSymbols(t, "a = '''ab''''", []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Spanned(SymString, 7, 10),
		Marker(SymEOF, 13),
	})
	expectSymbols(t, "a = '''ab'''''", []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Spanned(SymString, 7, 11),
		Marker(SymEOF, 14),
	})
}

func TestMultilineLiteralStringsFail(t *testing.T) {
	expectError(t, "a = '''ab''''''", TooManyQuotesError{Start: 7, Pos: 14})
	expectError(t, "a = '''oops", UnterminatedStringError{Start: 7, Pos: 11})
}

func TestBasicStrings(t *testing.T) {
	expectSymbols(t, `a = ""`, []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Spanned(SymString, 5, 5),
		Marker(SymEOF, 6),
	})
	// the escaped quote must not terminate the string; the escape payload is
	// carried through raw
	expectSymbols(t, `a = "he\"llo"`, []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Spanned(SymString, 5, 12),
		Marker(SymEOF, 13),
	})
	// an even backslash run before the quote leaves it unescaped
	expectSymbols(t, `a = "ab\\"`, []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Spanned(SymString, 5, 9),
		Marker(SymEOF, 10),
	})
}

func TestBasicStringsFail(t *testing.T) {
	expectError(t, `a = "oops`, UnterminatedStringError{Start: 5, Pos: 9})
	expectError(t, "a = \"oops\nb = 1", UnterminatedStringError{Start: 5, Pos: 9})
}

func TestMultilineBasicStrings(t *testing.T) {
	expectSymbols(t, "a = \"\"\"hello\nworld\"\"\"", []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Spanned(SymString, 7, 18),
		Marker(SymEOF, 21),
	})
	expectSymbols(t, `a = """"""`, []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Spanned(SymString, 7, 7),
		Marker(SymEOF, 10),
	})
	// escaped quotes inside the body do not advance the closing run
	expectSymbols(t, `a = """a\"""b"""`, []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Spanned(SymString, 7, 13),
		Marker(SymEOF, 16),
	})
}

// A body ending in 1 or 2 quotes before the closing delimiter keeps those
// quotes as content; 3 or more extra quotes fail the scan.
func TestMultilineBasicQuoteBoundary(t *testing.T) {
	expectSymbols(t, `a = """ab""""`, []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Spanned(SymString, 7, 10),
		Marker(SymEOF, 13),
	})
	expectSymbols(t, `a = """ab"""""`, []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Spanned(SymString, 7, 11),
		Marker(SymEOF, 14),
	})
	expectError(t, `a = """ab""""""`, TooManyQuotesError{Start: 7, Pos: 15})
}

func TestMultilineBasicStringsFail(t *testing.T) {
	expectError(t, `a = """oops`, UnterminatedStringError{Start: 7, Pos: 11})
	expectError(t, "a = \"\"\"oops\nstill open", UnterminatedStringError{Start: 7, Pos: 22})
}

package lex

import (
	"testing"
)

func expectSymbols(t *testing.T, input string, expected []Symbol) {
	t.Helper()
	symbols, err := Scan(input)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	max := len(symbols)
	if len(expected) > max {
		max = len(expected)
	}
	for i := 0; i < max; i++ {
		var got, want *Symbol
		if i < len(symbols) {
			got = &symbols[i]
		}
		if i < len(expected) {
			want = &expected[i]
		}
		if got == nil || want == nil || *got != *want {
			t.Errorf("symbol %d: expected %+v, got %+v", i, want, got)
		}
	}
}

func expectError(t *testing.T, input string, expected error) {
	t.Helper()
	_, err := Scan(input)
	if err == nil {
		t.Fatalf("expected error %v, got success", expected)
	}
	if err != expected {
		t.Fatalf("expected error %v, got %v", expected, err)
	}
}

func TestBasic(t *testing.T) {
	expectSymbols(t, "", []Symbol{
		Marker(SymEOF, 0),
	})
	expectSymbols(t, "hello = 'world'", []Symbol{
		Spanned(SymKey, 0, 5),
		Marker(SymAssign, 6),
		Spanned(SymString, 9, 14),
		Marker(SymEOF, 15),
	})
	expectSymbols(t, "hello = 'world' # zing bing bang", []Symbol{
		Spanned(SymKey, 0, 5),
		Marker(SymAssign, 6),
		Spanned(SymString, 9, 14),
		Marker(SymEOF, 32),
	})
	expectSymbols(t, "hello = true", []Symbol{
		Spanned(SymKey, 0, 5),
		Marker(SymAssign, 6),
		Spanned(SymBool, 8, 12),
		Marker(SymEOF, 12),
	})
	expectSymbols(t, "hello = false", []Symbol{
		Spanned(SymKey, 0, 5),
		Marker(SymAssign, 6),
		Spanned(SymBool, 8, 13),
		Marker(SymEOF, 13),
	})
}

func TestBasicFail(t *testing.T) {
	expectError(t, "=", UnexpectedError{Pos: 0})
	expectError(t, "\x00", UnconsumedInputError{Pos: 0})
	expectError(t, "\x00abc", UnconsumedInputError{Pos: 0})
}

func TestComments(t *testing.T) {
	expectSymbols(t, "# Hello,\n# World!", []Symbol{
		Marker(SymEOF, 17),
	})
	expectSymbols(t, "# Hello,\r\n# World!", []Symbol{
		Marker(SymEOF, 18),
	})
}

func TestCommentsFail(t *testing.T) {
	expectError(t, "# He\x01llo,\n# World", ControlCharacterError{Pos: 4})
	expectError(t, "# He\rllo,\r\n# World!", ControlCharacterError{Pos: 4})
}

func TestTables(t *testing.T) {
	expectSymbols(t, "[test-1]", []Symbol{
		Marker(SymTable, 1),
		Spanned(SymKey, 1, 7),
		Marker(SymTableEnd, 8),
		Marker(SymEOF, 8),
	})
	expectSymbols(t, "[hello.world]", []Symbol{
		Marker(SymTable, 1),
		Spanned(SymKey, 1, 6),
		Spanned(SymKey, 7, 12),
		Marker(SymTableEnd, 13),
		Marker(SymEOF, 13),
	})
	expectSymbols(t, `[hello."zing bing bang"]`, []Symbol{
		Marker(SymTable, 1),
		Spanned(SymKey, 1, 6),
		Spanned(SymString, 8, 22),
		Marker(SymTableEnd, 24),
		Marker(SymEOF, 24),
	})
	expectSymbols(t, `[ j . "zing" . 'l' ]`, []Symbol{
		Marker(SymTable, 1),
		Spanned(SymKey, 2, 3),
		Spanned(SymString, 7, 11),
		Spanned(SymString, 16, 17),
		Marker(SymTableEnd, 20),
		Marker(SymEOF, 20),
	})
	expectSymbols(t, "[[fruits]]", []Symbol{
		Marker(SymArrayOfTable, 2),
		Spanned(SymKey, 2, 8),
		Marker(SymTableEnd, 10),
		Marker(SymEOF, 10),
	})
}

func TestTablesFail(t *testing.T) {
	expectError(t, "[.]", UnexpectedError{Pos: 1})
	expectError(t, "[hello", UnexpectedError{Pos: 6})
	expectError(t, "[hello.]", UnexpectedError{Pos: 7})
	expectError(t, "[.world]", UnexpectedError{Pos: 1})
	expectError(t, "[hello.\nworld]", MultilineKeyError{Pos: 7})
	expectError(t, "[hello.'''world''']", MultilineStringError{Pos: 7})
	expectError(t, `[hello."""world"""]`, MultilineStringError{Pos: 7})
	expectError(t, "[[.]]", UnexpectedError{Pos: 2})
	expectError(t, "[[hello", UnexpectedError{Pos: 7})
	expectError(t, "[[hello]", ExpectedError{Pos: 8, Char: ']'})
	expectError(t, "[[hello.]]", UnexpectedError{Pos: 8})
	expectError(t, "[[.world]]", UnexpectedError{Pos: 2})
	expectError(t, "[[hello.\nworld]]", MultilineKeyError{Pos: 8})
	expectError(t, "[[hello.'''world''']]", MultilineStringError{Pos: 8})
	expectError(t, `[[hello."""world"""]]`, MultilineStringError{Pos: 8})
	expectError(t, "[hello] junk", UnexpectedError{Pos: 8})
}

func TestArrays(t *testing.T) {
	expectSymbols(t, "a = []", []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Marker(SymArray, 4),
		Marker(SymArrayEnd, 5),
		Marker(SymEOF, 6),
	})

	expectSymbols(t, "a = [\n                true      ,\n                false # false is false\n            ]", []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Marker(SymArray, 4),
		Spanned(SymBool, 22, 26),
		Spanned(SymBool, 50, 55),
		Marker(SymArrayEnd, 85),
		Marker(SymEOF, 86),
	})

	expectSymbols(t, `colors = [ "red", "yellow", [ "green", "purple", ], ]`, []Symbol{
		Spanned(SymKey, 0, 6),
		Marker(SymAssign, 7),
		Marker(SymArray, 9),
		Spanned(SymString, 12, 15),
		Spanned(SymString, 19, 25),
		Marker(SymArray, 28),
		Spanned(SymString, 31, 36),
		Spanned(SymString, 40, 46),
		Marker(SymArrayEnd, 49),
		Marker(SymArrayEnd, 52),
		Marker(SymEOF, 53),
	})
}

func TestArraysFail(t *testing.T) {
	expectError(t, "a = [,]", UnexpectedError{Pos: 5})
	expectError(t, "a = [true false]", MissingDelimiterError{Pos: 10})
}

func TestInlineTables(t *testing.T) {
	expectSymbols(t, "colors = { red = true }", []Symbol{
		Spanned(SymKey, 0, 6),
		Marker(SymAssign, 7),
		Marker(SymInlineTable, 9),
		Spanned(SymKey, 11, 14),
		Marker(SymAssign, 15),
		Spanned(SymBool, 17, 21),
		Marker(SymInlineTableEnd, 22),
		Marker(SymEOF, 23),
	})

	expectSymbols(t, "empty = {}", []Symbol{
		Spanned(SymKey, 0, 5),
		Marker(SymAssign, 6),
		Marker(SymInlineTable, 8),
		Marker(SymInlineTableEnd, 9),
		Marker(SymEOF, 10),
	})

	expectSymbols(t, `colors = { red = true, green = '0x00ff00' }`, []Symbol{
		Spanned(SymKey, 0, 6),
		Marker(SymAssign, 7),
		Marker(SymInlineTable, 9),
		Spanned(SymKey, 11, 14),
		Marker(SymAssign, 15),
		Spanned(SymBool, 17, 21),
		Spanned(SymKey, 23, 28),
		Marker(SymAssign, 29),
		Spanned(SymString, 32, 40),
		Marker(SymInlineTableEnd, 42),
		Marker(SymEOF, 43),
	})

	expectSymbols(t, `animal = { type.name = "pug" }`, []Symbol{
		Spanned(SymKey, 0, 6),
		Marker(SymAssign, 7),
		Marker(SymInlineTable, 9),
		Spanned(SymKey, 11, 15),
		Spanned(SymKey, 16, 20),
		Marker(SymAssign, 21),
		Spanned(SymString, 24, 27),
		Marker(SymInlineTableEnd, 29),
		Marker(SymEOF, 30),
	})

	expectSymbols(t, "points = [ { x = +1, y = +2, z = +3 },\n           { x = +7, y = +8, z = +9 },\n           { x = +2, y = +4, z = +8 } ]", []Symbol{
		Spanned(SymKey, 0, 6),
		Marker(SymAssign, 7),
		Marker(SymArray, 9),
		Marker(SymInlineTable, 11),
		Spanned(SymKey, 13, 14),
		Marker(SymAssign, 15),
		Spanned(SymInteger, 17, 19),
		Spanned(SymKey, 21, 22),
		Marker(SymAssign, 23),
		Spanned(SymInteger, 25, 27),
		Spanned(SymKey, 29, 30),
		Marker(SymAssign, 31),
		Spanned(SymInteger, 33, 35),
		Marker(SymInlineTableEnd, 36),
		Marker(SymInlineTable, 50),
		Spanned(SymKey, 52, 53),
		Marker(SymAssign, 54),
		Spanned(SymInteger, 56, 58),
		Spanned(SymKey, 60, 61),
		Marker(SymAssign, 62),
		Spanned(SymInteger, 64, 66),
		Spanned(SymKey, 68, 69),
		Marker(SymAssign, 70),
		Spanned(SymInteger, 72, 74),
		Marker(SymInlineTableEnd, 75),
		Marker(SymInlineTable, 89),
		Spanned(SymKey, 91, 92),
		Marker(SymAssign, 93),
		Spanned(SymInteger, 95, 97),
		Spanned(SymKey, 99, 100),
		Marker(SymAssign, 101),
		Spanned(SymInteger, 103, 105),
		Spanned(SymKey, 107, 108),
		Marker(SymAssign, 109),
		Spanned(SymInteger, 111, 113),
		Marker(SymInlineTableEnd, 114),
		Marker(SymArrayEnd, 116),
		Marker(SymEOF, 117),
	})
}

func TestInlineTablesFail(t *testing.T) {
	expectError(t, "colors = { red = true, }", UnexpectedError{Pos: 23})
	expectError(t, "colors = { red\n            = true }", UnexpectedError{Pos: 14})
	expectError(t, "colors = { red = true green = true }", MissingDelimiterError{Pos: 22})
}

// Every payload span must extract exactly the literal content, with quotes,
// brackets, and punctuation excluded.
func TestSpanExtraction(t *testing.T) {
	input := "title = \"basic\"\n" +
		"path = 'literal'\n" +
		"[server.alpha]\n" +
		"port = 8080\n" +
		"ratio = 0.5\n" +
		"on = true\n"
	symbols, err := Scan(input)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	contents := map[Sym][]string{}
	for _, sym := range symbols {
		if sym.IsPayload() {
			contents[sym.Sym] = append(contents[sym.Sym], sym.Span.Of(input))
		}
	}
	expected := map[Sym][]string{
		SymKey:     {"title", "path", "server", "alpha", "port", "ratio", "on"},
		SymString:  {"basic", "literal"},
		SymInteger: {"8080"},
		SymFloat:   {"0.5"},
		SymBool:    {"true"},
	}
	for sym, want := range expected {
		got := contents[sym]
		if len(got) != len(want) {
			t.Fatalf("%v: expected %v, got %v", sym, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%v %d: expected %q, got %q", sym, i, want[i], got[i])
			}
		}
	}
}

// A successful scan ends with exactly one EOF symbol at len(input).
func TestEOFTermination(t *testing.T) {
	inputs := []string{
		"",
		"# comment only",
		"a = 1\nb = 2\n",
		"[t]\nx = 'y'",
		"a = [ 1 , 2 , 3 ]",
	}
	for _, input := range inputs {
		symbols, err := Scan(input)
		if err != nil {
			t.Fatalf("%q: scan failed: %v", input, err)
		}
		eofs := 0
		for _, sym := range symbols {
			if sym.Sym == SymEOF {
				eofs++
			}
		}
		if eofs != 1 {
			t.Fatalf("%q: expected 1 EOF symbol, got %d", input, eofs)
		}
		last := symbols[len(symbols)-1]
		if last.Sym != SymEOF {
			t.Fatalf("%q: last symbol is %v, not EOF", input, last.Sym)
		}
		if last.Position() != len(input) {
			t.Fatalf("%q: EOF at %d, expected %d", input, last.Position(), len(input))
		}
	}
}

// Scanning is pure: the same malformed input always yields the identical
// error value.
func TestFailDeterminism(t *testing.T) {
	inputs := []string{
		"=",
		"a = [true false]",
		"[hello.\nworld]",
		"a = 'unterminated",
	}
	for _, input := range inputs {
		_, first := Scan(input)
		for i := 0; i < 3; i++ {
			_, again := Scan(input)
			if first != again {
				t.Fatalf("%q: error changed between scans: %v then %v", input, first, again)
			}
		}
	}
}

func TestCRLF(t *testing.T) {
	expectSymbols(t, "a = 'x'\r\nb = 'y'\r\n", []Symbol{
		Spanned(SymKey, 0, 1),
		Marker(SymAssign, 2),
		Spanned(SymString, 5, 6),
		Spanned(SymKey, 9, 10),
		Marker(SymAssign, 11),
		Spanned(SymString, 14, 15),
		Marker(SymEOF, 18),
	})
	expectError(t, "a = 'x'\rb = 'y'", ControlCharacterError{Pos: 7})
	expectError(t, "\ra = 'x'", ControlCharacterError{Pos: 0})
}

func BenchmarkScan(b *testing.B) {
	doc := `# server configuration
[server]
host = "0.0.0.0"
port = 8080
timeouts = [ 5 , 30 , 120 ]

[[server.endpoints]]
path = '/api/v1'
methods = [ "GET", "POST" ]
limits = { burst = 100, sustained = 10 }
`
	b.SetBytes(int64(len(doc)))
	for b.Loop() {
		if _, err := Scan(doc); err != nil {
			b.Fatal(err)
		}
	}
}

package lex

import (
	"fmt"
	"strings"
)

// Pos is a 1-based line and column resolved from a byte offset. Scan errors
// carry byte offsets only; tools resolve them for display.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Locate resolves a byte offset in text to a line and rune column. Offsets
// at or past the end of the text resolve to one past the last rune of the
// last line.
func Locate(text string, offset int) Pos {
	if offset > len(text) {
		offset = len(text)
	}
	head := text[:offset]
	line := strings.Count(head, "\n") + 1
	lineStart := strings.LastIndexByte(head, '\n') + 1
	column := len([]rune(head[lineStart:])) + 1
	return Pos{
		Line:   line,
		Column: column,
	}
}

// Annotate renders the line containing offset with a caret marking the
// offending column, for terminal diagnostics.
func Annotate(text string, offset int) string {
	pos := Locate(text, offset)

	lines := strings.Split(text, "\n")
	idx := pos.Line - 1
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	line := strings.TrimSuffix(lines[idx], "\r")

	var sb strings.Builder
	sb.WriteString(line)
	sb.WriteString("\n")

	col := pos.Column - 1
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			for range runeWidth(r) {
				sb.WriteString(" ")
			}
		}
	}
	sb.WriteString("^\n")

	return sb.String()
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}

// Offset extracts the primary byte offset from any scan error. It returns
// -1 for errors outside the scan taxonomy.
func Offset(err error) int {
	switch e := err.(type) {
	case ControlCharacterError:
		return e.Pos
	case TooManyQuotesError:
		return e.Pos
	case UnterminatedStringError:
		return e.Pos
	case MultilineKeyError:
		return e.Pos
	case MultilineStringError:
		return e.Pos
	case MissingDelimiterError:
		return e.Pos
	case UnconsumedInputError:
		return e.Pos
	case ExpectedError:
		return e.Pos
	case UnexpectedError:
		return e.Pos
	}
	return -1
}

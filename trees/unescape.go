package trees

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// unescapeBasic decodes the escape sequences of a basic string body. base is
// the byte offset of the body in the scanned text, used for error positions.
// In multiline bodies a backslash at the end of a line swallows the line
// break and all leading whitespace of the following lines.
func unescapeBasic(body string, base int, multiline bool) (string, error) {
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var sb strings.Builder
	sb.Grow(len(body))

	i := 0
	for i < len(body) {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}

		mark := i
		i++
		if i >= len(body) {
			return "", InvalidEscapeError{Pos: base + mark}
		}

		switch body[i] {
		case 'b':
			sb.WriteByte('\b')
			i++
		case 't':
			sb.WriteByte('\t')
			i++
		case 'n':
			sb.WriteByte('\n')
			i++
		case 'f':
			sb.WriteByte('\f')
			i++
		case 'r':
			sb.WriteByte('\r')
			i++
		case '"':
			sb.WriteByte('"')
			i++
		case '\\':
			sb.WriteByte('\\')
			i++

		case 'u', 'U':
			r, n, err := hexEscape(body, i, base+mark)
			if err != nil {
				return "", err
			}
			i += n
			sb.WriteRune(r)

		case ' ', '\t', '\r', '\n':
			if !multiline {
				return "", InvalidEscapeError{Pos: base + mark}
			}
			// a line-ending backslash: whitespace through at least one line
			// break is trimmed
			sawBreak := false
			for i < len(body) {
				switch body[i] {
				case ' ', '\t', '\r':
				case '\n':
					sawBreak = true
				default:
					goto trimmed
				}
				i++
			}
		trimmed:
			if !sawBreak {
				return "", InvalidEscapeError{Pos: base + mark}
			}

		default:
			return "", InvalidEscapeError{Pos: base + mark}
		}
	}

	return sb.String(), nil
}

// hexEscape decodes \uXXXX or \UXXXXXXXX with the cursor at the 'u' or 'U'.
// A UTF-16 high surrogate must be followed by a \u low surrogate; the pair
// decodes to one rune. Returns the rune and the number of body bytes
// consumed from the 'u' on.
func hexEscape(body string, i int, errPos int) (rune, int, error) {
	width := 4
	if body[i] == 'U' {
		width = 8
	}

	r, ok := hexRune(body, i+1, width)
	if !ok {
		return 0, 0, InvalidEscapeError{Pos: errPos}
	}
	n := 1 + width

	if utf16.IsSurrogate(r) {
		// only a high surrogate directly followed by \u<low> is decodable
		j := i + n
		if width != 4 || j+6 > len(body) || body[j] != '\\' || body[j+1] != 'u' {
			return 0, 0, InvalidEscapeError{Pos: errPos}
		}
		r2, ok := hexRune(body, j+2, 4)
		if !ok {
			return 0, 0, InvalidEscapeError{Pos: errPos}
		}
		combined := utf16.DecodeRune(r, r2)
		if combined == utf8.RuneError {
			return 0, 0, InvalidEscapeError{Pos: errPos}
		}
		return combined, n + 6, nil
	}

	if !utf8.ValidRune(r) {
		return 0, 0, InvalidEscapeError{Pos: errPos}
	}
	return r, n, nil
}

func hexRune(s string, i int, width int) (rune, bool) {
	if i+width > len(s) {
		return 0, false
	}
	var r rune
	for _, c := range []byte(s[i : i+width]) {
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, false
		}
		r = r<<4 | d
	}
	return r, true
}

// trimLeadingBreak drops the line break directly after the opening delimiter
// of a multiline string.
func trimLeadingBreak(body string) string {
	if strings.HasPrefix(body, "\r\n") {
		return body[2:]
	}
	if strings.HasPrefix(body, "\n") {
		return body[1:]
	}
	return body
}

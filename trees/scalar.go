package trees

import (
	"strconv"
	"strings"
	"time"
)

// parseInteger handles decimal with '_' grouping and the 0x/0o/0b radix
// prefixes. strconv's base-0 mode matches the scanner's digit grammar,
// except that it reads a bare leading zero as octal; a decimal literal
// with a leading zero is invalid here instead.
func parseInteger(raw string, pos int) (int64, error) {
	digits := strings.TrimLeft(raw, "+-")
	if len(digits) > 1 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
		default:
			return 0, InvalidNumberError{Pos: pos}
		}
	}
	n, err := strconv.ParseInt(raw, 0, 64)
	if err != nil {
		return 0, InvalidNumberError{Pos: pos}
	}
	return n, nil
}

func parseFloat(raw string, pos int) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, InvalidNumberError{Pos: pos}
	}
	return f, nil
}

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"15:04:05",
}

// parseDateTime range-checks and materializes a date-time the scanner
// already validated structurally. The scanner permits a space separator and
// lowercase 't'/'z'; both normalize to the uppercase 'T' forms.
func parseDateTime(raw string, pos int) (time.Time, error) {
	if len(raw) > 10 && raw[10] == ' ' {
		raw = raw[:10] + "T" + raw[11:]
	}
	raw = strings.Map(func(r rune) rune {
		switch r {
		case 't':
			return 'T'
		case 'z':
			return 'Z'
		}
		return r
	}, raw)

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, InvalidDateTimeError{Pos: pos}
}

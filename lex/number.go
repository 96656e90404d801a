package lex

import "strings"

// A numeric or date-time literal ends at the first of these bytes. Anything
// else after the literal is an error.
func isLiteralTerminator(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\n', '#', ',':
		return true
	}
	return false
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'f' ||
		c >= 'A' && c <= 'F'
}

func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

// scanNumber scans a signed numeric literal. The cursor is at the '+' or
// '-'. Signed literals are never date-times.
func (l *Lexer) scanNumber() error {
	start := l.index
	l.next()

	if l.current == 'i' || l.current == 'n' {
		rest := l.Text[l.index:]
		if strings.HasPrefix(rest, "inf") || strings.HasPrefix(rest, "nan") {
			l.jump(l.index + 3)
			l.pushSpan(SymFloat, start, l.index)
			return nil
		}
		return l.errUnexpected()
	}

	if l.current == '0' {
		switch l.peek() {
		case 'x', 'X':
			return l.scanRadixInteger(start, isHexDigit)
		case 'o', 'O':
			return l.scanRadixInteger(start, isOctalDigit)
		case 'b', 'B':
			return l.scanRadixInteger(start, isBinaryDigit)
		}
	}

	return l.scanDecimalTail(start, false)
}

// scanNumberOrDate scans an unsigned literal starting at a digit: an
// integer, a float, or a date-time. Date-times are recognized from the
// leading digit run: 4 digits then '-' begin a date, 2 digits then ':' begin
// a bare time.
func (l *Lexer) scanNumberOrDate() error {
	start := l.index

	if l.current == '0' {
		switch l.peek() {
		case 'x', 'X':
			return l.scanRadixInteger(start, isHexDigit)
		case 'o', 'O':
			return l.scanRadixInteger(start, isOctalDigit)
		case 'b', 'B':
			return l.scanRadixInteger(start, isBinaryDigit)
		}
	}

	digits := 0
	for isDigit(l.current) {
		digits++
		l.next()
	}

	switch {
	case l.current == '-' && digits == 4:
		return l.scanDate(start)
	case l.current == ':' && digits == 2:
		return l.scanClockTail(start)
	}

	return l.scanDecimalTail(start, digits > 0)
}

// scanRadixInteger scans a 0x/0o/0b integer. The cursor is at the '0'.
func (l *Lexer) scanRadixInteger(start int, digitOK func(byte) bool) error {
	l.next()
	l.next()

	allowUnderscore := false
	for {
		switch {
		case digitOK(l.current):
			allowUnderscore = true
			l.next()
		case l.current == '_':
			if !allowUnderscore {
				return l.errUnexpected()
			}
			allowUnderscore = false
			l.next()
		case isLiteralTerminator(l.current):
			l.pushSpan(SymInteger, start, l.index)
			return nil
		default:
			return l.errUnexpected()
		}
	}
}

// decimalRun consumes a run of decimal digits with '_' grouping. An
// underscore is legal only directly after a digit; allow tells whether one
// may appear immediately.
func (l *Lexer) decimalRun(allow bool) error {
	for {
		switch {
		case isDigit(l.current):
			allow = true
			l.next()
		case l.current == '_':
			if !allow {
				return l.errUnexpected()
			}
			allow = false
			l.next()
		default:
			return nil
		}
	}
}

// scanDecimalTail finishes a decimal integer or float whose leading digits
// may already have been consumed. A '.' must be followed by a digit; an
// exponent is e/E, an optional sign, then at least one digit.
func (l *Lexer) scanDecimalTail(start int, seenDigit bool) error {
	if err := l.decimalRun(seenDigit); err != nil {
		return err
	}

	sym := SymInteger

	if l.current == '.' {
		sym = SymFloat
		l.next()
		if !isDigit(l.current) {
			return l.errUnexpected()
		}
		if err := l.decimalRun(true); err != nil {
			return err
		}
	}

	if l.current == 'e' || l.current == 'E' {
		sym = SymFloat
		l.next()
		if l.current == '+' || l.current == '-' {
			l.next()
		}
		if !isDigit(l.current) {
			return l.errUnexpected()
		}
		if err := l.decimalRun(true); err != nil {
			return err
		}
	}

	if !isLiteralTerminator(l.current) {
		return l.errUnexpected()
	}
	l.pushSpan(sym, start, l.index)
	return nil
}

// digits consumes exactly n decimal digits.
func (l *Lexer) digits(n int) bool {
	for range n {
		if !isDigit(l.current) {
			return false
		}
		l.next()
	}
	return true
}

// scanDate continues a date-time after the 4-digit year; the cursor is at
// the '-'. Only digit counts are checked here; range validation is the tree
// builder's concern, like escape validation for strings.
func (l *Lexer) scanDate(start int) error {
	l.next()
	if !l.digits(2) {
		return l.errUnexpected()
	}
	if l.current != '-' {
		return l.errUnexpected()
	}
	l.next()
	if !l.digits(2) {
		return l.errUnexpected()
	}

	// optional time part: 'T', 't', or a single space directly followed by
	// two digits
	switch {
	case l.current == 'T' || l.current == 't':
		l.next()
	case l.current == ' ' && isDigit(l.peek()) && isDigit(l.peek2()):
		l.next()
	default:
		if !isLiteralTerminator(l.current) {
			return l.errUnexpected()
		}
		l.pushSpan(SymDateTime, start, l.index)
		return nil
	}

	if !l.digits(2) {
		return l.errUnexpected()
	}
	if l.current != ':' {
		return l.errUnexpected()
	}
	if err := l.scanClock(); err != nil {
		return err
	}

	// optional offset
	switch {
	case l.current == 'Z' || l.current == 'z':
		l.next()
	case l.current == '+' || l.current == '-':
		l.next()
		if !l.digits(2) {
			return l.errUnexpected()
		}
		if l.current != ':' {
			return l.errUnexpected()
		}
		l.next()
		if !l.digits(2) {
			return l.errUnexpected()
		}
	}

	if !isLiteralTerminator(l.current) {
		return l.errUnexpected()
	}
	l.pushSpan(SymDateTime, start, l.index)
	return nil
}

// scanClockTail finishes a bare local time whose 2-digit hour was already
// consumed; the cursor is at the first ':'.
func (l *Lexer) scanClockTail(start int) error {
	if err := l.scanClock(); err != nil {
		return err
	}
	if !isLiteralTerminator(l.current) {
		return l.errUnexpected()
	}
	l.pushSpan(SymDateTime, start, l.index)
	return nil
}

// scanClock consumes ':' mm ':' ss and an optional '.' fraction; the cursor
// is at the ':' after the hour.
func (l *Lexer) scanClock() error {
	l.next()
	if !l.digits(2) {
		return l.errUnexpected()
	}
	if l.current != ':' {
		return l.errUnexpected()
	}
	l.next()
	if !l.digits(2) {
		return l.errUnexpected()
	}
	if l.current == '.' {
		l.next()
		if !isDigit(l.current) {
			return l.errUnexpected()
		}
		for isDigit(l.current) {
			l.next()
		}
	}
	return nil
}

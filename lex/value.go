package lex

import "strings"

// scanValue dispatches on the current byte after an '='.
func (l *Lexer) scanValue() error {
	switch {

	case l.current == '"' || l.current == '\'':
		return l.scanString()

	case l.current == '{':
		return l.scanInlineTable()

	case l.current == '[':
		return l.scanArray()

	case l.current == 't' || l.current == 'f':
		rest := l.Text[l.index:]
		switch {
		case strings.HasPrefix(rest, "true"):
			start := l.index
			l.jump(start + 4)
			l.pushSpan(SymBool, start, start+4)
			return nil
		case strings.HasPrefix(rest, "false"):
			start := l.index
			l.jump(start + 5)
			l.pushSpan(SymBool, start, start+5)
			return nil
		}
		return l.errUnexpected()

	case l.current == 'i' || l.current == 'n':
		rest := l.Text[l.index:]
		if strings.HasPrefix(rest, "inf") || strings.HasPrefix(rest, "nan") {
			start := l.index
			l.jump(start + 3)
			l.pushSpan(SymFloat, start, start+3)
			return nil
		}
		return l.errUnexpected()

	case l.current == '+' || l.current == '-':
		return l.scanNumber()

	case isDigit(l.current):
		return l.scanNumberOrDate()
	}

	return l.errUnexpected()
}

// scanArray scans [...]. Arrays permit embedded newlines and comments, and a
// trailing comma before the closing bracket.
func (l *Lexer) scanArray() error {
	l.push(SymArray)
	l.next()

	if err := l.skipWhitespaceAndComment(); err != nil {
		return err
	}

	if l.current == ']' {
		l.push(SymArrayEnd)
		l.next()
		return nil
	}

	if err := l.scanValue(); err != nil {
		return err
	}

elements:
	for {
		if err := l.skipWhitespaceAndComment(); err != nil {
			return err
		}
		switch l.current {
		case ',':
			l.next()
			if err := l.skipWhitespaceAndComment(); err != nil {
				return err
			}
			if l.current == ']' {
				break elements
			}
			if err := l.scanValue(); err != nil {
				return err
			}
		case ']':
			break elements
		default:
			return l.errMissingDelimiter()
		}
	}

	l.push(SymArrayEnd)
	l.next()
	return nil
}

// scanInlineTable scans {...}. Inline tables are single-line: only spaces
// and tabs between elements, no comments, and no trailing comma.
func (l *Lexer) scanInlineTable() error {
	l.push(SymInlineTable)
	l.next()

	l.skipWhitespace()

	if l.current == '}' {
		l.push(SymInlineTableEnd)
		l.next()
		return nil
	}

	if err := l.scanKeyLike(); err != nil {
		return err
	}
	l.skipWhitespace()
	if err := l.scanValue(); err != nil {
		return err
	}

pairs:
	for {
		l.skipWhitespace()
		switch l.current {
		case ',':
			l.next()
			l.skipWhitespace()
			if err := l.scanKeyLike(); err != nil {
				return err
			}
			l.skipWhitespace()
			if err := l.scanValue(); err != nil {
				return err
			}
		case '}':
			break pairs
		default:
			return l.errMissingDelimiter()
		}
	}

	l.push(SymInlineTableEnd)
	l.next()
	return nil
}

package lex

// scanKey scans a bare key: a maximal run of [a-zA-Z0-9_-]. The cursor is at
// the first byte, which the caller already classified. Scanning stops,
// without consuming, at a space, tab, '=', '.', or ']'.
func (l *Lexer) scanKey() error {
	start := l.index
	for {
		l.next()
		switch {
		case isBareKeyByte(l.current):
		case l.current == ' ' || l.current == '\t' ||
			l.current == '=' || l.current == '.' || l.current == ']':
			l.pushSpan(SymKey, start, l.index)
			return nil
		default:
			return l.errUnexpected()
		}
	}
}

// scanDotted consumes the remainder of a dotted key path after its first
// segment, up to and including the '='. Segments and dots must alternate;
// keys never span lines.
func (l *Lexer) scanDotted() error {
	sawDot := false
	for {
		l.skipWhitespace()
		switch {

		case l.current == '\r':
			if l.peek() != '\n' {
				return l.errControlCharacter()
			}
			return l.errMultilineKey()

		case l.current == '\n':
			return l.errMultilineKey()

		case l.current == '.':
			if sawDot {
				return l.errUnexpected()
			}
			sawDot = true
			l.next()

		case l.current == '=':
			if sawDot {
				return l.errUnexpected()
			}
			l.push(SymAssign)
			l.next()
			return nil

		case l.current == '"' || l.current == '\'':
			if !sawDot {
				return l.errUnexpected()
			}
			sawDot = false
			if err := l.scanString(); err != nil {
				return err
			}

		case isBareKeyByte(l.current):
			if !sawDot {
				return l.errUnexpected()
			}
			sawDot = false
			if err := l.scanKey(); err != nil {
				return err
			}

		default:
			return l.errUnexpected()
		}
	}
}

// scanKeyLike scans an entire assignment target: the first key or string
// segment, then the dotted continuation through the '='.
func (l *Lexer) scanKeyLike() error {
	switch {
	case l.current == '"' || l.current == '\'':
		if err := l.scanString(); err != nil {
			return err
		}
	case isBareKeyByte(l.current):
		if err := l.scanKey(); err != nil {
			return err
		}
	default:
		return l.errUnexpected()
	}
	return l.scanDotted()
}

package lex

// scanTable scans a [table] or [[array-of-table]] header line. The cursor is
// at the opening '['. The header path terminates on ']'; an array-of-table
// header requires a second ']' directly after the first. The remainder of
// the line may hold only whitespace and a comment.
func (l *Lexer) scanTable() error {
	l.next()

	isArray := l.eat('[')
	if isArray {
		l.push(SymArrayOfTable)
	} else {
		l.push(SymTable)
	}

	sawDot := true
path:
	for {
		switch {

		case l.current == '\r':
			if l.peek() != '\n' {
				return l.errControlCharacter()
			}
			return l.errMultilineKey()

		case l.current == '\n':
			return l.errMultilineKey()

		case l.current == ' ' || l.current == '\t':
			l.next()

		case l.current == '.':
			if sawDot {
				return l.errUnexpected()
			}
			sawDot = true
			l.next()

		case l.current == ']':
			if sawDot {
				return l.errUnexpected()
			}
			l.next()
			break path

		case l.current == '"' || l.current == '\'':
			if !sawDot {
				return l.errUnexpected()
			}
			sawDot = false
			if err := l.scanSingleLineString(); err != nil {
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

	if isArray && !l.eat(']') {
		return l.errExpected(']')
	}

	if err := l.consumeLine(); err != nil {
		return err
	}

	l.push(SymTableEnd)
	return nil
}

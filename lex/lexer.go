package lex

// Lexer scans a TOML document in one left-to-right pass, appending a
// span-tagged symbol for each lexical unit it recognizes. The text is
// borrowed for the lexer's lifetime; spans index into it.
//
// The cursor is a byte offset plus a cached current byte. Byte 0 stands for
// both NUL and end-of-input, so absent bytes read as 0 everywhere.
type Lexer struct {
	Text    string
	Symbols []Symbol

	index   int
	current byte
}

func New(text string) *Lexer {
	l := &Lexer{
		Text: text,
	}
	if len(text) > 0 {
		l.current = text[0]
	}
	return l
}

// Scan scans text to completion and returns its symbol stream.
func Scan(text string) ([]Symbol, error) {
	l := New(text)
	if err := l.Scan(); err != nil {
		return nil, err
	}
	return l.Symbols, nil
}

func (l *Lexer) next() {
	l.index++
	if l.index < len(l.Text) {
		l.current = l.Text[l.index]
	} else {
		l.current = 0
	}
}

func (l *Lexer) peek() byte {
	if i := l.index + 1; i < len(l.Text) {
		return l.Text[i]
	}
	return 0
}

func (l *Lexer) peek2() byte {
	if i := l.index + 2; i < len(l.Text) {
		return l.Text[i]
	}
	return 0
}

// jump moves the cursor directly to index. Used only after a bulk forward
// search located a delimiter or literal end.
func (l *Lexer) jump(index int) {
	l.index = index
	if index < len(l.Text) {
		l.current = l.Text[index]
	} else {
		l.current = 0
	}
}

func (l *Lexer) eat(c byte) bool {
	if l.current == c {
		l.next()
		return true
	}
	return false
}

func (l *Lexer) push(s Sym) {
	l.Symbols = append(l.Symbols, Marker(s, l.index))
}

// pushSpan appends a payload symbol covering [lo, hi).
func (l *Lexer) pushSpan(s Sym, lo int, hi int) {
	l.Symbols = append(l.Symbols, Spanned(s, lo, hi))
}

func isBareKeyByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Scan consumes the entire input. On success the symbol stream ends with
// exactly one EOF symbol positioned at len(Text); on the first lexical
// violation it stops and returns the error, leaving the stream as built so
// far.
func (l *Lexer) Scan() error {
	for {
		switch {

		case l.current == '\r':
			if l.peek() != '\n' {
				return l.errControlCharacter()
			}
			l.next()
			l.next()

		case l.current == '\n' || l.current == ' ' || l.current == '\t':
			l.next()

		case l.current == '#':
			if err := l.consumeComment(); err != nil {
				return err
			}

		case l.current == '[':
			if err := l.scanTable(); err != nil {
				return err
			}

		case l.current == '"' || l.current == '\'' || isBareKeyByte(l.current):
			if err := l.scanKeyLike(); err != nil {
				return err
			}
			l.skipWhitespace()
			if err := l.scanValue(); err != nil {
				return err
			}
			if err := l.consumeLine(); err != nil {
				return err
			}

		case l.current == 0:
			if l.index != len(l.Text) {
				return l.errUnconsumedInput()
			}
			l.push(SymEOF)
			return nil

		default:
			return l.errUnexpected()
		}
	}
}

// consumeComment consumes a comment up to the end of its line or the end of
// the input. The cursor is at the '#'.
func (l *Lexer) consumeComment() error {
	l.next()
	for {
		switch {
		case l.current == 0 || l.current == '\n':
			return nil
		case l.current == '\r':
			if l.peek() != '\n' {
				return l.errControlCharacter()
			}
			l.next()
			l.next()
			return nil
		case l.current >= 0x01 && l.current <= 0x08,
			l.current >= 0x0a && l.current <= 0x1f,
			l.current == 0x7f:
			return l.errControlCharacter()
		default:
			l.next()
		}
	}
}

// consumeLine consumes trailing whitespace and an optional comment up to the
// next newline or the end of the input. Anything else on the line is an
// error.
func (l *Lexer) consumeLine() error {
	for {
		switch {
		case l.current == 0 || l.current == '\n':
			return nil
		case l.current == '\r':
			if l.peek() != '\n' {
				return l.errControlCharacter()
			}
			l.next()
			l.next()
			return nil
		case l.current == ' ' || l.current == '\t':
			l.next()
		case l.current == '#':
			return l.consumeComment()
		default:
			return l.errUnexpected()
		}
	}
}

// skipWhitespaceAndComment skips spaces, tabs, newlines, and comments.
func (l *Lexer) skipWhitespaceAndComment() error {
	for {
		switch {
		case l.current == '\r':
			if l.peek() != '\n' {
				return l.errControlCharacter()
			}
			l.next()
			l.next()
		case l.current == '\n' || l.current == ' ' || l.current == '\t':
			l.next()
		case l.current == '#':
			if err := l.consumeComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// skipWhitespace skips spaces and tabs only.
func (l *Lexer) skipWhitespace() {
	for l.current == ' ' || l.current == '\t' {
		l.next()
	}
}

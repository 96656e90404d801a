package lex

import "strings"

// scanString dispatches on up to 3 leading bytes: multiline literal,
// multiline basic, single-line literal, single-line basic.
func (l *Lexer) scanString() error {
	switch {
	case l.current == '\'' && l.peek() == '\'' && l.peek2() == '\'':
		return l.scanMultilineLiteralString()
	case l.current == '"' && l.peek() == '"' && l.peek2() == '"':
		return l.scanMultilineBasicString()
	case l.current == '\'':
		return l.scanLiteralString()
	case l.current == '"':
		return l.scanBasicString()
	}
	panic("scanString: cursor not at a quote")
}

// scanSingleLineString is scanString restricted to the single-line forms.
// Table headers may not contain multiline strings.
func (l *Lexer) scanSingleLineString() error {
	switch {
	case l.current == '\'' && l.peek() == '\'' && l.peek2() == '\'':
		return l.errMultilineString()
	case l.current == '"' && l.peek() == '"' && l.peek2() == '"':
		return l.errMultilineString()
	case l.current == '\'':
		return l.scanLiteralString()
	case l.current == '"':
		return l.scanBasicString()
	}
	panic("scanSingleLineString: cursor not at a quote")
}

// scanLiteralString scans '...' with no escape processing. A single bulk
// search finds the first of newline, closing quote, or NUL.
func (l *Lexer) scanLiteralString() error {
	l.next()
	start := l.index

	rest := l.Text[start:]
	if i := strings.IndexAny(rest, "\n'\x00"); i >= 0 {
		l.jump(start + i + 1)
		if rest[i] == '\'' {
			l.pushSpan(SymString, start, start+i)
			return nil
		}
	}
	return l.errUnterminatedString(start)
}

// scanMultilineLiteralString scans '''...'''. The closing delimiter is found
// with a bulk substring search; up to two quote characters directly after it
// belong to the content.
func (l *Lexer) scanMultilineLiteralString() error {
	l.next()
	l.next()
	l.next()
	start := l.index

	i := strings.Index(l.Text[start:], "'''")
	if i < 0 {
		l.jump(len(l.Text))
		return l.errUnterminatedString(start)
	}

	l.jump(start + i + 3)
	if l.eat('\'') {
		if l.eat('\'') {
			if l.current == '\'' {
				return l.errTooManyQuotes(start)
			}
		}
	}
	// the cursor is just past the quote run; its last 3 quotes close the
	// string
	l.pushSpan(SymString, start, l.index-3)
	return nil
}

// scanBasicString scans "...". Escape payloads are not validated here; the
// scanner only counts backslashes so that an escaped quote does not
// terminate the string.
func (l *Lexer) scanBasicString() error {
	l.next()
	start := l.index

	slashes := 0
	for {
		switch l.current {
		case '"':
			if slashes&1 == 0 {
				l.pushSpan(SymString, start, l.index)
				l.next()
				return nil
			}
			slashes = 0
		case '\\':
			slashes++
		case '\n', 0:
			return l.errUnterminatedString(start)
		default:
			slashes = 0
		}
		l.next()
	}
}

// scanMultilineBasicString scans """...""" with the quote-run automaton. The
// body may end in 1 or 2 content quotes directly before the closing
// delimiter; a run of 6 or more quotes is an error.
func (l *Lexer) scanMultilineBasicString() error {
	l.next()
	l.next()
	l.next()
	start := l.index

	var run quoteRun
	for {
		switch run.feed(l.current) {
		case runClosed:
			// the cursor is at the first byte after the quote run
			l.pushSpan(SymString, start, l.index-3)
			return nil
		case runOverflow:
			return l.errTooManyQuotes(start)
		}
		if l.current == 0 {
			return l.errUnterminatedString(start)
		}
		l.next()
	}
}

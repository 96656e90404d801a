package lex

import "fmt"

// Scan errors carry byte offsets into the scanned text and nothing else.
// They are comparable values: two scans of the same input yield equal errors.

// ControlCharacterError reports an illegal raw control byte in a comment, or
// a lone '\r' not followed by '\n'.
type ControlCharacterError struct {
	Pos int
}

func (e ControlCharacterError) Error() string {
	return fmt.Sprintf("illegal control character at byte %d", e.Pos)
}

// TooManyQuotesError reports a multiline string body containing three or
// more consecutive unescaped quote characters that are not the closing
// delimiter.
type TooManyQuotesError struct {
	Start int
	Pos   int
}

func (e TooManyQuotesError) Error() string {
	return fmt.Sprintf("too many consecutive quotes in string starting at byte %d, at byte %d", e.Start, e.Pos)
}

// UnterminatedStringError reports a string that did not close before the end
// of its line (single-line basic strings) or the end of the input.
type UnterminatedStringError struct {
	Start int
	Pos   int
}

func (e UnterminatedStringError) Error() string {
	return fmt.Sprintf("unterminated string starting at byte %d, at byte %d", e.Start, e.Pos)
}

// MultilineKeyError reports a newline inside a dotted key path.
type MultilineKeyError struct {
	Pos int
}

func (e MultilineKeyError) Error() string {
	return fmt.Sprintf("key spans multiple lines at byte %d", e.Pos)
}

// MultilineStringError reports a triple-quoted string where only single-line
// strings are allowed.
type MultilineStringError struct {
	Pos int
}

func (e MultilineStringError) Error() string {
	return fmt.Sprintf("multiline string not allowed at byte %d", e.Pos)
}

// MissingDelimiterError reports array or inline-table elements not separated
// by ',' and not closed.
type MissingDelimiterError struct {
	Pos int
}

func (e MissingDelimiterError) Error() string {
	return fmt.Sprintf("missing delimiter at byte %d", e.Pos)
}

// UnconsumedInputError reports a scan that stopped before the end of the
// text. It guards against any scan routine silently under-consuming.
type UnconsumedInputError struct {
	Pos int
}

func (e UnconsumedInputError) Error() string {
	return fmt.Sprintf("unconsumed input at byte %d", e.Pos)
}

// ExpectedError reports the absence of a specific required character.
type ExpectedError struct {
	Pos  int
	Char byte
}

func (e ExpectedError) Error() string {
	return fmt.Sprintf("expected %q at byte %d", e.Char, e.Pos)
}

// UnexpectedError reports any other grammar violation.
type UnexpectedError struct {
	Pos int
}

func (e UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected character at byte %d", e.Pos)
}

func (l *Lexer) errControlCharacter() error {
	return ControlCharacterError{Pos: l.index}
}

func (l *Lexer) errTooManyQuotes(start int) error {
	return TooManyQuotesError{Start: start, Pos: l.index}
}

func (l *Lexer) errUnterminatedString(start int) error {
	return UnterminatedStringError{Start: start, Pos: l.index}
}

func (l *Lexer) errMultilineKey() error {
	return MultilineKeyError{Pos: l.index}
}

func (l *Lexer) errMultilineString() error {
	return MultilineStringError{Pos: l.index}
}

func (l *Lexer) errMissingDelimiter() error {
	return MissingDelimiterError{Pos: l.index}
}

func (l *Lexer) errUnconsumedInput() error {
	return UnconsumedInputError{Pos: l.index}
}

func (l *Lexer) errExpected(c byte) error {
	return ExpectedError{Pos: l.index, Char: c}
}

func (l *Lexer) errUnexpected() error {
	return UnexpectedError{Pos: l.index}
}

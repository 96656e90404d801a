package trees

import "fmt"

// Decoding errors carry the byte offset of the offending content in the
// scanned text, like the scanner's own errors do.

type InvalidEscapeError struct {
	Pos int
}

func (e InvalidEscapeError) Error() string {
	return fmt.Sprintf("invalid escape sequence at byte %d", e.Pos)
}

type InvalidNumberError struct {
	Pos int
}

func (e InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number at byte %d", e.Pos)
}

type InvalidDateTimeError struct {
	Pos int
}

func (e InvalidDateTimeError) Error() string {
	return fmt.Sprintf("invalid date-time at byte %d", e.Pos)
}

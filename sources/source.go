package sources

// Source is a forward-only byte cursor over TOML text. The byte 0 stands
// for end of data, so the text itself must not contain NUL. Implementations
// live in this package.
type Source interface {
	// Current returns the byte under the cursor, 0 at end of data.
	Current() byte
	// Position returns the byte offset of the cursor from the start of data.
	Position() int
	EOF() bool
	// Peek and Peek2 look one and two bytes past the cursor.
	Peek() byte
	Peek2() byte
	// Next advances the cursor and returns the new current byte.
	Next() byte
	// Refill makes more data available to the lookahead window if the
	// underlying medium has any.
	Refill() error

	sealed()
}

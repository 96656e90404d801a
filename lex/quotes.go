package lex

// quoteRun tracks the two counters that drive multiline basic string
// scanning: the number of consecutive unescaped '"' bytes seen, and the
// number of consecutive '\' bytes since the last non-backslash byte. A '"'
// preceded by an odd number of backslashes is escaped and does not extend
// the quote run.
type quoteRun struct {
	quotes  int
	slashes int
}

type runState uint8

const (
	// runOpen: still inside the string body.
	runOpen runState = iota
	// runClosed: the byte just fed ended a run of 3 to 5 quotes. The last 3
	// quotes of the run are the closing delimiter; any earlier quotes in the
	// run are content.
	runClosed
	// runOverflow: the byte just fed ended a run of 6 or more quotes.
	runOverflow
)

// feed consumes one byte of the string body and reports whether the string
// is still open. The closing byte itself (the first byte after the quote
// run) is not part of the string.
func (q *quoteRun) feed(c byte) runState {
	switch c {

	case '"':
		if q.slashes&1 == 0 {
			q.quotes++
		} else {
			q.quotes = 0
		}
		q.slashes = 0
		return runOpen

	case '\\':
		switch {
		case q.quotes >= 6:
			return runOverflow
		case q.quotes >= 3:
			return runClosed
		}
		q.slashes++
		q.quotes = 0
		return runOpen

	default:
		switch {
		case q.quotes >= 6:
			return runOverflow
		case q.quotes >= 3:
			return runClosed
		}
		q.quotes = 0
		q.slashes = 0
		return runOpen
	}
}

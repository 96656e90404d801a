package sources

import "io"

const scratchSize = 64 * 1024

// ReaderSource cursors over an io.Reader through a sliding window in a
// fixed scratch buffer. Lookahead past the window triggers a refill; once
// the reader is drained the cursor reports 0 like StringSource does at end
// of text.
type ReaderSource struct {
	r       io.Reader
	scratch []byte
	buf     []byte
	pos     int
	base    int
	done    bool
	err     error
}

var _ Source = new(ReaderSource)

func NewReaderSource(r io.Reader) *ReaderSource {
	return newReaderSource(r, scratchSize)
}

func newReaderSource(r io.Reader, size int) *ReaderSource {
	s := &ReaderSource{
		r:       r,
		scratch: make([]byte, size),
	}
	s.err = s.Refill()
	return s
}

// Refill slides unread bytes to the front of the scratch buffer and reads
// until at least one productive read, the buffer is full, or the reader is
// drained.
func (s *ReaderSource) Refill() error {
	if s.done {
		return s.err
	}
	if s.pos > 0 {
		n := copy(s.scratch, s.buf[s.pos:])
		s.base += s.pos
		s.buf = s.scratch[:n]
		s.pos = 0
	}
	for len(s.buf) < len(s.scratch) {
		n, err := s.r.Read(s.scratch[len(s.buf):])
		s.buf = s.scratch[:len(s.buf)+n]
		if err == io.EOF {
			s.done = true
			return nil
		}
		if err != nil {
			s.done = true
			s.err = err
			return err
		}
		if n > 0 {
			return nil
		}
	}
	return nil
}

// ensure refills until i bytes of lookahead are available or the reader is
// drained.
func (s *ReaderSource) ensure(i int) {
	for len(s.buf)-s.pos < i && !s.done {
		before := len(s.buf) - s.pos
		if err := s.Refill(); err != nil {
			return
		}
		if len(s.buf)-s.pos == before {
			return
		}
	}
}

func (s *ReaderSource) byteAt(i int) byte {
	s.ensure(i + 1)
	if s.pos+i < len(s.buf) {
		return s.buf[s.pos+i]
	}
	return 0
}

func (s *ReaderSource) Current() byte {
	return s.byteAt(0)
}

func (s *ReaderSource) Position() int {
	return s.base + s.pos
}

func (s *ReaderSource) EOF() bool {
	s.ensure(1)
	return s.pos >= len(s.buf)
}

func (s *ReaderSource) Peek() byte {
	return s.byteAt(1)
}

func (s *ReaderSource) Peek2() byte {
	return s.byteAt(2)
}

func (s *ReaderSource) Next() byte {
	s.ensure(1)
	if s.pos < len(s.buf) {
		s.pos++
	}
	return s.byteAt(0)
}

// Err reports any read error other than end of data.
func (s *ReaderSource) Err() error {
	return s.err
}

func (s *ReaderSource) sealed() {}

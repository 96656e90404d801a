package sources

// StringSource cursors over an in-memory string. It never copies and never
// runs out of lookahead.
type StringSource struct {
	text string
	pos  int
}

var _ Source = new(StringSource)

func NewStringSource(text string) *StringSource {
	return &StringSource{
		text: text,
	}
}

func (s *StringSource) byteAt(i int) byte {
	if i < len(s.text) {
		return s.text[i]
	}
	return 0
}

func (s *StringSource) Current() byte {
	return s.byteAt(s.pos)
}

func (s *StringSource) Position() int {
	return s.pos
}

func (s *StringSource) EOF() bool {
	return s.pos >= len(s.text)
}

func (s *StringSource) Peek() byte {
	return s.byteAt(s.pos + 1)
}

func (s *StringSource) Peek2() byte {
	return s.byteAt(s.pos + 2)
}

func (s *StringSource) Next() byte {
	if s.pos < len(s.text) {
		s.pos++
	}
	return s.byteAt(s.pos)
}

func (s *StringSource) Refill() error {
	return nil
}

func (s *StringSource) sealed() {}

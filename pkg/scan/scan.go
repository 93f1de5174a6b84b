package scan

import "errors"

// ErrInvalidOptions is returned when the digit bounds cannot describe any run.
var ErrInvalidOptions = errors.New("invalid scan options")

type Options struct {
	MinDigits int
	MaxDigits int
}

// DefaultOptions bounds candidates to the 9..16 digit runs that can encode
// a seconds, milliseconds or microseconds epoch value.
func DefaultOptions() Options {
	return Options{
		MinDigits: 9,
		MaxDigits: 16,
	}
}

func (o Options) validate() error {
	if o.MinDigits < 1 || o.MaxDigits < o.MinDigits {
		return ErrInvalidOptions
	}
	return nil
}

// Candidate is a maximal run of ASCII digits found in the input.
type Candidate struct {
	Text   string
	Offset int
}

func (c Candidate) Len() int {
	return len(c.Text)
}

// FirstDigit returns the leading character of the run, or 0 for an empty candidate.
func (c Candidate) FirstDigit() byte {
	if c.Text == "" {
		return 0
	}
	return c.Text[0]
}

// End returns the byte offset just past the candidate.
func (c Candidate) End() int {
	return c.Offset + len(c.Text)
}

// Scanner walks a text left to right and yields digit runs whose length is
// within the configured bounds. Runs outside the bounds are skipped whole.
type Scanner struct {
	text string
	opts Options
	pos  int
}

func NewScanner(text string, opts Options) *Scanner {
	return &Scanner{text: text, opts: opts}
}

// Next returns the next candidate, or false once the text is exhausted.
func (s *Scanner) Next() (Candidate, bool) {
	for s.pos < len(s.text) {
		if !isDigit(s.text[s.pos]) {
			s.pos++
			continue
		}

		start := s.pos
		for s.pos < len(s.text) && isDigit(s.text[s.pos]) {
			s.pos++
		}

		n := s.pos - start
		if n < s.opts.MinDigits || n > s.opts.MaxDigits {
			continue
		}
		return Candidate{Text: s.text[start:s.pos], Offset: start}, true
	}
	return Candidate{}, false
}

// Reset rewinds the scanner to the beginning of the text.
func (s *Scanner) Reset() {
	s.pos = 0
}

func Scan(text string, opts Options) ([]Candidate, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var matches []Candidate
	s := NewScanner(text, opts)
	for {
		c, ok := s.Next()
		if !ok {
			break
		}
		matches = append(matches, c)
	}
	return matches, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

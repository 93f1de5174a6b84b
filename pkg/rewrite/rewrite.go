package rewrite

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/quidome/epoch-rewrite-go/pkg/plan"
	"github.com/quidome/epoch-rewrite-go/pkg/render"
)

var (
	// ErrRead is returned when the input could not be read in full.
	ErrRead = errors.New("read input")

	// ErrWrite is returned when the rewritten output could not be written.
	ErrWrite = errors.New("write output")
)

// Apply splices the rendered value of every replaced operation into text at
// the candidate's own offset. Operations must be in document order and must
// not overlap, which is what plan.Plan produces.
func Apply(text string, operations []plan.Operation) string {
	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, op := range operations {
		if op.Action != plan.ActionReplace {
			continue
		}
		c := op.Candidate
		if c.Offset < last || c.End() > len(text) || text[c.Offset:c.End()] != c.Text {
			// Not a span of this text; leave it alone.
			continue
		}
		b.WriteString(text[last:c.Offset])
		b.WriteString(op.Rendered)
		last = c.End()
	}
	b.WriteString(text[last:])

	return b.String()
}

// Rewrite replaces every recognized timestamp in text.
func Rewrite(text string, opts render.Options) (string, plan.Stats) {
	operations := plan.Plan(text, opts)
	return Apply(text, operations), plan.Summary(operations)
}

// Copy reads all of src, rewrites it and writes the result to dst in a
// single write. Failures are wrapped with ErrRead or ErrWrite.
func Copy(dst io.Writer, src io.Reader, opts render.Options) (plan.Stats, error) {
	input, err := io.ReadAll(src)
	if err != nil {
		return plan.Stats{}, fmt.Errorf("%w: %w", ErrRead, err)
	}

	output, stats := Rewrite(string(input), opts)

	if _, err := io.WriteString(dst, output); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return stats, nil
}

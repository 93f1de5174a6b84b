package plan

import (
	"github.com/quidome/epoch-rewrite-go/pkg/epoch"
	"github.com/quidome/epoch-rewrite-go/pkg/render"
	"github.com/quidome/epoch-rewrite-go/pkg/scan"
)

// Action describes what should happen to a candidate.
type Action string

const (
	ActionReplace Action = "replace"
	ActionKeep    Action = "keep"
)

// Operation is the decision taken for one candidate.
type Operation struct {
	Candidate scan.Candidate
	Unit      epoch.Unit // zero when kept
	Rendered  string
	Action    Action
}

// Plan scans text and decides, for every candidate in document order,
// whether it is replaced and with what.
func Plan(text string, opts render.Options) []Operation {
	s := scan.NewScanner(text, scan.DefaultOptions())

	var operations []Operation
	for {
		c, ok := s.Next()
		if !ok {
			break
		}
		operations = append(operations, Decide(c, opts))
	}
	return operations
}

// Decide classifies a single candidate and renders it when accepted.
func Decide(c scan.Candidate, opts render.Options) Operation {
	ts, ok := epoch.Decode(c.Text)
	if !ok {
		return Operation{Candidate: c, Action: ActionKeep}
	}

	return Operation{
		Candidate: c,
		Unit:      ts.Unit,
		Rendered:  render.Render(ts.Time(), opts),
		Action:    ActionReplace,
	}
}

// Stats summarizes a plan.
type Stats struct {
	Candidates int
	Replaced   int
	Kept       int
	ByUnit     map[epoch.Unit]int
}

func Summary(operations []Operation) Stats {
	stats := Stats{ByUnit: make(map[epoch.Unit]int)}
	for _, op := range operations {
		stats.Candidates++
		if op.Action == ActionReplace {
			stats.Replaced++
			stats.ByUnit[op.Unit]++
			continue
		}
		stats.Kept++
	}
	return stats
}

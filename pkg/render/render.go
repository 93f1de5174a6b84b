package render

import (
	"time"

	"github.com/ncruces/go-strftime"
)

const dateTimeLayout = "2006-01-02T15:04:05"

// Options controls how a decoded timestamp is written back into the text.
type Options struct {
	// Format is a strftime-style pattern. Empty selects the extended
	// RFC 3339 rendering.
	Format string

	// Local renders in Location instead of UTC.
	Local bool

	// Stringify wraps the rendered value in double quotes.
	Stringify bool

	// Location is used when Local is set. If nil, time.Local is used.
	Location *time.Location
}

// Render formats t according to opts. It never fails: pattern directives the
// strftime library does not understand are left to its own output.
func Render(t time.Time, opts Options) string {
	if opts.Local {
		loc := opts.Location
		if loc == nil {
			loc = time.Local
		}
		t = t.In(loc)
	} else {
		t = t.UTC()
	}

	var out string
	if opts.Format != "" {
		out = strftime.Format(opts.Format, t)
	} else {
		out = Extended(t)
	}

	if opts.Stringify {
		return `"` + out + `"`
	}
	return out
}

// Extended renders t as YYYY-MM-DDThh:mm:ss with the shortest of 0, 3, 6 or
// 9 fractional digits that holds the sub-second part exactly, followed by Z
// for a zero offset or ±hh:mm otherwise.
func Extended(t time.Time) string {
	layout := dateTimeLayout
	switch ns := t.Nanosecond(); {
	case ns == 0:
	case ns%1_000_000 == 0:
		layout += ".000"
	case ns%1_000 == 0:
		layout += ".000000"
	default:
		layout += ".000000000"
	}
	return t.Format(layout + "Z07:00")
}

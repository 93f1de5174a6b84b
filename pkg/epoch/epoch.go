package epoch

import (
	"strconv"
	"time"
)

// IntermediateBound is the first leading digit rejected for the longer
// length of each unit. Leading digits 1-4 stay before the year ~2128.
const IntermediateBound byte = '5'

// Unit is the granularity assigned to a candidate.
type Unit int

const (
	Seconds Unit = iota + 1
	Milliseconds
	Microseconds
)

// Divisor maps a raw value in this unit to whole seconds.
func (u Unit) Divisor() int64 {
	switch u {
	case Seconds:
		return 1
	case Milliseconds:
		return 1_000
	case Microseconds:
		return 1_000_000
	default:
		return 0
	}
}

func (u Unit) String() string {
	switch u {
	case Seconds:
		return "seconds"
	case Milliseconds:
		return "milliseconds"
	case Microseconds:
		return "microseconds"
	default:
		return "unknown"
	}
}

// Classify returns the unit for a digit run of the given length and leading
// digit, or false when the run is not a supported timestamp.
func Classify(length int, first byte) (Unit, bool) {
	var unit Unit
	switch length {
	case 9, 10:
		unit = Seconds
	case 12, 13:
		unit = Milliseconds
	case 15, 16:
		unit = Microseconds
	default:
		return 0, false
	}

	if isIntermediate(length) && first >= IntermediateBound {
		return 0, false
	}
	return unit, true
}

func isIntermediate(length int) bool {
	return length == 10 || length == 13 || length == 16
}

// Timestamp is a decoded candidate: whole seconds since the epoch plus the
// remainder left over after dividing by the unit's divisor.
type Timestamp struct {
	Seconds   int64
	Remainder int64
	Unit      Unit
}

// Time returns the timestamp in UTC. The remainder is carried as the
// nanosecond component.
func (ts Timestamp) Time() time.Time {
	return time.Unix(ts.Seconds, ts.Remainder).UTC()
}

// Decode classifies a digit run and splits its value by the unit divisor.
// Text that is not purely ASCII digits, or does not fit in an int64, is
// rejected rather than guessed at.
func Decode(text string) (Timestamp, bool) {
	if text == "" {
		return Timestamp{}, false
	}

	unit, ok := Classify(len(text), text[0])
	if !ok {
		return Timestamp{}, false
	}

	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return Timestamp{}, false
		}
	}

	ticks, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Timestamp{}, false
	}

	divisor := unit.Divisor()
	return Timestamp{
		Seconds:   ticks / divisor,
		Remainder: ticks % divisor,
		Unit:      unit,
	}, true
}

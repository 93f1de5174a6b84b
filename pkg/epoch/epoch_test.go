package epoch

import (
	"strings"
	"testing"
	"time"
)

func TestClassify_NaturalLengthsAlwaysAccepted(t *testing.T) {
	testCases := []struct {
		length int
		want   Unit
	}{
		{length: 9, want: Seconds},
		{length: 12, want: Milliseconds},
		{length: 15, want: Microseconds},
	}

	for _, tc := range testCases {
		for d := byte('0'); d <= '9'; d++ {
			got, ok := Classify(tc.length, d)
			if !ok {
				t.Fatalf("length %d leading %q: expected accepted", tc.length, d)
			}
			if got != tc.want {
				t.Fatalf("length %d leading %q: expected %s, got %s", tc.length, d, tc.want, got)
			}
		}
	}
}

func TestClassify_IntermediateLengthsBoundedByLeadingDigit(t *testing.T) {
	testCases := []struct {
		length int
		want   Unit
	}{
		{length: 10, want: Seconds},
		{length: 13, want: Milliseconds},
		{length: 16, want: Microseconds},
	}

	for _, tc := range testCases {
		for d := byte('0'); d <= '9'; d++ {
			got, ok := Classify(tc.length, d)
			wantOK := d < '5'
			if ok != wantOK {
				t.Fatalf("length %d leading %q: expected accepted=%v, got %v", tc.length, d, wantOK, ok)
			}
			if ok && got != tc.want {
				t.Fatalf("length %d leading %q: expected %s, got %s", tc.length, d, tc.want, got)
			}
		}
	}
}

func TestClassify_UnsupportedLengthsRejected(t *testing.T) {
	for _, length := range []int{0, 1, 8, 11, 14, 17, 20} {
		if unit, ok := Classify(length, '1'); ok {
			t.Fatalf("length %d: expected rejection, got %s", length, unit)
		}
	}
}

func TestDecode_Scenarios(t *testing.T) {
	testCases := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "11111111", wantOK: false},
		{input: "999999999", want: "2001-09-09T01:46:39Z", wantOK: true},
		{input: "4999999999", want: "2128-06-11T08:53:19Z", wantOK: true},
		{input: "5000000000", wantOK: false},
		{input: "999999999999", want: "2001-09-09T01:46:39.000000999Z", wantOK: true},
		{input: "4999999999999", want: "2128-06-11T08:53:19.000000999Z", wantOK: true},
		{input: "5000000000000", wantOK: false},
		{input: "999999999999999", want: "2001-09-09T01:46:39.000999999Z", wantOK: true},
		{input: "4999999999999999", want: "2128-06-11T08:53:19.000999999Z", wantOK: true},
		{input: "5000000000000000", wantOK: false},
		{input: "11111111111111111", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			ts, ok := Decode(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if !ok {
				return
			}

			got := ts.Time().Format(time.RFC3339Nano)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDecode_SplitsByDivisor(t *testing.T) {
	testCases := []struct {
		input string
		want  Timestamp
	}{
		{input: "1574736728", want: Timestamp{Seconds: 1574736728, Remainder: 0, Unit: Seconds}},
		{input: "1574736728123", want: Timestamp{Seconds: 1574736728, Remainder: 123, Unit: Milliseconds}},
		{input: "1574736728123456", want: Timestamp{Seconds: 1574736728, Remainder: 123456, Unit: Microseconds}},
		{input: "000000000", want: Timestamp{Seconds: 0, Remainder: 0, Unit: Seconds}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := Decode(tc.input)
			if !ok {
				t.Fatalf("expected %q to decode", tc.input)
			}
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestDecode_RejectsNonDigits(t *testing.T) {
	for _, input := range []string{"", "12345678a", "+23456789", " 23456789", "-234567890"} {
		if _, ok := Decode(input); ok {
			t.Fatalf("expected %q to be rejected", input)
		}
	}
}

func TestDecode_BoundaryIgnoresTrailingDigits(t *testing.T) {
	// Only the leading digit decides the boundary.
	if _, ok := Decode("4" + strings.Repeat("9", 9)); !ok {
		t.Fatalf("expected leading 4 to be accepted")
	}
	if _, ok := Decode("5" + strings.Repeat("0", 9)); ok {
		t.Fatalf("expected leading 5 to be rejected")
	}
}

func TestUnit_Divisor(t *testing.T) {
	if Seconds.Divisor() != 1 || Milliseconds.Divisor() != 1_000 || Microseconds.Divisor() != 1_000_000 {
		t.Fatalf("unexpected divisors: %d %d %d", Seconds.Divisor(), Milliseconds.Divisor(), Microseconds.Divisor())
	}
	if Unit(0).Divisor() != 0 || Unit(0).String() != "unknown" {
		t.Fatalf("expected zero unit to be unknown")
	}
}

// Package timecode converts between the "M:SS.hh" race time notation used on
// official result pages and a plain seconds value.
package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatError reports a time string that does not match the expected notation.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("timecode: invalid time %q: %s", e.Input, e.Reason)
}

// Parse converts "M:SS.hh" (or "SS.hh" for sub-minute times) to seconds,
// rounded to 2 decimal places. "1:09.90" parses to 69.90.
func Parse(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &FormatError{Input: s, Reason: "empty string"}
	}

	minutes := 0
	secPart := trimmed
	if i := strings.IndexByte(trimmed, ':'); i >= 0 {
		m, err := strconv.Atoi(trimmed[:i])
		if err != nil {
			return 0, &FormatError{Input: s, Reason: "minutes not numeric"}
		}
		if m < 0 {
			return 0, &FormatError{Input: s, Reason: "negative minutes"}
		}
		minutes = m
		secPart = trimmed[i+1:]
		if strings.ContainsRune(secPart, ':') {
			return 0, &FormatError{Input: s, Reason: "more than one colon"}
		}
	}

	secs, err := strconv.ParseFloat(secPart, 64)
	if err != nil {
		return 0, &FormatError{Input: s, Reason: "seconds not numeric"}
	}
	if secs < 0 {
		return 0, &FormatError{Input: s, Reason: "negative seconds"}
	}
	// A colon-less value of a minute or more is malformed, not 60+ seconds.
	if secs >= 60 {
		return 0, &FormatError{Input: s, Reason: "seconds component out of range"}
	}

	return Round2(float64(minutes)*60 + secs), nil
}

// Format renders seconds in the canonical "M:SS.hh" form, zero-padding the
// seconds component. Format(69.9) returns "1:09.90".
func Format(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	// Round to centiseconds first so 69.999 formats as 1:10.00, not 1:09.100.
	cs := int64(math.Round(seconds * 100))
	minutes := cs / 6000
	rem := cs % 6000
	return fmt.Sprintf("%d:%02d.%02d", minutes, rem/100, rem%100)
}

// Round2 rounds to 2 decimal places, matching the precision of published
// race times.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

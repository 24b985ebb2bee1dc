package timecode

import (
	"errors"
	"math"
	"testing"
)

func TestParseValid(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1:09.90", 69.90},
		{"0:56.40", 56.40},
		{"2:01.70", 121.70},
		{"56.40", 56.40},
		{" 1:09.90 ", 69.90},
		{"1:00.00", 60.00},
		{"2:27.00", 147.00},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.in, err)
		}
		if math.Abs(got-c.want) > 0.005 {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1:xx.90", "-1:09.90", "1:-9.90", "1:09:90", "1:70.00", "69.90", "60.00", "--"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		} else {
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Errorf("Parse(%q) error is %T, want *FormatError", in, err)
			}
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{69.90, "1:09.90"},
		{56.40, "0:56.40"},
		{121.70, "2:01.70"},
		{60.00, "1:00.00"},
		{69.999, "1:10.00"},
		{5.05, "0:05.05"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for cs := int64(0); cs <= 18000; cs += 7 {
		s := float64(cs) / 100
		got, err := Parse(Format(s))
		if err != nil {
			t.Fatalf("Parse(Format(%v)): %v", s, err)
		}
		if math.Abs(got-s) > 0.005 {
			t.Fatalf("round trip %v -> %q -> %v", s, Format(s), got)
		}
	}
}

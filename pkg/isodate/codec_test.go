package isodate

import (
	"testing"
	"time"
)

func mustCodec(t *testing.T, timezone string) *Codec {
	t.Helper()
	c, err := NewCodec(timezone, 0)
	if err != nil {
		t.Fatalf("NewCodec(%q): %v", timezone, err)
	}
	return c
}

func TestParseValidFormats(t *testing.T) {
	c := mustCodec(t, "UTC")

	cases := []string{
		"2025-12-15T14:30:45+09:00",
		"2025-12-15T14:30:45.123+09:00",
		"2025-12-15T14:30:45.123456+09:00",
		"2025-12-15T14:30:45Z",
		"2025-12-15T14:30:45.500Z",
		"2024-02-29T12:00:00+00:00", // leap year
		"2000-01-01T00:00:00Z",      // millennium boundary
		"1999-12-31T23:59:59-05:00",
	}
	for _, in := range cases {
		if _, err := c.Parse(in); err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", in, err)
		}
	}
}

func TestParseInvalidFormats(t *testing.T) {
	c := mustCodec(t, "UTC")

	cases := []string{
		"2025-12-15",
		"14:30:45",
		"2025/12/15 14:30:45",
		"not a date",
		"",
		"2025-13-01T14:30:45+09:00", // month 13
		"2025-12-32T14:30:45+09:00", // day 32
		"2025-02-29T12:00:00+00:00", // Feb 29 in a non-leap year
	}
	for _, in := range cases {
		if _, err := c.Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error, got none", in)
		}
	}
}

func TestParseOffsetDeterminesInstant(t *testing.T) {
	c := mustCodec(t, "UTC")

	utc, err := c.Parse("2025-12-15T12:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	minus5, err := c.Parse("2025-12-15T12:00:00-05:00")
	if err != nil {
		t.Fatal(err)
	}
	plus9, err := c.Parse("2025-12-15T12:00:00+09:00")
	if err != nil {
		t.Fatal(err)
	}

	if utc.Equal(minus5) || utc.Equal(plus9) || minus5.Equal(plus9) {
		t.Fatalf("same wall clock with different offsets must be different instants: %v %v %v", utc, minus5, plus9)
	}
	if got := minus5.Sub(utc); got != 5*time.Hour {
		t.Errorf("UTC-5 noon should be 5h after UTC noon, got %v", got)
	}
	if got := utc.Sub(plus9); got != 9*time.Hour {
		t.Errorf("UTC noon should be 9h after UTC+9 noon, got %v", got)
	}
}

func TestParseMidnightOffsetDifference(t *testing.T) {
	c := mustCodec(t, "UTC")

	z, err := c.Parse("2025-12-15T00:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	tokyo, err := c.Parse("2025-12-15T00:00:00+09:00")
	if err != nil {
		t.Fatal(err)
	}
	if got := z.Sub(tokyo); got != 9*time.Hour {
		t.Errorf("expected exactly 9h difference, got %v", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, tz := range []string{"UTC", "Asia/Tokyo", "America/New_York"} {
		c := mustCodec(t, tz)
		for _, in := range []string{
			"2025-12-15T14:30:45.123+09:00",
			"2025-06-01T08:00:00Z",
			"2024-02-29T23:59:59.999-08:00",
		} {
			first, err := c.Parse(in)
			if err != nil {
				t.Fatalf("tz=%s Parse(%q): %v", tz, in, err)
			}
			again, err := c.Parse(c.Format(first))
			if err != nil {
				t.Fatalf("tz=%s reparse of %q: %v", tz, c.Format(first), err)
			}
			if d := again.Sub(first); d > time.Second || d < -time.Second {
				t.Errorf("tz=%s round trip drifted by %v for %q", tz, d, in)
			}
		}
	}
}

func TestFormatReflectsDST(t *testing.T) {
	c := mustCodec(t, "America/New_York")

	winter, _ := c.Parse("2025-01-15T12:00:00Z")
	summer, _ := c.Parse("2025-07-15T12:00:00Z")

	if got := c.Format(winter); got != "2025-01-15T07:00:00.000-05:00" {
		t.Errorf("winter format = %q, want EST offset -05:00", got)
	}
	if got := c.Format(summer); got != "2025-07-15T08:00:00.000-04:00" {
		t.Errorf("summer format = %q, want EDT offset -04:00", got)
	}
}

func TestSpringForwardElapsedSeconds(t *testing.T) {
	c := mustCodec(t, "America/New_York")

	// US spring forward 2025-03-09: 01:30 EST and 03:30 EDT straddle the gap.
	// Wall clocks are 2h apart but only 1h of real time elapses.
	before, err := c.Parse("2025-03-09T01:30:00-05:00")
	if err != nil {
		t.Fatal(err)
	}
	after, err := c.Parse("2025-03-09T03:30:00-04:00")
	if err != nil {
		t.Fatal(err)
	}
	if got := after.Sub(before); got != time.Hour {
		t.Errorf("elapsed across spring forward = %v, want 1h", got)
	}
}

func TestMillenniumBoundaryDifference(t *testing.T) {
	c := mustCodec(t, "UTC")

	before, _ := c.Parse("1999-12-31T23:59:59Z")
	after, _ := c.Parse("2000-01-01T00:00:00Z")
	if got := after.Sub(before); got != time.Second {
		t.Errorf("millennium boundary difference = %v, want 1s", got)
	}
}

func TestApplyDefaultDuration(t *testing.T) {
	c := mustCodec(t, "UTC")

	start, _ := c.Parse("2025-12-09T13:00:00+09:00")

	if got := c.ApplyDefaultDuration(start, nil); !got.Equal(start.Add(time.Hour)) {
		t.Errorf("inferred end = %v, want start+1h", got)
	}

	explicit := start.Add(25 * time.Minute)
	if got := c.ApplyDefaultDuration(start, &explicit); !got.Equal(explicit) {
		t.Errorf("explicit end changed: got %v want %v", got, explicit)
	}
}

func TestApplyConfiguredDuration(t *testing.T) {
	c, err := NewCodec("UTC", 90*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	start, _ := c.Parse("2025-12-09T13:00:00Z")
	if got := c.ApplyDefaultDuration(start, nil); !got.Equal(start.Add(90 * time.Minute)) {
		t.Errorf("inferred end = %v, want start+90m", got)
	}
}

func TestIsPast(t *testing.T) {
	c := mustCodec(t, "UTC")
	fixed, _ := c.Parse("2025-12-15T12:00:00Z")
	c.SetClock(func() time.Time { return fixed })

	if !c.IsPast(fixed.Add(-time.Second)) {
		t.Error("instant before now should be past")
	}
	if c.IsPast(fixed) {
		t.Error("now itself is not strictly past")
	}
	if c.IsPast(fixed.Add(time.Second)) {
		t.Error("instant after now should not be past")
	}
}

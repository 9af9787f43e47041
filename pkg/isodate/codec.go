package isodate

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidFormat is returned when a string is not a valid ISO-8601 date-time
// or names an impossible calendar date.
var ErrInvalidFormat = errors.New("invalid ISO-8601 date-time")

const (
	// layoutFractional accepts an extended-format timestamp with fractional
	// seconds and a numeric offset or Z.
	layoutFractional = "2006-01-02T15:04:05.999999999Z07:00"

	// layoutPlain is the non-fractional fallback grammar.
	layoutPlain = time.RFC3339

	// layoutOutput always carries fractional seconds on the wire.
	layoutOutput = "2006-01-02T15:04:05.000Z07:00"
)

// DefaultDuration is applied when an event has no explicit end time.
const DefaultDuration = 60 * time.Minute

// Codec converts between textual ISO-8601 timestamps and absolute instants
// for one IANA timezone.
type Codec struct {
	location        *time.Location
	defaultDuration time.Duration
	now             func() time.Time
}

// NewCodec creates a codec for the given IANA timezone string, e.g.
// "Asia/Tokyo". An empty timezone selects the system timezone. A
// non-positive defaultDuration falls back to DefaultDuration.
func NewCodec(timezone string, defaultDuration time.Duration) (*Codec, error) {
	loc := time.Local
	if timezone != "" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
		}
	}
	if defaultDuration <= 0 {
		defaultDuration = DefaultDuration
	}
	return &Codec{
		location:        loc,
		defaultDuration: defaultDuration,
		now:             time.Now,
	}, nil
}

// SetClock overrides the time source. Intended for tests.
func (c *Codec) SetClock(now func() time.Time) {
	if now != nil {
		c.now = now
	}
}

// Parse decodes an ISO-8601 extended-format timestamp with an explicit numeric
// offset or Z. The fractional-seconds grammar is tried first, then the plain
// grammar. The offset embedded in the string determines the absolute instant;
// the result is expressed in the codec's timezone.
func (c *Codec) Parse(text string) (time.Time, error) {
	t, err := time.Parse(layoutFractional, text)
	if err != nil {
		t, err = time.Parse(layoutPlain, text)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	return t.In(c.location), nil
}

// Format renders an instant in the codec's timezone, always with fractional
// seconds and the offset in force at that instant (DST-correct).
func (c *Codec) Format(t time.Time) string {
	return t.In(c.location).Format(layoutOutput)
}

// ApplyDefaultDuration returns end unchanged when present, otherwise
// start plus the configured default duration.
func (c *Codec) ApplyDefaultDuration(start time.Time, end *time.Time) time.Time {
	if end != nil {
		return *end
	}
	return start.Add(c.defaultDuration)
}

// IsPast reports whether the instant is strictly before now. The clock is
// consulted on every call.
func (c *Codec) IsPast(t time.Time) bool {
	return t.Before(c.now())
}

// Now returns the current instant in the codec's timezone.
func (c *Codec) Now() time.Time {
	return c.now().In(c.location)
}

// Location exposes the codec's timezone.
func (c *Codec) Location() *time.Location {
	return c.location
}

package datemath

import (
	"fmt"
	"time"
)

// Clock reports the current time in a fixed location.
type Clock struct {
	location *time.Location
	now      func() time.Time
}

// NewClock creates a Clock for the given IANA timezone. An empty timezone means local time.
func NewClock(timezone string) (*Clock, error) {
	loc := time.Local
	if timezone != "" {
		var err error
		if loc, err = time.LoadLocation(timezone); err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
		}
	}
	return &Clock{location: loc, now: time.Now}, nil
}

// Now returns the current time in the clock's location.
func (c *Clock) Now() time.Time {
	return c.now().In(c.location)
}

// Context renders the realtime information block for now.
func (c *Clock) Context() string {
	return RealtimeContext(c.Now())
}

// RealtimeContext renders the realtime information block for t.
func RealtimeContext(t time.Time) string {
	weekStart, weekEnd := WeekBounds(t)
	return fmt.Sprintf(RealtimeTemplate,
		t.Weekday().String(),
		t.Day(),
		t.Month().String(),
		t.Year(),
		t.Hour(), t.Minute(), t.Second(),
		t.Format(DateFormatISO),
		weekStart.Format(DateFormatISO),
		weekEnd.Format(DateFormatISO),
		t.AddDate(0, 0, 1).Format(DateFormatISO),
	)
}

// WeekBounds returns the Monday and Sunday of t's week.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	start := StartOfDay(t.AddDate(0, 0, -(weekday - 1)))
	return start, start.AddDate(0, 0, 6)
}

// StartOfDay returns midnight at the start of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

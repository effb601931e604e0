package civiltime

import (
	"fmt"
	"time"
)

const dayKeyFormat = "2006-01-02"

// Calendar converts absolute instants into civil-calendar values as
// observed in one fixed named timezone. All attendance bucketing goes
// through a Calendar; nothing else in the codebase does offset math.
type Calendar struct {
	loc *time.Location
}

// NewCalendar loads the named timezone from the tz database. The policy
// zone (America/La_Paz) has no DST transitions today, but the conversion
// still goes through the real database so a future policy change stays
// correct.
func NewCalendar(tzName string) (*Calendar, error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tzName, err)
	}
	return &Calendar{loc: loc}, nil
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// CivilDayKey returns the calendar date of instant as observed in the
// calendar's timezone, formatted YYYY-MM-DD.
//
// A shift that crosses local midnight is not stitched together: each mark
// belongs to the civil day of its own instant. Known limitation.
func (c *Calendar) CivilDayKey(instant time.Time) string {
	return instant.In(c.loc).Format(dayKeyFormat)
}

// MinutesOfDay returns local clock minutes since local midnight, in [0, 1440).
func (c *Calendar) MinutesOfDay(instant time.Time) int {
	local := instant.In(c.loc)
	return local.Hour()*60 + local.Minute()
}

// IsRestDay reports whether the local weekday of instant is Sunday.
func (c *Calendar) IsRestDay(instant time.Time) bool {
	return instant.In(c.loc).Weekday() == time.Sunday
}

// ParseDayKey parses a YYYY-MM-DD key into local midnight of that day.
func (c *Calendar) ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dayKeyFormat, key, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// DayKeys returns every civil day key from start to end inclusive.
func (c *Calendar) DayKeys(start, end string) ([]string, error) {
	from, err := c.ParseDayKey(start)
	if err != nil {
		return nil, err
	}
	to, err := c.ParseDayKey(end)
	if err != nil {
		return nil, err
	}

	var keys []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(dayKeyFormat))
	}
	return keys, nil
}

package kicks

import "time"

// DayStart returns midnight of t's calendar day in the given timezone.
func DayStart(t time.Time, tz *time.Location) time.Time {
	lt := t.In(tz)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, tz)
}

// ParseTimezone parses an IANA timezone name, falling back to UTC.
func ParseTimezone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

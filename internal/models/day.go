package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DayLayout is the wire and storage format of a Day
const DayLayout = "2006-01-02"

// unixEpochDay is the Day value of 1970-01-01. Day values start at 1 on
// 0001-01-01 so the zero value can mean "no date".
const unixEpochDay = 719163

// Day is a civil calendar day with no time-of-day or time zone.
// The zero value is not a valid day and is used for missing or
// unparseable dates.
type Day int32

// DayOf returns the calendar day of t as seen in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return DateOf(y, m, d)
}

// DateOf builds a Day from year, month and day-of-month. Out of range
// values are normalized the same way time.Date normalizes them.
func DateOf(year int, month time.Month, day int) Day {
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Day(midnight.Unix()/86400 + unixEpochDay)
}

// Today returns the calendar day of now in loc. A nil loc means UTC.
func Today(now time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.UTC
	}
	return DayOf(now.In(loc))
}

// ParseDay parses a calendar day. It accepts a bare date (2006-01-02) or
// an RFC 3339 timestamp, in which case the date is taken as written,
// without converting the timestamp to another zone.
// The zero day is reserved for missing dates and is never returned.
func ParseDay(s string) (Day, error) {
	d, err := parseDay(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if d.IsZero() {
		return 0, fmt.Errorf("date %q is out of range", s)
	}
	return d, nil
}

func parseDay(s string) (Day, error) {
	if s == "" {
		return 0, fmt.Errorf("empty date")
	}
	if len(s) == len(DayLayout) {
		t, err := time.Parse(DayLayout, s)
		if err != nil {
			return 0, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return DayOf(t), nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return DayOf(t), nil
		}
	}
	return 0, fmt.Errorf("invalid date %q", s)
}

// MustParseDay is ParseDay for literals; it panics on bad input.
func MustParseDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether d is the zero (missing) day
func (d Day) IsZero() bool {
	return d <= 0
}

// Time returns midnight UTC of the day
func (d Day) Time() time.Time {
	return time.Unix(int64(d-unixEpochDay)*86400, 0).UTC()
}

// In returns midnight of the day in loc
func (d Day) In(loc *time.Location) time.Time {
	y, m, dd := d.Time().Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, loc)
}

// AddDays returns the day n days after d (n may be negative)
func (d Day) AddDays(n int) Day {
	return d + Day(n)
}

// Sub returns the number of days from other to d
func (d Day) Sub(other Day) int {
	return int(d - other)
}

// Weekday returns the day of the week
func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// WeekStart returns the Monday of d's ISO week
func (d Day) WeekStart() Day {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// MonthStart returns the first day of d's month
func (d Day) MonthStart() Day {
	y, m, _ := d.Time().Date()
	return DateOf(y, m, 1)
}

// MonthEnd returns the last day of d's month
func (d Day) MonthEnd() Day {
	y, m, _ := d.Time().Date()
	return DateOf(y, m+1, 1).AddDays(-1)
}

// String formats the day as 2006-01-02, or "" for the zero day
func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DayLayout)
}

// MarshalJSON encodes the day as "2006-01-02", or null when zero
func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a day leniently: null, empty and unparseable
// strings all decode to the zero day instead of failing the whole
// document. Callers that need a date validate it explicitly.
func (d *Day) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = 0
		return nil
	}
	parsed, err := ParseDay(s)
	if err != nil {
		*d = 0
		return nil
	}
	*d = parsed
	return nil
}

// Value stores the day as a 2006-01-02 string
func (d Day) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan reads a day from DATE/TEXT columns. Unparseable values scan to the
// zero day so one corrupt row does not fail a whole listing.
func (d *Day) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = 0
	case time.Time:
		*d = DayOf(v)
	case string:
		*d, _ = ParseDay(v)
	case []byte:
		*d, _ = ParseDay(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Day", src)
	}
	return nil
}

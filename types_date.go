package finbook

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// MonthFormat is the format used to represent months as strings, and as keys
// in the persisted state ("2024-01").
const MonthFormat = "2006-01"

const readMonthFormat = "2006-1" // permissive read month format

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month period containing the date.
func (d Date) Month() Month { return NewMonth(d.y, d.m) }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := ParseDate(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Month represents a calendar year+month bucket, the unit of balance
// projection. The zero value is no month at all and sorts before any real one.
type Month struct {
	y int        // year
	m time.Month // month
}

// NewMonth returns a normalized Month for the given year and month.
// Out-of-range months wrap into the adjacent years, like time.Date does.
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{t.Year(), t.Month()}
}

// Horizon is the far-future cutoff month used when a recurring item has no
// explicit end date.
var Horizon = NewMonth(2099, time.December)

// ThisMonth returns the month containing the current date.
func ThisMonth() Month { return Today().Month() }

// Year returns the month's year.
func (m Month) Year() int { return m.y }

// Mon returns the month within the year.
func (m Month) Mon() time.Month { return m.m }

// String formats the month as its persisted key, e.g. "2024-01".
func (m Month) String() string { return m.time().Format(MonthFormat) }

// IsZero returns true if the month is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

func (m Month) time() time.Time { return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC) }

// First returns the first day of the month.
func (m Month) First() Date { return NewDate(m.y, m.m, 1) }

// Add returns the month i months later (or earlier for negative i).
func (m Month) Add(i int) Month { return NewMonth(m.y, m.m+time.Month(i)) }

// Next returns the following month.
func (m Month) Next() Month { return m.Add(1) }

// Prev returns the preceding month.
func (m Month) Prev() Month { return m.Add(-1) }

// Before reports whether m is strictly before x.
func (m Month) Before(x Month) bool { return m.y < x.y || (m.y == x.y && m.m < x.m) }

// After reports whether m is strictly after x.
func (m Month) After(x Month) bool { return x.Before(m) }

// Compare returns -1, 0 or 1 depending on the chronological order of m and x.
// It is usable as a slices.SortFunc comparator.
func (m Month) Compare(x Month) int {
	switch {
	case m.Before(x):
		return -1
	case m.After(x):
		return 1
	default:
		return 0
	}
}

// Sub returns the number of months from x to m. It is zero for the same
// month, positive when m is after x.
func (m Month) Sub(x Month) int { return (m.y-x.y)*12 + int(m.m-x.m) }

// ParseMonth parses a Month from its key form. It is lenient and accepts
// "2024-1" as well as "2024-01".
func ParseMonth(str string) (Month, error) {
	str = strings.TrimSpace(str)
	t, err := time.Parse(readMonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return NewMonth(t.Year(), t.Month()), nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	m, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// UnmarshalJSON implements the json specific way to unmarshall a month from a json string.
func (j *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	m, err := ParseMonth(str)
	if err != nil {
		return err
	}
	*j = m
	return nil
}

func (j Month) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Month pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Month)(nil)
var _ json.Unmarshaler = (*Month)(nil)

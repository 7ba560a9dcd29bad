// Package date provides a day-granularity Date type and the calendar
// derivations used by B3 statement reports: Brazilian dd/mm/yyyy parsing,
// Portuguese month names in fixed calendar order, and ISO week numbers.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// BRFormat is the day/month/year format used by B3 statement extracts.
const BRFormat = "02/01/2006"

// Format is the format used to represent dates as strings in ISO-8601 format.
const Format = "2006-01-02"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// ISOWeek returns the ISO 8601 week number in which d occurs.
func (d Date) ISOWeek() int {
	_, week := d.time().ISOWeek()
	return week
}

// MonthName returns the Portuguese name of the date's month.
func (d Date) MonthName() string { return MonthName(d.m) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Compare returns -1, 0 or +1 depending on whether d is before, on, or after x.
// It is the comparison function used to keep statements in chronological order.
func Compare(d, x Date) int { return d.time().Compare(x.time()) }

// String formats the date in its ISO-8601 form.
func (d Date) String() string { return d.time().Format(Format) }

// BRString formats the date the way B3 extracts do (dd/mm/yyyy).
func (d Date) BRString() string { return d.time().Format(BRFormat) }

// Parse parses a Date from a B3 statement string in dd/mm/yyyy form.
// The format is strict: a statement with any unparseable date is rejected.
func Parse(str string) (Date, error) {
	on, err := time.Parse(BRFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, BRFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (j Date) MarshalJSON() ([]byte, error) {
	str := j.BRString()
	return json.Marshal(&str)
}

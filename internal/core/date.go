package core

import (
	"errors"
	"time"
)

// Date is a calendar day. It carries no clock or zone information so that
// month/year extraction and comparisons follow calendar semantics instead
// of elapsed-time arithmetic.
type Date struct {
	time.Time
}

var ErrInvalidDate = errors.New("invalid date")

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month as 1-12.
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

// InMonth reports whether the date falls in the given calendar month.
func (d Date) InMonth(year, month int) bool {
	return d.Year() == year && d.Month() == month
}

// SameDay reports whether two dates name the same calendar day.
func (d Date) SameDay(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month() && d.Day() == other.Day()
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// MarshalJSON encodes the date as an ISO-8601 calendar-date string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string, rejecting anything else.
func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

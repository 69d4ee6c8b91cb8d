// Package dateutil centralizes the calendar-date arithmetic shared by the
// consistency calendar, the streak endpoints and the challenge tracker.
// A Date is a civil calendar day (no time-of-day, no timezone); all
// arithmetic is anchored to UTC midnights so day diffs are DST-proof.
package dateutil

import (
	"fmt"
	"regexp"
	"time"
)

const layout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date is a calendar date in YYYY-MM-DD form.
type Date string

// Parse validates s and returns it as a Date.
func Parse(s string) (Date, error) {
	if !dateRe.MatchString(s) {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	if _, err := time.Parse(layout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(s), nil
}

// Today returns the current calendar date in the given location.
func Today(loc *time.Location) Date {
	return FromTime(time.Now().In(loc))
}

// FromTime truncates t to its calendar date.
func FromTime(t time.Time) Date {
	return Date(t.Format(layout))
}

func (d Date) String() string { return string(d) }

// Valid reports whether d parses as a real calendar date.
func (d Date) Valid() bool {
	_, err := Parse(string(d))
	return err == nil
}

// Time returns the UTC midnight of d. Invalid dates map to the zero time.
func (d Date) Time() time.Time {
	t, err := time.Parse(layout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays returns d shifted by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// MonthKey returns the YYYY-MM prefix of d.
func (d Date) MonthKey() string {
	if len(d) < 7 {
		return ""
	}
	return string(d[:7])
}

// DaysBetween returns b - a in whole calendar days.
func DaysBetween(a, b Date) int {
	return int(b.Time().Sub(a.Time()) / (24 * time.Hour))
}

// MonthKey formats a year/month pair as YYYY-MM.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the 1st of the month (Sunday = 0).
func FirstWeekday(year, month int) time.Weekday {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// DateOf builds the Date for a specific day of a month.
func DateOf(year, month, day int) Date {
	return FromTime(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}

package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, Date("2025-03-14"), d)

	for _, bad := range []string{"", "2025-3-14", "14-03-2025", "2025-03-14T00:00:00Z", "2025-13-01", "2025-02-30"} {
		_, err := Parse(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestAddDays(t *testing.T) {
	d := Date("2025-01-31")
	assert.Equal(t, Date("2025-02-01"), d.AddDays(1))
	assert.Equal(t, Date("2025-01-30"), d.AddDays(-1))

	// Leap year rollover
	assert.Equal(t, Date("2024-02-29"), Date("2024-02-28").AddDays(1))
	assert.Equal(t, Date("2025-03-01"), Date("2025-02-28").AddDays(1))

	// Year boundary
	assert.Equal(t, Date("2026-01-01"), Date("2025-12-31").AddDays(1))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween("2025-06-10", "2025-06-10"))
	assert.Equal(t, 1, DaysBetween("2025-06-10", "2025-06-11"))
	assert.Equal(t, -1, DaysBetween("2025-06-11", "2025-06-10"))
	assert.Equal(t, 365, DaysBetween("2025-01-01", "2026-01-01"))
	// Across a DST boundary (dates are UTC-anchored, so still exact)
	assert.Equal(t, 1, DaysBetween("2025-03-09", "2025-03-10"))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-06", Date("2025-06-10").MonthKey())
	assert.Equal(t, "2025-06", MonthKey(2025, 6))
	assert.Equal(t, "2025-12", MonthKey(2025, 12))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, 1))
	assert.Equal(t, 28, DaysInMonth(2025, 2))
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 30, DaysInMonth(2025, 4))
	assert.Equal(t, 31, DaysInMonth(2025, 12))
}

func TestFirstWeekday(t *testing.T) {
	// June 1, 2025 was a Sunday.
	assert.Equal(t, time.Sunday, FirstWeekday(2025, 6))
	// September 1, 2025 was a Monday.
	assert.Equal(t, time.Monday, FirstWeekday(2025, 9))
}

func TestDateOf(t *testing.T) {
	assert.Equal(t, Date("2025-06-05"), DateOf(2025, 6, 5))
	assert.Equal(t, Date("2025-01-09"), DateOf(2025, 1, 9))
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, Date("2025-06-10"), FromTime(ts))
}

package calendarview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innerCalmAPI/internal/dateutil"
	"innerCalmAPI/internal/types/consistency"
)

func strPtr(s string) *string { return &s }

func rangeFixture(startMonth string, streak int) *consistency.RangeResponse {
	return &consistency.RangeResponse{
		StartMonth:    strPtr(startMonth),
		CurrentMonth:  "2025-06",
		CurrentStreak: streak,
	}
}

func monthFixture(year, month int, activeDays ...int) *consistency.MonthResponse {
	active := make(map[int]bool, len(activeDays))
	for _, d := range activeDays {
		active[d] = true
	}

	resp := &consistency.MonthResponse{Year: year, Month: month}
	for day := 1; day <= dateutil.DaysInMonth(year, month); day++ {
		resp.Days = append(resp.Days, &consistency.Day{
			Date:   dateutil.DateOf(year, month, day),
			Active: active[day],
		})
	}
	return resp
}

// cellFor skips the leading blanks and returns the cell for a day number.
func cellFor(t *testing.T, view *MonthView, day int) *DayCell {
	t.Helper()
	for _, c := range view.Cells {
		if c != nil && c.Date.Time().Day() == day {
			return c
		}
	}
	t.Fatalf("no cell for day %d", day)
	return nil
}

func TestNavigatorClampsAtBounds(t *testing.T) {
	today := dateutil.Date("2025-06-15")
	nav := NewNavigator(rangeFixture("2025-05", 0), today)

	assert.Equal(t, 2025, nav.Year)
	assert.Equal(t, 6, nav.Month)
	assert.True(t, nav.CanGoBack())
	assert.False(t, nav.CanGoForward(), "current month is the forward bound")

	// Forward from the current month stays put.
	assert.False(t, nav.Next())
	assert.Equal(t, 6, nav.Month)

	require.True(t, nav.Prev())
	assert.Equal(t, 5, nav.Month)
	assert.False(t, nav.CanGoBack(), "start month is the backward bound")
	assert.False(t, nav.Prev())
	assert.Equal(t, 5, nav.Month)

	require.True(t, nav.Next())
	assert.Equal(t, 6, nav.Month)
}

func TestNavigatorYearBoundary(t *testing.T) {
	today := dateutil.Date("2025-01-10")
	nav := NewNavigator(rangeFixture("2024-11", 0), today)

	require.True(t, nav.Prev())
	assert.Equal(t, 2024, nav.Year)
	assert.Equal(t, 12, nav.Month)

	require.True(t, nav.Next())
	assert.Equal(t, 2025, nav.Year)
	assert.Equal(t, 1, nav.Month)
}

func TestNavigatorNilRangeDisablesNavigation(t *testing.T) {
	nav := NewNavigator(nil, dateutil.Date("2025-06-15"))

	assert.False(t, nav.CanGoBack())
	assert.False(t, nav.CanGoForward())
	assert.False(t, nav.Prev())
	assert.False(t, nav.Next())
}

func TestBuildEmptyState(t *testing.T) {
	today := dateutil.Date("2025-06-15")

	view := Build(nil, nil, today, NewNavigator(nil, today))
	assert.True(t, view.Empty)
	assert.Empty(t, view.Cells)

	noHistory := &consistency.RangeResponse{CurrentMonth: "2025-06"}
	view = Build(noHistory, nil, today, NewNavigator(noHistory, today))
	assert.True(t, view.Empty)
}

func TestBuildWeekdayAlignment(t *testing.T) {
	today := dateutil.Date("2025-06-15")
	rng := rangeFixture("2025-06", 0)
	nav := NewNavigator(rng, today)

	view := Build(rng, monthFixture(2025, 6), today, nav)

	// June 1, 2025 was a Sunday: no leading blanks, 30 cells.
	require.Len(t, view.Cells, 30)
	assert.NotNil(t, view.Cells[0])

	// September 1, 2025 was a Monday: one leading blank.
	nav2 := &Navigator{Year: 2025, Month: 9}
	view2 := Build(rng, monthFixture(2025, 9), today, nav2)
	require.Len(t, view2.Cells, 31)
	assert.Nil(t, view2.Cells[0])
	assert.NotNil(t, view2.Cells[1])
}

func TestBuildFutureDaysAlwaysNeutral(t *testing.T) {
	today := dateutil.Date("2025-06-15")
	rng := rangeFixture("2025-06", 10)
	nav := NewNavigator(rng, today)

	// Backend claims day 20 is active even though it is in the future.
	view := Build(rng, monthFixture(2025, 6, 14, 15, 20), today, nav)

	c := cellFor(t, view, 20)
	assert.True(t, c.IsFuture)
	assert.False(t, c.Active)
	assert.False(t, c.InStreak)

	assert.True(t, cellFor(t, view, 15).IsToday)
	assert.True(t, cellFor(t, view, 14).Active)
}

func TestBuildFlameWindow(t *testing.T) {
	today := dateutil.Date("2025-06-15")
	rng := rangeFixture("2025-06", 7)
	nav := NewNavigator(rng, today)

	// Active on days 8..15 (8 days); streak says 7, so day 8 is outside
	// the highlight window.
	view := Build(rng, monthFixture(2025, 6, 8, 9, 10, 11, 12, 13, 14, 15), today, nav)

	assert.True(t, view.ShowFlame)
	for day := 9; day <= 15; day++ {
		assert.True(t, cellFor(t, view, day).InStreak, "day %d should be highlighted", day)
	}
	assert.False(t, cellFor(t, view, 8).InStreak)
}

func TestBuildNoFlameBelowThreshold(t *testing.T) {
	today := dateutil.Date("2025-06-15")
	rng := rangeFixture("2025-06", 6)
	nav := NewNavigator(rng, today)

	view := Build(rng, monthFixture(2025, 6, 10, 11, 12, 13, 14, 15), today, nav)

	assert.False(t, view.ShowFlame)
	for day := 10; day <= 15; day++ {
		assert.False(t, cellFor(t, view, day).InStreak)
	}
}

func TestBuildNilMonthRendersInactiveGrid(t *testing.T) {
	today := dateutil.Date("2025-06-15")
	rng := rangeFixture("2025-05", 3)
	nav := NewNavigator(rng, today)

	view := Build(rng, nil, today, nav)
	assert.False(t, view.Empty)
	require.Len(t, view.Cells, 30)
	for _, c := range view.Cells {
		if c != nil {
			assert.False(t, c.Active)
		}
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "June", MonthName(6))
	assert.Equal(t, "December", MonthName(12))
}

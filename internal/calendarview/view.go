// Package calendarview shapes consistency range/month data into the
// month-grid view model the client renders: weekday-aligned day cells, a
// flame overlay over the trailing streak window, and clamped month
// navigation.
package calendarview

import (
	"time"

	"innerCalmAPI/internal/dateutil"
	"innerCalmAPI/internal/types/consistency"
)

// FlameThreshold is the minimum current streak before the flame overlay
// and streak highlighting appear at all.
const FlameThreshold = 7

// DayCell is one rendered day. A nil *DayCell in MonthView.Cells is a
// leading blank used for weekday alignment.
type DayCell struct {
	Date     dateutil.Date
	Active   bool
	IsToday  bool
	IsFuture bool
	// InStreak marks the cell as part of the highlighted trailing streak.
	InStreak bool
}

type MonthView struct {
	Year  int
	Month int
	// Empty is set for users with no history at all; the client shows the
	// "begin your journey" state instead of a grid.
	Empty         bool
	ShowFlame     bool
	CurrentStreak int
	CanGoBack     bool
	CanGoForward  bool
	Cells         []*DayCell
}

// Navigator tracks the month being viewed and clamps transitions to
// [startMonth, currentMonth]. Out-of-bounds moves are no-ops.
type Navigator struct {
	Year  int
	Month int

	startMonth   string // empty when the user has no history
	currentMonth string
}

// NewNavigator starts at the month of today. rng may be nil (range fetch
// failed or unauthenticated): navigation is then fully disabled.
func NewNavigator(rng *consistency.RangeResponse, today dateutil.Date) *Navigator {
	t := today.Time()
	n := &Navigator{
		Year:         t.Year(),
		Month:        int(t.Month()),
		currentMonth: today.MonthKey(),
	}
	if rng != nil {
		if rng.StartMonth != nil {
			n.startMonth = *rng.StartMonth
		}
		n.currentMonth = rng.CurrentMonth
	}
	return n
}

func (n *Navigator) viewMonthKey() string {
	return dateutil.MonthKey(n.Year, n.Month)
}

func (n *Navigator) CanGoBack() bool {
	return n.startMonth != "" && n.viewMonthKey() > n.startMonth
}

func (n *Navigator) CanGoForward() bool {
	return n.viewMonthKey() < n.currentMonth
}

// Prev moves one month back. Returns false (and stays put) at the bound.
func (n *Navigator) Prev() bool {
	if !n.CanGoBack() {
		return false
	}
	if n.Month == 1 {
		n.Year--
		n.Month = 12
	} else {
		n.Month--
	}
	return true
}

// Next moves one month forward. Returns false (and stays put) at the bound.
func (n *Navigator) Next() bool {
	if !n.CanGoForward() {
		return false
	}
	if n.Month == 12 {
		n.Year++
		n.Month = 1
	} else {
		n.Month++
	}
	return true
}

// Build produces the view model for the month the navigator points at.
// rng == nil or a nil StartMonth yields the empty "begin your journey"
// view. month may be nil while the fetch is in flight; the grid then
// renders all-inactive.
func Build(rng *consistency.RangeResponse, month *consistency.MonthResponse, today dateutil.Date, nav *Navigator) *MonthView {
	view := &MonthView{
		Year:  nav.Year,
		Month: nav.Month,
	}

	if rng == nil || rng.StartMonth == nil {
		view.Empty = true
		return view
	}

	view.CurrentStreak = rng.CurrentStreak
	view.ShowFlame = rng.CurrentStreak >= FlameThreshold
	view.CanGoBack = nav.CanGoBack()
	view.CanGoForward = nav.CanGoForward()

	activeByDate := make(map[dateutil.Date]bool)
	if month != nil {
		for _, d := range month.Days {
			activeByDate[d.Date] = d.Active
		}
	}

	leading := int(dateutil.FirstWeekday(nav.Year, nav.Month)) // Sunday-first
	for i := 0; i < leading; i++ {
		view.Cells = append(view.Cells, nil)
	}

	daysInMonth := dateutil.DaysInMonth(nav.Year, nav.Month)
	for day := 1; day <= daysInMonth; day++ {
		date := dateutil.DateOf(nav.Year, nav.Month, day)
		cell := &DayCell{
			Date:    date,
			Active:  activeByDate[date],
			IsToday: date == today,
		}

		age := dateutil.DaysBetween(date, today) // today - date
		cell.IsFuture = age < 0
		// Future days are always neutral, whatever the backend claims.
		if cell.IsFuture {
			cell.Active = false
		}
		cell.InStreak = cell.Active && view.ShowFlame && age >= 0 && age < rng.CurrentStreak

		view.Cells = append(view.Cells, cell)
	}

	return view
}

// MonthName is a display helper for the grid header.
func MonthName(month int) string {
	return time.Month(month).String()
}

package consistency

import "innerCalmAPI/internal/dateutil"

// Day says whether the user performed a qualifying activity on a date.
type Day struct {
	Date   dateutil.Date `json:"date"`
	Active bool          `json:"active"`
}

type MonthResponse struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Days  []*Day `json:"days"`
}

// RangeResponse bounds calendar navigation. StartMonth is nil when the
// user has no activity history at all.
type RangeResponse struct {
	StartMonth    *string `json:"startMonth"`
	CurrentMonth  string  `json:"currentMonth"`
	CurrentStreak int     `json:"currentStreak"`
}

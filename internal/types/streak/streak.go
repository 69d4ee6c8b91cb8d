package streak

import "innerCalmAPI/internal/dateutil"

type Day struct {
	Date   dateutil.Date `json:"date"`
	Active bool          `json:"active"`
}

type MarkTodayRequest struct {
	Date string `json:"date"`
}

// MarkTodayResponse echoes the date that was actually recorded, which may
// differ from the requested one when the server clamped it.
type MarkTodayResponse struct {
	Success bool          `json:"success"`
	Date    dateutil.Date `json:"date"`
}

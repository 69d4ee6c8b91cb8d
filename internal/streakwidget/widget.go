// Package streakwidget is the home-screen streak widget's client side: it
// fetches the trailing seven days of activity and fires the one-shot
// "mark today active" call when a session token is present.
package streakwidget

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"innerCalmAPI/internal/dateutil"
	"innerCalmAPI/internal/types/streak"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client

	markOnce sync.Once
}

// NewClient builds a widget client. token may be empty (signed-out state);
// MarkTodayOnce is then a no-op and LastSevenDays fails with 401 upstream.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// LastSevenDays fetches the trailing-7-day activity window.
func (c *Client) LastSevenDays(ctx context.Context) ([]streak.Day, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/streak/last-7-days", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch streak days: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("streak fetch returned status %d", resp.StatusCode)
	}

	var days []streak.Day
	if err := json.NewDecoder(resp.Body).Decode(&days); err != nil {
		return nil, fmt.Errorf("failed to decode streak days: %w", err)
	}
	return days, nil
}

// MarkTodayOnce issues the idempotent mark-today call at most once per
// client lifetime, and only when a token is present. Failures are logged
// and swallowed so the rest of the page keeps rendering.
func (c *Client) MarkTodayOnce(ctx context.Context, today dateutil.Date) {
	if c.token == "" {
		return
	}
	c.markOnce.Do(func() {
		if err := c.markToday(ctx, today); err != nil {
			log.Printf("Failed to mark streak: %v", err)
		}
	})
}

func (c *Client) markToday(ctx context.Context, today dateutil.Date) error {
	body, err := json.Marshal(streak.MarkTodayRequest{Date: today.String()})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/streak/mark-today", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("mark-today returned status %d", resp.StatusCode)
	}
	return nil
}

// WeekDay is one rendered widget slot: flame when active, neutral dot
// otherwise, ring when it is today regardless of active state.
type WeekDay struct {
	Date    dateutil.Date
	Active  bool
	IsToday bool
}

// BuildWeek shapes fetched days for rendering. A nil slice (fetch failed)
// yields seven inactive placeholders ending at today.
func BuildWeek(days []streak.Day, today dateutil.Date) []WeekDay {
	if len(days) == 0 {
		week := make([]WeekDay, 0, 7)
		for i := 6; i >= 0; i-- {
			d := today.AddDays(-i)
			week = append(week, WeekDay{Date: d, IsToday: d == today})
		}
		return week
	}

	week := make([]WeekDay, 0, len(days))
	for _, d := range days {
		week = append(week, WeekDay{
			Date:    d.Date,
			Active:  d.Active,
			IsToday: d.Date == today,
		})
	}
	return week
}

// ActiveCount counts flame days for the "N/7" label.
func ActiveCount(week []WeekDay) int {
	n := 0
	for _, d := range week {
		if d.Active {
			n++
		}
	}
	return n
}

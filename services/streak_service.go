package services

import (
	"context"
	"fmt"
	"time"

	"innerCalmAPI/internal/dateutil"
	"innerCalmAPI/internal/types/streak"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StreakService struct {
	db *pgxpool.Pool
}

func NewStreakService(db *pgxpool.Pool) *StreakService {
	return &StreakService{db: db}
}

// MarkToday records an active day for the user. Idempotent per (user, date):
// re-marking an already recorded date is a silent no-op. Dates more than one
// day away from the server clock are clamped to the server date so a skewed
// device cannot back- or forward-fill its streak.
func (s *StreakService) MarkToday(ctx context.Context, clerkID string, date dateutil.Date) (dateutil.Date, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return "", err
	}

	serverToday := dateutil.FromTime(time.Now().UTC())
	diff := dateutil.DaysBetween(date, serverToday)
	if diff > 1 || diff < -1 {
		date = serverToday
	}

	query := `
	INSERT INTO user_streaks (user_id, activity_date)
	VALUES ($1, $2::date)
	ON CONFLICT (user_id, activity_date) DO NOTHING
	`

	if _, err := s.db.Exec(ctx, query, userID, date.String()); err != nil {
		return "", fmt.Errorf("failed to mark activity: %w", err)
	}

	return date, nil
}

// LastSevenDays returns exactly seven {date, active} entries ending at the
// base date, oldest first.
func (s *StreakService) LastSevenDays(ctx context.Context, clerkID string, base dateutil.Date) ([]*streak.Day, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, 7)
	for i := 6; i >= 0; i-- {
		dates = append(dates, base.AddDays(-i).String())
	}

	query := `
	SELECT activity_date
	FROM user_streaks
	WHERE user_id = $1 AND activity_date = ANY($2::date[])
	`

	rows, err := s.db.Query(ctx, query, userID, dates)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch streak days: %w", err)
	}
	defer rows.Close()

	activeSet := make(map[dateutil.Date]bool)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		activeSet[dateutil.FromTime(d)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	days := make([]*streak.Day, 0, 7)
	for _, d := range dates {
		days = append(days, &streak.Day{
			Date:   dateutil.Date(d),
			Active: activeSet[dateutil.Date(d)],
		})
	}

	return days, nil
}

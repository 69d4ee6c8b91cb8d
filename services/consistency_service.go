package services

import (
	"context"
	"fmt"
	"time"

	"innerCalmAPI/internal/dateutil"
	"innerCalmAPI/internal/types/consistency"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ConsistencyService struct {
	db *pgxpool.Pool
}

func NewConsistencyService(db *pgxpool.Pool) *ConsistencyService {
	return &ConsistencyService{db: db}
}

// GetRange returns the navigation bounds and the current streak, both
// anchored on the calendar date the client says "today" is.
func (s *ConsistencyService) GetRange(ctx context.Context, clerkID string, today dateutil.Date) (*consistency.RangeResponse, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	var startMonth *string
	err = s.db.QueryRow(ctx, `
	SELECT to_char(MIN(activity_date), 'YYYY-MM')
	FROM user_streaks
	WHERE user_id = $1
	`, userID).Scan(&startMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to get consistency range: %w", err)
	}

	// Walk backward day by day from the most recent active date. The
	// streak only counts when that date is today or yesterday.
	streakQuery := `
	WITH RECURSIVE streak_calc AS (
		SELECT user_id, activity_date, 1 AS streak_length
		FROM user_streaks
		WHERE user_id = $1
			AND activity_date = (
				SELECT MAX(activity_date)
				FROM user_streaks
				WHERE user_id = $1 AND activity_date <= $2::date
			)
			AND activity_date >= $2::date - INTERVAL '1 day'

		UNION ALL

		SELECT us.user_id, us.activity_date, sc.streak_length + 1
		FROM user_streaks us
		INNER JOIN streak_calc sc ON us.user_id = sc.user_id
			AND us.activity_date = sc.activity_date - INTERVAL '1 day'
	)
	SELECT COALESCE(MAX(streak_length), 0) FROM streak_calc
	`

	var currentStreak int
	if err := s.db.QueryRow(ctx, streakQuery, userID, today.String()).Scan(&currentStreak); err != nil {
		return nil, fmt.Errorf("failed to calculate current streak: %w", err)
	}

	return &consistency.RangeResponse{
		StartMonth:    startMonth,
		CurrentMonth:  today.MonthKey(),
		CurrentStreak: currentStreak,
	}, nil
}

// GetMonth returns one entry per calendar day of the month. Days without a
// backing activity record default to inactive.
func (s *ConsistencyService) GetMonth(ctx context.Context, clerkID string, year, month int) (*consistency.MonthResponse, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	startDate := dateutil.DateOf(year, month, 1)
	endDate := dateutil.DateOf(year, month, dateutil.DaysInMonth(year, month))

	query := `
	SELECT activity_date
	FROM user_streaks
	WHERE user_id = $1
		AND activity_date >= $2::date
		AND activity_date <= $3::date
	ORDER BY activity_date
	`

	rows, err := s.db.Query(ctx, query, userID, startDate.String(), endDate.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch consistency month: %w", err)
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

	days := make([]*consistency.Day, 0, dateutil.DaysInMonth(year, month))
	for d := startDate; dateutil.DaysBetween(d, endDate) >= 0; d = d.AddDays(1) {
		days = append(days, &consistency.Day{
			Date:   d,
			Active: activeSet[d],
		})
	}

	return &consistency.MonthResponse{
		Year:  year,
		Month: month,
		Days:  days,
	}, nil
}

package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"innerCalmAPI/internal/dateutil"
	"innerCalmAPI/internal/types/activity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityService struct {
	db *pgxpool.Pool
}

func NewActivityService(db *pgxpool.Pool) *ActivityService {
	return &ActivityService{db: db}
}

// LogActivity records one lesson activity per (user, lesson, feature, date).
// Repeat logs for the same tuple report logged=false. The activity day also
// counts toward the streak calendar.
func (s *ActivityService) LogActivity(ctx context.Context, clerkID string, req *activity.LogRequest) (bool, dateutil.Date, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return false, "", err
	}

	serverToday := dateutil.FromTime(time.Now().UTC())
	date, parseErr := dateutil.Parse(req.Date)
	if parseErr != nil {
		date = serverToday
	}
	diff := dateutil.DaysBetween(date, serverToday)
	if diff > 1 || diff < -1 {
		date = serverToday
	}

	insertQuery := `
	INSERT INTO activity_logs (user_id, lesson_id, lesson_name, feature_type, activity_date)
	VALUES ($1, $2, $3, $4, $5::date)
	ON CONFLICT (user_id, lesson_id, feature_type, activity_date) DO NOTHING
	`

	result, err := s.db.Exec(ctx, insertQuery, userID, req.LessonID, req.LessonName, string(req.FeatureType), date.String())
	if err != nil {
		return false, "", fmt.Errorf("failed to log activity: %w", err)
	}
	logged := result.RowsAffected() > 0

	streakQuery := `
	INSERT INTO user_streaks (user_id, activity_date)
	VALUES ($1, $2::date)
	ON CONFLICT (user_id, activity_date) DO NOTHING
	`
	if _, err := s.db.Exec(ctx, streakQuery, userID, date.String()); err != nil {
		return false, "", fmt.Errorf("failed to mark streak day: %w", err)
	}

	return logged, date, nil
}

// MonthlyStats aggregates per-lesson activity counts for one month, grouped
// by feature type. Months older than six months clamp forward to the oldest
// month still served.
func (s *ActivityService) MonthlyStats(ctx context.Context, clerkID string, month string) (*activity.MonthlyStats, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if _, err := time.Parse("2006-01", month); err != nil {
		month = now.Format("2006-01")
	}
	oldest := time.Date(now.Year(), now.Month()-5, 1, 0, 0, 0, 0, time.UTC)
	if m, _ := time.Parse("2006-01", month); m.Before(oldest) {
		month = oldest.Format("2006-01")
	}

	query := `
	SELECT lesson_id, lesson_name, feature_type, COUNT(id) AS activity_count
	FROM activity_logs
	WHERE user_id = $1
		AND to_char(activity_date, 'YYYY-MM') = $2
	GROUP BY lesson_id, lesson_name, feature_type
	`

	rows, err := s.db.Query(ctx, query, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch monthly stats: %w", err)
	}
	defer rows.Close()

	stats := &activity.MonthlyStats{
		Process:   []activity.LessonCount{},
		Breath:    []activity.LessonCount{},
		Checklist: []activity.LessonCount{},
	}

	for rows.Next() {
		var item activity.LessonCount
		var featureType string
		if err := rows.Scan(&item.LessonID, &item.LessonName, &featureType, &item.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		if item.Count > stats.MaxCount {
			stats.MaxCount = item.Count
		}

		switch activity.FeatureType(featureType) {
		case activity.FeatureProcess:
			stats.Process = append(stats.Process, item)
		case activity.FeatureBreath:
			stats.Breath = append(stats.Breath, item)
		case activity.FeatureChecklist:
			stats.Checklist = append(stats.Checklist, item)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	byCountDesc := func(items []activity.LessonCount) func(i, j int) bool {
		return func(i, j int) bool { return items[i].Count > items[j].Count }
	}
	sort.Slice(stats.Process, byCountDesc(stats.Process))
	sort.Slice(stats.Breath, byCountDesc(stats.Breath))
	sort.Slice(stats.Checklist, byCountDesc(stats.Checklist))

	return stats, nil
}

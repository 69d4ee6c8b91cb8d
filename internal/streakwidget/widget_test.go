package streakwidget

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innerCalmAPI/internal/dateutil"
	"innerCalmAPI/internal/types/streak"
)

const today = dateutil.Date("2025-06-15")

func TestLastSevenDays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/streak/last-7-days", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"date":"2025-06-09","active":false},
			{"date":"2025-06-10","active":true},
			{"date":"2025-06-11","active":true},
			{"date":"2025-06-12","active":false},
			{"date":"2025-06-13","active":true},
			{"date":"2025-06-14","active":true},
			{"date":"2025-06-15","active":true}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	days, err := client.LastSevenDays(context.Background())
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, dateutil.Date("2025-06-09"), days[0].Date)
	assert.True(t, days[6].Active)
}

func TestLastSevenDaysServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "expired")
	_, err := client.LastSevenDays(context.Background())
	assert.Error(t, err)
}

func TestMarkTodayOnceFiresAtMostOnce(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/api/v1/streak/mark-today", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"success":true,"date":"2025-06-15"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	for i := 0; i < 5; i++ {
		client.MarkTodayOnce(context.Background(), today)
	}

	assert.Equal(t, int32(1), calls.Load())
}

func TestMarkTodayOnceNoTokenIsNoOp(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	client.MarkTodayOnce(context.Background(), today)

	assert.Equal(t, int32(0), calls.Load())
}

func TestMarkTodayOnceSwallowsFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	// Must not panic or surface the error.
	client.MarkTodayOnce(context.Background(), today)
}

func TestBuildWeek(t *testing.T) {
	days := []streak.Day{
		{Date: "2025-06-09", Active: false},
		{Date: "2025-06-10", Active: true},
		{Date: "2025-06-11", Active: true},
		{Date: "2025-06-12", Active: false},
		{Date: "2025-06-13", Active: true},
		{Date: "2025-06-14", Active: true},
		{Date: "2025-06-15", Active: true},
	}

	week := BuildWeek(days, today)
	require.Len(t, week, 7)
	assert.True(t, week[6].IsToday)
	assert.False(t, week[0].IsToday)
	assert.Equal(t, 5, ActiveCount(week))
}

func TestBuildWeekNilDaysRendersPlaceholders(t *testing.T) {
	week := BuildWeek(nil, today)

	require.Len(t, week, 7)
	assert.Equal(t, dateutil.Date("2025-06-09"), week[0].Date)
	assert.Equal(t, today, week[6].Date)
	assert.True(t, week[6].IsToday)
	assert.Equal(t, 0, ActiveCount(week))
}

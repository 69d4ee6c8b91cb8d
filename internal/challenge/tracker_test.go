package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innerCalmAPI/internal/dateutil"
)

const day1 = dateutil.Date("2025-06-01")

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	return NewTracker(NewMemoryStore())
}

func TestInitializeFresh(t *testing.T) {
	tr := newTestTracker(t)

	data, discarded, err := tr.Initialize("7-day", day1)
	require.NoError(t, err)
	assert.False(t, discarded)
	assert.Equal(t, "7-Day Calm Mind", data.Type)
	assert.Equal(t, 7, data.TotalDays)
	assert.Equal(t, day1, data.StartDate)
	assert.Equal(t, 0, data.CompletedDays)
	assert.Equal(t, 0, data.Streak)
	assert.False(t, data.IsCompleted)

	// Persisted immediately
	active, err := tr.Active()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, *data, *active)
}

func TestInitializeKeepsSameType(t *testing.T) {
	tr := newTestTracker(t)

	_, _, err := tr.Initialize("7-day", day1)
	require.NoError(t, err)
	_, err = tr.MarkComplete(day1)
	require.NoError(t, err)

	data, discarded, err := tr.Initialize("7-day", day1.AddDays(1))
	require.NoError(t, err)
	assert.False(t, discarded)
	assert.Equal(t, 1, data.CompletedDays, "re-entering the same challenge must not reset progress")
	assert.Equal(t, day1, data.StartDate)
}

func TestInitializeSwitchingTypeDiscardsProgress(t *testing.T) {
	tr := newTestTracker(t)

	_, _, err := tr.Initialize("7-day", day1)
	require.NoError(t, err)
	_, err = tr.MarkComplete(day1)
	require.NoError(t, err)

	data, discarded, err := tr.Initialize("21-day", day1.AddDays(1))
	require.NoError(t, err)
	assert.True(t, discarded)
	assert.Equal(t, "21-Day Mind Discipline", data.Type)
	assert.Equal(t, 21, data.TotalDays)
	assert.Equal(t, 0, data.CompletedDays)
}

func TestInitializeUnknownID(t *testing.T) {
	tr := newTestTracker(t)

	_, _, err := tr.Initialize("banana", day1)
	assert.Error(t, err)
}

func TestInitializeCorruptRecordFallsBackToFresh(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(activeKey, []byte("{not json")))
	tr := NewTracker(store)

	data, discarded, err := tr.Initialize("7-day", day1)
	require.NoError(t, err)
	assert.False(t, discarded)
	assert.Equal(t, 0, data.CompletedDays)
}

func TestMarkCompleteFirstDay(t *testing.T) {
	tr := newTestTracker(t)
	_, _, err := tr.Initialize("7-day", day1)
	require.NoError(t, err)

	res, err := tr.MarkComplete(day1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeProgressed, res.Outcome)
	assert.Equal(t, 1, res.Challenge.CompletedDays)
	assert.Equal(t, 1, res.Challenge.Streak)
	assert.False(t, res.Challenge.IsCompleted)
	assert.Equal(t, day1, res.Challenge.LastCompletedDate)
}

func TestMarkCompleteTwiceSameDay(t *testing.T) {
	tr := newTestTracker(t)
	_, _, err := tr.Initialize("7-day", day1)
	require.NoError(t, err)

	first, err := tr.MarkComplete(day1)
	require.NoError(t, err)

	second, err := tr.MarkComplete(day1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyDone, second.Outcome)
	assert.Equal(t, first.Challenge, second.Challenge, "second attempt must change nothing")
}

func TestStreakIncrementsOnConsecutiveDays(t *testing.T) {
	tr := newTestTracker(t)
	_, _, err := tr.Initialize("21-day", day1)
	require.NoError(t, err)

	_, err = tr.MarkComplete(day1)
	require.NoError(t, err)
	res, err := tr.MarkComplete(day1.AddDays(1))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Challenge.Streak)
	assert.Equal(t, 2, res.Challenge.CompletedDays)
}

func TestStreakResetsAfterGap(t *testing.T) {
	tr := newTestTracker(t)
	_, _, err := tr.Initialize("21-day", day1)
	require.NoError(t, err)

	_, err = tr.MarkComplete(day1)
	require.NoError(t, err)

	// Skip a day
	res, err := tr.MarkComplete(day1.AddDays(2))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Challenge.Streak, "a gap greater than one day resets the streak")
	assert.Equal(t, 2, res.Challenge.CompletedDays, "completed count still advances")
}

func TestCompletionArchivesAndClearsSlot(t *testing.T) {
	tr := newTestTracker(t)
	_, _, err := tr.Initialize("7-day", day1)
	require.NoError(t, err)

	var last *MarkResult
	for i := 0; i < 7; i++ {
		last, err = tr.MarkComplete(day1.AddDays(i))
		require.NoError(t, err)
	}

	assert.Equal(t, OutcomeCompleted, last.Outcome)
	assert.True(t, last.Challenge.IsCompleted)
	assert.Equal(t, 7, last.Challenge.CompletedDays)
	assert.Equal(t, 7, last.Challenge.Streak)
	require.NotNil(t, last.Archived)
	assert.Equal(t, day1.AddDays(6), last.Archived.CompletedDate)

	active, err := tr.Active()
	require.NoError(t, err)
	assert.Nil(t, active, "active slot must be cleared on completion")

	history, err := tr.History()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "7-Day Calm Mind", history[0].Type)
	assert.Equal(t, 7, history[0].Streak)
}

func TestInvariantsHoldAcrossTransitions(t *testing.T) {
	tr := newTestTracker(t)
	_, _, err := tr.Initialize("7-day", day1)
	require.NoError(t, err)

	// Mix of consecutive days, gaps and a duplicate attempt.
	offsets := []int{0, 1, 1, 3, 4, 6, 9, 10}
	for _, off := range offsets {
		res, err := tr.MarkComplete(day1.AddDays(off))
		require.NoError(t, err)

		assert.GreaterOrEqual(t, res.Challenge.CompletedDays, 0)
		assert.LessOrEqual(t, res.Challenge.CompletedDays, res.Challenge.TotalDays)
		assert.GreaterOrEqual(t, res.Challenge.Streak, 0)
		assert.Equal(t, res.Challenge.CompletedDays == res.Challenge.TotalDays, res.Challenge.IsCompleted)
	}
}

func TestMarkCompleteWithoutActiveChallenge(t *testing.T) {
	tr := newTestTracker(t)

	_, err := tr.MarkComplete(day1)
	assert.Error(t, err)
}

func TestHistoryNewestFirst(t *testing.T) {
	tr := newTestTracker(t)

	// Finish two 7-day challenges back to back.
	_, _, err := tr.Initialize("7-day", day1)
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		_, err = tr.MarkComplete(day1.AddDays(i))
		require.NoError(t, err)
	}

	restart := day1.AddDays(10)
	_, _, err = tr.Initialize("7-day", restart)
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		_, err = tr.MarkComplete(restart.AddDays(i))
		require.NoError(t, err)
	}

	history, err := tr.History()
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, restart.AddDays(6), history[0].CompletedDate)
	assert.Equal(t, day1.AddDays(6), history[1].CompletedDate)
}

func TestHistoryCorruptReadsEmpty(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(historyKey, []byte("][")))
	tr := NewTracker(store)

	history, err := tr.History()
	require.NoError(t, err)
	assert.Empty(t, history)
}

// Package challenge implements the fixed-length challenge tracker: a small
// state machine (not started -> in progress -> completed) persisted through
// an injected key-value store, one active challenge at a time plus an
// append-only history of finished ones. Nothing here talks to the network;
// the tracker is device-local by design.
package challenge

import (
	"encoding/json"
	"fmt"
	"sort"

	"innerCalmAPI/internal/dateutil"
	"innerCalmAPI/internal/types/challenge"
)

const (
	activeKey  = "@app:active_challenge"
	historyKey = "@app:challenge_history"
)

// Outcome classifies the result of a MarkComplete call.
type Outcome string

const (
	// OutcomeAlreadyDone means today was already marked; nothing changed.
	OutcomeAlreadyDone Outcome = "already_done"
	// OutcomeProgressed means the day was recorded and the challenge goes on.
	OutcomeProgressed Outcome = "progressed"
	// OutcomeCompleted means the final day was recorded; the challenge was
	// archived to history and the active slot cleared.
	OutcomeCompleted Outcome = "completed"
)

// MarkResult reports what a MarkComplete call did. Challenge holds the
// post-transition state; Archived is set only on completion.
type MarkResult struct {
	Outcome   Outcome
	Challenge challenge.Data
	Archived  *challenge.CompletedChallenge
}

type Tracker struct {
	store Store
}

func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// Active returns the current in-progress challenge, or nil when none is
// running. A corrupt record reads as nil.
func (t *Tracker) Active() (*challenge.Data, error) {
	raw, ok, err := t.store.Get(activeKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read active challenge: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var data challenge.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, nil
	}
	return &data, nil
}

// Initialize loads the persisted challenge for the given id, creating and
// persisting a fresh record when none exists or the saved one belongs to a
// different challenge type. The returned bool reports whether in-progress
// data for another type was discarded.
func (t *Tracker) Initialize(challengeID string, today dateutil.Date) (*challenge.Data, bool, error) {
	info, err := challenge.Lookup(challengeID)
	if err != nil {
		return nil, false, err
	}

	existing, err := t.Active()
	if err != nil {
		return nil, false, err
	}
	if existing != nil && existing.Type == info.Title {
		return existing, false, nil
	}

	discarded := existing != nil && existing.CompletedDays > 0

	fresh := &challenge.Data{
		Type:          info.Title,
		TotalDays:     info.TotalDays,
		StartDate:     today,
		CompletedDays: 0,
		Streak:        0,
		IsCompleted:   false,
	}
	if err := t.persistActive(fresh); err != nil {
		return nil, false, err
	}
	return fresh, discarded, nil
}

// MarkComplete records today as done. At most one mark is accepted per
// calendar day; the streak continues only across exactly consecutive days.
func (t *Tracker) MarkComplete(today dateutil.Date) (*MarkResult, error) {
	data, err := t.Active()
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("no active challenge")
	}

	if data.LastCompletedDate == today {
		return &MarkResult{Outcome: OutcomeAlreadyDone, Challenge: *data}, nil
	}

	data.CompletedDays++
	if data.CompletedDays > data.TotalDays {
		data.CompletedDays = data.TotalDays
	}

	if data.LastCompletedDate != "" && dateutil.DaysBetween(data.LastCompletedDate, today) == 1 {
		data.Streak++
	} else {
		data.Streak = 1
	}
	data.LastCompletedDate = today

	if data.CompletedDays >= data.TotalDays {
		data.IsCompleted = true

		entry := challenge.CompletedChallenge{
			Data:          *data,
			CompletedDate: today,
		}
		if err := t.appendHistory(entry); err != nil {
			return nil, err
		}
		if err := t.store.Delete(activeKey); err != nil {
			return nil, fmt.Errorf("failed to clear active challenge: %w", err)
		}

		return &MarkResult{
			Outcome:   OutcomeCompleted,
			Challenge: *data,
			Archived:  &entry,
		}, nil
	}

	if err := t.persistActive(data); err != nil {
		return nil, err
	}
	return &MarkResult{Outcome: OutcomeProgressed, Challenge: *data}, nil
}

// History returns completed challenges, newest first. A missing or corrupt
// history reads as empty.
func (t *Tracker) History() ([]challenge.CompletedChallenge, error) {
	raw, ok, err := t.store.Get(historyKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	history := []challenge.CompletedChallenge{}
	if ok {
		if err := json.Unmarshal(raw, &history); err != nil {
			history = []challenge.CompletedChallenge{}
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CompletedDate > history[j].CompletedDate
	})
	return history, nil
}

func (t *Tracker) persistActive(data *challenge.Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize challenge: %w", err)
	}
	if err := t.store.Set(activeKey, raw); err != nil {
		return fmt.Errorf("failed to persist challenge: %w", err)
	}
	return nil
}

func (t *Tracker) appendHistory(entry challenge.CompletedChallenge) error {
	history, err := t.History()
	if err != nil {
		return err
	}
	history = append(history, entry)

	raw, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to serialize history: %w", err)
	}
	if err := t.store.Set(historyKey, raw); err != nil {
		return fmt.Errorf("failed to persist history: %w", err)
	}
	return nil
}

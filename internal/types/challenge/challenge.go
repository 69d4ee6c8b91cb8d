package challenge

import (
	"fmt"
	"strconv"
	"strings"

	"innerCalmAPI/internal/dateutil"
)

// Data is the locally persisted state of the one active challenge.
// Invariants: 0 <= CompletedDays <= TotalDays and
// IsCompleted exactly when CompletedDays == TotalDays.
type Data struct {
	Type              string        `json:"type"`
	TotalDays         int           `json:"totalDays"`
	StartDate         dateutil.Date `json:"startDate"`
	CompletedDays     int           `json:"completedDays"`
	Streak            int           `json:"streak"`
	IsCompleted       bool          `json:"isCompleted"`
	LastCompletedDate dateutil.Date `json:"lastCompletedDate,omitempty"`
}

// CompletedChallenge is a history entry: a finished challenge snapshot
// plus the day it was finished on.
type CompletedChallenge struct {
	Data
	CompletedDate dateutil.Date `json:"completedDate"`
}

// Info describes one of the fixed challenge programs.
type Info struct {
	ID        string
	Title     string
	TotalDays int
}

var registry = map[string]Info{
	"7-day":  {ID: "7-day", Title: "7-Day Calm Mind", TotalDays: 7},
	"21-day": {ID: "21-day", Title: "21-Day Mind Discipline", TotalDays: 21},
	"90-day": {ID: "90-day", Title: "90-Day Life Transformation", TotalDays: 90},
}

// Lookup resolves a challenge id of the form "{N}-day".
func Lookup(challengeID string) (Info, error) {
	if info, ok := registry[challengeID]; ok {
		return info, nil
	}
	// Unknown but well-formed ids still encode their length.
	n, err := strconv.Atoi(strings.TrimSuffix(challengeID, "-day"))
	if err != nil || n <= 0 || !strings.HasSuffix(challengeID, "-day") {
		return Info{}, fmt.Errorf("unknown challenge id %q", challengeID)
	}
	return Info{ID: challengeID, Title: fmt.Sprintf("%d-Day Challenge", n), TotalDays: n}, nil
}

package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		id        string
		title     string
		totalDays int
		wantErr   bool
	}{
		{id: "7-day", title: "7-Day Calm Mind", totalDays: 7},
		{id: "21-day", title: "21-Day Mind Discipline", totalDays: 21},
		{id: "90-day", title: "90-Day Life Transformation", totalDays: 90},
		// Well-formed ids outside the registry still resolve by length.
		{id: "14-day", title: "14-Day Challenge", totalDays: 14},
		{id: "banana", wantErr: true},
		{id: "0-day", wantErr: true},
		{id: "-3-day", wantErr: true},
		{id: "day", wantErr: true},
		{id: "", wantErr: true},
	}

	for _, tt := range tests {
		info, err := Lookup(tt.id)
		if tt.wantErr {
			assert.Error(t, err, "expected %q to be rejected", tt.id)
			continue
		}
		require.NoError(t, err, "id %q", tt.id)
		assert.Equal(t, tt.title, info.Title)
		assert.Equal(t, tt.totalDays, info.TotalDays)
	}
}

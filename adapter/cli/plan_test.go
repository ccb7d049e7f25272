package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

func TestParseSlots(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []domain.Slot
		wantErr bool
	}{
		{
			name:  "empty uses default day shape",
			input: nil,
			want: []domain.Slot{
				{Name: "Morning Focus", Minutes: 120},
				{Name: "Afternoon Work", Minutes: 90},
				{Name: "Evening Tasks", Minutes: 60},
			},
		},
		{
			name:  "custom slots in order",
			input: []string{"Deep Work=180", "Admin=45"},
			want: []domain.Slot{
				{Name: "Deep Work", Minutes: 180},
				{Name: "Admin", Minutes: 45},
			},
		},
		{
			// cut happens at the first equals, so "B=60" is not a number
			name:    "second equals breaks the duration",
			input:   []string{"A=B=60"},
			wantErr: true,
		},
		{
			name:    "missing separator",
			input:   []string{"MorningFocus"},
			wantErr: true,
		},
		{
			name:    "non-numeric duration",
			input:   []string{"Morning=ninety"},
			wantErr: true,
		},
		{
			name:    "zero duration",
			input:   []string{"Morning=0"},
			wantErr: true,
		},
		{
			name:    "empty name",
			input:   []string{"=60"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSlots(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly ten", truncate("exactly ten", 11))
	assert.Equal(t, "a very l...", truncate("a very long task title", 11))
}

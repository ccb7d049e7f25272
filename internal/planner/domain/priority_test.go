package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	t.Run("accepts tier names case-insensitively", func(t *testing.T) {
		for raw, want := range map[string]Priority{
			"low":    PriorityLow,
			"Medium": PriorityMedium,
			" HIGH ": PriorityHigh,
		} {
			got, err := ParsePriority(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, want, got, raw)
		}
	})

	t.Run("rejects unknown names with medium fallback", func(t *testing.T) {
		got, err := ParsePriority("urgent")
		assert.ErrorIs(t, err, ErrInvalidPriority)
		assert.Equal(t, PriorityMedium, got)
	})
}

func TestPriority_Demote(t *testing.T) {
	assert.Equal(t, PriorityMedium, PriorityHigh.Demote())
	assert.Equal(t, PriorityLow, PriorityMedium.Demote())
	assert.Equal(t, PriorityLow, PriorityLow.Demote(), "low is the floor")
}

func TestPriority_Weight(t *testing.T) {
	assert.Equal(t, 3, PriorityHigh.Weight())
	assert.Equal(t, 2, PriorityMedium.Weight())
	assert.Equal(t, 1, PriorityLow.Weight())
}

func TestPriority_JSON(t *testing.T) {
	t.Run("marshals as tier name", func(t *testing.T) {
		data, err := json.Marshal(PriorityHigh)
		require.NoError(t, err)
		assert.Equal(t, `"high"`, string(data))
	})

	t.Run("unmarshals tier names", func(t *testing.T) {
		var p Priority
		require.NoError(t, json.Unmarshal([]byte(`"low"`), &p))
		assert.Equal(t, PriorityLow, p)
	})

	t.Run("accepts legacy numeric form where 1 means high", func(t *testing.T) {
		cases := map[string]Priority{
			`1`:   PriorityHigh,
			`2`:   PriorityMedium,
			`3`:   PriorityLow,
			`"1"`: PriorityHigh,
			`"3"`: PriorityLow,
		}
		for raw, want := range cases {
			var p Priority
			require.NoError(t, json.Unmarshal([]byte(raw), &p), raw)
			assert.Equal(t, want, p, raw)
		}
	})

	t.Run("malformed input recovers to medium without error", func(t *testing.T) {
		for _, raw := range []string{`"urgent"`, `99`, `true`, `{"a":1}`, `null`} {
			var p Priority
			require.NoError(t, json.Unmarshal([]byte(raw), &p), raw)
			assert.Equal(t, PriorityMedium, p, raw)
		}
	})
}

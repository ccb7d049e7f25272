package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOperation(t *testing.T) {
	t.Run("records duration and total on success", func(t *testing.T) {
		metrics := NewInMemoryMetrics()

		err := TimeOperation(context.Background(), nil, metrics, "migrations", func() error {
			return nil
		})

		require.NoError(t, err)
		tag := T("operation", "migrations")
		assert.Equal(t, int64(1), metrics.GetCounter(MetricOperationTotal, tag))
		assert.Len(t, metrics.GetTimings(MetricOperationDuration, tag), 1)
		assert.Zero(t, metrics.GetCounter(MetricOperationErrors, tag))
	})

	t.Run("counts errors and returns them", func(t *testing.T) {
		metrics := NewInMemoryMetrics()
		boom := errors.New("boom")

		err := TimeOperation(context.Background(), nil, metrics, "migrations", func() error {
			return boom
		})

		require.ErrorIs(t, err, boom)
		tag := T("operation", "migrations")
		assert.Equal(t, int64(1), metrics.GetCounter(MetricOperationErrors, tag))
	})
}

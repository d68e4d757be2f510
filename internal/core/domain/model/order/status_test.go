package order_test

import (
	"testing"

	"carcheck/internal/core/domain/model/order"
	"carcheck/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "in_progress", order.InProgress.String())
	assert.Equal(t, "completed", order.Completed.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses_valid_statuses", func(t *testing.T) {
		cases := map[string]order.Status{
			"pending":     order.Pending,
			"in_progress": order.InProgress,
			"completed":   order.Completed,
		}
		for value, expected := range cases {
			status, err := order.StatusFromString(value)

			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("rejects_unknown_values", func(t *testing.T) {
		for _, value := range []string{"", "unknown", "Completado", "done"} {
			_, err := order.StatusFromString(value)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, value)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.NoError(t, order.InProgress.Validate())
	require.NoError(t, order.Completed.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_Progress(t *testing.T) {
	t.Run("pending_moves_to_in_progress", func(t *testing.T) {
		status, err := order.Pending.Progress()

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, status)
	})

	t.Run("in_progress_stays_in_progress", func(t *testing.T) {
		status, err := order.InProgress.Progress()

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, status)
	})

	t.Run("completed_cannot_regress", func(t *testing.T) {
		_, err := order.Completed.Progress()

		require.Error(t, err)
	})

	t.Run("unknown_is_rejected", func(t *testing.T) {
		_, err := order.Unknown.Progress()

		require.Error(t, err)
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("valid_statuses_complete", func(t *testing.T) {
		for _, from := range []order.Status{order.Pending, order.InProgress, order.Completed} {
			status, err := from.Complete()

			require.NoError(t, err, from.String())
			assert.Equal(t, order.Completed, status)
		}
	})

	t.Run("unknown_is_rejected", func(t *testing.T) {
		_, err := order.Unknown.Complete()

		require.Error(t, err)
	})
}

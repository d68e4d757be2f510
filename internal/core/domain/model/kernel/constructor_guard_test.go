package kernel_test

import (
	"errors"
	"testing"

	"carcheck/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		guard := kernel.NewConstructorGuard()

		require.NoError(t, guard.Validate(errors.New("not constructed")))
		require.NoError(t, guard.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var guard kernel.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := guard.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var guard kernel.ConstructorGuard

		err := guard.Validate(nil)

		require.ErrorIs(t, err, kernel.ErrDefaultConstructorGuard)
	})
}

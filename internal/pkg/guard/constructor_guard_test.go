package guard_test

import (
	"errors"
	"testing"

	"coffee/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	type ticket struct {
		drink string
		guard guard.ConstructorGuard
	}

	errTicketNotConstructed := errors.New("ticket must be created via newTicket")

	newTicket := func(drink string) ticket {
		return ticket{drink: drink, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		tk := newTicket("latte")

		require.NoError(t, tk.guard.Validate(errTicketNotConstructed))
		assert.Equal(t, "latte", tk.drink)
	})

	t.Run("literal_value_is_rejected", func(t *testing.T) {
		tk := ticket{drink: "latte"}

		assert.Equal(t, errTicketNotConstructed, tk.guard.Validate(errTicketNotConstructed))
	})
}

package order_test

import (
	"testing"

	"coffee/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass for built order", func(t *testing.T) {
		o, err := order.NewBuilder().SetBase(order.Latte).SetSize(order.Small).Build()
		require.NoError(t, err)

		require.NoError(t, o.Validate())
		require.NoError(t, o.ID().Validate())
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Syrups_ReturnsCopy(t *testing.T) {
	o, err := order.NewBuilder().SetBase(order.Latte).SetSize(order.Small).
		AddSyrup("vanilla").AddSyrup("caramel").Build()
	require.NoError(t, err)

	syrups := o.Syrups()
	syrups[0] = "tampered"
	_ = append(syrups[:1], "appended")

	assert.Equal(t, []string{"vanilla", "caramel"}, o.Syrups())
	assert.Equal(t, "small latte +vanilla, caramel", o.Description())
}

func TestOrder_String(t *testing.T) {
	t.Run("should return description when present", func(t *testing.T) {
		o, err := order.NewBuilder().SetBase(order.Espresso).SetSize(order.Small).Build()
		require.NoError(t, err)

		assert.Equal(t, "small espresso", o.String())
	})

	t.Run("should fall back to price with two decimals", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, "Coffee order - 0.00", o.String())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	b := order.NewBuilder().SetBase(order.Latte).SetSize(order.Small)
	o1, err := b.Build()
	require.NoError(t, err)
	o2, err := b.Build()
	require.NoError(t, err)

	assert.True(t, o1.IsEqual(o1))
	assert.False(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(nil))
}

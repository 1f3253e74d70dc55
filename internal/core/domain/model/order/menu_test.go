package order_test

import (
	"testing"

	"coffee/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestGetMenu(t *testing.T) {
	menu := order.GetMenu()

	assert.Equal(t, []order.MenuItem{
		{Name: order.Espresso, Value: 200.0},
		{Name: order.Americano, Value: 250.0},
		{Name: order.Latte, Value: 300.0},
		{Name: order.Cappuccino, Value: 320.0},
	}, menu.Bases)
	assert.Equal(t, []order.MenuItem{
		{Name: order.Small, Value: 1.0},
		{Name: order.Medium, Value: 1.2},
		{Name: order.Large, Value: 1.4},
	}, menu.Sizes)
	assert.Len(t, menu.Milks, 5)
	assert.InDelta(t, 40.0, menu.SyrupPrice, 1e-9)
	assert.InDelta(t, 0.2, menu.IcedPrice, 1e-9)
	assert.Equal(t, 5, menu.MaxSugar)
	assert.Equal(t, 4, menu.MaxSyrups)
}

func TestGetMenu_ReturnsIndependentCopies(t *testing.T) {
	menu := order.GetMenu()
	menu.Bases[0].Value = 1

	o, err := order.NewBuilder().SetBase(order.Espresso).SetSize(order.Small).Build()

	assert.NoError(t, err)
	assert.InDelta(t, 200.0, o.Price(), 1e-9)
	assert.InDelta(t, 200.0, order.GetMenu().Bases[0].Value, 1e-9)
}

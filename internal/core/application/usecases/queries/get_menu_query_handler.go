package queries

import (
	"context"

	"coffee/internal/core/domain/model/order"
)

// GetMenuQueryHandler reads the menu from the order domain model.
type GetMenuQueryHandler struct{}

// NewGetMenuQueryHandler creates a handler for menu queries.
func NewGetMenuQueryHandler() GetMenuQueryHandler {
	return GetMenuQueryHandler{}
}

// Handle returns the menu in menu order.
func (h GetMenuQueryHandler) Handle(_ context.Context, query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	menu := order.GetMenu()

	sizes := make([]SizeItem, 0, len(menu.Sizes))
	for _, item := range menu.Sizes {
		sizes = append(sizes, SizeItem{Name: item.Name, Multiplier: item.Value})
	}

	return GetMenuQueryResponse{
		Bases:      toPricedItems(menu.Bases),
		Sizes:      sizes,
		Milks:      toPricedItems(menu.Milks),
		SyrupPrice: menu.SyrupPrice,
		IcedPrice:  menu.IcedPrice,
		MaxSugar:   menu.MaxSugar,
		MaxSyrups:  menu.MaxSyrups,
	}, nil
}

func toPricedItems(items []order.MenuItem) []PricedItem {
	priced := make([]PricedItem, 0, len(items))
	for _, item := range items {
		priced = append(priced, PricedItem{Name: item.Name, Price: item.Value})
	}
	return priced
}

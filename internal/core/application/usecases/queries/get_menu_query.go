// Package queries contains read-only operations exposed to the adapters.
package queries

import (
	"errors"

	"coffee/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the price tables and limits used to quote orders.
//
// Example:
//
//	query := NewGetMenuQuery()
//	handler := NewGetMenuQueryHandler()
//
//	menu, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get menu: %w", err)
//	}
//	for _, base := range menu.Bases {
//	    fmt.Printf("%s: %.2f\n", base.Name, base.Price)
//	}
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a parameterless menu query.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// PricedItem is a base or milk with its price.
type PricedItem struct {
	Name  string
	Price float64
}

// SizeItem is a serving size with its price multiplier.
type SizeItem struct {
	Name       string
	Multiplier float64
}

// GetMenuQueryResponse lists everything an order can be built from.
type GetMenuQueryResponse struct {
	Bases      []PricedItem
	Sizes      []SizeItem
	Milks      []PricedItem
	SyrupPrice float64
	IcedPrice  float64
	MaxSugar   int
	MaxSyrups  int
}

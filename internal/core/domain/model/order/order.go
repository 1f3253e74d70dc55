package order

import (
	"errors"
	"fmt"
	"slices"

	"coffee/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order did not come from Builder.Build.
var ErrOrderIsNotConstructed = errors.New("Order must be created via Builder.Build")

// Order is an immutable coffee order: the options chosen on a Builder at the
// moment Build was called, plus the price and description derived from them.
//
// Order follows these invariants:
//   - syrups are distinct and at most MaxSyrups long
//   - sugar is within [0, MaxSugar]
//   - price is never negative
//   - no method mutates the order, and Syrups returns a copy
type Order struct {
	// id identifies this particular build
	id kernel.UUID

	sel selection

	price       float64
	description string

	// isConstructed ensures the order was created via Builder.Build
	isConstructed bool
}

// Validate ensures the Order was produced by Builder.Build.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier. Two builds never share one.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the identifier assigned at build time.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Base returns the drink base.
func (o *Order) Base() string {
	return o.sel.base
}

// Size returns the serving size.
func (o *Order) Size() string {
	return o.sel.size
}

// Milk returns the milk type, "none" when no milk was chosen.
func (o *Order) Milk() string {
	return o.sel.milk
}

// Syrups returns a copy of the syrups in the order they were added.
func (o *Order) Syrups() []string {
	syrups := slices.Clone(o.sel.syrups)
	if syrups == nil {
		return []string{}
	}
	return syrups
}

// Sugar returns the number of sugar teaspoons.
func (o *Order) Sugar() int {
	return o.sel.sugar
}

// Iced reports whether the drink is served over ice.
func (o *Order) Iced() bool {
	return o.sel.iced
}

// Price returns the computed price. It is not rounded.
func (o *Order) Price() float64 {
	return o.price
}

// Description returns the human-readable rendering of the options.
func (o *Order) Description() string {
	return o.description
}

// String returns the description, or "Coffee order - <price>" with two decimals
// when the description is empty.
func (o *Order) String() string {
	if o.description != "" {
		return o.description
	}
	return fmt.Sprintf("Coffee order - %.2f", o.price)
}

package services

import (
	"coffee/internal/core/domain/model/order"
)

// Options is a complete description of a drink as received from an adapter.
// An empty Milk means no milk.
type Options struct {
	Base   string
	Size   string
	Milk   string
	Syrups []string
	Sugar  int
	Iced   bool
}

// OrderQuoter turns Options into an Order using the Builder, so adapters get
// exactly the same validation and normalisation as in-process callers.
//
// Example usage:
//
//	quoter := services.NewOrderQuoter()
//	o, err := quoter.Quote(services.Options{Base: "latte", Size: "medium", Syrups: []string{"vanilla"}})
//	if errors.Is(err, order.ErrMissingField) {
//	    // base or size absent
//	}
type OrderQuoter struct{}

// NewOrderQuoter creates a new OrderQuoter instance.
func NewOrderQuoter() OrderQuoter {
	return OrderQuoter{}
}

// Quote applies opts to a new builder and builds.
//
// Syrups are added in the given order, so duplicates and anything past
// order.MaxSyrups are dropped. Sugar is applied before Build; an out of range
// value fails with order.ErrInvalidArgument before base and size are checked.
func (q OrderQuoter) Quote(opts Options) (*order.Order, error) {
	b := order.NewBuilder().
		SetBase(opts.Base).
		SetSize(opts.Size).
		SetIced(opts.Iced)

	if opts.Milk != "" {
		b.SetMilk(opts.Milk)
	}

	for _, syrup := range opts.Syrups {
		b.AddSyrup(syrup)
	}

	if _, err := b.SetSugar(opts.Sugar); err != nil {
		return nil, err
	}

	return b.Build()
}

// Package commands contains the business operations exposed to the adapters.
// All commands follow a consistent pattern: a guarded command value built by its
// constructor, and a handler that validates it and delegates to the domain.
package commands

import (
	"coffee/internal/core/domain/model/order"
	"coffee/internal/core/domain/services"
)

// OrderQuoter builds an Order from a complete option set.
// services.OrderQuoter is the production implementation.
type OrderQuoter interface {
	Quote(opts services.Options) (*order.Order, error)
}

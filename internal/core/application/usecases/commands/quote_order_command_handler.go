package commands

import (
	"context"
	"log/slog"

	"coffee/internal/core/domain/model/order"
	"coffee/internal/core/domain/services"
)

// QuoteOrderCommandHandler prices and describes a single drink without storing it.
//
// Example:
//
//	handler := NewQuoteOrderCommandHandler(services.NewOrderQuoter(), logger)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrMissingField) {
//	    // ask the customer for the base or size
//	}
type QuoteOrderCommandHandler struct {
	quoter OrderQuoter
	logger *slog.Logger
}

// NewQuoteOrderCommandHandler creates a handler backed by quoter.
func NewQuoteOrderCommandHandler(quoter OrderQuoter, logger *slog.Logger) QuoteOrderCommandHandler {
	return QuoteOrderCommandHandler{
		quoter: quoter,
		logger: logger.With("component", "quote_order_handler"),
	}
}

// Handle builds the order described by cmd. Domain errors are returned unwrapped
// so callers can classify them with errors.Is.
func (h QuoteOrderCommandHandler) Handle(ctx context.Context, cmd QuoteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.quoter.Quote(services.Options{
		Base:   cmd.Base(),
		Size:   cmd.Size(),
		Milk:   cmd.Milk(),
		Syrups: cmd.Syrups(),
		Sugar:  cmd.Sugar(),
		Iced:   cmd.Iced(),
	})
	if err != nil {
		h.logger.DebugContext(ctx, "Quote rejected", "error", err)
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order quoted",
		"order_id", o.ID().String(),
		"description", o.Description(),
		"price", o.Price(),
	)
	return o, nil
}

package commands

import (
	"errors"
	"slices"

	"coffee/internal/pkg/guard"
)

var ErrQuoteOrderCommandIsNotConstructed = errors.New(
	"QuoteOrderCommand must be created via NewQuoteOrderCommand constructor",
)

// QuoteOrderCommand represents a request to price and describe one drink.
// Field validation is left to the order builder so that adapters report the
// same error kinds as in-process callers.
//
// Example:
//
//	cmd := NewQuoteOrderCommand("latte", "medium", "oat", []string{"vanilla"}, 2, false)
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("quote failed: %w", err)
//	}
//	fmt.Println(o)
type QuoteOrderCommand struct { //nolint:recvcheck //using for validation
	base   string
	size   string
	milk   string
	syrups []string
	sugar  int
	iced   bool

	guard guard.ConstructorGuard
}

// NewQuoteOrderCommand creates a quote command. An empty milk means no milk.
func NewQuoteOrderCommand(
	base, size, milk string,
	syrups []string,
	sugar int,
	iced bool,
) QuoteOrderCommand {
	return QuoteOrderCommand{
		base:   base,
		size:   size,
		milk:   milk,
		syrups: slices.Clone(syrups),
		sugar:  sugar,
		iced:   iced,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrQuoteOrderCommandIsNotConstructed if validation fails.
func (c QuoteOrderCommand) Validate() error {
	return c.guard.Validate(ErrQuoteOrderCommandIsNotConstructed)
}

// Base returns the requested drink base.
func (c QuoteOrderCommand) Base() string {
	return c.base
}

// Size returns the requested serving size.
func (c QuoteOrderCommand) Size() string {
	return c.size
}

// Milk returns the requested milk type, empty when none was given.
func (c QuoteOrderCommand) Milk() string {
	return c.milk
}

// Syrups returns a copy of the requested syrups.
func (c QuoteOrderCommand) Syrups() []string {
	return slices.Clone(c.syrups)
}

// Sugar returns the requested sugar teaspoons.
func (c QuoteOrderCommand) Sugar() int {
	return c.sugar
}

// Iced reports whether the drink was requested iced.
func (c QuoteOrderCommand) Iced() bool {
	return c.iced
}

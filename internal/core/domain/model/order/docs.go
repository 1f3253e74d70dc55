// Package order provides the coffee order domain model: a fluent Builder that
// accumulates drink options and an immutable Order produced from it.
//
// The package includes:
//   - Builder: the mutable accumulator with chained setters and Build
//   - Order: the priced, described snapshot returned by Build
//   - Menu: a read-only view of the price tables and limits
//
// Key business rules:
//   - base and size are required to build; missing either yields ErrMissingField
//   - sugar is 0-5 teaspoons; anything else yields ErrInvalidArgument
//   - at most 4 syrups, duplicates ignored, first-seen order kept
//   - unknown base, size and milk names are accepted; an unknown base prices at 0,
//     an unknown size uses multiplier 1.0 and an unknown milk adds nothing
//   - an Order never changes after Build, whatever happens to the Builder
package order

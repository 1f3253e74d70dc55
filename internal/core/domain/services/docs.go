// Package services provides domain services that drive the order model on behalf
// of callers that hold a complete option set rather than a sequence of calls.
//
// The package includes:
//   - OrderQuoter: applies an Options value to a fresh Builder and builds the Order
package services

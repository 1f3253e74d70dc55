// Package kernel provides the shared domain primitives of the coffee ordering model.
//
// The package includes:
//   - UUID: a value object identifying each built order
//
// Primitives are immutable and safe to share between goroutines.
package kernel

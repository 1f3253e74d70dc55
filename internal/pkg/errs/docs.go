// Package errs provides standardized error types for the coffee application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes three error types:
//   - ValueIsRequiredError: a mandatory value is missing (an order without a base)
//   - ValueIsInvalidError: a value cannot be used (a malformed request body)
//   - ValueIsOutOfRangeError: a value lies outside its bounds (sugar above 5)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
package errs

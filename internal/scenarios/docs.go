// Package scenarios holds the acceptance scenarios of the coffee order model and
// the runner the console entry point uses to execute them.
//
// Scenarios run sequentially in a fixed order. The runner prints one line per
// passed scenario and a summary line, and stops at the first failure, returning
// it wrapped with the scenario name so the caller can exit non-zero.
package scenarios

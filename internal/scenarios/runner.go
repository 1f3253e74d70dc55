package scenarios

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Scenario is a named check over the order model. Run returns nil on success.
type Scenario struct {
	Name string
	Run  func() error
}

// Runner executes scenarios in order.
type Runner struct {
	scenarios []Scenario
	out       io.Writer
	logger    *slog.Logger
}

// NewRunner creates a runner writing progress lines to out.
func NewRunner(scenarios []Scenario, out io.Writer, logger *slog.Logger) *Runner {
	return &Runner{
		scenarios: scenarios,
		out:       out,
		logger:    logger.With("component", "scenario_runner"),
	}
}

// RunAll runs every scenario and returns the first failure, if any.
// ctx is checked between scenarios.
func (r *Runner) RunAll(ctx context.Context) error {
	for i, s := range r.scenarios {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.Run(); err != nil {
			r.logger.ErrorContext(ctx, "Scenario failed", "scenario", s.Name, "error", err)
			return fmt.Errorf("scenario %d/%d %q failed: %w", i+1, len(r.scenarios), s.Name, err)
		}

		r.logger.DebugContext(ctx, "Scenario passed", "scenario", s.Name)
		if _, err := fmt.Fprintf(r.out, "%s: passed\n", s.Name); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(r.out, "\nAll %d scenarios passed\n", len(r.scenarios))
	return err
}

// Package saga runs an ordered sequence of steps with best-effort
// compensation. When a step fails, the compensations of every previously
// completed step are executed in reverse order; compensation failures are
// logged and never mask the primary error.
package saga

import (
	"context"
	"fmt"

	"studentdocs-backend/internal/shared/telemetry"
)

// Step pairs a forward action with an optional compensating action.
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Run executes steps in order. On the first failure it unwinds the
// compensations of all completed steps, newest first, and returns the
// failing step's error.
func Run(ctx context.Context, steps ...Step) error {
	done := make([]Step, 0, len(steps))
	for _, step := range steps {
		if step.Run == nil {
			return fmt.Errorf("saga step %q has no action", step.Name)
		}
		if err := step.Run(ctx); err != nil {
			unwind(ctx, done)
			return err
		}
		done = append(done, step)
	}
	return nil
}

func unwind(ctx context.Context, done []Step) {
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			telemetry.Warn("saga.compensation_failed", map[string]any{
				"step":  step.Name,
				"error": err.Error(),
			})
		}
	}
}

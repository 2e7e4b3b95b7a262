package montecarlo

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrInvalidIterations indicates an iteration count that is zero or negative.
// The fraction inside/iterations is undefined for zero, so no estimate is made.
var ErrInvalidIterations = errors.New("iteration count must be positive")

// checkInterval is how many samples EstimateContext draws between
// cancellation checks.
const checkInterval = 1 << 16

// Estimate draws iterations pairs (x, y) from src, counts the pairs with
// x*x + y*y <= 1 and returns 4 * inside / iterations.
func Estimate(iterations int, src Source) (float64, error) {
	return EstimateContext(context.Background(), iterations, src)
}

// EstimateContext is Estimate with cancellation. ctx is checked every
// checkInterval samples; on cancellation the context error is returned.
func EstimateContext(ctx context.Context, iterations int, src Source) (float64, error) {
	if iterations <= 0 {
		logrus.WithFields(logrus.Fields{
			"function":   "EstimateContext",
			"package":    "montecarlo",
			"iterations": iterations,
		}).Debug("Rejected non-positive iteration count")
		return 0, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}
	if src == nil {
		src = NewRandomSource()
	}

	inside := 0
	for i := 0; i < iterations; i++ {
		if i%checkInterval == 0 && i > 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		x := src.Float64()
		y := src.Float64()
		if x*x+y*y <= 1.0 {
			inside++
		}
	}

	return 4.0 * float64(inside) / float64(iterations), nil
}

// EstimateWithConfig validates cfg and runs Estimate with the source it selects.
func EstimateWithConfig(ctx context.Context, cfg Config) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	return EstimateContext(ctx, cfg.Iterations, cfg.Source())
}

package harness

import (
	"context"
	"fmt"

	"github.com/roach88/triad/internal/engine"
)

// runAssertions evaluates final-state assertions and returns one failure
// string per unsatisfied assertion. Assertion evaluation never aborts the
// run: all assertions are checked so a failing scenario reports everything
// at once.
func runAssertions(ctx context.Context, eng *engine.Engine, scenario *Scenario) []string {
	var failures []string

	for i, a := range scenario.Assertions {
		switch a.Type {
		case AssertStoreContains:
			solutions, err := eng.Query(ctx, a.Fact)
			if err != nil {
				failures = append(failures, fmt.Sprintf("assertions[%d]: store_contains %q: %v", i, a.Fact, err))
				continue
			}
			if len(solutions) == 0 {
				failures = append(failures, fmt.Sprintf("assertions[%d]: store does not contain %q", i, a.Fact))
			}

		case AssertStoreCount:
			facts, err := eng.Facts(ctx)
			if err != nil {
				failures = append(failures, fmt.Sprintf("assertions[%d]: store_count: %v", i, err))
				continue
			}
			if len(facts) != a.Count {
				failures = append(failures, fmt.Sprintf("assertions[%d]: store_count: expected %d facts, got %d", i, a.Count, len(facts)))
			}

		case AssertSolutionCount:
			solutions, err := eng.Query(ctx, a.Query)
			if err != nil {
				failures = append(failures, fmt.Sprintf("assertions[%d]: solution_count %q: %v", i, a.Query, err))
				continue
			}
			if len(solutions) != a.Count {
				failures = append(failures, fmt.Sprintf("assertions[%d]: solution_count %q: expected %d, got %d", i, a.Query, a.Count, len(solutions)))
			}
		}
	}

	return failures
}

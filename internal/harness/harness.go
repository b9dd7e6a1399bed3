package harness

import (
	"context"
	"fmt"
	"reflect"

	"github.com/roach88/triad/internal/engine"
	"github.com/roach88/triad/internal/store"
	"github.com/roach88/triad/internal/triple"
)

// Run executes a scenario against a fresh in-memory store and returns the
// trace plus any expectation or assertion failures.
//
// Operation errors (malformed queries, patterns in assert clauses) abort
// the run: scenarios describe valid flows, and a format error in one is a
// bug in the scenario, not a test outcome.
func Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, &triple.MissingArgumentError{Name: "scenario"}
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("open scenario store: %w", err)
	}
	defer st.Close()

	eng, err := engine.New(st)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	result := &Result{Scenario: scenario}

	for _, text := range scenario.Setup {
		if err := runStep(ctx, eng, Step{Op: OpAssert, Text: text}, result); err != nil {
			return nil, fmt.Errorf("setup %q: %w", text, err)
		}
	}

	for i, step := range scenario.Steps {
		if err := runStep(ctx, eng, step, result); err != nil {
			return nil, fmt.Errorf("steps[%d]: %w", i, err)
		}
	}

	result.Failures = append(result.Failures, runAssertions(ctx, eng, scenario)...)

	return result, nil
}

// runStep executes one operation, appends its trace event, and records an
// expectation failure for query steps whose solutions differ from expect.
func runStep(ctx context.Context, eng *engine.Engine, step Step, result *Result) error {
	event := TraceEvent{
		Seq:  len(result.Trace) + 1,
		Op:   step.Op,
		Text: step.Text,
	}

	switch step.Op {
	case OpAssert:
		inserted, err := eng.Assert(ctx, step.Text)
		if err != nil {
			return err
		}
		event.Facts = factStrings(inserted)

	case OpRetract:
		removed, err := eng.Retract(ctx, step.Text)
		if err != nil {
			return err
		}
		event.Facts = factStrings(removed)

	case OpQuery:
		solutions, err := eng.Query(ctx, step.Text)
		if err != nil {
			return err
		}
		event.Solutions = solutionMaps(solutions)

		if step.Expect != nil && !reflect.DeepEqual(normalizeExpect(step.Expect), event.Solutions) {
			result.Failures = append(result.Failures, fmt.Sprintf(
				"query %q: expected solutions %v, got %v",
				step.Text, step.Expect, event.Solutions))
		}

	case OpClear:
		if err := eng.Clear(ctx); err != nil {
			return err
		}
	}

	result.Trace = append(result.Trace, event)
	return nil
}

// factStrings renders facts in "id predicate object" form. Empty in, nil
// out: omitted from the trace JSON.
func factStrings(facts []triple.Triple) []string {
	if len(facts) == 0 {
		return nil
	}
	out := make([]string, len(facts))
	for i, f := range facts {
		out[i] = f.String()
	}
	return out
}

// solutionMaps renders solutions as binding maps in enumeration order.
func solutionMaps(solutions []engine.Solution) []map[string]string {
	if len(solutions) == 0 {
		return nil
	}
	out := make([]map[string]string, len(solutions))
	for i, sol := range solutions {
		out[i] = sol.Bindings.Map()
	}
	return out
}

// normalizeExpect canonicalizes expected binding keys so scenarios may
// write them with or without the variable prefix.
func normalizeExpect(expect []map[string]string) []map[string]string {
	out := make([]map[string]string, len(expect))
	for i, m := range expect {
		nm := make(map[string]string, len(m))
		for k, v := range m {
			nm[triple.AsVariable(k)] = v
		}
		out[i] = nm
	}
	return out
}

package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a sequence of engine
// operations with expected outcomes, executed against a fresh store.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Setup contains assert texts executed before the main steps.
	// Setup operations are assumed to succeed.
	Setup []string `yaml:"setup,omitempty"`

	// Steps contains the main operations, executed in order.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final store state.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is one engine operation.
type Step struct {
	// Op is "assert", "retract", "query", or "clear".
	Op string `yaml:"op"`

	// Text is the operation's query text. Required for all ops but clear.
	Text string `yaml:"text,omitempty"`

	// Expect, for query steps, is the full expected solution list as
	// binding maps in enumeration order. Nil skips validation.
	Expect []map[string]string `yaml:"expect,omitempty"`
}

// Assertion validates final store state.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Fact is the concrete fact text (store_contains).
	Fact string `yaml:"fact,omitempty"`

	// Query is the query text (solution_count).
	Query string `yaml:"query,omitempty"`

	// Count is the expected count (store_count, solution_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertStoreContains = "store_contains"
	AssertStoreCount    = "store_count"
	AssertSolutionCount = "solution_count"
)

// Operation constants for Step.Op.
const (
	OpAssert  = "assert"
	OpRetract = "retract"
	OpQuery   = "query"
	OpClear   = "clear"
)

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &sc, nil
}

// Validate checks the scenario for structural errors before execution.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("at least one step is required")
	}

	for i, step := range s.Steps {
		switch step.Op {
		case OpAssert, OpRetract, OpQuery:
			if step.Text == "" {
				return fmt.Errorf("steps[%d]: op %q requires text", i, step.Op)
			}
		case OpClear:
			// No text.
		default:
			return fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
		}

		if step.Expect != nil && step.Op != OpQuery {
			return fmt.Errorf("steps[%d]: expect is only valid on query steps", i)
		}
	}

	for i, a := range s.Assertions {
		switch a.Type {
		case AssertStoreContains:
			if a.Fact == "" {
				return fmt.Errorf("assertions[%d]: store_contains requires fact", i)
			}
		case AssertStoreCount:
			// Count zero is meaningful.
		case AssertSolutionCount:
			if a.Query == "" {
				return fmt.Errorf("assertions[%d]: solution_count requires query", i)
			}
		default:
			return fmt.Errorf("assertions[%d]: unknown type %q", i, a.Type)
		}
	}

	return nil
}

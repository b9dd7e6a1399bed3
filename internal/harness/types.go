package harness

// TraceEvent records one executed operation. Events use only deterministic
// data (normalized fact strings, sorted binding maps) so traces are stable
// across runs and safe for golden comparison.
type TraceEvent struct {
	// Seq is the 1-based position of the event in the run.
	Seq int `json:"seq"`

	// Op is the operation type: "assert", "retract", "query", or "clear".
	Op string `json:"op"`

	// Text is the operation's query text (empty for clear).
	Text string `json:"text,omitempty"`

	// Facts lists the inserted (assert) or removed (retract) facts in
	// "id predicate object" form.
	Facts []string `json:"facts,omitempty"`

	// Solutions lists a query's binding sets in enumeration order.
	Solutions []map[string]string `json:"solutions,omitempty"`
}

// TraceSnapshot captures the complete trace for a scenario execution,
// serialized as the golden file body.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	Trace        []TraceEvent `json:"trace"`
}

// Result holds the outcome of running a scenario.
type Result struct {
	// Scenario is the executed scenario.
	Scenario *Scenario

	// Trace lists every executed operation in order, setup included.
	Trace []TraceEvent

	// Failures lists human-readable expectation and assertion failures.
	// Empty means the scenario passed.
	Failures []string
}

// Passed reports whether the scenario ran without expectation or assertion
// failures.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

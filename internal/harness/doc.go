// Package harness provides scenario-based conformance testing for the fact
// engine.
//
// The harness runs each scenario against a fresh in-memory store, executes
// its operations through the real engine, and records a deterministic trace
// that can be compared against golden files.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	setup:
//	  - alice likes bob . bob likes cake
//	steps:
//	  - op: query
//	    text: "?a likes ?b"
//	    expect:
//	      - {"?a": alice, "?b": bob}
//	  - op: retract
//	    text: "?x likes cake"
//	  - op: clear
//	assertions:
//	  - type: store_contains
//	    fact: alice likes bob
//	  - type: store_count
//	    count: 1
//	  - type: solution_count
//	    query: "?a likes ?b"
//	    count: 1
//
// Setup entries are assert operations assumed to succeed. Step operations
// are "assert", "retract", "query", and "clear". A query step's optional
// expect clause is compared against the full solution list, in the
// backend's deterministic order.
//
// # Assertion Types
//
//   - store_contains: the given concrete fact is currently stored
//   - store_count: the store holds exactly N facts
//   - solution_count: the given query yields exactly N solutions
package harness

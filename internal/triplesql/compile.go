// Package triplesql compiles pattern-triple conjunctions to parameterized
// SQL for SQLite.
//
// The conjunctive multi-pattern join is not executed by the core matching
// code: it is translated here into the backend's own declarative language
// and delegated to the embedded engine. Each pattern becomes one alias of
// the facts table; a variable shared between patterns becomes a join
// constraint against the variable's first occurrence.
//
// Two rules are mandatory for every compiled query:
//   - deterministic results: ORDER BY over all selected columns with
//     COLLATE BINARY, so identical stores yield identical binding orders
//   - literal values are always parameterized, never interpolated
package triplesql

import (
	"fmt"
	"strings"

	"github.com/roach88/triad/internal/triple"
)

// Compiled is the result of compiling a pattern conjunction.
type Compiled struct {
	// SQL is the parameterized query text.
	SQL string

	// Params holds the literal slot values, in placeholder order.
	Params []any

	// Vars lists the canonical variable names, aligned one-to-one with the
	// selected result columns. Empty for a fully-concrete conjunction, which
	// compiles to an existence check.
	Vars []string
}

// slotColumns maps slot position to facts table column, in the fixed
// id, predicate, object order.
var slotColumns = [3]string{"id", "predicate", "object"}

// Compile translates an ordered pattern conjunction into a single SQL
// query whose rows are the satisfying binding sets.
//
// For each pattern slot:
//   - a literal compiles to "tN.col = ?" with the value parameterized
//   - a variable's first occurrence selects that column and later
//     occurrences (including within the same pattern) compile to equality
//     against the first occurrence
//
// Variables are selected in first-occurrence order, so earlier patterns in
// the conjunction determine the binding columns.
func Compile(patterns []triple.Triple) (*Compiled, error) {
	if len(patterns) == 0 {
		return nil, &triple.MissingArgumentError{Name: "patterns"}
	}

	var (
		vars     []string          // canonical names, first-occurrence order
		firstRef = map[string]string{} // variable -> "tN.col" of first occurrence
		where    []string
		params   []any
		from     strings.Builder
	)

	for i, p := range patterns {
		alias := fmt.Sprintf("t%d", i)

		// Join constraints for this alias (variables shared with earlier
		// aliases, or repeated within this pattern).
		var joins []string

		for s, slot := range [3]string{p.ID, p.Predicate, p.Object} {
			ref := alias + "." + slotColumns[s]

			if triple.IsVariable(slot) {
				if prev, seen := firstRef[slot]; seen {
					joins = append(joins, fmt.Sprintf("%s = %s", ref, prev))
				} else {
					firstRef[slot] = ref
					vars = append(vars, slot)
				}
				continue
			}

			where = append(where, ref+" = ?")
			params = append(params, slot)
		}

		if i == 0 {
			from.WriteString("facts AS " + alias)
			// No earlier alias to join against: within-pattern repeats
			// belong in WHERE.
			where = append(joins, where...)
			continue
		}

		on := strings.Join(joins, " AND ")
		if on == "" {
			on = "1 = 1" // cross join (no shared variable)
		}
		fmt.Fprintf(&from, " INNER JOIN facts AS %s ON %s", alias, on)
	}

	selectCols := make([]string, len(vars))
	orderCols := make([]string, len(vars))
	for i, v := range vars {
		selectCols[i] = firstRef[v]
		// COLLATE precedes the direction keyword in SQLite's ordering-term
		// grammar.
		orderCols[i] = firstRef[v] + " COLLATE BINARY ASC"
	}

	var sql strings.Builder
	if len(vars) == 0 {
		// Fully concrete conjunction: existence check, one empty binding set.
		sql.WriteString("SELECT DISTINCT 1 FROM ")
	} else {
		fmt.Fprintf(&sql, "SELECT DISTINCT %s FROM ", strings.Join(selectCols, ", "))
	}
	sql.WriteString(from.String())

	if len(where) > 0 {
		sql.WriteString(" WHERE " + strings.Join(where, " AND "))
	}

	if len(vars) == 0 {
		sql.WriteString(" LIMIT 1")
	} else {
		sql.WriteString(" ORDER BY " + strings.Join(orderCols, ", "))
	}

	return &Compiled{SQL: sql.String(), Params: params, Vars: vars}, nil
}

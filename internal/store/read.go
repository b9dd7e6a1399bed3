package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/triad/internal/triple"
	"github.com/roach88/triad/internal/triplesql"
)

// Select implements the fact enumeration contract: given one or more
// already-parsed pattern triples, it returns one Bindings set per
// assignment of the patterns' variables that is satisfied by the currently
// stored facts.
//
// The conjunctive join is compiled to SQL and executed by SQLite; the core
// only consumes the resulting binding sets. A fully-concrete conjunction
// yields a single empty Bindings set when the facts are present (existence
// semantics) and no sets otherwise.
//
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) Select(ctx context.Context, patterns []triple.Triple) ([]triple.Bindings, error) {
	compiled, err := triplesql.Compile(patterns)
	if err != nil {
		return nil, fmt.Errorf("compile patterns: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, compiled.SQL, compiled.Params...)
	if err != nil {
		return nil, fmt.Errorf("query facts: %w", err)
	}
	defer rows.Close()

	results := []triple.Bindings{}

	if len(compiled.Vars) == 0 {
		if rows.Next() {
			results = append(results, triple.NewBindings())
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate facts: %w", err)
		}
		return results, nil
	}

	values := make([]string, len(compiled.Vars))
	scanDest := make([]any, len(compiled.Vars))
	for i := range values {
		scanDest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanDest...); err != nil {
			return nil, fmt.Errorf("scan bindings: %w", err)
		}

		pairs := make([]triple.Binding, len(compiled.Vars))
		for i, name := range compiled.Vars {
			pairs[i] = triple.Binding{Name: name, Value: values[i]}
		}
		results = append(results, triple.BindingsFrom(pairs))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate facts: %w", err)
	}

	return results, nil
}

// Contains reports whether a fully-concrete fact is currently stored.
func (s *Store) Contains(ctx context.Context, fact triple.Triple) (bool, error) {
	if fact.IsPattern() {
		return false, fmt.Errorf("contains %q: pattern triples have no direct containment", fact)
	}

	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM facts
		WHERE id = ? AND predicate = ? AND object = ?
	`,
		fact.ID,
		fact.Predicate,
		fact.Object,
	).Scan(&one)

	if err == nil {
		return true, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return false, fmt.Errorf("contains %q: %w", fact, err)
}

// Count returns the number of stored facts.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM facts").Scan(&n); err != nil {
		return 0, fmt.Errorf("count facts: %w", err)
	}
	return n, nil
}

// List returns all stored facts in deterministic order:
// ORDER BY id, predicate, object, each COLLATE BINARY ASC.
//
// Returns an empty slice (not nil) when the store is empty.
func (s *Store) List(ctx context.Context) ([]triple.Triple, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, predicate, object FROM facts
		ORDER BY id COLLATE BINARY ASC,
		         predicate COLLATE BINARY ASC,
		         object COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list facts: %w", err)
	}
	defer rows.Close()

	facts := []triple.Triple{}
	for rows.Next() {
		var f triple.Triple
		if err := rows.Scan(&f.ID, &f.Predicate, &f.Object); err != nil {
			return nil, fmt.Errorf("scan fact: %w", err)
		}
		// Rows were normalized at insert; no re-validation on the way out.
		facts = append(facts, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate facts: %w", err)
	}

	return facts, nil
}

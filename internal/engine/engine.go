// Package engine ties the matching core to the fact store backend.
//
// Control flow per operation: the parser produces an ordered list of
// pattern triples; the store enumerates the binding sets satisfying the
// conjunction; the binder re-applies the accumulated bindings to the
// original patterns to materialize the affected concrete facts (used to
// report matches and removals).
package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/roach88/triad/internal/query"
	"github.com/roach88/triad/internal/store"
	"github.com/roach88/triad/internal/triple"
)

// Engine executes assert/retract/query operations against a fact store.
type Engine struct {
	store *store.Store
}

// New creates an Engine over an open store.
func New(st *store.Store) (*Engine, error) {
	if st == nil {
		return nil, &triple.MissingArgumentError{Name: "store"}
	}
	return &Engine{store: st}, nil
}

// Solution is one satisfying assignment of a conjunctive query: the binding
// set plus the concrete facts obtained by substituting it into each pattern,
// in clause order.
type Solution struct {
	Bindings triple.Bindings
	Facts    []triple.Triple
}

// Assert parses the text as a conjunction of concrete facts and inserts
// each one. A clause containing an unbound variable fails the whole
// operation before anything is written.
func (e *Engine) Assert(ctx context.Context, text string) ([]triple.Triple, error) {
	facts, err := query.ParseClauses(text)
	if err != nil {
		return nil, err
	}

	// Validate every clause before the first write.
	for _, f := range facts {
		if f.IsPattern() {
			return nil, &triple.FormatError{Code: triple.ErrCodeUnboundVariable, Clause: f.String()}
		}
	}

	inserted := make([]triple.Triple, 0, len(facts))
	for _, f := range facts {
		if err := e.store.Insert(ctx, f); err != nil {
			return nil, err
		}
		inserted = append(inserted, f)
	}

	return inserted, nil
}

// Query parses the text as a pattern conjunction, enumerates satisfying
// binding sets via the store, and materializes each solution's facts by
// substitution.
//
// The returned bindings are re-derived in the core by folding
// DeriveBindings over the pattern/fact list, with earlier patterns taking
// precedence - the conjunction's binding order is a core guarantee, not a
// backend one.
func (e *Engine) Query(ctx context.Context, text string) ([]Solution, error) {
	patterns, err := query.ParseClauses(text)
	if err != nil {
		return nil, err
	}

	sets, err := e.store.Select(ctx, patterns)
	if err != nil {
		return nil, err
	}

	solutions := make([]Solution, 0, len(sets))
	for _, set := range sets {
		facts := make([]triple.Triple, len(patterns))
		for i, p := range patterns {
			facts[i] = p.Substitute(set)
		}

		derived := triple.NewBindings()
		for i, p := range patterns {
			next, ok := triple.DeriveBindings(p, facts[i], derived)
			if !ok {
				return nil, fmt.Errorf("backend binding set does not satisfy pattern %q", p)
			}
			derived = next
		}

		solutions = append(solutions, Solution{Bindings: derived, Facts: facts})
	}

	return solutions, nil
}

// Retract parses the text as a pattern conjunction and removes every fact
// matched by it. Concrete clauses remove themselves when present.
//
// Each removal is a containment check followed by a delete; the backend
// serializes its own enumeration and persistence, so the read-then-write
// needs no locking here. Returns the removed facts, deduplicated, in
// deterministic order.
func (e *Engine) Retract(ctx context.Context, text string) ([]triple.Triple, error) {
	solutions, err := e.Query(ctx, text)
	if err != nil {
		return nil, err
	}

	removed := []triple.Triple{}
	seen := map[triple.Triple]bool{}

	for _, sol := range solutions {
		for _, f := range sol.Facts {
			if seen[f] {
				continue
			}
			seen[f] = true

			present, err := e.store.Contains(ctx, f)
			if err != nil {
				return nil, err
			}
			if !present {
				continue
			}

			if err := e.store.Delete(ctx, f); err != nil {
				return nil, err
			}
			removed = append(removed, f)
		}
	}

	sort.Slice(removed, func(i, j int) bool {
		a, b := removed[i], removed[j]
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		if a.Predicate != b.Predicate {
			return a.Predicate < b.Predicate
		}
		return a.Object < b.Object
	})

	return removed, nil
}

// Clear removes all facts from the store.
func (e *Engine) Clear(ctx context.Context) error {
	return e.store.Clear(ctx)
}

// Facts returns all stored facts in deterministic order.
func (e *Engine) Facts(ctx context.Context) ([]triple.Triple, error) {
	return e.store.List(ctx)
}

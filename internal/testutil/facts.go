// Package testutil provides shared helpers for tests across packages.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/roach88/triad/internal/engine"
	"github.com/roach88/triad/internal/query"
	"github.com/roach88/triad/internal/store"
	"github.com/roach88/triad/internal/triple"
)

// MustTriple builds a triple or fails the test.
func MustTriple(t *testing.T, id, predicate, object string) triple.Triple {
	t.Helper()

	tr, err := triple.New(id, predicate, object)
	if err != nil {
		t.Fatalf("MustTriple(%q, %q, %q): %v", id, predicate, object, err)
	}
	return tr
}

// MustParse parses a query string or fails the test.
func MustParse(t *testing.T, text string) []triple.Triple {
	t.Helper()

	patterns, err := query.ParseClauses(text)
	if err != nil {
		t.Fatalf("MustParse(%q): %v", text, err)
	}
	return patterns
}

// OpenStore opens a store backed by a temporary database file and closes it
// when the test finishes.
func OpenStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "triad.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// OpenEngine opens an engine over a temporary store.
func OpenEngine(t *testing.T) *engine.Engine {
	t.Helper()

	e, err := engine.New(OpenStore(t))
	if err != nil {
		t.Fatalf("OpenEngine: %v", err)
	}
	return e
}

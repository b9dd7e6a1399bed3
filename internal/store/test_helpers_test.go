package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/triad/internal/query"
	"github.com/roach88/triad/internal/triple"
)

// newTestStore opens a store backed by a temporary database file.
// The file (not :memory:) keeps pragma behavior identical to production.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "triad.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func mustTriple(t *testing.T, id, pred, obj string) triple.Triple {
	t.Helper()

	tr, err := triple.New(id, pred, obj)
	require.NoError(t, err)
	return tr
}

func mustParse(t *testing.T, text string) []triple.Triple {
	t.Helper()

	patterns, err := query.ParseClauses(text)
	require.NoError(t, err)
	return patterns
}

// seedFacts inserts the classic likes-chain fixture.
func seedFacts(t *testing.T, s *Store) {
	t.Helper()

	ctx := context.Background()
	for _, f := range []triple.Triple{
		mustTriple(t, "alice", "likes", "bob"),
		mustTriple(t, "bob", "likes", "cake"),
		mustTriple(t, "carol", "likes", "cake"),
		mustTriple(t, "cake", "contains", "sugar"),
	} {
		require.NoError(t, s.Insert(ctx, f))
	}
}

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/triad/internal/triple"
)

func bindingMaps(sets []triple.Bindings) []map[string]string {
	out := make([]map[string]string, len(sets))
	for i, b := range sets {
		out[i] = b.Map()
	}
	return out
}

func TestSelect_SinglePattern(t *testing.T) {
	s := newTestStore(t)
	seedFacts(t, s)

	got, err := s.Select(context.Background(), mustParse(t, "?who likes cake"))
	require.NoError(t, err)

	assert.Equal(t, []map[string]string{
		{"?who": "bob"},
		{"?who": "carol"},
	}, bindingMaps(got))
}

func TestSelect_ConjunctionJoin(t *testing.T) {
	s := newTestStore(t)
	seedFacts(t, s)

	// The two-pattern join runs inside SQLite; the core only consumes the
	// binding sets.
	got, err := s.Select(context.Background(), mustParse(t, "?a likes ?b . ?b likes cake"))
	require.NoError(t, err)

	assert.Equal(t, []map[string]string{
		{"?a": "alice", "?b": "bob"},
	}, bindingMaps(got))
}

func TestSelect_ChainThroughPredicates(t *testing.T) {
	s := newTestStore(t)
	seedFacts(t, s)

	got, err := s.Select(context.Background(), mustParse(t, "?a likes ?b . ?b contains sugar"))
	require.NoError(t, err)

	assert.Equal(t, []map[string]string{
		{"?a": "bob", "?b": "cake"},
		{"?a": "carol", "?b": "cake"},
	}, bindingMaps(got))
}

func TestSelect_ConcreteExistence(t *testing.T) {
	s := newTestStore(t)
	seedFacts(t, s)
	ctx := context.Background()

	// Present: exactly one empty binding set.
	got, err := s.Select(ctx, mustParse(t, "alice likes bob"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Len())

	// Absent: no binding sets, and no error - no-match is not an error.
	got, err = s.Select(ctx, mustParse(t, "alice likes cake"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelect_NoMatchReturnsEmptySlice(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Select(context.Background(), mustParse(t, "?a likes ?b"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSelect_DeterministicOrder(t *testing.T) {
	s := newTestStore(t)
	seedFacts(t, s)
	ctx := context.Background()

	first, err := s.Select(ctx, mustParse(t, "?a likes ?b"))
	require.NoError(t, err)

	second, err := s.Select(ctx, mustParse(t, "?a likes ?b"))
	require.NoError(t, err)

	assert.Equal(t, bindingMaps(first), bindingMaps(second))
	assert.Equal(t, []map[string]string{
		{"?a": "alice", "?b": "bob"},
		{"?a": "bob", "?b": "cake"},
		{"?a": "carol", "?b": "cake"},
	}, bindingMaps(first))
}

func TestList_DeterministicOrder(t *testing.T) {
	s := newTestStore(t)
	seedFacts(t, s)

	got, err := s.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []triple.Triple{
		{ID: "alice", Predicate: "likes", Object: "bob"},
		{ID: "bob", Predicate: "likes", Object: "cake"},
		{ID: "cake", Predicate: "contains", Object: "sugar"},
		{ID: "carol", Predicate: "likes", Object: "cake"},
	}, got)
}

func TestCount(t *testing.T) {
	s := newTestStore(t)
	seedFacts(t, s)

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

package triple

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTriple(t *testing.T, id, pred, obj string) Triple {
	t.Helper()
	tr, err := New(id, pred, obj)
	require.NoError(t, err)
	return tr
}

func TestMatchesFact_Literals(t *testing.T) {
	fact := mustTriple(t, "alice", "likes", "bob")

	assert.True(t, MatchesFact(mustTriple(t, "alice", "likes", "bob"), fact))
	assert.True(t, MatchesFact(mustTriple(t, "Alice", "LIKES", "Bob"), fact),
		"literal comparison is case-insensitive")
	assert.False(t, MatchesFact(mustTriple(t, "alice", "likes", "cake"), fact))
	assert.False(t, MatchesFact(mustTriple(t, "carol", "likes", "bob"), fact))
}

func TestMatchesFact_Variables(t *testing.T) {
	fact := mustTriple(t, "alice", "likes", "bob")

	assert.True(t, MatchesFact(mustTriple(t, "?a", "likes", "bob"), fact))
	assert.True(t, MatchesFact(mustTriple(t, "?a", "?rel", "?b"), fact))
	assert.False(t, MatchesFact(mustTriple(t, "?a", "hates", "?b"), fact))
}

func TestMatchesFact_RepeatedVariable(t *testing.T) {
	// A pattern with the same variable in id and object matches a fact iff
	// the fact's id and object are equal, regardless of the predicate slot
	// matching on its own.
	pattern := mustTriple(t, "?a", "likes", "?a")

	assert.True(t, MatchesFact(pattern, mustTriple(t, "narcissus", "likes", "narcissus")))
	assert.False(t, MatchesFact(pattern, mustTriple(t, "alice", "likes", "bob")))
}

func TestMatchesFact_RepeatedVariableCaseInsensitive(t *testing.T) {
	pattern := mustTriple(t, "?a", "likes", "?a")
	fact := mustTriple(t, "Narcissus", "likes", "NARCISSUS")

	assert.True(t, MatchesFact(pattern, fact),
		"repeated-variable equality is case-insensitive")
}

func TestMatchesFactScratch_ClearedAtEntry(t *testing.T) {
	scratch := make(Scratch, 3)

	// First attempt binds ?a to alice.
	assert.True(t, MatchesFactScratch(mustTriple(t, "?a", "likes", "bob"), mustTriple(t, "alice", "likes", "bob"), scratch))

	// A stale ?a binding must not leak into an unrelated attempt.
	assert.True(t, MatchesFactScratch(mustTriple(t, "?a", "likes", "cake"), mustTriple(t, "carol", "likes", "cake"), scratch))
	assert.Equal(t, "carol", scratch["?a"])
}

func TestMatchesFactScratch_NilScratch(t *testing.T) {
	ok := MatchesFactScratch(mustTriple(t, "?a", "likes", "?b"), mustTriple(t, "alice", "likes", "bob"), nil)
	assert.True(t, ok)
}

func TestDeriveBindings_BindsVariableSlots(t *testing.T) {
	pattern := mustTriple(t, "?a", "likes", "?b")
	fact := mustTriple(t, "alice", "likes", "bob")

	got, ok := DeriveBindings(pattern, fact, NewBindings())
	require.True(t, ok)

	assert.Equal(t, 2, got.Len())
	val, found := got.Lookup("?a")
	require.True(t, found)
	assert.Equal(t, "alice", val)
	val, found = got.Lookup("?b")
	require.True(t, found)
	assert.Equal(t, "bob", val)
}

func TestDeriveBindings_NoMatchIsNotAnError(t *testing.T) {
	pattern := mustTriple(t, "?a", "hates", "?b")
	fact := mustTriple(t, "alice", "likes", "bob")

	_, ok := DeriveBindings(pattern, fact, NewBindings())
	assert.False(t, ok)
}

func TestDeriveBindings_ExistingKeysWin(t *testing.T) {
	// An established binding is never overwritten: existing={?a -> x} stays
	// ?a -> x even when the match implies ?a -> y.
	existing := BindingsFrom([]Binding{{Name: "?a", Value: "x"}})

	pattern := mustTriple(t, "?a", "likes", "?b")
	fact := mustTriple(t, "y", "likes", "cake")

	got, ok := DeriveBindings(pattern, fact, existing)
	require.True(t, ok)

	val, found := got.Lookup("?a")
	require.True(t, found)
	assert.Equal(t, "x", val)

	val, found = got.Lookup("?b")
	require.True(t, found)
	assert.Equal(t, "cake", val)
}

func TestDeriveBindings_SubstituteRoundTrip(t *testing.T) {
	// For all patterns P and facts F: if MatchesFact(P, F) and B is the
	// derived bindings, then Substitute(P, B) == F.
	testCases := []struct {
		name    string
		pattern Triple
		fact    Triple
	}{
		{"two variables", mustTriple(t, "?a", "likes", "?b"), mustTriple(t, "alice", "likes", "bob")},
		{"all variables", mustTriple(t, "?s", "?p", "?o"), mustTriple(t, "alice", "likes", "bob")},
		{"repeated variable", mustTriple(t, "?a", "likes", "?a"), mustTriple(t, "narcissus", "likes", "narcissus")},
		{"no variables", mustTriple(t, "alice", "likes", "bob"), mustTriple(t, "alice", "likes", "bob")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, ok := DeriveBindings(tc.pattern, tc.fact, NewBindings())
			require.True(t, ok)
			assert.Equal(t, tc.fact, tc.pattern.Substitute(b))
		})
	}
}

func TestMatching_ConcurrentAttempts(t *testing.T) {
	// Triple and Bindings are immutable, so independent matching attempts
	// against the same pattern may run fully in parallel, each with its own
	// scratch table.
	pattern := mustTriple(t, "?a", "likes", "?b")
	facts := []Triple{
		mustTriple(t, "alice", "likes", "bob"),
		mustTriple(t, "bob", "likes", "cake"),
		mustTriple(t, "carol", "likes", "dave"),
	}

	done := make(chan bool, len(facts)*8)
	for i := 0; i < 8; i++ {
		for _, f := range facts {
			go func(f Triple) {
				done <- MatchesFact(pattern, f)
			}(f)
		}
	}
	for i := 0; i < len(facts)*8; i++ {
		assert.True(t, <-done)
	}
}

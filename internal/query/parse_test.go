package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/triad/internal/triple"
)

func TestParseClauses_Conjunction(t *testing.T) {
	got, err := ParseClauses("?a likes ?b . ?b likes cake")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, triple.Triple{ID: "?a", Predicate: "likes", Object: "?b"}, got[0])
	assert.Equal(t, triple.Triple{ID: "?b", Predicate: "likes", Object: "cake"}, got[1])
}

func TestParseClauses_SingleClause(t *testing.T) {
	got, err := ParseClauses("alice likes bob")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, triple.Triple{ID: "alice", Predicate: "likes", Object: "bob"}, got[0])
}

func TestParseClauses_LowercasesInput(t *testing.T) {
	got, err := ParseClauses("Alice LIKES Bob")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, triple.Triple{ID: "alice", Predicate: "likes", Object: "bob"}, got[0])
}

func TestParseClauses_QuotedSpanIsOneToken(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  triple.Triple
	}{
		{
			"double quoted object",
			`alice likes "chocolate cake"`,
			triple.Triple{ID: "alice", Predicate: "likes", Object: "chocolate cake"},
		},
		{
			"single quoted object",
			`alice likes 'chocolate cake'`,
			triple.Triple{ID: "alice", Predicate: "likes", Object: "chocolate cake"},
		},
		{
			"quoted id",
			`"the white rabbit" fears alice`,
			triple.Triple{ID: "the white rabbit", Predicate: "fears", Object: "alice"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseClauses(tc.input)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tc.want, got[0])
		})
	}
}

func TestParseClauses_PreservesClauseOrder(t *testing.T) {
	got, err := ParseClauses("a p b . c q d . e r f")
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Equal(t, "e", got[2].ID)
}

func TestParseClauses_MalformedClause(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"two tokens", "a b"},
		{"four tokens", "a b c d"},
		{"one token", "a"},
		{"empty clause in conjunction", "a b c .  . d e f"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseClauses(tc.input)
			require.Error(t, err)

			var fe *triple.FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, triple.ErrCodeMalformedClause, fe.Code)
		})
	}
}

func TestParseClauses_EmptyTextIsMissingArgument(t *testing.T) {
	for _, input := range []string{"", "   "} {
		_, err := ParseClauses(input)
		require.Error(t, err)
		assert.True(t, triple.IsMissingArgument(err))
	}
}

func TestParseClauses_ClauseInheritsPrimitiveValidation(t *testing.T) {
	_, err := ParseClauses("alice likes ...")
	require.Error(t, err)

	var fe *triple.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, triple.ErrCodePunctuationOnly, fe.Code)
}

func TestParseClauses_UnterminatedQuote(t *testing.T) {
	_, err := ParseClauses(`alice likes "chocolate cake`)
	require.Error(t, err)

	var fe *triple.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, triple.ErrCodeMalformedQuote, fe.Code)
}

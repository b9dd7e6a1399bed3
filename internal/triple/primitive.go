package triple

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// VariablePrefix is the reserved character that marks a primitive as a
// variable. A token whose first character (after trimming) is this prefix is
// an unbound query parameter rather than an opaque value.
const VariablePrefix = "?"

// quoteMarks are the characters accepted as primitive delimiters.
// A quoted span counts as a single token during clause parsing.
const quoteMarks = `"'`

// NormalizePrimitive validates and normalizes a raw token into its canonical
// form:
//
//  1. Trim surrounding whitespace; empty input is a format error.
//  2. Apply unicode NFC normalization.
//  3. If the token starts with a quote mark, require the matching closing
//     quote at the end and keep the trimmed interior; anything else is a
//     format error.
//  4. Lowercase (the domain is case-insensitive).
//  5. Reject a result composed entirely of non-word characters. Letters,
//     digits, and underscore count as word characters, so "..." fails while
//     "?a" (variable prefix plus name) passes.
//
// Normalization is idempotent: a normalized primitive passes through
// unchanged.
func NormalizePrimitive(raw string) (string, error) {
	tok := strings.TrimSpace(raw)
	if tok == "" {
		return "", &FormatError{Code: ErrCodeEmptyPrimitive, Token: raw}
	}

	tok = norm.NFC.String(tok)

	if strings.ContainsRune(quoteMarks, rune(tok[0])) {
		if len(tok) < 2 || tok[len(tok)-1] != tok[0] {
			return "", &FormatError{Code: ErrCodeMalformedQuote, Token: raw}
		}
		tok = strings.TrimSpace(tok[1 : len(tok)-1])
	}

	tok = strings.ToLower(tok)

	if tok == "" || !containsWordRune(tok) {
		return "", &FormatError{Code: ErrCodePunctuationOnly, Token: raw}
	}

	return tok, nil
}

// IsVariable reports whether a token is a variable: after trimming, it
// starts with the reserved prefix character.
func IsVariable(tok string) bool {
	return strings.HasPrefix(strings.TrimSpace(tok), VariablePrefix)
}

// AsVariable canonicalizes a variable name, prefixing it with the reserved
// character if absent. Both constructed query variables and caller-supplied
// binding keys pass through AsVariable before lookup, so lookups are
// prefix-insensitive externally while storage keys stay canonical.
func AsVariable(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(name, VariablePrefix) {
		return name
	}
	return VariablePrefix + name
}

// containsWordRune reports whether s contains at least one word character.
func containsWordRune(s string) bool {
	for _, r := range s {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

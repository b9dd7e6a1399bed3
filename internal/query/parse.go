// Package query parses the textual query surface into pattern triples.
//
// The wire format is fixed for compatibility: clauses separated by the
// literal " . ", each clause exactly three whitespace- or quote-delimited
// tokens, a leading "?" marking a variable. Clause order is preserved -
// conjunction order determines binding precedence downstream.
package query

import (
	"fmt"
	"strings"

	"github.com/roach88/triad/internal/triple"
)

// ClauseSeparator is the literal separator between clauses of a conjunctive
// query. The surrounding spaces are part of the separator: "a b c. d e f"
// is one (malformed) clause, not two.
const ClauseSeparator = " . "

// ParseClauses parses a query string into an ordered list of triples, one
// per clause. Each clause inherits triple construction validation, so a
// malformed primitive anywhere fails the whole parse with a format error
// naming the offending clause.
func ParseClauses(text string) ([]triple.Triple, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &triple.MissingArgumentError{Name: "query text"}
	}

	clauses := strings.Split(strings.ToLower(text), ClauseSeparator)
	triples := make([]triple.Triple, 0, len(clauses))

	for _, clause := range clauses {
		clause = strings.TrimSpace(clause)

		tokens := tokenize(clause)
		if len(tokens) != 3 {
			return nil, &triple.FormatError{Code: triple.ErrCodeMalformedClause, Clause: clause}
		}

		tr, err := triple.New(tokens[0], tokens[1], tokens[2])
		if err != nil {
			return nil, fmt.Errorf("clause %q: %w", clause, err)
		}
		triples = append(triples, tr)
	}

	return triples, nil
}

// tokenize splits a clause into tokens. A quoted span (either quote mark)
// counts as one token, quotes included; everything else splits on
// whitespace. An unterminated quote swallows the rest of the clause and the
// resulting token fails primitive validation with a malformed-quote error.
func tokenize(clause string) []string {
	var tokens []string

	i := 0
	for i < len(clause) {
		c := clause[i]

		switch {
		case c == ' ' || c == '\t':
			i++

		case c == '"' || c == '\'':
			end := strings.IndexByte(clause[i+1:], c)
			if end < 0 {
				tokens = append(tokens, clause[i:])
				return tokens
			}
			tokens = append(tokens, clause[i:i+end+2])
			i += end + 2

		default:
			end := strings.IndexAny(clause[i:], " \t")
			if end < 0 {
				tokens = append(tokens, clause[i:])
				return tokens
			}
			tokens = append(tokens, clause[i:i+end])
			i += end
		}
	}

	return tokens
}

// Package triple provides the core data model for subject-predicate-object
// facts and the pattern matching algorithm that runs against them.
//
// A Triple holds three normalized primitives: an id (subject), a predicate,
// and an object. A primitive carrying the reserved "?" prefix is a variable;
// a triple containing at least one variable is a pattern, and a triple with
// none is a concrete fact.
//
// # Normalization
//
// Every primitive is validated and normalized once, at construction:
//   - surrounding whitespace is trimmed
//   - text is NFC normalized (consistent unicode representation)
//   - a surrounding quote pair (" or ') is stripped, keeping the trimmed body
//   - the result is lowercased (the whole domain is case-insensitive)
//
// Empty, unterminated-quote, and punctuation-only primitives fail with a
// FormatError at construction. No partially-built Triple is ever observable.
//
// Because slots are lowercased up front, byte equality over slots IS
// case-insensitive equality: Triples built from "Alice" and "alice" compare
// equal and may be used interchangeably as map keys.
//
// # Matching
//
// MatchesFact decides whether a pattern matches a fact. A repeated variable
// within one pattern must see equal fact slots at every occurrence; the
// per-invocation scratch table that enforces this is either allocated fresh
// or supplied by the caller (and cleared at entry) for reuse across many
// facts. DeriveBindings additionally produces the variable bindings a match
// implies, layered under an existing Bindings set with first-write-wins
// precedence.
//
// All types are immutable after construction and safe to share across
// goroutines without synchronization. Matching allocates no hidden state:
// independent matching attempts against the same pattern may run in
// parallel, each with its own scratch table.
package triple

package triple

import "fmt"

// Triple is an ordered (id, predicate, object) of normalized primitives.
//
// All three slots are non-empty and normalized (lowercased), so the struct
// is directly comparable and usable as a map key; equality over slots is
// case-insensitive equality by construction. Triples are immutable:
// Substitute derives a new value rather than mutating.
type Triple struct {
	ID        string
	Predicate string
	Object    string
}

// New constructs a Triple from three raw strings, validating and normalizing
// each slot immediately. An invalid primitive fails construction with a
// FormatError; no partially-normalized Triple is ever returned.
func New(id, predicate, object string) (Triple, error) {
	nid, err := NormalizePrimitive(id)
	if err != nil {
		return Triple{}, fmt.Errorf("id: %w", err)
	}

	npred, err := NormalizePrimitive(predicate)
	if err != nil {
		return Triple{}, fmt.Errorf("predicate: %w", err)
	}

	nobj, err := NormalizePrimitive(object)
	if err != nil {
		return Triple{}, fmt.Errorf("object: %w", err)
	}

	return Triple{ID: nid, Predicate: npred, Object: nobj}, nil
}

// IsPattern reports whether any slot is a variable. A pattern matches facts;
// a concrete fact (no variables) can be stored.
func (t Triple) IsPattern() bool {
	return IsVariable(t.ID) || IsVariable(t.Predicate) || IsVariable(t.Object)
}

// String returns the triple in query-clause form: "id predicate object".
func (t Triple) String() string {
	return t.ID + " " + t.Predicate + " " + t.Object
}

// Substitute applies a Bindings set to the triple, replacing each variable
// slot that is bound with its bound value. Bound values are trusted to be
// already normalized and are not re-validated. If no slot changes, the
// original triple is returned unchanged.
func (t Triple) Substitute(b Bindings) Triple {
	id := substituteSlot(t.ID, b)
	pred := substituteSlot(t.Predicate, b)
	obj := substituteSlot(t.Object, b)

	if id == t.ID && pred == t.Predicate && obj == t.Object {
		return t
	}
	return Triple{ID: id, Predicate: pred, Object: obj}
}

// substituteSlot replaces a variable slot with its bound value, if any.
// Literal slots and unbound variables pass through unchanged.
func substituteSlot(slot string, b Bindings) string {
	if !IsVariable(slot) {
		return slot
	}
	if val, ok := b.Lookup(slot); ok {
		return val
	}
	return slot
}

// slotPairs returns the aligned (pattern slot, fact slot) pairs in
// id, predicate, object order. Matching walks the pairs in this order.
func slotPairs(pattern, fact Triple) [3][2]string {
	return [3][2]string{
		{pattern.ID, fact.ID},
		{pattern.Predicate, fact.Predicate},
		{pattern.Object, fact.Object},
	}
}

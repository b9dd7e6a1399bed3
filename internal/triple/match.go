package triple

// Scratch is the mutable workspace used during one matching attempt. It
// records, per variable, the fact value the variable was bound to earlier in
// the same attempt, enforcing equality across repeated uses of one variable
// within a single pattern.
//
// A Scratch is caller-owned: supply one to MatchesFactScratch to reuse the
// allocation across many facts. It is cleared at the entry of every matching
// attempt, never assumed empty, so no state leaks across unrelated calls.
type Scratch map[string]string

// MatchesFact reports whether a pattern matches a fact. The scratch table is
// private to this invocation.
func MatchesFact(pattern, fact Triple) bool {
	return matchSlots(pattern, fact, make(Scratch, 3))
}

// MatchesFactScratch is MatchesFact with a caller-supplied scratch table,
// cleared at entry. Use when matching one pattern against many facts to
// avoid a per-fact allocation.
func MatchesFactScratch(pattern, fact Triple, scratch Scratch) bool {
	if scratch == nil {
		scratch = make(Scratch, 3)
	}
	clear(scratch)
	return matchSlots(pattern, fact, scratch)
}

// matchSlots walks the aligned slot pairs in id, predicate, object order and
// short-circuits on the first failing slot.
func matchSlots(pattern, fact Triple, scratch Scratch) bool {
	for _, pair := range slotPairs(pattern, fact) {
		if !matchSlot(pair[0], pair[1], scratch) {
			return false
		}
	}
	return true
}

// matchSlot matches a single pattern slot against a fact slot.
//
// A variable slot consults the scratch table: if the variable was bound
// earlier in this attempt to a different value, the slot fails; otherwise
// the binding is recorded and the slot matches. A literal slot matches iff
// equal to the fact slot (slots are normalized at construction, so byte
// equality is case-insensitive equality).
func matchSlot(pslot, fslot string, scratch Scratch) bool {
	if IsVariable(pslot) {
		if prev, seen := scratch[pslot]; seen && prev != fslot {
			return false
		}
		scratch[pslot] = fslot
		return true
	}
	return pslot == fslot
}

// DeriveBindings runs MatchesFact and, on success, returns the existing
// Bindings set layered under a binding for each variable slot not already
// present - existing keys win, so a later pattern in a conjunction cannot
// override a binding fixed earlier.
//
// Returns ok=false iff the pattern does not match the fact. No-match is a
// normal outcome, not an error.
func DeriveBindings(pattern, fact Triple, existing Bindings) (Bindings, bool) {
	if !MatchesFact(pattern, fact) {
		return existing, false
	}

	var additions []Binding
	for _, pair := range slotPairs(pattern, fact) {
		if IsVariable(pair[0]) && !existing.Contains(pair[0]) {
			additions = append(additions, Binding{Name: pair[0], Value: pair[1]})
		}
	}

	if len(additions) == 0 {
		return existing, true
	}
	return existing.Layer(additions...), true
}

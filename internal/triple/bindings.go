package triple

import "sort"

// Binding is an immutable (variable name, value) pair. Name is canonicalized
// to carry the variable prefix when the binding enters a Bindings set.
type Binding struct {
	Name  string
	Value string
}

// Bindings is an immutable mapping from canonical variable name to value,
// accumulated while matching a conjunction of patterns.
//
// A Bindings set is built once - empty, from a raw collection, or by layering
// additions atop an existing set - and never mutated afterward. Layering
// copies the base, so an old set remains independently valid after being
// used as a layering base. Because the set is immutable it may be shared
// freely across goroutines.
type Bindings struct {
	vals map[string]string
}

// NewBindings returns an empty Bindings set.
func NewBindings() Bindings {
	return Bindings{}
}

// BindingsFrom builds a Bindings set from a raw collection of pairs.
// Duplicate keys keep the first occurrence; later duplicates are dropped
// silently.
func BindingsFrom(pairs []Binding) Bindings {
	vals := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name := AsVariable(p.Name)
		if _, ok := vals[name]; !ok {
			vals[name] = p.Value
		}
	}
	return Bindings{vals: vals}
}

// Layer builds a new Bindings set with the additions inserted only for keys
// absent from the receiver: established bindings are never overwritten by
// later additions. The receiver is unchanged.
//
// Precedence is an explicit two-phase build - copy the base entries, then
// insert additions for absent keys only - so a later pattern in a
// conjunction cannot override a binding fixed earlier.
func (b Bindings) Layer(additions ...Binding) Bindings {
	vals := make(map[string]string, len(b.vals)+len(additions))
	for k, v := range b.vals {
		vals[k] = v
	}
	for _, a := range additions {
		name := AsVariable(a.Name)
		if _, ok := vals[name]; !ok {
			vals[name] = a.Value
		}
	}
	return Bindings{vals: vals}
}

// Lookup returns the value bound to a variable name, canonicalizing the name
// first so lookups succeed with or without the variable prefix.
func (b Bindings) Lookup(name string) (string, bool) {
	val, ok := b.vals[AsVariable(name)]
	return val, ok
}

// Contains reports whether a variable name is bound.
func (b Bindings) Contains(name string) bool {
	_, ok := b.vals[AsVariable(name)]
	return ok
}

// Len returns the number of bindings in the set.
func (b Bindings) Len() int {
	return len(b.vals)
}

// Names returns the canonical variable names in sorted order, for
// deterministic iteration and output.
func (b Bindings) Names() []string {
	names := make([]string, 0, len(b.vals))
	for name := range b.vals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the underlying mapping. Mutating the copy does not
// affect the set.
func (b Bindings) Map() map[string]string {
	m := make(map[string]string, len(b.vals))
	for k, v := range b.vals {
		m[k] = v
	}
	return m
}

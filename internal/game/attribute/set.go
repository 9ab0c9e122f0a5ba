package attribute

import (
	"fmt"
	"slices"
)

// Set maps a Kind to the attribute currently held for it. Iteration follows
// Kind display order regardless of insertion order.
//
// The zero value is an empty, usable Set.
type Set struct {
	items map[Kind]Attribute
}

// NewSet builds a Set from attrs.
//
// Precondition: attrs must not repeat a Kind.
// Postcondition: Returns a Set holding every attr, or an error naming the repeated kind.
func NewSet(attrs ...Attribute) (Set, error) {
	s := Set{items: make(map[Kind]Attribute, len(attrs))}
	for _, a := range attrs {
		if _, dup := s.items[a.Type.Kind]; dup {
			return Set{}, fmt.Errorf("duplicate attribute kind %s", a.Type.Kind)
		}
		s.items[a.Type.Kind] = a
	}
	return s, nil
}

// Get returns the attribute stored for k.
func (s Set) Get(k Kind) (Attribute, bool) {
	a, ok := s.items[k]
	return a, ok
}

// Put stores a under its kind, replacing any previous entry.
func (s *Set) Put(a Attribute) {
	if s.items == nil {
		s.items = make(map[Kind]Attribute)
	}
	s.items[a.Type.Kind] = a
}

// Len returns the number of kinds held.
func (s Set) Len() int {
	return len(s.items)
}

// Kinds returns the held kinds in display order.
func (s Set) Kinds() []Kind {
	kinds := make([]Kind, 0, len(s.items))
	for k := range s.items {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// All returns the held attributes in display order.
func (s Set) All() []Attribute {
	kinds := s.Kinds()
	out := make([]Attribute, len(kinds))
	for i, k := range kinds {
		out[i] = s.items[k]
	}
	return out
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := Set{items: make(map[Kind]Attribute, len(s.items))}
	for k, a := range s.items {
		out.items[k] = a.clone()
	}
	return out
}

package primitives

import (
	"sort"
	"strconv"
	"strings"
)

// StateID identifies a state; valid values are 0..StateCount()-1.
type StateID int

// InitialState is the start state of every automaton.
const InitialState StateID = 0

// StateSet is an unordered, duplicate-free set of states.
//
// The zero value (nil) is a valid empty set for reads; use NewStateSet
// before calling Add or Union.
type StateSet map[StateID]struct{}

// NewStateSet returns a set holding ids.
func NewStateSet(ids ...StateID) StateSet {
	s := make(StateSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id and reports whether it was not already present.
func (s StateSet) Add(id StateID) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

// Has reports membership.
func (s StateSet) Has(id StateID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of states in s.
func (s StateSet) Len() int {
	return len(s)
}

// Union adds every member of other to s in place and returns the number of
// states that were new.
func (s StateSet) Union(other StateSet) int {
	added := 0
	for id := range other {
		if s.Add(id) {
			added++
		}
	}
	return added
}

// Intersects reports whether s and other share at least one state.
func (s StateSet) Intersects(other StateSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for id := range small {
		if large.Has(id) {
			return true
		}
	}
	return false
}

// SubsetOf reports whether every member of s is in other.
func (s StateSet) SubsetOf(other StateSet) bool {
	if len(s) > len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Equal reports set equality.
func (s StateSet) Equal(other StateSet) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Clone returns an independent copy. A nil set clones to an empty set.
func (s StateSet) Clone() StateSet {
	c := make(StateSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Clear removes every member.
func (s StateSet) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// Sorted returns the members in ascending order. Ordering is for display
// only.
func (s StateSet) Sorted() []StateID {
	ids := make([]StateID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// String renders s as "{1,2,3}".
func (s StateSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range s.Sorted() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	b.WriteByte('}')
	return b.String()
}

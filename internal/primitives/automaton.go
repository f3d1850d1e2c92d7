// Package primitives defines the foundational data structures for the automaton engine.
//
// Automaton holds the state count, the alphabet size, the accepting set and a
// total transition table indexed by (state, symbol). Column 0 of the table is
// the epsilon column. Validation rejects negative or zero counts, alphabets
// larger than the supported letters and any state reference outside the
// state range.
package primitives

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrInvalidCount  = errors.New("invalid count")
	ErrInvalidState  = errors.New("state out of range")
	ErrInvalidSymbol = errors.New("symbol out of range")
)

// ValidationError describes an inconsistency in an automaton definition.
type ValidationError struct {
	Field string
	Value int
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %d: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Automaton is a (possibly epsilon-) nondeterministic finite automaton.
type Automaton struct {
	stateCount   int
	alphabetSize int
	accepting    StateSet
	transitions  [][]StateSet // [state][symbol], symbol 0 = epsilon
}

// New creates an automaton with no transitions and no accepting states.
func New(stateCount, alphabetSize int) (*Automaton, error) {
	if stateCount <= 0 {
		return nil, &ValidationError{Field: "state count", Value: stateCount, Err: ErrInvalidCount}
	}
	if alphabetSize <= 0 || alphabetSize > MaxAlphabetSize {
		return nil, &ValidationError{Field: "alphabet size", Value: alphabetSize, Err: ErrInvalidCount}
	}
	a := &Automaton{
		stateCount:   stateCount,
		alphabetSize: alphabetSize,
		accepting:    NewStateSet(),
		transitions:  make([][]StateSet, stateCount),
	}
	for s := range a.transitions {
		row := make([]StateSet, alphabetSize+1)
		for sym := range row {
			row[sym] = NewStateSet()
		}
		a.transitions[s] = row
	}
	return a, nil
}

// StateCount returns the number of states.
func (a *Automaton) StateCount() int {
	return a.stateCount
}

// AlphabetSize returns the number of input symbols, epsilon excluded.
func (a *Automaton) AlphabetSize() int {
	return a.alphabetSize
}

func (a *Automaton) checkState(s StateID) error {
	if int(s) < 0 || int(s) >= a.stateCount {
		return &ValidationError{Field: "state", Value: int(s), Err: ErrInvalidState}
	}
	return nil
}

func (a *Automaton) checkSymbol(sym Symbol) error {
	if int(sym) < 0 || int(sym) > a.alphabetSize {
		return &ValidationError{Field: "symbol", Value: int(sym), Err: ErrInvalidSymbol}
	}
	return nil
}

// HasSymbol reports whether sym is a real input symbol of this automaton.
func (a *Automaton) HasSymbol(sym Symbol) bool {
	return sym >= 1 && int(sym) <= a.alphabetSize
}

// SetAccepting marks states as accepting.
func (a *Automaton) SetAccepting(states ...StateID) error {
	for _, s := range states {
		if err := a.checkState(s); err != nil {
			return fmt.Errorf("accepting: %w", err)
		}
	}
	for _, s := range states {
		a.accepting.Add(s)
	}
	return nil
}

// IsAccepting reports whether s is accepting.
func (a *Automaton) IsAccepting(s StateID) bool {
	return a.accepting.Has(s)
}

// Accepting returns the accepting set. The set is owned by the automaton.
func (a *Automaton) Accepting() StateSet {
	return a.accepting
}

// AddTransition adds from --sym--> to for every destination in to.
func (a *Automaton) AddTransition(from StateID, sym Symbol, to ...StateID) error {
	if err := a.checkState(from); err != nil {
		return fmt.Errorf("transition source: %w", err)
	}
	if err := a.checkSymbol(sym); err != nil {
		return fmt.Errorf("transition from %d: %w", from, err)
	}
	for _, t := range to {
		if err := a.checkState(t); err != nil {
			return fmt.Errorf("transition %d --%s--> : %w", from, sym, err)
		}
	}
	cell := a.transitions[from][sym]
	for _, t := range to {
		cell.Add(t)
	}
	return nil
}

// AddEpsilon adds epsilon edges from --> to.
func (a *Automaton) AddEpsilon(from StateID, to ...StateID) error {
	return a.AddTransition(from, Epsilon, to...)
}

// Targets returns the destination set of (s, sym). The set is owned by the
// automaton and must not be modified by callers; use Merge or ClearEpsilons.
// Out-of-range arguments yield an empty set.
func (a *Automaton) Targets(s StateID, sym Symbol) StateSet {
	if a.checkState(s) != nil || a.checkSymbol(sym) != nil {
		return nil
	}
	return a.transitions[s][sym]
}

// Epsilons is shorthand for Targets(s, Epsilon).
func (a *Automaton) Epsilons(s StateID) StateSet {
	return a.Targets(s, Epsilon)
}

// Merge unions the (src, sym) cell into the (dst, sym) cell and returns the
// number of destinations added. Arguments are assumed valid.
func (a *Automaton) Merge(dst, src StateID, sym Symbol) int {
	if dst == src {
		return 0
	}
	return a.transitions[dst][sym].Union(a.transitions[src][sym])
}

// ClearEpsilons empties the epsilon cell of s and returns how many edges
// were removed.
func (a *Automaton) ClearEpsilons(s StateID) int {
	cell := a.transitions[s][Epsilon]
	n := cell.Len()
	cell.Clear()
	return n
}

// HasEpsilons reports whether any state still has an epsilon edge.
func (a *Automaton) HasEpsilons() bool {
	for _, row := range a.transitions {
		if row[Epsilon].Len() > 0 {
			return true
		}
	}
	return false
}

// Validate re-checks every invariant. Automata built through New and the
// mutators are always valid; Validate exists for values assembled by
// decoders.
func (a *Automaton) Validate() error {
	if a.stateCount <= 0 {
		return &ValidationError{Field: "state count", Value: a.stateCount, Err: ErrInvalidCount}
	}
	if a.alphabetSize <= 0 || a.alphabetSize > MaxAlphabetSize {
		return &ValidationError{Field: "alphabet size", Value: a.alphabetSize, Err: ErrInvalidCount}
	}
	if len(a.transitions) != a.stateCount {
		return fmt.Errorf("transition table has %d rows, want %d: %w", len(a.transitions), a.stateCount, ErrInvalidCount)
	}
	for s := range a.accepting {
		if err := a.checkState(s); err != nil {
			return fmt.Errorf("accepting: %w", err)
		}
	}
	for from, row := range a.transitions {
		if len(row) != a.alphabetSize+1 {
			return fmt.Errorf("state %d has %d columns, want %d: %w", from, len(row), a.alphabetSize+1, ErrInvalidCount)
		}
		for sym, cell := range row {
			for t := range cell {
				if err := a.checkState(t); err != nil {
					return fmt.Errorf("transition %d --%s--> : %w", from, Symbol(sym), err)
				}
			}
		}
	}
	return nil
}

// Clone returns a deep copy.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		stateCount:   a.stateCount,
		alphabetSize: a.alphabetSize,
		accepting:    a.accepting.Clone(),
		transitions:  make([][]StateSet, len(a.transitions)),
	}
	for s, row := range a.transitions {
		c.transitions[s] = make([]StateSet, len(row))
		for sym, cell := range row {
			c.transitions[s][sym] = cell.Clone()
		}
	}
	return c
}

// Transitions lists every non-empty cell ordered by source then symbol,
// with destinations ascending.
func (a *Automaton) Transitions() []Transition {
	var out []Transition
	for from, row := range a.transitions {
		for sym, cell := range row {
			if cell.Len() == 0 {
				continue
			}
			out = append(out, Transition{
				From:   StateID(from),
				Symbol: Symbol(sym),
				To:     cell.Sorted(),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// TransitionCount returns the number of (source, symbol, destination) edges.
func (a *Automaton) TransitionCount() int {
	n := 0
	for _, row := range a.transitions {
		for _, cell := range row {
			n += cell.Len()
		}
	}
	return n
}

// Package primitives includes builder helpers for Automaton.
package primitives

import "fmt"

// Builder builds an Automaton fluently. The first error is kept and
// reported by Build; later calls become no-ops.
type Builder struct {
	a   *Automaton
	err error
}

// NewBuilder creates a Builder for stateCount states over alphabetSize
// letters.
func NewBuilder(stateCount, alphabetSize int) *Builder {
	a, err := New(stateCount, alphabetSize)
	return &Builder{a: a, err: err}
}

// Accept marks states as accepting.
func (b *Builder) Accept(states ...StateID) *Builder {
	if b.err == nil {
		b.err = b.a.SetAccepting(states...)
	}
	return b
}

// On adds from --letter--> to.
func (b *Builder) On(from StateID, letter rune, to ...StateID) *Builder {
	if b.err != nil {
		return b
	}
	sym, ok := SymbolOf(letter)
	if !ok {
		b.err = fmt.Errorf("%w: %q", ErrInvalidSymbol, letter)
		return b
	}
	b.err = b.a.AddTransition(from, sym, to...)
	return b
}

// Epsilon adds from --ε--> to.
func (b *Builder) Epsilon(from StateID, to ...StateID) *Builder {
	if b.err == nil {
		b.err = b.a.AddEpsilon(from, to...)
	}
	return b
}

// Build returns the automaton or the first error encountered.
func (b *Builder) Build() (*Automaton, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.a, nil
}

// MustBuild is Build for static fixtures; it panics on error.
func (b *Builder) MustBuild() *Automaton {
	a, err := b.Build()
	if err != nil {
		panic(err)
	}
	return a
}

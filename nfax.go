// Package nfax converts epsilon-NFAs into equivalent epsilon-free NFAs and
// simulates NFAs against input strings.
//
// State 0 is always the initial state. Input letters 'a'..'z' map to
// symbols 1..26; symbol 0 is the epsilon column, in memory and in every
// file format.
package nfax

import (
	"context"

	"github.com/comalice/nfax/internal/core"
	"github.com/comalice/nfax/internal/primitives"
	"github.com/comalice/nfax/internal/production"
)

type (
	Automaton        = primitives.Automaton
	Builder          = primitives.Builder
	StateID          = primitives.StateID
	StateSet         = primitives.StateSet
	Symbol           = primitives.Symbol
	Result           = core.Result
	Verdict          = core.Verdict
	ConversionReport = core.ConversionReport
)

const (
	Epsilon     = primitives.Epsilon
	Accepted    = core.Accepted
	Rejected    = core.Rejected
	Unsupported = core.Unsupported
)

// New creates an automaton with stateCount states over alphabetSize letters.
func New(stateCount, alphabetSize int) (*Automaton, error) {
	return primitives.New(stateCount, alphabetSize)
}

// NewBuilder starts a fluent automaton definition.
func NewBuilder(stateCount, alphabetSize int) *Builder {
	return primitives.NewBuilder(stateCount, alphabetSize)
}

// NewStateSet returns a set holding ids.
func NewStateSet(ids ...StateID) StateSet {
	return primitives.NewStateSet(ids...)
}

// Closure returns the epsilon-closure of seed.
func Closure(a *Automaton, seed StateSet) StateSet {
	return core.Closure(a, seed)
}

// Convert removes every epsilon transition from a in place, preserving the
// accepted language.
func Convert(a *Automaton) ConversionReport {
	return core.Convert(a)
}

// Accepts reports whether a accepts input. Epsilon transitions are
// followed, so a need not be converted first.
func Accepts(a *Automaton, input string) bool {
	return core.Accepts(a, input)
}

// Evaluate decides every input independently and returns the verdicts in
// input order.
func Evaluate(a *Automaton, inputs []string) []Result {
	return core.NewSimulator(a).Run(inputs)
}

// Load reads an automaton from path. The format follows the extension:
// .yaml/.yml, .json, anything else is the text table format.
func Load(ctx context.Context, path string) (*Automaton, error) {
	p, name, err := production.PersisterForPath(path)
	if err != nil {
		return nil, err
	}
	return p.Load(ctx, name)
}

// Save writes a to path in the format implied by its extension.
func Save(ctx context.Context, path string, a *Automaton) error {
	p, name, err := production.PersisterForPath(path)
	if err != nil {
		return err
	}
	return p.Save(ctx, name, a)
}

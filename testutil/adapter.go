package testutil

import (
	"github.com/comalice/nfax/internal/core"
	"github.com/comalice/nfax/internal/primitives"
)

// AcceptorAdapter provides a common interface over the two ways of deciding
// membership: simulating the epsilon-NFA directly, and simulating the
// automaton produced by conversion.
// This allows running the same test suite on both.
type AcceptorAdapter interface {
	Name() string
	Accepts(input string) bool
	Automaton() *primitives.Automaton
}

// EpsilonAdapter simulates the automaton as given, epsilon edges included.
type EpsilonAdapter struct {
	a   *primitives.Automaton
	sim *core.Simulator
}

// NewEpsilonAdapter wraps a without modifying it.
func NewEpsilonAdapter(a *primitives.Automaton) *EpsilonAdapter {
	return &EpsilonAdapter{a: a, sim: core.NewSimulator(a)}
}

func (e *EpsilonAdapter) Name() string {
	return "epsilon"
}

func (e *EpsilonAdapter) Accepts(input string) bool {
	return e.sim.Accepts(input)
}

func (e *EpsilonAdapter) Automaton() *primitives.Automaton {
	return e.a
}

// ConvertedAdapter converts a private copy of the automaton and simulates
// the epsilon-free result.
type ConvertedAdapter struct {
	a      *primitives.Automaton
	sim    *core.Simulator
	Report core.ConversionReport
}

// NewConvertedAdapter clones a, converts the clone and wraps it.
func NewConvertedAdapter(a *primitives.Automaton) *ConvertedAdapter {
	c := a.Clone()
	report := core.Convert(c)
	return &ConvertedAdapter{a: c, sim: core.NewSimulator(c), Report: report}
}

func (c *ConvertedAdapter) Name() string {
	return "converted"
}

func (c *ConvertedAdapter) Accepts(input string) bool {
	return c.sim.Accepts(input)
}

func (c *ConvertedAdapter) Automaton() *primitives.Automaton {
	return c.a
}

// Adapters returns both adapters for a.
func Adapters(a *primitives.Automaton) []AcceptorAdapter {
	return []AcceptorAdapter{NewEpsilonAdapter(a), NewConvertedAdapter(a)}
}

// Disagreement is an input on which two adapters differ.
type Disagreement struct {
	Input string
	Left  bool
	Right bool
}

// Compare runs every input through left and right and returns the inputs
// where they disagree.
func Compare(left, right AcceptorAdapter, inputs []string) []Disagreement {
	var diff []Disagreement
	for _, in := range inputs {
		l, r := left.Accepts(in), right.Accepts(in)
		if l != r {
			diff = append(diff, Disagreement{Input: in, Left: l, Right: r})
		}
	}
	return diff
}

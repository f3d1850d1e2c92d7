package core

import (
	"fmt"

	"github.com/comalice/nfax/internal/primitives"
)

// Stage identifies one step of the epsilon-removal transform.
type Stage int

const (
	StageAcceptingClosure Stage = iota + 1
	StagePropagation
	StageEpsilonRemoval
)

func (s Stage) String() string {
	switch s {
	case StageAcceptingClosure:
		return "accepting-closure"
	case StagePropagation:
		return "propagation"
	case StageEpsilonRemoval:
		return "epsilon-removal"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// ConversionReport summarizes what Convert changed.
type ConversionReport struct {
	Promoted         []primitives.StateID // states that became accepting
	TransitionsAdded int
	EpsilonsRemoved  int
}

// Converter removes epsilon transitions in place while preserving the
// accepted language.
type Converter struct {
	observer StageObserver
}

// NewConverter creates a Converter.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert runs the three stages in order on a. The automaton is assumed
// valid; no validation happens here.
func (c *Converter) Convert(a *primitives.Automaton) ConversionReport {
	var report ConversionReport

	report.Promoted = AcceptingClosure(a)
	c.notify(StageAcceptingClosure, len(report.Promoted))

	report.TransitionsAdded = Propagate(a)
	c.notify(StagePropagation, report.TransitionsAdded)

	report.EpsilonsRemoved = RemoveEpsilons(a)
	c.notify(StageEpsilonRemoval, report.EpsilonsRemoved)

	return report
}

func (c *Converter) notify(stage Stage, changed int) {
	if c.observer != nil {
		c.observer.OnStage(stage, changed)
	}
}

// Convert is NewConverter().Convert(a).
func Convert(a *primitives.Automaton) ConversionReport {
	return NewConverter().Convert(a)
}

// AcceptingClosure marks every state whose epsilon-closure meets the
// original accepting set as accepting. It returns the promoted states in
// ascending order.
func AcceptingClosure(a *primitives.Automaton) []primitives.StateID {
	original := a.Accepting().Clone()
	var promoted []primitives.StateID
	for s := 0; s < a.StateCount(); s++ {
		state := primitives.StateID(s)
		if original.Has(state) {
			continue
		}
		if ClosureOf(a, state).Intersects(original) {
			promoted = append(promoted, state)
		}
	}
	if len(promoted) > 0 {
		// States come from the automaton's own range.
		_ = a.SetAccepting(promoted...)
	}
	return promoted
}

// Propagate folds, for every state v and every input symbol, the
// transitions of each state in closure({v}) into v's own cell. The worklist
// is seeded with the closures of the accepting states, then with every
// remaining state, and each state is processed exactly once. It returns the
// number of destinations added.
//
// Cells already processed only ever hold destinations reachable through
// the closure of the state being processed, so the in-place merge yields
// exactly the union over closure({v}).
func Propagate(a *primitives.Automaton) int {
	n := a.StateCount()
	visited := make([]bool, n)
	queue := make([]primitives.StateID, 0, n)
	enqueue := func(set primitives.StateSet) {
		for _, s := range set.Sorted() {
			if !visited[s] {
				visited[s] = true
				queue = append(queue, s)
			}
		}
	}

	seeds := a.Accepting().Sorted()
	for s := 0; s < n; s++ {
		seeds = append(seeds, primitives.StateID(s))
	}

	added := 0
	for _, seed := range seeds {
		if visited[seed] {
			continue
		}
		enqueue(ClosureOf(a, seed))
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			closure := ClosureOf(a, current)
			for sym := 1; sym <= a.AlphabetSize(); sym++ {
				for next := range closure {
					added += a.Merge(current, next, primitives.Symbol(sym))
				}
			}
			enqueue(closure)
		}
	}
	return added
}

// RemoveEpsilons clears the epsilon column of every state and returns the
// number of edges removed.
func RemoveEpsilons(a *primitives.Automaton) int {
	removed := 0
	for s := 0; s < a.StateCount(); s++ {
		removed += a.ClearEpsilons(primitives.StateID(s))
	}
	return removed
}

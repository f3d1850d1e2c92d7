// Package core provides the algorithm tier of the automaton engine.
// This includes the epsilon-closure engine, the ENFA to NFA converter and the
// NFA simulator.
// Dependencies: internal/primitives.
// Stdlib-only implementation; logging and tracing plug in through the
// observer interfaces below.
package core

import "github.com/comalice/nfax/internal/primitives"

// Pluggable component interfaces.

// StageObserver is notified after each conversion stage completes.
type StageObserver interface {
	OnStage(stage Stage, changed int)
}

// StepObserver follows a simulation run.
type StepObserver interface {
	// OnStart is called with the closure of the initial state.
	OnStart(input string, active primitives.StateSet)
	// OnStep is called after symbol pos of input has been consumed and the
	// result expanded by epsilon-closure.
	OnStep(input string, pos int, sym primitives.Symbol, active primitives.StateSet)
	OnVerdict(result Result)
}

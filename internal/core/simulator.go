package core

import (
	"fmt"

	"github.com/comalice/nfax/internal/primitives"
)

// Verdict is the outcome of simulating one input string.
type Verdict int

const (
	Rejected Verdict = iota
	Accepted
	// Unsupported marks an input holding a letter outside the automaton's
	// alphabet. Such a string can never be matched.
	Unsupported
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "Accepted"
	case Rejected:
		return "Rejected"
	case Unsupported:
		return "Unsupported"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Result pairs an input with its verdict. For Unsupported results Symbol
// holds the first offending rune and Position its rune index.
type Result struct {
	Input    string
	Verdict  Verdict
	Symbol   rune
	Position int
}

// Accepted reports whether the verdict is Accepted.
func (r Result) Accepted() bool {
	return r.Verdict == Accepted
}

// Simulator decides acceptance of input strings against one automaton.
// All nondeterministic branches are tracked at once as a state set.
type Simulator struct {
	a        *primitives.Automaton
	observer StepObserver
}

// NewSimulator creates a Simulator for a. The automaton must not be
// mutated while the simulator is in use.
func NewSimulator(a *primitives.Automaton, opts ...SimulatorOption) *Simulator {
	s := &Simulator{a: a}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Accepts is NewSimulator(a).Accepts(input).
func Accepts(a *primitives.Automaton, input string) bool {
	return NewSimulator(a).Accepts(input)
}

// Accepts reports whether input is accepted.
func (s *Simulator) Accepts(input string) bool {
	return s.Evaluate(input).Accepted()
}

// Start returns the epsilon-closure of the initial state.
func (s *Simulator) Start() primitives.StateSet {
	return ClosureOf(s.a, primitives.InitialState)
}

// Step consumes sym from every state in active and expands the result by
// epsilon-closure.
func (s *Simulator) Step(active primitives.StateSet, sym primitives.Symbol) primitives.StateSet {
	next := primitives.NewStateSet()
	for state := range active {
		next.Union(s.a.Targets(state, sym))
	}
	return Closure(s.a, next)
}

// Evaluate simulates input and returns its verdict.
func (s *Simulator) Evaluate(input string) Result {
	_, res := s.run(input, false)
	return res
}

// Trace simulates input and returns the active set before the first symbol
// followed by the active set after each consumed symbol. The trace stops
// early once no state is active. Unsupported inputs have an empty trace.
func (s *Simulator) Trace(input string) ([]primitives.StateSet, Result) {
	return s.run(input, true)
}

// Run evaluates every input independently, preserving order.
func (s *Simulator) Run(inputs []string) []Result {
	results := make([]Result, len(inputs))
	for i, in := range inputs {
		results[i] = s.Evaluate(in)
	}
	return results
}

func (s *Simulator) run(input string, trace bool) ([]primitives.StateSet, Result) {
	symbols, res := s.symbols(input)
	if res.Verdict == Unsupported {
		s.verdict(res)
		return nil, res
	}

	var steps []primitives.StateSet
	active := s.Start()
	if trace {
		steps = append(steps, active)
	}
	if s.observer != nil {
		s.observer.OnStart(input, active)
	}

	for pos, sym := range symbols {
		active = s.Step(active, sym)
		if trace {
			steps = append(steps, active)
		}
		if s.observer != nil {
			s.observer.OnStep(input, pos, sym, active)
		}
		if active.Len() == 0 {
			break
		}
	}

	if active.Intersects(s.a.Accepting()) {
		res.Verdict = Accepted
	}
	s.verdict(res)
	return steps, res
}

// symbols maps input onto transition columns. The result is Unsupported
// at the first rune the automaton cannot consume.
func (s *Simulator) symbols(input string) ([]primitives.Symbol, Result) {
	res := Result{Input: input, Verdict: Rejected}
	symbols := make([]primitives.Symbol, 0, len(input))
	pos := 0
	for _, r := range input {
		sym, ok := primitives.SymbolOf(r)
		if !ok || !s.a.HasSymbol(sym) {
			res.Verdict = Unsupported
			res.Symbol = r
			res.Position = pos
			return nil, res
		}
		symbols = append(symbols, sym)
		pos++
	}
	return symbols, res
}

func (s *Simulator) verdict(res Result) {
	if s.observer != nil {
		s.observer.OnVerdict(res)
	}
}

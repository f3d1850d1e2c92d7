package core

import "github.com/comalice/nfax/internal/primitives"

// Closure returns the smallest superset of seed closed under the epsilon
// relation of a. The seed itself is always part of the result; only states
// inside the automaton's range are expanded. Epsilon cycles and self-loops
// are visited once.
func Closure(a *primitives.Automaton, seed primitives.StateSet) primitives.StateSet {
	closure := primitives.NewStateSet()
	stack := make([]primitives.StateID, 0, len(seed))
	for s := range seed {
		if closure.Add(s) {
			stack = append(stack, s)
		}
	}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range a.Epsilons(current) {
			if closure.Add(next) {
				stack = append(stack, next)
			}
		}
	}
	return closure
}

// ClosureOf is Closure of the single state s.
func ClosureOf(a *primitives.Automaton, s primitives.StateID) primitives.StateSet {
	return Closure(a, primitives.NewStateSet(s))
}

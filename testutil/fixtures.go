package testutil

import (
	"github.com/comalice/nfax/internal/primitives"
)

// Fixture is a hand-built automaton together with a regular expression
// (Go regexp syntax) describing the language it accepts.
type Fixture struct {
	Name      string
	Automaton *primitives.Automaton
	Pattern   string
}

// EpsilonChain is the 3-state automaton 0 -ε-> 1 -a-> 2 with {2} accepting.
func EpsilonChain() *primitives.Automaton {
	return primitives.NewBuilder(3, 1).
		Epsilon(0, 1).
		On(1, 'a', 2).
		Accept(2).
		MustBuild()
}

// AcceptingStart is a single accepting state with no transitions.
func AcceptingStart() *primitives.Automaton {
	return primitives.NewBuilder(1, 1).Accept(0).MustBuild()
}

// MutualCycle is 0 ⇄ 1 over epsilon with 1 accepting and 1 -a-> 0.
func MutualCycle() *primitives.Automaton {
	return primitives.NewBuilder(2, 1).
		Epsilon(0, 1).
		Epsilon(1, 0).
		On(1, 'a', 0).
		Accept(1).
		MustBuild()
}

// Fixtures returns freshly built automata with known languages.
func Fixtures() []Fixture {
	return []Fixture{
		{Name: "epsilon-chain", Automaton: EpsilonChain(), Pattern: `^a$`},
		{Name: "accepting-start", Automaton: AcceptingStart(), Pattern: `^$`},
		{Name: "mutual-cycle", Automaton: MutualCycle(), Pattern: `^a*$`},
		{
			Name: "self-loops",
			Automaton: primitives.NewBuilder(2, 1).
				Epsilon(0, 0).
				On(0, 'a', 1).
				Epsilon(1, 1).
				Accept(1).
				MustBuild(),
			Pattern: `^a$`,
		},
		{
			Name: "a*b*c*",
			Automaton: primitives.NewBuilder(3, 3).
				On(0, 'a', 0).
				Epsilon(0, 1).
				On(1, 'b', 1).
				Epsilon(1, 2).
				On(2, 'c', 2).
				Accept(2).
				MustBuild(),
			Pattern: `^a*b*c*$`,
		},
		{
			Name: "ends-ab-or-contains-bb",
			Automaton: primitives.NewBuilder(7, 2).
				Epsilon(0, 1, 4).
				On(1, 'a', 1, 2).
				On(1, 'b', 1).
				On(2, 'b', 3).
				On(4, 'a', 4).
				On(4, 'b', 4, 5).
				On(5, 'b', 6).
				On(6, 'a', 6).
				On(6, 'b', 6).
				Accept(3, 6).
				MustBuild(),
			Pattern: `^([ab]*ab|[ab]*bb[ab]*)$`,
		},
		{
			Name: "epsilon-ring",
			Automaton: primitives.NewBuilder(4, 1).
				Epsilon(0, 1).
				Epsilon(1, 2).
				Epsilon(2, 0).
				On(2, 'a', 3).
				Epsilon(3, 1).
				Accept(3).
				MustBuild(),
			Pattern: `^a+$`,
		},
		{
			Name: "accepting-behind-epsilon",
			Automaton: primitives.NewBuilder(4, 2).
				On(0, 'a', 1).
				Epsilon(1, 2).
				On(2, 'b', 3).
				Epsilon(3, 0).
				Accept(0).
				MustBuild(),
			Pattern: `^(ab)*$`,
		},
	}
}

// Strings enumerates every string over the first alphabetSize letters with
// length at most maxLen, shortest first.
func Strings(alphabetSize, maxLen int) []string {
	out := []string{""}
	frontier := []string{""}
	for l := 1; l <= maxLen; l++ {
		var next []string
		for _, prefix := range frontier {
			for i := 0; i < alphabetSize; i++ {
				next = append(next, prefix+string(rune('a'+i)))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

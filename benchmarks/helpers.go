// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"math/rand"

	"gopkg.in/yaml.v3"

	"github.com/comalice/nfax/internal/primitives"
	"github.com/comalice/nfax/internal/production"
)

// GenEpsilonChain creates n states linked 0 -ε-> 1 -ε-> ... -ε-> n-1, each
// looping on 'a', with the last state accepting.
func GenEpsilonChain(n int) *primitives.Automaton {
	if n < 1 {
		n = 1
	}
	b := primitives.NewBuilder(n, 1)
	for i := 0; i < n; i++ {
		if i+1 < n {
			b.Epsilon(primitives.StateID(i), primitives.StateID(i+1))
		}
		b.On(primitives.StateID(i), 'a', primitives.StateID(i))
	}
	return b.Accept(primitives.StateID(n - 1)).MustBuild()
}

// GenEpsilonRing is GenEpsilonChain closed into a cycle, so every closure
// holds every state.
func GenEpsilonRing(n int) *primitives.Automaton {
	a := GenEpsilonChain(n)
	if err := a.AddEpsilon(primitives.StateID(n-1), 0); err != nil {
		panic(err)
	}
	return a
}

// GenRandom creates a reproducible random automaton. density is the
// probability of each (state, symbol, destination) edge.
func GenRandom(n, alphabet int, density float64, seed int64) *primitives.Automaton {
	r := rand.New(rand.NewSource(seed))
	a, err := primitives.New(n, alphabet)
	if err != nil {
		panic(err)
	}
	for from := 0; from < n; from++ {
		for sym := 0; sym <= alphabet; sym++ {
			for to := 0; to < n; to++ {
				if r.Float64() < density {
					if err := a.AddTransition(primitives.StateID(from), primitives.Symbol(sym), primitives.StateID(to)); err != nil {
						panic(err)
					}
				}
			}
		}
		if r.Float64() < 0.2 {
			if err := a.SetAccepting(primitives.StateID(from)); err != nil {
				panic(err)
			}
		}
	}
	return a
}

// GenInputs creates count random strings of length l over alphabet letters.
func GenInputs(count, l, alphabet int, seed int64) []string {
	r := rand.New(rand.NewSource(seed))
	out := make([]string, count)
	buf := make([]byte, l)
	for i := range out {
		for j := range buf {
			buf[j] = byte('a' + r.Intn(alphabet))
		}
		out[i] = string(buf)
	}
	return out
}

// GenDocumentYAML generates YAML bytes for an automaton document.
func GenDocumentYAML(a *primitives.Automaton) []byte {
	data, err := yaml.Marshal(production.NewDocument("bench", a))
	if err != nil {
		panic(err)
	}
	return data
}

package benchmarks

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/comalice/nfax/internal/core"
	"github.com/comalice/nfax/internal/primitives"
	"github.com/comalice/nfax/internal/production"
)

func BenchmarkClosure(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		a := GenEpsilonRing(n)
		b.Run(fmt.Sprintf("ring_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if core.ClosureOf(a, 0).Len() != n {
					b.Fatal("closure incomplete")
				}
			}
		})
	}
}

func BenchmarkConvert(b *testing.B) {
	cases := map[string]*primitives.Automaton{
		"chain_100":  GenEpsilonChain(100),
		"ring_100":   GenEpsilonRing(100),
		"random_50":  GenRandom(50, 4, 0.05, 1),
		"random_200": GenRandom(200, 4, 0.01, 2),
	}
	for name, a := range cases {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				c := a.Clone()
				b.StartTimer()
				core.Convert(c)
			}
		})
	}
}

func BenchmarkSimulate(b *testing.B) {
	a := GenRandom(100, 3, 0.03, 3)
	inputs := GenInputs(100, 32, 3, 4)
	converted := a.Clone()
	core.Convert(converted)

	b.Run("epsilon", func(b *testing.B) {
		sim := core.NewSimulator(a)
		for i := 0; i < b.N; i++ {
			sim.Run(inputs)
		}
	})
	b.Run("converted", func(b *testing.B) {
		sim := core.NewSimulator(converted)
		for i := 0; i < b.N; i++ {
			sim.Run(inputs)
		}
	})
}

func BenchmarkDecode(b *testing.B) {
	a := GenRandom(100, 3, 0.03, 5)
	yamlData := GenDocumentYAML(a)
	var text bytes.Buffer
	if err := (production.TextCodec{}).Encode(&text, a); err != nil {
		b.Fatal(err)
	}

	b.Run("yaml", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := (production.YAMLCodec{}).Decode(bytes.NewReader(yamlData)); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("text", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := (production.TextCodec{}).Decode(bytes.NewReader(text.Bytes())); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// Converted and epsilon-aware simulation must agree on random automata.
func TestRandomAutomataAgree(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		a := GenRandom(8, 2, 0.15, seed)
		converted := a.Clone()
		core.Convert(converted)
		for _, in := range GenInputs(200, 6, 2, seed) {
			if core.Accepts(a, in) != core.Accepts(converted, in) {
				t.Fatalf("seed %d: disagreement on %q", seed, in)
			}
		}
	}
}

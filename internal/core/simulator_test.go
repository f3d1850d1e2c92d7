package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/nfax/internal/primitives"
)

type stepRecorder struct {
	starts   []primitives.StateSet
	steps    []primitives.Symbol
	verdicts []Result
}

func (r *stepRecorder) OnStart(input string, active primitives.StateSet) {
	r.starts = append(r.starts, active.Clone())
}

func (r *stepRecorder) OnStep(input string, pos int, sym primitives.Symbol, active primitives.StateSet) {
	r.steps = append(r.steps, sym)
}

func (r *stepRecorder) OnVerdict(result Result) {
	r.verdicts = append(r.verdicts, result)
}

func TestAcceptsEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		a    *primitives.Automaton
		want bool
	}{
		{
			name: "initial state accepting",
			a:    primitives.NewBuilder(1, 1).Accept(0).MustBuild(),
			want: true,
		},
		{
			name: "accepting only after a symbol",
			a:    epsilonChain(),
			want: false,
		},
		{
			name: "accepting through epsilon",
			a:    primitives.NewBuilder(2, 1).Epsilon(0, 1).Accept(1).MustBuild(),
			want: true,
		},
		{
			name: "nothing accepting",
			a:    primitives.NewBuilder(2, 1).Epsilon(0, 1).MustBuild(),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Accepts(tt.a, ""))
		})
	}
}

func TestAcceptsExpandsAfterLastSymbol(t *testing.T) {
	// 0 -a-> 1 -ε-> 2, only 2 accepting.
	a := primitives.NewBuilder(3, 1).On(0, 'a', 1).Epsilon(1, 2).Accept(2).MustBuild()

	assert.True(t, Accepts(a, "a"))
	assert.False(t, Accepts(a, "aa"))
}

func TestNondeterministicBranches(t *testing.T) {
	// Strings over {a,b} whose second-to-last letter is a.
	a := primitives.NewBuilder(3, 2).
		On(0, 'a', 0, 1).
		On(0, 'b', 0).
		On(1, 'a', 2).
		On(1, 'b', 2).
		Accept(2).
		MustBuild()
	sim := NewSimulator(a)

	for in, want := range map[string]bool{
		"":     false,
		"a":    false,
		"ab":   true,
		"aa":   true,
		"ba":   false,
		"bbab": true,
		"abbb": false,
	} {
		assert.Equal(t, want, sim.Accepts(in), "Accepts(%q)", in)
	}
}

func TestUnsupportedSymbol(t *testing.T) {
	a := epsilonChain()
	sim := NewSimulator(a)

	tests := []struct {
		input string
		sym   rune
		pos   int
	}{
		{input: "b", sym: 'b', pos: 0},
		{input: "aZ", sym: 'Z', pos: 1},
		{input: "aé1", sym: 'é', pos: 1},
	}
	for _, tt := range tests {
		res := sim.Evaluate(tt.input)
		assert.Equal(t, Unsupported, res.Verdict, "Evaluate(%q)", tt.input)
		assert.Equal(t, tt.sym, res.Symbol, "Evaluate(%q)", tt.input)
		assert.Equal(t, tt.pos, res.Position, "Evaluate(%q)", tt.input)
		assert.False(t, res.Accepted())
	}
}

func TestRunPreservesOrder(t *testing.T) {
	sim := NewSimulator(epsilonChain())
	inputs := []string{"a", "", "x", "aa", "a"}

	results := sim.Run(inputs)

	require.Len(t, results, len(inputs))
	want := []Verdict{Accepted, Rejected, Unsupported, Rejected, Accepted}
	for i, res := range results {
		assert.Equal(t, inputs[i], res.Input)
		assert.Equal(t, want[i], res.Verdict, "input %q", inputs[i])
	}
}

func TestTrace(t *testing.T) {
	sim := NewSimulator(epsilonChain())

	steps, res := sim.Trace("aa")

	assert.Equal(t, Rejected, res.Verdict)
	require.Len(t, steps, 3)
	assert.True(t, steps[0].Equal(set(0, 1)), "start = %v", steps[0])
	assert.True(t, steps[1].Equal(set(2)), "after a = %v", steps[1])
	assert.Zero(t, steps[2].Len(), "after aa = %v", steps[2])

	steps, res = sim.Trace("aaa")
	assert.Len(t, steps, 3, "trace stops once no state is active")
	assert.Equal(t, Rejected, res.Verdict)

	steps, res = sim.Trace("q")
	assert.Nil(t, steps)
	assert.Equal(t, Unsupported, res.Verdict)
}

func TestSimulatorNotifiesObserver(t *testing.T) {
	rec := &stepRecorder{}
	sim := NewSimulator(epsilonChain(), WithStepObserver(rec))

	sim.Run([]string{"a", "?"})

	require.Len(t, rec.starts, 1, "unsupported inputs are not started")
	assert.True(t, rec.starts[0].Equal(set(0, 1)))
	assert.Equal(t, []primitives.Symbol{1}, rec.steps)
	require.Len(t, rec.verdicts, 2)
	assert.Equal(t, Accepted, rec.verdicts[0].Verdict)
	assert.Equal(t, Unsupported, rec.verdicts[1].Verdict)
	assert.Equal(t, "Unsupported", rec.verdicts[1].Verdict.String())
}

package production

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/nfax/internal/primitives"
)

func TestYAMLCodec_Decode(t *testing.T) {
	in := `
name: chain
states: 3
alphabet: 1
accepting: [2]
transitions:
  - {from: 0, symbol: "", to: [1]}
  - {from: 1, symbol: a, to: [2]}
`
	a, err := YAMLCodec{}.Decode(strings.NewReader(in))
	require.NoError(t, err)

	assert.True(t, a.Epsilons(0).Equal(primitives.NewStateSet(1)))
	assert.True(t, a.Targets(1, 1).Equal(primitives.NewStateSet(2)))
	assert.True(t, a.IsAccepting(2))
}

func TestYAMLCodec_Encode(t *testing.T) {
	a := primitives.NewBuilder(2, 2).Epsilon(0, 1).On(1, 'b', 0, 1).MustBuild()

	var buf bytes.Buffer
	require.NoError(t, YAMLCodec{Name: "demo"}.Encode(&buf, a))

	out := buf.String()
	assert.Contains(t, out, "name: demo")
	assert.Contains(t, out, "accepting: []")
	assert.Contains(t, out, `symbol: ""`)
	assert.Contains(t, out, "symbol: b")
	assert.Contains(t, out, "to: [0, 1]")
}

func TestJSONCodec_RoundTrip(t *testing.T) {
	a := sample()

	var buf bytes.Buffer
	require.NoError(t, JSONCodec{Name: "sample"}.Encode(&buf, a))
	assert.Contains(t, buf.String(), `"symbol": "a"`)

	b, err := JSONCodec{}.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, primitives.Fingerprint(a), primitives.Fingerprint(b))
}

func TestDocumentErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      Document
		sentinel error
	}{
		{"zero states", Document{States: 0, Alphabet: 1}, primitives.ErrInvalidCount},
		{"bad accepting", Document{States: 1, Alphabet: 1, Accepting: []int{3}}, primitives.ErrInvalidState},
		{"bad symbol", Document{States: 1, Alphabet: 1, Transitions: []DocumentTransition{{From: 0, Symbol: "ab", To: []int{0}}}}, primitives.ErrInvalidSymbol},
		{"symbol beyond alphabet", Document{States: 1, Alphabet: 1, Transitions: []DocumentTransition{{From: 0, Symbol: "c", To: []int{0}}}}, primitives.ErrInvalidSymbol},
		{"bad destination", Document{States: 1, Alphabet: 1, Transitions: []DocumentTransition{{From: 0, Symbol: "a", To: []int{1}}}}, primitives.ErrInvalidState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.doc.Automaton()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "error %v is not %v", err, tt.sentinel)
		})
	}
}

func TestJSONCodec_RejectsUnknownFields(t *testing.T) {
	_, err := JSONCodec{}.Decode(strings.NewReader(`{"states": 1, "alphabet": 1, "epsilon_column": "last"}`))
	var ferr *FormatError
	assert.True(t, errors.As(err, &ferr), "got %v", err)
}

func TestYAMLCodec_Empty(t *testing.T) {
	_, err := YAMLCodec{}.Decode(strings.NewReader(""))
	var ferr *FormatError
	require.True(t, errors.As(err, &ferr), "got %v", err)
	assert.Contains(t, err.Error(), "empty YAML document")
}

func TestYAMLCodec_RejectsUnknownFields(t *testing.T) {
	_, err := YAMLCodec{}.Decode(strings.NewReader("states: 1\nalphabet: 1\nepsilon_column: last\n"))
	var ferr *FormatError
	require.True(t, errors.As(err, &ferr), "got %v", err)
	assert.Contains(t, err.Error(), "epsilon_column")
}

package production

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/comalice/nfax/internal/primitives"
)

// Document is the structured (YAML/JSON) form of an automaton.
type Document struct {
	Name        string               `json:"name,omitempty" yaml:"name,omitempty"`
	States      int                  `json:"states" yaml:"states"`
	Alphabet    int                  `json:"alphabet" yaml:"alphabet"`
	Accepting   []int                `json:"accepting" yaml:"accepting,flow"`
	Transitions []DocumentTransition `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// DocumentTransition is one non-empty cell. Symbol is a single letter, or
// empty for epsilon.
type DocumentTransition struct {
	From   int    `json:"from" yaml:"from"`
	Symbol string `json:"symbol" yaml:"symbol"`
	To     []int  `json:"to" yaml:"to,flow"`
}

// NewDocument converts a into its document form.
func NewDocument(name string, a *primitives.Automaton) Document {
	doc := Document{
		Name:      name,
		States:    a.StateCount(),
		Alphabet:  a.AlphabetSize(),
		Accepting: []int{},
	}
	for _, s := range a.Accepting().Sorted() {
		doc.Accepting = append(doc.Accepting, int(s))
	}
	for _, t := range a.Transitions() {
		dt := DocumentTransition{From: int(t.From), Symbol: t.Symbol.Name()}
		for _, id := range t.To {
			dt.To = append(dt.To, int(id))
		}
		doc.Transitions = append(doc.Transitions, dt)
	}
	return doc
}

// Automaton builds and validates the automaton described by d.
func (d Document) Automaton() (*primitives.Automaton, error) {
	a, err := primitives.New(d.States, d.Alphabet)
	if err != nil {
		return nil, &FormatError{Msg: "invalid automaton", Err: err}
	}
	for _, s := range d.Accepting {
		if err := a.SetAccepting(primitives.StateID(s)); err != nil {
			return nil, &FormatError{Msg: "invalid accepting state", Err: err}
		}
	}
	for i, t := range d.Transitions {
		sym, err := primitives.ParseSymbol(t.Symbol)
		if err != nil {
			return nil, &FormatError{Msg: fmt.Sprintf("transition %d", i), Err: err}
		}
		to := make([]primitives.StateID, len(t.To))
		for j, id := range t.To {
			to[j] = primitives.StateID(id)
		}
		if err := a.AddTransition(primitives.StateID(t.From), sym, to...); err != nil {
			return nil, &FormatError{Msg: fmt.Sprintf("transition %d", i), Err: err}
		}
	}
	return a, nil
}

// YAMLCodec reads and writes Documents as YAML.
type YAMLCodec struct {
	Name string // written into encoded documents
}

func (YAMLCodec) Decode(r io.Reader) (*primitives.Automaton, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, &FormatError{Msg: "empty YAML document"}
		}
		return nil, &FormatError{Msg: "yaml unmarshal", Err: err}
	}
	return doc.Automaton()
}

func (c YAMLCodec) Encode(w io.Writer, a *primitives.Automaton) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(c.Name, a)); err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	return enc.Close()
}

// JSONCodec reads and writes Documents as indented JSON.
type JSONCodec struct {
	Name string
}

func (JSONCodec) Decode(r io.Reader) (*primitives.Automaton, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, &FormatError{Msg: "json unmarshal", Err: err}
	}
	return doc.Automaton()
}

func (c JSONCodec) Encode(w io.Writer, a *primitives.Automaton) error {
	data, err := json.MarshalIndent(NewDocument(c.Name, a), "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

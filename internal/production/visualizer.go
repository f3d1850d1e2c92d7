// Package production provides production integrations: persistence, visualization, reports.
package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/comalice/nfax/internal/primitives"
)

// Visualizer renders an automaton for humans.
type Visualizer interface {
	ExportDOT(a *primitives.Automaton, active primitives.StateSet) string
	ExportJSON(a *primitives.Automaton) ([]byte, error)
}

// DOTVisualizer is the stdlib-only implementation of Visualizer.
type DOTVisualizer struct {
	Name string
}

// ExportDOT generates Graphviz DOT source for the automaton. Accepting
// states are double circles, active states are filled, and all symbols
// between the same pair of states share one edge.
func (v *DOTVisualizer) ExportDOT(a *primitives.Automaton, active primitives.StateSet) string {
	name := v.Name
	if name == "" {
		name = "Automaton"
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", dotQuote(name))
	buf.WriteString(`  rankdir=LR;
  node [shape=circle, fontsize=10];
  edge [fontsize=9];
  __start [shape=point];
  __start -> "0";
`)

	for s := 0; s < a.StateCount(); s++ {
		id := primitives.StateID(s)
		var attrs []string
		if a.IsAccepting(id) {
			attrs = append(attrs, "shape=doublecircle")
		}
		if active.Has(id) {
			attrs = append(attrs, "style=filled", "fillcolor=lightgreen")
		}
		if len(attrs) > 0 {
			fmt.Fprintf(&buf, "  \"%d\" [%s];\n", s, strings.Join(attrs, ", "))
		} else {
			fmt.Fprintf(&buf, "  \"%d\";\n", s)
		}
	}

	for _, e := range collectEdges(a) {
		style := ""
		if e.Epsilon {
			style = ", style=dashed"
		}
		fmt.Fprintf(&buf, "  \"%d\" -> \"%d\" [label=\"%s\"%s];\n", e.From, e.To, e.Label, style)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the automaton as a Document.
func (v *DOTVisualizer) ExportJSON(a *primitives.Automaton) ([]byte, error) {
	return json.MarshalIndent(NewDocument(v.Name, a), "", "  ")
}

// Edge is a rendered arc between two states.
type Edge struct {
	From    primitives.StateID
	To      primitives.StateID
	Label   string
	Epsilon bool
}

// collectEdges groups transitions by (from, to), joining symbol names in
// column order. Edges come out ordered by source, then first symbol.
func collectEdges(a *primitives.Automaton) []Edge {
	type key struct{ from, to primitives.StateID }
	index := map[key]int{}
	var edges []Edge
	for _, t := range a.Transitions() {
		for _, to := range t.To {
			k := key{t.From, to}
			i, ok := index[k]
			if !ok {
				i = len(edges)
				index[k] = i
				edges = append(edges, Edge{From: t.From, To: to, Epsilon: true})
			}
			e := &edges[i]
			if e.Label != "" {
				e.Label += ","
			}
			e.Label += t.Symbol.String()
			if !t.IsEpsilon() {
				e.Epsilon = false
			}
		}
	}
	return edges
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotQuote quotes s as a DOT string. Only backslash and double quote are
// escaped; Graphviz reads UTF-8 as is.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

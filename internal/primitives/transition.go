package primitives

import (
	"fmt"
	"strings"
)

// Transition is one non-empty cell of the transition table.
type Transition struct {
	From   StateID
	Symbol Symbol
	To     []StateID
}

// IsEpsilon reports whether t is an epsilon edge set.
func (t Transition) IsEpsilon() bool {
	return t.Symbol.IsEpsilon()
}

func (t Transition) String() string {
	parts := make([]string, len(t.To))
	for i, id := range t.To {
		parts[i] = fmt.Sprint(int(id))
	}
	return fmt.Sprintf("%d --%s--> {%s}", t.From, t.Symbol, strings.Join(parts, ","))
}

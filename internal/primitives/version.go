// Package primitives provides fingerprinting utilities for Automaton.
package primitives

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Fingerprint computes a deterministic short hash of the automaton's
// structure: counts, accepting set and every transition in canonical order.
// Two automata with the same fingerprint have identical tables.
func Fingerprint(a *Automaton) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d/%d/%s", a.StateCount(), a.AlphabetSize(), a.Accepting())
	for _, t := range a.Transitions() {
		b.WriteByte('|')
		b.WriteString(t.String())
	}
	hash := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("%x", hash[:8])
}

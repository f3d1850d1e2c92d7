// Package primitives provides the foundational, zero-dependency data structures
// for the automaton engine.
//
// This package and the core algorithms in internal/core use ONLY the Go
// standard library. Adapters (file formats, logging, configuration) live in
// other packages and may depend on external modules.
//
// Core invariants:
//   - States are 0..StateCount()-1; state 0 is the initial state.
//   - Symbols are 1..AlphabetSize(); symbol 0 is Epsilon.
//   - The transition table is total: every (state, symbol) cell exists.
//   - Every referenced state is inside [0, StateCount()).
//
// An Automaton is owned by a single caller at a time; nothing here is
// safe for concurrent mutation.
package primitives

package primitives

import "fmt"

// Symbol is a column of the transition table. Column 0 is reserved for
// epsilon; input letters 'a'..'z' occupy columns 1..26.
type Symbol int

// Epsilon is the empty-transition column. It is always the first column,
// in memory and in every serialized format.
const Epsilon Symbol = 0

// MaxAlphabetSize is the number of supported letters.
const MaxAlphabetSize = 26

// SymbolOf maps an input letter to its column. ok is false for anything
// outside 'a'..'z'.
func SymbolOf(r rune) (sym Symbol, ok bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return Symbol(r-'a') + 1, true
}

// ParseSymbol parses a serialized symbol name: "" or "ε" for epsilon,
// otherwise a single lowercase letter.
func ParseSymbol(s string) (Symbol, error) {
	switch s {
	case "", "ε", "eps":
		return Epsilon, nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
	}
	sym, ok := SymbolOf(runes[0])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
	}
	return sym, nil
}

// IsEpsilon reports whether s is the epsilon column.
func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}

// Rune returns the letter for s, or 0 for epsilon and out-of-range values.
func (s Symbol) Rune() rune {
	if s < 1 || s > MaxAlphabetSize {
		return 0
	}
	return 'a' + rune(s-1)
}

// Name is the serialized form of s: "" for epsilon, the letter otherwise.
func (s Symbol) Name() string {
	if s.IsEpsilon() {
		return ""
	}
	if r := s.Rune(); r != 0 {
		return string(r)
	}
	return fmt.Sprintf("#%d", int(s))
}

func (s Symbol) String() string {
	if s.IsEpsilon() {
		return "ε"
	}
	return s.Name()
}

// Package production provides production integrations: file formats,
// persistence, visualization and reports.
package production

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/comalice/nfax/internal/primitives"
)

const (
	headerStates    = "Number of states:"
	headerAlphabet  = "Alphabet size:"
	headerAccepting = "Accepting states:"
)

// FormatError reports malformed automaton input. Line is 1-based; 0 means
// the problem is not tied to a line (for example a truncated file).
type FormatError struct {
	Line int
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// TextCodec reads and writes the line-oriented table format:
//
//	Number of states: 3
//	Alphabet size: 1
//	Accepting states: 2
//	{1} {}
//	{} {2}
//	{} {}
//
// Each row holds exactly AlphabetSize+1 sets; the first set is the epsilon
// column. Blank lines are ignored.
type TextCodec struct{}

type lineReader struct {
	sc   *bufio.Scanner
	line int
}

// next returns the next non-blank line, trimmed. ok is false at EOF.
func (lr *lineReader) next() (string, bool) {
	for lr.sc.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.sc.Text())
		if text != "" {
			return text, true
		}
	}
	return "", false
}

func (lr *lineReader) header(prefix string) (string, error) {
	text, ok := lr.next()
	if !ok {
		if err := lr.sc.Err(); err != nil {
			return "", fmt.Errorf("read: %w", err)
		}
		return "", &FormatError{Msg: fmt.Sprintf("missing %q header", prefix)}
	}
	if !strings.HasPrefix(text, prefix) {
		return "", &FormatError{Line: lr.line, Msg: fmt.Sprintf("expected %q, got %q", prefix, text)}
	}
	return strings.TrimSpace(strings.TrimPrefix(text, prefix)), nil
}

func (lr *lineReader) count(prefix string) (int, error) {
	value, err := lr.header(prefix)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &FormatError{Line: lr.line, Msg: fmt.Sprintf("bad %s %q", strings.TrimSuffix(prefix, ":"), value), Err: err}
	}
	return n, nil
}

// Decode parses an automaton and validates it.
func (TextCodec) Decode(r io.Reader) (*primitives.Automaton, error) {
	lr := &lineReader{sc: newLineScanner(r)}

	states, err := lr.count(headerStates)
	if err != nil {
		return nil, err
	}
	alphabet, err := lr.count(headerAlphabet)
	if err != nil {
		return nil, err
	}
	a, err := primitives.New(states, alphabet)
	if err != nil {
		return nil, &FormatError{Line: lr.line, Msg: "invalid automaton", Err: err}
	}

	accepting, err := lr.header(headerAccepting)
	if err != nil {
		return nil, err
	}
	for _, field := range strings.Fields(accepting) {
		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, &FormatError{Line: lr.line, Msg: fmt.Sprintf("bad accepting state %q", field), Err: err}
		}
		if err := a.SetAccepting(primitives.StateID(id)); err != nil {
			return nil, &FormatError{Line: lr.line, Msg: "invalid accepting state", Err: err}
		}
	}

	for s := 0; s < states; s++ {
		text, ok := lr.next()
		if !ok {
			if err := lr.sc.Err(); err != nil {
				return nil, fmt.Errorf("read: %w", err)
			}
			return nil, &FormatError{Msg: fmt.Sprintf("expected %d transition rows, got %d", states, s)}
		}
		if err := decodeRow(a, primitives.StateID(s), text); err != nil {
			return nil, &FormatError{Line: lr.line, Msg: fmt.Sprintf("state %d", s), Err: err}
		}
	}
	if text, ok := lr.next(); ok {
		return nil, &FormatError{Line: lr.line, Msg: fmt.Sprintf("unexpected content after %d transition rows: %q", states, text)}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return a, nil
}

func decodeRow(a *primitives.Automaton, from primitives.StateID, text string) error {
	fields := strings.Fields(text)
	if want := a.AlphabetSize() + 1; len(fields) != want {
		return fmt.Errorf("%d sets, want %d (epsilon first, then one per symbol)", len(fields), want)
	}
	for col, field := range fields {
		ids, err := parseSet(field)
		if err != nil {
			return err
		}
		if err := a.AddTransition(from, primitives.Symbol(col), ids...); err != nil {
			return err
		}
	}
	return nil
}

// parseSet parses "{}" or "{1,2,3}".
func parseSet(field string) ([]primitives.StateID, error) {
	if len(field) < 2 || field[0] != '{' || field[len(field)-1] != '}' {
		return nil, fmt.Errorf("malformed set %q", field)
	}
	body := field[1 : len(field)-1]
	if body == "" {
		return nil, nil
	}
	parts := strings.Split(body, ",")
	ids := make([]primitives.StateID, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("malformed set %q: %w", field, err)
		}
		ids = append(ids, primitives.StateID(id))
	}
	return ids, nil
}

// Encode writes a in the table format. Sets and the accepting list are
// written in ascending order.
func (TextCodec) Encode(w io.Writer, a *primitives.Automaton) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %d\n", headerStates, a.StateCount())
	fmt.Fprintf(bw, "%s %d\n", headerAlphabet, a.AlphabetSize())

	accepting := a.Accepting().Sorted()
	parts := make([]string, len(accepting))
	for i, s := range accepting {
		parts[i] = strconv.Itoa(int(s))
	}
	bw.WriteString(strings.TrimSpace(headerAccepting + " " + strings.Join(parts, " ")))
	bw.WriteByte('\n')

	for s := 0; s < a.StateCount(); s++ {
		for sym := 0; sym <= a.AlphabetSize(); sym++ {
			if sym > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(a.Targets(primitives.StateID(s), primitives.Symbol(sym)).String())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

package production

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// newLineScanner returns a line scanner without the default 64 KiB line
// limit.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	return sc
}

// ReadStrings reads one input string per line. Empty lines are kept as
// empty strings; a trailing newline does not add one. Carriage returns are
// stripped.
func ReadStrings(r io.Reader) ([]string, error) {
	var out []string
	sc := newLineScanner(r)
	for sc.Scan() {
		out = append(out, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read strings: %w", err)
	}
	return out, nil
}

// ReadStringsFile is ReadStrings on the named file.
func ReadStringsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadStrings(f)
}

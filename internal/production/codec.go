package production

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/comalice/nfax/internal/primitives"
)

// Codec reads and writes automata in one serialization format.
type Codec interface {
	Decode(r io.Reader) (*primitives.Automaton, error)
	Encode(w io.Writer, a *primitives.Automaton) error
}

// Format names a serialization format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text", "yaml"/"yml" and "json", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, yaml or json)", s)
}

// FormatOf picks the format from a file extension; unknown extensions are
// text.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}
	return FormatText
}

// Extension is the file extension written for f.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatJSON:
		return ".json"
	}
	return ".txt"
}

// CodecFor returns the codec for f. name is embedded by structured formats.
func CodecFor(f Format, name string) Codec {
	switch f {
	case FormatYAML:
		return YAMLCodec{Name: name}
	case FormatJSON:
		return JSONCodec{Name: name}
	}
	return TextCodec{}
}

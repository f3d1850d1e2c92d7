// Package production provides production integrations: persistence, visualization, reports.

package production

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/comalice/nfax/internal/primitives"
)

// Persister stores automata by name.
type Persister interface {
	Save(ctx context.Context, name string, a *primitives.Automaton) error
	Load(ctx context.Context, name string) (*primitives.Automaton, error)
}

// FilePersister is a directory-backed persister writing one file per
// automaton in a single format.
type FilePersister struct {
	dir    string
	format Format
	ext    string
}

func newFilePersister(dir string, format Format, ext string) (*FilePersister, error) {
	p := &FilePersister{dir: dir, format: format, ext: ext}
	if err := p.ensureDir(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *FilePersister) ensureDir() error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", p.dir, err)
	}
	return nil
}

// NewJSONPersister creates a JSON FilePersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*FilePersister, error) {
	return newFilePersister(dir, FormatJSON, FormatJSON.Extension())
}

// NewYAMLPersister creates a YAML FilePersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*FilePersister, error) {
	return newFilePersister(dir, FormatYAML, FormatYAML.Extension())
}

// NewTextPersister creates a table-format FilePersister, ensuring the
// directory exists.
func NewTextPersister(dir string) (*FilePersister, error) {
	return newFilePersister(dir, FormatText, FormatText.Extension())
}

// PersisterForPath returns a persister for the directory of path, using
// the format implied by its extension, and the name that addresses path.
// The directory is not created until Save.
func PersisterForPath(path string) (*FilePersister, string, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if base == "" {
		return nil, "", fmt.Errorf("path %q names a directory", path)
	}
	ext := filepath.Ext(base)
	p := &FilePersister{dir: dir, format: FormatOf(path), ext: ext}
	return p, strings.TrimSuffix(base, ext), nil
}

// Format returns the persister's serialization format.
func (p *FilePersister) Format() Format {
	return p.format
}

// Path returns the file that holds name.
func (p *FilePersister) Path(name string) string {
	return filepath.Join(p.dir, name+p.ext)
}

func (p *FilePersister) Save(ctx context.Context, name string, a *primitives.Automaton) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := CodecFor(p.format, name).Encode(&buf, a); err != nil {
		return err
	}

	if err := p.ensureDir(); err != nil {
		return err
	}
	fn := p.Path(name)
	if err := os.WriteFile(fn, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (p *FilePersister) Load(ctx context.Context, name string) (*primitives.Automaton, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fn := p.Path(name)
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("automaton %q: %w", name, os.ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", fn, err)
	}

	a, err := CodecFor(p.format, name).Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("validation after load %s: %w", fn, err)
	}
	return a, nil
}

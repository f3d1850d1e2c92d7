// Tests for FilePersister round-trips across formats.
package production

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/comalice/nfax/internal/primitives"
)

func sample() *primitives.Automaton {
	return primitives.NewBuilder(4, 2).
		Epsilon(0, 1, 2).
		On(1, 'a', 3).
		On(2, 'b', 3, 0).
		Epsilon(3, 3).
		Accept(3).
		MustBuild()
}

func TestFilePersister_RoundTrip(t *testing.T) {
	constructors := map[string]func(string) (*FilePersister, error){
		"json": NewJSONPersister,
		"yaml": NewYAMLPersister,
		"text": NewTextPersister,
	}
	for name, newPersister := range constructors {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			p, err := newPersister(dir)
			if err != nil {
				t.Fatalf("constructor failed: %v", err)
			}

			a := sample()
			if err := p.Save(context.Background(), "sample", a); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if _, err := os.Stat(p.Path("sample")); err != nil {
				t.Fatalf("saved file missing: %v", err)
			}

			loaded, err := p.Load(context.Background(), "sample")
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got, want := primitives.Fingerprint(loaded), primitives.Fingerprint(a); got != want {
				t.Errorf("fingerprint after round trip = %s, want %s", got, want)
			}
		})
	}
}

func TestFilePersister_LoadNonExistent(t *testing.T) {
	p, err := NewYAMLPersister(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	_, err = p.Load(context.Background(), "nonexistent")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist wrapped error, got %v", err)
	}
}

func TestFilePersister_CanceledContext(t *testing.T) {
	p, err := NewJSONPersister(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Save(ctx, "x", sample()); !errors.Is(err, context.Canceled) {
		t.Errorf("Save error = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(p.Path("x")); !errors.Is(err, os.ErrNotExist) {
		t.Error("Save with canceled context wrote a file")
	}
	if _, err := p.Load(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("Load error = %v, want context.Canceled", err)
	}
}

func TestFilePersister_LoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	doc := "states: 2\nalphabet: 1\naccepting: [4]\n"
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := NewYAMLPersister(dir)
	if err != nil {
		t.Fatal(err)
	}

	_, err = p.Load(context.Background(), "bad")
	if !errors.Is(err, primitives.ErrInvalidState) {
		t.Errorf("Load error = %v, want ErrInvalidState", err)
	}
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Errorf("Load error %T is not a *FormatError", err)
	}
}

func TestPersisterForPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.yml")

	p, name, err := PersisterForPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if name != "machine" || p.Format() != FormatYAML {
		t.Fatalf("PersisterForPath = %q, %s", name, p.Format())
	}
	if p.Path(name) != path {
		t.Errorf("Path(%q) = %q, want %q", name, p.Path(name), path)
	}
	if err := p.Save(context.Background(), name, sample()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "name: machine") {
		t.Errorf("YAML document missing name:\n%s", data)
	}

	p, name, err = PersisterForPath(filepath.Join(dir, "plain"))
	if err != nil {
		t.Fatal(err)
	}
	if name != "plain" || p.Format() != FormatText {
		t.Errorf("PersisterForPath(plain) = %q, %s", name, p.Format())
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"TEXT": FormatText, "yml": FormatYAML, " json ": FormatJSON} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %s, %v; want %s", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) succeeded")
	}
}

func TestPersisterForPath_LoadLeavesFilesystemAlone(t *testing.T) {
	root := t.TempDir()
	missing := filepath.Join(root, "no", "such", "dir")

	p, name, err := PersisterForPath(filepath.Join(missing, "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Load(context.Background(), name); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load error = %v, want os.ErrNotExist", err)
	}
	if _, err := os.Stat(filepath.Join(root, "no")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load created %s", filepath.Join(root, "no"))
	}

	if err := p.Save(context.Background(), name, sample()); err != nil {
		t.Fatalf("Save into a new directory failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(missing, "a.txt")); err != nil {
		t.Errorf("Save did not write the file: %v", err)
	}
}

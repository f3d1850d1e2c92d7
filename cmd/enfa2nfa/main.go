// Command enfa2nfa removes epsilon transitions from an automaton file.
//
// Usage:
//
//	enfa2nfa [flags] <automaton>
//
// The input format follows the file extension (.yaml/.yml, .json, anything
// else is the text table format). The converted automaton is written to
// stdout, or to -o, in the same format unless -format says otherwise.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	u "github.com/araddon/gou"

	"github.com/comalice/nfax/internal/config"
	"github.com/comalice/nfax/internal/core"
	"github.com/comalice/nfax/internal/extensibility"
	"github.com/comalice/nfax/internal/primitives"
	"github.com/comalice/nfax/internal/production"
)

var (
	configFile = flag.String("config", "", "optional confl config file")
	logLevel   = flag.String("loglevel", "warn", "log level [debug|info|warn|error]")
	outPath    = flag.String("o", "", "write the converted automaton here instead of stdout")
	format     = flag.String("format", "", "output format [text|yaml|json], default same as input")
	stats      = flag.Bool("stats", false, "print conversion statistics to stderr")
	dotPath    = flag.String("dot", "", "write a Graphviz rendering of the result here")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <automaton>\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	conf, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	u.SetupLogging(conf.LogLevel)
	if conf.Color {
		u.SetColorIfTerminal()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, conf, flag.Arg(0), *outPath, os.Stdout, os.Stderr); err != nil {
		u.Errorf("%v", err)
		os.Exit(1)
	}
}

// loadConfig reads -config when given and applies explicitly set flags on
// top of it.
func loadConfig() (*config.Config, error) {
	conf := config.Default()
	if *configFile != "" {
		c, err := config.LoadConfigFromFile(*configFile)
		if err != nil {
			return nil, err
		}
		conf = c
	}
	var setErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config", "o":
			return
		}
		if err := conf.Set(f.Name, f.Value.String()); err != nil && setErr == nil {
			setErr = err
		}
	})
	return conf, setErr
}

func run(ctx context.Context, conf *config.Config, in, out string, stdout, stderr io.Writer) error {
	p, name, err := production.PersisterForPath(in)
	if err != nil {
		return err
	}
	a, err := p.Load(ctx, name)
	if err != nil {
		return err
	}
	u.Infof("loaded %s: %d states, alphabet %d, %d transitions, fingerprint %s",
		in, a.StateCount(), a.AlphabetSize(), a.TransitionCount(), primitives.Fingerprint(a))

	conv := core.NewConverter(core.WithStageObserver(extensibility.NewLoggingObserver(nil)))
	report := conv.Convert(a)
	if conf.Stats {
		if err := production.WriteConversionStats(stderr, report); err != nil {
			return err
		}
	}

	outFormat := p.Format()
	switch {
	case conf.Format != "":
		if outFormat, err = production.ParseFormat(conf.Format); err != nil {
			return err
		}
	case out != "":
		outFormat = production.FormatOf(out)
	}
	codec := production.CodecFor(outFormat, name)

	if out == "" {
		if err := codec.Encode(stdout, a); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	} else {
		if err := writeFile(out, func(w io.Writer) error { return codec.Encode(w, a) }); err != nil {
			return err
		}
		u.Infof("wrote %s", out)
	}

	if conf.DOT != "" {
		viz := &production.DOTVisualizer{Name: name}
		if err := writeFile(conf.DOT, func(w io.Writer) error {
			_, err := io.WriteString(w, viz.ExportDOT(a, nil))
			return err
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

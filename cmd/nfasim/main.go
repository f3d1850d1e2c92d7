// Command nfasim runs a list of strings through an automaton and reports
// whether each is accepted.
//
// Usage:
//
//	nfasim [flags] <automaton> <strings>
//
// The automaton may contain epsilon transitions. The strings file holds one
// input per line; empty lines are the empty string.
package main

import (
	"bufio"
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
	quiet      = flag.Bool("quiet", false, "do not print the automaton before the verdicts")
	format     = flag.String("format", "", "format used to print the automaton [text|yaml|json], default same as input")
	trace      = flag.Bool("trace", false, "print the active state sets of every run")
	dotPath    = flag.String("dot", "", "write a Graphviz rendering with the initial states highlighted")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <automaton> <strings>\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
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

	out := bufio.NewWriter(os.Stdout)
	err = run(ctx, conf, flag.Arg(0), flag.Arg(1), out)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		u.Errorf("%v", err)
		os.Exit(1)
	}
}

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
		case "config", "quiet":
			return
		}
		if err := conf.Set(f.Name, f.Value.String()); err != nil && setErr == nil {
			setErr = err
		}
	})
	return conf, setErr
}

func run(ctx context.Context, conf *config.Config, automatonPath, stringsPath string, w io.Writer) error {
	p, name, err := production.PersisterForPath(automatonPath)
	if err != nil {
		return err
	}
	a, err := p.Load(ctx, name)
	if err != nil {
		return err
	}
	u.Infof("loaded %s: %d states, alphabet %d, fingerprint %s",
		automatonPath, a.StateCount(), a.AlphabetSize(), primitives.Fingerprint(a))

	inputs, err := production.ReadStringsFile(stringsPath)
	if err != nil {
		return err
	}

	if !*quiet {
		f := p.Format()
		if conf.Format != "" {
			if f, err = production.ParseFormat(conf.Format); err != nil {
				return err
			}
		}
		if err := production.CodecFor(f, name).Encode(w, a); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		if _, err := io.WriteString(w, "\n\n"); err != nil {
			return err
		}
	}

	var rec *extensibility.RecordingObserver
	var obs extensibility.Observer
	if conf.Trace {
		rec = extensibility.NewRecordingObserver()
		obs = rec
	}
	sim := core.NewSimulator(a, core.WithStepObserver(extensibility.NewLoggingObserver(obs)))
	results := sim.Run(inputs)

	if err := production.WriteVerdicts(w, results); err != nil {
		return err
	}
	if rec != nil {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := production.WriteTrace(w, rec.Runs); err != nil {
			return err
		}
	}

	if conf.DOT != "" {
		viz := &production.DOTVisualizer{Name: name}
		dot := viz.ExportDOT(a, sim.Start())
		if err := os.WriteFile(conf.DOT, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", conf.DOT, err)
		}
	}
	return nil
}

// Package extensibility provides pluggable observers for the converter and
// simulator: a gou-backed logger and an in-memory recorder.
package extensibility

import (
	u "github.com/araddon/gou"

	"github.com/comalice/nfax/internal/core"
	"github.com/comalice/nfax/internal/primitives"
)

// Observer is both a core.StageObserver and a core.StepObserver.
type Observer interface {
	core.StageObserver
	core.StepObserver
}

// LoggingObserver wraps an Observer and logs every callback at debug level.
// inner may be nil.
type LoggingObserver struct {
	inner Observer
}

// NewLoggingObserver creates a LoggingObserver around inner.
func NewLoggingObserver(inner Observer) *LoggingObserver {
	return &LoggingObserver{inner: inner}
}

func (o *LoggingObserver) OnStage(stage core.Stage, changed int) {
	u.Debugf("convert: stage %s changed=%d", stage, changed)
	if o.inner != nil {
		o.inner.OnStage(stage, changed)
	}
}

func (o *LoggingObserver) OnStart(input string, active primitives.StateSet) {
	u.Debugf("simulate %q: start %s", input, active)
	if o.inner != nil {
		o.inner.OnStart(input, active)
	}
}

func (o *LoggingObserver) OnStep(input string, pos int, sym primitives.Symbol, active primitives.StateSet) {
	u.Debugf("simulate %q: [%d] %s -> %s", input, pos, sym, active)
	if o.inner != nil {
		o.inner.OnStep(input, pos, sym, active)
	}
}

func (o *LoggingObserver) OnVerdict(result core.Result) {
	if result.Verdict == core.Unsupported {
		u.Warnf("simulate %q: unsupported symbol %q at %d", result.Input, result.Symbol, result.Position)
	} else {
		u.Debugf("simulate %q: %s", result.Input, result.Verdict)
	}
	if o.inner != nil {
		o.inner.OnVerdict(result)
	}
}

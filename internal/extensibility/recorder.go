package extensibility

import (
	"github.com/comalice/nfax/internal/core"
	"github.com/comalice/nfax/internal/primitives"
)

// StepRecord is one simulation step: the symbol consumed (Epsilon for the
// initial closure) and the resulting active states.
type StepRecord struct {
	Symbol primitives.Symbol
	Active []primitives.StateID
}

// RunRecord is the full history of one input.
type RunRecord struct {
	Input  string
	Steps  []StepRecord
	Result core.Result
}

// StageRecord is one completed conversion stage.
type StageRecord struct {
	Stage   core.Stage
	Changed int
}

// RecordingObserver keeps every callback in memory, in call order.
type RecordingObserver struct {
	Stages []StageRecord
	Runs   []RunRecord
}

// NewRecordingObserver creates an empty RecordingObserver.
func NewRecordingObserver() *RecordingObserver {
	return &RecordingObserver{}
}

func (r *RecordingObserver) OnStage(stage core.Stage, changed int) {
	r.Stages = append(r.Stages, StageRecord{Stage: stage, Changed: changed})
}

func (r *RecordingObserver) OnStart(input string, active primitives.StateSet) {
	r.Runs = append(r.Runs, RunRecord{
		Input: input,
		Steps: []StepRecord{{Symbol: primitives.Epsilon, Active: active.Sorted()}},
	})
}

func (r *RecordingObserver) OnStep(input string, pos int, sym primitives.Symbol, active primitives.StateSet) {
	run := r.current(input)
	run.Steps = append(run.Steps, StepRecord{Symbol: sym, Active: active.Sorted()})
}

func (r *RecordingObserver) OnVerdict(result core.Result) {
	if result.Verdict == core.Unsupported {
		// Unsupported inputs never start.
		r.Runs = append(r.Runs, RunRecord{Input: result.Input})
	}
	r.current(result.Input).Result = result
}

func (r *RecordingObserver) current(input string) *RunRecord {
	if len(r.Runs) == 0 || r.Runs[len(r.Runs)-1].Input != input {
		r.Runs = append(r.Runs, RunRecord{Input: input})
	}
	return &r.Runs[len(r.Runs)-1]
}

package production

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/comalice/nfax/internal/core"
	"github.com/comalice/nfax/internal/extensibility"
	"github.com/comalice/nfax/internal/primitives"
)

// VerdictLine renders one result as "<input>: Accepted" or
// "<input>: Rejected". Unsupported inputs render as rejected with the
// offending symbol.
func VerdictLine(res core.Result) string {
	switch res.Verdict {
	case core.Accepted:
		return res.Input + ": Accepted"
	case core.Unsupported:
		return fmt.Sprintf("%s: Rejected (unsupported symbol %q)", res.Input, res.Symbol)
	default:
		return res.Input + ": Rejected"
	}
}

// WriteVerdicts writes one VerdictLine per result, in order.
func WriteVerdicts(w io.Writer, results []core.Result) error {
	bw := bufio.NewWriter(w)
	for _, res := range results {
		bw.WriteString(VerdictLine(res))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteConversionStats writes a short summary of a conversion.
func WriteConversionStats(w io.Writer, report core.ConversionReport) error {
	promoted := make([]string, len(report.Promoted))
	for i, s := range report.Promoted {
		promoted[i] = strconv.Itoa(int(s))
	}
	_, err := fmt.Fprintf(w, "promoted accepting states: [%s]\ntransitions added: %d\nepsilon transitions removed: %d\n",
		strings.Join(promoted, " "), report.TransitionsAdded, report.EpsilonsRemoved)
	return err
}

// WriteTrace writes recorded runs, one block per input:
//
//	"ab":
//	  start {0,1}
//	  a     {2}
//	  => Accepted
func WriteTrace(w io.Writer, runs []extensibility.RunRecord) error {
	bw := bufio.NewWriter(w)
	for _, run := range runs {
		fmt.Fprintf(bw, "%q:\n", run.Input)
		for i, step := range run.Steps {
			label := "start"
			if i > 0 {
				label = step.Symbol.String()
			}
			fmt.Fprintf(bw, "  %-5s %s\n", label, primitives.NewStateSet(step.Active...))
		}
		fmt.Fprintf(bw, "  => %s\n", run.Result.Verdict)
	}
	return bw.Flush()
}

package game

import (
	"fmt"
	"io"
	"time"

	"github.com/pthm-cable/glyphfield/telemetry"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logPerfStats prints a human-readable perf breakdown.
func (g *Game) logPerfStats(s telemetry.PerfStats) {
	Logf("=== Perf @ Tick %d | %d particles ===", g.tick, g.field.Len())
	Logf("Avg frame: %s (min %s, max %s)",
		s.AvgTickDuration.Round(time.Microsecond),
		s.MinTickDuration.Round(time.Microsecond),
		s.MaxTickDuration.Round(time.Microsecond),
	)
	for ph := telemetry.PhaseSeed; ph <= telemetry.PhaseTelemetry; ph++ {
		Logf("  %-10s %10s  %5.1f%%", ph, s.PhaseAvg[ph].Round(time.Microsecond), s.PhasePct[ph])
	}
	Logf("")
}

package game

import (
	"log/slog"
)

// flushTelemetry writes a stats window when one has elapsed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.field.Text())
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
		if logWriter != nil {
			g.logPerfStats(perfStats)
		}
	}

	if err := g.outputManager.WriteField(stats); err != nil {
		slog.Warn("failed to write field stats", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Warn("failed to write perf", "error", err)
	}
}

// recordSeed writes the anchors of a fresh seeding to the output.
func (g *Game) recordSeed() {
	g.seedsWritten++
	if err := g.outputManager.WriteAnchors(g.seedsWritten, g.field.Particles()); err != nil {
		slog.Warn("failed to write anchors", "error", err)
	}
}

package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FieldStats holds aggregated statistics for a time window.
type FieldStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Sampled at window end
	Particles int    `csv:"particles"`
	Text      string `csv:"text"`

	// Displacement from anchor (sampled at window end)
	DispMean float64 `csv:"disp_mean"`
	DispP50  float64 `csv:"disp_p50"`
	DispP90  float64 `csv:"disp_p90"`
	DispMax  float64 `csv:"disp_max"`

	// Motion (sampled at window end)
	SpeedMean     float64 `csv:"speed_mean"`
	KineticEnergy float64 `csv:"kinetic_energy"` // sum of |v|^2/2, unit mass

	// Events during window
	Repelled int `csv:"repelled"` // particle-ticks inside the cursor reach
	Reseeds  int `csv:"reseeds"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeDisplacementStats calculates mean, median, p90 and max of displacement values.
func ComputeDisplacementStats(values []float64) (mean, p50, p90, max float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)
	max = sorted[len(sorted)-1]

	return mean, p50, p90, max
}

// ComputeMotionStats returns mean speed and total kinetic energy for unit-mass particles.
func ComputeMotionStats(speeds []float64) (mean, kinetic float64) {
	if len(speeds) == 0 {
		return 0, 0
	}
	return stat.Mean(speeds, nil), floats.Dot(speeds, speeds) / 2
}

// LogValue implements slog.LogValuer for structured logging.
func (s FieldStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.String("text", s.Text),
		slog.Int("particles", s.Particles),
		slog.Float64("disp_mean", s.DispMean),
		slog.Float64("disp_p50", s.DispP50),
		slog.Float64("disp_p90", s.DispP90),
		slog.Float64("disp_max", s.DispMax),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("kinetic_energy", s.KineticEnergy),
		slog.Int("repelled", s.Repelled),
		slog.Int("reseeds", s.Reseeds),
	)
}

// LogStats logs the window stats using slog.
func (s FieldStats) LogStats() {
	slog.Info("stats", "field", s)
}

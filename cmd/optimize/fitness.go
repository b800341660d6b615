package main

import (
	"math"
	"math/rand"
	"sync"

	"github.com/pthm-cable/glyphfield/config"
	"github.com/pthm-cable/glyphfield/game"
	"github.com/pthm-cable/glyphfield/glyph"
	"github.com/pthm-cable/glyphfield/state"
	"github.com/pthm-cable/glyphfield/systems"
	"github.com/pthm-cable/glyphfield/telemetry"
)

// Displacement below which a field counts as settled, in pixels.
const settleEpsilon = 0.5

// shortfallWeight scales the penalty for a disturbance smaller than the target.
const shortfallWeight = 4.0

// FitnessEvaluator runs headless fields and computes fitness.
type FitnessEvaluator struct {
	params       *ParamVector
	words        []string
	baseConfig   *config.Config
	disturbTicks int
	settleCap    int
	targetPeak   float64

	mu         sync.Mutex
	lastResult runResult
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, words []string, baseCfg *config.Config, disturbTicks, settleCap int, targetPeak float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:       params,
		words:        words,
		baseConfig:   baseCfg,
		disturbTicks: disturbTicks,
		settleCap:    settleCap,
		targetPeak:   targetPeak,
	}
}

// runResult holds the results from a single field run.
type runResult struct {
	peakDisp    float64 // largest mean displacement while the cursor swept
	settleTicks int     // ticks after the cursor left until every particle settled
	particles   int
}

// LastResult returns the word-averaged result of the most recent evaluation.
func (fe *FitnessEvaluator) LastResult() (peakDisp float64, settleTicks int) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastResult.peakDisp, fe.lastResult.settleTicks
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
// Fitness rewards fast settling and penalizes a disturbance below the target peak.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	// Run all words in parallel
	results := make([]runResult, len(fe.words))
	var wg sync.WaitGroup
	for i, word := range fe.words {
		wg.Add(1)
		go func(idx int, w string) {
			defer wg.Done()
			results[idx] = fe.runField(cfg, w)
		}(i, word)
	}
	wg.Wait()

	var total float64
	var avg runResult
	for _, r := range results {
		total += fe.computeFitness(r)
		avg.peakDisp += r.peakDisp
		avg.settleTicks += r.settleTicks
	}
	n := len(results)
	avg.peakDisp /= float64(n)
	avg.settleTicks /= n

	fe.mu.Lock()
	fe.lastResult = avg
	fe.mu.Unlock()

	return total / float64(n)
}

// computeFitness scores one run.
func (fe *FitnessEvaluator) computeFitness(r runResult) float64 {
	if r.particles == 0 || math.IsNaN(r.peakDisp) || math.IsInf(r.peakDisp, 0) {
		return 1e6
	}
	fitness := float64(r.settleTicks) / float64(fe.settleCap)
	if r.peakDisp < fe.targetPeak {
		shortfall := (fe.targetPeak - r.peakDisp) / fe.targetPeak
		fitness += shortfallWeight * shortfall * shortfall
	}
	return fitness
}

// runField sweeps the cursor across one word, then counts ticks until the field settles.
func (fe *FitnessEvaluator) runField(cfg *config.Config, word string) runResult {
	// Faces are not safe for concurrent drawing, so each run gets its own rasterizer
	glyphs, err := glyph.New(cfg)
	if err != nil {
		return runResult{}
	}
	defer glyphs.Close()

	wordCfg := *cfg
	wordCfg.Text.Initial = word
	opts := state.Options{Bold: cfg.Options.Bold, Italic: cfg.Options.Italic}
	field := systems.NewField(&wordCfg, &state.Stage{}, &opts, glyphs, rand.New(rand.NewSource(1)))
	field.Populate()

	var res runResult
	res.particles = field.Len()
	if res.particles == 0 {
		return res
	}

	var snap systems.Snapshot
	y := float64(cfg.Screen.Height)/2 + cfg.Text.BaselineOffset - cfg.Text.FontSize/3
	sweep := game.NewSweepCursor(float64(cfg.Screen.Width), y, fe.disturbTicks)
	for t := 0; t < fe.disturbTicks; t++ {
		field.SetCursor(sweep.Position(int32(t)))
		field.Update()
		field.Snapshot(&snap)
		mean, _, _, _ := telemetry.ComputeDisplacementStats(snap.Displacement)
		res.peakDisp = max(res.peakDisp, mean)
	}

	field.ClearCursor()
	res.settleTicks = fe.settleCap
	for t := 0; t < fe.settleCap; t++ {
		field.Update()
		field.Snapshot(&snap)
		_, _, _, maxDisp := telemetry.ComputeDisplacementStats(snap.Displacement)
		if maxDisp < settleEpsilon {
			res.settleTicks = t
			break
		}
	}
	return res
}

// copyConfig creates a copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/record"
	"github.com/lixenwraith/gogo-ame/system"
	"github.com/lixenwraith/gogo-ame/vmath"
)

var simEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// options configures a batch
type options struct {
	Runs        int
	Parallel    int
	Seed        uint64
	Duration    time.Duration
	Gust        time.Duration // interval between automatic wind curves; 0 disables
	RecordDir   string
	RecordEvery int
}

// runOne plays a single seeded game on game time only
// The result depends on seed and cfg alone, never on wall time
func runOne(ctx context.Context, cfg *config.Config, seed uint64, opts options, log *zap.Logger) (record.Summary, error) {
	clock := engine.NewManualClock(simEpoch)
	rng := vmath.NewFastRand(seed)
	w := engine.NewWorld(cfg.Clone(),
		engine.WithLogger(log),
		engine.WithRand(rng),
		engine.WithClock(clock))
	spawner := system.Install(w)

	stats := record.NewStats(seed)
	w.RegisterHandler(stats)

	var rec *record.Recorder
	if opts.RecordDir != "" {
		var err error
		rec, err = record.Create(filepath.Join(opts.RecordDir, fmt.Sprintf("run-%d.jsonl", seed)), opts.RecordEvery)
		if err != nil {
			return record.Summary{}, err
		}
		rec.WriteHeader(record.Header{Seed: seed, Started: simEpoch, Config: w.Config})
		w.RegisterHandler(rec)
	}

	duration := opts.Duration
	if duration <= 0 || duration > parameter.SimMaxDuration {
		duration = parameter.SimMaxDuration
	}
	interval := w.Config.BallCreationInterval
	nextSpawn := simEpoch.Add(interval)
	nextGust := simEpoch.Add(opts.Gust)
	end := simEpoch.Add(duration)

	for now := simEpoch; now.Before(end) && !w.State.GameOver; {
		if err := ctx.Err(); err != nil {
			if rec != nil {
				rec.Close()
			}
			return record.Summary{}, err
		}
		now = clock.Advance(parameter.SimFrameStep)

		if interval > 0 && !now.Before(nextSpawn) {
			spawner.Spawn(now)
			nextSpawn = nextSpawn.Add(interval)
		}
		if opts.Gust > 0 && !now.Before(nextGust) {
			gust(w, rng)
			nextGust = nextGust.Add(opts.Gust)
		}

		w.Step(now)
		w.DispatchEvents()
		if rec != nil {
			rec.Frame(w)
		}
	}

	sum := stats.Finish(w)
	if rec != nil {
		rec.WriteSummary(w.Frame(), sum)
		if err := rec.Close(); err != nil {
			return sum, err
		}
	}
	log.Debug("run finished",
		zap.Int("score", sum.Score),
		zap.Int("highest_level", sum.HighestLevel),
		zap.Bool("game_over", sum.GameOver),
		zap.Int64("frames", sum.Frames))
	return sum, nil
}

// gust draws a horizontal wind curve across a random band of the field
func gust(w *engine.World, rng vmath.Rand) {
	cfg := w.Config
	y := vmath.RandRange(rng, cfg.FieldHeight*0.2, cfg.FieldHeight*0.8)
	x0, x1 := cfg.FieldWidth*0.1, cfg.FieldWidth*0.9
	if rng.Float64() < 0.5 {
		x0, x1 = x1, x0
	}
	const segments = 8
	w.BeginWind(x0, y)
	for i := 1; i <= segments; i++ {
		w.ExtendWind(x0+(x1-x0)*float64(i)/segments, y)
	}
	w.EndWind()
}

// runAll plays opts.Runs games with consecutive seeds, at most opts.Parallel at once
// Results are indexed by run; the first failure cancels the rest
func runAll(ctx context.Context, cfg *config.Config, opts options, log *zap.Logger) ([]record.Summary, error) {
	results := make([]record.Summary, opts.Runs)

	g, ctx := errgroup.WithContext(ctx)
	if opts.Parallel > 0 {
		g.SetLimit(opts.Parallel)
	}
	for i := 0; i < opts.Runs; i++ {
		seed := opts.Seed + uint64(i)
		g.Go(func() error {
			sum, err := runOne(ctx, cfg, seed, opts, log.With(zap.Uint64("seed", seed)))
			if err != nil {
				return fmt.Errorf("run %d (seed %d): %w", i, seed, err)
			}
			results[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// aggregate is the batch-level outcome
type aggregate struct {
	Runs         int     `json:"runs"`
	GameOvers    int     `json:"game_overs"`
	MeanScore    float64 `json:"mean_score"`
	MaxScore     int     `json:"max_score"`
	MaxLevel     int     `json:"max_level"`
	MeanFrames   float64 `json:"mean_frames"`
	TotalCombine int     `json:"total_combines"`
}

func summarize(results []record.Summary) aggregate {
	a := aggregate{Runs: len(results)}
	if len(results) == 0 {
		return a
	}
	var score, frames float64
	for _, r := range results {
		score += float64(r.Score)
		frames += float64(r.Frames)
		a.MaxScore = max(a.MaxScore, r.Score)
		a.MaxLevel = max(a.MaxLevel, r.HighestLevel)
		a.TotalCombine += r.Events["Combine"]
		if r.GameOver {
			a.GameOvers++
		}
	}
	a.MeanScore = score / float64(len(results))
	a.MeanFrames = frames / float64(len(results))
	return a
}

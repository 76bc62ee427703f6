package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/record"
)

func shortOpts() options {
	return options{Runs: 4, Parallel: 2, Seed: 100, Duration: 20 * time.Second, Gust: 3 * time.Second}
}

func TestRunOneDeterministic(t *testing.T) {
	cfg := config.Default()
	opts := shortOpts()

	a, err := runOne(context.Background(), cfg, 42, opts, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	b, err := runOne(context.Background(), cfg, 42, opts, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if a.Frames != b.Frames || a.Score != b.Score || a.HighestLevel != b.HighestLevel || a.Balls != b.Balls {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
	if a.Events["BallSpawned"] == 0 {
		t.Error("no tokens spawned in 20s of game time")
	}
	if a.Events["WindEnd"] == 0 {
		t.Error("gusts should draw wind curves")
	}
	if a.Seed != 42 {
		t.Errorf("seed = %d, want 42", a.Seed)
	}
}

func TestRunOneLeavesConfigAlone(t *testing.T) {
	cfg := config.Default()
	width := cfg.FieldWidth
	if _, err := runOne(context.Background(), cfg, 1, shortOpts(), zap.NewNop()); err != nil {
		t.Fatal(err)
	}
	if cfg.FieldWidth != width {
		t.Error("run mutated the shared config")
	}
}

func TestRunAllParallel(t *testing.T) {
	opts := shortOpts()
	results, err := runAll(context.Background(), config.Default(), opts, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != opts.Runs {
		t.Fatalf("results = %d, want %d", len(results), opts.Runs)
	}
	for i, r := range results {
		if r.Seed != opts.Seed+uint64(i) {
			t.Errorf("results[%d].Seed = %d, want %d", i, r.Seed, opts.Seed+uint64(i))
		}
	}

	// Parallel runs match a serial replay of the same seed
	solo, err := runOne(context.Background(), config.Default(), opts.Seed+2, opts, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if solo.Score != results[2].Score || solo.Frames != results[2].Frames {
		t.Errorf("parallel run diverged from serial: %+v vs %+v", results[2], solo)
	}
}

func TestRunAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := runAll(ctx, config.Default(), shortOpts(), zap.NewNop()); err == nil {
		t.Error("cancelled batch should fail")
	}
}

func TestRunOneRecords(t *testing.T) {
	dir := t.TempDir()
	opts := shortOpts()
	opts.RecordDir = dir
	opts.RecordEvery = 100

	sum, err := runOne(context.Background(), config.Default(), 7, opts, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(dir, "run-7.jsonl"))
	if err != nil {
		t.Fatalf("recording missing: %v", err)
	}
	defer f.Close()

	kinds := map[string]int{}
	var last record.Line
	if err := record.Read(f, func(l record.Line) error {
		kinds[l.Kind]++
		last = l
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if kinds[record.KindHeader] != 1 || kinds[record.KindSummary] != 1 {
		t.Errorf("kinds = %v", kinds)
	}
	if kinds[record.KindSnapshot] == 0 || kinds[record.KindEvent] == 0 {
		t.Errorf("kinds = %v, want snapshots and events", kinds)
	}
	if last.Kind != record.KindSummary || last.Summary.Score != sum.Score {
		t.Errorf("last line = %+v", last)
	}
}

func TestSummarize(t *testing.T) {
	a := summarize([]record.Summary{
		{Score: 10, Frames: 100, HighestLevel: 3, Events: map[string]int{"Combine": 4}},
		{Score: 30, Frames: 300, HighestLevel: 5, GameOver: true, Events: map[string]int{"Combine": 6}},
	})
	if a.Runs != 2 || a.MeanScore != 20 || a.MaxScore != 30 || a.MaxLevel != 5 ||
		a.MeanFrames != 200 || a.TotalCombine != 10 || a.GameOvers != 1 {
		t.Errorf("aggregate = %+v", a)
	}
	if z := summarize(nil); z.Runs != 0 || z.MeanScore != 0 {
		t.Errorf("empty aggregate = %+v", z)
	}
}

func TestWriteTableAndJSON(t *testing.T) {
	results := []record.Summary{{Seed: 3, Frames: 10, Score: 9, HighestLevel: 2, Events: map[string]int{}}}

	var tb bytes.Buffer
	if err := writeTable(&tb, results); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(tb.String(), "seed") || !strings.Contains(tb.String(), "mean") {
		t.Errorf("table = %q", tb.String())
	}

	var jb bytes.Buffer
	if err := writeJSON(&jb, results); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(jb.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], `"seed":3`) || !strings.Contains(lines[1], `"runs":1`) {
		t.Errorf("json = %q", jb.String())
	}
}

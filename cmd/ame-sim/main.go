// Command ame-sim plays seeded games headlessly and reports per-run outcomes
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"text/tabwriter"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/core"
	"github.com/lixenwraith/gogo-ame/record"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	var (
		opts       options
		configPath string
		asJSON     bool
		verbose    bool
	)
	flag.IntVar(&opts.Runs, "runs", 8, "number of games")
	flag.IntVar(&opts.Parallel, "parallel", runtime.NumCPU(), "games run at once")
	flag.Uint64Var(&opts.Seed, "seed", 1, "seed of the first game; later games use seed+i")
	flag.DurationVar(&opts.Duration, "duration", 2*time.Minute, "game time per run")
	flag.DurationVar(&opts.Gust, "gust", 0, "draw an automatic wind curve at this interval")
	flag.StringVar(&opts.RecordDir, "record-dir", "", "write one JSONL recording per run into this directory")
	flag.IntVar(&opts.RecordEvery, "record-every", 60, "snapshot every N frames when recording")
	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.BoolVar(&asJSON, "json", false, "print summaries as JSON lines")
	flag.BoolVar(&verbose, "v", false, "log progress to stderr in development format")
	flag.Parse()

	if err := run(opts, configPath, asJSON, verbose); err != nil {
		fmt.Fprintf(os.Stderr, "ame-sim: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, configPath string, asJSON, verbose bool) error {
	log, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	if opts.Runs < 1 {
		return fmt.Errorf("runs must be >= 1, got %d", opts.Runs)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if opts.RecordDir != "" {
		if err := os.MkdirAll(opts.RecordDir, 0o755); err != nil {
			return fmt.Errorf("create record dir: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := runAll(ctx, cfg, opts, log)
	if err != nil {
		return err
	}
	log.Info("batch finished", zap.Int("runs", len(results)), zap.Duration("wall", time.Since(start)))

	if asJSON {
		return writeJSON(os.Stdout, results)
	}
	return writeTable(os.Stdout, results)
}

// newLogger writes to stderr: development output with -v, warnings and errors otherwise
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func writeJSON(out io.Writer, results []record.Summary) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(out)
	for i := range results {
		if err := enc.Encode(&results[i]); err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
	}
	if err := enc.Encode(summarize(results)); err != nil {
		return fmt.Errorf("encode aggregate: %w", err)
	}
	return nil
}

func writeTable(out io.Writer, results []record.Summary) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "seed\tframes\tscore\tlevel\tlives\tcombines\tover\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%v\t\n",
			r.Seed, r.Frames, r.Score, r.HighestLevel, r.Lives, r.Events["Combine"], r.GameOver)
	}
	a := summarize(results)
	fmt.Fprintf(tw, "mean\t%.0f\t%.1f\t%d\t\t%d\t%d/%d\t\n",
		a.MeanFrames, a.MeanScore, a.MaxLevel, a.TotalCombine, a.GameOvers, a.Runs)
	return tw.Flush()
}

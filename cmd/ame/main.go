// Command ame is the interactive terminal build of the merge arcade
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/gogo-ame/audio"
	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/core"
	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/input"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/record"
	"github.com/lixenwraith/gogo-ame/render"
	"github.com/lixenwraith/gogo-ame/system"
	"github.com/lixenwraith/gogo-ame/vmath"
)

var (
	configPath = flag.String("config", "", "YAML config file, watched for changes")
	keysPath   = flag.String("keys", "", "YAML keymap overriding the default bindings")
	debugFlag  = flag.Bool("debug", false, "write a rotating debug log")
	logPath    = flag.String("log", "", "debug log path (default logs/ame.log)")
	recordPath = flag.String("record", "", "record the session as JSON lines")
	recordRate = flag.Int("record-every", 30, "snapshot every N frames when recording")
	seedFlag   = flag.Uint64("seed", 0, "random seed (0 uses the clock)")
	noAudio    = flag.Bool("no-audio", false, "disable sound")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ame: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log, closeLog, err := setupLogger(*debugFlag, *logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	keys, err := input.LoadKeyFile(*keysPath)
	if err != nil {
		return err
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	core.SetCrashLogger(log)
	defer func() {
		core.SetCrashReset(nil)
		core.SetCrashLogger(nil)
		screen.Fini()
	}()
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()

	clock := engine.NewPausableClock(engine.WallClock{})
	world := engine.NewWorld(cfg,
		engine.WithLogger(log),
		engine.WithRand(vmath.NewFastRand(seed)),
		engine.WithClock(clock))
	spawner := system.Install(world)

	renderer := render.NewRenderer(screen)
	renderer.Fit(cfg.FieldWidth, cfg.FieldHeight)

	a := &app{
		screen:   screen,
		renderer: renderer,
		adapter:  input.NewAdapter(keys, renderer.Viewport),
		control:  input.NewController(spawner),
		log:      log,
		trails:   true,
	}
	world.RegisterHandler(a)

	if !*noAudio {
		if p := startAudio(log); p != nil {
			defer p.Stop()
			a.player = p
			world.RegisterHandler(p)
		}
	}

	stats := record.NewStats(seed)
	if *recordPath != "" {
		rec, err := record.Create(*recordPath, *recordRate)
		if err != nil {
			return err
		}
		rec.WriteHeader(record.Header{Seed: seed, Started: time.Now(), Config: cfg})
		world.RegisterHandler(rec)
		world.RegisterHandler(stats)
		a.recorder = rec
		defer func() {
			rec.WriteSummary(world.Frame(), stats.Finish(world))
			if err := rec.Close(); err != nil {
				log.Warn("recording incomplete", zap.Error(err))
			}
		}()
	}

	loopCfg := engine.LoopConfig{
		FrameInterval: parameter.FrameUpdateInterval,
		Spawner:       spawner,
		OnFrame:       a.frame,
	}
	if *configPath != "" {
		watcher, err := config.NewWatcher(*configPath, log)
		if err != nil {
			log.Warn("config hot reload unavailable", zap.Error(err))
		} else {
			defer watcher.Close()
			loopCfg.Configs = watcher.Changes()
		}
	}

	loop := engine.NewLoop(world, clock, loopCfg)
	a.loop = loop

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			a.post(ev)
		}
	})

	log.Info("game started",
		zap.Uint64("seed", seed),
		zap.Int("symbols", world.Table().Len()),
		zap.Float64("width", cfg.FieldWidth),
		zap.Float64("height", cfg.FieldHeight))

	err = loop.Run(ctx)
	log.Info("game ended",
		zap.Int("score", world.State.Score),
		zap.Int("highest_level", world.State.HighestLevel),
		zap.Int64("frames", world.Frame()))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// startAudio opens the speaker; nil when sound is disabled or unavailable
func startAudio(log *zap.Logger) *audio.Player {
	acfg := audio.LoadAudioConfig(log)
	if !acfg.Enabled {
		return nil
	}
	p := audio.NewPlayer(acfg, log)
	if err := p.Start(); err != nil {
		log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		return nil
	}
	return p
}

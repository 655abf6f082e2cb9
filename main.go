package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-stilllife/model"
	"github.com/sheikhrachel/go-stilllife/patterns"
	"github.com/sheikhrachel/go-stilllife/sim"
	"github.com/sheikhrachel/go-stilllife/utils"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	var (
		settingsPath = flag.String("settings", "settings.json", "board settings file, created with defaults when missing")
		envPath      = flag.String("env", ".env", "optional file with LIFE_* overrides")
		seed         = flag.Uint64("seed", 0, "random seed for the initial board (0 keeps the configured seed)")
		snapshotIn   = flag.String("snapshot", "", "start from a saved board instead of a random one")
		snapshotOut  = flag.String("out", "", "write the final board to this file")
		quiet        = flag.Bool("quiet", false, "do not render frames")
		scan         = flag.Bool("scan", false, "recognize figures in the snapshot files given as arguments and exit")
	)
	flag.Parse()

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *scan {
		reports, err := sim.ScanSnapshots(ctx, flag.Args(), patterns.StillLifes(), runtime.NumCPU())
		if err != nil {
			log.Fatalf("%v", err)
		}
		displayScanReports(reports)
		return
	}

	// Load configuration - fallback to defaults if the file is unusable
	config, err := utils.LoadOrCreateConfig(*settingsPath)
	if err != nil {
		log.Printf("using default configuration: %v", err)
		config = utils.DefaultConfig()
	}

	overrides, err := utils.LoadOverrides(*envPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err = config.Apply(overrides); err != nil {
		log.Fatalf("%v", err)
	}
	if *seed != 0 {
		config.Seed = *seed
	}
	if *snapshotOut != "" {
		config.SnapshotPath = *snapshotOut
	}
	if *quiet {
		config.Render = false
	}

	grid, err := initializeGrid(&config, *snapshotIn)
	if err != nil {
		log.Fatalf("%v", err)
	}

	runner := sim.NewRunner(grid, patterns.StillLifes(),
		sim.WithPool(model.NewGridPool()),
		sim.WithPeriodWindow(config.PeriodWindow),
	)
	renderer := model.NewTerminalRenderer(os.Stdout)
	stats := utils.NewStats()

	displayGameInfo(config, runner)

	lastFrameTime := time.Now()
	summary, err := runner.Run(ctx, config.MaxGenerations, func(step sim.StepResult) error {
		frameStart := time.Now()
		stats.Update(step.Generation, step.Alive, step.Recognition.Total(), step.Symmetrical, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if config.Render {
			if err := renderer.Clear(); err != nil {
				log.Printf("%v", err)
			}
			displayGameStatus(step, stats, runner.Grid())
			if err := renderer.Display(runner.Grid()); err != nil {
				return err
			}
		}

		return waitFrame(ctx, config.FrameRate)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("run %s: %v", runner.ID(), err)
	}

	displaySummary(summary, stats)

	if config.SnapshotPath != "" {
		if err = model.WriteSnapshotFile(config.SnapshotPath, runner.Grid()); err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf("final board written to %s", config.SnapshotPath)
	}
}

// waitFrame sleeps for one frame unless the run is interrupted
func waitFrame(ctx context.Context, frame time.Duration) error {
	if frame <= 0 {
		return nil
	}
	timer := time.NewTimer(frame)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/sheikhrachel/go-stilllife/model"
	"github.com/sheikhrachel/go-stilllife/patterns"
	"github.com/sheikhrachel/go-stilllife/sim"
	"github.com/sheikhrachel/go-stilllife/utils"
)

// initializeGrid loads the starting board from a snapshot, or seeds a random
// one from the settings. A zero seed is replaced by a time-based one and
// stored back into config so the run can be reproduced.
func initializeGrid(config *utils.Config, snapshotPath string) (*model.Grid, error) {
	if snapshotPath != "" {
		return model.ReadSnapshotFile(snapshotPath)
	}

	columns, rows, err := config.Dimensions()
	if err != nil {
		return nil, err
	}
	if config.Seed == 0 {
		config.Seed = uint64(time.Now().UnixNano())
	}
	return model.Create(columns, rows, config.CellSize, config.LiveDensity, model.NewRNG(config.Seed))
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, runner *sim.Runner) {
	grid := runner.Grid()
	fmt.Printf("Run: %s | Seed: %d\n", runner.ID(), config.Seed)
	fmt.Printf("Grid: %dx%d (cell size %d) | Initial living cells: %d\n",
		grid.Columns(), grid.Rows(), grid.CellSize(), grid.CountAlive())
	fmt.Printf("Catalog: %d templates, %d symmetrical\n",
		patterns.StillLifes().Len(), len(patterns.StillLifes().SymmetricalFigures()))
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// displayGameStatus shows the current game status
func displayGameStatus(step sim.StepResult, stats *utils.Stats, grid *model.Grid) {
	density := float64(step.Alive) / float64(grid.Columns()*grid.Rows()) * 100

	status := "Active"
	if step.Stable {
		status = "Settled"
	}
	if step.Alive == 0 {
		status = "Extinct"
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		step.Generation, step.Alive, density, status)
	fmt.Printf("Figures: %d | Symmetrical: %d | %.1f gen/sec | Avg Pop: %.1f\n",
		step.Recognition.Total(), step.Symmetrical, stats.GenerationsPerSecond, stats.AveragePopulation)
}

func figureList(r *patterns.Recognition, figures []patterns.Figure) string {
	if len(figures) == 0 {
		return "none"
	}
	parts := make([]string, len(figures))
	for i, f := range figures {
		parts[i] = fmt.Sprintf("%s x%d", f, len(r.Anchors(f)))
	}
	return strings.Join(parts, ", ")
}

// displaySummary prints the recognized figures of the final board
func displaySummary(summary sim.Summary, stats *utils.Stats) {
	fmt.Println()
	if summary.Stable {
		fmt.Printf("Board settled after %d generations\n", summary.Generations)
	} else {
		fmt.Printf("Stopped after %d generations\n", summary.Generations)
	}
	for _, f := range summary.Figures {
		fmt.Println(f)
	}
	fmt.Printf("Count of symmetrical figures: %d\n", summary.Symmetrical)
	fmt.Printf("Count of iteration: %d\n", summary.Generations)
	fmt.Printf("Run %s | Living: %d | Runtime: %.1fs\n", summary.RunID, summary.Alive, stats.Runtime().Seconds())
}

// displayScanReports prints one line per scanned snapshot
func displayScanReports(reports []sim.ScanReport) {
	catalog := patterns.StillLifes()
	for _, r := range reports {
		fmt.Printf("%s: %dx%d | Living: %d | Symmetrical: %d | %s\n",
			r.Path, r.Columns, r.Rows, r.Alive, r.Symmetrical,
			figureList(r.Recognition, r.Recognition.Sorted(catalog)))
	}
}

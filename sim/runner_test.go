package sim

import (
	"context"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-stilllife/model"
	"github.com/sheikhrachel/go-stilllife/patterns"
)

func boardWith(t *testing.T, columns, rows int, cells ...[2]int) *model.Grid {
	t.Helper()
	g, err := model.NewGrid(columns, rows, 1)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for _, rc := range cells {
		g.Set(rc[0], rc[1], true)
	}
	return g
}

func block(t *testing.T) *model.Grid {
	return boardWith(t, 8, 8, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3})
}

func blinker(t *testing.T) *model.Grid {
	return boardWith(t, 7, 7, [2]int{2, 3}, [2]int{3, 3}, [2]int{4, 3})
}

func glider(t *testing.T) *model.Grid {
	return boardWith(t, 8, 8, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{3, 2}, [2]int{3, 3})
}

func TestRunner_StillLifeStopsAfterOneGeneration(t *testing.T) {
	r := NewRunner(block(t), patterns.StillLifes())

	summary, err := r.Run(context.Background(), 100, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Generations != 1 || !summary.Stable {
		t.Fatalf("summary = %+v, want stable after 1 generation", summary)
	}
	if !slices.Equal(summary.Figures, []patterns.Figure{patterns.Block}) {
		t.Fatalf("Figures = %v", summary.Figures)
	}
	if summary.Symmetrical != 1 || summary.Alive != 4 {
		t.Fatalf("Symmetrical = %d, Alive = %d", summary.Symmetrical, summary.Alive)
	}
	if summary.RunID != r.ID() || r.ID() == uuid.Nil {
		t.Fatalf("RunID = %v, runner ID = %v", summary.RunID, r.ID())
	}
}

func TestRunner_BlinkerStopsAfterOnePeriod(t *testing.T) {
	r := NewRunner(blinker(t), patterns.StillLifes(), WithPool(model.NewGridPool()))

	var seen []patterns.Figure
	summary, err := r.Run(context.Background(), 100, func(step StepResult) error {
		seen = append(seen, step.Recognition.Figures()...)
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Generations != 2 || !summary.Stable {
		t.Fatalf("summary = %+v, want stable after 2 generations", summary)
	}
	if want := []patterns.Figure{patterns.Blinker2, patterns.Blinker1}; !slices.Equal(seen, want) {
		t.Fatalf("figures per step = %v, want %v", seen, want)
	}
}

func TestRunner_WindowOfOneIgnoresOscillators(t *testing.T) {
	r := NewRunner(blinker(t), patterns.StillLifes(), WithPeriodWindow(1))

	summary, err := r.Run(context.Background(), 6, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Generations != 6 || summary.Stable {
		t.Fatalf("summary = %+v, want 6 unstable generations", summary)
	}
}

func TestRunner_GliderRunsToLimit(t *testing.T) {
	r := NewRunner(glider(t), patterns.StillLifes(), WithPeriodWindow(3))

	summary, err := r.Run(context.Background(), 10, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Generations != 10 || summary.Stable || summary.Alive != 5 {
		t.Fatalf("summary = %+v", summary)
	}
	if r.Generation() != 10 {
		t.Fatalf("Generation = %d", r.Generation())
	}
}

func TestRunner_EmptyBoardIsStable(t *testing.T) {
	r := NewRunner(boardWith(t, 4, 4), patterns.StillLifes())

	step, err := r.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !step.Stable || step.Alive != 0 || step.Recognition.Len() != 0 || step.Symmetrical != 0 {
		t.Fatalf("step = %+v", step)
	}
}

func TestRunner_ObserverErrorStopsRun(t *testing.T) {
	stop := errors.New("stop")
	r := NewRunner(glider(t), patterns.StillLifes())

	summary, err := r.Run(context.Background(), 0, func(step StepResult) error {
		if step.Generation == 3 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("Run err = %v, want observer error", err)
	}
	if summary.Generations != 3 {
		t.Fatalf("Generations = %d, want 3", summary.Generations)
	}
}

func TestRunner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(block(t), patterns.StillLifes())
	summary, err := r.Run(ctx, 10, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run err = %v, want context.Canceled", err)
	}
	if summary.Generations != 0 {
		t.Fatalf("Generations = %d, want 0", summary.Generations)
	}
	// the untouched board is still reported
	if !slices.Equal(summary.Figures, []patterns.Figure{patterns.Block}) {
		t.Fatalf("Figures = %v", summary.Figures)
	}
}

func TestRunner_DistinctIDs(t *testing.T) {
	a := NewRunner(block(t), patterns.StillLifes())
	b := NewRunner(block(t), patterns.StillLifes())
	if a.ID() == b.ID() {
		t.Fatal("runners share an ID")
	}
}

package sim

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-stilllife/model"
	"github.com/sheikhrachel/go-stilllife/patterns"
)

const defaultPeriodWindow = 2

// StepResult describes the board right after one generation
type StepResult struct {
	Generation  int
	Alive       int
	Recognition *patterns.Recognition
	Symmetrical int
	Stable      bool // the board repeats one of the previous PeriodWindow states
}

// Summary is the outcome of a whole run
type Summary struct {
	RunID       uuid.UUID
	Generations int
	Stable      bool
	Alive       int
	Figures     []patterns.Figure // catalog order
	Recognition *patterns.Recognition
	Symmetrical int
}

// Runner owns the board and every counter of a single simulation run
type Runner struct {
	id      uuid.UUID
	grid    *model.Grid
	catalog *patterns.Catalog
	pool    *model.GridPool
	window  int

	history    []*model.Grid // oldest first
	generation int
	last       StepResult
}

// Option configures a Runner
type Option func(*Runner)

// WithPool recycles history buffers through pool
func WithPool(pool *model.GridPool) Option {
	return func(r *Runner) { r.pool = pool }
}

// WithPeriodWindow sets how many previous generations are compared against the
// current board. 1 detects still lifes only, 2 also period-2 oscillators.
func WithPeriodWindow(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.window = n
		}
	}
}

// NewRunner starts a run on grid. The runner advances grid in place.
func NewRunner(grid *model.Grid, catalog *patterns.Catalog, opts ...Option) *Runner {
	r := &Runner{
		id:      uuid.New(),
		grid:    grid,
		catalog: catalog,
		window:  defaultPeriodWindow,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.pool == nil {
		r.pool = model.NewGridPool()
	}
	return r
}

// ID identifies the run in logs and reports
func (r *Runner) ID() uuid.UUID { return r.id }

// Grid returns the board being simulated
func (r *Runner) Grid() *model.Grid { return r.grid }

// Generation returns the number of completed steps
func (r *Runner) Generation() int { return r.generation }

// Step advances the board, then recognizes figures on the new state
func (r *Runner) Step() (StepResult, error) {
	r.remember()
	r.grid.Advance()
	r.generation++

	stable, err := r.repeats()
	if err != nil {
		return StepResult{}, errors.Wrapf(err, "[Step] generation %d", r.generation)
	}

	recognition := patterns.Recognize(r.grid, r.catalog)
	r.last = StepResult{
		Generation:  r.generation,
		Alive:       r.grid.CountAlive(),
		Recognition: recognition,
		Symmetrical: patterns.CountSymmetrical(recognition, r.catalog),
		Stable:      stable,
	}
	return r.last, nil
}

// Run steps until the board settles, maxGenerations is reached (0 means no
// limit), ctx is cancelled, or observe returns an error.
func (r *Runner) Run(ctx context.Context, maxGenerations int, observe func(StepResult) error) (Summary, error) {
	defer r.release()

	for maxGenerations <= 0 || r.generation < maxGenerations {
		if err := ctx.Err(); err != nil {
			return r.summary(), err
		}

		step, err := r.Step()
		if err != nil {
			return r.summary(), err
		}
		if observe != nil {
			if err = observe(step); err != nil {
				return r.summary(), err
			}
		}
		if step.Stable {
			break
		}
	}

	return r.summary(), nil
}

func (r *Runner) summary() Summary {
	s := Summary{
		RunID:       r.id,
		Generations: r.generation,
		Stable:      r.last.Stable,
		Alive:       r.grid.CountAlive(),
		Recognition: r.last.Recognition,
		Symmetrical: r.last.Symmetrical,
	}
	if s.Recognition == nil {
		s.Recognition = patterns.Recognize(r.grid, r.catalog)
		s.Symmetrical = patterns.CountSymmetrical(s.Recognition, r.catalog)
	}
	s.Figures = s.Recognition.Sorted(r.catalog)
	return s
}

// remember pushes a copy of the current board onto the bounded history
func (r *Runner) remember() {
	if len(r.history) == r.window {
		model.GridToPool(r.history[0], r.pool)
		r.history = append(r.history[:0], r.history[1:]...)
	}
	r.history = append(r.history, r.pool.CloneOf(r.grid))
}

func (r *Runner) repeats() (bool, error) {
	for _, prev := range r.history {
		same, err := r.grid.Equals(prev)
		if err != nil {
			return false, err
		}
		if same {
			return true, nil
		}
	}
	return false, nil
}

func (r *Runner) release() {
	for _, g := range r.history {
		model.GridToPool(g, r.pool)
	}
	r.history = nil
}

// Package coach runs a single workout: it times the day's intervals with an
// engine, routes the engine's notifications to the cue dispatcher, keeps the
// display awake and records the workout once it is complete.
package coach

import (
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ayoisaiah/stride/internal/cue"
	"github.com/ayoisaiah/stride/internal/models"
	"github.com/ayoisaiah/stride/internal/program"
	"github.com/ayoisaiah/stride/store"
)

// Options configures a Coach. Only Store is required.
type Options struct {
	Store     store.DB
	Player    cue.Player
	KeepAwake KeepAwake
	Clock     clockwork.Clock
	Logger    *slog.Logger
	// Delay is how long each cue waits before it is played.
	Delay time.Duration
	// CatchUp makes the engine reconcile its ticks against wall-clock time.
	CatchUp bool
}

// Coach starts workout sessions.
type Coach struct {
	opts Options
}

// New returns a Coach with defaults filled in for unset options.
func New(opts Options) *Coach {
	if opts.Player == nil {
		opts.Player = cue.Silent
	}

	if opts.KeepAwake == nil {
		opts.KeepAwake = NoKeepAwake{}
	}

	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Coach{opts: opts}
}

// Today returns the workout the user is due to run and their stored
// progress.
func (c *Coach) Today() (program.Workout, models.Progress, error) {
	p, err := c.opts.Store.Progress()
	if err != nil {
		return program.Workout{}, p, err
	}

	w, err := program.Get(p.CurrentWeek, p.CurrentDay)

	return w, p, err
}

// record appends the completed workout to the history and advances the
// stored position.
func (c *Coach) record(w models.CompletedWorkout) (models.Progress, error) {
	err := c.opts.Store.AppendWorkout(w)
	if err != nil {
		return models.Progress{}, err
	}

	p, err := c.opts.Store.Progress()
	if err != nil {
		return p, err
	}

	p = p.Complete(w.Position(), w.CompletedAt)

	return p, c.opts.Store.SaveProgress(p)
}

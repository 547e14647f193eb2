package coach

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ayoisaiah/stride/internal/cue"
	"github.com/ayoisaiah/stride/internal/engine"
	"github.com/ayoisaiah/stride/internal/models"
	"github.com/ayoisaiah/stride/internal/program"
)

// drainTimeout bounds how long Close waits for queued cues to finish.
const drainTimeout = 5 * time.Second

// Result describes a completed workout.
type Result struct {
	Workout  program.Workout
	Record   models.CompletedWorkout
	Progress models.Progress
	// Warning is set (to an ErrProgressNotSaved error) if the workout could
	// not be recorded.
	Warning error
}

// Session is one run through a workout.
type Session struct {
	coach    *Coach
	workout  program.Workout
	engine   *engine.Engine
	dispatch *cue.Dispatcher
	logger   *slog.Logger

	group  *errgroup.Group
	cancel context.CancelFunc

	done     chan Result
	finish   sync.Once
	released sync.Once
}

// Begin prepares a session for the workout at week and day. The cue worker
// starts immediately; timing starts with Start.
func (c *Coach) Begin(ctx context.Context, week, day int) (*Session, error) {
	w, err := program.Get(week, day)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)

	logger := c.opts.Logger.With("week", week, "day", day)

	s := &Session{
		coach:   c,
		workout: w,
		logger:  logger,
		group:   g,
		cancel:  cancel,
		done:    make(chan Result, 1),
		dispatch: cue.NewDispatcher(
			c.opts.Player,
			cue.WithDelay(c.opts.Delay),
			cue.WithLogger(logger),
		),
	}

	h := s.dispatch.Handlers()
	onComplete := h.OnComplete
	h.OnComplete = func() {
		elapsed := s.completedElapsed()

		onComplete()
		s.complete(elapsed)
	}

	s.engine = engine.New(
		w.Segments,
		h,
		engine.WithClock(c.opts.Clock),
		engine.WithCatchUp(c.opts.CatchUp),
		engine.WithLogger(logger),
	)

	g.Go(func() error {
		return s.dispatch.Run(gctx)
	})

	return s, nil
}

// Engine returns the engine timing the workout.
func (s *Session) Engine() *engine.Engine {
	return s.engine
}

// Workout returns the workout being run.
func (s *Session) Workout() program.Workout {
	return s.workout
}

// Done receives the Result once the workout is complete. It is closed
// without a value if the session is cancelled.
func (s *Session) Done() <-chan Result {
	return s.done
}

// Start keeps the display awake and starts timing. A keep-awake failure is
// logged and the workout goes ahead.
func (s *Session) Start() {
	err := s.coach.opts.KeepAwake.Acquire()
	if err != nil {
		s.logger.Warn("unable to keep display awake", "error", err)
	}

	s.logger.Info("workout started", "segments", s.workout.Segments.Len())

	s.engine.Start()
}

// Cancel abandons the workout. Nothing is recorded.
func (s *Session) Cancel() {
	s.engine.Stop()
	s.release()

	s.finish.Do(func() {
		s.logger.Info("workout cancelled", "elapsed", s.engine.Snapshot().Elapsed)
		close(s.done)
	})

	s.cancel()
}

// Close waits for queued cues to play and releases the session's
// resources. It returns once the cue worker has exited.
func (s *Session) Close() error {
	s.dispatch.Close()

	t := time.AfterFunc(drainTimeout, s.cancel)
	defer t.Stop()

	err := s.group.Wait()

	s.release()
	s.cancel()

	return err
}

func (s *Session) release() {
	s.released.Do(func() {
		err := s.coach.opts.KeepAwake.Release()
		if err != nil {
			s.logger.Warn("unable to release keep awake", "error", err)
		}
	})
}

// completedElapsed returns the engine time of a completed workout. A
// completed engine has credited every segment, so if a Stop has already
// reset it the full sequence length is used.
func (s *Session) completedElapsed() int {
	snap := s.engine.Snapshot()
	if snap.Status == engine.Completed {
		return snap.Elapsed
	}

	return s.workout.Segments.Total()
}

// complete runs once when the engine reports completion. elapsed is the
// engine time at completion.
func (s *Session) complete(elapsed int) {
	s.finish.Do(func() {
		s.release()

		rec := models.CompletedWorkout{
			Week:           s.workout.Week,
			Day:            s.workout.Day,
			CompletedAt:    s.coach.opts.Clock.Now(),
			ActualDuration: elapsed,
		}

		res := Result{
			Workout: s.workout,
			Record:  rec,
		}

		p, err := s.coach.record(rec)
		if err != nil {
			s.logger.Error("unable to record workout", "error", err)
			res.Warning = ErrProgressNotSaved.Wrap(err)
		}

		res.Progress = p

		s.logger.Info("workout complete", "duration", rec.ActualDuration)

		s.done <- res
		close(s.done)

		s.dispatch.Close()
	})
}

package cue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/stride/internal/engine"
	"github.com/ayoisaiah/stride/internal/program"
)

const (
	// DefaultDelay gives the display a moment to repaint before a cue is
	// heard.
	DefaultDelay = 150 * time.Millisecond

	queueSize = 16
)

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithDelay sets how long the dispatcher waits before playing each cue.
func WithDelay(d time.Duration) DispatcherOption {
	return func(disp *Dispatcher) {
		disp.delay = d
	}
}

// WithLogger sets the logger used to report playback failures.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(disp *Dispatcher) {
		disp.logger = l
	}
}

// Dispatcher queues cues and plays them one at a time.
type Dispatcher struct {
	player Player
	logger *slog.Logger
	queue  chan Cue
	delay  time.Duration

	mu     sync.Mutex
	closed bool
}

// NewDispatcher returns a dispatcher that plays cues through p.
func NewDispatcher(p Player, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		player: p,
		logger: slog.Default(),
		queue:  make(chan Cue, queueSize),
		delay:  DefaultDelay,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Handlers returns engine handlers that route every notification to the
// dispatcher.
func (d *Dispatcher) Handlers() engine.Handlers {
	return engine.Handlers{
		OnSegmentChange: func(seg program.Segment, _ int) {
			d.Dispatch(ForSegment(seg.Type))
		},
		OnCountdown: func(seconds int) {
			d.Dispatch(ForCountdown(seconds))
		},
		OnHalfway: func() {
			d.Dispatch(Halfway)
		},
		OnComplete: func() {
			d.Dispatch(Complete)
		},
	}
}

// Dispatch queues c for playback without blocking. The cue is dropped if the
// queue is full or the dispatcher has been closed.
func (d *Dispatcher) Dispatch(c Cue) {
	if c == None {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- c:
	default:
		d.logger.Warn("cue queue full, dropping cue", "cue", c.String())
	}
}

// Close stops accepting cues. Run plays whatever is already queued and then
// returns.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	d.closed = true
	close(d.queue)
}

// Run plays queued cues serially until ctx is done or the dispatcher is
// closed and drained. Playback errors are logged, not returned.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case c, ok := <-d.queue:
			if !ok {
				return nil
			}

			d.play(ctx, c)
		}
	}
}

func (d *Dispatcher) play(ctx context.Context, c Cue) {
	if d.delay > 0 {
		t := time.NewTimer(d.delay)

		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
	}

	start := time.Now()

	err := d.player.Play(ctx, c)
	if err != nil {
		d.logger.Error("unable to play cue", "cue", c.String(), "error", err)
		return
	}

	d.logger.Debug("played cue", "cue", c.String(), "took", time.Since(start))
}

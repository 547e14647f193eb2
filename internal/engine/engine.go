// Package engine times a workout: it counts down each segment of an interval
// sequence one second per tick, and notifies listeners when a segment
// begins, when 30 and 10 seconds remain, at the halfway point of long
// segments and when the workout is complete.
package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ayoisaiah/stride/internal/program"
)

// TickPeriod is the wall-clock length of one tick.
const TickPeriod = time.Second

const (
	// halfwayMinDuration is the shortest segment (in seconds) that gets a
	// halfway notification.
	halfwayMinDuration = 120

	// maxCatchUp bounds how many ticks a single late timer delivery may
	// apply when catch-up is enabled. Periods past it are dropped.
	maxCatchUp = 300
)

// countdownMarks are the remaining-second values that trigger a countdown
// notification.
var countdownMarks = [...]int{30, 10}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock that drives ticking. Tests pass a fake clock.
func WithClock(c clockwork.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithCatchUp makes the ticking loop apply one tick per whole period that
// has passed since it started and has not been applied yet, so a process
// that was suspended or throttled does not fall behind wall-clock time.
// Paused time is never counted.
func WithCatchUp(enabled bool) Option {
	return func(e *Engine) {
		e.catchUp = enabled
	}
}

// WithLogger sets the logger used to report handler failures.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// Engine is the workout timer state machine. All methods are safe for
// concurrent use and calls that are invalid in the current state are
// no-ops.
type Engine struct {
	seq      program.Sequence
	handlers Handlers
	clock    clockwork.Clock
	logger   *slog.Logger
	catchUp  bool

	mu       sync.Mutex
	state    State
	halfway  map[int]struct{}
	queue    []notification
	draining bool

	ticker clockwork.Ticker
	stopCh chan struct{}
	// loopID identifies the live ticking goroutine. A goroutine whose id no
	// longer matches must not touch the state.
	loopID uint64
}

// New creates an idle engine for seq.
func New(seq program.Sequence, h Handlers, opts ...Option) *Engine {
	e := &Engine{
		seq:      seq,
		handlers: h,
		clock:    clockwork.NewRealClock(),
		logger:   slog.Default(),
		halfway:  make(map[int]struct{}),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.state = e.initialState()

	return e
}

func (e *Engine) initialState() State {
	s := State{Status: Idle}

	if e.seq.Len() > 0 {
		s.Remaining = e.seq.At(0).Duration
	}

	return s
}

// Start begins timing from the first segment. The segment-change
// notification for segment 0 is delivered before Start returns. Starting an
// empty sequence completes it immediately.
func (e *Engine) Start() {
	e.mu.Lock()

	if e.state.Status != Idle {
		e.mu.Unlock()
		return
	}

	if e.seq.Len() == 0 {
		e.state.Status = Completed
		e.enqueueLocked(notification{kind: noteComplete})
		e.mu.Unlock()
		e.drain()

		return
	}

	e.state.Status = Running
	e.enqueueLocked(notification{
		kind:    noteSegmentChange,
		segment: e.seq.At(0),
		index:   0,
	})
	e.startLoopLocked()
	e.mu.Unlock()

	e.drain()
}

// Pause freezes the timer. No time passes until Resume.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Status != Running {
		return
	}

	e.state.Status = Paused
	e.haltLocked()
}

// Resume continues a paused timer from where it stopped.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Status != Paused {
		return
	}

	e.state.Status = Running
	e.startLoopLocked()
}

// Stop halts the timer and resets it to its initial idle state. Pending
// notifications are discarded and no tick that fires afterwards changes the
// state.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltLocked()
	e.queue = nil
	clear(e.halfway)
	e.state = e.initialState()
}

// SkipToNext ends the current segment early. The time left in it is counted
// as elapsed and the engine moves on exactly as if the segment had run out.
// Only valid while running.
func (e *Engine) SkipToNext() {
	e.mu.Lock()

	if e.state.Status != Running {
		e.mu.Unlock()
		return
	}

	e.state.Elapsed += e.state.Remaining
	e.state.Remaining = 0
	e.advanceLocked()
	e.mu.Unlock()

	e.drain()
}

// Tick advances a running engine by one second. The ticking goroutine calls
// it once per TickPeriod; it is exported so that callers can drive the
// engine by hand.
func (e *Engine) Tick() {
	e.mu.Lock()

	if e.state.Status != Running {
		e.mu.Unlock()
		return
	}

	e.tickLocked()
	e.mu.Unlock()

	e.drain()
}

// tickLocked runs one tick of the timing algorithm. Must be called with mu
// held while running.
func (e *Engine) tickLocked() {
	idx := e.state.Index
	seg := e.seq.At(idx)

	e.state.Remaining--
	e.state.Elapsed++

	for _, mark := range countdownMarks {
		if e.state.Remaining == mark {
			e.enqueueLocked(notification{kind: noteCountdown, seconds: mark})
		}
	}

	if seg.Duration >= halfwayMinDuration && e.state.Remaining == seg.Duration/2 {
		if _, fired := e.halfway[idx]; !fired {
			e.halfway[idx] = struct{}{}
			e.enqueueLocked(notification{kind: noteHalfway})
		}
	}

	if e.state.Remaining <= 0 {
		e.advanceLocked()
	}
}

// advanceLocked moves past the current segment once its time is used up.
func (e *Engine) advanceLocked() {
	next := e.state.Index + 1

	if next >= e.seq.Len() {
		e.state.Remaining = 0
		e.state.Status = Completed
		e.haltLocked()
		e.enqueueLocked(notification{kind: noteComplete})

		return
	}

	seg := e.seq.At(next)

	e.state.Index = next
	e.state.Remaining = seg.Duration
	e.enqueueLocked(notification{
		kind:    noteSegmentChange,
		segment: seg,
		index:   next,
	})
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Status returns the current lifecycle state.
func (e *Engine) Status() Status {
	return e.Snapshot().Status
}

// Sequence returns the sequence being timed.
func (e *Engine) Sequence() program.Sequence {
	return e.seq
}

// Current returns the segment being timed. ok is false for an empty
// sequence.
func (e *Engine) Current() (seg program.Segment, ok bool) {
	if e.seq.Len() == 0 {
		return program.Segment{}, false
	}

	return e.seq.At(e.Snapshot().Index), true
}

// TotalDuration is the length of the whole workout in seconds.
func (e *Engine) TotalDuration() int {
	return e.seq.Total()
}

// SegmentsRemaining is the number of segments after the current one.
func (e *Engine) SegmentsRemaining() int {
	if e.seq.Len() == 0 {
		return 0
	}

	return e.seq.Len() - e.Snapshot().Index - 1
}

// Progress is the fraction of the workout that has elapsed, from 0 to 1. An
// empty workout reports 0.
func (e *Engine) Progress() float64 {
	total := e.seq.Total()
	if total == 0 {
		return 0
	}

	return float64(e.Snapshot().Elapsed) / float64(total)
}

// SegmentProgress is the fraction of the current segment that has elapsed.
func (e *Engine) SegmentProgress() float64 {
	seg, ok := e.Current()
	if !ok || seg.Duration == 0 {
		return 0
	}

	return 1 - float64(e.Snapshot().Remaining)/float64(seg.Duration)
}

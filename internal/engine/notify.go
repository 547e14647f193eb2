package engine

import (
	"runtime/debug"

	"github.com/ayoisaiah/stride/internal/program"
)

// Handlers receives the engine's notifications. Any field may be nil.
//
// Handlers run on the goroutine that caused the transition (the caller of
// Start or SkipToNext, or the ticking goroutine), after the engine's state
// has been updated and its lock released, so they may call back into the
// engine.
type Handlers struct {
	OnSegmentChange func(seg program.Segment, index int)
	OnCountdown     func(seconds int)
	OnHalfway       func()
	OnComplete      func()
}

type noteKind int

const (
	noteSegmentChange noteKind = iota
	noteCountdown
	noteHalfway
	noteComplete
)

func (k noteKind) String() string {
	switch k {
	case noteSegmentChange:
		return "segment_change"
	case noteCountdown:
		return "countdown"
	case noteHalfway:
		return "halfway"
	case noteComplete:
		return "complete"
	}

	return "unknown"
}

type notification struct {
	kind    noteKind
	segment program.Segment
	index   int
	seconds int
}

// enqueueLocked appends notifications to the pending queue. Must be called
// with mu held.
func (e *Engine) enqueueLocked(notes ...notification) {
	e.queue = append(e.queue, notes...)
}

// drain delivers queued notifications in order. Only one goroutine drains at
// a time; notifications queued while another goroutine (or a handler further
// up the stack) is draining are delivered by that drainer.
func (e *Engine) drain() {
	e.mu.Lock()
	if e.draining {
		e.mu.Unlock()
		return
	}

	e.draining = true

	for len(e.queue) > 0 {
		n := e.queue[0]
		e.queue = e.queue[1:]

		e.mu.Unlock()
		e.deliver(n)
		e.mu.Lock()
	}

	e.draining = false
	e.mu.Unlock()
}

// deliver invokes the handler for n. A panicking handler is logged and
// otherwise ignored so that timing carries on.
func (e *Engine) deliver(n notification) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error(
				"notification handler panicked",
				"kind", n.kind.String(),
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	h := e.handlers

	switch n.kind {
	case noteSegmentChange:
		if h.OnSegmentChange != nil {
			h.OnSegmentChange(n.segment, n.index)
		}
	case noteCountdown:
		if h.OnCountdown != nil {
			h.OnCountdown(n.seconds)
		}
	case noteHalfway:
		if h.OnHalfway != nil {
			h.OnHalfway()
		}
	case noteComplete:
		if h.OnComplete != nil {
			h.OnComplete()
		}
	}
}

package engine

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// startLoopLocked launches the goroutine that ticks the engine. Must be
// called with mu held.
func (e *Engine) startLoopLocked() {
	e.loopID++

	e.stopCh = make(chan struct{})
	e.ticker = e.clock.NewTicker(TickPeriod)

	go e.loop(e.loopID, e.ticker, e.stopCh, e.clock.Now())
}

// haltLocked ends the ticking goroutine, if any. Must be called with mu
// held.
func (e *Engine) haltLocked() {
	e.loopID++

	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}

	if e.stopCh != nil {
		close(e.stopCh)
		e.stopCh = nil
	}
}

// loop ticks the engine on every ticker delivery. With catch-up enabled it
// instead applies however many whole periods have passed since start that
// it has not applied yet, so late or dropped deliveries are made up and
// duplicate ones are ignored.
func (e *Engine) loop(
	id uint64,
	ticker clockwork.Ticker,
	stop <-chan struct{},
	start time.Time,
) {
	var applied int

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			steps := 1
			if e.catchUp {
				steps, applied = catchUpSteps(start, e.clock.Now(), applied)
			}

			for range steps {
				if !e.step(id) {
					return
				}
			}
		}
	}
}

// step applies one tick on behalf of loop id. It reports false once the
// loop should exit.
func (e *Engine) step(id uint64) bool {
	e.mu.Lock()

	if id != e.loopID || e.state.Status != Running {
		e.mu.Unlock()
		return false
	}

	e.tickLocked()
	e.mu.Unlock()

	e.drain()

	return true
}

// catchUpSteps returns the number of ticks due at now for a loop started at
// start that has already applied some, and the new applied count. At most
// maxCatchUp ticks are returned; periods beyond the cap are dropped.
func catchUpSteps(start, now time.Time, applied int) (steps, due int) {
	due = int(now.Sub(start) / TickPeriod)
	if due <= applied {
		return 0, applied
	}

	return min(due-applied, maxCatchUp), due
}

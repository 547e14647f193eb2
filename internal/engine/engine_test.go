package engine_test

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/stride/internal/engine"
	"github.com/ayoisaiah/stride/internal/program"
)

// recorder collects notifications in the order they are delivered.
type recorder struct {
	mu         sync.Mutex
	changes    []program.Segment
	indices    []int
	countdowns []int
	halfways   int
	completes  int
}

func (r *recorder) handlers() engine.Handlers {
	return engine.Handlers{
		OnSegmentChange: func(seg program.Segment, index int) {
			r.mu.Lock()
			defer r.mu.Unlock()

			r.changes = append(r.changes, seg)
			r.indices = append(r.indices, index)
		},
		OnCountdown: func(seconds int) {
			r.mu.Lock()
			defer r.mu.Unlock()

			r.countdowns = append(r.countdowns, seconds)
		},
		OnHalfway: func() {
			r.mu.Lock()
			defer r.mu.Unlock()

			r.halfways++
		},
		OnComplete: func() {
			r.mu.Lock()
			defer r.mu.Unlock()

			r.completes++
		},
	}
}

func seq(segments ...program.Segment) program.Sequence {
	return program.NewSequence(segments...)
}

func ticks(e *engine.Engine, n int) {
	for range n {
		e.Tick()
	}
}

// newEngine returns an engine whose ticker never fires on its own, so the
// test drives every tick.
func newEngine(s program.Sequence, h engine.Handlers) *engine.Engine {
	return engine.New(s, h, engine.WithClock(frozenClock()))
}

func TestInitialState(t *testing.T) {
	e := newEngine(seq(
		program.Segment{Type: program.WarmUp, Duration: 300},
		program.Segment{Type: program.Run, Duration: 60},
	), engine.Handlers{})

	want := engine.State{Status: engine.Idle, Index: 0, Remaining: 300}

	assert.Equal(t, want, e.Snapshot())
	assert.Equal(t, 360, e.TotalDuration())
	assert.Equal(t, 1, e.SegmentsRemaining())
	assert.Zero(t, e.Progress())
	assert.Zero(t, e.SegmentProgress())
}

func TestEmptySequence(t *testing.T) {
	var r recorder

	e := newEngine(seq(), r.handlers())

	assert.Equal(t, engine.State{Status: engine.Idle}, e.Snapshot())
	assert.Zero(t, e.TotalDuration())
	assert.Zero(t, e.Progress())
	assert.Zero(t, e.SegmentProgress())
	assert.Zero(t, e.SegmentsRemaining())

	_, ok := e.Current()
	assert.False(t, ok)

	e.Start()

	assert.Equal(t, engine.Completed, e.Status())
	assert.Equal(t, 1, r.completes)
	assert.Empty(t, r.changes)

	e.Tick()
	e.SkipToNext()

	assert.Equal(t, 1, r.completes)
}

func TestStartFiresFirstSegmentSynchronously(t *testing.T) {
	var r recorder

	e := newEngine(seq(
		program.Segment{Type: program.WarmUp, Duration: 5},
		program.Segment{Type: program.Run, Duration: 5},
	), r.handlers())
	defer e.Stop()

	e.Start()

	require.Equal(t, []program.Segment{{Type: program.WarmUp, Duration: 5}}, r.changes)
	assert.Equal(t, []int{0}, r.indices)
	assert.Equal(t, engine.Running, e.Status())

	e.Start()

	assert.Len(t, r.changes, 1, "second Start must be a no-op")
}

func TestInvalidCallsAreNoOps(t *testing.T) {
	var r recorder

	e := newEngine(seq(program.Segment{Type: program.Run, Duration: 20}), r.handlers())
	initial := e.Snapshot()

	e.Pause()
	e.Resume()
	e.SkipToNext()
	e.Tick()

	assert.Equal(t, initial, e.Snapshot())
	assert.Empty(t, r.changes)
	assert.Zero(t, r.completes)
}

func TestPauseIsIdempotent(t *testing.T) {
	e := newEngine(seq(program.Segment{Type: program.Run, Duration: 90}), engine.Handlers{})
	defer e.Stop()

	e.Start()
	ticks(e, 12)

	e.Pause()
	once := e.Snapshot()

	e.Pause()
	twice := e.Snapshot()

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("second Pause changed state (-once +twice):\n%s", diff)
	}

	assert.Equal(t, engine.Paused, twice.Status)
}

func TestNoDriftAcrossPause(t *testing.T) {
	testCases := []struct {
		name string
		n, m int
	}{
		{"short", 3, 4},
		{"across a boundary", 8, 9},
		{"nothing after resume", 6, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(seq(
				program.Segment{Type: program.WarmUp, Duration: 10},
				program.Segment{Type: program.Run, Duration: 10},
			), engine.Handlers{})
			defer e.Stop()

			e.Start()
			ticks(e, tc.n)
			e.Pause()

			// Ticks delivered while paused must not count.
			ticks(e, 50)
			assert.Equal(t, tc.n, e.Snapshot().Elapsed)

			e.Resume()
			ticks(e, tc.m)

			assert.Equal(t, tc.n+tc.m, e.Snapshot().Elapsed)
		})
	}
}

func TestCountdownIsEdgeTriggered(t *testing.T) {
	var r recorder

	e := newEngine(seq(program.Segment{Type: program.Run, Duration: 35}), r.handlers())

	e.Start()
	ticks(e, 35)

	assert.Equal(t, []int{30, 10}, r.countdowns)
	assert.Equal(t, engine.Completed, e.Status())
}

func TestCountdownOrderWithinTick(t *testing.T) {
	var (
		mu    sync.Mutex
		order []string
	)

	log := func(s string) {
		mu.Lock()
		defer mu.Unlock()

		order = append(order, s)
	}

	e := newEngine(seq(program.Segment{Type: program.Run, Duration: 11}), engine.Handlers{
		OnCountdown: func(int) { log("countdown") },
		OnComplete:  func() { log("complete") },
	})

	e.Start()
	ticks(e, 11)

	assert.Equal(t, []string{"countdown", "complete"}, order)
}

func TestHalfway(t *testing.T) {
	testCases := []struct {
		name     string
		duration int
		want     int
		at       int // remaining seconds when the cue fires
	}{
		{"two minutes", 120, 1, 60},
		{"odd length floors", 121, 1, 60},
		{"one minute never fires", 60, 0, 0},
		{"just under the threshold", 119, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				r  recorder
				at int
				e  *engine.Engine
			)

			h := r.handlers()
			h.OnHalfway = func() {
				r.halfways++
				at = e.Snapshot().Remaining
			}

			e = newEngine(seq(program.Segment{Type: program.Run, Duration: tc.duration}), h)

			e.Start()
			ticks(e, tc.duration)

			assert.Equal(t, tc.want, r.halfways)
			assert.Equal(t, tc.at, at)
		})
	}
}

func TestHalfwayFiresAgainAfterStop(t *testing.T) {
	var r recorder

	e := newEngine(seq(program.Segment{Type: program.Run, Duration: 120}), r.handlers())

	e.Start()
	ticks(e, 70)
	e.Stop()

	e.Start()
	ticks(e, 70)
	e.Stop()

	assert.Equal(t, 2, r.halfways)
}

func TestSkipToNext(t *testing.T) {
	var r recorder

	e := newEngine(seq(
		program.Segment{Type: program.WarmUp, Duration: 30},
		program.Segment{Type: program.Run, Duration: 60},
	), r.handlers())

	e.Start()
	ticks(e, 7)

	before := e.Snapshot()
	e.SkipToNext()
	after := e.Snapshot()

	assert.Equal(t, before.Elapsed+before.Remaining, after.Elapsed)
	assert.Equal(t, 1, after.Index)
	assert.Equal(t, 60, after.Remaining)
	assert.Equal(t, []int{0, 1}, r.indices)

	ticks(e, 5)

	before = e.Snapshot()
	e.SkipToNext()
	after = e.Snapshot()

	assert.Equal(t, before.Elapsed+before.Remaining, after.Elapsed)
	assert.Equal(t, 90, after.Elapsed)
	assert.Equal(t, engine.Completed, after.Status)
	assert.Zero(t, after.Remaining)
	assert.Equal(t, 1, r.completes)
	assert.InDelta(t, 1.0, e.Progress(), 1e-9)
}

func TestSkipWhilePausedIsNoOp(t *testing.T) {
	e := newEngine(seq(
		program.Segment{Type: program.WarmUp, Duration: 30},
		program.Segment{Type: program.Run, Duration: 60},
	), engine.Handlers{})
	defer e.Stop()

	e.Start()
	ticks(e, 3)
	e.Pause()

	before := e.Snapshot()
	e.SkipToNext()

	assert.Equal(t, before, e.Snapshot())
}

func TestCompletion(t *testing.T) {
	var r recorder

	e := newEngine(seq(
		program.Segment{Type: program.WarmUp, Duration: 2},
		program.Segment{Type: program.Run, Duration: 2},
	), r.handlers())

	e.Start()
	ticks(e, 4)

	s := e.Snapshot()

	assert.Equal(t, engine.Completed, s.Status)
	assert.Zero(t, s.Remaining)
	assert.Equal(t, 1, r.completes)

	// Terminal until reset.
	ticks(e, 3)
	e.Resume()
	e.Start()

	assert.Equal(t, s, e.Snapshot())
	assert.Equal(t, 1, r.completes)
}

func TestFullShortWorkout(t *testing.T) {
	var r recorder

	e := newEngine(seq(
		program.Segment{Type: program.WarmUp, Duration: 5},
		program.Segment{Type: program.Run, Duration: 10},
		program.Segment{Type: program.Walk, Duration: 5},
		program.Segment{Type: program.CoolDown, Duration: 5},
	), r.handlers())

	e.Start()

	require.Equal(t, []program.Segment{{Type: program.WarmUp, Duration: 5}}, r.changes)

	ticks(e, 5)

	s := e.Snapshot()
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, 10, s.Remaining)
	assert.Equal(t, program.Segment{Type: program.Run, Duration: 10}, r.changes[1])
	assert.Equal(t, 2, e.SegmentsRemaining())
	assert.InDelta(t, 0.2, e.Progress(), 1e-9)

	ticks(e, 19)

	assert.InDelta(t, 24.0/25.0, e.Progress(), 1e-9)
	assert.InDelta(t, 0.8, e.SegmentProgress(), 1e-9)
	assert.Zero(t, r.completes)

	e.Tick()

	s = e.Snapshot()
	assert.Equal(t, 25, s.Elapsed)
	assert.Equal(t, engine.Completed, s.Status)
	assert.Equal(t, 1, r.completes)
	assert.InDelta(t, 1.0, e.Progress(), 1e-9)
	assert.Equal(t, []int{0, 1, 2, 3}, r.indices)
	// Every segment is entered at full length, so none crosses 30 or 10.
	assert.Empty(t, r.countdowns)
}

func TestStopResetsFully(t *testing.T) {
	s := seq(
		program.Segment{Type: program.WarmUp, Duration: 5},
		program.Segment{Type: program.Run, Duration: 10},
	)

	fresh := newEngine(s, engine.Handlers{}).Snapshot()

	e := newEngine(s, engine.Handlers{})

	e.Start()
	ticks(e, 7)
	e.Stop()

	if diff := cmp.Diff(fresh, e.Snapshot()); diff != "" {
		t.Fatalf("state after Stop differs from a fresh engine (-want +got):\n%s", diff)
	}

	// Ticks after Stop have no effect.
	ticks(e, 3)
	assert.Equal(t, fresh, e.Snapshot())
}

func TestPanickingHandlerDoesNotStopTiming(t *testing.T) {
	var completes int

	e := newEngine(seq(
		program.Segment{Type: program.WarmUp, Duration: 3},
		program.Segment{Type: program.Run, Duration: 3},
	), engine.Handlers{
		OnSegmentChange: func(program.Segment, int) {
			panic("speech failed")
		},
		OnComplete: func() { completes++ },
	})

	require.NotPanics(t, e.Start)
	require.NotPanics(t, func() { ticks(e, 6) })

	assert.Equal(t, engine.Completed, e.Status())
	assert.Equal(t, 6, e.Snapshot().Elapsed)
	assert.Equal(t, 1, completes)
}

func TestHandlersMayCallBackIntoEngine(t *testing.T) {
	var e *engine.Engine

	e = newEngine(seq(
		program.Segment{Type: program.WarmUp, Duration: 2},
		program.Segment{Type: program.Run, Duration: 40},
	), engine.Handlers{
		OnSegmentChange: func(_ program.Segment, index int) {
			if index == 1 {
				e.Pause()
			}
		},
		OnComplete: func() { e.Stop() },
	})

	e.Start()
	ticks(e, 2)

	assert.Equal(t, engine.Paused, e.Status())

	e.Resume()
	e.SkipToNext()

	assert.Equal(t, engine.Idle, e.Status(), "OnComplete stops the engine")
}

func TestInvariantsUnderRandomOperations(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1024))

	s := seq(
		program.Segment{Type: program.WarmUp, Duration: 15},
		program.Segment{Type: program.Run, Duration: 125},
		program.Segment{Type: program.Walk, Duration: 40},
		program.Segment{Type: program.CoolDown, Duration: 15},
	)

	var completes, halfways int

	e := newEngine(s, engine.Handlers{
		OnComplete: func() { completes++ },
		OnHalfway:  func() { halfways++ },
	})
	defer e.Stop()

	lastElapsed := 0

	for i := range 5000 {
		switch op := r.IntN(100); {
		case op < 80:
			e.Tick()
		case op < 85:
			e.Start()
		case op < 90:
			e.Pause()
		case op < 95:
			e.Resume()
		case op < 98:
			e.SkipToNext()
		default:
			e.Stop()
			lastElapsed = 0
			completes = 0
			halfways = 0
		}

		st := e.Snapshot()

		require.GreaterOrEqual(t, st.Remaining, 0, "step %d", i)
		require.GreaterOrEqual(t, st.Elapsed, lastElapsed, "step %d", i)
		require.LessOrEqual(t, st.Elapsed, s.Total(), "step %d", i)
		require.LessOrEqual(t, completes, 1, "step %d", i)
		require.LessOrEqual(t, halfways, 1, "step %d", i)

		if st.Status != engine.Completed {
			require.Less(t, st.Index, s.Len(), "step %d", i)
			require.LessOrEqual(t, st.Remaining, s.At(st.Index).Duration, "step %d", i)
		}

		lastElapsed = st.Elapsed
	}
}

func TestZeroLengthSegmentsDoNotCostTicks(t *testing.T) {
	var r recorder

	e := newEngine(seq(
		program.Segment{Type: program.Run, Duration: 0},
		program.Segment{Type: program.Walk, Duration: 2},
	), r.handlers())

	e.Start()
	ticks(e, 3)

	s := e.Snapshot()
	assert.Equal(t, engine.Completed, s.Status)
	assert.Equal(t, 2, s.Elapsed)
	assert.InDelta(t, 1.0, e.Progress(), 1e-9)
	assert.Equal(t, []program.Segment{{Type: program.Walk, Duration: 2}}, r.changes)
	assert.Equal(t, 1, r.completes)
}

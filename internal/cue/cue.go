// Package cue turns timer notifications into sound. A Dispatcher receives the
// engine's notifications, maps each to a Cue and plays it through one or more
// Players on its own goroutine so that audio never holds up the timer.
package cue

import "github.com/ayoisaiah/stride/internal/program"

// Cue is a semantic audio event.
type Cue int

const (
	None Cue = iota
	WarmUpStart
	RunStart
	WalkStart
	CoolDownStart
	Countdown30
	Countdown10
	Halfway
	Complete
)

// All lists every playable cue.
var All = []Cue{
	WarmUpStart,
	RunStart,
	WalkStart,
	CoolDownStart,
	Countdown30,
	Countdown10,
	Halfway,
	Complete,
}

var names = map[Cue]string{
	WarmUpStart:   "warmup_start",
	RunStart:      "run_start",
	WalkStart:     "walk_start",
	CoolDownStart: "cooldown_start",
	Countdown30:   "countdown_30",
	Countdown10:   "countdown_10",
	Halfway:       "halfway",
	Complete:      "complete",
}

// String returns the cue's config name, e.g. "run_start".
func (c Cue) String() string {
	if n, ok := names[c]; ok {
		return n
	}

	return "none"
}

// Parse returns the cue with the given config name.
func Parse(name string) (Cue, bool) {
	for c, n := range names {
		if n == name {
			return c, true
		}
	}

	return None, false
}

// ForSegment returns the cue announcing the start of a segment of type t.
func ForSegment(t program.SegmentType) Cue {
	switch t {
	case program.WarmUp:
		return WarmUpStart
	case program.Run:
		return RunStart
	case program.Walk:
		return WalkStart
	case program.CoolDown:
		return CoolDownStart
	}

	return None
}

// ForCountdown returns the cue for a countdown at the given number of
// seconds, or None for any other value.
func ForCountdown(seconds int) Cue {
	switch seconds {
	case 30:
		return Countdown30
	case 10:
		return Countdown10
	}

	return None
}

// Package timer draws the running workout in the terminal and forwards the
// user's key presses to the workout engine.
package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/stride/internal/coach"
	"github.com/ayoisaiah/stride/internal/engine"
	"github.com/ayoisaiah/stride/internal/program"
)

// refreshInterval is how often the display is redrawn.
const refreshInterval = 250 * time.Millisecond

// Session is the running workout the timer displays.
type Session interface {
	Engine() *engine.Engine
	Workout() program.Workout
	Done() <-chan coach.Result
	Start()
	Cancel()
}

// Options configures the timer display.
type Options struct {
	Style Style
	// StatusFile receives a JSON snapshot on every refresh. Empty disables
	// it.
	StatusFile string
}

// Timer is the bubbletea model for a running workout.
type Timer struct {
	session  Session
	Opts     Options
	result   *coach.Result
	help     help.Model
	segment  progress.Model
	overall  progress.Model
	quitting bool
}

type refreshMsg time.Time

// doneMsg is sent when the session finishes. ok is false if it was
// cancelled.
type doneMsg struct {
	result coach.Result
	ok     bool
}

// New returns a timer model for s.
func New(s Session, opts Options) *Timer {
	return &Timer{
		session: s,
		Opts:    opts,
		help:    help.New(),
		segment: progress.New(progress.WithDefaultGradient()),
		overall: progress.New(progress.WithSolidFill("#7D56F4")),
	}
}

func refresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func (t *Timer) waitForDone() tea.Cmd {
	done := t.session.Done()

	return func() tea.Msg {
		r, ok := <-done
		return doneMsg{result: r, ok: ok}
	}
}

func (t *Timer) Init() tea.Cmd {
	return tea.Batch(refresh(), t.waitForDone())
}

// Result returns the outcome of the workout, or nil if it did not finish.
func (t *Timer) Result() *coach.Result {
	return t.result
}

// Run starts the session and shows the timer until the workout completes
// or the user quits. A nil result means the workout was abandoned.
func Run(s Session, opts Options) (*coach.Result, error) {
	t := New(s, opts)

	s.Start()

	_, err := tea.NewProgram(t).Run()
	if err != nil {
		s.Cancel()
		return nil, err
	}

	if t.result == nil {
		s.Cancel()
	}

	t.removeStatusFile()

	return t.result, nil
}

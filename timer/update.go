package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/stride/internal/engine"
)

func (t *Timer) handleRefresh() (tea.Model, tea.Cmd) {
	if t.quitting {
		return t, nil
	}

	err := t.writeStatusFile()
	if err != nil {
		slog.Debug("unable to write status file", "error", err)
	}

	return t, refresh()
}

func (t *Timer) handleDone(msg doneMsg) (tea.Model, tea.Cmd) {
	if msg.ok {
		r := msg.result
		t.result = &r
	}

	t.quitting = true

	return t, tea.Quit
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := t.session.Engine()

	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		switch e.Status() {
		case engine.Running:
			e.Pause()
		case engine.Paused:
			e.Resume()
		}

	case key.Matches(msg, defaultKeymap.skip):
		e.SkipToNext()

	case key.Matches(msg, defaultKeymap.quit):
		t.quitting = true
		t.session.Cancel()

		return t, tea.Quit
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		return t.handleRefresh()

	case doneMsg:
		return t.handleDone(msg)

	case tea.KeyMsg:
		slog.Debug("key press", "msg", spew.Sdump(msg))

		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		width := min(msg.Width-padding*2-4, maxWidth)

		t.segment.Width = width
		t.overall.Width = width
		t.help.Width = width

		return t, nil
	}

	return t, nil
}

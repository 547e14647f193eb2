package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/stride/internal/engine"
	"github.com/ayoisaiah/stride/internal/program"
	"github.com/ayoisaiah/stride/internal/timeutil"
)

func (t *Timer) headerView(seg program.Segment, s engine.State) string {
	w := t.session.Workout()
	e := t.session.Engine()

	var b strings.Builder

	b.WriteString(t.Opts.Style.segment(seg.Type).Render(seg.Type.Label()))
	b.WriteString(" ")

	b.WriteString(t.Opts.Style.Hint.Render(fmt.Sprintf(
		"Week %d, Day %d · interval %d/%d",
		w.Week, w.Day, s.Index+1, e.Sequence().Len(),
	)))

	if s.Status == engine.Paused {
		b.WriteString(" ")
		b.WriteString(t.Opts.Style.Secondary.Render("[Paused]"))
	}

	return b.String()
}

func (t *Timer) nextView(s engine.State) string {
	seq := t.session.Engine().Sequence()

	next := s.Index + 1
	if next >= seq.Len() {
		return t.Opts.Style.Hint.Render("Last interval")
	}

	seg := seq.At(next)

	return t.Opts.Style.Hint.Render(fmt.Sprintf(
		"Next: %s %s",
		seg.Type.Label(),
		program.FormatDurationLong(seg.Duration),
	))
}

func (t *Timer) timerView() string {
	e := t.session.Engine()
	s := e.Snapshot()

	seg, ok := e.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	b.WriteString(t.headerView(seg, s))
	b.WriteString("\n\n")
	b.WriteString(t.Opts.Style.Main.Render(timeutil.Clock(s.Remaining)))
	b.WriteString("\n\n")
	b.WriteString(t.segment.ViewAs(e.SegmentProgress()))
	b.WriteString("\n")
	b.WriteString(t.overall.ViewAs(e.Progress()))
	b.WriteString("\n")
	b.WriteString(t.Opts.Style.Hint.Render(fmt.Sprintf(
		"%s elapsed · %s total",
		timeutil.Clock(s.Elapsed),
		timeutil.Clock(e.TotalDuration()),
	)))
	b.WriteString("\n\n")
	b.WriteString(t.nextView(s))
	b.WriteString("\n\n")
	b.WriteString(t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.skip,
		defaultKeymap.quit,
	}))

	return b.String()
}

func (t *Timer) View() string {
	if t.quitting {
		return ""
	}

	return t.Opts.Style.Base.Render(t.timerView())
}

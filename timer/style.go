package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/stride/internal/program"
)

const (
	padding  = 2
	maxWidth = 80
)

// Style holds the lipgloss styles used by the timer view.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Segments  map[program.SegmentType]lipgloss.Style
}

// NewStyle builds the timer styles from segment colours keyed by segment
// type name.
func NewStyle(colors map[string]string, darkTheme bool) Style {
	main := lipgloss.Color("#FFFFFF")
	secondary := lipgloss.Color("#A0A0A0")

	if !darkTheme {
		main = lipgloss.Color("#000000")
		secondary = lipgloss.Color("#505050")
	}

	s := Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Hint:      lipgloss.NewStyle().Faint(true),
		Segments:  make(map[program.SegmentType]lipgloss.Style),
	}

	for name, color := range colors {
		t, ok := program.ParseSegmentType(name)
		if !ok {
			continue
		}

		s.Segments[t] = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(lipgloss.Color(color)).
			Foreground(lipgloss.Color("#000000"))
	}

	return s
}

func (s Style) segment(t program.SegmentType) lipgloss.Style {
	if st, ok := s.Segments[t]; ok {
		return st
	}

	return s.Main
}

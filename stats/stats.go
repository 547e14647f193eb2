// Package stats reports stride workout statistics
package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/stride/internal/models"
	"github.com/ayoisaiah/stride/internal/program"
	"github.com/ayoisaiah/stride/internal/timeutil"
	"github.com/ayoisaiah/stride/internal/ui"
)

const barChartChar = "▇"

// Stats summarises the completed workouts of a reporting period.
type Stats struct {
	Position program.Position `json:"position"`
	// Weekly counts completed workouts per program week.
	Weekly map[int]int `json:"weekly"`
	// Weekdays counts completed workouts per day of the week.
	Weekdays     map[time.Weekday]int `json:"weekdays"`
	Workouts     int                  `json:"workouts"`
	Distinct     int                  `json:"distinct"`
	TotalSeconds int                  `json:"total_seconds"`
	// LongestStreak is the most consecutive calendar days with a workout.
	LongestStreak int `json:"longest_streak"`
}

// Compute derives the statistics for history. pos is the user's current
// position in the program.
func Compute(history []models.CompletedWorkout, pos program.Position) *Stats {
	s := &Stats{
		Position: pos,
		Weekly:   make(map[int]int, program.Weeks),
		Weekdays: make(map[time.Weekday]int),
	}

	for week := 1; week <= program.Weeks; week++ {
		s.Weekly[week] = 0
	}

	seen := make(map[program.Position]bool)
	days := make(map[time.Time]bool)

	for i := range history {
		w := history[i]

		s.Workouts++
		s.TotalSeconds += w.ActualDuration
		s.Weekly[w.Week]++

		local := w.CompletedAt.Local()
		s.Weekdays[local.Weekday()]++
		days[timeutil.RoundToStart(local)] = true

		seen[w.Position()] = true
	}

	s.Distinct = len(seen)
	s.LongestStreak = longestStreak(days)

	return s
}

func longestStreak(days map[time.Time]bool) int {
	sorted := make([]time.Time, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	var longest, current int

	for i, d := range sorted {
		if i > 0 && timeutil.RoundToStart(sorted[i-1].AddDate(0, 0, 1)).Equal(d) {
			current++
		} else {
			current = 1
		}

		longest = max(longest, current)
	}

	return longest
}

// Average returns the mean workout length in seconds.
func (s *Stats) Average() int {
	if s.Workouts == 0 {
		return 0
	}

	return timeutil.Round(float64(s.TotalSeconds) / float64(s.Workouts))
}

func (s *Stats) summary() string {
	var b strings.Builder

	b.WriteString(ui.Cyan("Summary") + "\n")
	fmt.Fprintln(&b, "Workouts completed:", ui.Green(s.Workouts))
	fmt.Fprintln(&b, "Program workouts done:", ui.Green(fmt.Sprintf(
		"%d/%d", s.Distinct, program.Weeks*program.DaysPerWeek,
	)))
	fmt.Fprintln(&b, "Time on feet:", ui.Green(timeutil.Clock(s.TotalSeconds)))
	fmt.Fprintln(&b, "Average workout:", ui.Green(timeutil.Clock(s.Average())))
	fmt.Fprintln(&b, "Longest streak:", ui.Green(fmt.Sprintf("%d days", s.LongestStreak)))

	camp := program.CampFor(s.Position.Week)
	fmt.Fprintln(&b, "Next workout:", ui.Green(fmt.Sprintf(
		"%s (%s, %dm)", s.Position, camp.Name, camp.Elevation,
	)))

	return b.String()
}

// barChart renders bars under header. Nothing is drawn when every bar is
// empty.
func barChart(header string, bars pterm.Bars) string {
	var total int
	for _, b := range bars {
		total += b.Value
	}

	if total == 0 {
		return ""
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return "\n" + ui.Cyan(header) + "\n" + chart
}

func (s *Stats) weeklyChart() string {
	bars := make(pterm.Bars, 0, program.Weeks)

	for week := 1; week <= program.Weeks; week++ {
		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("Week %d", week),
			Value: s.Weekly[week],
		})
	}

	return barChart("Workouts per program week", bars)
}

func (s *Stats) weekdayChart() string {
	bars := make(pterm.Bars, 0, 7)

	for d := time.Sunday; d <= time.Saturday; d++ {
		bars = append(bars, pterm.Bar{
			Label: d.String(),
			Value: s.Weekdays[d],
		})
	}

	return barChart("Workouts per weekday", bars)
}

// Render writes the statistics report to w.
func (s *Stats) Render(w io.Writer) error {
	_, err := fmt.Fprint(w, s.summary()+s.weeklyChart()+s.weekdayChart())

	return err
}

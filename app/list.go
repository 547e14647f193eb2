package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/ayoisaiah/stride/internal/models"
	"github.com/ayoisaiah/stride/internal/program"
	"github.com/ayoisaiah/stride/internal/timeutil"
	"github.com/ayoisaiah/stride/internal/ui"
)

const (
	noWorkoutsMsg = "No workouts found for the specified time range"
	dateLayout    = "Jan 02, 2006 03:04 PM"
)

// mainSet returns the segments between the warm up and the cool down.
func mainSet(w program.Workout) []program.Segment {
	segs := w.Segments.Segments()

	out := make([]program.Segment, 0, len(segs))

	for _, s := range segs {
		if s.Type == program.WarmUp || s.Type == program.CoolDown {
			continue
		}

		out = append(out, s)
	}

	return out
}

// period returns the length of the shortest block that segs is made of.
func period(segs []program.Segment) int {
	n := len(segs)

outer:
	for p := 1; p < n; p++ {
		if n%p != 0 {
			continue
		}

		for i := p; i < n; i++ {
			if segs[i] != segs[i-p] {
				continue outer
			}
		}

		return p
	}

	return n
}

// describe summarises the main set of a workout, e.g.
// "Run 1 min, Walk 1m 30s ×8".
func describe(w program.Workout) string {
	segs := mainSet(w)
	if len(segs) == 0 {
		return ""
	}

	p := period(segs)

	parts := make([]string, p)
	for i, s := range segs[:p] {
		parts[i] = s.Type.Label() + " " + program.FormatDurationLong(s.Duration)
	}

	text := strings.Join(parts, ", ")

	if reps := len(segs) / p; reps > 1 {
		text += fmt.Sprintf(" ×%d", reps)
	}

	return text
}

// printScheduleTable prints every workout in the program. completed reports
// whether a workout is in the history; current is the user's position.
func printScheduleTable(
	w io.Writer,
	workouts []program.Workout,
	completed map[program.Position]bool,
	current program.Position,
) {
	tableBody := make([][]string, 0, len(workouts)+1)

	tableBody = append(tableBody, []string{
		"WEEK", "DAY", "CAMP", "WORKOUT", "DURATION", "STATUS",
	})

	for _, wo := range workouts {
		pos := wo.Position()

		var status string

		switch {
		case pos == current:
			status = ui.Yellow("next")
		case completed[pos]:
			status = ui.Green("done")
		}

		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", wo.Week),
			fmt.Sprintf("%d", wo.Day),
			program.CampFor(wo.Week).Name,
			describe(wo),
			program.FormatDurationLong(wo.TotalDuration),
			status,
		})
	}

	ui.PrintTable(tableBody, w)
}

// printHistoryTable prints a table of completed workouts.
func printHistoryTable(w io.Writer, workouts []models.CompletedWorkout) {
	tableBody := make([][]string, len(workouts))

	for i := range workouts {
		wo := workouts[i]

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			wo.CompletedAt.Local().Format(dateLayout),
			fmt.Sprintf("%d", wo.Week),
			fmt.Sprintf("%d", wo.Day),
			timeutil.Clock(wo.ActualDuration),
		}
	}

	tableBody = append([][]string{
		{"#", "COMPLETED", "WEEK", "DAY", "DURATION"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// printWorkout prints the intervals of a single workout.
func printWorkout(w io.Writer, wo program.Workout) {
	camp := program.CampFor(wo.Week)

	fmt.Fprintf(w, "%s · %s (%dm)\n", wo.Position(), camp.Name, camp.Elevation)
	fmt.Fprintf(w, "%s\n\n", camp.Message)

	tableBody := [][]string{{"#", "INTERVAL", "DURATION", "STARTS AT"}}

	var offset int

	for i, s := range wo.Segments.Segments() {
		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", i+1),
			ui.Segment(string(s.Type), s.Type.Label()),
			program.FormatDurationLong(s.Duration),
			timeutil.Clock(offset),
		})

		offset += s.Duration
	}

	ui.PrintTable(tableBody, w)

	fmt.Fprintf(w, "Total: %s\n", program.FormatDurationLong(wo.TotalDuration))
}

// Package report prints user-facing messages to the terminal.
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/stride/internal/coach"
	"github.com/ayoisaiah/stride/internal/program"
	"github.com/ayoisaiah/stride/internal/timeutil"
)

func Error(err error) {
	pterm.Error.Println(err)
}

func Warn(err error) {
	pterm.Warning.Println(err)
}

func Info(msg string) {
	pterm.Info.Println(msg)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}

// Abandoned is printed when the user quits a workout before the end.
func Abandoned(w program.Workout) {
	pterm.Info.Printfln(
		"%s abandoned. Nothing was recorded.",
		w.Position(),
	)
}

// Completed prints the outcome of a finished workout. A warning on the
// result is shown in place of the next workout since the stored position
// may be stale.
func Completed(r *coach.Result) {
	pterm.Success.Printfln(
		"%s complete in %s",
		r.Workout.Position(),
		timeutil.Clock(r.Record.ActualDuration),
	)

	if r.Warning != nil {
		Warn(r.Warning)
		return
	}

	pos := r.Progress.Position()

	if !r.Workout.Position().Before(pos) {
		pterm.Success.Println("You have finished the program. Well done!")
		return
	}

	camp := program.CampFor(pos.Week)

	if pos.Week != r.Workout.Week && camp.Milestone != "" {
		pterm.Info.Printfln("Next stop: %s (%s)", camp.Name, camp.Milestone)
	}

	pterm.Info.Printfln("Up next: %s", pos)
}

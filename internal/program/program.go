package program

import (
	"fmt"

	"github.com/ayoisaiah/stride/internal/apperr"
)

const (
	// Weeks is the length of the program.
	Weeks = 9
	// DaysPerWeek is the number of workouts in each week.
	DaysPerWeek = 3

	warmUpDuration   = 300
	coolDownDuration = 300
)

var ErrWorkoutNotFound = &apperr.Error{
	Message: "no workout for week %d day %d: weeks run from 1 to 9 and days from 1 to 3",
}

// Workout is a single day of the program.
type Workout struct {
	Week          int      `json:"week"`
	Day           int      `json:"day"`
	Segments      Sequence `json:"segments"`
	TotalDuration int      `json:"total_duration"`
}

// Position returns the week and day of the workout.
func (w Workout) Position() Position {
	return Position{Week: w.Week, Day: w.Day}
}

func run(seconds int) Segment {
	return Segment{Type: Run, Duration: seconds}
}

func walk(seconds int) Segment {
	return Segment{Type: Walk, Duration: seconds}
}

func repeat(times int, segments ...Segment) []Segment {
	out := make([]Segment, 0, len(segments)*times)

	for range times {
		out = append(out, segments...)
	}

	return out
}

func newWorkout(week, day int, body []Segment) Workout {
	segments := make([]Segment, 0, len(body)+2)
	segments = append(segments, Segment{Type: WarmUp, Duration: warmUpDuration})
	segments = append(segments, body...)
	segments = append(segments, Segment{Type: CoolDown, Duration: coolDownDuration})

	seq := NewSequence(segments...)

	return Workout{
		Week:          week,
		Day:           day,
		Segments:      seq,
		TotalDuration: seq.Total(),
	}
}

var (
	week1 = repeat(8, run(60), walk(90))
	week2 = repeat(6, run(90), walk(120))
	week3 = repeat(2, run(90), walk(90), run(180), walk(180))
	week4 = []Segment{
		run(180), walk(90), run(300), walk(150), run(180), walk(90), run(300),
	}
	week5 = [DaysPerWeek][]Segment{
		{run(300), walk(180), run(300), walk(180), run(300)},
		{run(480), walk(300), run(480)},
		{run(1200)},
	}
	week6 = [DaysPerWeek][]Segment{
		{run(300), walk(180), run(480), walk(180), run(300)},
		{run(600), walk(180), run(600)},
		{run(1500)},
	}
	week7 = []Segment{run(1500)}
	week8 = []Segment{run(1680)}
	week9 = []Segment{run(1800)}
)

var schedule = buildSchedule()

func buildSchedule() []Workout {
	same := func(body []Segment) [DaysPerWeek][]Segment {
		return [DaysPerWeek][]Segment{body, body, body}
	}

	weeks := [Weeks][DaysPerWeek][]Segment{
		same(week1),
		same(week2),
		same(week3),
		same(week4),
		week5,
		week6,
		same(week7),
		same(week8),
		same(week9),
	}

	workouts := make([]Workout, 0, Weeks*DaysPerWeek)

	for w, days := range weeks {
		for d, body := range days {
			workouts = append(workouts, newWorkout(w+1, d+1, body))
		}
	}

	return workouts
}

// All returns every workout of the program in order.
func All() []Workout {
	out := make([]Workout, len(schedule))
	copy(out, schedule)

	return out
}

// Index returns the zero-based position of the workout in the program, or -1
// if week and day are out of range.
func Index(week, day int) int {
	p := Position{Week: week, Day: day}
	if !p.Valid() {
		return -1
	}

	return (week-1)*DaysPerWeek + (day - 1)
}

// Get looks up the workout for a week and day.
func Get(week, day int) (Workout, error) {
	i := Index(week, day)
	if i < 0 {
		return Workout{}, ErrWorkoutNotFound.Fmt(week, day)
	}

	return schedule[i], nil
}

// FormatDuration formats seconds as m:ss.
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatDurationLong formats seconds as "5 min", "1m 30s" or "45s".
func FormatDurationLong(seconds int) string {
	mins, secs := seconds/60, seconds%60

	switch {
	case mins == 0:
		return fmt.Sprintf("%ds", secs)
	case secs == 0:
		return fmt.Sprintf("%d min", mins)
	default:
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
}

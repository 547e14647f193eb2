// Package models holds the records stride persists.
package models

import (
	"time"

	"github.com/ayoisaiah/stride/internal/program"
)

// CompletedWorkout is appended to the history log each time a workout is
// timed to the end.
type CompletedWorkout struct {
	CompletedAt time.Time `json:"completedAt"`
	Week        int       `json:"week"`
	Day         int       `json:"day"`
	// ActualDuration is the engine time in seconds, including any skipped
	// segment time.
	ActualDuration int `json:"actualDurationSeconds"`
}

// Position returns the program position of the workout.
func (w CompletedWorkout) Position() program.Position {
	return program.Position{Week: w.Week, Day: w.Day}
}

// Progress is the user's place in the program.
type Progress struct {
	// StartDate is set when the first workout is completed.
	StartDate   *time.Time `json:"startDate,omitempty"`
	CurrentWeek int        `json:"currentWeek"`
	CurrentDay  int        `json:"currentDay"`
}

// NewProgress returns the progress of a user who has not run yet.
func NewProgress() Progress {
	return Progress{
		CurrentWeek: program.Start.Week,
		CurrentDay:  program.Start.Day,
	}
}

// Position returns the workout the user is due to run next.
func (p Progress) Position() program.Position {
	return program.Position{Week: p.CurrentWeek, Day: p.CurrentDay}
}

// Complete records that the workout at pos was completed at t. The
// position moves to the workout after pos unless the user is already further
// along, so repeating an earlier workout never sends them back.
func (p Progress) Complete(pos program.Position, t time.Time) Progress {
	next := pos.Next()

	if p.Position().Before(next) {
		p.CurrentWeek = next.Week
		p.CurrentDay = next.Day
	}

	if p.StartDate == nil {
		start := t
		p.StartDate = &start
	}

	return p
}

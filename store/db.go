package store

import (
	"time"

	"github.com/ayoisaiah/stride/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// Progress returns the stored program position. A fresh database reports
	// week 1 day 1.
	Progress() (models.Progress, error)
	// SaveProgress overwrites the stored program position.
	SaveProgress(p models.Progress) error
	// AppendWorkout adds a completed workout to the history log.
	AppendWorkout(w models.CompletedWorkout) error
	// ImportHistory adds several completed workouts at once. Records already
	// present are overwritten.
	ImportHistory(workouts []models.CompletedWorkout) error
	// History returns the completed workouts between since and until
	// (inclusive) in chronological order. A zero since or until leaves that
	// side unbounded.
	History(since, until time.Time) ([]models.CompletedWorkout, error)
	// DeleteHistory removes the given workouts from the log
	DeleteHistory(workouts []models.CompletedWorkout) error
	// IsCompleted reports whether the log holds a completion of the workout
	IsCompleted(week, day int) (bool, error)
	// Reset clears the history log and moves the position back to the start
	Reset() error
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}

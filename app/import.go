package app

import (
	"encoding/json"

	"github.com/ayoisaiah/stride/internal/models"
	"github.com/ayoisaiah/stride/store"
)

// importHistory adds the JSON encoded workouts in b to the history and
// moves the stored position past the latest of them. It returns the number
// of workouts imported.
func importHistory(db store.DB, b []byte) (int, error) {
	var workouts []models.CompletedWorkout

	err := json.Unmarshal(b, &workouts)
	if err != nil {
		return 0, errInvalidImport.Wrap(err)
	}

	for i := range workouts {
		w := workouts[i]

		if !w.Position().Valid() {
			return 0, errInvalidImportRecord.Fmt(i+1, w.Week, w.Day)
		}

		if w.CompletedAt.IsZero() {
			return 0, errMissingCompletedAt.Fmt(i + 1)
		}
	}

	if len(workouts) == 0 {
		return 0, nil
	}

	err = db.ImportHistory(workouts)
	if err != nil {
		return 0, err
	}

	p, err := db.Progress()
	if err != nil {
		return 0, err
	}

	for i := range workouts {
		p = p.Complete(workouts[i].Position(), workouts[i].CompletedAt)
	}

	return len(workouts), db.SaveProgress(p)
}

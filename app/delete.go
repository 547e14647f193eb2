package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/stride/internal/models"
	"github.com/ayoisaiah/stride/store"
)

// confirm prints warning and waits for the user to press ENTER. Any other
// input cancels.
func confirm(w io.Writer, r io.Reader, warning string) bool {
	fmt.Fprint(w, pterm.Warning.Sprint(warning+". Press ENTER to proceed"))

	reader := bufio.NewReader(r)

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	return len(line) <= 1 || line == "\r\n"
}

// delWorkouts deletes the given workouts from the history. It asks for
// confirmation unless skipConfirm is set.
func delWorkouts(
	w io.Writer,
	r io.Reader,
	db store.DB,
	workouts []models.CompletedWorkout,
	skipConfirm bool,
) error {
	if len(workouts) == 0 {
		return nil
	}

	printHistoryTable(w, workouts)

	if !skipConfirm && !confirm(
		w, r, "The above workouts will be deleted permanently",
	) {
		return nil
	}

	return db.DeleteHistory(workouts)
}

// resetStore erases all progress and history after confirmation.
func resetStore(w io.Writer, r io.Reader, db store.DB, skipConfirm bool) error {
	if !skipConfirm && !confirm(
		w, r, "All progress and workout history will be erased",
	) {
		return nil
	}

	return db.Reset()
}

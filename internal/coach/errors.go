package coach

import "github.com/ayoisaiah/stride/internal/apperr"

var (
	// ErrProgressNotSaved is set on a Result when the workout finished but
	// could not be recorded.
	ErrProgressNotSaved = &apperr.Error{
		Message: "workout complete, but progress may not be saved",
	}

	errInvalidKeepAwakeCmd = &apperr.Error{
		Message: "unable to parse keep_awake_cmd %q",
	}
)

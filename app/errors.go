package app

import "github.com/ayoisaiah/stride/internal/apperr"

var (
	errInvalidDate = &apperr.Error{
		Message: "unable to parse date %q",
	}
	errImportFileRequired = &apperr.Error{
		Message: "import needs the path to a JSON file of completed workouts",
	}
	errInvalidImport = &apperr.Error{
		Message: "import file is not a list of completed workouts",
	}
	errInvalidImportRecord = &apperr.Error{
		Message: "record %d: no workout for week %d day %d",
	}
	errMissingCompletedAt = &apperr.Error{
		Message: "record %d: completedAt is required",
	}
	errEmptyEditor = &apperr.Error{
		Message: "no editor command: set VISUAL or EDITOR",
	}
)

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/stride/internal/program"
)

func TestCompletedWorkoutJSON(t *testing.T) {
	w := CompletedWorkout{
		Week:           2,
		Day:            3,
		CompletedAt:    time.Date(2026, 5, 4, 6, 30, 0, 0, time.UTC),
		ActualDuration: 1980,
	}

	b, err := json.Marshal(w)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"week": 2,
		"day": 3,
		"completedAt": "2026-05-04T06:30:00Z",
		"actualDurationSeconds": 1980
	}`, string(b))
}

func TestProgressComplete(t *testing.T) {
	first := time.Date(2026, 5, 1, 7, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	p := NewProgress().Complete(program.Position{Week: 1, Day: 1}, first)

	assert.Equal(t, 1, p.CurrentWeek)
	assert.Equal(t, 2, p.CurrentDay)
	require.NotNil(t, p.StartDate)
	assert.Equal(t, first, *p.StartDate)

	p = p.Complete(program.Position{Week: 1, Day: 2}, later).
		Complete(program.Position{Week: 1, Day: 3}, later)

	assert.Equal(t, program.Position{Week: 2, Day: 1}, p.Position())
	assert.Equal(t, first, *p.StartDate, "start date is kept")

	// Repeating an earlier workout does not move the position back.
	p = p.Complete(program.Position{Week: 1, Day: 1}, later)
	assert.Equal(t, program.Position{Week: 2, Day: 1}, p.Position())

	// Running ahead moves it forward.
	p = p.Complete(program.Position{Week: 4, Day: 2}, later)
	assert.Equal(t, program.Position{Week: 4, Day: 3}, p.Position())

	final := Progress{CurrentWeek: 9, CurrentDay: 3}.Complete(program.Final, later)
	assert.Equal(t, program.Final, final.Position())
}

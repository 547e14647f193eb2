package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/stride/internal/config"
	"github.com/ayoisaiah/stride/internal/cue"
	"github.com/ayoisaiah/stride/internal/models"
	"github.com/ayoisaiah/stride/internal/program"
	"github.com/ayoisaiah/stride/store"
)

func newStore(t *testing.T) *store.Client {
	t.Helper()

	db, err := store.NewClient(filepath.Join(t.TempDir(), "stride.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func mustWorkout(t *testing.T, week, day int) program.Workout {
	t.Helper()

	w, err := program.Get(week, day)
	require.NoError(t, err)

	return w
}

func TestDescribe(t *testing.T) {
	testCases := []struct {
		week, day int
		expected  string
	}{
		{1, 1, "Run 1 min, Walk 1m 30s ×8"},
		{2, 3, "Run 1m 30s, Walk 2 min ×6"},
		{3, 1, "Run 1m 30s, Walk 1m 30s, Run 3 min, Walk 3 min ×2"},
		{5, 2, "Run 8 min, Walk 5 min, Run 8 min"},
		{9, 3, "Run 30 min"},
	}

	for _, tc := range testCases {
		t.Run(program.Position{Week: tc.week, Day: tc.day}.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, describe(mustWorkout(t, tc.week, tc.day)))
		})
	}
}

func TestScheduleTable(t *testing.T) {
	var buf bytes.Buffer

	completed := map[program.Position]bool{
		{Week: 1, Day: 1}: true,
	}

	printScheduleTable(
		&buf,
		program.All(),
		completed,
		program.Position{Week: 1, Day: 2},
	)

	out := buf.String()
	assert.Contains(t, out, "Kathmandu")
	assert.Contains(t, out, "Kala Patthar")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "next")
	assert.Contains(t, out, "Run 30 min")
}

func TestPrintWorkout(t *testing.T) {
	var buf bytes.Buffer

	printWorkout(&buf, mustWorkout(t, 7, 1))

	out := buf.String()
	assert.Contains(t, out, "Week 7, Day 1")
	assert.Contains(t, out, "Gorak Shep")
	assert.Contains(t, out, "Cool Down")
	// run starts after the five minute warm up and lasts 25 minutes
	assert.Contains(t, out, "05:00")
	assert.Contains(t, out, "30:00")
	assert.Contains(t, out, "Total: 35 min")
}

func TestHistoryTable(t *testing.T) {
	var buf bytes.Buffer

	printHistoryTable(&buf, []models.CompletedWorkout{
		{Week: 2, Day: 3, ActualDuration: 1830, CompletedAt: time.Now()},
	})

	out := buf.String()
	assert.Contains(t, out, "COMPLETED")
	assert.Contains(t, out, "30:30")
}

func TestDelWorkouts(t *testing.T) {
	at := time.Date(2026, 2, 1, 7, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		input     string
		skip      bool
		remaining int
	}{
		{"confirmed with enter", "\n", false, 0},
		{"cancelled", "no\n", false, 1},
		{"no input", "", false, 1},
		{"skip confirmation", "", true, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newStore(t)

			w := models.CompletedWorkout{Week: 1, Day: 1, CompletedAt: at}
			require.NoError(t, db.AppendWorkout(w))

			var out bytes.Buffer

			err := delWorkouts(
				&out,
				strings.NewReader(tc.input),
				db,
				[]models.CompletedWorkout{w},
				tc.skip,
			)
			require.NoError(t, err)

			history, err := db.History(time.Time{}, time.Time{})
			require.NoError(t, err)
			assert.Len(t, history, tc.remaining)
		})
	}
}

func TestResetStore(t *testing.T) {
	db := newStore(t)

	require.NoError(t, db.SaveProgress(models.Progress{CurrentWeek: 4, CurrentDay: 2}))

	var out bytes.Buffer

	require.NoError(t, resetStore(&out, strings.NewReader("\n"), db, false))

	p, err := db.Progress()
	require.NoError(t, err)
	assert.Equal(t, models.NewProgress(), p)
}

func TestImportHistory(t *testing.T) {
	db := newStore(t)

	input := `[
		{"completedAt": "2026-01-05T07:00:00Z", "week": 1, "day": 1, "actualDurationSeconds": 1800},
		{"completedAt": "2026-01-07T07:00:00Z", "week": 1, "day": 2, "actualDurationSeconds": 1810}
	]`

	n, err := importHistory(db, []byte(input))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	history, err := db.History(time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 1810, history[1].ActualDuration)

	p, err := db.Progress()
	require.NoError(t, err)
	assert.Equal(t, program.Position{Week: 1, Day: 3}, p.Position())
	require.NotNil(t, p.StartDate)
	assert.True(t, p.StartDate.Equal(time.Date(2026, 1, 5, 7, 0, 0, 0, time.UTC)))
}

func TestImportHistoryRejectsBadInput(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected error
	}{
		{"not json", "week 1", errInvalidImport},
		{"bad week", `[{"completedAt": "2026-01-05T07:00:00Z", "week": 10, "day": 1}]`, errInvalidImportRecord},
		{"no date", `[{"week": 1, "day": 1}]`, errMissingCompletedAt},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newStore(t)

			_, err := importHistory(db, []byte(tc.input))
			require.ErrorIs(t, err, tc.expected)

			history, err := db.History(time.Time{}, time.Time{})
			require.NoError(t, err)
			assert.Empty(t, history)
		})
	}
}

func TestListSounds(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"bell10.ogg", "bell2.mp3", "notes.txt", "Bell1.wav"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	require.NoError(t, os.Mkdir(filepath.Join(dir, "more.ogg"), 0o755))

	names, err := listSounds(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bell1.wav", "bell2.mp3", "bell10.ogg"}, names)

	names, err = listSounds(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestEditorCmd(t *testing.T) {
	cmd, err := editorCmd("nonexistent-editor --wait -n", "/tmp/config.yml")
	require.NoError(t, err)
	assert.Equal(t, []string{"nonexistent-editor", "--wait", "-n", "/tmp/config.yml"}, cmd.Args)

	_, err = editorCmd("  ", "/tmp/config.yml")
	require.ErrorIs(t, err, errEmptyEditor)
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Empty(t, firstNonEmptyString("", ""))
}

func TestNewPlayer(t *testing.T) {
	cfg := &config.Config{}
	cfg.Audio.Tones = true
	cfg.Voice.Enabled = true
	cfg.Voice.Cmd = "espeak -s 150"
	cfg.Notifications.Enabled = true

	p, err := newPlayer(cfg)
	require.NoError(t, err)

	players, ok := p.(cue.Players)
	require.True(t, ok)
	assert.Len(t, players, 3)

	cfg.Voice.Cmd = `espeak "unterminated`

	_, err = newPlayer(cfg)
	require.Error(t, err)
}

func TestNewPlayerMuted(t *testing.T) {
	p, err := newPlayer(&config.Config{})
	require.NoError(t, err)
	assert.IsType(t, cue.PlayerFunc(nil), p)
}

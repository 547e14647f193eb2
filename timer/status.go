package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/stride/internal/osutil"
	"github.com/ayoisaiah/stride/internal/program"
	"github.com/ayoisaiah/stride/internal/timeutil"
	"github.com/ayoisaiah/stride/internal/ui"
)

// Status is a snapshot of a running workout, written to the status file so
// that other processes can report on it.
type Status struct {
	UpdatedAt time.Time           `json:"updated_at"`
	Segment   program.SegmentType `json:"segment"`
	State     string              `json:"state"`
	Week      int                 `json:"week"`
	Day       int                 `json:"day"`
	Index     int                 `json:"index"`
	Segments  int                 `json:"segments"`
	Remaining int                 `json:"remaining"`
	Elapsed   int                 `json:"elapsed"`
	Total     int                 `json:"total"`
}

func (t *Timer) status() Status {
	e := t.session.Engine()
	s := e.Snapshot()
	w := t.session.Workout()

	seg, _ := e.Current()

	return Status{
		UpdatedAt: time.Now(),
		Segment:   seg.Type,
		State:     s.Status.String(),
		Week:      w.Week,
		Day:       w.Day,
		Index:     s.Index,
		Segments:  e.Sequence().Len(),
		Remaining: s.Remaining,
		Elapsed:   s.Elapsed,
		Total:     e.TotalDuration(),
	}
}

func (t *Timer) writeStatusFile() error {
	if t.Opts.StatusFile == "" {
		return nil
	}

	b, err := json.Marshal(t.status())
	if err != nil {
		return err
	}

	return os.WriteFile(t.Opts.StatusFile, b, osutil.FilePermission)
}

func (t *Timer) removeStatusFile() {
	if t.Opts.StatusFile == "" {
		return
	}

	_ = os.Remove(t.Opts.StatusFile)
}

// ReportStatus prints the state of the workout running in another stride
// process. It prints nothing if no workout is running.
func ReportStatus(w io.Writer, dbFilePath, statusFilePath string) error {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(dbFilePath, fileMode, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	// This means stride is not running, so no status to report
	if err == nil {
		return db.Close()
	}

	if !errors.Is(err, bolt.ErrDatabaseOpen) &&
		!errors.Is(err, bolt.ErrTimeout) {
		return err
	}

	fileBytes, err := os.ReadFile(statusFilePath)
	if err != nil {
		// missing file should not return an error
		return nil
	}

	var s Status

	err = json.Unmarshal(fileBytes, &s)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, formatStatus(s))

	return err
}

func formatStatus(s Status) string {
	label := ui.Segment(string(s.Segment), fmt.Sprintf(
		"[%s %d/%d]", s.Segment.Label(), s.Index+1, s.Segments,
	))

	text := fmt.Sprintf(
		"%s: %s (week %d, day %d)",
		label, timeutil.Clock(s.Remaining), s.Week, s.Day,
	)

	if s.State == "paused" {
		text += " [paused]"
	}

	return text
}

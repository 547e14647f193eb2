// Package store connects to the data store and manages the program position
// and the history of completed workouts.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/stride/internal/models"
	"github.com/ayoisaiah/stride/internal/timeutil"
)

const (
	progressBucket = "progress"
	historyBucket  = "history"
)

var positionKey = []byte("position")

var errStrideRunning = errors.New(
	"is stride already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	path string
}

func (c *Client) Progress() (models.Progress, error) {
	p := models.NewProgress()

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(progressBucket)).Get(positionKey)
		if len(v) == 0 {
			return nil
		}

		return json.Unmarshal(v, &p)
	})

	return p, err
}

func (c *Client) SaveProgress(p models.Progress) error {
	value, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(progressBucket)).Put(positionKey, value)
	})
}

func (c *Client) AppendWorkout(w models.CompletedWorkout) error {
	return c.ImportHistory([]models.CompletedWorkout{w})
}

func (c *Client) ImportHistory(workouts []models.CompletedWorkout) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(historyBucket))

		for i := range workouts {
			w := workouts[i]

			value, err := json.Marshal(w)
			if err != nil {
				return err
			}

			err = b.Put(timeutil.ToKey(w.CompletedAt), value)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) History(
	since, until time.Time,
) ([]models.CompletedWorkout, error) {
	var b [][]byte

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(historyBucket)).Cursor()

		var k, v []byte
		if since.IsZero() {
			k, v = cur.First()
		} else {
			k, v = cur.Seek(timeutil.ToKey(since))
		}

		var max []byte
		if !until.IsZero() {
			max = timeutil.ToKey(until)
		}

		for ; k != nil; k, v = cur.Next() {
			if max != nil && bytes.Compare(k, max) > 0 {
				break
			}

			b = append(b, v)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	workouts := make([]models.CompletedWorkout, 0, len(b))

	for _, v := range b {
		var w models.CompletedWorkout

		err = json.Unmarshal(v, &w)
		if err != nil {
			return nil, err
		}

		workouts = append(workouts, w)
	}

	return workouts, nil
}

func (c *Client) DeleteHistory(workouts []models.CompletedWorkout) error {
	return c.Update(func(tx *bolt.Tx) error {
		for i := range workouts {
			err := tx.Bucket([]byte(historyBucket)).
				Delete(timeutil.ToKey(workouts[i].CompletedAt))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) IsCompleted(week, day int) (bool, error) {
	var found bool

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(historyBucket)).ForEach(func(_, v []byte) error {
			var w models.CompletedWorkout

			err := json.Unmarshal(v, &w)
			if err != nil {
				return err
			}

			if w.Week == week && w.Day == day {
				found = true
			}

			return nil
		})
	})

	return found, err
}

func (c *Client) Reset() error {
	return c.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{progressBucket, historyBucket} {
			err := tx.DeleteBucket([]byte(name))
			if err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
				return err
			}
		}

		return createBuckets(tx)
	})
}

func (c *Client) Open() error {
	db, err := openDB(c.path)
	if err != nil {
		return err
	}

	c.DB = db

	return nil
}

func (c *Client) Close() error {
	if c.DB == nil {
		return nil
	}

	err := c.DB.Close()
	c.DB = nil

	return err
}

func createBuckets(tx *bolt.Tx) error {
	for _, name := range []string{progressBucket, historyBucket} {
		_, err := tx.CreateBucketIfNotExists([]byte(name))
		if err != nil {
			return err
		}
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errStrideRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	c := &Client{
		DB:   db,
		path: dbPath,
	}

	// Create the necessary buckets for storing data if they do not exist
	// already
	err = db.Update(func(tx *bolt.Tx) error {
		err = createBuckets(tx)
		if err != nil {
			return err
		}

		return c.migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}

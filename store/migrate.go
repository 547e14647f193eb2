package store

import (
	"bytes"
	"encoding/json"

	"go.etcd.io/bbolt"

	"github.com/ayoisaiah/stride/internal/models"
	"github.com/ayoisaiah/stride/internal/timeutil"
)

// migrateHistoryKeys re-keys history records whose key does not match their
// completion time in the current key layout. Range scans depend on it.
func migrateHistoryKeys(tx *bbolt.Tx) error {
	bucket := tx.Bucket([]byte(historyBucket))

	type rekey struct {
		old, new, value []byte
	}

	var pending []rekey

	err := bucket.ForEach(func(k, v []byte) error {
		var w models.CompletedWorkout

		err := json.Unmarshal(v, &w)
		if err != nil {
			return err
		}

		newKey := timeutil.ToKey(w.CompletedAt)
		if !bytes.Equal(k, newKey) {
			pending = append(pending, rekey{
				old:   bytes.Clone(k),
				new:   newKey,
				value: bytes.Clone(v),
			})
		}

		return nil
	})
	if err != nil {
		return err
	}

	for _, r := range pending {
		err = bucket.Delete(r.old)
		if err != nil {
			return err
		}

		err = bucket.Put(r.new, r.value)
		if err != nil {
			return err
		}
	}

	return nil
}

// migrateProgress drops a stored position that no longer points into the
// program so the user starts again from week 1 instead of failing on every
// run.
func migrateProgress(tx *bbolt.Tx) error {
	bucket := tx.Bucket([]byte(progressBucket))

	v := bucket.Get(positionKey)
	if len(v) == 0 {
		return nil
	}

	var p models.Progress

	err := json.Unmarshal(v, &p)
	if err == nil && p.Position().Valid() {
		return nil
	}

	return bucket.Delete(positionKey)
}

func (c *Client) migrate(tx *bbolt.Tx) error {
	err := migrateHistoryKeys(tx)
	if err != nil {
		return err
	}

	return migrateProgress(tx)
}

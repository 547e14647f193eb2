package app

import (
	"errors"
	"io/fs"
	"os"
	"sort"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/stride/internal/cue"
)

// listSounds returns the names of the playable files in dir in natural
// order. A missing directory has no sounds.
func listSounds(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() || !cue.IsSoundFile(e.Name()) {
			continue
		}

		names = append(names, e.Name())
	}

	sort.Sort(natural.StringSlice(names))

	return names, nil
}

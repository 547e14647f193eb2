package config

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/ayoisaiah/stride/internal/cue"
	"github.com/ayoisaiah/stride/internal/pathutil"
	"github.com/ayoisaiah/stride/internal/program"
)

var (
	maxCueDelay = 2 * time.Second

	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateAudio(); err != nil {
		return err
	}

	if err := c.validateDisplay(); err != nil {
		return err
	}

	if c.Voice.Enabled && c.Voice.Cmd == "" {
		return errEmptyVoiceCmd
	}

	if c.Settings.CueDelay < 0 || c.Settings.CueDelay > maxCueDelay {
		return errInvalidCueDelay.Fmt(maxCueDelay, c.Settings.CueDelay)
	}

	return c.validateCLI()
}

func (c *Config) validateAudio() error {
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return errInvalidVolume.Fmt(c.Audio.Volume)
	}

	for name, file := range c.Audio.Sounds {
		if _, ok := cue.Parse(name); !ok {
			return errUnknownCue.Fmt(name)
		}

		if file == "" {
			continue
		}

		if err := validateSound(name, file); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateDisplay() error {
	for segment, color := range c.Display.Colors {
		if _, ok := program.ParseSegmentType(segment); !ok {
			return errUnknownSegment.Fmt(segment)
		}

		if !hexColorRegex.MatchString(color) {
			return errInvalidColor.Fmt(segment, color)
		}
	}

	return nil
}

func (c *Config) validateCLI() error {
	if c.CLI.Week == 0 && c.CLI.Day == 0 {
		return nil
	}

	pos := program.Position{Week: c.CLI.Week, Day: c.CLI.Day}
	if !pos.Valid() {
		return errInvalidWorkout.Fmt(program.Weeks, program.DaysPerWeek)
	}

	return nil
}

// validateSound checks that a configured sound file can be decoded and
// exists.
func validateSound(name, file string) error {
	if !cue.IsSoundFile(file) {
		return errInvalidSoundFormat.Fmt(file)
	}

	_, err := os.Stat(SoundPath(file))
	if errors.Is(err, os.ErrNotExist) {
		return errUnknownSound.Fmt(name, file)
	}

	return err
}

// SoundPath resolves a configured sound file. Relative paths are looked up
// in the sounds directory.
func SoundPath(file string) string {
	if filepath.IsAbs(file) {
		return file
	}

	return filepath.Join(pathutil.SoundDir(), file)
}

// CueSounds returns the configured sound file for each cue, with paths
// resolved.
func (c *Config) CueSounds() map[cue.Cue]string {
	sounds := make(map[cue.Cue]string, len(c.Audio.Sounds))

	for name, file := range c.Audio.Sounds {
		k, ok := cue.Parse(name)
		if !ok || file == "" {
			continue
		}

		sounds[k] = SoundPath(file)
	}

	return sounds
}

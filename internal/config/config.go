// Package config loads stride's settings from the YAML config file, the
// first-run prompt and command-line flags, in that order of precedence from
// lowest to highest.
package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Audio         AudioConfig        `mapstructure:"audio"`
		Voice         VoiceConfig        `mapstructure:"voice"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		CLI           CLIConfig          `mapstructure:"-"`

		// prompted is set when the first-run prompt supplied values that
		// must be written to the new config file.
		prompted bool
	}

	// AudioConfig holds tone and sound file settings
	AudioConfig struct {
		// Sounds maps cue names (run_start, halfway, ...) to sound files.
		// Relative paths are resolved against the sounds directory.
		Sounds map[string]string `mapstructure:"sounds"`
		Volume float64           `mapstructure:"volume"`
		Tones  bool              `mapstructure:"tones"`
	}

	// VoiceConfig holds spoken coaching settings
	VoiceConfig struct {
		Cmd     string `mapstructure:"cmd"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// NotificationConfig holds desktop notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		// Colors maps segment types to hex colours.
		Colors    map[string]string `mapstructure:"colors"`
		DarkTheme bool              `mapstructure:"dark_theme"`
	}

	// SettingsConfig holds general settings
	SettingsConfig struct {
		KeepAwakeCmd string        `mapstructure:"keep_awake_cmd"`
		CueDelay     time.Duration `mapstructure:"cue_delay"`
		CatchUp      bool          `mapstructure:"catch_up"`
	}

	// CLIConfig holds values that only come from command-line flags
	CLIConfig struct {
		// Week and Day select a workout other than the current one. Zero
		// means the current one.
		Week int
		Day  int
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies opts in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}

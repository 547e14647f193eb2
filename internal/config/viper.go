package config

import (
	"errors"
	"io/fs"
	"os"
	"runtime"
	"time"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/stride/internal/cue"
	"github.com/ayoisaiah/stride/internal/osutil"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyTones                = "audio.tones"
	keyVolume               = "audio.volume"
	keySounds               = "audio.sounds"
	keyVoiceEnabled         = "voice.enabled"
	keyVoiceCmd             = "voice.cmd"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyColors               = "display.colors"
	keyKeepAwakeCmd         = "settings.keep_awake_cmd"
	keyCatchUp              = "settings.catch_up"
	keyCueDelay             = "settings.cue_delay"
)

// DefaultColors are the segment colours used when the config file sets none.
var DefaultColors = map[string]string{
	"warmup":   "#C492B1",
	"run":      "#B0DB43",
	"walk":     "#12EAEA",
	"cooldown": "#C492B1",
}

// DefaultVoiceCmd returns the text-to-speech command for the current OS.
func DefaultVoiceCmd() string {
	switch runtime.GOOS {
	case osutil.Darwin:
		return "say"
	case osutil.Windows:
		return ""
	}

	return "espeak"
}

// DefaultKeepAwakeCmd returns the idle inhibitor for the current OS.
func DefaultKeepAwakeCmd() string {
	switch runtime.GOOS {
	case osutil.Darwin:
		return "caffeinate -d"
	case osutil.Windows:
		return ""
	}

	return "systemd-inhibit --what=idle --who=stride --why=workout sleep infinity"
}

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing a default file first if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		err = os.Chmod(configPath, osutil.FilePermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyTones, true)
	v.SetDefault(keyVolume, 1.0)
	v.SetDefault(keyVoiceEnabled, false)
	v.SetDefault(keyVoiceCmd, DefaultVoiceCmd())
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyKeepAwakeCmd, DefaultKeepAwakeCmd())
	v.SetDefault(keyCatchUp, false)
	v.SetDefault(keyCueDelay, cue.DefaultDelay.String())

	for segment, color := range DefaultColors {
		v.SetDefault(keyColors+"."+segment, color)
	}

	for _, name := range cue.All {
		v.SetDefault(keySounds+"."+name.String(), "")
	}

	if c.prompted {
		v.Set(keyTones, c.Audio.Tones)
		v.Set(keyVoiceEnabled, c.Voice.Enabled)
		v.Set(keyVoiceCmd, c.Voice.Cmd)
		v.Set(keyNotificationsEnabled, c.Notifications.Enabled)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	err := v.Unmarshal(c)
	if err != nil {
		return errReadConfig.Wrap(err)
	}

	// Unmarshal leaves an explicit empty map in the file as nil.
	if c.Display.Colors == nil {
		c.Display.Colors = make(map[string]string)
	}

	for segment, color := range DefaultColors {
		if c.Display.Colors[segment] == "" {
			c.Display.Colors[segment] = color
		}
	}

	return nil
}

// parseDuration accepts a duration string, or a bare number of
// milliseconds.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	ms, err := time.ParseDuration(s + "ms")
	if err != nil {
		return 0, errInvalidCueDelay.Fmt(maxCueDelay, s)
	}

	return ms, nil
}

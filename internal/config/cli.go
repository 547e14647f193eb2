package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Voice    string
	CueDelay string
	Week     int
	Day      int
	Mute     bool
	NoVoice  bool
	NoNotify bool
	CatchUp  bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Voice:    ctx.String("voice"),
			CueDelay: ctx.String("cue-delay"),
			Week:     ctx.Int("week"),
			Day:      ctx.Int("day"),
			Mute:     ctx.Bool("mute"),
			NoVoice:  ctx.Bool("no-voice"),
			NoNotify: ctx.Bool("no-notify"),
			CatchUp:  ctx.Bool("catch-up"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	c.CLI.Week = opts.Week
	c.CLI.Day = opts.Day

	if opts.Voice != "" {
		c.Voice.Enabled = true
		c.Voice.Cmd = opts.Voice
	}

	if opts.NoVoice {
		c.Voice.Enabled = false
	}

	if opts.Mute {
		c.Audio.Tones = false
		c.Audio.Sounds = nil
		c.Voice.Enabled = false
	}

	if opts.NoNotify {
		c.Notifications.Enabled = false
	}

	if opts.CatchUp {
		c.Settings.CatchUp = true
	}

	if opts.CueDelay != "" {
		d, err := parseDuration(opts.CueDelay)
		if err != nil {
			return err
		}

		c.Settings.CueDelay = d
	}

	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
███████╗████████╗██████╗ ██╗██████╗ ███████╗
██╔════╝╚══██╔══╝██╔══██╗██║██╔══██╗██╔════╝
███████╗   ██║   ██████╔╝██║██║  ██║█████╗
╚════██║   ██║   ██╔══██╗██║██║  ██║██╔══╝
███████║   ██║   ██║  ██║██║██████╔╝███████╗
╚══════╝   ╚═╝   ╚═╝  ╚═╝╚═╝╚═════╝ ╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	VoiceCmd      string
	Tones         bool
	Voice         bool
	Notifications bool
}

// WithPromptConfig returns an Option that asks the user for their audio
// preferences when no config file exists yet. It must come before
// WithViperConfig so the answers are written to the new file.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Tones:         true,
		Notifications: true,
		VoiceCmd:      DefaultVoiceCmd(),
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure stride for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'stride edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Play a tone when each interval starts?").
				Value(&opts.Tones),
			huh.NewConfirm().
				Title("Show desktop notifications?").
				Value(&opts.Notifications),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Speak coaching cues aloud?").
				Description("Requires a text-to-speech program such as espeak or say").
				Value(&opts.Voice),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Text-to-speech command").
				Description("The phrase is passed as the last argument").
				Value(&opts.VoiceCmd),
		).WithHideFunc(func() bool {
			return !opts.Voice
		}),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Audio.Tones = opts.Tones
	c.Notifications.Enabled = opts.Notifications
	c.Voice.Enabled = opts.Voice
	c.Voice.Cmd = opts.VoiceCmd
	c.prompted = true
}

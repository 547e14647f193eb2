package app

import "github.com/urfave/cli/v2"

var (
	weekFlag = &cli.IntFlag{
		Name:    "week",
		Aliases: []string{"w"},
		Usage:   "Run the workout for this week (1-9) instead of the current one",
	}

	dayFlag = &cli.IntFlag{
		Name:    "day",
		Aliases: []string{"d"},
		Usage:   "Run the workout for this day (1-3) instead of the current one",
	}

	voiceFlag = &cli.StringFlag{
		Name:  "voice",
		Usage: "Speak coaching cues with this command (e.g. 'espeak -s 150'). The phrase is passed as the last argument",
	}

	noVoiceFlag = &cli.BoolFlag{
		Name:  "no-voice",
		Usage: "Disable spoken cues",
	}

	muteFlag = &cli.BoolFlag{
		Name:    "mute",
		Aliases: []string{"m"},
		Usage:   "Disable all tones, sounds and spoken cues",
	}

	noNotifyFlag = &cli.BoolFlag{
		Name:  "no-notify",
		Usage: "Disable desktop notifications",
	}

	catchUpFlag = &cli.BoolFlag{
		Name:  "catch-up",
		Usage: "Count ticks missed while the computer was asleep",
	}

	cueDelayFlag = &cli.StringFlag{
		Name:  "cue-delay",
		Usage: "Wait this long before each cue is played (e.g. 150ms)",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	sinceFlag = &cli.StringFlag{
		Name:    "since",
		Aliases: []string{"s"},
		Usage:   "Only include workouts completed on or after this date (e.g. '2 weeks ago', '2025-01-31')",
	}

	untilFlag = &cli.StringFlag{
		Name:    "until",
		Aliases: []string{"u"},
		Usage:   "Only include workouts completed on or before this date",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}
)

var runFlags = []cli.Flag{
	weekFlag,
	dayFlag,
	voiceFlag,
	noVoiceFlag,
	muteFlag,
	noNotifyFlag,
	catchUpFlag,
	cueDelayFlag,
}

var rangeFlags = []cli.Flag{
	sinceFlag,
	untilFlag,
}

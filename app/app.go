package app

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/stride/internal/config"
	"github.com/ayoisaiah/stride/internal/pathutil"
)

const (
	envNoColor       = "NO_COLOR"
	envStrideNoColor = "STRIDE_NO_COLOR"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the stride app instance.
func Get() *cli.App {
	var logFile *lumberjack.Logger

	strideApp := &cli.App{
		Name: "stride",
		Usage: `
		Stride is a Couch to 5K coach for the command-line. It times each
		workout of the nine week program, calls out every interval with tones,
		voice and notifications, and keeps track of the workouts you finish.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "today",
				Usage:  "Show the workout you are due to run",
				Action: todayAction,
			},
			{
				Name:   "schedule",
				Usage:  "List every workout in the program",
				Flags:  []cli.Flag{jsonFlag},
				Action: scheduleAction,
			},
			{
				Name:   "history",
				Usage:  "List completed workouts",
				Flags:  append([]cli.Flag{jsonFlag}, rangeFlags...),
				Action: historyAction,
			},
			{
				Name:   "stats",
				Usage:  "Summarise completed workouts",
				Flags:  append([]cli.Flag{jsonFlag}, rangeFlags...),
				Action: statsAction,
			},
			{
				Name:   "delete",
				Usage:  "Delete completed workouts from the history",
				Flags:  append([]cli.Flag{yesFlag}, rangeFlags...),
				Action: deleteAction,
			},
			{
				Name:      "import",
				Usage:     "Add completed workouts from a JSON file to the history",
				ArgsUsage: "<file>",
				Action:    importAction,
			},
			{
				Name:   "reset",
				Usage:  "Erase all progress and history",
				Flags:  []cli.Flag{yesFlag},
				Action: resetAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running workout",
				Action: statusAction,
			},
			{
				Name:   "sounds",
				Usage:  "List the sound files available for cues",
				Action: soundsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags:  append(runFlags, noColorFlag),
		Action: runAction,
		Before: func(ctx *cli.Context) error {
			err := beforeAction(ctx)
			if err != nil {
				return err
			}

			logFile = setupLogging()

			return nil
		},
		After: func(ctx *cli.Context) error {
			if logFile == nil {
				return nil
			}

			return logFile.Close()
		},
	}

	return strideApp
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/stride/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if STRIDE_NO_COLOR is set
	if _, exists := os.LookupEnv(envStrideNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return pathutil.Initialize()
}

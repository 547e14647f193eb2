package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/stride/internal/coach"
	"github.com/ayoisaiah/stride/internal/config"
	"github.com/ayoisaiah/stride/internal/cue"
	"github.com/ayoisaiah/stride/internal/models"
	"github.com/ayoisaiah/stride/internal/pathutil"
	"github.com/ayoisaiah/stride/internal/program"
	"github.com/ayoisaiah/stride/internal/timeutil"
	"github.com/ayoisaiah/stride/internal/ui"
	"github.com/ayoisaiah/stride/report"
	"github.com/ayoisaiah/stride/stats"
	"github.com/ayoisaiah/stride/store"
	"github.com/ayoisaiah/stride/timer"
)

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	path := pathutil.ConfigFilePath()

	return config.New(
		config.WithPromptConfig(path),
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)
}

// newPlayer combines the cue players enabled in cfg.
func newPlayer(cfg *config.Config) (cue.Player, error) {
	var players cue.Players

	sounds := cfg.CueSounds()

	if cfg.Audio.Tones || len(sounds) > 0 {
		players = append(players, &cue.ToneSynth{
			Sounds: sounds,
			Volume: cfg.Audio.Volume,
			Tones:  cfg.Audio.Tones,
		})
	}

	if cfg.Voice.Enabled {
		v, err := cue.NewVoice(cfg.Voice.Cmd)
		if err != nil {
			return nil, err
		}

		players = append(players, v)
	}

	if cfg.Notifications.Enabled {
		players = append(players, cue.NewNotifier(""))
	}

	if len(players) == 0 {
		return cue.Silent, nil
	}

	return players, nil
}

// dateRange reads the --since and --until flags. Unset bounds are zero.
func dateRange(ctx *cli.Context) (since, until time.Time, err error) {
	if s := ctx.String("since"); s != "" {
		since, err = timeutil.FromStr(s)
		if err != nil {
			return since, until, errInvalidDate.Fmt(s).Wrap(err)
		}

		since = timeutil.RoundToStart(since)
	}

	if s := ctx.String("until"); s != "" {
		until, err = timeutil.FromStr(s)
		if err != nil {
			return since, until, errInvalidDate.Fmt(s).Wrap(err)
		}

		until = timeutil.RoundToEnd(until)
	}

	return since, until, nil
}

func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	pterm.Println(string(b))

	return nil
}

// runAction handles the default command which times a workout.
func runAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	player, err := newPlayer(cfg)
	if err != nil {
		return err
	}

	keepAwake, err := coach.NewCommandKeepAwake(cfg.Settings.KeepAwakeCmd)
	if err != nil {
		return err
	}

	c := coach.New(coach.Options{
		Store:     db,
		Player:    player,
		KeepAwake: keepAwake,
		Logger:    slog.Default(),
		Delay:     cfg.Settings.CueDelay,
		CatchUp:   cfg.Settings.CatchUp,
	})

	week, day := cfg.CLI.Week, cfg.CLI.Day
	if week == 0 {
		w, _, err := c.Today()
		if err != nil {
			return err
		}

		week, day = w.Week, w.Day
	}

	sess, err := c.Begin(ctx.Context, week, day)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	res, err := timer.Run(sess, timer.Options{
		Style:      timer.NewStyle(cfg.Display.Colors, cfg.Display.DarkTheme),
		StatusFile: pathutil.StatusFilePath(),
	})

	closeErr := sess.Close()
	if closeErr != nil {
		slog.Warn("cue worker did not exit cleanly", "error", closeErr)
	}

	if err != nil {
		return err
	}

	if res == nil {
		report.Abandoned(sess.Workout())
		return nil
	}

	report.Completed(res)

	return nil
}

// todayAction prints the workout the user is due to run.
func todayAction(_ *cli.Context) error {
	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	c := coach.New(coach.Options{Store: db})

	w, p, err := c.Today()
	if err != nil {
		return err
	}

	printWorkout(os.Stdout, w)

	done, err := db.IsCompleted(w.Week, w.Day)
	if err != nil {
		return err
	}

	if done && w.Position() == program.Final {
		report.Info("You have finished the program. Run it again any time.")
	}

	if p.StartDate != nil {
		pterm.Info.Printfln(
			"Started on %s · %d workouts to go",
			p.StartDate.Local().Format("Jan 02, 2006"),
			p.Position().Remaining(),
		)
	}

	return nil
}

// scheduleAction lists every workout in the program.
func scheduleAction(ctx *cli.Context) error {
	workouts := program.All()

	if ctx.Bool("json") {
		return printJSON(workouts)
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	p, err := db.Progress()
	if err != nil {
		return err
	}

	history, err := db.History(time.Time{}, time.Time{})
	if err != nil {
		return err
	}

	completed := make(map[program.Position]bool, len(history))
	for i := range history {
		completed[history[i].Position()] = true
	}

	printScheduleTable(os.Stdout, workouts, completed, p.Position())

	return nil
}

func historyHelper(ctx *cli.Context) ([]models.CompletedWorkout, store.DB, error) {
	since, until, err := dateRange(ctx)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	workouts, err := db.History(since, until)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return workouts, db, nil
}

// historyAction lists completed workouts in the requested date range.
func historyAction(ctx *cli.Context) error {
	workouts, db, err := historyHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if ctx.Bool("json") {
		return printJSON(workouts)
	}

	if len(workouts) == 0 {
		report.Info(noWorkoutsMsg)
		return nil
	}

	printHistoryTable(os.Stdout, workouts)

	return nil
}

// statsAction summarises completed workouts in the requested date range.
func statsAction(ctx *cli.Context) error {
	workouts, db, err := historyHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	p, err := db.Progress()
	if err != nil {
		return err
	}

	s := stats.Compute(workouts, p.Position())

	if ctx.Bool("json") {
		return printJSON(s)
	}

	return s.Render(os.Stdout)
}

// deleteAction removes completed workouts in the requested date range.
func deleteAction(ctx *cli.Context) error {
	workouts, db, err := historyHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if len(workouts) == 0 {
		report.Info(noWorkoutsMsg)
		return nil
	}

	return delWorkouts(os.Stdout, config.Stdin, db, workouts, ctx.Bool("yes"))
}

// resetAction erases the stored progress and history.
func resetAction(ctx *cli.Context) error {
	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	return resetStore(os.Stdout, config.Stdin, db, ctx.Bool("yes"))
}

// importAction adds workouts from a JSON file to the history. The stored
// position moves forward past the latest imported workout.
func importAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errImportFileRequired
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	n, err := importHistory(db, b)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("imported %d workouts", n)

	return nil
}

// statusAction prints the status of a workout running in another terminal.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus(
		os.Stdout,
		pathutil.DBFilePath(),
		pathutil.StatusFilePath(),
	)
}

// soundsAction lists the sound files in the sounds directory.
func soundsAction(_ *cli.Context) error {
	names, err := listSounds(pathutil.SoundDir())
	if err != nil {
		return err
	}

	if len(names) == 0 {
		pterm.Info.Printfln(
			"No sound files found. Place ogg, mp3, flac or wav files in %s",
			pathutil.SoundDir(),
		)

		return nil
	}

	for _, n := range names {
		fmt.Println(n)
	}

	return nil
}

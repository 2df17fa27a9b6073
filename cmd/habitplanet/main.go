package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/anonymity12/habitplanet/internal/cli"
	"github.com/anonymity12/habitplanet/internal/content"
	"github.com/anonymity12/habitplanet/internal/repository/sqlitestore"
	"github.com/anonymity12/habitplanet/internal/service"
	"github.com/anonymity12/habitplanet/pkg/config"
	"github.com/anonymity12/habitplanet/pkg/dateutil"
	"github.com/anonymity12/habitplanet/pkg/logging"
)

var CLI struct {
	DB       string `help:"SQLite database file." type:"path" default:"habitplanet.db" env:"HABITPLANET_SQLITE_PATH"`
	User     string `help:"Account name." short:"u" env:"HABITPLANET_USER"`
	Password string `help:"Account password." short:"p" env:"HABITPLANET_PASSWORD"`
	Env      string `help:"Env file with content and timezone settings." default:"${env_file}"`
	Verbose  bool   `help:"Log engine activity to stderr." short:"v"`

	Register cli.RegisterCmd `cmd:"" help:"Create an account."`
	Habit    struct {
		List   cli.HabitListCmd   `cmd:"" help:"List habits." default:"1"`
		Add    cli.HabitAddCmd    `cmd:"" help:"Create a habit."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
		Toggle cli.HabitToggleCmd `cmd:"" help:"Flip a subtask."`
	} `cmd:"" help:"Manage habits."`
	Checkin cli.CheckinCmd `cmd:"" help:"Check in on a habit."`
	Draw    cli.DrawCmd    `cmd:"" help:"Spend coins on a card."`
	Profile cli.ProfileCmd `cmd:"" help:"Show coins, pet and cards."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show check-ins per day."`
	Advice  cli.AdviceCmd  `cmd:"" help:"Ask the coach for advice."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("habitplanet"),
		kong.Description("Habit tracker with a pet and a card collection"),
		kong.UsageOnError(),
		kong.Vars{"env_file": config.DefaultEnvFile},
	)
	if err := run(kctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(kctx *kong.Context) error {
	cfg, err := config.Load(CLI.Env)
	if err != nil {
		return err
	}
	level := "error"
	if CLI.Verbose {
		level = "debug"
	}
	if _, _, err = logging.Setup(logging.Options{Level: level, Format: "pretty"}); err != nil {
		return err
	}
	service.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := sqlitestore.Open(CLI.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	generator, err := content.NewGenerator(ctx, cfg.Content, content.DataURLStore{})
	if err != nil {
		return err
	}
	slog.Debug("opened database", slog.String("path", CLI.DB))

	appCtx := cli.NewContext(ctx, os.Stdout, cli.Options{
		Storage:        st,
		Calendar:       dateutil.NewCalendar(dateutil.System(), cfg.Location()),
		Generator:      generator,
		ContentTimeout: cfg.Content.Timeout,
	})
	appCtx.User = CLI.User
	appCtx.Password = CLI.Password
	return kctx.Run(appCtx)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/clock"
	"snake-arcade/game/types"
	"snake-arcade/terminal"
	"snake-arcade/ui"

	log "github.com/sirupsen/logrus"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "config.yml", "Path to the YAML config file (optional)")
	frontend := flag.String("frontend", "", "Front-end to use: window or terminal (overrides config)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), config.Usage())
	}
	flag.Parse()

	conf := config.MustLoad(*configPath)
	if *frontend != "" {
		conf.Frontend = *frontend
		if err := conf.Validate(); err != nil {
			panic(err)
		}
	}

	logger, closeLog := initLogger(conf)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, conf, logger); err != nil {
		panic(fmt.Errorf("game run failed: %w", err))
	}
}

func run(ctx context.Context, conf *config.Config, logger *log.Logger) error {
	entry := logger.WithField("component", "app")

	sched := clock.NewScheduler(types.TickInterval, time.Now)
	frame := &game.Redraw{}
	seed := conf.RandomSeed()

	g := game.NewGame(game.Settings{
		Grid:        types.DefaultGrid(),
		Seed:        seed,
		FoodOnSnake: conf.FoodOnSnake,
	}, sched, frame, logger.WithField("component", "game"))

	entry.WithFields(log.Fields{
		"frontend":      conf.Frontend,
		"seed":          seed,
		"food_on_snake": conf.FoodOnSnake,
	}).Info("starting snake")

	switch conf.Frontend {
	case config.FrontendTerminal:
		screen, err := terminal.Open()
		if err != nil {
			return fmt.Errorf("could not open terminal: %w", err)
		}
		defer screen.Fini()

		return terminal.Run(ctx, screen, g, sched, frame, logger.WithField("component", "terminal"))
	default:
		return ui.Run(ctx, conf.WindowTitle, g, sched, frame, logger.WithField("component", "window"))
	}
}

// initialize logger. The terminal front-end owns the tty, so it only logs
// when a log file is configured.
func initLogger(conf *config.Config) (*log.Logger, func()) {
	logger := log.New()

	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	if conf.LogFormat == config.FormatJSON {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	switch {
	case conf.LogFile != "":
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}
		logger.SetOutput(file)
		return logger, func() { _ = file.Close() }
	case conf.Frontend == config.FrontendTerminal:
		logger.SetOutput(io.Discard)
	default:
		logger.SetOutput(os.Stderr)
	}

	return logger, func() {}
}

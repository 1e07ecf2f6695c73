package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/proxx/internal/config"
	"github.com/mitchelldurbincs/proxx/internal/game"
	"github.com/mitchelldurbincs/proxx/internal/game/events"
	"github.com/mitchelldurbincs/proxx/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/proxx/internal/ui/console"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay, loads config.<env>.yaml (empty for none)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	seed := flag.Int64("seed", -1, "Board seed (-1 to use config default, 0 to seed from the clock)")
	difficulty := flag.String("difficulty", "", "Skip the menu: easy, medium, hard or custom")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}
	if *seed == -1 {
		*seed = cfg.Game.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	setupLogging(*logLevel, cfg.Log.Format)

	if path := config.ConfigFilePath(); path != "" {
		config.WatchConfig(func(err error) {
			if err != nil {
				log.Warn().Err(err).Str("file", path).Msg("Configuration change rejected, keeping previous settings")
				return
			}
			log.Info().Str("file", path).Msg("Configuration reloaded")
		})
	}

	eventBus := events.NewEventBus(log.Logger)
	eventLogger := subscribers.NewLoggerSubscriber("event_logger", log.Logger, zerolog.DebugLevel)
	eventLogger.SetDevMode(*logLevel == "debug")
	eventBus.Subscribe(eventLogger)

	opts := console.Options{
		In:                os.Stdin,
		Out:               os.Stdout,
		Logger:            log.Logger,
		Rng:               rand.New(rand.NewSource(*seed)),
		EventBus:          eventBus,
		ClearScreen:       cfg.UI.ClearScreen,
		Color:             cfg.UI.Color,
		PauseBetweenMoves: cfg.UI.PauseBetweenMoves,
	}
	if *difficulty != "" {
		d, err := game.ParseDifficulty(*difficulty)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid -difficulty")
		}
		opts.Difficulty = &d
	}

	log.Debug().Int64("seed", *seed).Msg("Starting console game")

	phase, err := console.New(opts).Run(context.Background())
	if err != nil {
		log.Error().Err(err).Int64("seed", *seed).Msg("Game aborted")
		os.Exit(1)
	}

	log.Info().
		Str("result", phase.String()).
		Int64("seed", *seed).
		Msg("Game finished")
}

// setupLogging writes logs to stderr so stdout stays the game screen
func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if os.Getenv("APP_ENV") == "production" || format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/proxx/internal/config"
	"github.com/mitchelldurbincs/proxx/internal/game"
	"github.com/mitchelldurbincs/proxx/internal/game/events"
	"github.com/mitchelldurbincs/proxx/internal/game/events/subscribers"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	seed := flag.Int64("seed", 0, "Game seed (0 to seed from the clock)")
	difficulty := flag.String("difficulty", "", "easy, medium or hard (empty to use config default)")
	maxMoves := flag.Int("max-moves", 0, "Stop after this many reveals (0 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *difficulty == "" {
		*difficulty = cfg.Demo.Difficulty
	}
	if *maxMoves <= 0 {
		*maxMoves = cfg.Demo.MaxMoves
	}
	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}
	setupLogging(*logLevel, cfg.Log.Format)

	d, err := game.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid difficulty")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	fmt.Printf("Game seed: %d\n", *seed)
	rng := rand.New(rand.NewSource(*seed))

	eventBus := events.NewEventBus(log.Logger)
	endLogger := subscribers.NewLoggerSubscriber("demo_logger", log.Logger, zerolog.InfoLevel)
	endLogger.SetEventFilter([]string{events.TypeMineHit, events.TypeGameEnded})
	eventBus.Subscribe(endLogger)

	gameCfg, err := game.LookupPreset(d)
	if err != nil {
		log.Fatal().Err(err).Msg("Demo needs a preset difficulty: easy, medium or hard")
	}
	gameCfg.Rng = rng
	gameCfg.Logger = log.Logger
	gameCfg.EventBus = eventBus

	g, err := game.NewEngine(context.Background(), gameCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game")
	}

	fmt.Printf("Initial board (%s, %dx%d, %d black holes):\n%s\n", d, g.Width(), g.Height(), g.MineCount(), g.Render(false))

	moves := 0
	for ; moves < *maxMoves && !g.IsGameOver(); moves++ {
		pos, ok := game.GenerateRandomReveal(g, rng)
		if !ok {
			break
		}

		result, err := g.Reveal(pos)
		if err != nil {
			fmt.Printf("Error on move %d: %v\n", moves+1, err)
			break
		}

		fmt.Printf("Move %d: reveal %s -> %d new, %d/%d open\n",
			moves+1, pos, result.Newly, g.RevealedCount(), g.Board().TotalCells())
		fmt.Print(g.Render(false))
		fmt.Println()
	}

	switch {
	case g.IsWon():
		fmt.Printf("Game Over! All safe cells revealed in %d moves.\n", moves)
	case g.IsLost():
		fmt.Printf("Game Over! Black hole hit at %s on move %d.\n", g.Context().LosingPosition, moves)
	default:
		fmt.Printf("Game reached maximum moves (%d)\n", *maxMoves)
	}

	fmt.Printf("\nFinal board:\n%s", g.Render(true))
	fmt.Print(game.FormatCellStates(g.Revealed()))
}

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

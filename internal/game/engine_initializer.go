package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/proxx/internal/game/core"
	"github.com/mitchelldurbincs/proxx/internal/game/events"
	"github.com/mitchelldurbincs/proxx/internal/game/mapgen"
	"github.com/mitchelldurbincs/proxx/internal/game/rules"
	"github.com/mitchelldurbincs/proxx/internal/game/states"
	"github.com/rs/zerolog"
)

// EngineInitializer handles the initialization of a game engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// Initialize creates and initializes a new game engine
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled or timed out during initial phase")
		return nil, ctx.Err()
	default:
	}

	ei.setupDefaults()

	board, err := ei.generateBoard()
	if err != nil {
		ei.logger.Error().
			Err(err).
			Int("width", ei.config.Width).
			Int("height", ei.config.Height).
			Int("mines", ei.config.Mines).
			Msg("Board generation failed")
		return nil, fmt.Errorf("board generation failed: %w", err)
	}

	engine := ei.createEngine(board)

	engine.eventBus.Publish(events.NewGameStartedEvent(
		engine.gameID,
		board.W,
		board.H,
		board.MineCount(),
	))

	ei.logger.Info().
		Str("game_id", engine.gameID).
		Int("width", board.W).
		Int("height", board.H).
		Int("mines", board.MineCount()).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults sets up default values for missing configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.Rng == nil {
		ei.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		ei.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if ei.config.Placer == nil {
		ei.config.Placer = mapgen.NewGenerator(ei.config.Rng)
	}

	if ei.config.GameID == "" {
		ei.config.GameID = uuid.NewString()
	}
	ei.logger = ei.logger.With().Str("game_id", ei.config.GameID).Logger()

	if ei.config.EventBus == nil {
		ei.config.EventBus = events.NewEventBus(ei.config.Logger)
	}
}

// generateBoard validates the settings and places the black holes
func (ei *EngineInitializer) generateBoard() (*core.Board, error) {
	if err := core.ValidateConfig(ei.config.Width, ei.config.Height, ei.config.Mines); err != nil {
		return nil, err
	}
	return mapgen.GenerateBoard(ei.config.Placer, ei.config.Width, ei.config.Height, ei.config.Mines)
}

// createEngine creates the engine with all its components
func (ei *EngineInitializer) createEngine(board *core.Board) *Engine {
	gameContext := states.NewGameContext(ei.config.GameID, ei.logger)
	gameContext.SafeRemaining = board.TotalCells() - board.MineCount()

	return &Engine{
		board:        board,
		rng:          ei.config.Rng,
		logger:       ei.logger,
		eventBus:     ei.config.EventBus,
		gameID:       ei.config.GameID,
		stateMachine: states.NewStateMachine(gameContext, ei.config.EventBus),
		winCondition: rules.NewWinConditionChecker(ei.logger),
		legalReveals: rules.NewLegalRevealCalculator(),
	}
}

package states

import (
	"time"

	"github.com/mitchelldurbincs/proxx/internal/game/core"
	"github.com/rs/zerolog"
)

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// StartTime is when the board was generated
	StartTime time.Time

	// EndTime is when a terminal phase was entered
	EndTime time.Time

	// Reveals counts accepted reveal requests
	Reveals int

	// LosingPosition is the black hole that ended the game, if any
	LosingPosition *core.Position

	// SafeRemaining is the number of unopened safe cells
	SafeRemaining int
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID:    gameID,
		Logger:    logger.With().Str("game_id", gameID).Logger(),
		StartTime: time.Now(),
	}
}

// GetElapsedTime returns the time between the start and the end of the game,
// or until now while the game is still running.
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if gc.EndTime.IsZero() {
		return time.Since(gc.StartTime)
	}
	return gc.EndTime.Sub(gc.StartTime)
}

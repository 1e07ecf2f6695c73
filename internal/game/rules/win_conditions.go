package rules

import (
	"github.com/mitchelldurbincs/proxx/internal/game/core"
	"github.com/rs/zerolog"
)

// Outcome is the result of a game over check
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "Lost"
	case OutcomeWon:
		return "Won"
	default:
		return "None"
	}
}

// WinConditionChecker handles game over detection
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// CheckGameOver reports whether the board is finished and how.
// An opened black hole always loses, even if no safe cell is left.
func (wc *WinConditionChecker) CheckGameOver(board *core.Board) Outcome {
	outcome := OutcomeNone
	switch {
	case board.Exploded():
		outcome = OutcomeLost
	case board.IsVictory():
		outcome = OutcomeWon
	}

	wc.logger.Debug().
		Str("outcome", outcome.String()).
		Int("revealed", board.RevealedCount()).
		Int("safe_total", board.TotalCells()-board.MineCount()).
		Msg("Game over check complete")

	return outcome
}

package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/mitchelldurbincs/proxx/internal/game/core"
	"github.com/mitchelldurbincs/proxx/internal/game/events"
	"github.com/mitchelldurbincs/proxx/internal/game/mapgen"
	"github.com/mitchelldurbincs/proxx/internal/game/rules"
	"github.com/mitchelldurbincs/proxx/internal/game/states"
	"github.com/rs/zerolog"
)

// GameConfig describes a single game
type GameConfig struct {
	Width  int
	Height int
	Mines  int

	// Optional. Defaults: clock-seeded RNG, random placer over Rng,
	// uuid game ID, a fresh event bus and a no-op logger.
	Rng      *rand.Rand
	Placer   mapgen.Placer
	Logger   zerolog.Logger
	GameID   string
	EventBus *events.EventBus
}

// Engine runs one game: it owns the board, publishes events and tracks the phase.
// An Engine is not safe for concurrent use.
type Engine struct {
	board        *core.Board
	rng          *rand.Rand
	logger       zerolog.Logger
	eventBus     *events.EventBus
	gameID       string
	stateMachine *states.StateMachine
	winCondition *rules.WinConditionChecker
	legalReveals *rules.LegalRevealCalculator
}

// NewEngine generates a board for cfg and starts the game.
// Invalid dimensions or mine counts return a *core.ConfigError.
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Reveal opens the cell at pos and advances the game.
// Out of range positions return core.ErrOutOfBounds and reveals after the
// game is over return core.ErrGameOver; neither changes the board.
func (e *Engine) Reveal(pos core.Position) (core.RevealResult, error) {
	if !e.board.InBounds(pos) {
		return core.RevealResult{}, fmt.Errorf("reveal %s on %dx%d board: %w", pos, e.board.W, e.board.H, core.ErrOutOfBounds)
	}
	if phase := e.Phase(); !phase.CanReceiveReveals() {
		return core.RevealResult{}, fmt.Errorf("reveal %s in phase %s: %w", pos, phase, core.ErrGameOver)
	}

	gameContext := e.stateMachine.GetContext()
	gameContext.Reveals++

	result := e.board.Reveal(pos)

	e.logger.Debug().
		Str("position", pos.String()).
		Bool("was_mine", result.WasMine).
		Int("newly_revealed", result.Newly).
		Msg("Cell revealed")

	if result.WasMine {
		e.eventBus.Publish(events.NewMineHitEvent(e.gameID, pos, e.board.MineCount()))
	} else {
		e.eventBus.Publish(events.NewCellRevealedEvent(
			e.gameID,
			pos,
			result.Cell.AdjacentMines,
			result.Newly,
			e.board.RevealedCount(),
		))
	}

	switch e.winCondition.CheckGameOver(e.board) {
	case rules.OutcomeLost:
		losing := pos
		gameContext.LosingPosition = &losing
		e.endGame(states.PhaseLost, fmt.Sprintf("black hole at %s", pos))
	case rules.OutcomeWon:
		gameContext.SafeRemaining = 0
		e.endGame(states.PhaseWon, "all safe cells revealed")
	default:
		gameContext.SafeRemaining = e.board.TotalCells() - e.board.MineCount() - e.board.RevealedCount()
	}

	return result, nil
}

// endGame moves the state machine to a terminal phase and announces the result
func (e *Engine) endGame(phase states.GamePhase, reason string) {
	if err := e.stateMachine.TransitionTo(phase, reason); err != nil {
		e.logger.Error().Err(err).Str("phase", phase.String()).Msg("Failed to end game")
		return
	}

	gameContext := e.stateMachine.GetContext()
	e.eventBus.Publish(events.NewGameEndedEvent(
		e.gameID,
		phase.String(),
		gameContext.Reveals,
		gameContext.GetElapsedTime(),
	))
}

// Phase returns the current game phase
func (e *Engine) Phase() states.GamePhase { return e.stateMachine.CurrentPhase() }

// IsGameOver reports whether the game has been won or lost
func (e *Engine) IsGameOver() bool { return e.Phase().IsTerminal() }

func (e *Engine) IsWon() bool  { return e.Phase() == states.PhaseWon }
func (e *Engine) IsLost() bool { return e.Phase() == states.PhaseLost }

func (e *Engine) GameID() string                     { return e.gameID }
func (e *Engine) EventBus() *events.EventBus         { return e.eventBus }
func (e *Engine) History() []states.Transition       { return e.stateMachine.GetHistory() }
func (e *Engine) Context() *states.GameContext       { return e.stateMachine.GetContext() }
func (e *Engine) Width() int                         { return e.board.W }
func (e *Engine) Height() int                        { return e.board.H }
func (e *Engine) MineCount() int                     { return e.board.MineCount() }
func (e *Engine) RevealedCount() int                 { return e.board.RevealedCount() }
func (e *Engine) Revealed() []core.CellView          { return e.board.Revealed() }
func (e *Engine) View(p core.Position) core.CellView { return e.board.View(p) }

// Board exposes the underlying board for read-only inspection
func (e *Engine) Board() *core.Board { return e.board }

// LegalReveals lists the cells that are still closed, ascending X then Y.
// It is empty once the game is over.
func (e *Engine) LegalReveals() []core.Position {
	if e.IsGameOver() {
		return nil
	}
	return e.legalReveals.LegalReveals(e.board)
}

package events

import (
	"time"

	"github.com/mitchelldurbincs/proxx/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameEnded       = "game.ended"
	TypeCellRevealed    = "cell.revealed"
	TypeMineHit         = "mine.hit"
	TypeStateTransition = "state.transition"
)

func newBase(eventType, gameID string) BaseEvent {
	return BaseEvent{
		EventType: eventType,
		Time:      time.Now(),
		Game:      gameID,
	}
}

// GameStartedEvent is published once the board has been generated
type GameStartedEvent struct {
	BaseEvent
	Width  int `json:"width"`
	Height int `json:"height"`
	Mines  int `json:"mines"`
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, width, height, mines int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, gameID),
		Width:     width,
		Height:    height,
		Mines:     mines,
	}
}

// CellRevealedEvent is published for every reveal of a safe cell, including
// replays of cells that were already open (Newly is 0 then).
type CellRevealedEvent struct {
	BaseEvent
	Position      core.Position `json:"position"`
	AdjacentMines int           `json:"adjacent_mines"`
	Newly         int           `json:"newly"`
	RevealedTotal int           `json:"revealed_total"`
}

// NewCellRevealedEvent creates a new CellRevealedEvent
func NewCellRevealedEvent(gameID string, pos core.Position, adjacent, newly, total int) *CellRevealedEvent {
	return &CellRevealedEvent{
		BaseEvent:     newBase(TypeCellRevealed, gameID),
		Position:      pos,
		AdjacentMines: adjacent,
		Newly:         newly,
		RevealedTotal: total,
	}
}

// MineHitEvent is published when a black hole is opened
type MineHitEvent struct {
	BaseEvent
	Position      core.Position `json:"position"`
	MinesRevealed int           `json:"mines_revealed"`
}

// NewMineHitEvent creates a new MineHitEvent
func NewMineHitEvent(gameID string, pos core.Position, minesRevealed int) *MineHitEvent {
	return &MineHitEvent{
		BaseEvent:     newBase(TypeMineHit, gameID),
		Position:      pos,
		MinesRevealed: minesRevealed,
	}
}

// GameEndedEvent is published when a game is won or lost
type GameEndedEvent struct {
	BaseEvent
	Outcome  string        `json:"outcome"`
	Reveals  int           `json:"reveals"`
	Duration time.Duration `json:"duration"`
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID, outcome string, reveals int, duration time.Duration) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID),
		Outcome:   outcome,
		Reveals:   reveals,
		Duration:  duration,
	}
}

// StateTransitionEvent is published when the game state machine changes phase
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string `json:"from_phase"`
	ToPhase   string `json:"to_phase"`
	Reason    string `json:"reason"`
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}

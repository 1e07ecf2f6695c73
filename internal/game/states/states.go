package states

import (
	"fmt"
	"time"
)

// InProgressState represents active play
type InProgressState struct{}

func NewInProgressState() State {
	return &InProgressState{}
}

func (s *InProgressState) Phase() GamePhase {
	return PhaseInProgress
}

func (s *InProgressState) Enter(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		ctx.StartTime = time.Now()
	}
	ctx.Logger.Debug().Msg("Entering InProgress state")
	return nil
}

func (s *InProgressState) Exit(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Info().
		Dur("elapsed", ctx.GetElapsedTime()).
		Int("reveals", ctx.Reveals).
		Msg("Exiting InProgress state")
	return nil
}

func (s *InProgressState) Validate(ctx *GameContext) error {
	return nil
}

// LostState is entered when a black hole is opened
type LostState struct{}

func NewLostState() State {
	return &LostState{}
}

func (s *LostState) Phase() GamePhase {
	return PhaseLost
}

func (s *LostState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Str("position", ctx.LosingPosition.String()).
		Msg("Game lost")
	return nil
}

func (s *LostState) Exit(ctx *GameContext) error {
	return fmt.Errorf("cannot leave terminal phase %s", PhaseLost)
}

func (s *LostState) Validate(ctx *GameContext) error {
	if ctx.LosingPosition == nil {
		return fmt.Errorf("lost phase requires the losing position")
	}
	return nil
}

// WonState is entered once every safe cell has been opened
type WonState struct{}

func NewWonState() State {
	return &WonState{}
}

func (s *WonState) Phase() GamePhase {
	return PhaseWon
}

func (s *WonState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Int("reveals", ctx.Reveals).
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Game won")
	return nil
}

func (s *WonState) Exit(ctx *GameContext) error {
	return fmt.Errorf("cannot leave terminal phase %s", PhaseWon)
}

func (s *WonState) Validate(ctx *GameContext) error {
	if ctx.SafeRemaining != 0 {
		return fmt.Errorf("won phase requires all safe cells revealed, %d remaining", ctx.SafeRemaining)
	}
	if ctx.LosingPosition != nil {
		return fmt.Errorf("won phase after black hole at %s", ctx.LosingPosition)
	}
	return nil
}

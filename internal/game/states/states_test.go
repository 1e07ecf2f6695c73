package states

import (
	"testing"
	"time"

	"github.com/mitchelldurbincs/proxx/internal/game/core"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestStatePhases(t *testing.T) {
	assert.Equal(t, PhaseInProgress, NewInProgressState().Phase())
	assert.Equal(t, PhaseLost, NewLostState().Phase())
	assert.Equal(t, PhaseWon, NewWonState().Phase())
}

func TestTerminalStatesRefuseExit(t *testing.T) {
	ctx := NewGameContext("g", zerolog.Nop())

	assert.Error(t, NewLostState().Exit(ctx))
	assert.Error(t, NewWonState().Exit(ctx))
	assert.NoError(t, NewInProgressState().Exit(ctx))
}

func TestWonStateValidate(t *testing.T) {
	ctx := NewGameContext("g", zerolog.Nop())
	won := NewWonState()

	assert.NoError(t, won.Validate(ctx))

	ctx.SafeRemaining = 1
	assert.Error(t, won.Validate(ctx))

	ctx.SafeRemaining = 0
	ctx.LosingPosition = &core.Position{X: 0, Y: 0}
	assert.Error(t, won.Validate(ctx))
}

func TestGameContext_ElapsedTime(t *testing.T) {
	ctx := &GameContext{}
	assert.Zero(t, ctx.GetElapsedTime())

	start := time.Now().Add(-time.Minute)
	ctx.StartTime = start
	assert.GreaterOrEqual(t, ctx.GetElapsedTime(), time.Minute)

	ctx.EndTime = start.Add(30 * time.Second)
	assert.Equal(t, 30*time.Second, ctx.GetElapsedTime())
}

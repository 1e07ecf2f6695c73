package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/proxx/internal/game/core"
	"github.com/mitchelldurbincs/proxx/internal/game/events"
	"github.com/mitchelldurbincs/proxx/internal/game/mapgen"
	"github.com/mitchelldurbincs/proxx/internal/game/states"
	"github.com/mitchelldurbincs/proxx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create a deterministic RNG for tests
func newTestRNG() *rand.Rand {
	return testutil.NewTestRNG(12345)
}

// newFixedEngine builds an engine over a drawn layout with a recording bus
func newFixedEngine(t *testing.T, rows ...string) (*Engine, *testutil.EventRecorder) {
	t.Helper()
	w, h, mines := testutil.ParseLayout(rows...)
	bus, rec := testutil.NewRecordingBus()

	engine, err := NewEngine(context.Background(), GameConfig{
		Width:    w,
		Height:   h,
		Mines:    len(mines),
		Placer:   mapgen.FixedPlacer(mines),
		Logger:   testutil.NopLogger(),
		EventBus: bus,
	})
	require.NoError(t, err)
	return engine, rec
}

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine(context.Background(), GameConfig{
		Width:  8,
		Height: 8,
		Mines:  10,
		Rng:    newTestRNG(),
	})
	require.NoError(t, err)
	require.NotNil(t, engine)

	assert.Equal(t, 8, engine.Width())
	assert.Equal(t, 8, engine.Height())
	assert.Equal(t, 10, engine.MineCount())
	assert.Len(t, engine.Board().Mines(), 10)
	assert.Equal(t, 0, engine.RevealedCount())
	assert.Equal(t, states.PhaseInProgress, engine.Phase())
	assert.False(t, engine.IsGameOver())
	assert.Empty(t, engine.History())
	assert.Len(t, engine.LegalReveals(), 64)
	assert.Equal(t, 54, engine.Context().SafeRemaining)

	_, err = uuid.Parse(engine.GameID())
	assert.NoError(t, err, "default game id should be a uuid")
	assert.NotNil(t, engine.EventBus())
}

func TestNewEngine_Deterministic(t *testing.T) {
	cfg := GameConfig{Width: 16, Height: 16, Mines: 40}

	cfg.Rng = testutil.NewTestRNG(99)
	first, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Rng = testutil.NewTestRNG(99)
	second, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Board().Mines(), second.Board().Mines())
	assert.NotEqual(t, first.GameID(), second.GameID())
}

func TestNewEngine_ConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		cfg    GameConfig
		target error
	}{
		{"zero width", GameConfig{Width: 0, Height: 5, Mines: 1}, core.ErrInvalidDimensions},
		{"negative height", GameConfig{Width: 5, Height: -1, Mines: 1}, core.ErrInvalidDimensions},
		{"negative mines", GameConfig{Width: 3, Height: 3, Mines: -1}, core.ErrInvalidMineCount},
		{"no safe cell", GameConfig{Width: 2, Height: 2, Mines: 4}, core.ErrInvalidMineCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Rng = newTestRNG()
			engine, err := NewEngine(context.Background(), tt.cfg)
			require.Error(t, err)
			assert.Nil(t, engine)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)

			var cfgErr *core.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.cfg.Width, cfgErr.Width)
			assert.Equal(t, tt.cfg.Mines, cfgErr.Mines)
		})
	}
}

func TestNewEngine_BadFixedLayout(t *testing.T) {
	_, err := NewEngine(context.Background(), GameConfig{
		Width:  2,
		Height: 2,
		Mines:  1,
		Placer: mapgen.FixedPlacer{{X: 5, Y: 5}},
	})
	assert.ErrorIs(t, err, core.ErrMineOutOfBounds)
}

func TestNewEngine_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine, err := NewEngine(ctx, GameConfig{Width: 3, Height: 3, Mines: 1})
	assert.Nil(t, engine)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewEngine_CustomIDAndBus(t *testing.T) {
	bus, rec := testutil.NewRecordingBus()
	engine, err := NewEngine(context.Background(), GameConfig{
		Width:    4,
		Height:   4,
		Mines:    2,
		Rng:      newTestRNG(),
		GameID:   "fixed-game",
		EventBus: bus,
	})
	require.NoError(t, err)

	assert.Equal(t, "fixed-game", engine.GameID())
	assert.Same(t, bus, engine.EventBus())

	require.Equal(t, []string{events.TypeGameStarted}, rec.Types())
	started := rec.Events()[0].(*events.GameStartedEvent)
	assert.Equal(t, "fixed-game", started.GameID())
	assert.Equal(t, 4, started.Width)
	assert.Equal(t, 4, started.Height)
	assert.Equal(t, 2, started.Mines)
}

func TestEngine_Reveal_SingleCellBoard(t *testing.T) {
	engine, rec := newFixedEngine(t, ".")

	result, err := engine.Reveal(core.Position{X: 0, Y: 0})
	require.NoError(t, err)

	assert.False(t, result.WasMine)
	assert.True(t, result.Victory)
	assert.Equal(t, 1, result.Newly)
	assert.Equal(t, states.PhaseWon, engine.Phase())
	assert.True(t, engine.IsWon())
	assert.Equal(t, []string{
		events.TypeGameStarted,
		events.TypeCellRevealed,
		events.TypeStateTransition,
		events.TypeGameEnded,
	}, rec.Types())

	ended := rec.Events()[3].(*events.GameEndedEvent)
	assert.Equal(t, "Won", ended.Outcome)
	assert.Equal(t, 1, ended.Reveals)
}

func TestEngine_Reveal_NumberedCell(t *testing.T) {
	engine, rec := newFixedEngine(t,
		". . .",
		". * .",
		". . .",
	)

	result, err := engine.Reveal(core.Position{X: 0, Y: 0})
	require.NoError(t, err)

	assert.False(t, result.WasMine)
	assert.False(t, result.Victory)
	assert.Equal(t, 1, result.Newly)
	assert.Equal(t, 1, result.Cell.AdjacentMines)
	assert.Equal(t, states.PhaseInProgress, engine.Phase())
	assert.Equal(t, 7, engine.Context().SafeRemaining)

	revealed := rec.Events()[1].(*events.CellRevealedEvent)
	assert.Equal(t, core.Position{X: 0, Y: 0}, revealed.Position)
	assert.Equal(t, 1, revealed.AdjacentMines)
	assert.Equal(t, 1, revealed.Newly)
	assert.Equal(t, 1, revealed.RevealedTotal)
}

func TestEngine_Reveal_FullCascade(t *testing.T) {
	engine, _ := newFixedEngine(t,
		"...",
		"...",
		"...",
	)

	result, err := engine.Reveal(core.Position{X: 0, Y: 0})
	require.NoError(t, err)

	assert.Equal(t, 9, result.Newly)
	assert.Len(t, result.Revealed, 9)
	assert.True(t, result.Victory)
	assert.True(t, engine.IsWon())
	assert.Empty(t, engine.LegalReveals())
}

func TestEngine_Reveal_MineLosesGame(t *testing.T) {
	engine, rec := newFixedEngine(t,
		"*.",
		"..",
	)

	result, err := engine.Reveal(core.Position{X: 0, Y: 0})
	require.NoError(t, err)

	assert.True(t, result.WasMine)
	assert.False(t, result.Victory)
	assert.Equal(t, states.PhaseLost, engine.Phase())
	assert.True(t, engine.IsLost())
	assert.True(t, engine.IsGameOver())
	require.NotNil(t, engine.Context().LosingPosition)
	assert.Equal(t, core.Position{X: 0, Y: 0}, *engine.Context().LosingPosition)

	assert.Equal(t, []string{
		events.TypeGameStarted,
		events.TypeMineHit,
		events.TypeStateTransition,
		events.TypeGameEnded,
	}, rec.Types())

	transition := rec.Events()[2].(*events.StateTransitionEvent)
	assert.Equal(t, "InProgress", transition.FromPhase)
	assert.Equal(t, "Lost", transition.ToPhase)
	assert.Equal(t, "black hole at [0,0]", transition.Reason)

	history := engine.History()
	require.Len(t, history, 1)
	assert.Equal(t, states.PhaseLost, history[0].To)
}

func TestEngine_Reveal_AfterGameOver(t *testing.T) {
	engine, rec := newFixedEngine(t, "*.", "..")
	_, err := engine.Reveal(core.Position{X: 0, Y: 0})
	require.NoError(t, err)
	before := len(rec.Types())
	revealed := engine.RevealedCount()

	_, err = engine.Reveal(core.Position{X: 1, Y: 1})
	assert.ErrorIs(t, err, core.ErrGameOver)
	assert.Equal(t, revealed, engine.RevealedCount(), "board must not change after the game ends")
	assert.Len(t, rec.Types(), before, "no events after the game ends")
}

func TestEngine_Reveal_OutOfBounds(t *testing.T) {
	engine, rec := newFixedEngine(t, "...", ".*.")

	for _, p := range []core.Position{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 2}} {
		_, err := engine.Reveal(p)
		assert.ErrorIs(t, err, core.ErrOutOfBounds, "position %s", p)
	}

	assert.Equal(t, 0, engine.RevealedCount())
	assert.Equal(t, 0, engine.Context().Reveals)
	assert.Equal(t, []string{events.TypeGameStarted}, rec.Types())
}

func TestEngine_Reveal_ReplayIsNoOp(t *testing.T) {
	engine, rec := newFixedEngine(t,
		". . .",
		". * .",
		". . .",
	)

	first, err := engine.Reveal(core.Position{X: 2, Y: 2})
	require.NoError(t, err)
	second, err := engine.Reveal(core.Position{X: 2, Y: 2})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Newly)
	assert.Equal(t, 0, second.Newly)
	assert.Equal(t, first.Revealed, second.Revealed)
	assert.Equal(t, 2, engine.Context().Reveals)

	replay := rec.Events()[2].(*events.CellRevealedEvent)
	assert.Equal(t, 0, replay.Newly)
	assert.Equal(t, 1, replay.RevealedTotal)
}

func TestEngine_WinByRevealingEverySafeCell(t *testing.T) {
	engine, _ := newFixedEngine(t, ".*.")

	_, err := engine.Reveal(core.Position{X: 0, Y: 0})
	require.NoError(t, err)
	assert.False(t, engine.IsGameOver())

	result, err := engine.Reveal(core.Position{X: 2, Y: 0})
	require.NoError(t, err)
	assert.True(t, result.Victory)
	assert.True(t, engine.IsWon())
	assert.Equal(t, 0, engine.Context().SafeRemaining)
}

func TestGenerateRandomReveal_PlaysToCompletion(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := testutil.NewTestRNG(seed)
		engine, err := NewEngine(context.Background(), GameConfig{
			Width:  6,
			Height: 5,
			Mines:  5,
			Rng:    rng,
			Logger: testutil.NopLogger(),
		})
		require.NoError(t, err)

		moves := 0
		for {
			pos, ok := GenerateRandomReveal(engine, nil)
			if !ok {
				break
			}
			_, err := engine.Reveal(pos)
			require.NoError(t, err)
			moves++
			require.LessOrEqual(t, moves, 25, "seed %d: every reveal opens at least one cell", seed)
		}

		assert.True(t, engine.IsGameOver(), "seed %d", seed)
		if engine.IsWon() {
			assert.Equal(t, 25, engine.RevealedCount())
		} else {
			assert.True(t, engine.Board().Exploded())
		}
	}
}

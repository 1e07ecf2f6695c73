package game

import (
	"math/rand"

	"github.com/mitchelldurbincs/proxx/internal/game/core"
	"github.com/rs/zerolog/log"
)

// GenerateRandomReveal picks a closed cell uniformly at random.
// This is a helper function intended for demos, testing, or simple baseline agents.
// A nil rng uses the engine's own. It returns false once the game is over.
func GenerateRandomReveal(g *Engine, rng *rand.Rand) (core.Position, bool) {
	if rng == nil {
		rng = g.rng
	}

	candidates := g.LegalReveals()
	if len(candidates) == 0 {
		return core.Position{}, false
	}

	choice := candidates[rng.Intn(len(candidates))]
	log.Debug().
		Str("game_id", g.gameID).
		Int("candidates", len(candidates)).
		Str("position", choice.String()).
		Msg("Generated random reveal")

	return choice, true
}

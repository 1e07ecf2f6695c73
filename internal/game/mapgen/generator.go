package mapgen

import (
	"fmt"
	"math/rand"

	"github.com/mitchelldurbincs/proxx/internal/game/core"
)

// Placer chooses where black holes go on a width x height board.
type Placer interface {
	Place(width, height, count int) ([]core.Position, error)
}

// Generator places black holes uniformly at random using an injected RNG,
// so a fixed seed always produces the same layout.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a new random placer
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Place returns count distinct positions within [0,width) x [0,height).
// Candidates are drawn at random and redrawn when already taken.
func (g *Generator) Place(width, height, count int) ([]core.Position, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("place %d mines on %dx%d board: %w", count, width, height, core.ErrInvalidDimensions)
	}
	if count < 0 || count > width*height {
		return nil, fmt.Errorf("place %d mines on %dx%d board: %w", count, width, height, core.ErrMineCapacity)
	}

	chosen := make(map[core.Position]struct{}, count)
	positions := make([]core.Position, 0, count)

	for len(positions) < count {
		p := core.Position{X: g.rng.Intn(width), Y: g.rng.Intn(height)}
		if _, taken := chosen[p]; taken {
			continue
		}
		chosen[p] = struct{}{}
		positions = append(positions, p)
	}

	return positions, nil
}

// GenerateBoard places mines black holes and builds the board around them
func (g *Generator) GenerateBoard(width, height, mines int) (*core.Board, error) {
	return GenerateBoard(g, width, height, mines)
}

// GenerateBoard validates the settings, asks p for a layout and builds the board.
func GenerateBoard(p Placer, width, height, mines int) (*core.Board, error) {
	if err := core.ValidateConfig(width, height, mines); err != nil {
		return nil, err
	}

	positions, err := p.Place(width, height, mines)
	if err != nil {
		return nil, err
	}

	return core.NewBoard(width, height, positions)
}

// FixedPlacer hands out a predetermined layout. Useful for tests and for
// replaying a known board.
type FixedPlacer []core.Position

// Place returns a copy of the fixed layout after checking it fits the board
func (f FixedPlacer) Place(width, height, count int) ([]core.Position, error) {
	if len(f) != count {
		return nil, fmt.Errorf("fixed layout has %d mines, %d requested", len(f), count)
	}

	seen := make(map[core.Position]struct{}, len(f))
	for _, p := range f {
		if !p.IsValid(width, height) {
			return nil, fmt.Errorf("%w: %s on %dx%d board", core.ErrMineOutOfBounds, p, width, height)
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: %s", core.ErrDuplicateMine, p)
		}
		seen[p] = struct{}{}
	}

	out := make([]core.Position, len(f))
	copy(out, f)
	return out, nil
}

package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrInvalidMineCount  = errors.New("mine count must be non-negative and below the number of cells")
	ErrMineCapacity      = errors.New("requested mine count exceeds board capacity")
	ErrMineOutOfBounds   = errors.New("mine position outside board bounds")
	ErrDuplicateMine     = errors.New("duplicate mine position")
	ErrOutOfBounds       = errors.New("position outside board bounds")
	ErrGameOver          = errors.New("game is over")
)

// ConfigError reports a board that cannot be built from the requested settings.
type ConfigError struct {
	Width  int
	Height int
	Mines  int
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("board %dx%d with %d mines: %v", e.Width, e.Height, e.Mines, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ValidateConfig checks that a width x height board can hold mines mines while
// leaving at least one safe cell.
func ValidateConfig(width, height, mines int) error {
	if width <= 0 || height <= 0 {
		return &ConfigError{Width: width, Height: height, Mines: mines, Err: ErrInvalidDimensions}
	}
	if mines < 0 || mines >= width*height {
		return &ConfigError{Width: width, Height: height, Mines: mines, Err: ErrInvalidMineCount}
	}
	return nil
}

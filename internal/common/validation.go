package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/proxx/internal/game/core"
)

// ErrInvalidNumber is returned for input that is not a whole number
var ErrInvalidNumber = errors.New("not a whole number")

// ErrOutOfRange is returned for a number outside the accepted range
var ErrOutOfRange = errors.New("number out of range")

// ParseInt parses a whole number, ignoring surrounding whitespace
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", strings.TrimSpace(s), ErrInvalidNumber)
	}
	return n, nil
}

// ParseBoundedInt parses a whole number in [lo, hi]
func ParseBoundedInt(s string, lo, hi int) (int, error) {
	n, err := ParseInt(s)
	if err != nil {
		return 0, err
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%d not in [%d, %d]: %w", n, lo, hi, ErrOutOfRange)
	}
	return n, nil
}

// ParsePosition builds a position from separately entered x and y values
func ParsePosition(x, y string) (core.Position, error) {
	px, err := ParseInt(x)
	if err != nil {
		return core.Position{}, fmt.Errorf("x: %w", err)
	}
	py, err := ParseInt(y)
	if err != nil {
		return core.Position{}, fmt.Errorf("y: %w", err)
	}
	return core.NewPosition(px, py), nil
}

// IsValidCoordinate checks if the given coordinates are within the bounds of the board
func IsValidCoordinate(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}

// PositionValidator checks user supplied positions against one board
type PositionValidator struct {
	Width  int
	Height int
}

// NewPositionValidator creates a validator for a width x height board
func NewPositionValidator(width, height int) PositionValidator {
	return PositionValidator{Width: width, Height: height}
}

// Validate returns core.ErrOutOfBounds unless p is on the board
func (v PositionValidator) Validate(p core.Position) error {
	if !IsValidCoordinate(p.X, p.Y, v.Width, v.Height) {
		return fmt.Errorf("%s on %dx%d board: %w", p, v.Width, v.Height, core.ErrOutOfBounds)
	}
	return nil
}

// Parse parses and validates a position in one step
func (v PositionValidator) Parse(x, y string) (core.Position, error) {
	p, err := ParsePosition(x, y)
	if err != nil {
		return core.Position{}, err
	}
	if err := v.Validate(p); err != nil {
		return core.Position{}, err
	}
	return p, nil
}

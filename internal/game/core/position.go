package core

import "fmt"

// Position identifies a cell on the board. X selects the column and Y the row,
// both 0-indexed. Positions are plain values and can be used as map keys.
type Position struct {
	X, Y int
}

// NewPosition creates a position from x and y
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// FromIndex creates a position from a board array index using row-major ordering
func FromIndex(idx, width int) Position {
	return Position{
		X: idx % width,
		Y: idx / width,
	}
}

// ToIndex converts the position to a board array index using row-major ordering
func (p Position) ToIndex(width int) int {
	return p.Y*width + p.X
}

// IsValid checks if the position lies within [0,width) x [0,height)
func (p Position) IsValid(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Compare orders positions by X, then by Y. It returns -1, 0 or +1.
func (p Position) Compare(other Position) int {
	switch {
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	default:
		return 0
	}
}

// Neighbors returns the eight surrounding positions, column by column.
// Some of them may be off the board.
func (p Position) Neighbors() []Position {
	out := make([]Position, 0, 8)
	for x := p.X - 1; x <= p.X+1; x++ {
		for y := p.Y - 1; y <= p.Y+1; y++ {
			if x == p.X && y == p.Y {
				continue
			}
			out = append(out, Position{X: x, Y: y})
		}
	}
	return out
}

// ValidNeighbors returns only the neighbors that are within the given bounds.
// Corners have 3, edges 5 and interior positions 8.
func (p Position) ValidNeighbors(width, height int) []Position {
	neighbors := p.Neighbors()
	valid := neighbors[:0]

	for _, n := range neighbors {
		if n.IsValid(width, height) {
			valid = append(valid, n)
		}
	}

	return valid
}

// String returns the position as [x,y]
func (p Position) String() string {
	return fmt.Sprintf("[%d,%d]", p.X, p.Y)
}

package core

import "fmt"

// MineAdjacency is the adjacent-mine count reported for a cell that is itself a mine.
const MineAdjacency = -1

// Cell is a single board slot.
// The mine flag is fixed at construction; revealed only ever goes from false to true.
type Cell struct {
	pos       Position
	mine      bool
	revealed  bool
	neighbors []int // indices into the owning board's cell slice
}

// NewSafeCell creates a cell without a mine
func NewSafeCell(pos Position) Cell {
	return Cell{pos: pos}
}

// NewMineCell creates a black hole
func NewMineCell(pos Position) Cell {
	return Cell{pos: pos, mine: true}
}

func (c *Cell) Position() Position { return c.pos }
func (c *Cell) IsMine() bool       { return c.mine }
func (c *Cell) IsRevealed() bool   { return c.revealed }

// Neighbors returns the board indices of the adjacent cells
func (c *Cell) Neighbors() []int {
	out := make([]int, len(c.neighbors))
	copy(out, c.neighbors)
	return out
}

// NeighborCount returns how many cells border this one
func (c *Cell) NeighborCount() int { return len(c.neighbors) }

func (c *Cell) addNeighbors(idx ...int) {
	c.neighbors = append(c.neighbors, idx...)
}

// open marks the cell revealed. It returns false if the cell was already open.
func (c *Cell) open() bool {
	if c.revealed {
		return false
	}
	c.revealed = true
	return true
}

// CellView is a read-only snapshot of a cell used for reporting.
type CellView struct {
	Position      Position
	Mine          bool
	Revealed      bool
	AdjacentMines int // MineAdjacency when Mine is true
}

// String renders the cell the way the game reports it to players
func (v CellView) String() string {
	if v.Mine {
		return fmt.Sprintf("Cell: %s. BLACK HOLE!", v.Position)
	}
	return fmt.Sprintf("Cell: %s. Adjacent black holes: %d", v.Position, v.AdjacentMines)
}

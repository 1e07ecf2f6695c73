package core

import "fmt"

// Board owns every cell of a game and the set of revealed cells.
type Board struct {
	W, H     int
	cells    []Cell // length = W*H (row-major)
	mines    []int  // indices of mine cells, in placement order
	revealed revealedSet
}

// RevealResult describes the outcome of a single Reveal call.
type RevealResult struct {
	Cell     CellView   // the cell that was asked for
	WasMine  bool       // the requested cell is a black hole
	Victory  bool       // every safe cell is now open
	Revealed []CellView // all open cells, ascending X then Y
	Newly    int        // cells opened by this call
}

// NewBoard builds a width x height board with black holes at the given positions
// and wires up every cell's neighbors.
func NewBoard(w, h int, mines []Position) (*Board, error) {
	if err := ValidateConfig(w, h, len(mines)); err != nil {
		return nil, err
	}

	b := &Board{
		W:        w,
		H:        h,
		cells:    make([]Cell, w*h),
		mines:    make([]int, 0, len(mines)),
		revealed: newRevealedSet(w, h),
	}

	isMine := make([]bool, w*h)
	for _, p := range mines {
		if !p.IsValid(w, h) {
			return nil, &ConfigError{Width: w, Height: h, Mines: len(mines), Err: fmt.Errorf("%w: %s", ErrMineOutOfBounds, p)}
		}
		idx := p.ToIndex(w)
		if isMine[idx] {
			return nil, &ConfigError{Width: w, Height: h, Mines: len(mines), Err: fmt.Errorf("%w: %s", ErrDuplicateMine, p)}
		}
		isMine[idx] = true
		b.mines = append(b.mines, idx)
	}

	for i := range b.cells {
		p := FromIndex(i, w)
		if isMine[i] {
			b.cells[i] = NewMineCell(p)
		} else {
			b.cells[i] = NewSafeCell(p)
		}
	}

	// Neighbors can only be bound once every cell exists
	for i := range b.cells {
		c := &b.cells[i]
		for _, n := range c.pos.ValidNeighbors(w, h) {
			c.addNeighbors(n.ToIndex(w))
		}
	}

	return b, nil
}

func (b *Board) Idx(p Position) int       { return p.ToIndex(b.W) }
func (b *Board) InBounds(p Position) bool { return p.IsValid(b.W, b.H) }
func (b *Board) TotalCells() int          { return len(b.cells) }
func (b *Board) MineCount() int           { return len(b.mines) }
func (b *Board) RevealedCount() int       { return b.revealed.len() }

// Cell returns a copy of the cell at p. p must be on the board.
func (b *Board) Cell(p Position) Cell {
	return b.cells[b.mustIdx(p)]
}

// Mines returns the black hole positions in placement order
func (b *Board) Mines() []Position {
	out := make([]Position, len(b.mines))
	for i, idx := range b.mines {
		out[i] = b.cells[idx].pos
	}
	return out
}

// AdjacentMines counts the black holes around p, or MineAdjacency if p is one.
func (b *Board) AdjacentMines(p Position) int {
	return b.adjacentMines(b.mustIdx(p))
}

func (b *Board) adjacentMines(idx int) int {
	c := &b.cells[idx]
	if c.mine {
		return MineAdjacency
	}
	n := 0
	for _, ni := range c.neighbors {
		if b.cells[ni].mine {
			n++
		}
	}
	return n
}

// View returns a reporting snapshot of the cell at p
func (b *Board) View(p Position) CellView {
	return b.view(b.mustIdx(p))
}

func (b *Board) view(idx int) CellView {
	c := &b.cells[idx]
	return CellView{
		Position:      c.pos,
		Mine:          c.mine,
		Revealed:      c.revealed,
		AdjacentMines: b.adjacentMines(idx),
	}
}

// Revealed returns every open cell, ordered by X then Y
func (b *Board) Revealed() []CellView {
	order := b.revealed.ordered()
	out := make([]CellView, len(order))
	for i, idx := range order {
		out[i] = b.view(idx)
	}
	return out
}

// IsVictory reports whether only black holes remain closed
func (b *Board) IsVictory() bool {
	return !b.Exploded() && b.TotalCells()-b.RevealedCount() == b.MineCount()
}

// Exploded reports whether any black hole has been opened
func (b *Board) Exploded() bool {
	for _, idx := range b.mines {
		if b.cells[idx].revealed {
			return true
		}
	}
	return false
}

// Reveal opens the cell at p. A cell without adjacent black holes opens its
// safe neighbors, and so on outward. Opening a black hole opens every other
// black hole as well. Revealing an open cell changes nothing.
//
// p must be on the board; callers validate input before calling.
func (b *Board) Reveal(p Position) RevealResult {
	idx := b.mustIdx(p)
	before := b.revealed.len()

	wasMine := b.revealCell(idx)
	if wasMine {
		b.revealAllMines()
	}

	return RevealResult{
		Cell:     b.view(idx),
		WasMine:  wasMine,
		Victory:  b.IsVictory(),
		Revealed: b.Revealed(),
		Newly:    b.revealed.len() - before,
	}
}

// revealCell opens the cell at idx and floods through zero-adjacency cells.
// It returns whether the cell at idx is a black hole.
func (b *Board) revealCell(idx int) bool {
	start := &b.cells[idx]
	if start.revealed {
		return start.mine
	}

	b.markRevealed(idx)
	stack := []int{idx}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := &b.cells[cur]
		if c.mine || b.adjacentMines(cur) != 0 {
			continue
		}

		for _, ni := range c.neighbors {
			n := &b.cells[ni]
			if n.mine || n.revealed {
				continue
			}
			b.markRevealed(ni)
			stack = append(stack, ni)
		}
	}

	return start.mine
}

func (b *Board) markRevealed(idx int) {
	b.cells[idx].open()
	if !b.revealed.contains(idx) {
		b.revealed.add(idx)
	}
}

// revealAllMines opens every black hole. Mines never cascade.
func (b *Board) revealAllMines() {
	for _, idx := range b.mines {
		b.revealCell(idx)
	}
}

func (b *Board) mustIdx(p Position) int {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("core: position %s outside %dx%d board", p, b.W, b.H))
	}
	return b.Idx(p)
}

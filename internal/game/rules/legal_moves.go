package rules

import "github.com/mitchelldurbincs/proxx/internal/game/core"

// LegalRevealCalculator computes which cells can still be revealed
type LegalRevealCalculator struct{}

// NewLegalRevealCalculator creates a new legal reveal calculator
func NewLegalRevealCalculator() *LegalRevealCalculator {
	return &LegalRevealCalculator{}
}

// GetLegalRevealMask returns a row-major mask with one entry per cell,
// true where the cell is still closed. Once a black hole is open every
// entry is false.
func (lrc *LegalRevealCalculator) GetLegalRevealMask(board *core.Board) []bool {
	mask := make([]bool, board.TotalCells())
	if board.Exploded() {
		return mask
	}

	for i := range mask {
		cell := board.Cell(core.FromIndex(i, board.W))
		mask[i] = !cell.IsRevealed()
	}
	return mask
}

// LegalReveals lists the closed cells in ascending X then Y order
func (lrc *LegalRevealCalculator) LegalReveals(board *core.Board) []core.Position {
	mask := lrc.GetLegalRevealMask(board)

	var reveals []core.Position
	for x := 0; x < board.W; x++ {
		for y := 0; y < board.H; y++ {
			p := core.Position{X: x, Y: y}
			if mask[board.Idx(p)] {
				reveals = append(reveals, p)
			}
		}
	}
	return reveals
}

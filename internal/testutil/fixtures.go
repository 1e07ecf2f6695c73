package testutil

import (
	"strings"
	"testing"

	"github.com/mitchelldurbincs/proxx/internal/game/core"
)

// ParseLayout reads a board drawn one row per string, '*' for a black hole
// and any other rune for a safe cell. Spaces are ignored, so ". * ." and
// ".*." describe the same row.
func ParseLayout(rows ...string) (width, height int, mines []core.Position) {
	height = len(rows)
	for y, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) > width {
			width = len(row)
		}
		for x, r := range row {
			if r == '*' {
				mines = append(mines, core.Position{X: x, Y: y})
			}
		}
	}
	return width, height, mines
}

// MustBoard builds a board from a layout and fails the test on error
func MustBoard(t *testing.T, rows ...string) *core.Board {
	t.Helper()
	w, h, mines := ParseLayout(rows...)
	b, err := core.NewBoard(w, h, mines)
	if err != nil {
		t.Fatalf("building %dx%d test board: %v", w, h, err)
	}
	return b
}

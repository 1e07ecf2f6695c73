package game

import (
	"strings"

	"github.com/mitchelldurbincs/proxx/internal/game/core"
)

// This file contains all board rendering functionality for the game engine.

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"

	BgRed = "\033[41m"
)

const (
	HiddenSymbol    = "■"
	EmptySymbol     = "·"
	BlackHoleSymbol = "●"
)

// adjacencyColors is indexed by the number of adjacent black holes
var adjacencyColors = []string{ColorGray, ColorBlue, ColorGreen, ColorRed, ColorPurple, ColorYellow, ColorCyan, ColorWhite, ColorWhite}

// Render returns the board as a colored grid with column and row headers.
// Closed cells are hidden unless revealAll is set.
func (e *Engine) Render(revealAll bool) string {
	return RenderBoard(e.board, revealAll, true)
}

// RenderBoard draws b. Without color no ANSI codes are written.
func RenderBoard(b *core.Board, revealAll, color bool) string {
	width := b.W
	height := b.H
	estimatedSize := (width*14+10)*(height+3) + 100

	var sb strings.Builder
	sb.Grow(estimatedSize)

	// Header row
	sb.WriteString("   ")
	for x := 0; x < width; x++ {
		sb.WriteString(core.IntToStringFixedWidth(x, 3))
	}
	sb.WriteString("\n")

	for y := 0; y < height; y++ {
		sb.WriteString(core.IntToStringFixedWidth(y, 2))
		sb.WriteString(" ")
		for x := 0; x < width; x++ {
			writeCell(&sb, b.View(core.Position{X: x, Y: y}), revealAll, color)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(HiddenSymbol)
	sb.WriteString("=closed ")
	sb.WriteString(EmptySymbol)
	sb.WriteString("=empty ")
	sb.WriteString(BlackHoleSymbol)
	sb.WriteString("=black hole 1-8=adjacent black holes\n")

	return sb.String()
}

// writeCell writes a three column cell directly to the builder
func writeCell(sb *strings.Builder, v core.CellView, revealAll, color bool) {
	sb.WriteString("  ")

	switch {
	case !v.Revealed && !revealAll:
		writeColored(sb, ColorWhite, HiddenSymbol, color)
	case v.Mine && v.Revealed:
		writeColored(sb, BgRed, BlackHoleSymbol, color)
	case v.Mine:
		writeColored(sb, ColorRed, BlackHoleSymbol, color)
	case v.AdjacentMines == 0:
		writeColored(sb, ColorGray, EmptySymbol, color)
	default:
		writeColored(sb, adjacencyColors[v.AdjacentMines], core.IntToStringFixedWidth(v.AdjacentMines, 1), color)
	}
}

func writeColored(sb *strings.Builder, c, symbol string, color bool) {
	if !color {
		sb.WriteString(symbol)
		return
	}
	sb.WriteString(c)
	sb.WriteString(symbol)
	sb.WriteString(ColorReset)
}

// FormatCellStates lists every open cell, one tab-indented line each, after
// a "Cell states:" heading.
func FormatCellStates(cells []core.CellView) string {
	var sb strings.Builder
	sb.WriteString("Cell states:\n")
	for _, c := range cells {
		sb.WriteString("\t")
		sb.WriteString(c.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

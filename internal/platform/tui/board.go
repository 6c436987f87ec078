package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Board layout in screen cells. Each grid cell is two columns wide.
const (
	cellW        = 2
	wellW        = tetris.Width*cellW + 2
	wellH        = tetris.Height + 2
	sidebarGap   = 2
	sidebarW     = 16
	BoardWidth   = wellW + sidebarGap + sidebarW
	BoardHeight  = wellH
	lockedColor  = core.ColorGray
	borderColor  = core.ColorBrightWhite
	blockGlyph   = '█'
	emptyGlyph   = '·'
	previewLabel = "NEXT"
)

// kindColors gives each piece kind its own color.
var kindColors = map[tetris.Kind]core.Color{
	tetris.KindI: core.ColorCyan,
	tetris.KindS: core.ColorGreen,
	tetris.KindZ: core.ColorRed,
	tetris.KindL: core.ColorOrange,
	tetris.KindJ: core.ColorBlue,
	tetris.KindO: core.ColorYellow,
	tetris.KindT: core.ColorMagenta,
}

// KindColor returns the display color of a piece kind.
func KindColor(k tetris.Kind) core.Color {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return core.ColorDefault
}

// DrawBoard renders a snapshot into the screen with the well's top-left
// corner at (ox, oy). Locked cells are gray; the falling piece keeps its
// kind's color.
func DrawBoard(s *core.Screen, snap tetris.Snapshot, ox, oy int) {
	well := core.NewRect(ox, oy, wellW, wellH)
	s.DrawBox(well, borderColor)
	inner := well.Inset(1)

	falling := make(map[tetris.Point]bool, len(snap.Falling))
	for _, p := range snap.Falling {
		falling[p] = true
	}

	for y := range tetris.Height {
		for x := range tetris.Width {
			sx, sy := inner.X+x*cellW, inner.Y+y
			switch {
			case falling[tetris.Point{X: x, Y: y}]:
				drawBlock(s, sx, sy, KindColor(snap.Current))
			case snap.Board.Filled(x, y):
				drawBlock(s, sx, sy, lockedColor)
			default:
				s.SetColored(sx, sy, ' ', core.ColorDefault)
				s.SetColored(sx+1, sy, emptyGlyph, core.ColorGray)
			}
		}
	}

	drawSidebar(s, snap, well.Right()+sidebarGap, oy)
	drawOverlay(s, snap, well)
}

func drawBlock(s *core.Screen, x, y int, c core.Color) {
	for i := range cellW {
		s.SetColored(x+i, y, blockGlyph, c)
	}
}

func drawSidebar(s *core.Screen, snap tetris.Snapshot, x, y int) {
	s.DrawTextColored(x, y, previewLabel, core.ColorBrightWhite)

	s.FillRect(core.NewRect(x, y+1, tetris.ShapeSize*cellW, tetris.ShapeSize), ' ')
	color := KindColor(snap.Next)
	for r := range tetris.ShapeSize {
		for c := range tetris.ShapeSize {
			if snap.NextShape[r][c] {
				drawBlock(s, x+c*cellW, y+1+r, color)
			}
		}
	}

	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", snap.Score)},
		{"HIGH", fmt.Sprintf("%d", snap.HighScore)},
		{"LEVEL", fmt.Sprintf("%d", snap.Level)},
		{"LINES", fmt.Sprintf("%d", snap.Lines)},
		{"SPEED", fmt.Sprintf("%dms", snap.Speed.Milliseconds())},
	}
	row := y + tetris.ShapeSize + 2
	for _, st := range stats {
		s.DrawTextColored(x, row, st.label, core.ColorGray)
		s.DrawTextColored(x+7, row, fmt.Sprintf("%-8s", st.value), core.ColorBrightWhite)
		row += 2
	}
}

// drawOverlay prints the state banner across the middle of the well.
func drawOverlay(s *core.Screen, snap tetris.Snapshot, well core.Rect) {
	var lines []string
	switch {
	case snap.Phase == tetris.PhaseInitializing:
		lines = []string{"PRESS ENTER", "TO START"}
	case snap.GameOver:
		lines = []string{"GAME OVER", "ENTER: again", "B: menu"}
	case snap.Paused:
		lines = []string{"PAUSED", "P: resume", "B: menu"}
	default:
		return
	}

	for i, text := range lines {
		banner := core.NewRect(0, 0, len([]rune(text)), len(lines)).CenterIn(well)
		s.DrawTextColored(banner.X, banner.Y+i, text, core.ColorBrightWhite)
	}
}

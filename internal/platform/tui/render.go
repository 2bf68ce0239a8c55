package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/tetris"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Board layout
const (
	cellWidth  = 2  // Each field cell is drawn as two runes
	panelWidth = 16 // Side panel with preview and counters
	panelGap   = 2
	minHeight  = 19
)

// BoardSize returns the screen size needed to draw a field of the given dimensions.
func BoardSize(fieldH, fieldW int) (w, h int) {
	w = fieldW*cellWidth + 2 + panelGap + panelWidth
	h = fieldH + 2
	if h < minHeight {
		h = minHeight
	}
	return w, h
}

// DrawBoard draws the field, the next-piece preview and the counters of snap.
func DrawBoard(s *core.Screen, snap tetris.Snapshot) {
	fieldH := len(snap.Field)
	fieldW := 0
	if fieldH > 0 {
		fieldW = len(snap.Field[0])
	}

	s.DrawBox(core.NewRect(0, 0, fieldW*cellWidth+2, fieldH+2), core.ColorGray)
	for r, row := range snap.Field {
		for c, v := range row {
			x, y := 1+c*cellWidth, 1+r
			if v != 0 {
				s.DrawTextColored(x, y, "[]", core.ColorCyan)
			} else {
				s.DrawTextColored(x, y, " .", core.ColorGray)
			}
		}
	}

	px := fieldW*cellWidth + 2 + panelGap
	s.DrawTextColored(px, 0, "NEXT", core.ColorWhite)
	s.DrawBox(core.NewRect(px, 1, tetris.PreviewSize*cellWidth+2, tetris.PreviewSize+2), core.ColorGray)
	for i, row := range snap.Next {
		for j, v := range row {
			if v != 0 {
				s.DrawTextColored(px+1+j*cellWidth, 2+i, "[]", core.ColorCyan)
			}
		}
	}

	counters := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", snap.Score)},
		{"HIGH", fmt.Sprintf("%d", snap.HighScore)},
		{"LEVEL", fmt.Sprintf("%d", snap.Level)},
		{"SPEED", fmt.Sprintf("%dms", snap.Speed)},
	}
	y := tetris.PreviewSize + 4
	for _, c := range counters {
		s.DrawTextColored(px, y, c.label, core.ColorWhite)
		s.DrawTextColored(px, y+1, c.value, core.ColorBrightYellow)
		y += 2
	}

	y++
	switch {
	case snap.Pause == tetris.PauseGameOver:
		s.DrawTextColored(px, y, "GAME OVER", core.ColorBrightRed)
		s.DrawTextColored(px, y+1, "enter: again", core.ColorGray)
	case snap.Pause == tetris.PausePaused:
		s.DrawTextColored(px, y, "PAUSED", core.ColorYellow)
	case snap.Phase == tetris.PhaseInitial:
		s.DrawTextColored(px, y, "PRESS ENTER", core.ColorWhite)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

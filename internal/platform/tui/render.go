package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-jumper/internal/core"
)

// colorStyles maps core.Color palette slots to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorWall:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorLava:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorCoin:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorPlayer:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.ColorPlayerLost: lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	core.ColorPlayerWon:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.ColorHUD:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")),
	core.ColorBanner:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	core.ColorDim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// styleFor returns the style of a palette slot, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
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
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

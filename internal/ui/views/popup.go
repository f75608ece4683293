package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopup centers a boxed popup over a greyed-out copy of the main content
func (pr *PopupRenderer) RenderPopup(mainContent, popupContent string, width, height int) string {
	styled := pr.styles.PopupBox.MaxWidth(max(width-4, 10)).Render(popupContent)
	if width <= 0 || height <= 0 {
		return styled
	}

	popupLines := strings.Split(styled, "\n")
	baseLines := strings.Split(desaturateANSI(mainContent), "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	top := max((height-len(popupLines))/2, 0)
	left := max((width-lipgloss.Width(styled))/2, 0)
	pad := strings.Repeat(" ", left)
	for i, line := range popupLines {
		if top+i >= len(baseLines) {
			break
		}
		baseLines[top+i] = pad + line
	}
	return strings.Join(baseLines[:height], "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansiRE.ReplaceAllString(s, ""), "\n")
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = gray.Render(line)
	}
	return strings.Join(lines, "\n")
}

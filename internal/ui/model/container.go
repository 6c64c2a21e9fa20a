package model

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/slidertui/internal/ui/styles"
)

// Container frames content with a titled border. Width and height are the inner content size.
func Container(title string, width int, height int, content string, active bool) string {
	if height <= 0 || width <= 0 {
		return ""
	}

	var base lipgloss.Style
	if active {
		base = styles.ContainerStyleActive
	} else {
		base = styles.ContainerStyle
	}

	outer := width + base.GetHorizontalPadding()

	return base.
		Border(styles.TitleBorder(styles.ContainerBorder, outer, title)).
		Width(outer).
		Height(height).
		Render(content)
}

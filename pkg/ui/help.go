package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpContent holds the compact key reference for each focused pane.
// Content should fit on one screen without scrolling.
var helpContent = map[focus]string{
	focusSidebar: helpSidebar,
	focusPreview: helpPreview,
}

func helpFor(f focus) string {
	if c, ok := helpContent[f]; ok {
		return c
	}
	return helpSidebar
}

// renderHelp renders the key-reference modal for the focused pane.
func renderHelp(f focus, theme Theme, width int) string {
	r := theme.Renderer

	modalWidth := 52
	if modalWidth > width-4 {
		modalWidth = width - 4
	}

	titleStyle := r.NewStyle().
		Bold(true).
		Foreground(theme.Primary)
	contentStyle := r.NewStyle().
		Foreground(theme.Secondary)
	footerStyle := r.NewStyle().
		Foreground(theme.Muted).
		Italic(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Key Reference"))
	b.WriteString("\n")
	b.WriteString(r.NewStyle().Foreground(theme.Muted).Render(strings.Repeat("─", modalWidth-4)))
	b.WriteString("\n\n")
	b.WriteString(contentStyle.Render(helpFor(f)))
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("Esc or ? to close"))

	modalStyle := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Padding(1, 2).
		Width(modalWidth)

	return modalStyle.Render(b.String())
}

const helpSidebar = `Tree

  j/k       Move down/up
  g/G       Jump to top/bottom
  Ctrl+d/u  Page down/up
  Space     Expand or collapse section
  l/h       Expand, or step in/out
  E/C       Expand/collapse everything
  Enter     Open document in preview
  y         Copy document path

Global

  Tab       Switch pane
  q         Quit`

const helpPreview = `Preview

  j/k       Scroll down/up
  d/u       Half page down/up
  g/G       Jump to top/bottom

Global

  Tab       Back to tree
  q         Quit`

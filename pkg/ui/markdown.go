package ui

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders document bodies for the preview pane. It wraps a
// glamour terminal renderer; when construction fails (unusual terminals),
// Render degrades to returning the source unstyled rather than erroring on
// every document.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
	useTheme bool
	theme    *Theme
}

// NewMarkdownRenderer builds a renderer that auto-detects the terminal
// style.
func NewMarkdownRenderer(width int) *MarkdownRenderer {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	return &MarkdownRenderer{renderer: r, width: width}
}

// NewMarkdownRendererWithTheme builds a renderer that follows the sidebar
// theme's light/dark choice instead of auto-detection.
func NewMarkdownRendererWithTheme(width int, theme Theme) *MarkdownRenderer {
	style := "light"
	if theme.Dark {
		style = "dark"
	}
	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	return &MarkdownRenderer{renderer: r, width: width, useTheme: true, theme: &theme}
}

// SetWidth rebuilds the renderer for a new wrap width. Zero, negative and
// unchanged widths are no-ops.
func (m *MarkdownRenderer) SetWidth(width int) {
	if width <= 0 || width == m.width {
		return
	}
	m.width = width
	m.rebuild()
}

// SetWidthWithTheme rebuilds for a new width and switches to themed
// styling.
func (m *MarkdownRenderer) SetWidthWithTheme(width int, theme Theme) {
	m.useTheme = true
	m.theme = &theme
	if width > 0 {
		m.width = width
	}
	m.rebuild()
}

func (m *MarkdownRenderer) rebuild() {
	if m.useTheme && m.theme != nil {
		style := "light"
		if m.theme.Dark {
			style = "dark"
		}
		m.renderer, _ = glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(m.width),
		)
		return
	}
	m.renderer, _ = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.width),
	)
}

// Render renders markdown source for display.
func (m *MarkdownRenderer) Render(src string) (string, error) {
	if m.renderer == nil {
		return src, nil
	}
	out, err := m.renderer.Render(src)
	if err != nil {
		return src, err
	}
	return out, nil
}

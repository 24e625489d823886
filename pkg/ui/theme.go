// Package ui implements the treeline terminal interface: the sidebar widget
// over the navigation engine, the glamour-backed document preview, and the
// Bubble Tea application model that ties them together.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the sidebar palette. Styles are built through the renderer so
// color degradation follows the caller's terminal, which matters in tests
// where no TTY exists.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor // headers, expanded-branch glyphs
	Secondary lipgloss.AdaptiveColor // collapsed-branch glyphs
	Muted     lipgloss.AdaptiveColor // indentation guides, disabled entries
	Highlight lipgloss.AdaptiveColor // the active document

	Selected lipgloss.Style // cursor row
	Dark     bool           // selects the glamour style for previews
}

// DefaultTheme is the adaptive palette used when no theme is configured.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer:  r,
		Primary:   lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"},
		Secondary: lipgloss.AdaptiveColor{Light: "#02A877", Dark: "#2ED3A3"},
		Muted:     lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"},
		Highlight: lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD700"},
		Dark:      r.HasDarkBackground(),
	}
	t.Selected = r.NewStyle().Reverse(true)
	return t
}

// ThemeByName maps the config theme names onto a palette: "dark", "light",
// or anything else for terminal auto-detection.
func ThemeByName(name string, r *lipgloss.Renderer) Theme {
	t := DefaultTheme(r)
	switch name {
	case "dark":
		t.Dark = true
	case "light":
		t.Dark = false
	}
	return t
}

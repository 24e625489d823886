package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/treeline-sh/treeline/pkg/content"
)

type focus int

const (
	focusSidebar focus = iota
	focusPreview
)

// RescanMsg delivers a fresh scan result, typically from the content
// watcher. The model swaps the forest and keeps navigation state.
type RescanMsg struct {
	Result *content.Result
}

// Model is the Bubble Tea application: sidebar on the left, document
// preview on the right.
type Model struct {
	sidebar  *Sidebar
	viewport viewport.Model
	markdown *MarkdownRenderer
	theme    Theme

	warnings []content.Warning
	status   string

	focused  focus
	showHelp bool
	ready    bool
	width    int
	height   int
}

// NewModel builds the application around a prepared sidebar.
func NewModel(theme Theme, sidebar *Sidebar, warnings []content.Warning) Model {
	return Model{
		sidebar:  sidebar,
		markdown: NewMarkdownRendererWithTheme(80, theme),
		theme:    theme,
		warnings: warnings,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "esc":
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}
		case "tab":
			if m.focused == focusSidebar {
				m.focused = focusPreview
			} else {
				m.focused = focusSidebar
			}
			return m, nil
		}

		if m.showHelp {
			return m, nil
		}

		if m.focused == focusPreview {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "j", "down":
			m.sidebar.MoveDown()
		case "k", "up":
			m.sidebar.MoveUp()
		case "g":
			m.sidebar.JumpToTop()
		case "G":
			m.sidebar.JumpToBottom()
		case "ctrl+d":
			m.sidebar.PageDown()
		case "ctrl+u":
			m.sidebar.PageUp()
		case " ", "space":
			m.sidebar.ToggleSelected()
		case "l", "right":
			m.sidebar.ExpandOrMoveToChild()
		case "h", "left":
			m.sidebar.CollapseOrJumpToParent()
		case "E":
			m.sidebar.ExpandAll()
		case "C":
			m.sidebar.CollapseAll()
		case "enter":
			m.sidebar.ActivateSelected()
			m.updatePreview()
		case "y":
			if doc := m.sidebar.SelectedDoc(); doc != nil {
				if err := clipboard.WriteAll(doc.Path); err != nil {
					m.status = "yank failed: no clipboard available"
				} else {
					m.status = "yanked " + doc.Path
				}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		sidebarWidth := msg.Width / 3
		if sidebarWidth < 24 {
			sidebarWidth = 24
		}
		previewWidth := msg.Width - sidebarWidth - 2
		availHeight := msg.Height - 1 // status bar

		m.sidebar.SetSize(sidebarWidth, availHeight)
		m.viewport = viewport.New(previewWidth, availHeight)
		m.markdown.SetWidthWithTheme(previewWidth, m.theme)
		m.updatePreview()

	case RescanMsg:
		if msg.Result != nil {
			m.sidebar.SetRoots(msg.Result.Roots...)
			m.warnings = msg.Result.Warnings
			m.status = fmt.Sprintf("rescanned: %d rows", m.sidebar.RowCount())
			m.updatePreview()
		}
	}

	return m, tea.Batch(cmds...)
}

// updatePreview renders the cursor's document into the viewport.
func (m *Model) updatePreview() {
	doc := m.sidebar.SelectedDoc()
	if doc == nil {
		return
	}
	out, err := m.markdown.Render(doc.Body)
	if err != nil {
		out = doc.Body
	}
	m.viewport.SetContent(out)
	m.viewport.GotoTop()
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.showHelp {
		modal := renderHelp(m.focused, m.theme, m.width)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.sidebar.View(),
		"  ",
		m.viewport.View(),
	)
	return body + "\n" + m.statusBar()
}

func (m Model) statusBar() string {
	r := m.theme.Renderer
	muted := r.NewStyle().Foreground(m.theme.Muted)

	left := m.status
	if left == "" {
		if doc := m.sidebar.SelectedDoc(); doc != nil {
			left = doc.Path
		}
	}
	right := ""
	if n := len(m.warnings); n > 0 {
		right = fmt.Sprintf("  %d warning(s)", n)
	}
	return muted.Render(left + right)
}

package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/treeline-sh/treeline/pkg/content"
	"github.com/treeline-sh/treeline/pkg/nav"
)

// Sidebar is the tree-navigation widget. It owns a nav.Engine in
// uncontrolled mode, keeps a cursor over the visible rows, and re-walks the
// engine after every mutation so the row list always matches reconciler
// state.
type Sidebar struct {
	engine *nav.Engine
	theme  Theme
	render nav.RenderFunc

	rows   []nav.Context // visible contexts from the latest walk
	cursor int
	offset int // first row in view
	width  int
	height int

	// Persistence: defaults capture each branch's state right after
	// construction so only explicit deviations are saved. An empty stateDir
	// disables persistence.
	defaults map[string]bool
	stateDir string
}

// NewSidebar wraps an engine. The engine's expansion and selection should be
// uncontrolled; the sidebar mutates state through walk contexts only.
func NewSidebar(theme Theme, engine *nav.Engine) *Sidebar {
	s := &Sidebar{
		engine:   engine,
		theme:    theme,
		defaults: branchState(engine),
	}
	s.render = s.renderRow
	s.refresh()
	return s
}

// branchState snapshots every branch id's current expansion.
func branchState(e *nav.Engine) map[string]bool {
	state := make(map[string]bool)
	var walk func(nav.Node)
	walk = func(n nav.Node) {
		b, ok := n.(*nav.Branch)
		if !ok {
			return
		}
		state[b.ID] = e.IsExpanded(b.ID)
		for _, child := range b.Children {
			walk(child)
		}
	}
	for _, root := range e.Roots() {
		walk(root)
	}
	return state
}

// SetStateDir enables expansion persistence under dir (the .treeline
// directory) and loads any previously saved state.
func (s *Sidebar) SetStateDir(dir string) {
	s.stateDir = dir
	s.loadState()
	s.refresh()
}

// SetRenderFunc swaps the per-row render function; nil restores the
// default.
func (s *Sidebar) SetRenderFunc(fn nav.RenderFunc) {
	if fn == nil {
		fn = s.renderRow
	}
	s.render = fn
}

// SetSize updates the viewport dimensions.
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.scrollIntoView()
}

// SetRoots swaps the forest (after a rescan) and re-walks. Surviving ids
// keep their state; the cursor tries to stay on the same node.
func (s *Sidebar) SetRoots(roots ...nav.Node) {
	var keep string
	if c, ok := s.Selected(); ok {
		keep = nav.ID(c.Node)
	}
	s.engine.SetRoots(roots...)
	for id, expanded := range branchState(s.engine) {
		if _, known := s.defaults[id]; !known {
			s.defaults[id] = expanded
		}
	}
	s.refresh()
	if keep != "" {
		s.SelectByID(keep)
	}
}

// refresh re-walks the engine and persists any expansion deviations.
func (s *Sidebar) refresh() {
	s.rows = s.engine.Contexts()
	if s.cursor >= len(s.rows) {
		s.cursor = len(s.rows) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	s.scrollIntoView()
	s.saveState()
}

// Rows returns the visible contexts from the latest walk.
func (s *Sidebar) Rows() []nav.Context { return s.rows }

// Selected returns the context under the cursor.
func (s *Sidebar) Selected() (nav.Context, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nav.Context{}, false
	}
	return s.rows[s.cursor], true
}

// SelectedDoc returns the document under the cursor, nil for branches.
func (s *Sidebar) SelectedDoc() *content.Doc {
	c, ok := s.Selected()
	if !ok {
		return nil
	}
	leaf, ok := c.Node.(*nav.Leaf)
	if !ok {
		return nil
	}
	doc, _ := leaf.Payload.(*content.Doc)
	return doc
}

// SelectByID moves the cursor to the row showing id. Returns false when the
// id is not visible.
func (s *Sidebar) SelectByID(id string) bool {
	for i, c := range s.rows {
		if nav.ID(c.Node) == id {
			s.cursor = i
			s.scrollIntoView()
			return true
		}
	}
	return false
}

// MoveDown moves the cursor one row down.
func (s *Sidebar) MoveDown() {
	if s.cursor < len(s.rows)-1 {
		s.cursor++
		s.scrollIntoView()
	}
}

// MoveUp moves the cursor one row up.
func (s *Sidebar) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
		s.scrollIntoView()
	}
}

// JumpToTop moves the cursor to the first row.
func (s *Sidebar) JumpToTop() {
	s.cursor = 0
	s.scrollIntoView()
}

// JumpToBottom moves the cursor to the last row.
func (s *Sidebar) JumpToBottom() {
	if len(s.rows) > 0 {
		s.cursor = len(s.rows) - 1
	}
	s.scrollIntoView()
}

// PageDown moves the cursor down by half a viewport.
func (s *Sidebar) PageDown() {
	s.cursor += s.pageSize()
	if s.cursor >= len(s.rows) {
		s.cursor = len(s.rows) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	s.scrollIntoView()
}

// PageUp moves the cursor up by half a viewport.
func (s *Sidebar) PageUp() {
	s.cursor -= s.pageSize()
	if s.cursor < 0 {
		s.cursor = 0
	}
	s.scrollIntoView()
}

func (s *Sidebar) pageSize() int {
	size := s.height / 2
	if size < 1 {
		size = 5
	}
	return size
}

// ToggleSelected expands or collapses the branch under the cursor. A leaf
// cursor is a no-op; the context's kind guard handles it.
func (s *Sidebar) ToggleSelected() {
	if c, ok := s.Selected(); ok {
		c.Toggle()
		s.refresh()
	}
}

// ActivateSelected makes the node under the cursor the active document.
func (s *Sidebar) ActivateSelected() {
	if c, ok := s.Selected(); ok {
		c.Activate()
		s.refresh()
	}
}

// ExpandOrMoveToChild handles the → / l key: expand a collapsed branch,
// descend into an expanded one, do nothing on leaves.
func (s *Sidebar) ExpandOrMoveToChild() {
	c, ok := s.Selected()
	if !ok || !c.HasChildren {
		return
	}
	if !c.Expanded {
		c.SetExpanded(true)
		s.refresh()
		return
	}
	// The first child, when visible, is the next row one level deeper.
	if s.cursor+1 < len(s.rows) && s.rows[s.cursor+1].Depth == c.Depth+1 {
		s.cursor++
		s.scrollIntoView()
	}
}

// CollapseOrJumpToParent handles the ← / h key: collapse an expanded
// branch, otherwise jump to the parent row.
func (s *Sidebar) CollapseOrJumpToParent() {
	c, ok := s.Selected()
	if !ok {
		return
	}
	if c.HasChildren && c.Expanded {
		c.SetExpanded(false)
		s.refresh()
		return
	}
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].Depth == c.Depth-1 {
			s.cursor = i
			s.scrollIntoView()
			return
		}
	}
}

// ExpandAll expands every branch.
func (s *Sidebar) ExpandAll() {
	s.engine.ExpandAll()
	s.refresh()
}

// CollapseAll collapses every branch.
func (s *Sidebar) CollapseAll() {
	s.engine.CollapseAll()
	s.refresh()
}

// RowCount returns the number of visible rows.
func (s *Sidebar) RowCount() int { return len(s.rows) }

func (s *Sidebar) scrollIntoView() {
	if s.height <= 0 {
		s.offset = 0
		return
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+s.height {
		s.offset = s.cursor - s.height + 1
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

// View renders the visible slice of rows, cursor row highlighted.
func (s *Sidebar) View() string {
	if len(s.rows) == 0 {
		return s.renderEmptyState()
	}

	end := len(s.rows)
	if s.height > 0 && s.offset+s.height < end {
		end = s.offset + s.height
	}

	var sb strings.Builder
	for i := s.offset; i < end; i++ {
		line := s.render(s.rows[i])
		if i == s.cursor {
			line = s.theme.Selected.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (s *Sidebar) renderEmptyState() string {
	r := s.theme.Renderer
	muted := r.NewStyle().Foreground(s.theme.Muted)

	var sb strings.Builder
	sb.WriteString(r.NewStyle().Foreground(s.theme.Primary).Bold(true).Render("treeline"))
	sb.WriteString("\n\n")
	sb.WriteString(muted.Render("No documents found."))
	sb.WriteString("\n")
	sb.WriteString(muted.Render("Add markdown files with slug and title front matter."))
	return sb.String()
}

// renderRow is the default per-row render function: indentation by depth,
// an expansion glyph, the icon and name, active and disabled styling.
func (s *Sidebar) renderRow(c nav.Context) string {
	r := s.theme.Renderer
	var sb strings.Builder

	sb.WriteString(strings.Repeat("  ", c.Depth))

	glyphStyle := r.NewStyle().Foreground(s.theme.Secondary)
	switch {
	case !c.HasChildren:
		sb.WriteString(glyphStyle.Render("•"))
	case c.Expanded:
		sb.WriteString(r.NewStyle().Foreground(s.theme.Primary).Render("▾"))
	default:
		sb.WriteString(glyphStyle.Render("▸"))
	}
	sb.WriteString(" ")

	if icon := nav.Icon(c.Node); icon != "" {
		sb.WriteString(icon)
		sb.WriteString(" ")
	}

	name := nav.Name(c.Node)
	if s.width > 0 {
		avail := s.width - runewidth.StringWidth(sb.String())
		if avail < 4 {
			avail = 4
		}
		name = runewidth.Truncate(name, avail, "…")
	}

	switch {
	case c.Active:
		sb.WriteString(r.NewStyle().Foreground(s.theme.Highlight).Bold(true).Render(name))
	case nav.Disabled(c.Node):
		sb.WriteString(r.NewStyle().Foreground(s.theme.Muted).Render(name))
	default:
		sb.WriteString(name)
	}
	return sb.String()
}

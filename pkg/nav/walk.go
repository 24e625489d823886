package nav

import (
	"strings"
)

// Context is the self-contained bundle handed to the render function for
// every visited node. It carries the node, its position in the forest, its
// current state, and the mutators that feed interaction back into the
// engine, so a render function never needs to track ancestor state itself.
//
// A Context is only valid when produced by an engine walk; calling a mutator
// on a zero Context panics.
type Context struct {
	Node     Node
	Depth    int // root nodes are depth 0
	Index    int // position among siblings
	Siblings int // size of the sibling list, roots included
	IsFirst  bool
	IsLast   bool

	// Expanded is always false for leaves. HasChildren is true iff the node
	// is a branch with at least one child.
	Expanded    bool
	Active      bool
	HasChildren bool

	engine *Engine
	branch *Branch // nil for leaves; kind is resolved once, here
}

// RenderFunc turns one node's context into its visual representation. It
// must go through the Context mutators for interaction; there is no other
// path into the reconcilers.
type RenderFunc func(Context) string

func (c Context) checkEngine() {
	if c.engine == nil {
		panic("nav: Context mutators require a Context produced by an engine walk")
	}
}

// Toggle flips this node's expansion. A no-op for leaves. On branches it
// updates the expansion reconciler and fires the engine's OnToggle callback
// with the resulting state; the callback fires in controlled mode too, since
// there it is the external owner's only notification.
func (c Context) Toggle() {
	c.checkEngine()
	if c.branch == nil {
		return
	}
	next := c.engine.expand.Toggle(c.branch.ID)
	if c.engine.onToggle != nil {
		c.engine.onToggle(c.branch, next)
	}
}

// SetExpanded sets this node's expansion explicitly. A no-op for leaves, and
// idempotent on branches: when the state already matches, nothing happens
// and no callback fires.
func (c Context) SetExpanded(expanded bool) {
	c.checkEngine()
	if c.branch == nil {
		return
	}
	if !c.engine.expand.SetExpanded(c.branch.ID, expanded) {
		return
	}
	if c.engine.onToggle != nil {
		c.engine.onToggle(c.branch, expanded)
	}
}

// Activate makes this node the current one. A no-op when the node is
// disabled; that guard lives here, not in the reconciler, so direct
// reconciler calls can still activate disabled ids. Fires the engine's
// OnActivate callback even when the node was already active.
func (c Context) Activate() {
	c.checkEngine()
	if Disabled(c.Node) {
		return
	}
	c.engine.active.SetActive(ID(c.Node))
	if c.engine.onActivate != nil {
		c.engine.onActivate(c.Node)
	}
}

// walk visits n and, when n is an expanded branch, its children, in
// pre-order. Depth, index and sibling count are threaded down the recursion
// rather than re-derived from ancestors. Collapsed subtrees are never
// entered, which bounds a pass to the visible nodes.
func (e *Engine) walk(n Node, depth, index, siblings int, visit func(Context)) {
	ctx := e.contextFor(n, depth, index, siblings)
	visit(ctx)
	if ctx.branch == nil || !ctx.Expanded {
		return
	}
	for i, child := range ctx.branch.Children {
		e.walk(child, depth+1, i, len(ctx.branch.Children), visit)
	}
}

func (e *Engine) contextFor(n Node, depth, index, siblings int) Context {
	branch, _ := n.(*Branch)
	expanded := false
	hasChildren := false
	if branch != nil {
		expanded = e.expand.IsExpanded(branch.ID)
		hasChildren = len(branch.Children) > 0
	}
	return Context{
		Node:        n,
		Depth:       depth,
		Index:       index,
		Siblings:    siblings,
		IsFirst:     index == 0,
		IsLast:      index == siblings-1,
		Expanded:    expanded,
		Active:      e.active.IsActive(ID(n)),
		HasChildren: hasChildren,
		engine:      e,
		branch:      branch,
	}
}

// DefaultRender is the fallback render function: two-space indentation per
// level, an expansion glyph, and the node name. Callers with real styling
// needs supply their own RenderFunc; this one exists so an engine renders
// something useful out of the box.
func DefaultRender(c Context) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", c.Depth))
	switch {
	case !c.HasChildren:
		sb.WriteString("• ")
	case c.Expanded:
		sb.WriteString("▾ ")
	default:
		sb.WriteString("▸ ")
	}
	if Icon(c.Node) != "" {
		sb.WriteString(Icon(c.Node))
		sb.WriteString(" ")
	}
	sb.WriteString(Name(c.Node))
	if c.Active {
		sb.WriteString(" *")
	}
	return sb.String()
}

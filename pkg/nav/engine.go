package nav

import "strings"

// Options configures an Engine. The two reconcilers are configured
// independently; see ExpandOptions and ActiveOptions for the
// controlled/uncontrolled rules.
type Options struct {
	Expand ExpandOptions
	Active ActiveOptions

	// OnToggle fires after every successful expansion change with the branch
	// and its new state. OnActivate fires on every activation, including
	// re-activating the current node. Both are optional and synchronous.
	OnToggle   func(*Branch, bool)
	OnActivate func(Node)

	// Render is the per-pass default used by Render; nil falls back to
	// DefaultRender. RenderWith overrides it for a single pass.
	Render RenderFunc
}

// Engine wires the two reconcilers and the walker together. It is the only
// component that sees both reconcilers at once. An Engine is not safe for
// concurrent use: all operations are synchronous and expected to run on the
// event loop that delivers interaction, and every mutation completes (and
// any callback returns) before the next walk begins, so reads within one
// walk are always mutually consistent.
type Engine struct {
	roots      []Node
	expand     *ExpandState
	active     *ActiveState
	onToggle   func(*Branch, bool)
	onActivate func(Node)
	render     RenderFunc
}

// New composes an engine over roots. A single root and a forest take the
// same path: the variadic list is the normalized ordered root sequence.
func New(opts Options, roots ...Node) *Engine {
	return &Engine{
		roots:      roots,
		expand:     NewExpandState(roots, opts.Expand),
		active:     NewActiveState(opts.Active),
		onToggle:   opts.OnToggle,
		onActivate: opts.OnActivate,
		render:     opts.Render,
	}
}

// Roots returns the normalized root sequence.
func (e *Engine) Roots() []Node { return e.roots }

// SetRoots swaps the forest for subsequent walks. Reconciler state is kept
// as-is: ids that survive the swap keep their expansion and selection, and
// expand-all defaults are not recomputed for branches that only exist in the
// new forest.
func (e *Engine) SetRoots(roots ...Node) { e.roots = roots }

// Walk visits every visible node in pre-order: each root at depth 0 with its
// position among the roots as index, then expanded branches' children in
// order.
func (e *Engine) Walk(visit func(Context)) {
	for i, root := range e.roots {
		e.walk(root, 0, i, len(e.roots), visit)
	}
}

// Contexts collects one pass's contexts in visit order. The slice is a
// snapshot: mutating state afterwards does not update it.
func (e *Engine) Contexts() []Context {
	var out []Context
	e.Walk(func(c Context) { out = append(out, c) })
	return out
}

// Render runs one pass with the engine's render function, one line per
// visible node.
func (e *Engine) Render() string {
	fn := e.render
	if fn == nil {
		fn = DefaultRender
	}
	return e.RenderWith(fn)
}

// RenderWith runs one pass with fn instead of the configured render
// function.
func (e *Engine) RenderWith(fn RenderFunc) string {
	if fn == nil {
		panic("nav: RenderWith requires a non-nil RenderFunc")
	}
	var sb strings.Builder
	e.Walk(func(c Context) {
		sb.WriteString(fn(c))
		sb.WriteString("\n")
	})
	return sb.String()
}

// IsExpanded reads through to the expansion reconciler.
func (e *Engine) IsExpanded(id string) bool { return e.expand.IsExpanded(id) }

// IsActive reads through to the active-selection reconciler.
func (e *Engine) IsActive(id string) bool { return e.active.IsActive(id) }

// Active returns the current id, or the empty string.
func (e *Engine) Active() string { return e.active.Active() }

// SetExpanded sets one branch's expansion by id, with the same kind guard
// and callback behavior as Context.SetExpanded. Ids that do not name a
// branch in the current forest are ignored.
func (e *Engine) SetExpanded(id string, expanded bool) {
	b := e.findBranch(id)
	if b == nil {
		return
	}
	if e.expand.SetExpanded(id, expanded) && e.onToggle != nil {
		e.onToggle(b, expanded)
	}
}

func (e *Engine) findBranch(id string) *Branch {
	var found *Branch
	var walk func(Node)
	walk = func(n Node) {
		b, ok := n.(*Branch)
		if !ok || found != nil {
			return
		}
		if b.ID == id {
			found = b
			return
		}
		for _, child := range b.Children {
			walk(child)
		}
	}
	for _, root := range e.roots {
		if found == nil {
			walk(root)
		}
	}
	return found
}

// ExpandAll expands every branch currently in the forest. In controlled
// mode each branch that was collapsed is reported through OnToggle and
// local state is untouched, like any other mutation.
func (e *Engine) ExpandAll() { e.setAll(true) }

// CollapseAll collapses every branch currently in the forest.
func (e *Engine) CollapseAll() { e.setAll(false) }

func (e *Engine) setAll(expanded bool) {
	var walk func(Node)
	walk = func(n Node) {
		b, ok := n.(*Branch)
		if !ok {
			return
		}
		if e.expand.SetExpanded(b.ID, expanded) && e.onToggle != nil {
			e.onToggle(b, expanded)
		}
		for _, child := range b.Children {
			walk(child)
		}
	}
	for _, root := range e.roots {
		walk(root)
	}
}

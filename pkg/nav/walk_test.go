package nav

import (
	"strings"
	"testing"
)

func collectIDs(e *Engine) []string {
	var ids []string
	e.Walk(func(c Context) { ids = append(ids, ID(c.Node)) })
	return ids
}

func findContext(t *testing.T, e *Engine, id string) Context {
	t.Helper()
	for _, c := range e.Contexts() {
		if ID(c.Node) == id {
			return c
		}
	}
	t.Fatalf("no context for %q in traversal", id)
	return Context{}
}

// TestWalkCollapsedRootOnly: a default-collapsed branch yields exactly one
// context, its own, with no contexts for its children.
func TestWalkCollapsedRootOnly(t *testing.T) {
	e := New(Options{}, docsForest()...)

	ctxs := e.Contexts()
	if len(ctxs) != 1 {
		t.Fatalf("expected 1 context, got %d", len(ctxs))
	}
	c := ctxs[0]
	if ID(c.Node) != "docs" || c.Depth != 0 {
		t.Errorf("expected docs at depth 0, got %q at %d", ID(c.Node), c.Depth)
	}
	if c.Expanded {
		t.Error("expected docs collapsed")
	}
	if !c.HasChildren {
		t.Error("expected HasChildren for a branch with children")
	}
}

// TestWalkExpandedYieldsChildren: after toggling the branch, the same tree
// yields the branch plus both children with correct positions.
func TestWalkExpandedYieldsChildren(t *testing.T) {
	e := New(Options{}, docsForest()...)
	findContext(t, e, "docs").Toggle()

	ctxs := e.Contexts()
	if len(ctxs) != 3 {
		t.Fatalf("expected 3 contexts after expand, got %d", len(ctxs))
	}
	if !ctxs[0].Expanded {
		t.Error("expected docs expanded")
	}

	intro := ctxs[1]
	if ID(intro.Node) != "intro" || intro.Depth != 1 || intro.Index != 0 {
		t.Errorf("unexpected intro position: id=%q depth=%d index=%d", ID(intro.Node), intro.Depth, intro.Index)
	}
	if !intro.IsFirst || intro.IsLast {
		t.Error("intro should be first and not last")
	}

	api := ctxs[2]
	if ID(api.Node) != "api" || api.Depth != 1 || api.Index != 1 {
		t.Errorf("unexpected api position: id=%q depth=%d index=%d", ID(api.Node), api.Depth, api.Index)
	}
	if api.IsFirst || !api.IsLast {
		t.Error("api should be last and not first")
	}
	if api.HasChildren || api.Expanded {
		t.Error("leaves must report no children and never expanded")
	}
}

// TestWalkPrunesCollapsedSubtrees: no descendant of a collapsed branch ever
// appears, even when the descendant branches themselves are expanded.
func TestWalkPrunesCollapsedSubtrees(t *testing.T) {
	forest := []Node{
		&Branch{Meta: Meta{ID: "guides", Name: "Guides"}, Children: []Node{
			&Branch{Meta: Meta{ID: "git", Name: "Git"}, Children: []Node{
				&Leaf{Meta: Meta{ID: "rebase", Name: "Rebase"}, Payload: "rebase.md"},
			}},
		}},
	}
	e := New(Options{Expand: ExpandOptions{Default: map[string]bool{"git": true}}}, forest...)

	ids := collectIDs(e)
	if len(ids) != 1 || ids[0] != "guides" {
		t.Fatalf("expected only the collapsed root, got %v", ids)
	}
}

// TestWalkForestRootPositions: multiple roots walk at depth 0 with the root
// list as the sibling list.
func TestWalkForestRootPositions(t *testing.T) {
	e := New(Options{},
		&Branch{Meta: Meta{ID: "a", Name: "A"}},
		&Leaf{Meta: Meta{ID: "b", Name: "B"}, Payload: "b.md"},
		&Leaf{Meta: Meta{ID: "c", Name: "C"}, Payload: "c.md"},
	)
	ctxs := e.Contexts()
	if len(ctxs) != 3 {
		t.Fatalf("expected 3 root contexts, got %d", len(ctxs))
	}
	for i, c := range ctxs {
		if c.Depth != 0 || c.Index != i || c.Siblings != 3 {
			t.Errorf("root %d: depth=%d index=%d siblings=%d", i, c.Depth, c.Index, c.Siblings)
		}
	}
	if !ctxs[0].IsFirst || ctxs[0].IsLast {
		t.Error("first root flags wrong")
	}
	if ctxs[2].IsFirst || !ctxs[2].IsLast {
		t.Error("last root flags wrong")
	}
	if ctxs[0].HasChildren {
		t.Error("an empty branch has no children")
	}
}

// TestToggleOnLeafIsNoOp: the kind guard lives in Context, so a leaf Toggle
// neither records state nor fires the callback.
func TestToggleOnLeafIsNoOp(t *testing.T) {
	var fired int
	e := New(Options{
		Expand:   ExpandOptions{Default: map[string]bool{"docs": true}},
		OnToggle: func(*Branch, bool) { fired++ },
	}, docsForest()...)

	findContext(t, e, "intro").Toggle()
	findContext(t, e, "intro").SetExpanded(true)

	if fired != 0 {
		t.Errorf("leaf mutators must not fire OnToggle, fired %d times", fired)
	}
	if e.IsExpanded("intro") {
		t.Error("leaf toggle must not record expansion state")
	}
}

// TestActivateDisabledIsNoOp: the walker's disabled guard stops both the
// reconciler call and the callback.
func TestActivateDisabledIsNoOp(t *testing.T) {
	var activated []string
	e := New(Options{
		OnActivate: func(n Node) { activated = append(activated, ID(n)) },
	},
		&Leaf{Meta: Meta{ID: "old", Name: "Old", Disabled: true}, Payload: "old.md"},
		&Leaf{Meta: Meta{ID: "new", Name: "New"}, Payload: "new.md"},
	)

	findContext(t, e, "old").Activate()
	if len(activated) != 0 || e.Active() != "" {
		t.Error("activating a disabled node must be a complete no-op")
	}

	findContext(t, e, "new").Activate()
	if e.Active() != "new" {
		t.Errorf("expected new active, got %q", e.Active())
	}
	if len(activated) != 1 || activated[0] != "new" {
		t.Errorf("expected one activation callback for new, got %v", activated)
	}
}

// TestActivateFiresEvenWhenAlreadyActive: OnActivate is unconditional for
// enabled nodes.
func TestActivateFiresEvenWhenAlreadyActive(t *testing.T) {
	var fired int
	e := New(Options{OnActivate: func(Node) { fired++ }},
		&Leaf{Meta: Meta{ID: "home", Name: "Home"}, Payload: "home.md"},
	)
	findContext(t, e, "home").Activate()
	findContext(t, e, "home").Activate()
	if fired != 2 {
		t.Errorf("expected 2 activation callbacks, got %d", fired)
	}
}

// TestControlledToggleFiresCallbackOnly: in controlled mode a toggle leaves
// reported state alone but still notifies the external owner, which is its
// only way to learn about the intent.
func TestControlledToggleFiresCallbackOnly(t *testing.T) {
	external := map[string]bool{}
	var gotNode string
	var gotState bool
	var fired int
	e := New(Options{
		Expand: ExpandOptions{Controlled: external},
		OnToggle: func(b *Branch, expanded bool) {
			fired++
			gotNode, gotState = b.ID, expanded
		},
	}, docsForest()...)

	findContext(t, e, "docs").Toggle()
	if e.IsExpanded("docs") {
		t.Error("controlled toggle must not change reported state")
	}
	if fired != 1 || gotNode != "docs" || !gotState {
		t.Errorf("expected OnToggle(docs, true), got fired=%d node=%q state=%v", fired, gotNode, gotState)
	}

	// Owner adopts the change; the next pass sees it and children appear.
	external["docs"] = true
	if got := len(e.Contexts()); got != 3 {
		t.Errorf("expected 3 contexts after owner update, got %d", got)
	}
}

// TestControlledSetExpandedNoTransitionNoCallback: when the external store
// already has the requested state, SetExpanded is silent.
func TestControlledSetExpandedNoTransitionNoCallback(t *testing.T) {
	external := map[string]bool{"docs": true}
	var fired int
	e := New(Options{
		Expand:   ExpandOptions{Controlled: external},
		OnToggle: func(*Branch, bool) { fired++ },
	}, docsForest()...)

	findContext(t, e, "docs").SetExpanded(true)
	if fired != 0 {
		t.Errorf("no-transition SetExpanded must not fire OnToggle, fired %d", fired)
	}
	findContext(t, e, "docs").SetExpanded(false)
	if fired != 1 {
		t.Errorf("transition SetExpanded must fire OnToggle once, fired %d", fired)
	}
}

// TestZeroContextMutatorPanics: a Context not produced by an engine walk is
// a usage error and fails fast.
func TestZeroContextMutatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic from zero-Context mutator")
		}
	}()
	var c Context
	c.Toggle()
}

// TestSetRootsKeepsState: swapping the forest keeps surviving ids' state and
// does not retroactively apply expand-all defaults to new branches.
func TestSetRootsKeepsState(t *testing.T) {
	e := New(Options{Expand: ExpandOptions{ExpandAll: true}}, docsForest()...)
	if !e.IsExpanded("docs") {
		t.Fatal("expected docs expanded under ExpandAll")
	}

	e.SetRoots(
		&Branch{Meta: Meta{ID: "docs", Name: "Docs"}},
		&Branch{Meta: Meta{ID: "blog", Name: "Blog"}, Children: []Node{
			&Leaf{Meta: Meta{ID: "post", Name: "Post"}, Payload: "post.md"},
		}},
	)
	if !e.IsExpanded("docs") {
		t.Error("surviving id must keep its expansion state")
	}
	if e.IsExpanded("blog") {
		t.Error("expand-all defaults are computed once; late branches start collapsed")
	}
}

// TestRenderDefault: the fallback renderer produces one line per visible
// node with depth indentation.
func TestRenderDefault(t *testing.T) {
	e := New(Options{Expand: ExpandOptions{Default: map[string]bool{"docs": true}}}, docsForest()...)
	out := e.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rendered lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "▾ Docs") {
		t.Errorf("unexpected branch line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  • Intro") {
		t.Errorf("unexpected leaf line: %q", lines[1])
	}
}

// TestRenderWithCustomFunc: the render function is swappable per pass.
func TestRenderWithCustomFunc(t *testing.T) {
	e := New(Options{}, docsForest()...)
	out := e.RenderWith(func(c Context) string { return "<" + ID(c.Node) + ">" })
	if out != "<docs>\n" {
		t.Errorf("unexpected custom render output: %q", out)
	}
}

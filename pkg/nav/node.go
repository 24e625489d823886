// Package nav implements the hierarchical navigation engine behind the
// treeline sidebar: a forest of branch/leaf nodes, expansion and
// active-selection state with controlled and uncontrolled modes, and a
// pre-order walker that hands every visible node to a pluggable render
// function.
//
// The engine treats the supplied forest as immutable data. It owns exactly
// two pieces of mutable state, the expanded-id set and the active id, and
// each of those can independently be delegated to an external owner.
package nav

// Meta carries the identity and display attributes common to branches and
// leaves. IDs must be unique across the whole forest: both reconcilers index
// state by id alone, so a collision silently merges the state of unrelated
// nodes. Uniqueness is the producer's responsibility and is not verified
// here.
type Meta struct {
	ID       string
	Name     string
	Icon     string
	Disabled bool
}

func (m *Meta) meta() *Meta { return m }

// Node is a single entry in a navigation forest. It is implemented by
// *Branch and *Leaf only; a node's kind never changes over its lifetime.
type Node interface {
	meta() *Meta
}

// Branch is a node that may own children. Zero children is legal and
// distinct from being a leaf. Children keep their insertion order, which is
// the display order; the engine never reorders them.
type Branch struct {
	Meta
	Children []Node
	Payload  any
}

// Leaf is a terminal node. Its payload carries the semantic content, for
// treeline a *content.Doc, and is expected to be non-nil.
type Leaf struct {
	Meta
	Payload any
}

// ID returns n's identifier.
func ID(n Node) string { return n.meta().ID }

// Name returns n's display label.
func Name(n Node) string { return n.meta().Name }

// Icon returns n's icon handle, or the empty string.
func Icon(n Node) string { return n.meta().Icon }

// Disabled reports whether n is disabled for interaction.
func Disabled(n Node) bool { return n.meta().Disabled }

// branchIDs collects every branch id in the forest in pre-order. Used to
// seed the expand-all default.
func branchIDs(roots []Node) map[string]bool {
	ids := make(map[string]bool)
	var walk func(Node)
	walk = func(n Node) {
		b, ok := n.(*Branch)
		if !ok {
			return
		}
		ids[b.ID] = true
		for _, child := range b.Children {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return ids
}

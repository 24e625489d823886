package nav

// stateMode tags who owns a piece of engine state. The mode is decided once
// at construction and never changes; switching a live reconciler between
// modes is not supported.
type stateMode int

const (
	// modeOwned: the reconciler holds the state itself and mutates it.
	modeOwned stateMode = iota
	// modeDelegated: an external caller owns the state; the reconciler is a
	// read-through proxy and its mutators never touch local storage.
	modeDelegated
)

// ExpandOptions configures an ExpandState.
//
// A non-nil Controlled map, including an explicitly empty one, puts the
// reconciler in delegated mode for its entire lifetime: IsExpanded reads
// through to the map and the mutators stop writing locally. The engine keeps
// reading the same map on every pass, so the caller updates it (typically
// from the OnToggle callback) to change what is expanded.
type ExpandOptions struct {
	Controlled map[string]bool
	Default    map[string]bool
	ExpandAll  bool
}

// ExpandState reconciles which branch ids are expanded. It never inspects
// node kinds: toggling a leaf id here would record it like any other, which
// is why the kind guard lives in Context, not in this reconciler.
type ExpandState struct {
	mode      stateMode
	owned     map[string]bool
	delegated map[string]bool
}

// NewExpandState builds the expansion reconciler for roots. The forest is
// used exactly once, to compute the ExpandAll default; a forest swapped in
// later does not recompute defaults, so branches that arrive after
// construction start collapsed even under ExpandAll.
func NewExpandState(roots []Node, opts ExpandOptions) *ExpandState {
	if opts.Controlled != nil {
		return &ExpandState{mode: modeDelegated, delegated: opts.Controlled}
	}
	owned := make(map[string]bool)
	switch {
	case opts.ExpandAll:
		owned = branchIDs(roots)
	case opts.Default != nil:
		for id, v := range opts.Default {
			if v {
				owned[id] = true
			}
		}
	}
	return &ExpandState{mode: modeOwned, owned: owned}
}

// IsExpanded reports whether id is currently expanded. Unknown ids report
// false.
func (s *ExpandState) IsExpanded(id string) bool {
	if s.mode == modeDelegated {
		return s.delegated[id]
	}
	return s.owned[id]
}

// Toggle flips the expansion of exactly id, never of its ancestors or
// descendants. It returns the resulting state: in delegated mode nothing is
// stored locally and the return value is the state the external owner is
// being asked to adopt.
func (s *ExpandState) Toggle(id string) bool {
	next := !s.IsExpanded(id)
	if s.mode == modeOwned {
		if next {
			s.owned[id] = true
		} else {
			delete(s.owned, id)
		}
	}
	return next
}

// SetExpanded sets id to expanded explicitly. It reports whether the call
// was a transition; repeated calls with the same arguments return false and
// have no further effect.
func (s *ExpandState) SetExpanded(id string, expanded bool) bool {
	if s.IsExpanded(id) == expanded {
		return false
	}
	if s.mode == modeOwned {
		if expanded {
			s.owned[id] = true
		} else {
			delete(s.owned, id)
		}
	}
	return true
}

// Controlled reports whether the reconciler is in delegated mode.
func (s *ExpandState) Controlled() bool { return s.mode == modeDelegated }

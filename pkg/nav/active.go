package nav

// ActiveOptions configures an ActiveState. A non-nil Controlled pointer puts
// the reconciler in delegated mode: IsActive dereferences it on every read,
// so the caller changes the active node by writing through the pointer. The
// empty string means no node is active.
//
// Controlled and Default are independent of ExpandOptions: an engine may
// delegate expansion while owning selection, or the reverse.
type ActiveOptions struct {
	Controlled *string
	Default    string
}

// ActiveState reconciles the single "current" node. At most one id is active
// at any time, or none. The reconciler does not inspect the Disabled flag;
// keeping disabled nodes from being activated by user interaction is the
// walker's job (see Context.Activate).
type ActiveState struct {
	mode      stateMode
	owned     string
	delegated *string
}

// NewActiveState builds the active-selection reconciler.
func NewActiveState(opts ActiveOptions) *ActiveState {
	if opts.Controlled != nil {
		return &ActiveState{mode: modeDelegated, delegated: opts.Controlled}
	}
	return &ActiveState{mode: modeOwned, owned: opts.Default}
}

// IsActive reports whether id is the current node. The empty id never
// reports active.
func (s *ActiveState) IsActive(id string) bool {
	if id == "" {
		return false
	}
	if s.mode == modeDelegated {
		return *s.delegated == id
	}
	return s.owned == id
}

// Active returns the current id, or the empty string when nothing is active.
func (s *ActiveState) Active() string {
	if s.mode == modeDelegated {
		return *s.delegated
	}
	return s.owned
}

// SetActive makes id the single current node, replacing any previous one.
// The empty string clears the selection. In delegated mode this is a local
// no-op; the external owner learns about the intent through the engine's
// OnActivate callback.
func (s *ActiveState) SetActive(id string) {
	if s.mode == modeOwned {
		s.owned = id
	}
}

// Controlled reports whether the reconciler is in delegated mode.
func (s *ActiveState) Controlled() bool { return s.mode == modeDelegated }

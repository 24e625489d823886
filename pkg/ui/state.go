// Package ui implements the treeline terminal interface.
// This file persists the sidebar's expand/collapse state across sessions.
//
// File format (JSON, .treeline/nav-state.json):
//
//	{
//	  "version": 1,
//	  "expanded": {
//	    "guides": true,    // explicitly expanded
//	    "guides/git": false // explicitly collapsed
//	  }
//	}
//
// Only explicit deviations from the construction-time defaults are stored;
// ids absent from the map keep default behavior. A corrupted or missing file
// means defaults, silently.
package ui

import (
	"log"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// NavState is the persisted form of the sidebar's expansion state.
type NavState struct {
	Version  int             `json:"version"`
	Expanded map[string]bool `json:"expanded"`
}

// NavStateVersion is the current schema version.
const NavStateVersion = 1

const navStateFileName = "nav-state.json"

// NavStatePath returns the state file location inside stateDir.
func NavStatePath(stateDir string) string {
	return filepath.Join(stateDir, navStateFileName)
}

// saveState writes the current deviations from defaults. Errors are logged
// and never interrupt the session.
func (s *Sidebar) saveState() {
	if s.stateDir == "" {
		return
	}
	state := &NavState{
		Version:  NavStateVersion,
		Expanded: make(map[string]bool),
	}
	for id, def := range s.defaults {
		if cur := s.engine.IsExpanded(id); cur != def {
			state.Expanded[id] = cur
		}
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		log.Printf("warning: failed to marshal nav state: %v", err)
		return
	}
	path := NavStatePath(s.stateDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Printf("warning: failed to create state directory: %v", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("warning: failed to write nav state to %s: %v", path, err)
	}
}

// loadState applies a previously saved state file. Stale ids that no longer
// name a branch are ignored by the engine's kind guard.
func (s *Sidebar) loadState() {
	if s.stateDir == "" {
		return
	}
	data, err := os.ReadFile(NavStatePath(s.stateDir))
	if err != nil {
		// First run, use defaults.
		return
	}
	var state NavState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("warning: invalid nav state file, using defaults: %v", err)
		return
	}
	for id, expanded := range state.Expanded {
		s.engine.SetExpanded(id, expanded)
	}
}

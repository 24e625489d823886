package content

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/treeline-sh/treeline/pkg/nav"
)

// ScanOptions controls how a content directory becomes a nav forest.
type ScanOptions struct {
	// FolderPriority orders branches by an explicit name lookup. Listed
	// names sort ascending by priority; unlisted names sort after all
	// listed ones, alphabetically among themselves.
	FolderPriority map[string]int

	// DropEmpty prunes branches that end up with zero children.
	DropEmpty bool

	// IncludeDrafts keeps docs marked draft: true. By default drafts are
	// omitted with a warning.
	IncludeDrafts bool
}

// Warning records a non-fatal problem with one file. Warnings never abort a
// scan: the offending file is either omitted (hard requirement missing) or
// kept with the warning attached (soft requirement missing).
type Warning struct {
	Path    string // path relative to the scan root
	Message string
}

// Result is a completed scan: the sorted forest plus everything worth
// telling the author about.
type Result struct {
	Roots    []nav.Node
	Warnings []Warning
}

// WarningsFor returns the warnings recorded for one file path.
func (r *Result) WarningsFor(relPath string) []Warning {
	var out []Warning
	for _, w := range r.Warnings {
		if w.Path == relPath {
			out = append(out, w)
		}
	}
	return out
}

// Scan walks dir recursively and produces the navigation forest: a leaf per
// eligible markdown file, a branch per subdirectory. Branch ids are the
// slash-separated directory paths relative to dir; leaf ids join the
// directory path with the declared slug. A file whose id is already taken,
// by a sibling folder or by an earlier file with the same slug, is dropped
// with a warning, keeping ids unique across the whole forest as the nav
// engine requires.
func Scan(dir string, opts ScanOptions) (*Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan %s: not a directory", dir)
	}

	s := &scanner{
		root:   dir,
		opts:   opts,
		ignore: LoadIgnore(dir),
		seen:   make(map[string]bool),
	}
	roots, err := s.scanDir(dir, "")
	if err != nil {
		return nil, err
	}
	return &Result{Roots: roots, Warnings: s.warnings}, nil
}

type scanner struct {
	root     string
	opts     ScanOptions
	ignore   *Ignore
	warnings []Warning
	seen     map[string]bool // every id handed out so far
}

func (s *scanner) warnf(relPath, format string, args ...any) {
	s.warnings = append(s.warnings, Warning{Path: relPath, Message: fmt.Sprintf(format, args...)})
}

// scanDir returns relDir's children, sorted: branches first per the folder
// priority policy, then leaves by weight and date.
func (s *scanner) scanDir(absDir, relDir string) ([]nav.Node, error) {
	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", absDir, err)
	}

	// Directories claim their ids before any file in this directory does,
	// so a slug colliding with a sibling folder drops the file, never the
	// folder.
	var branches []*nav.Branch
	for _, entry := range entries {
		name := entry.Name()
		rel := path.Join(relDir, name)
		if !entry.IsDir() || strings.HasPrefix(name, ".") || s.ignore.Match(rel, true) {
			continue
		}
		s.seen[rel] = true
		children, err := s.scanDir(filepath.Join(absDir, name), rel)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 && s.opts.DropEmpty {
			delete(s.seen, rel)
			continue
		}
		branches = append(branches, &nav.Branch{
			Meta:     nav.Meta{ID: rel, Name: name},
			Children: children,
		})
	}

	var leaves []*nav.Leaf
	for _, entry := range entries {
		name := entry.Name()
		rel := path.Join(relDir, name)
		if entry.IsDir() || strings.HasPrefix(name, ".") || s.ignore.Match(rel, false) {
			continue
		}
		if !eligible(name) {
			continue
		}
		if leaf := s.scanFile(filepath.Join(absDir, name), rel, relDir); leaf != nil {
			leaves = append(leaves, leaf)
		}
	}

	s.sortBranches(branches)
	sortLeaves(leaves)

	nodes := make([]nav.Node, 0, len(branches)+len(leaves))
	for _, b := range branches {
		nodes = append(nodes, b)
	}
	for _, l := range leaves {
		nodes = append(nodes, l)
	}
	return nodes, nil
}

// scanFile parses one markdown file into a leaf, or returns nil after
// recording why the file was dropped.
func (s *scanner) scanFile(absPath, relPath, relDir string) *nav.Leaf {
	data, err := os.ReadFile(absPath)
	if err != nil {
		s.warnf(relPath, "unreadable: %v", err)
		return nil
	}
	doc, soft, err := parseDoc(string(data), relPath)
	if err != nil {
		s.warnf(relPath, "dropped: %v", err)
		return nil
	}
	if doc.Slug == "" || doc.Title == "" {
		s.warnf(relPath, "dropped: missing slug or title")
		return nil
	}
	if doc.Draft && !s.opts.IncludeDrafts {
		s.warnf(relPath, "dropped: draft")
		return nil
	}

	// The slug drives the node id, so a second file claiming an already
	// used id cannot be emitted without breaking forest-wide uniqueness.
	id := path.Join(relDir, doc.Slug)
	if s.seen[id] {
		s.warnf(relPath, "dropped: id %q already in use", id)
		return nil
	}
	s.seen[id] = true

	for _, msg := range soft {
		s.warnf(relPath, "%s", msg)
	}

	// A slug that disagrees with the filename is suspicious but not fatal.
	base := strings.TrimSuffix(path.Base(relPath), path.Ext(relPath))
	if doc.Slug != base {
		s.warnf(relPath, "slug %q does not match filename %q", doc.Slug, base)
	}

	if doc.Date.IsZero() {
		if info, err := os.Stat(absPath); err == nil {
			doc.Date = info.ModTime()
		}
	}

	return &nav.Leaf{
		Meta: nav.Meta{
			ID:       id,
			Name:     doc.Title,
			Icon:     doc.Icon,
			Disabled: doc.Disabled,
		},
		Payload: doc,
	}
}

func eligible(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// sortBranches orders branches by the explicit priority lookup: listed names
// ascending by priority with alphabetical ties, then unlisted names
// alphabetically.
func (s *scanner) sortBranches(branches []*nav.Branch) {
	prio := s.opts.FolderPriority
	sort.SliceStable(branches, func(i, j int) bool {
		a, b := branches[i].Name, branches[j].Name
		pa, oka := prio[a]
		pb, okb := prio[b]
		if oka != okb {
			return oka
		}
		if oka && pa != pb {
			return pa < pb
		}
		return a < b
	})
}

// sortLeaves orders leaves by weight ascending with missing weights last;
// ties break by date descending, newest first, then by slug for
// determinism.
func sortLeaves(leaves []*nav.Leaf) {
	sort.SliceStable(leaves, func(i, j int) bool {
		a := leaves[i].Payload.(*Doc)
		b := leaves[j].Payload.(*Doc)
		switch {
		case a.Weight != nil && b.Weight != nil:
			if *a.Weight != *b.Weight {
				return *a.Weight < *b.Weight
			}
		case a.Weight != nil:
			return true
		case b.Weight != nil:
			return false
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.Slug < b.Slug
	})
}

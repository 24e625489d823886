// Package content turns a folder of Markdown files with YAML front matter
// into a sorted nav forest. The scanner is a one-shot batch producer: it
// never runs as part of a render pass, and the navigation engine never calls
// back into it. A Watcher is available for callers that want to rescan when
// files change.
package content

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Doc is the payload carried by every scanned leaf. Slug and Title are
// identity-critical: a file missing either is dropped rather than emitted
// with synthesized values.
type Doc struct {
	Slug        string
	Title       string
	Description string
	Icon        string
	Weight      *int // nil means unweighted; unweighted docs sort last
	Date        time.Time
	Draft       bool
	Disabled    bool
	Path        string // path relative to the scan root
	Body        string // markdown source below the front matter
}

// frontMatter is the raw YAML block at the top of a file. Date stays a
// string here because authors write several formats; parseDate normalizes.
type frontMatter struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Weight      *int   `yaml:"weight"`
	Date        string `yaml:"date"`
	Draft       bool   `yaml:"draft"`
	Disabled    bool   `yaml:"disabled"`
}

const frontMatterFence = "---"

// dateLayouts are tried in order when parsing the front matter date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// splitFrontMatter separates the leading YAML block from the body. A file
// must start with a fence line; the block runs to the next fence line.
func splitFrontMatter(src string) (meta, body string, err error) {
	src = strings.TrimPrefix(src, "\ufeff")
	lines := strings.SplitAfter(src, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r\n") != frontMatterFence {
		return "", "", fmt.Errorf("no front matter block")
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r\n") == frontMatterFence {
			return strings.Join(lines[1:i], ""), strings.Join(lines[i+1:], ""), nil
		}
	}
	return "", "", fmt.Errorf("unterminated front matter block")
}

// parseDoc parses one markdown source into a Doc. relPath is only recorded,
// never used to synthesize missing identity fields. Problems with optional
// fields do not fail the parse; they come back as soft warnings and the
// field keeps its zero value.
func parseDoc(src, relPath string) (*Doc, []string, error) {
	meta, body, err := splitFrontMatter(src)
	if err != nil {
		return nil, nil, err
	}
	var fm frontMatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return nil, nil, fmt.Errorf("parse front matter: %w", err)
	}
	doc := &Doc{
		Slug:        fm.Slug,
		Title:       fm.Title,
		Description: fm.Description,
		Icon:        fm.Icon,
		Weight:      fm.Weight,
		Draft:       fm.Draft,
		Disabled:    fm.Disabled,
		Path:        relPath,
		Body:        body,
	}
	var soft []string
	if fm.Date != "" {
		d, err := parseDate(fm.Date)
		if err != nil {
			soft = append(soft, fmt.Sprintf("ignoring date %q: %v", fm.Date, err))
		} else {
			doc.Date = d
		}
	}
	return doc, soft, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}

package export

import (
	"strings"
	"testing"

	"github.com/treeline-sh/treeline/pkg/content"
	"github.com/treeline-sh/treeline/pkg/nav"
)

func TestGenerateTOC(t *testing.T) {
	roots := []nav.Node{
		&nav.Branch{
			Meta: nav.Meta{ID: "guides", Name: "Guides"},
			Children: []nav.Node{
				&nav.Leaf{
					Meta:    nav.Meta{ID: "guides/intro", Name: "Intro"},
					Payload: &content.Doc{Slug: "intro", Title: "Intro", Path: "guides/intro.md"},
				},
			},
		},
		&nav.Leaf{
			Meta:    nav.Meta{ID: "wip", Name: "WIP"},
			Payload: &content.Doc{Slug: "wip", Title: "WIP", Path: "wip.md", Draft: true},
		},
	}

	out, err := GenerateTOC(roots, "My Site")
	if err != nil {
		t.Fatalf("GenerateTOC failed: %v", err)
	}
	if !strings.HasPrefix(out, "# My Site\n") {
		t.Errorf("missing title header:\n%s", out)
	}
	if !strings.Contains(out, "- **Guides**") {
		t.Errorf("missing branch entry:\n%s", out)
	}
	if !strings.Contains(out, "  - [Intro](guides/intro.md)") {
		t.Errorf("missing nested leaf link:\n%s", out)
	}
	if !strings.Contains(out, "- [WIP](wip.md) *(draft)*") {
		t.Errorf("missing draft annotation:\n%s", out)
	}
	if !strings.Contains(out, "**Sections**: 1") || !strings.Contains(out, "**Documents**: 2") {
		t.Errorf("wrong summary counts:\n%s", out)
	}
}

// TestGenerateTOCCollapsedStateIrrelevant documents that export walks the
// whole forest, unlike the sidebar which prunes collapsed branches.
func TestGenerateTOCCollapsedStateIrrelevant(t *testing.T) {
	roots := []nav.Node{
		&nav.Branch{
			Meta: nav.Meta{ID: "deep", Name: "Deep"},
			Children: []nav.Node{
				&nav.Branch{
					Meta: nav.Meta{ID: "deep/inner", Name: "Inner"},
					Children: []nav.Node{
						&nav.Leaf{
							Meta:    nav.Meta{ID: "deep/inner/doc", Name: "Doc"},
							Payload: &content.Doc{Slug: "doc", Title: "Doc", Path: "deep/inner/doc.md"},
						},
					},
				},
			},
		},
	}
	out, err := GenerateTOC(roots, "All")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "[Doc](deep/inner/doc.md)") {
		t.Errorf("expected every leaf regardless of expansion:\n%s", out)
	}
}

package content

import (
	"testing"
	"time"
)

func TestParseDocFull(t *testing.T) {
	src := "---\n" +
		"slug: rebase\n" +
		"title: Interactive Rebase\n" +
		"description: Rewriting history safely\n" +
		"weight: 2\n" +
		"date: 2024-03-01\n" +
		"icon: git\n" +
		"---\n" +
		"# Rebase\n\nBody text.\n"

	doc, soft, err := parseDoc(src, "guides/git/rebase.md")
	if err != nil {
		t.Fatalf("parseDoc failed: %v", err)
	}
	if len(soft) != 0 {
		t.Errorf("unexpected soft warnings: %v", soft)
	}
	if doc.Slug != "rebase" || doc.Title != "Interactive Rebase" {
		t.Errorf("unexpected identity fields: %q / %q", doc.Slug, doc.Title)
	}
	if doc.Weight == nil || *doc.Weight != 2 {
		t.Errorf("expected weight 2, got %v", doc.Weight)
	}
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !doc.Date.Equal(want) {
		t.Errorf("expected date %v, got %v", want, doc.Date)
	}
	if doc.Body != "# Rebase\n\nBody text.\n" {
		t.Errorf("unexpected body: %q", doc.Body)
	}
	if doc.Path != "guides/git/rebase.md" {
		t.Errorf("unexpected path: %q", doc.Path)
	}
}

func TestParseDocMissingWeightStaysNil(t *testing.T) {
	doc, _, err := parseDoc("---\nslug: a\ntitle: A\n---\n", "a.md")
	if err != nil {
		t.Fatalf("parseDoc failed: %v", err)
	}
	if doc.Weight != nil {
		t.Errorf("expected nil weight, got %d", *doc.Weight)
	}
}

// TestParseDocByteOrderMark verifies a BOM before the opening fence does not
// hide the front matter block.
func TestParseDocByteOrderMark(t *testing.T) {
	doc, _, err := parseDoc("\ufeff---\nslug: a\ntitle: A\n---\nbody\n", "a.md")
	if err != nil {
		t.Fatalf("parseDoc failed on BOM-prefixed file: %v", err)
	}
	if doc.Slug != "a" {
		t.Errorf("expected slug a, got %q", doc.Slug)
	}
}

func TestParseDocNoFrontMatter(t *testing.T) {
	if _, _, err := parseDoc("# Just markdown\n", "a.md"); err == nil {
		t.Error("expected error for file without front matter")
	}
}

func TestParseDocUnterminatedFence(t *testing.T) {
	if _, _, err := parseDoc("---\nslug: a\n", "a.md"); err == nil {
		t.Error("expected error for unterminated front matter")
	}
}

func TestParseDocBadYAML(t *testing.T) {
	if _, _, err := parseDoc("---\nslug: [unclosed\n---\n", "a.md"); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

// TestParseDocBadDateIsSoft verifies an unrecognized date keeps the
// document; the field stays zero and the problem is reported as a soft
// warning.
func TestParseDocBadDateIsSoft(t *testing.T) {
	doc, soft, err := parseDoc("---\nslug: a\ntitle: A\ndate: March 1st, 2024\n---\n", "a.md")
	if err != nil {
		t.Fatalf("expected bad date to be non-fatal, got %v", err)
	}
	if !doc.Date.IsZero() {
		t.Errorf("expected zero date, got %v", doc.Date)
	}
	if len(soft) != 1 {
		t.Fatalf("expected 1 soft warning, got %v", soft)
	}
}

func TestParseDateLayouts(t *testing.T) {
	cases := []string{
		"2024-03-01",
		"2024-03-01 15:04:05",
		"2024-03-01T15:04:05Z",
	}
	for _, c := range cases {
		if _, err := parseDate(c); err != nil {
			t.Errorf("parseDate(%q) failed: %v", c, err)
		}
	}
}

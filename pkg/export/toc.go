// Package export provides batch output of a scanned content forest,
// for use outside the interactive browser.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/treeline-sh/treeline/pkg/content"
	"github.com/treeline-sh/treeline/pkg/nav"
)

// GenerateTOC creates a markdown table of contents for the forest: branches
// as nested headings of a bullet list, leaves as links to their doc paths.
func GenerateTOC(roots []nav.Node, title string) (string, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format(time.RFC1123)))

	branches, docs, drafts := count(roots)
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Sections**: %d\n", branches))
	sb.WriteString(fmt.Sprintf("- **Documents**: %d\n", docs))
	if drafts > 0 {
		sb.WriteString(fmt.Sprintf("- **Drafts**: %d\n", drafts))
	}
	sb.WriteString("\n## Contents\n\n")

	var walk func(n nav.Node, depth int)
	walk = func(n nav.Node, depth int) {
		indent := strings.Repeat("  ", depth)
		switch node := n.(type) {
		case *nav.Branch:
			sb.WriteString(fmt.Sprintf("%s- **%s**\n", indent, node.Name))
			for _, child := range node.Children {
				walk(child, depth+1)
			}
		case *nav.Leaf:
			line := fmt.Sprintf("%s- %s", indent, node.Name)
			if doc, ok := node.Payload.(*content.Doc); ok {
				line = fmt.Sprintf("%s- [%s](%s)", indent, node.Name, doc.Path)
				if doc.Draft {
					line += " *(draft)*"
				}
			}
			sb.WriteString(line + "\n")
		}
	}
	for _, root := range roots {
		walk(root, 0)
	}

	return sb.String(), nil
}

func count(roots []nav.Node) (branches, docs, drafts int) {
	var walk func(nav.Node)
	walk = func(n nav.Node) {
		switch node := n.(type) {
		case *nav.Branch:
			branches++
			for _, child := range node.Children {
				walk(child)
			}
		case *nav.Leaf:
			docs++
			if doc, ok := node.Payload.(*content.Doc); ok && doc.Draft {
				drafts++
			}
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return branches, docs, drafts
}

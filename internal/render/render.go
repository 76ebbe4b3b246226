// Package render turns a catalog into the literal fragments spliced
// into the README, the index page, and per-tool timestamp blocks. All
// functions are pure; the orchestrator owns the file I/O.
package render

import (
	"fmt"
	"strings"

	"github.com/toolhut/sitegen/internal/catalog"
)

// DatePlaceholder fills the Updated column when no revision date is
// known for a tool.
const DatePlaceholder = "—"

// ReadmeTable renders the pipe-delimited table for the README section.
// An empty catalog renders a single placeholder row so the table stays
// well-formed.
func ReadmeTable(tools []catalog.Tool) string {
	var b strings.Builder
	b.WriteString("| Tool | Description | Updated |\n")
	b.WriteString("|------|-------------|---------|")
	if len(tools) == 0 {
		b.WriteString("\n| _(no tools yet)_ | | |")
		return b.String()
	}
	for _, tool := range tools {
		updated := tool.Updated
		if updated == "" {
			updated = DatePlaceholder
		}
		fmt.Fprintf(&b, "\n| [%s](%s) | %s | %s |", tool.Title, tool.File, tool.Description, updated)
	}
	return b.String()
}

// IndexList renders the unordered list for the index page section, or a
// placeholder paragraph when the catalog is empty.
func IndexList(tools []catalog.Tool) string {
	if len(tools) == 0 {
		return "<p>No tools yet. Check back soon.</p>"
	}
	var b strings.Builder
	b.WriteString("<ul>")
	for _, tool := range tools {
		fmt.Fprintf(&b, "\n      <li><a href=%q>%s</a>", tool.File, tool.Title)
		if tool.Description != "" {
			b.WriteString(" &mdash; " + tool.Description)
		}
		if tool.Updated != "" {
			fmt.Fprintf(&b, ` <span class="updated">(%s)</span>`, tool.Updated)
		}
		b.WriteString("</li>")
	}
	b.WriteString("\n    </ul>")
	return b.String()
}

// TimestampBlock renders the de-emphasized last-updated line injected
// into a tool page. Callers only invoke it for tools with a known date.
func TimestampBlock(date string) string {
	return fmt.Sprintf(`<p class="last-updated">Last updated: %s</p>`, date)
}

package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/toolhut/sitegen/internal/config"
)

// Tool is one cataloged page. Updated is an ISO date (YYYY-MM-DD) or
// empty when the revision history is unknown.
type Tool struct {
	File        string `json:"file" yaml:"file"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Updated     string `json:"updated,omitempty" yaml:"updated,omitempty"`
}

// RevisionLookup reports the date of the most recent change touching a
// file, or "" when no history is available. Implementations never fail;
// they degrade to "unknown".
type RevisionLookup interface {
	LastModified(ctx context.Context, name string) string
}

// Warner receives non-fatal per-file warnings during a scan.
type Warner interface {
	Warn(message string)
}

// Build scans root for tool pages and returns them ordered by file name
// ascending. A page qualifies only if it has a title; everything else is
// incidental HTML and skipped silently. Unreadable files are warned
// about and skipped.
func Build(ctx context.Context, root string, cfg config.Config, revs RevisionLookup, warner Warner) ([]Tool, error) {
	matches, err := doublestar.Glob(os.DirFS(root), cfg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", cfg.Pattern, err)
	}
	sort.Strings(matches)

	excluded := cfg.ExcludedNames()
	excludeGlobs := cfg.ExcludeGlobs()

	var tools []Tool
	for _, name := range matches {
		if excluded[name] || matchesAny(excludeGlobs, name) {
			continue
		}
		full := filepath.Join(root, name)
		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			continue
		}

		data, err := os.ReadFile(full)
		if err != nil {
			if warner != nil {
				warner.Warn(fmt.Sprintf("could not read %s: %v", name, err))
			}
			continue
		}
		// A previously injected timestamp block must not feed back into
		// extraction, or the paragraph fallback would pick it up as the
		// description on the next run.
		html := stripMarkerBlock(string(data), cfg.Markers.UpdatedStart, cfg.Markers.UpdatedEnd)

		title := ExtractTitle(html)
		if title == "" {
			continue
		}

		updated := ""
		if revs != nil {
			updated = revs.LastModified(ctx, name)
		}

		tools = append(tools, Tool{
			File:        name,
			Title:       title,
			Description: ExtractDescription(html),
			Updated:     updated,
		})
	}

	return tools, nil
}

// stripMarkerBlock removes every span bounded by the marker pair,
// markers included. Documents without the pair pass through unchanged.
func stripMarkerBlock(html, start, end string) string {
	for {
		startIdx := strings.Index(html, start)
		if startIdx == -1 {
			return html
		}
		rest := html[startIdx+len(start):]
		endIdx := strings.Index(rest, end)
		if endIdx == -1 {
			return html
		}
		html = html[:startIdx] + rest[endIdx+len(end):]
	}
}

func matchesAny(globs []string, name string) bool {
	for _, glob := range globs {
		if ok, err := doublestar.Match(glob, name); err == nil && ok {
			return true
		}
	}
	return false
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Readme != "README.md" || cfg.Index != "index.html" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Markers.ToolsStart != "<!-- tools-start -->" {
		t.Fatalf("unexpected default marker: %q", cfg.Markers.ToolsStart)
	}
}

func TestLoadOverlaysTOML(t *testing.T) {
	root := t.TempDir()
	contents := `
index = "home.html"
exclude = ["about.html", "drafts-*.html"]

[markers]
tools_start = "<!-- catalog-start -->"
tools_end = "<!-- catalog-end -->"

[vcs]
disabled = true
`
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Index != "home.html" {
		t.Fatalf("expected index override, got %q", cfg.Index)
	}
	if cfg.Readme != "README.md" {
		t.Fatalf("expected readme default to survive, got %q", cfg.Readme)
	}
	if cfg.Markers.ToolsStart != "<!-- catalog-start -->" {
		t.Fatalf("expected marker override, got %q", cfg.Markers.ToolsStart)
	}
	if cfg.Markers.UpdatedStart != "<!-- last-modified-start -->" {
		t.Fatalf("expected updated marker default, got %q", cfg.Markers.UpdatedStart)
	}
	if !cfg.VCS.Disabled {
		t.Fatalf("expected vcs disabled")
	}

	names := cfg.ExcludedNames()
	if !names["home.html"] {
		t.Fatalf("index must always be excluded: %v", names)
	}
	if !names["about.html"] {
		t.Fatalf("expected about.html excluded: %v", names)
	}
	if names["drafts-*.html"] {
		t.Fatalf("glob entries must not land in the name set: %v", names)
	}
	globs := cfg.ExcludeGlobs()
	if len(globs) != 1 || globs[0] != "drafts-*.html" {
		t.Fatalf("unexpected exclude globs: %v", globs)
	}
}

func TestLoadRejectsBadMarkers(t *testing.T) {
	root := t.TempDir()
	contents := `
[markers]
tools_start = "<!-- same -->"
tools_end = "<!-- same -->"
`
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(root); err == nil {
		t.Fatalf("expected validation error for identical markers")
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the optional per-site config file. A site without one
// runs entirely on defaults.
const FileName = "sitegen.toml"

type Config struct {
	Readme  string    `toml:"readme"`
	Index   string    `toml:"index"`
	Pattern string    `toml:"pattern"`
	Exclude []string  `toml:"exclude"`
	Markers Markers   `toml:"markers"`
	VCS     VCSConfig `toml:"vcs"`
}

type Markers struct {
	ToolsStart   string `toml:"tools_start"`
	ToolsEnd     string `toml:"tools_end"`
	UpdatedStart string `toml:"updated_start"`
	UpdatedEnd   string `toml:"updated_end"`
}

type VCSConfig struct {
	Disabled bool `toml:"disabled"`
}

func Default() Config {
	return Config{
		Readme:  "README.md",
		Index:   "index.html",
		Pattern: "*.html",
		Markers: Markers{
			ToolsStart:   "<!-- tools-start -->",
			ToolsEnd:     "<!-- tools-end -->",
			UpdatedStart: "<!-- last-modified-start -->",
			UpdatedEnd:   "<!-- last-modified-end -->",
		},
	}
}

// Load reads sitegen.toml from root when present and overlays it on the
// defaults. A missing file is not an error.
func Load(root string) (Config, error) {
	cfg := Default()
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", FileName, err)
	}
	cfg = cfg.normalized()
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", FileName, err)
	}
	return cfg, nil
}

func (c Config) normalized() Config {
	out := c
	def := Default()
	if strings.TrimSpace(out.Readme) == "" {
		out.Readme = def.Readme
	}
	if strings.TrimSpace(out.Index) == "" {
		out.Index = def.Index
	}
	if strings.TrimSpace(out.Pattern) == "" {
		out.Pattern = def.Pattern
	}
	if strings.TrimSpace(out.Markers.ToolsStart) == "" {
		out.Markers.ToolsStart = def.Markers.ToolsStart
	}
	if strings.TrimSpace(out.Markers.ToolsEnd) == "" {
		out.Markers.ToolsEnd = def.Markers.ToolsEnd
	}
	if strings.TrimSpace(out.Markers.UpdatedStart) == "" {
		out.Markers.UpdatedStart = def.Markers.UpdatedStart
	}
	if strings.TrimSpace(out.Markers.UpdatedEnd) == "" {
		out.Markers.UpdatedEnd = def.Markers.UpdatedEnd
	}
	return out
}

func Validate(cfg Config) error {
	if strings.ContainsAny(cfg.Readme, "/\\") {
		return fmt.Errorf("readme must be a bare file name, got %q", cfg.Readme)
	}
	if strings.ContainsAny(cfg.Index, "/\\") {
		return fmt.Errorf("index must be a bare file name, got %q", cfg.Index)
	}
	if cfg.Markers.ToolsStart == cfg.Markers.ToolsEnd {
		return errors.New("tools_start and tools_end markers must differ")
	}
	if cfg.Markers.UpdatedStart == cfg.Markers.UpdatedEnd {
		return errors.New("updated_start and updated_end markers must differ")
	}
	return nil
}

// ExcludedNames returns the bare file names never treated as tool
// candidates. The index file is always in the set.
func (c Config) ExcludedNames() map[string]bool {
	out := map[string]bool{c.Index: true}
	for _, name := range c.Exclude {
		name = strings.TrimSpace(name)
		if name == "" || strings.ContainsAny(name, "*?[") {
			continue
		}
		out[name] = true
	}
	return out
}

// ExcludeGlobs returns the exclude entries that are glob patterns
// rather than bare names.
func (c Config) ExcludeGlobs() []string {
	var globs []string
	for _, name := range c.Exclude {
		name = strings.TrimSpace(name)
		if name == "" || !strings.ContainsAny(name, "*?[") {
			continue
		}
		globs = append(globs, name)
	}
	return globs
}

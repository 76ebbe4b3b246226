package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/toolhut/sitegen/internal/config"
	"github.com/toolhut/sitegen/internal/patch"
	"github.com/toolhut/sitegen/internal/render"
)

type InitOptions struct {
	Reporter Reporter
}

// Init scaffolds a site for sitegen: a commented sitegen.toml, a marker
// pair in the README (created if absent), and a marker pair in the
// index page when one exists. It is non-interactive so it can run in
// bootstrap scripts.
func Init(root string, opts InitOptions) error {
	reporter := ensureReporter(opts.Reporter)

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	configPath := filepath.Join(rootAbs, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists at %s", config.FileName, configPath)
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.WriteFile(configPath, []byte(configTemplate()), 0o644); err != nil {
		return err
	}
	reporter.Info("created " + config.FileName)

	cfg := config.Default()

	readmeChanged, err := ensureReadmeMarkers(filepath.Join(rootAbs, cfg.Readme), cfg.Markers)
	if err != nil {
		return err
	}
	if readmeChanged {
		reporter.Info("added tools section to " + cfg.Readme)
	}

	indexChanged, err := ensureIndexMarkers(filepath.Join(rootAbs, cfg.Index), cfg.Markers)
	if err != nil {
		if os.IsNotExist(err) {
			reporter.Notice(cfg.Index + " not found, skipping")
		} else {
			return err
		}
	} else if indexChanged {
		reporter.Info("added tools section to " + cfg.Index)
	}

	reporter.Info("next steps:")
	reporter.Info("1. Add tool pages: one .html file per tool with a <title> tag.")
	reporter.Info("2. Optionally add <meta name=\"description\" content=\"...\"> to each.")
	reporter.Info("3. Run `sitegen` to regenerate the README and index sections.")

	return nil
}

func configTemplate() string {
	var b strings.Builder
	b.WriteString("# sitegen configuration. Every key is optional; the values below are\n")
	b.WriteString("# the defaults. Uncomment to change them.\n")
	b.WriteString("#\n")
	b.WriteString("# readme = \"README.md\"\n")
	b.WriteString("# index = \"index.html\"\n")
	b.WriteString("# pattern = \"*.html\"\n")
	b.WriteString("# exclude = [\"drafts-*.html\"]\n")
	b.WriteString("#\n")
	b.WriteString("# [markers]\n")
	b.WriteString("# tools_start = \"<!-- tools-start -->\"\n")
	b.WriteString("# tools_end = \"<!-- tools-end -->\"\n")
	b.WriteString("# updated_start = \"<!-- last-modified-start -->\"\n")
	b.WriteString("# updated_end = \"<!-- last-modified-end -->\"\n")
	b.WriteString("#\n")
	b.WriteString("# [vcs]\n")
	b.WriteString("# disabled = false\n")
	return b.String()
}

// ensureReadmeMarkers appends a tools section to the README, creating a
// minimal README when none exists. An existing marker pair is left
// alone.
func ensureReadmeMarkers(path string, markers config.Markers) (bool, error) {
	section := "## Tools\n\n" + markers.ToolsStart + "\n" + markers.ToolsEnd + "\n"
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			content := "# Tools\n\n" + markers.ToolsStart + "\n" + markers.ToolsEnd + "\n"
			return true, os.WriteFile(path, []byte(content), 0o644)
		}
		return false, err
	}

	content := string(data)
	if strings.Contains(content, markers.ToolsStart) {
		return false, nil
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += "\n" + section
	return true, os.WriteFile(path, []byte(content), 0o644)
}

// ensureIndexMarkers seeds the marker pair (with the empty-catalog
// placeholder) into an existing index page. A missing index propagates
// os.IsNotExist so the caller can soft-skip it.
func ensureIndexMarkers(path string, markers config.Markers) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	content := string(data)
	if strings.Contains(content, markers.ToolsStart) {
		return false, nil
	}
	seeded, err := patch.Upsert(content, markers.ToolsStart, markers.ToolsEnd, render.IndexList(nil))
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	return true, os.WriteFile(path, []byte(seeded), 0o644)
}

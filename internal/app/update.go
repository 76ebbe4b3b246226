package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/toolhut/sitegen/internal/catalog"
	"github.com/toolhut/sitegen/internal/config"
	"github.com/toolhut/sitegen/internal/patch"
	"github.com/toolhut/sitegen/internal/render"
	"github.com/toolhut/sitegen/internal/vcs"
)

type UpdateOptions struct {
	DryRun   bool
	NoVCS    bool
	Lookup   catalog.RevisionLookup
	Reporter Reporter
}

// Update is the full regeneration pass: scan the root for tool pages,
// splice the table into the README, the list into the index page, and
// the timestamp block into every tool page with a known revision date.
func Update(root string, opts UpdateOptions) error {
	reporter := ensureReporter(opts.Reporter)

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	ctx := context.Background()
	reporter.Info("scanning for tools")
	tools, err := catalog.Build(ctx, root, cfg, revisionLookup(root, cfg, opts.NoVCS, opts.Lookup), reporter)
	if err != nil {
		return err
	}
	if len(tools) == 0 {
		reporter.Info("no tool pages found")
	}
	for _, tool := range tools {
		reporter.Found(tool.File, tool.Title)
	}

	patched := func(target string) {
		if opts.DryRun {
			reporter.Info("dry-run " + target)
			return
		}
		reporter.Patched(target, len(tools))
	}

	if err := patchFile(root, cfg.Readme, cfg.Markers.ToolsStart, cfg.Markers.ToolsEnd, render.ReadmeTable(tools), opts.DryRun); err != nil {
		return fmt.Errorf("%s: %w", cfg.Readme, err)
	}
	patched(cfg.Readme)

	// The index page is optional; minimal deployments ship only a README.
	indexErr := patchFile(root, cfg.Index, cfg.Markers.ToolsStart, cfg.Markers.ToolsEnd, render.IndexList(tools), opts.DryRun)
	switch {
	case indexErr == nil:
		patched(cfg.Index)
	case os.IsNotExist(indexErr):
		reporter.Notice(cfg.Index + " not found, skipping")
	default:
		return fmt.Errorf("%s: %w", cfg.Index, indexErr)
	}

	dated := 0
	for _, tool := range tools {
		if tool.Updated != "" {
			dated++
		}
	}
	progress := reporter.Progress("Stamping", dated)
	defer progress.Done()

	for _, tool := range tools {
		if tool.Updated == "" {
			reporter.Skipped(tool.File, "no revision date")
			continue
		}
		progress.Increment(tool.File)
		if err := stampFile(root, tool, cfg.Markers, opts.DryRun); err != nil {
			return fmt.Errorf("%s: %w", tool.File, err)
		}
	}

	reporter.Info("done")
	return nil
}

// revisionLookup picks the lookup for a run. An explicit lookup wins;
// it is how tests substitute a fake for real git history.
func revisionLookup(root string, cfg config.Config, disable bool, explicit catalog.RevisionLookup) catalog.RevisionLookup {
	if explicit != nil {
		return explicit
	}
	if disable || cfg.VCS.Disabled {
		return vcs.None{}
	}
	return vcs.Git{Dir: root}
}

// patchFile reads a document, replaces its marker-bounded section, and
// writes it back. Failures propagate unchanged so callers can
// distinguish a missing file from missing markers.
func patchFile(root, name, start, end, inner string, dryRun bool) error {
	path := filepath.Join(root, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	patched, err := patch.Replace(string(data), start, end, inner)
	if err != nil {
		return err
	}
	if dryRun {
		return nil
	}
	return writeBack(path, data, patched)
}

func stampFile(root string, tool catalog.Tool, markers config.Markers, dryRun bool) error {
	path := filepath.Join(root, tool.File)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	block := render.TimestampBlock(tool.Updated)
	patched, err := patch.Upsert(string(data), markers.UpdatedStart, markers.UpdatedEnd, block)
	if err != nil {
		return err
	}
	if dryRun {
		return nil
	}
	return writeBack(path, data, patched)
}

func writeBack(path string, original []byte, patched string) error {
	if patched == string(original) {
		return nil
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(patched), mode)
}

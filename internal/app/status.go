package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/toolhut/sitegen/internal/catalog"
	"github.com/toolhut/sitegen/internal/config"
	"github.com/toolhut/sitegen/internal/digest"
	"github.com/toolhut/sitegen/internal/patch"
	"github.com/toolhut/sitegen/internal/render"
)

type StatusOptions struct {
	NoVCS    bool
	Lookup   catalog.RevisionLookup
	Reporter Reporter
}

// Status recomputes every generated section and compares it with what
// is on disk. It reports ok, stale, or missing per target and fails
// when anything needs an update, so it can gate CI.
func Status(root string, opts StatusOptions) error {
	reporter := ensureReporter(opts.Reporter)

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	ctx := context.Background()
	tools, err := catalog.Build(ctx, root, cfg, revisionLookup(root, cfg, opts.NoVCS, opts.Lookup), reporter)
	if err != nil {
		return err
	}

	ok, stale, missing := 0, 0, 0
	report := func(kind StatusKind, target string) {
		switch kind {
		case StatusOK:
			ok++
		case StatusStale:
			stale++
		case StatusMissing:
			missing++
		}
		reporter.Status(kind, target)
	}

	report(sectionStatus(root, cfg.Readme, cfg.Markers.ToolsStart, cfg.Markers.ToolsEnd, render.ReadmeTable(tools)), cfg.Readme)

	if _, err := os.Stat(filepath.Join(root, cfg.Index)); os.IsNotExist(err) {
		reporter.Notice(cfg.Index + " not found, skipping")
	} else {
		report(sectionStatus(root, cfg.Index, cfg.Markers.ToolsStart, cfg.Markers.ToolsEnd, render.IndexList(tools)), cfg.Index)
	}

	for _, tool := range tools {
		if tool.Updated == "" {
			reporter.Skipped(tool.File, "no revision date")
			continue
		}
		report(sectionStatus(root, tool.File, cfg.Markers.UpdatedStart, cfg.Markers.UpdatedEnd, render.TimestampBlock(tool.Updated)), tool.File)
	}

	reporter.StatusSummary(ok, stale, missing)
	if stale > 0 || missing > 0 {
		return errors.New("generated sections out of date")
	}
	return nil
}

// sectionStatus compares the digest of the marker-bounded span on disk
// with the digest of the freshly rendered content. A missing file or
// missing marker pair counts as missing, not stale.
func sectionStatus(root, name, start, end, want string) StatusKind {
	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		return StatusMissing
	}
	current, err := patch.Inner(string(data), start, end)
	if err != nil {
		return StatusMissing
	}
	if digest.String(current) != digest.String(want) {
		return StatusStale
	}
	return StatusOK
}

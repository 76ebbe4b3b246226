package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/toolhut/sitegen/internal/catalog"
	"github.com/toolhut/sitegen/internal/config"
	"github.com/toolhut/sitegen/internal/render"
)

type ListOptions struct {
	Format   string
	NoVCS    bool
	Lookup   catalog.RevisionLookup
	Out      io.Writer
	Reporter Reporter
}

// List prints the catalog without touching any target file. The text
// format is for humans; json and yaml feed other build tooling.
func List(root string, opts ListOptions) error {
	reporter := ensureReporter(opts.Reporter)
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	tools, err := catalog.Build(context.Background(), root, cfg, revisionLookup(root, cfg, opts.NoVCS, opts.Lookup), reporter)
	if err != nil {
		return err
	}
	if tools == nil {
		tools = []catalog.Tool{}
	}

	switch opts.Format {
	case "", "text":
		if len(tools) == 0 {
			fmt.Fprintln(out, "no tools")
			return nil
		}
		for _, tool := range tools {
			updated := tool.Updated
			if updated == "" {
				updated = render.DatePlaceholder
			}
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", tool.File, updated, tool.Title, tool.Description)
		}
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tools)
	case "yaml":
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(tools); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json, or yaml)", opts.Format)
	}
}

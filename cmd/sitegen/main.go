package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/toolhut/sitegen/internal/app"
	"github.com/toolhut/sitegen/internal/ui"
)

type CLI struct {
	NoColor bool      `help:"Disable color output."`
	Path    string    `help:"Run as if in this directory."`
	Update  UpdateCmd `cmd:"" default:"1" help:"Regenerate the README table, index list, and timestamp blocks."`
	Status  StatusCmd `cmd:"" help:"Report stale or missing generated sections."`
	List    ListCmd   `cmd:"" help:"Print the tool catalog."`
	Init    InitCmd   `cmd:"" help:"Scaffold sitegen.toml and marker pairs."`
}

type UpdateCmd struct {
	DryRun bool `help:"Report actions without writing files."`
	NoVCS  bool `help:"Skip revision lookups; all dates render as unknown."`
}

type StatusCmd struct {
	NoVCS bool `help:"Skip revision lookups; all dates render as unknown."`
}

type ListCmd struct {
	Format string `help:"Output format: text, json, or yaml." default:"text" enum:"text,json,yaml"`
	NoVCS  bool   `help:"Skip revision lookups; all dates render as unknown."`
}

type InitCmd struct{}

type Context struct {
	Root     string
	Reporter app.Reporter
}

func (c *UpdateCmd) Run(ctx *Context) error {
	return app.Update(ctx.Root, app.UpdateOptions{
		DryRun:   c.DryRun,
		NoVCS:    c.NoVCS,
		Reporter: ctx.Reporter,
	})
}

func (c *StatusCmd) Run(ctx *Context) error {
	return app.Status(ctx.Root, app.StatusOptions{
		NoVCS:    c.NoVCS,
		Reporter: ctx.Reporter,
	})
}

func (c *ListCmd) Run(ctx *Context) error {
	return app.List(ctx.Root, app.ListOptions{
		Format:   c.Format,
		NoVCS:    c.NoVCS,
		Out:      os.Stdout,
		Reporter: ctx.Reporter,
	})
}

func (c *InitCmd) Run(ctx *Context) error {
	return app.Init(ctx.Root, app.InitOptions{Reporter: ctx.Reporter})
}

func main() {
	var cli CLI
	parser := kong.Must(&cli,
		kong.Name("sitegen"),
		kong.Description("Regenerate the static tool catalog from the pages themselves."),
		kong.UsageOnError(),
	)
	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	root, err := resolveRoot(cwd, cli.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	noColor := cli.NoColor || os.Getenv("NO_COLOR") != ""
	reporter := ui.NewRenderer(ui.Options{NoColor: noColor, Out: os.Stdout, Err: os.Stderr})

	if err := ctx.Run(&Context{Root: root, Reporter: reporter}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveRoot(cwd, override string) (string, error) {
	if strings.TrimSpace(override) == "" {
		return cwd, nil
	}
	path := override
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		path = filepath.Dir(path)
	}
	return path, nil
}

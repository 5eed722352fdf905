package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/fs"
	docslog "github.com/fwojciec/docindex/slog"
)

// Dependencies holds shared services and configuration for command execution.
type Dependencies struct {
	Ctx             context.Context
	Stdout          io.Writer
	Stderr          io.Writer
	Logger          *slog.Logger
	IndexCandidates []string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline progress to stderr"`

	Build  BuildCmd  `cmd:"" help:"Build a JSON search artifact from a documentation tree"`
	Patch  PatchCmd  `cmd:"" help:"Patch an existing SQLite search index in place"`
	Search SearchCmd `cmd:"" help:"Query a patched search index"`
}

// ExtractFlags holds the section extraction knobs shared by build and patch.
type ExtractFlags struct {
	Strict           bool `help:"Discard text before the first heading instead of indexing it as an implicit introduction"`
	FenceMarkersOnly bool `help:"Strip only code fence delimiter lines, keeping fenced content searchable"`
	MinLevel         int  `default:"1" help:"Lowest heading level that opens a section"`
	MaxLevel         int  `default:"6" help:"Highest heading level that opens a section"`
}

func (f *ExtractFlags) options() docindex.ExtractOptions {
	opts := docindex.ExtractOptions{
		MinLevel: f.MinLevel,
		MaxLevel: f.MaxLevel,
	}
	if f.Strict {
		opts.Leading = docindex.LeadingDiscard
	}
	if f.FenceMarkersOnly {
		opts.Fences = docindex.FenceMarkersOnly
	}
	return opts
}

// RouteFlags selects an optional route allow-list source. At most one may
// be set.
type RouteFlags struct {
	SiteDir string `help:"Static output directory to scan for published routes"`
	Config  string `help:"Site config file to scan for link: route declarations"`
	Sitemap string `help:"sitemap.xml file listing published routes"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Root string   `arg:"" help:"Documentation root directory"`
	Out  []string `short:"o" default:"build/search-index.json" help:"Output artifact path (repeatable)"`
	Cap  int      `default:"3000" help:"Per-record content length cap in characters"`

	Concurrency int `short:"c" default:"1" help:"Concurrent file read limit"`

	ExtractFlags
	RouteFlags
}

// PatchCmd is the "patch" subcommand.
type PatchCmd struct {
	Root  string   `arg:"" help:"Documentation root directory"`
	Index []string `short:"i" help:"Candidate index file path (repeatable); overrides DOCINDEX_INDEX and the built-in candidates"`

	Concurrency int `short:"c" default:"1" help:"Concurrent file read limit"`

	ExtractFlags
	RouteFlags
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string   `arg:"" help:"Full-text query"`
	Index []string `short:"i" help:"Candidate index file path (repeatable)"`
	Limit int      `short:"n" default:"10" help:"Maximum number of results"`
}

// routeSource builds the route allow-list source selected by the flags, or
// nil when no allow-list is configured.
func (f *RouteFlags) routeSource(deps *Dependencies) (docindex.RouteSource, error) {
	var sources []docindex.RouteSource
	if f.SiteDir != "" {
		sources = append(sources, fs.NewSiteRoutes(f.SiteDir))
	}
	if f.Config != "" {
		sources = append(sources, fs.NewConfigRoutes(f.Config))
	}
	if f.Sitemap != "" {
		sources = append(sources, fs.NewSitemapRoutes(f.Sitemap))
	}
	switch len(sources) {
	case 0:
		return nil, nil
	case 1:
		return docslog.NewLoggingRouteSource(sources[0], deps.Logger), nil
	default:
		return nil, docindex.Errorf(docindex.EINVALID, "at most one of --site-dir, --config, --sitemap may be set")
	}
}

// newLogger builds the stderr logger. Without --verbose only warnings and
// errors are emitted.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

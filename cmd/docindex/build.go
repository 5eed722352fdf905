package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/build"
	"github.com/fwojciec/docindex/fs"
	docslog "github.com/fwojciec/docindex/slog"
)

// Run executes the build command: collect, extract, and write the JSON
// search artifact.
func (c *BuildCmd) Run(deps *Dependencies) error {
	routes, err := c.routeSource(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	b := &build.Builder{
		Source:      fs.NewSource(),
		Writer:      docslog.NewLoggingRecordWriter(fs.NewArtifactWriter(c.Out...), deps.Logger),
		Routes:      routes,
		Extract:     c.ExtractFlags.options(),
		Records:     docindex.RecordOptions{ContentCap: c.Cap},
		Concurrency: c.Concurrency,
	}

	result, err := b.Run(deps.Ctx, c.Root)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d documents: %d records", result.Documents, result.Records)
	if result.Dropped > 0 {
		fmt.Fprintf(deps.Stdout, " (%d dropped by route filter)", result.Dropped)
	}
	fmt.Fprintln(deps.Stdout)
	for _, path := range c.Out {
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	}

	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/build"
	"github.com/fwojciec/docindex/fs"
	"github.com/fwojciec/docindex/goldmark"
	docslog "github.com/fwojciec/docindex/slog"
	"github.com/fwojciec/docindex/sqlite"
)

// Run executes the patch command: rebuild records from the documentation
// tree and replace the contents of every existing candidate index file.
// The index files must already exist; patch never creates them.
func (c *PatchCmd) Run(deps *Dependencies) error {
	candidates := c.Index
	if len(candidates) == 0 {
		candidates = deps.IndexCandidates
	}

	var existing []string
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			existing = append(existing, path)
		}
	}
	if len(existing) == 0 {
		fmt.Fprintf(deps.Stderr, "No search index found at: %s\n", strings.Join(candidates, ", "))
		fmt.Fprintln(deps.Stderr, "Hint: the index file is created by the site build; run that first, or set DOCINDEX_INDEX")
		return docindex.Errorf(docindex.ENOTFOUND, "search index not found")
	}

	routes, err := c.routeSource(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	// Records are built once and applied to every index file.
	buf := &recordBuffer{}
	b := &build.Builder{
		Source:      fs.NewSource(),
		Writer:      buf,
		Routes:      routes,
		Renderer:    goldmark.NewRenderer(),
		Extract:     c.ExtractFlags.options(),
		Concurrency: c.Concurrency,
	}

	result, err := b.Run(deps.Ctx, c.Root)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	for _, path := range existing {
		if err := patchIndex(deps, path, buf.records); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Patched %s: %d records", path, result.Records)
		if result.Dropped > 0 {
			fmt.Fprintf(deps.Stdout, " (%d dropped by route filter)", result.Dropped)
		}
		fmt.Fprintln(deps.Stdout)
	}

	return nil
}

// patchIndex replaces all records in the index file at path.
func patchIndex(deps *Dependencies, path string, records []docindex.Record) error {
	db := sqlite.NewDB(path)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open index at %q: %w", path, err)
	}
	defer db.Close()

	svc := docslog.NewLoggingRecordService(sqlite.NewRecordService(db), deps.Logger)
	return svc.ReplaceRecords(deps.Ctx, records)
}

// recordBuffer captures built records in memory so one pipeline run can
// feed several index files.
type recordBuffer struct {
	records []docindex.Record
}

var _ docindex.RecordWriter = (*recordBuffer)(nil)

func (b *recordBuffer) WriteRecords(_ context.Context, records []docindex.Record) error {
	b.records = records
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/docindex"
	docslog "github.com/fwojciec/docindex/slog"
	"github.com/fwojciec/docindex/sqlite"
)

// Run executes the search command against the first existing index file.
func (c *SearchCmd) Run(deps *Dependencies) error {
	candidates := c.Index
	if len(candidates) == 0 {
		candidates = deps.IndexCandidates
	}

	var path string
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			path = p
			break
		}
	}
	if path == "" {
		fmt.Fprintln(deps.Stderr, "No search index found. Run 'docindex patch' first, or set DOCINDEX_INDEX")
		return docindex.Errorf(docindex.ENOTFOUND, "search index not found")
	}

	db := sqlite.NewDB(path)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open index at %q: %w", path, err)
	}
	defer db.Close()

	svc := docslog.NewLoggingRecordService(sqlite.NewRecordService(db), deps.Logger)
	results, err := svc.SearchRecords(deps.Ctx, c.Query, docindex.SearchOptions{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, docindex.FormatResults(results))
	return nil
}

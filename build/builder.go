// Package build provides indexing pipeline orchestration.
// It coordinates source collection, section extraction, record
// construction, route filtering, and record persistence.
package build

import (
	"context"

	"github.com/fwojciec/docindex"
	"golang.org/x/sync/errgroup"
)

// Builder orchestrates one indexing run over a documentation root.
type Builder struct {
	Source   docindex.DocumentSource
	Writer   docindex.RecordWriter
	Routes   docindex.RouteSource  // optional route allow-list
	Renderer docindex.HTMLRenderer // optional section HTML rendering

	Extract docindex.ExtractOptions
	Records docindex.RecordOptions

	// Concurrent file reads. Output order is fixed by input position,
	// so the setting never changes results. Values below 1 mean
	// sequential.
	Concurrency int
}

// Result holds the outcome of an indexing run.
type Result struct {
	Documents int
	Sections  int
	Records   int

	// Records excluded because their page is not published.
	Dropped int
}

// Run executes the pipeline: collect files, extract sections, build
// records, filter by routes, and write. Any file read error aborts the
// whole run.
func (b *Builder) Run(ctx context.Context, root string) (*Result, error) {
	paths, err := b.Source.Collect(ctx, root)
	if err != nil {
		return nil, err
	}

	// Reads may run concurrently; each result slots into its position
	// so output stays byte-stable across runs.
	docs := make([]*docindex.Document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	limit := b.Concurrency
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			doc, err := b.Source.Load(gctx, root, path)
			if err != nil {
				return err
			}
			if err := doc.Validate(); err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Documents: len(docs)}

	var records []docindex.Record
	for _, doc := range docs {
		sections := docindex.ExtractSections(doc.Body, b.Extract)
		result.Sections += len(sections)

		recs := docindex.BuildRecords(doc, sections, b.Records)
		if b.Renderer != nil {
			for i := range recs {
				html, err := b.Renderer.Render(sections[i].Body)
				if err != nil {
					return nil, docindex.Errorf(docindex.EINTERNAL, "rendering section %q: %v", recs[i].ID, err)
				}
				recs[i].HTML = html
			}
		}
		records = append(records, recs...)
	}

	if b.Routes != nil {
		routes, err := b.Routes.Routes(ctx)
		if err != nil {
			return nil, err
		}
		records, result.Dropped = docindex.FilterRecords(records, routes)
	}
	result.Records = len(records)

	if err := b.Writer.WriteRecords(ctx, records); err != nil {
		return nil, err
	}

	return result, nil
}

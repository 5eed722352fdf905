package fs

import (
	"context"
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/docindex"
)

// Ensure ArtifactWriter implements docindex.RecordWriter at compile time.
var _ docindex.RecordWriter = (*ArtifactWriter)(nil)

// ArtifactWriter writes records as a JSON array of {title, content, url}
// objects, mirrored to one or more output paths.
type ArtifactWriter struct {
	paths []string
}

// NewArtifactWriter creates an ArtifactWriter for the given output paths.
func NewArtifactWriter(paths ...string) *ArtifactWriter {
	return &ArtifactWriter{paths: paths}
}

// artifactRecord is the serialized form consumed by the search widget.
type artifactRecord struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// WriteRecords serializes the records and writes the artifact to every
// configured path. An empty record set produces an empty JSON array.
// A missing output directory is created and the write retried once.
func (w *ArtifactWriter) WriteRecords(ctx context.Context, records []docindex.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := make([]artifactRecord, 0, len(records))
	for _, r := range records {
		out = append(out, artifactRecord{
			Title:   r.Title,
			Content: r.Text,
			URL:     r.Href,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return docindex.Errorf(docindex.EINTERNAL, "encoding records: %s", err)
	}
	data = append(data, '\n')

	for _, path := range w.paths {
		if err := writeFile(path, data); err != nil {
			return err
		}
	}
	return nil
}

// writeFile writes data to path, creating the parent directory and
// retrying once if it does not exist.
func writeFile(path string, data []byte) error {
	err := os.WriteFile(path, data, 0644)
	if errors.Is(err, iofs.ErrNotExist) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return docindex.Errorf(docindex.EIO, "creating output directory for %q: %s", path, mkErr)
		}
		err = os.WriteFile(path, data, 0644)
	}
	if err != nil {
		return docindex.Errorf(docindex.EIO, "writing %q: %s", path, err)
	}
	return nil
}

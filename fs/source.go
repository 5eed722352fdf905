// Package fs provides filesystem-based implementations for docindex:
// source file collection, route allow-list derivation, and the JSON
// artifact writer.
package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/frontmatter"
)

// Ensure Source implements docindex.DocumentSource at compile time.
var _ docindex.DocumentSource = (*Source)(nil)

// Source collects and loads Markdown/MDX files from a documentation root.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Collect walks root recursively and returns every .md/.mdx file path in
// traversal order. Directories are never yielded.
func (s *Source) Collect(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, docindex.Errorf(docindex.EIO, "documentation root %q: %s", root, err)
	}
	if !info.IsDir() {
		return nil, docindex.Errorf(docindex.EIO, "documentation root %q is not a directory", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".mdx":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, docindex.Errorf(docindex.EIO, "walking %q: %s", root, err)
	}

	return paths, nil
}

// Load reads one file and separates front-matter from body. Malformed
// front-matter (missing closing fence or invalid YAML) is recovered by
// treating the whole file as body.
func (s *Source) Load(ctx context.Context, root, path string) (*docindex.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, docindex.Errorf(docindex.EIO, "reading %q: %s", path, err)
	}

	relPath, err := filepath.Rel(root, path)
	if err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "path %q is not under root %q", path, root)
	}

	doc := &docindex.Document{
		Path:    path,
		RelPath: filepath.ToSlash(relPath),
	}

	meta, body, had, err := frontmatter.Split(raw)
	if err != nil {
		// Unterminated front-matter fence: the whole file is body.
		doc.Body = string(raw)
		return doc, nil
	}
	doc.Body = string(body)

	if had {
		fields, err := frontmatter.Parse(meta)
		if err != nil {
			// Invalid YAML: keep the body, drop the metadata.
			return doc, nil
		}
		doc.Meta = fields
		doc.Title = frontmatter.Title(fields)
	}

	return doc, nil
}

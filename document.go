package docindex

import "context"

// Document represents one Markdown or MDX source file under the
// documentation root.
type Document struct {
	// Absolute path on disk.
	Path string `json:"path"`

	// Path relative to the documentation root, e.g. "guide/setup.mdx".
	RelPath string `json:"relPath"`

	// Page title from front-matter, may be empty.
	Title string `json:"title"`

	// Parsed front-matter fields, nil when the document has none.
	Meta map[string]any `json:"meta,omitempty"`

	// Body text after the front-matter block.
	Body string `json:"body"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	if d.RelPath == "" {
		return Errorf(EINVALID, "document relative path required")
	}
	return nil
}

// DocumentSource finds and loads documentation source files.
// Implementations hide filesystem traversal and front-matter handling.
type DocumentSource interface {
	// Collect returns the paths of all Markdown/MDX files under root,
	// in traversal order. Returns EIO if root is missing or unreadable.
	Collect(ctx context.Context, root string) ([]string, error)

	// Load reads one file and separates front-matter from body.
	// Malformed front-matter is recovered by treating the whole file
	// as body. Returns EIO if the file cannot be read.
	Load(ctx context.Context, root, path string) (*Document, error)
}

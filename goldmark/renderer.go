// Package goldmark renders section Markdown to HTML for storage in the
// search index.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docindex"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Ensure Renderer implements docindex.HTMLRenderer at compile time.
var _ docindex.HTMLRenderer = (*Renderer)(nil)

// Renderer wraps goldmark to convert Markdown to HTML.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer with GitHub Flavored Markdown
// extensions enabled.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render transforms Markdown content into HTML. Empty input renders to an
// empty string.
func (r *Renderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package mock

import "github.com/fwojciec/docindex"

var _ docindex.HTMLRenderer = (*HTMLRenderer)(nil)

// HTMLRenderer is a mock implementation of docindex.HTMLRenderer.
type HTMLRenderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *HTMLRenderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}

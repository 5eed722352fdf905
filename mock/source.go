package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of docindex.DocumentSource.
type DocumentSource struct {
	CollectFn func(ctx context.Context, root string) ([]string, error)
	LoadFn    func(ctx context.Context, root, path string) (*docindex.Document, error)
}

func (s *DocumentSource) Collect(ctx context.Context, root string) ([]string, error) {
	return s.CollectFn(ctx, root)
}

func (s *DocumentSource) Load(ctx context.Context, root, path string) (*docindex.Document, error) {
	return s.LoadFn(ctx, root, path)
}

package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.RouteSource = (*RouteSource)(nil)

// RouteSource is a mock implementation of docindex.RouteSource.
type RouteSource struct {
	RoutesFn func(ctx context.Context) (docindex.RouteSet, error)
}

func (s *RouteSource) Routes(ctx context.Context) (docindex.RouteSet, error) {
	return s.RoutesFn(ctx)
}

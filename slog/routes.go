package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingRouteSource implements docindex.RouteSource.
var _ docindex.RouteSource = (*LoggingRouteSource)(nil)

// LoggingRouteSource wraps a RouteSource with logging.
type LoggingRouteSource struct {
	next   docindex.RouteSource
	logger *slog.Logger
}

// NewLoggingRouteSource creates a new LoggingRouteSource.
func NewLoggingRouteSource(next docindex.RouteSource, logger *slog.Logger) *LoggingRouteSource {
	return &LoggingRouteSource{next: next, logger: logger}
}

// Routes delegates to the wrapped source and logs the operation.
func (s *LoggingRouteSource) Routes(ctx context.Context) (routes docindex.RouteSet, err error) {
	defer func(begin time.Time) {
		s.logger.Info("routes discovered",
			"count", len(routes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Routes(ctx)
}

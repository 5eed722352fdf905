package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingRecordService implements docindex.RecordService.
var _ docindex.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with logging.
type LoggingRecordService struct {
	next   docindex.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next docindex.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// ReplaceRecords delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) ReplaceRecords(ctx context.Context, records []docindex.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("records replaced",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReplaceRecords(ctx, records)
}

// SearchRecords delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) SearchRecords(ctx context.Context, query string, opts docindex.SearchOptions) (results []docindex.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("records searched",
			"query", query,
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchRecords(ctx, query, opts)
}

// CountRecords delegates to the wrapped service.
func (s *LoggingRecordService) CountRecords(ctx context.Context) (int, error) {
	return s.next.CountRecords(ctx)
}

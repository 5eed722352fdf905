// Package slog provides logging decorators for docindex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingRecordWriter implements docindex.RecordWriter.
var _ docindex.RecordWriter = (*LoggingRecordWriter)(nil)

// LoggingRecordWriter wraps a RecordWriter with logging.
type LoggingRecordWriter struct {
	next   docindex.RecordWriter
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter.
func NewLoggingRecordWriter(next docindex.RecordWriter, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, logger: logger}
}

// WriteRecords delegates to the wrapped writer and logs the operation.
func (w *LoggingRecordWriter) WriteRecords(ctx context.Context, records []docindex.Record) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("records written",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteRecords(ctx, records)
}

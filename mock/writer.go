package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of docindex.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, records []docindex.Record) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, records []docindex.Record) error {
	return w.WriteRecordsFn(ctx, records)
}

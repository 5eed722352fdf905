package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of docindex.RecordService.
type RecordService struct {
	ReplaceRecordsFn func(ctx context.Context, records []docindex.Record) error
	SearchRecordsFn  func(ctx context.Context, query string, opts docindex.SearchOptions) ([]docindex.SearchResult, error)
	CountRecordsFn   func(ctx context.Context) (int, error)
}

func (s *RecordService) ReplaceRecords(ctx context.Context, records []docindex.Record) error {
	return s.ReplaceRecordsFn(ctx, records)
}

func (s *RecordService) SearchRecords(ctx context.Context, query string, opts docindex.SearchOptions) ([]docindex.SearchResult, error) {
	return s.SearchRecordsFn(ctx, query, opts)
}

func (s *RecordService) CountRecords(ctx context.Context) (int, error) {
	return s.CountRecordsFn(ctx)
}

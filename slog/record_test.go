package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/docindex"
	docslog "github.com/fwojciec/docindex/slog"
	"github.com/fwojciec/docindex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecordService(t *testing.T) {
	t.Parallel()

	t.Run("logs replace with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			ReplaceRecordsFn: func(_ context.Context, _ []docindex.Record) error {
				return nil
			},
		}

		svc := docslog.NewLoggingRecordService(inner, logger)
		err := svc.ReplaceRecords(context.Background(), []docindex.Record{
			{ID: "/a::0", Href: "/a"},
		})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "records replaced")
		assert.Contains(t, output, "count=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs search with query and result count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			SearchRecordsFn: func(_ context.Context, _ string, _ docindex.SearchOptions) ([]docindex.SearchResult, error) {
				return []docindex.SearchResult{
					{Record: &docindex.Record{ID: "/a::0", Href: "/a"}, Score: 1.5},
				}, nil
			},
		}

		svc := docslog.NewLoggingRecordService(inner, logger)
		results, err := svc.SearchRecords(context.Background(), "installer", docindex.SearchOptions{})

		require.NoError(t, err)
		assert.Len(t, results, 1)
		output := buf.String()
		assert.Contains(t, output, "records searched")
		assert.Contains(t, output, "query=installer")
		assert.Contains(t, output, "results=1")
	})

	t.Run("logs search errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			SearchRecordsFn: func(_ context.Context, _ string, _ docindex.SearchOptions) ([]docindex.SearchResult, error) {
				return nil, docindex.Errorf(docindex.EINVALID, "search query required")
			},
		}

		svc := docslog.NewLoggingRecordService(inner, logger)
		_, err := svc.SearchRecords(context.Background(), "", docindex.SearchOptions{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "search query required")
	})

	t.Run("count delegates to the wrapped service", func(t *testing.T) {
		t.Parallel()

		inner := &mock.RecordService{
			CountRecordsFn: func(_ context.Context) (int, error) {
				return 7, nil
			},
		}

		svc := docslog.NewLoggingRecordService(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		count, err := svc.CountRecords(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 7, count)
	})
}

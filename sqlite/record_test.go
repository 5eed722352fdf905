package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func testRecords() []docindex.Record {
	return []docindex.Record{
		{
			ID:     "/guide::0",
			Href:   "/guide",
			Title:  "The Guide",
			Text:   "welcome to the guide",
			HTML:   "<p>welcome to the guide</p>",
			IsPage: true,
		},
		{
			ID:     "/guide#authentication::1",
			Href:   "/guide#authentication",
			Title:  "Authentication",
			Titles: []string{"The Guide"},
			Text:   "tokens and sessions",
		},
		{
			ID:     "/faq::0",
			Href:   "/faq",
			Title:  "FAQ",
			Text:   "frequently asked questions",
			IsPage: true,
		},
	}
}

func TestRecordService_ReplaceRecords(t *testing.T) {
	t.Parallel()

	t.Run("inserts records and patch metadata", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		require.NoError(t, svc.ReplaceRecords(ctx, testRecords()))

		count, err := svc.CountRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		patch, err := svc.LastPatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, patch.RecordCount)
		assert.NotEmpty(t, patch.ID)
		assert.NotEmpty(t, patch.ContentHash)
		assert.False(t, patch.CreatedAt.IsZero())
	})

	t.Run("replaces previous records", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		require.NoError(t, svc.ReplaceRecords(ctx, testRecords()))
		require.NoError(t, svc.ReplaceRecords(ctx, testRecords()[:1]))

		count, err := svc.CountRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		// Replaced records are no longer searchable
		results, err := svc.SearchRecords(ctx, "sessions", docindex.SearchOptions{})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("replacing with zero records empties the index", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		require.NoError(t, svc.ReplaceRecords(ctx, testRecords()))
		require.NoError(t, svc.ReplaceRecords(ctx, nil))

		count, err := svc.CountRecords(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)

		patch, err := svc.LastPatch(ctx)
		require.NoError(t, err)
		assert.Zero(t, patch.RecordCount)
	})

	t.Run("last patch reflects the most recent of rapid successive replaces", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		// Back-to-back replaces can land on the same clock reading;
		// the newest patch must still win.
		require.NoError(t, svc.ReplaceRecords(ctx, testRecords()))
		require.NoError(t, svc.ReplaceRecords(ctx, testRecords()[:2]))
		require.NoError(t, svc.ReplaceRecords(ctx, testRecords()[:1]))

		patch, err := svc.LastPatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, patch.RecordCount)
	})

	t.Run("rejects invalid records", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewRecordService(db)

		err := svc.ReplaceRecords(context.Background(), []docindex.Record{{Href: "/a"}})

		assert.Equal(t, docindex.EINVALID, docindex.ErrorCode(err))
	})
}

func TestRecordService_SearchRecords(t *testing.T) {
	t.Parallel()

	t.Run("matches text content", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()
		require.NoError(t, svc.ReplaceRecords(ctx, testRecords()))

		results, err := svc.SearchRecords(ctx, "tokens", docindex.SearchOptions{})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "/guide#authentication::1", results[0].Record.ID)
		assert.Equal(t, []string{"The Guide"}, results[0].Record.Titles)
	})

	t.Run("matches breadcrumb titles", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()
		require.NoError(t, svc.ReplaceRecords(ctx, testRecords()))

		results, err := svc.SearchRecords(ctx, "guide", docindex.SearchOptions{})

		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(results), 2)
	})

	t.Run("respects the limit", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()
		require.NoError(t, svc.ReplaceRecords(ctx, testRecords()))

		results, err := svc.SearchRecords(ctx, "guide", docindex.SearchOptions{Limit: 1})

		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("empty query is invalid", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewRecordService(db)

		_, err := svc.SearchRecords(context.Background(), "", docindex.SearchOptions{})

		assert.Equal(t, docindex.EINVALID, docindex.ErrorCode(err))
	})
}

func TestRecordService_LastPatch_NeverPatched(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	svc := sqlite.NewRecordService(db)

	_, err := svc.LastPatch(context.Background())

	assert.Equal(t, docindex.ENOTFOUND, docindex.ErrorCode(err))
}

package sqlite

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docindex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docindex.RecordService = (*RecordService)(nil)

// RecordService implements docindex.RecordService using SQLite FTS5.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashRecords computes xxHash over record IDs and texts, returning a hex
// string that identifies the indexed content.
func hashRecords(records []docindex.Record) string {
	h := xxhash.New()
	for _, r := range records {
		h.WriteString(r.ID)
		h.WriteString("\x00")
		h.WriteString(r.Text)
		h.WriteString("\x00")
	}
	sum := h.Sum64()
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(sum >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// ReplaceRecords atomically replaces all indexed records and their FTS
// rows, and logs a patch entry describing the new index contents.
func (s *RecordService) ReplaceRecords(ctx context.Context, records []docindex.Record) error {
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO records_fts(records_fts) VALUES('delete-all')`); err != nil {
		return fmt.Errorf("clearing full-text index: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}

	for i, r := range records {
		titles, err := json.Marshal(r.Titles)
		if err != nil {
			return fmt.Errorf("encoding titles for %q: %w", r.ID, err)
		}

		res, err := tx.ExecContext(ctx, `
			INSERT INTO records (id, href, title, titles, text, html, is_page, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, r.ID, r.Href, r.Title, string(titles), r.Text, r.HTML, r.IsPage, i)
		if err != nil {
			return fmt.Errorf("inserting record %q: %w", r.ID, err)
		}

		rowid, err := res.LastInsertId()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO records_fts (rowid, title, titles, text)
			VALUES (?, ?, ?, ?)
		`, rowid, r.Title, joinTitles(r.Titles), r.Text); err != nil {
			return fmt.Errorf("indexing record %q: %w", r.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO patches (id, record_count, content_hash, created_at)
		VALUES (?, ?, ?, ?)
	`, uuid.New().String(), len(records), hashRecords(records), time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("recording patch: %w", err)
	}

	return tx.Commit()
}

// SearchRecords performs full-text search over title, breadcrumb and text.
// Results are ordered by BM25 relevance, best match first.
func (s *RecordService) SearchRecords(ctx context.Context, query string, opts docindex.SearchOptions) ([]docindex.SearchResult, error) {
	if query == "" {
		return nil, docindex.Errorf(docindex.EINVALID, "search query required")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.href, r.title, r.titles, r.text, r.html, r.is_page,
		       bm25(records_fts) AS score
		FROM records_fts
		JOIN records r ON r.rowid = records_fts.rowid
		WHERE records_fts MATCH ?
		ORDER BY score
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []docindex.SearchResult
	for rows.Next() {
		var rec docindex.Record
		var titles string
		var score float64

		if err := rows.Scan(&rec.ID, &rec.Href, &rec.Title, &titles, &rec.Text,
			&rec.HTML, &rec.IsPage, &score); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(titles), &rec.Titles); err != nil {
			return nil, fmt.Errorf("decoding titles for %q: %w", rec.ID, err)
		}

		// bm25 returns lower-is-better negative scores; flip the sign so
		// callers see higher-is-better.
		results = append(results, docindex.SearchResult{Record: &rec, Score: -score})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// CountRecords returns the number of indexed records.
func (s *RecordService) CountRecords(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Patch describes one index rewrite.
type Patch struct {
	ID          string
	RecordCount int
	ContentHash string
	CreatedAt   time.Time
}

// LastPatch returns the most recent patch entry.
// Returns ENOTFOUND if the index has never been patched.
func (s *RecordService) LastPatch(ctx context.Context) (*Patch, error) {
	var p Patch
	var createdAt string

	// rowid breaks ties between patches written within the same instant.
	err := s.db.QueryRowContext(ctx, `
		SELECT id, record_count, content_hash, created_at
		FROM patches
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`).Scan(&p.ID, &p.RecordCount, &p.ContentHash, &createdAt)
	if err != nil {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "index has not been patched")
	}

	p.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// joinTitles flattens the breadcrumb for full-text matching.
func joinTitles(titles []string) string {
	out := ""
	for _, t := range titles {
		if t == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += t
	}
	return out
}

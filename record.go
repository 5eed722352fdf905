package docindex

import (
	"context"
	"strconv"
	"strings"
)

// Record is a serializable unit of searchable content derived from one
// non-empty document section. Records are value objects, created fresh
// each run and never mutated after construction.
type Record struct {
	// Globally unique identifier: href plus a positional suffix, so two
	// sections sharing an anchor still produce distinct IDs.
	ID string `json:"id"`

	// Page URL plus "#anchor". The page-level record uses the bare page
	// URL with no fragment.
	Href string `json:"href"`

	// Section title, composed with the document's base title when the
	// document has one.
	Title string `json:"title"`

	// Ancestor heading breadcrumb.
	Titles []string `json:"titles"`

	// Cleaned section text, possibly length-capped.
	Text string `json:"text"`

	// Rendered HTML of the section body. Only populated when an HTML
	// renderer is configured.
	HTML string `json:"html,omitempty"`

	// True for the page-level record.
	IsPage bool `json:"isPage"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "record ID required")
	}
	if r.Href == "" {
		return Errorf(EINVALID, "record href required")
	}
	return nil
}

// Route returns the record's page path: the href with any fragment stripped.
func (r *Record) Route() string {
	route, _, _ := strings.Cut(r.Href, "#")
	return route
}

// RecordOptions configures record construction.
type RecordOptions struct {
	// Maximum length of Text per record in characters. Zero means no cap.
	ContentCap int
}

// PageURL maps a root-relative document path to its canonical page URL:
// the extension is stripped and a trailing "/index" segment collapses to
// the parent path, so "guide/index.mdx" maps to "/guide" and a root
// "index.mdx" maps to "/".
func PageURL(relPath string) string {
	p := strings.ReplaceAll(relPath, "\\", "/")
	p = strings.TrimPrefix(p, "/")
	for _, ext := range []string{".mdx", ".md"} {
		if trimmed, ok := strings.CutSuffix(p, ext); ok {
			p = trimmed
			break
		}
	}
	if p == "index" {
		return "/"
	}
	if parent, ok := strings.CutSuffix(p, "/index"); ok {
		p = parent
	}
	return "/" + p
}

// BuildRecords derives records from a document's retained sections.
// Records preserve section order; IDs are unique within the document even
// when sections share an anchor.
func BuildRecords(doc *Document, sections []Section, opts RecordOptions) []Record {
	if len(sections) == 0 {
		return nil
	}

	base := PageURL(doc.RelPath)
	records := make([]Record, 0, len(sections))

	for i, s := range sections {
		href := base + "#" + s.Anchor
		if s.IsPage {
			href = base
		}

		title := s.Title
		if s.IsPage && doc.Title != "" {
			title = doc.Title
		} else if doc.Title != "" && doc.Title != s.Title {
			title = s.Title + " - " + doc.Title
		}

		text := s.Text
		if opts.ContentCap > 0 {
			if runes := []rune(text); len(runes) > opts.ContentCap {
				text = string(runes[:opts.ContentCap])
			}
		}

		records = append(records, Record{
			ID:     href + "::" + strconv.Itoa(i),
			Href:   href,
			Title:  title,
			Titles: s.Titles,
			Text:   text,
			IsPage: s.IsPage,
		})
	}

	return records
}

// RouteSet is the set of page paths that are actually published. It is used
// to exclude draft or internal content from the index.
type RouteSet map[string]struct{}

// Contains reports whether the route is in the set.
func (s RouteSet) Contains(route string) bool {
	_, ok := s[route]
	return ok
}

// Add normalizes and inserts a route: a leading slash is ensured and a
// trailing slash is stripped (except for the root route).
func (s RouteSet) Add(route string) {
	route = strings.TrimSuffix(route, "/")
	if route == "" {
		route = "/"
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	s[route] = struct{}{}
}

// FilterRecords drops records whose page path is absent from the route set.
// It returns the retained records and the number dropped.
func FilterRecords(records []Record, routes RouteSet) ([]Record, int) {
	if routes == nil {
		return records, 0
	}
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if routes.Contains(r.Route()) {
			kept = append(kept, r)
		}
	}
	return kept, len(records) - len(kept)
}

// RouteSource derives the set of published page paths, e.g. from a rendered
// site output directory, a site config file, or a sitemap.
type RouteSource interface {
	Routes(ctx context.Context) (RouteSet, error)
}

// RecordWriter persists a batch of records, e.g. as a JSON artifact.
type RecordWriter interface {
	WriteRecords(ctx context.Context, records []Record) error
}

// HTMLRenderer renders a section's markdown body to HTML for storage
// alongside the indexed text.
type HTMLRenderer interface {
	Render(markdown string) (string, error)
}

// SearchOptions configures full-text queries.
type SearchOptions struct {
	// Maximum number of results to return.
	Limit int `json:"limit,omitempty"`
}

// SearchResult represents a full-text search match.
type SearchResult struct {
	Record *Record `json:"record"`
	Score  float64 `json:"score"`
}

// RecordService represents a persistent full-text record index.
type RecordService interface {
	// ReplaceRecords atomically replaces all indexed records.
	ReplaceRecords(ctx context.Context, records []Record) error

	// SearchRecords performs full-text search over title, breadcrumb,
	// and text, ordered by relevance.
	SearchRecords(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)

	// CountRecords returns the number of indexed records.
	CountRecords(ctx context.Context) (int, error)
}

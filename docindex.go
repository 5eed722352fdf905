// Package docindex turns a directory tree of Markdown/MDX documentation
// into a full-text search index. Documents are split into heading-delimited
// sections with stable anchors and breadcrumb titles, sections become search
// records with canonical URLs, and records are written either as a JSON
// artifact or into a SQLite FTS index.
//
// This package contains domain types, pure text functions, and service
// interfaces following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency or concern
// (e.g., sqlite/, goldmark/, fs/).
package docindex

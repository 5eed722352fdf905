package fs

import (
	"context"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docindex"
)

// Ensure SitemapRoutes implements docindex.RouteSource at compile time.
var _ docindex.RouteSource = (*SitemapRoutes)(nil)

// SitemapRoutes derives published routes from a sitemap.xml file written
// by the static-site build.
type SitemapRoutes struct {
	// Path of the sitemap.xml file.
	Path string
}

// NewSitemapRoutes creates a SitemapRoutes for the given sitemap file.
func NewSitemapRoutes(path string) *SitemapRoutes {
	return &SitemapRoutes{Path: path}
}

// Routes parses the sitemap and returns the path component of every
// <url><loc> entry.
func (s *SitemapRoutes) Routes(ctx context.Context) (docindex.RouteSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(s.Path); err != nil {
		return nil, docindex.Errorf(docindex.EIO, "sitemap %q: %s", s.Path, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, docindex.Errorf(docindex.EINVALID, "sitemap %q is empty", s.Path)
	}

	routes := docindex.RouteSet{}
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		raw := strings.TrimSpace(loc.Text())
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		routes.Add(u.Path)
	}

	return routes, nil
}

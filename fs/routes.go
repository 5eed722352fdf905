package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fwojciec/docindex"
)

// Ensure route sources implement docindex.RouteSource at compile time.
var (
	_ docindex.RouteSource = (*SiteRoutes)(nil)
	_ docindex.RouteSource = (*ConfigRoutes)(nil)
)

// SiteRoutes derives published routes from a rendered static-site output
// directory: every directory containing an index.html is a published page.
type SiteRoutes struct {
	// Root of the rendered site output.
	Dir string
}

// NewSiteRoutes creates a SiteRoutes for the given output directory.
func NewSiteRoutes(dir string) *SiteRoutes {
	return &SiteRoutes{Dir: dir}
}

// Routes scans the output directory tree for index.html artifacts.
func (s *SiteRoutes) Routes(ctx context.Context) (docindex.RouteSet, error) {
	info, err := os.Stat(s.Dir)
	if err != nil {
		return nil, docindex.Errorf(docindex.EIO, "site output directory %q: %s", s.Dir, err)
	}
	if !info.IsDir() {
		return nil, docindex.Errorf(docindex.EIO, "site output %q is not a directory", s.Dir)
	}

	routes := docindex.RouteSet{}
	err = filepath.WalkDir(s.Dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || d.Name() != "index.html" {
			return nil
		}
		rel, err := filepath.Rel(s.Dir, filepath.Dir(path))
		if err != nil {
			return err
		}
		if rel == "." {
			routes.Add("/")
		} else {
			routes.Add(filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, docindex.Errorf(docindex.EIO, "scanning %q: %s", s.Dir, err)
	}

	return routes, nil
}

// linkRe matches link declarations in a site config file,
// e.g. link: '/guide/setup' or link: "/faq".
var linkRe = regexp.MustCompile(`link:\s*['"]([^'"]+)['"]`)

// ConfigRoutes derives published routes from the link declarations of a
// site configuration file.
type ConfigRoutes struct {
	// Path of the site configuration file.
	Path string
}

// NewConfigRoutes creates a ConfigRoutes for the given config file.
func NewConfigRoutes(path string) *ConfigRoutes {
	return &ConfigRoutes{Path: path}
}

// Routes extracts every link declaration from the config file.
func (c *ConfigRoutes) Routes(ctx context.Context) (docindex.RouteSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, docindex.Errorf(docindex.EIO, "site config %q: %s", c.Path, err)
	}

	routes := docindex.RouteSet{}
	for _, m := range linkRe.FindAllSubmatch(raw, -1) {
		routes.Add(string(m[1]))
	}

	return routes, nil
}

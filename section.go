package docindex

import (
	"regexp"
	"strings"
)

// Section is a contiguous run of body text following one heading line,
// up to the next heading at a tracked level or end of document.
type Section struct {
	// Heading depth, 1-6.
	Level int `json:"level"`

	// Heading text, trimmed.
	Title string `json:"title"`

	// URL fragment derived from the title. Duplicate titles produce
	// duplicate anchors; record IDs disambiguate them.
	Anchor string `json:"anchor"`

	// Ancestor heading titles, one per level above this section,
	// carrying forward the last-seen title at each shallower level.
	Titles []string `json:"titles"`

	// True only for the first section in the document.
	IsPage bool `json:"isPage"`

	// Raw markdown body of the section, trimmed.
	Body string `json:"-"`

	// Cleaned plain text body of the section.
	Text string `json:"text"`
}

// LeadingPolicy controls what happens to body text that appears before the
// first heading of a document.
type LeadingPolicy int

const (
	// LeadingImplicit wraps pre-heading text in an implicit page-level
	// section. A document with zero headings yields one section.
	LeadingImplicit LeadingPolicy = iota

	// LeadingDiscard drops pre-heading text. A document with zero
	// headings yields zero sections.
	LeadingDiscard
)

// FencePolicy controls how fenced code blocks are cleaned from section text.
type FencePolicy int

const (
	// FenceRemoveBlock removes the fence delimiter lines and everything
	// between them.
	FenceRemoveBlock FencePolicy = iota

	// FenceMarkersOnly removes only the fence delimiter lines, keeping
	// the fenced content.
	FenceMarkersOnly
)

// DefaultLeadingTitle is the title given to the implicit section that
// collects text appearing before the first heading.
const DefaultLeadingTitle = "Introduction"

// ExtractOptions configures section extraction.
type ExtractOptions struct {
	// Lowest and highest heading levels that open a new section.
	// Headings outside the range are treated as ordinary text.
	// Zero values default to 1 and 6.
	MinLevel int
	MaxLevel int

	// Policy for text before the first heading.
	Leading LeadingPolicy

	// Policy for fenced code blocks during cleaning.
	Fences FencePolicy

	// Title for the implicit leading section. Defaults to
	// DefaultLeadingTitle.
	LeadingTitle string
}

func (o ExtractOptions) withDefaults() ExtractOptions {
	if o.MinLevel <= 0 {
		o.MinLevel = 1
	}
	if o.MaxLevel <= 0 {
		o.MaxLevel = 6
	}
	if o.LeadingTitle == "" {
		o.LeadingTitle = DefaultLeadingTitle
	}
	return o
}

// headingRe matches an ATX heading line: 1-6 leading '#' characters
// followed by whitespace and text.
var headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// ExtractSections splits markdown body text into heading-delimited sections.
// Sections preserve source order. Sections whose cleaned text is empty are
// dropped and never reach the index.
func ExtractSections(body string, opts ExtractOptions) []Section {
	opts = opts.withDefaults()

	var sections []Section
	var ancestors []string
	var current *Section
	var buf strings.Builder

	flush := func() {
		if current == nil {
			return
		}
		raw := buf.String()
		buf.Reset()
		text := CleanText(raw, opts.Fences)
		if text == "" {
			current = nil
			return
		}
		current.Body = strings.TrimSpace(raw)
		current.Text = text
		sections = append(sections, *current)
		current = nil
	}

	if opts.Leading == LeadingImplicit {
		current = &Section{
			Level:  opts.MinLevel,
			Title:  opts.LeadingTitle,
			Anchor: Anchor(opts.LeadingTitle),
			IsPage: true,
		}
	}

	sawHeading := false
	inFence := false
	for line := range strings.Lines(body) {
		if isFenceLine(line) {
			inFence = !inFence
		} else if !inFence {
			m := headingRe.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
			if m != nil {
				level := len(m[1])
				if level >= opts.MinLevel && level <= opts.MaxLevel {
					flush()
					title := strings.TrimSpace(m[2])
					current = &Section{
						Level:  level,
						Title:  title,
						Anchor: Anchor(title),
						Titles: pushTitle(&ancestors, level, title),
						IsPage: !sawHeading && len(sections) == 0,
					}
					sawHeading = true
					continue
				}
			}
		}
		if current != nil {
			buf.WriteString(line)
		}
	}
	flush()

	return sections
}

// pushTitle maintains the mutable ancestor-title array: truncate to level-1
// entries, record the ancestors, then set index level-1 to the new title.
// The returned breadcrumb contains ancestors only, not the title itself.
func pushTitle(ancestors *[]string, level int, title string) []string {
	a := *ancestors
	if len(a) > level-1 {
		a = a[:level-1]
	}
	titles := append([]string(nil), a...)
	for len(a) < level-1 {
		a = append(a, "")
	}
	*ancestors = append(a, title)
	if len(titles) == 0 {
		return nil
	}
	return titles
}

var (
	nonAnchorRe = regexp.MustCompile(`[^a-z0-9\s-]`)
	spaceRunRe  = regexp.MustCompile(`\s+`)
	hyphenRunRe = regexp.MustCompile(`-{2,}`)
	htmlTagRe   = regexp.MustCompile(`<[^>]*>`)
)

// Anchor derives a URL fragment from a heading title. It is deterministic
// and pure: lowercase, "&" becomes "and", characters outside [a-z0-9\s-]
// are stripped, whitespace and hyphen runs collapse to single hyphens, and
// leading/trailing hyphens are trimmed.
func Anchor(title string) string {
	s := strings.ToLower(title)
	s = strings.ReplaceAll(s, "&", " and ")
	s = nonAnchorRe.ReplaceAllString(s, "")
	s = spaceRunRe.ReplaceAllString(strings.TrimSpace(s), "-")
	s = hyphenRunRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// isFenceLine reports whether the line opens or closes a fenced code block.
func isFenceLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// CleanText produces the plain-text form of a section body: fenced code
// blocks are removed per the fence policy, inline HTML-like tags are
// stripped, and whitespace runs collapse to single spaces.
func CleanText(raw string, fences FencePolicy) string {
	var b strings.Builder
	inFence := false
	for line := range strings.Lines(raw) {
		if isFenceLine(line) {
			if fences == FenceRemoveBlock {
				inFence = !inFence
			}
			continue
		}
		if inFence {
			continue
		}
		b.WriteString(line)
	}
	s := htmlTagRe.ReplaceAllString(b.String(), "")
	s = spaceRunRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

package docindex

import "strings"

// FormatResults formats search results for terminal display.
// Uses the record title if available, falls back to the href.
// Results are separated by blank lines.
func FormatResults(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, res := range results {
		header := res.Record.Title
		if header == "" {
			header = res.Record.Href
		}
		if len(res.Record.Titles) > 0 {
			header = strings.Join(res.Record.Titles, " > ") + " > " + header
		}
		parts = append(parts, "## "+header+"\n"+res.Record.Href)
	}

	return strings.Join(parts, "\n\n")
}

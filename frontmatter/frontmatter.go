// Package frontmatter separates and parses the YAML front-matter block
// (`---` delimited) at the top of a Markdown document.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a
// front-matter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("front-matter start delimiter found but closing delimiter is missing")

var delim = []byte("---")

// Split separates the front-matter block from the Markdown body.
//
// If the document does not start with a `---` delimiter line, had is false
// and body is the full input. If an opening delimiter has no closing
// delimiter, ErrMissingClosingDelimiter is returned; callers recover by
// treating the whole input as body.
func Split(content []byte) (meta []byte, body []byte, had bool, err error) {
	first, rest, found := bytes.Cut(content, []byte("\n"))
	if !found || !isDelimiter(first) {
		return nil, content, false, nil
	}

	offset := 0
	for offset <= len(rest) {
		line := rest[offset:]
		end := bytes.IndexByte(line, '\n')
		if end < 0 {
			end = len(line)
		}
		if isDelimiter(line[:end]) {
			meta = rest[:offset]
			bodyStart := offset + end
			if bodyStart < len(rest) {
				body = rest[bodyStart+1:]
			}
			return meta, body, true, nil
		}
		offset += end + 1
	}

	return nil, nil, false, ErrMissingClosingDelimiter
}

// isDelimiter reports whether the line is a bare `---` fence, tolerating a
// trailing carriage return and trailing spaces.
func isDelimiter(line []byte) bool {
	line = bytes.TrimRight(line, " \r")
	return bytes.Equal(line, delim)
}

// Parse parses raw front-matter (without delimiters) into a field map.
func Parse(meta []byte) (map[string]any, error) {
	if len(meta) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(meta, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// Title returns the string value of the "title" field, or "" if absent
// or not a string.
func Title(fields map[string]any) string {
	if fields == nil {
		return ""
	}
	if title, ok := fields["title"].(string); ok {
		return title
	}
	return ""
}

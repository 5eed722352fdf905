package frontmatter_test

import (
	"testing"

	"github.com/fwojciec/docindex/frontmatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	t.Run("separates front-matter from body", func(t *testing.T) {
		t.Parallel()

		content := []byte("---\ntitle: Guide\n---\n# Heading\nbody text\n")

		meta, body, had, err := frontmatter.Split(content)

		require.NoError(t, err)
		assert.True(t, had)
		assert.Equal(t, "title: Guide\n", string(meta))
		assert.Equal(t, "# Heading\nbody text\n", string(body))
	})

	t.Run("no opening delimiter means whole input is body", func(t *testing.T) {
		t.Parallel()

		content := []byte("# Heading\nbody text\n")

		meta, body, had, err := frontmatter.Split(content)

		require.NoError(t, err)
		assert.False(t, had)
		assert.Nil(t, meta)
		assert.Equal(t, content, body)
	})

	t.Run("empty front-matter block", func(t *testing.T) {
		t.Parallel()

		content := []byte("---\n---\nbody")

		meta, body, had, err := frontmatter.Split(content)

		require.NoError(t, err)
		assert.True(t, had)
		assert.Empty(t, meta)
		assert.Equal(t, "body", string(body))
	})

	t.Run("missing closing delimiter returns an error", func(t *testing.T) {
		t.Parallel()

		content := []byte("---\ntitle: Broken\nno closing fence\n")

		_, _, _, err := frontmatter.Split(content)

		assert.ErrorIs(t, err, frontmatter.ErrMissingClosingDelimiter)
	})

	t.Run("closing delimiter at end of file without trailing newline", func(t *testing.T) {
		t.Parallel()

		content := []byte("---\ntitle: X\n---")

		meta, body, had, err := frontmatter.Split(content)

		require.NoError(t, err)
		assert.True(t, had)
		assert.Equal(t, "title: X\n", string(meta))
		assert.Empty(t, body)
	})

	t.Run("tolerates carriage returns on delimiter lines", func(t *testing.T) {
		t.Parallel()

		content := []byte("---\r\ntitle: Win\r\n---\r\nbody\r\n")

		meta, body, had, err := frontmatter.Split(content)

		require.NoError(t, err)
		assert.True(t, had)
		assert.Contains(t, string(meta), "title: Win")
		assert.Contains(t, string(body), "body")
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses key-value fields", func(t *testing.T) {
		t.Parallel()

		fields, err := frontmatter.Parse([]byte("title: Guide\ndraft: true\n"))

		require.NoError(t, err)
		assert.Equal(t, "Guide", fields["title"])
		assert.Equal(t, true, fields["draft"])
	})

	t.Run("empty input parses to an empty map", func(t *testing.T) {
		t.Parallel()

		fields, err := frontmatter.Parse(nil)

		require.NoError(t, err)
		assert.NotNil(t, fields)
		assert.Empty(t, fields)
	})

	t.Run("malformed yaml returns an error", func(t *testing.T) {
		t.Parallel()

		_, err := frontmatter.Parse([]byte("title: [unclosed\n"))

		assert.Error(t, err)
	})
}

func TestTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Guide", frontmatter.Title(map[string]any{"title": "Guide"}))
	assert.Empty(t, frontmatter.Title(map[string]any{"title": 42}))
	assert.Empty(t, frontmatter.Title(nil))
}

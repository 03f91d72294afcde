package tutorial

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	t.Run("titles and ordering are fixed", func(t *testing.T) {
		require.Len(t, c.Sections, 8)
		wantTitles := []string{
			"Supported Medical Analysis Tools",
			"Docker Usage Examples",
			"Configuration Options",
			"Medical Analysis Workflow",
			"Python API Examples",
			"Available Models",
			"Storage and Requirements",
			"Quick Start Guide",
		}
		for i, s := range c.Sections {
			assert.Equal(t, wantTitles[i], s.Title)
		}
		assert.Equal(t, "Quick Start Summary", c.Summary.Title)
		assert.Equal(t, "MedRAX Tutorial POC", c.Title)
	})

	t.Run("slugs are unique and non-empty", func(t *testing.T) {
		seen := map[string]bool{}
		for _, s := range c.Topics() {
			require.NotEmpty(t, s.Slug)
			assert.False(t, seen[s.Slug], "duplicate slug %q", s.Slug)
			seen[s.Slug] = true
		}
	})

	t.Run("bodies are framed by single newlines", func(t *testing.T) {
		for _, s := range c.Topics() {
			assert.True(t, strings.HasPrefix(s.Body, "\n"), "%s body must start with newline", s.Slug)
			assert.True(t, strings.HasSuffix(s.Body, "\n"), "%s body must end with newline", s.Slug)
			assert.NotEmpty(t, strings.TrimSpace(s.Body), "%s body must not be blank", s.Slug)
		}
	})

	t.Run("topics appends the summary last", func(t *testing.T) {
		topics := c.Topics()
		require.Len(t, topics, 9)
		assert.Equal(t, "summary", topics[len(topics)-1].Slug)
	})

	t.Run("find resolves slugs", func(t *testing.T) {
		s, ok := c.Find("docker")
		require.True(t, ok)
		assert.Equal(t, "Docker Usage Examples", s.Title)

		_, ok = c.Find("no-such-topic")
		assert.False(t, ok)
	})

	t.Run("slugs follow catalog order", func(t *testing.T) {
		slugs := c.Slugs()
		require.Len(t, slugs, 9)
		assert.Equal(t, "tools", slugs[0])
		assert.Equal(t, "docker", slugs[1])
		assert.Equal(t, "summary", slugs[8])
	})
}

func TestCatalogIsValueSafe(t *testing.T) {
	// Two independent catalogs must not share backing storage in a way
	// that lets one mutate the other.
	a := Default()
	b := Default()
	a.Sections[0].Title = "mutated"
	assert.Equal(t, "Supported Medical Analysis Tools", b.Sections[0].Title)
}

package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medrax-guide/pkg/tutorial"
)

func TestMarkdownSectionFencesBody(t *testing.T) {
	s := tutorial.Section{
		Slug:  "workflow",
		Title: "Medical Analysis Workflow",
		Body:  "\n1. PREPARATION\n   ├── step one\n",
	}
	md := MarkdownSection(s)

	assert.True(t, strings.HasPrefix(md, "# Medical Analysis Workflow\n"))
	// Body appears verbatim between the fence markers.
	assert.Contains(t, md, "```text"+s.Body+"```")
}

func TestMarkdownGuideHasOneHeadingPerTopic(t *testing.T) {
	c := tutorial.Default()
	md := MarkdownGuide(c)

	assert.Equal(t, 1, strings.Count(md, "# "+c.Title+"\n"))
	for _, s := range c.Topics() {
		assert.Equal(t, 1, strings.Count(md, "## "+s.Title+"\n"), "heading for %q", s.Title)
	}
	assert.Equal(t, 9, strings.Count(md, "```text"))
}

func TestWriteJSONSectionCarriesDigest(t *testing.T) {
	s, ok := tutorial.Default().Find("tools")
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, WriteJSONSection(&buf, s, false))

	var got struct {
		Slug   string `json:"slug"`
		Title  string `json:"title"`
		Body   string `json:"body"`
		Digest string `json:"digest"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, s.Slug, got.Slug)
	assert.Equal(t, s.Body, got.Body)
	assert.Equal(t, s.Digest(), got.Digest)
}

func TestWriteNDJSONSectionsOneLineEach(t *testing.T) {
	topics := tutorial.Default().Topics()
	var buf bytes.Buffer
	require.NoError(t, WriteNDJSONSections(&buf, topics))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(topics))
	for i, line := range lines {
		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &got), "line %d", i)
		assert.Equal(t, topics[i].Slug, got["slug"])
	}
}

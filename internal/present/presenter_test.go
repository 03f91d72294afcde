package present

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medrax-guide/pkg/tutorial"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"plain", ModePlain, true},
		{"pretty", ModePretty, true},
		{"json", ModeJSON, true},
		{"ndjson", ModeNDJSON, true},
		{"markdown", ModeMarkdown, true},
		{"md", ModeMarkdown, true},
		{"tui", ModePlain, false},
		{"", ModePlain, false},
	}
	for _, tc := range cases {
		got, ok := ParseMode(tc.in)
		assert.Equal(t, tc.ok, ok, "ok for %q", tc.in)
		assert.Equal(t, tc.want, got, "mode for %q", tc.in)
	}
}

func TestRenderSectionDispatch(t *testing.T) {
	s, ok := tutorial.Default().Find("storage")
	require.True(t, ok)

	t.Run("plain carries the banner", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderSection(&buf, s, Options{Mode: ModePlain}))
		assert.Contains(t, buf.String(), "  Storage and Requirements\n")
		assert.Contains(t, buf.String(), s.Body)
	})

	t.Run("markdown fences the body", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderSection(&buf, s, Options{Mode: ModeMarkdown}))
		assert.True(t, strings.HasPrefix(buf.String(), "# Storage and Requirements\n"))
	})

	t.Run("json is a single object", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderSection(&buf, s, Options{Mode: ModeJSON}))
		assert.True(t, strings.HasPrefix(buf.String(), "{"))
	})
}

func TestRenderGuidePlainIsDeterministic(t *testing.T) {
	c := tutorial.Default()
	var a, b bytes.Buffer
	require.NoError(t, RenderGuide(&a, c, Options{Mode: ModePlain}))
	require.NoError(t, RenderGuide(&b, c, Options{Mode: ModePlain}))
	assert.Equal(t, a.String(), b.String())
}

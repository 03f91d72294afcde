package present

import (
	"io"

	"medrax-guide/internal/present/format"
	"medrax-guide/pkg/tutorial"
)

type Mode int

const (
	ModePlain Mode = iota
	ModePretty
	ModeJSON
	ModeNDJSON
	ModeMarkdown
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Headers    bool
	Style      string
	Width      int
}

// ParseMode parses a string like "plain", "pretty", "json", "ndjson", "markdown".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	case "ndjson":
		return ModeNDJSON, true
	case "markdown", "md":
		return ModeMarkdown, true
	default:
		return ModePlain, false
	}
}

// RenderSection renders a single topic according to options.
func RenderSection(w io.Writer, s tutorial.Section, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONSection(w, s, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONSection(w, s)
	case ModePretty:
		return format.WritePrettySection(w, s, opts.Style, opts.Width)
	case ModeMarkdown:
		return format.WriteMarkdownSection(w, s)
	default:
		return format.WritePlainSection(w, s)
	}
}

// RenderGuide renders the whole catalog: title banner, every section in
// order, then the summary.
func RenderGuide(w io.Writer, c tutorial.Catalog, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONSections(w, c.Topics(), opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONSections(w, c.Topics())
	case ModePretty:
		return format.WritePrettyGuide(w, c, opts.Style, opts.Width)
	case ModeMarkdown:
		return format.WriteMarkdownGuide(w, c)
	default:
		return format.WritePlainGuide(w, c)
	}
}

// RenderTopics renders the topic index. Pretty and markdown fall back
// to the plain table; the index has no body content worth styling.
func RenderTopics(w io.Writer, topics []tutorial.Section, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONSections(w, topics, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONSections(w, topics)
	default:
		return format.WritePlainTopics(w, topics, opts.Headers)
	}
}

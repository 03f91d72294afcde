package format

import (
	"io"
	"strings"

	"medrax-guide/pkg/tutorial"
)

// MarkdownSection renders one topic as portable markdown: a heading
// plus the body inside a text fence, so body bytes survive any
// downstream renderer untouched.
func MarkdownSection(s tutorial.Section) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(s.Title)
	b.WriteString("\n\n```text")
	b.WriteString(s.Body) // starts and ends with a newline
	b.WriteString("```\n")
	return b.String()
}

// MarkdownGuide renders the whole catalog as a single markdown
// document with the guide title on top and one sub-heading per topic.
func MarkdownGuide(c tutorial.Catalog) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(c.Title)
	b.WriteString("\n\n> ")
	b.WriteString(c.Tagline)
	b.WriteString("\n")
	for _, s := range c.Topics() {
		b.WriteString("\n## ")
		b.WriteString(s.Title)
		b.WriteString("\n\n```text")
		b.WriteString(s.Body)
		b.WriteString("```\n")
	}
	return b.String()
}

func WriteMarkdownSection(w io.Writer, s tutorial.Section) error {
	_, err := io.WriteString(w, MarkdownSection(s))
	return err
}

func WriteMarkdownGuide(w io.Writer, c tutorial.Catalog) error {
	_, err := io.WriteString(w, MarkdownGuide(c))
	return err
}

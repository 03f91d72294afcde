package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"medrax-guide/pkg/tutorial"
)

// bannerWidth is the fixed width of every separator line.
const bannerWidth = 70

var separator = strings.Repeat("=", bannerWidth)

// TSV columns: slug, title, lines
var topicsHeader = "slug\ttitle\tlines\n"

// Banner frames a section title: blank line, separator, indented
// title, separator, trailing blank line.
func Banner(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "\n%s\n  %s\n%s\n\n", separator, title, separator)
	return err
}

// TitleBanner writes the top-level guide banner: the title centered in
// a `=` fill, the tagline centered beneath, and a closing separator.
func TitleBanner(w io.Writer, title, tagline string) error {
	_, err := fmt.Fprintf(w, "\n%s\n%s\n%s\n", centerFill(title, '='), centerFill(tagline, ' '), separator)
	return err
}

// centerFill centers s in a bannerWidth field. `=` fills both sides;
// space fill pads the left only so output lines carry no trailing
// whitespace.
func centerFill(s string, fill rune) string {
	if len(s) >= bannerWidth {
		return s
	}
	left := (bannerWidth - len(s)) / 2
	if fill == ' ' {
		return strings.Repeat(" ", left) + s
	}
	right := bannerWidth - len(s) - left
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), right)
}

// WritePlainSection writes the section banner followed by the body
// verbatim. Body bytes are reproduced exactly; the single trailing
// newline separates it from whatever follows.
func WritePlainSection(w io.Writer, s tutorial.Section) error {
	if err := Banner(w, s.Title); err != nil {
		return err
	}
	_, err := io.WriteString(w, s.Body+"\n")
	return err
}

// WritePlainGuide writes the canonical full dump: title banner, every
// registered section in order, then the summary.
func WritePlainGuide(w io.Writer, c tutorial.Catalog) error {
	if err := TitleBanner(w, c.Title, c.Tagline); err != nil {
		return err
	}
	for _, s := range c.Sections {
		if err := WritePlainSection(w, s); err != nil {
			return err
		}
	}
	return WritePlainSection(w, c.Summary)
}

// WritePlainTopics writes the topic index as aligned TSV.
func WritePlainTopics(w io.Writer, topics []tutorial.Section, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, topicsHeader)
	}
	for _, s := range topics {
		line := fmt.Sprintf("%s\t%s\t%d\n", s.Slug, s.Title, BodyLines(s))
		_, _ = io.WriteString(tw, line)
	}
	return tw.Flush()
}

// BodyLines counts visible body lines, ignoring the framing newlines.
func BodyLines(s tutorial.Section) int {
	n := strings.Count(s.Body, "\n")
	if strings.HasPrefix(s.Body, "\n") && n > 0 {
		n--
	}
	return n
}

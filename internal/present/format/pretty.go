package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"

	"medrax-guide/pkg/tutorial"
)

// WritePrettySection renders a topic with glamour. The body stays in a
// code fence, so styling never rewraps or reinterprets its bytes.
func WritePrettySection(w io.Writer, s tutorial.Section, style string, width int) error {
	return renderPretty(w, MarkdownSection(s), style, width)
}

// WritePrettyGuide renders the full catalog with glamour.
func WritePrettyGuide(w io.Writer, c tutorial.Catalog, style string, width int) error {
	return renderPretty(w, MarkdownGuide(c), style, width)
}

func renderPretty(w io.Writer, md, style string, width int) error {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(append(styleOptions(style), glamour.WithWordWrap(width))...)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func styleOptions(style string) []glamour.TermRendererOption {
	switch style {
	case "", "auto":
		return []glamour.TermRendererOption{glamour.WithAutoStyle()}
	default:
		return []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	}
}

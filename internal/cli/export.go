package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"medrax-guide/internal/present/format"
	"medrax-guide/pkg/tutorial"
)

func newExportCmd() *cobra.Command {
	var dir string
	var outFormat string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the guide to files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if dir == "" {
				dir = app.Cfg.GetString("export.dir")
			}
			if strings.TrimSpace(dir) == "" {
				return fmt.Errorf("export directory is empty; set export.dir or pass --dir")
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			switch outFormat {
			case "markdown", "md":
				return exportMarkdown(cmd, app.Catalog, dir)
			case "json":
				return exportJSON(cmd, app.Catalog, dir)
			default:
				return fmt.Errorf("invalid --format: %s", outFormat)
			}
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "output directory (default from config export.dir)")
	cmd.Flags().StringVar(&outFormat, "format", "markdown", "export format: markdown|json")
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// exportMarkdown writes one NN-slug.md per topic plus an index.md
// linking them in guide order.
func exportMarkdown(cmd *cobra.Command, cat tutorial.Catalog, dir string) error {
	topics := cat.Topics()
	for i, s := range topics {
		name := fmt.Sprintf("%02d-%s.md", i+1, s.Slug)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(format.MarkdownSection(s)), 0o644); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	}
	path := filepath.Join(dir, "index.md")
	if err := os.WriteFile(path, []byte(markdownIndex(cat)), 0o644); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func markdownIndex(cat tutorial.Catalog) string {
	var b strings.Builder
	b.WriteString("# " + cat.Title + "\n\n")
	b.WriteString("> " + cat.Tagline + "\n\n")
	for i, s := range cat.Topics() {
		fmt.Fprintf(&b, "%d. [%s](%02d-%s.md)\n", i+1, s.Title, i+1, s.Slug)
	}
	return b.String()
}

// exportJSON writes the whole catalog, digests included, to a single
// sections.json.
func exportJSON(cmd *cobra.Command, cat tutorial.Catalog, dir string) error {
	path := filepath.Join(dir, "sections.json")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := format.WriteJSONSections(f, cat.Topics(), true); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"medrax-guide/pkg/tutorial"
)

func newSearchCmd() *cobra.Command {
	var includeBody bool
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search guide topics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			out := cmd.OutOrStdout()
			q := args[0]

			topics := app.Catalog.Topics()
			matches := fuzzy.FindFrom(q, topicSource(topics))
			n := 0
			for _, m := range matches {
				if limit > 0 && n >= limit {
					break
				}
				s := topics[m.Index]
				_, _ = fmt.Fprintf(out, "%s\t%s\n", s.Slug, s.Title)
				n++
			}
			if !includeBody {
				return nil
			}

			// Body lines match on case-insensitive substring; fuzzy
			// scoring over prose produces too much noise to be useful.
			needle := strings.ToLower(q)
			bn := 0
			for _, s := range topics {
				for i, line := range strings.Split(s.Body, "\n") {
					if limit > 0 && bn >= limit {
						return nil
					}
					if strings.Contains(strings.ToLower(line), needle) {
						_, _ = fmt.Fprintf(out, "%s:%d\t%s\n", s.Slug, i, strings.TrimSpace(line))
						bn++
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&includeBody, "body", false, "also match body lines (case-insensitive substring)")
	cmd.Flags().IntVar(&limit, "limit", 10, "max matches per result class (0 = unlimited)")
	return cmd
}

// topicSource adapts the topic list for fuzzy matching over "slug title".
type topicSource []tutorial.Section

func (t topicSource) String(i int) string { return t[i].Slug + " " + t[i].Title }
func (t topicSource) Len() int            { return len(t) }

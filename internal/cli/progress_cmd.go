package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"medrax-guide/internal/progress"
	"medrax-guide/internal/util"
)

// progressRow is the list view of one topic's state, JSON-tagged for
// --output json.
type progressRow struct {
	Slug       string     `json:"slug"`
	Title      string     `json:"title"`
	Views      int        `json:"views"`
	LastViewed *time.Time `json:"last_viewed,omitempty"`
	Status     string     `json:"status"`
}

func newProgressCmd() *cobra.Command {
	var outputMode string
	var sinceExpr string
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show which topics you have read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			store, err := app.OpenProgress(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			since, err := util.ParseSince(sinceExpr)
			if err != nil {
				return err
			}

			recs, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			bySlug := make(map[string]progress.Record, len(recs))
			for _, r := range recs {
				bySlug[r.Slug] = r
			}

			rows := make([]progressRow, 0, len(app.Catalog.Topics()))
			for _, s := range app.Catalog.Topics() {
				r, ok := bySlug[s.Slug]
				if !ok {
					if since.IsZero() {
						rows = append(rows, progressRow{Slug: s.Slug, Title: s.Title, Status: "unread"})
					}
					continue
				}
				if !since.IsZero() && r.LastViewed.Before(since) {
					continue
				}
				status := "read"
				if r.Stale(s.Digest()) {
					status = "changed"
				}
				last := r.LastViewed
				rows = append(rows, progressRow{Slug: s.Slug, Title: s.Title, Views: r.Views, LastViewed: &last, Status: status})
			}

			switch outputMode {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			case "plain":
				return writeProgressTable(cmd.OutOrStdout(), rows)
			default:
				return fmt.Errorf("invalid --output: %s", outputMode)
			}
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "plain", "output mode: plain|json")
	cmd.Flags().StringVar(&sinceExpr, "since", "", "only views since (e.g. 2d, 1w, 2026-01-02)")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"plain", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	cmd.AddCommand(newProgressResetCmd())
	return cmd
}

func writeProgressTable(w io.Writer, rows []progressRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = io.WriteString(tw, "slug\tviews\tlast viewed\tstatus\n")
	for _, row := range rows {
		last := "-"
		if row.LastViewed != nil {
			last = row.LastViewed.Local().Format("2006-01-02 15:04")
		}
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", row.Slug, row.Views, last, row.Status)
	}
	return tw.Flush()
}

func newProgressResetCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:               "reset [topic]",
		Short:             "Clear reading progress",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeTopicSlugs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if all == (len(args) == 1) {
				return fmt.Errorf("pass a topic or --all")
			}
			slug := ""
			if len(args) == 1 {
				sec, ok := app.Catalog.Find(args[0])
				if !ok {
					return unknownTopicErr(app.Catalog, args[0])
				}
				slug = sec.Slug
			}
			store, err := app.OpenProgress(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Reset(cmd.Context(), slug); err != nil {
				if errors.Is(err, progress.ErrNotFound) {
					return fmt.Errorf("no progress recorded for %s", slug)
				}
				return err
			}
			if slug == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Progress cleared")
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Progress reset for %s\n", slug)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "clear every topic")
	return cmd
}

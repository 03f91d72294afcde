package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"medrax-guide/internal/present"
	"medrax-guide/internal/progress"
	"medrax-guide/internal/util"
	"medrax-guide/pkg/tutorial"
)

func newTopicsCmd() *cobra.Command {
	var outputMode string
	var noHeaders bool
	var unreadOnly bool
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List guide topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			mode, ok := present.ParseMode(resolveOutput(app, outputMode))
			if !ok {
				return fmt.Errorf("invalid --output: %s", outputMode)
			}
			topics := app.Catalog.Topics()
			if unreadOnly {
				store, err := app.OpenProgress(cmd.Context())
				if err != nil {
					return err
				}
				defer store.Close()
				topics, err = filterUnread(cmd.Context(), store, topics)
				if err != nil {
					return err
				}
			}
			opts := present.Options{Mode: mode, Headers: !noHeaders}
			return renderTopics(cmd, app, topics, opts)
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "", "output mode: plain|json|ndjson (default from config)")
	cmd.Flags().BoolVar(&noHeaders, "noheaders", false, "hide column headers")
	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "only topics never viewed or changed since last view")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"plain", "json", "ndjson"}, cobra.ShellCompDirectiveNoFileComp
	})
	cmd.AddCommand(newTopicsCompleteCmd())
	return cmd
}

// filterUnread drops topics whose stored digest still matches.
func filterUnread(ctx context.Context, store progress.Store, topics []tutorial.Section) ([]tutorial.Section, error) {
	recs, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]progress.Record, len(recs))
	for _, r := range recs {
		seen[r.Slug] = r
	}
	out := make([]tutorial.Section, 0, len(topics))
	for _, s := range topics {
		r, ok := seen[s.Slug]
		if !ok || r.Stale(s.Digest()) {
			out = append(out, s)
		}
	}
	return out, nil
}

func newTopicsCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [input]",
		Short: "Get fuzzy matches for topic slugs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			app := getApp(cmd)
			for _, slug := range util.ScoreCompletions(input, app.Catalog.Slugs(), 20) {
				fmt.Fprintln(cmd.OutOrStdout(), slug)
			}
			return nil
		},
	}
}

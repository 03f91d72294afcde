package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"medrax-guide/internal/present"
	"medrax-guide/internal/util"
	"medrax-guide/internal/wire"
	"medrax-guide/pkg/tutorial"
)

func newShowCmd() *cobra.Command {
	var outputMode string
	var noTrack bool
	cmd := &cobra.Command{
		Use:               "show <topic>",
		Short:             "Display a guide topic",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTopicSlugs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			sec, ok := app.Catalog.Find(args[0])
			if !ok {
				return unknownTopicErr(app.Catalog, args[0])
			}
			mode, ok := present.ParseMode(resolveOutput(app, outputMode))
			if !ok {
				return fmt.Errorf("invalid --output: %s", outputMode)
			}
			opts := present.Options{
				Mode:       mode,
				JSONIndent: true,
				Style:      app.Cfg.GetString("style.theme"),
				Width:      resolveWidth(cmd, app),
			}
			if err := renderSection(cmd, app, sec, opts); err != nil {
				return err
			}
			// Record the view after a successful render. Progress is
			// auxiliary: a broken store must not fail the command.
			if app.TrackViews() && !noTrack {
				markViewed(cmd, app, sec)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "", "output mode: plain|pretty|json|ndjson|markdown (default from config)")
	cmd.Flags().BoolVar(&noTrack, "no-track", false, "do not record this view")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"plain", "pretty", "json", "ndjson", "markdown"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func markViewed(cmd *cobra.Command, app *wire.App, s tutorial.Section) {
	store, err := app.OpenProgress(cmd.Context())
	if err != nil {
		app.Log.Printf("progress: %v", err)
		return
	}
	defer store.Close()
	if _, err := store.Mark(cmd.Context(), s.Slug, s.Digest(), time.Now()); err != nil {
		app.Log.Printf("progress: %v", err)
	}
}

func unknownTopicErr(cat tutorial.Catalog, input string) error {
	if m := util.ScoreCompletions(input, cat.Slugs(), 1); len(m) == 1 {
		return fmt.Errorf("unknown topic %q (did you mean %q?)", input, m[0])
	}
	return fmt.Errorf("unknown topic %q; run 'medrax-guide topics' to list slugs", input)
}

func completeTopicSlugs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return util.ScoreCompletions(toComplete, tutorial.Default().Slugs(), 0), cobra.ShellCompDirectiveNoFileComp
}

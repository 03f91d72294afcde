package cli

import (
	"time"

	"github.com/spf13/cobra"

	"medrax-guide/internal/present/tui"
	"medrax-guide/internal/progress"
)

func newBrowseCmd() *cobra.Command {
	var noHeaders bool
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse topics interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)

			var store progress.Store
			if app.TrackViews() {
				s, err := app.OpenProgress(cmd.Context())
				if err != nil {
					return err
				}
				defer s.Close()
				store = s
			}

			opts := tui.Options{
				Headers: !noHeaders,
				Style:   app.Cfg.GetString("style.theme"),
				Width:   resolveWidth(cmd, app),
			}
			slug, err := tui.Browse(cmd.Context(), cmd.OutOrStdout(), app.Catalog, store, opts)
			if err != nil {
				return err
			}
			if slug != "" && store != nil {
				if sec, ok := app.Catalog.Find(slug); ok {
					if _, err := store.Mark(cmd.Context(), sec.Slug, sec.Digest(), time.Now()); err != nil {
						app.Log.Printf("progress: %v", err)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noHeaders, "noheaders", false, "hide column headers")
	return cmd
}

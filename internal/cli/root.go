package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"medrax-guide/internal/config"
	"medrax-guide/internal/present"
	"medrax-guide/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// Execute builds the root cobra.Command and runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
// Running it without a subcommand prints the complete guide.
func NewRootCmd() *cobra.Command {
	var cfgPath string
	var outputMode string

	cmd := &cobra.Command{
		Use:           "medrax-guide",
		Short:         "Read the MedRAX chest X-ray agent tutorial in the terminal",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config with Viper.
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(v); err != nil {
				return err
			}
			if err := config.Validate(v); err != nil {
				return err
			}
			// Wire up the app and stash it in context for subcommands.
			app, err := wire.BuildApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), appKey, app)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// The bare invocation always emits the canonical plain dump;
			// the configured output mode only applies to subcommands, so
			// scripted `medrax-guide > guide.txt` stays byte-stable. An
			// explicit --output still wins.
			app := getApp(cmd)
			mode, ok := present.ParseMode(outputMode)
			if !ok {
				return fmt.Errorf("invalid --output: %s", outputMode)
			}
			opts := present.Options{
				Mode:       mode,
				JSONIndent: true,
				Headers:    true,
				Style:      app.Cfg.GetString("style.theme"),
				Width:      resolveWidth(cmd, app),
			}
			return renderGuide(cmd, app, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (toml|yaml)")
	cmd.PersistentFlags().Bool("no-pager", false, "never pipe output through a pager")
	cmd.Flags().StringVar(&outputMode, "output", "plain", "output mode: plain|pretty|json|ndjson|markdown")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"plain", "pretty", "json", "ndjson", "markdown"}, cobra.ShellCompDirectiveNoFileComp
	})

	cmd.AddCommand(newTopicsCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newBrowseCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newProgressCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"medrax-guide/internal/server"
)

func newServeCmd() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the guide over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if listen != "" {
				app.Cfg.Set("http_addr", listen)
			}

			srv := server.New(app.Cfg, app.Catalog)
			addr := srv.Addr()
			httpSrv := &http.Server{Addr: addr, Handler: srv.Router()}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				_ = httpSrv.Shutdown(context.Background())
			}()

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Guide server listening on %s\n", addr)
			if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (override config http_addr)")
	return cmd
}

package wire

import (
	"context"
	"log"
	"os"

	"github.com/spf13/viper"

	"medrax-guide/internal/config"
	"medrax-guide/internal/progress"
	"medrax-guide/pkg/tutorial"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg     *viper.Viper
	Log     *log.Logger
	Catalog tutorial.Catalog
}

// BuildApp wires dependencies with the provided config. The progress
// store is not opened here; rendering commands must work without
// touching the filesystem, so commands that track progress open it on
// demand via OpenProgress.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	logger := log.New(os.Stderr, "medrax-guide ", log.LstdFlags)
	return &App{
		Cfg:     v,
		Log:     logger,
		Catalog: tutorial.Default(),
	}, nil
}

// OpenProgress opens the progress store at the configured data_dir.
// Callers own the returned store and must Close it.
func (a *App) OpenProgress(ctx context.Context) (progress.Store, error) {
	return progress.Open(ctx, config.ResolveProgressDBPath(a.Cfg))
}

// TrackViews reports whether show/browse should record topic views.
func (a *App) TrackViews() bool {
	return a.Cfg.GetBool("progress.enabled")
}

package cli

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"medrax-guide/internal/present"
	"medrax-guide/internal/wire"
	"medrax-guide/pkg/tutorial"
)

const defaultPager = "less -FRSX"

// resolveOutput returns the explicit --output value when given,
// otherwise the configured default.
func resolveOutput(app *wire.App, flag string) string {
	if flag != "" {
		return flag
	}
	return app.Cfg.GetString("output")
}

// resolveWidth returns the configured pretty wrap width; when left at
// 0 it falls back to the terminal width, then the renderer default.
func resolveWidth(cmd *cobra.Command, app *wire.App) int {
	w := app.Cfg.GetInt("style.width")
	if w > 0 {
		return w
	}
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 0
}

// pagingEnabled reports whether output may go through a pager: the
// config gate first, then the persistent --no-pager override.
func pagingEnabled(cmd *cobra.Command, app *wire.App) bool {
	if off, err := cmd.Flags().GetBool("no-pager"); err == nil && off {
		return false
	}
	return app.Cfg.GetBool("pager")
}

func renderGuide(cmd *cobra.Command, app *wire.App, opts present.Options) error {
	if !pagingEnabled(cmd, app) {
		return present.RenderGuide(cmd.OutOrStdout(), app.Catalog, opts)
	}
	return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
		return present.RenderGuide(w, app.Catalog, opts)
	})
}

func renderSection(cmd *cobra.Command, app *wire.App, s tutorial.Section, opts present.Options) error {
	if !pagingEnabled(cmd, app) {
		return present.RenderSection(cmd.OutOrStdout(), s, opts)
	}
	return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
		return present.RenderSection(w, s, opts)
	})
}

func renderTopics(cmd *cobra.Command, app *wire.App, topics []tutorial.Section, opts present.Options) error {
	// The index is short; paging it would only get in the way.
	return present.RenderTopics(cmd.OutOrStdout(), topics, opts)
}

// withPager pipes write output through $PAGER when out is a terminal,
// falling back to a direct write otherwise.
func withPager(ctx context.Context, out, errOut io.Writer, write func(io.Writer) error) error {
	outFile, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(outFile.Fd())) {
		return write(out)
	}
	pager := os.Getenv("PAGER")
	if pager == "" {
		pager = defaultPager
	}
	cmd := exec.CommandContext(ctx, "sh", "-c", pager)
	cmd.Stdout = outFile
	if errFile, ok := errOut.(*os.File); ok {
		cmd.Stderr = errFile
	} else {
		cmd.Stderr = os.Stderr
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return write(out)
	}
	if err := cmd.Start(); err != nil {
		return write(out)
	}
	writeErr := write(stdin)
	_ = stdin.Close()
	waitErr := cmd.Wait()
	if writeErr != nil {
		return writeErr
	}
	return waitErr
}

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ajxudir/cascade/pkg/config"
	"github.com/ajxudir/cascade/pkg/display"
	"github.com/ajxudir/cascade/pkg/errors"
	"github.com/ajxudir/cascade/pkg/output"
	"github.com/ajxudir/cascade/pkg/utils"
	"github.com/ajxudir/cascade/pkg/verbose"
	"github.com/ajxudir/cascade/pkg/warnings"
	"github.com/ajxudir/cascade/pkg/watch"
)

var (
	renderFlags     inputFlags
	renderOutFlag   string
	renderWatchFlag bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the page with the selections applied",
	Long: `Read the catalog from an HTML page, apply the selections and write the
page back with non-selectable options and invisible items hidden, the
chosen options selected and the results count updated.`,
	Example: `  cascade render --page index.html -s Region=Region-East --out filtered.html
  cascade render --page index.html --out filtered.html --watch`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFlags.config, "config", "c", "", "Config file path")
	renderCmd.Flags().StringVar(&renderFlags.page, "page", "", "HTML page to filter")
	renderCmd.Flags().StringArrayVarP(&renderFlags.selections, "select", "s", nil, "Selection as dimension=value, applied in order (repeatable)")
	renderCmd.Flags().StringVar(&renderOutFlag, "out", "", "Output file (default: stdout)")
	renderCmd.Flags().BoolVar(&renderWatchFlag, "watch", false, "Re-render when the page or config changes (requires --out)")
	_ = renderCmd.MarkFlagRequired("page")
}

// runRender renders once, then keeps re-rendering on change with --watch.
func runRender(cmd *cobra.Command, args []string) error {
	if renderWatchFlag {
		if renderOutFlag == "" {
			return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("--watch requires --out"))
		}
		if utils.NormalizePath(renderOutFlag) == utils.NormalizePath(renderFlags.page) {
			return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("--out must differ from --page when watching"))
		}
	}

	if err := renderOnce(cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
		return err
	}
	if !renderWatchFlag {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchAndRender(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// renderOnce reads the page, applies the selections and writes the result
// to --out, or to stdout. The summary and any warnings go to errW.
func renderOnce(outW, errW io.Writer) error {
	collector := &warnings.Collector{}
	restore := warnings.SetWarningWriter(collector)
	defer restore()

	in, session, _, err := newSession(&renderFlags)
	if err != nil {
		return err
	}

	summary, err := in.doc.Apply(in.cfg, session.Engine(), session.State())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := in.doc.Render(&buf); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	if renderOutFlag == "" {
		if _, err := outW.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write page: %w", err)
		}
	} else {
		if err := writeFileFunc(renderOutFlag, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", renderOutFlag, err)
		}
		verbose.Infof("Rendered %s to %s", in.source, renderOutFlag)
	}

	display.PrintSummary(errW, output.Summary{Visible: summary.Visible, Total: summary.Total})
	display.PrintWarnings(errW, collector.Messages())
	return nil
}

// watchAndRender re-renders whenever the page or the config file settles
// after a change. Render failures are reported and watching continues.
func watchAndRender(ctx context.Context, outW, errW io.Writer) error {
	files := []string{renderFlags.page}
	if renderFlags.config != "" {
		files = append(files, renderFlags.config)
	} else if workDir, err := os.Getwd(); err == nil {
		files = append(files, filepath.Join(workDir, config.ConfigFileName))
	}

	w, err := watch.New(files, func(ctx context.Context, path string) error {
		verbose.Infof("Change detected: %s", path)
		return renderOnce(outW, errW)
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(errW, "Watching %s for changes (Ctrl+C to stop)\n", renderFlags.page)
	return w.Run(ctx)
}

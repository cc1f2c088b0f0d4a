package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ajxudir/cascade/pkg/display"
	"github.com/ajxudir/cascade/pkg/server"
	"github.com/ajxudir/cascade/pkg/warnings"
)

var (
	serveFlags    inputFlags
	serveAddrFlag string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP session service",
	Long: `Serve the catalog over HTTP. Each client creates a session and sends
dropdown changes to it; responses carry the state, the selectable values
and the visible items.`,
	Example: `  cascade serve --catalog items.yml --addr :8080`,
	RunE:    runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveFlags.config, "config", "c", "", "Config file path")
	serveCmd.Flags().StringVar(&serveFlags.catalog, "catalog", "", "Catalog file (.yml, .yaml, .json or .xml)")
	serveCmd.Flags().StringVar(&serveFlags.page, "page", "", "HTML page to read the catalog from")
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "Listen address (default: server.addr from config, or :8080)")
	serveCmd.MarkFlagsMutuallyExclusive("catalog", "page")
}

// runServe loads the catalog once and serves it until interrupted.
func runServe(cmd *cobra.Command, args []string) error {
	collector := &warnings.Collector{}
	restore := warnings.SetWarningWriter(collector)
	in, err := loadInput(&serveFlags)
	restore()
	if err != nil {
		return err
	}
	display.PrintWarnings(cmd.ErrOrStderr(), collector.Messages())

	engine, err := in.engine()
	if err != nil {
		return err
	}
	srv, err := server.New(in.cfg, engine)
	if err != nil {
		return err
	}

	addr := serveAddrFlag
	if addr == "" {
		addr = in.cfg.GetServerAddr()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Serving %d items from %s on %s\n", len(in.catalog), in.source, addr)
	return srv.ListenAndServe(ctx, addr)
}

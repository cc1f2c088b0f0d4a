package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ajxudir/cascade/pkg/display"
	"github.com/ajxudir/cascade/pkg/errors"
	"github.com/ajxudir/cascade/pkg/output"
	"github.com/ajxudir/cascade/pkg/warnings"
)

var itemsFlags inputFlags

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the items visible under the selections",
	Example: `  cascade items --catalog items.yml -s Region=Region-East
  cascade items --page index.html -s dim3=Tag1 -o csv`,
	RunE: runItems,
}

func init() {
	addInputFlags(itemsCmd, &itemsFlags, true)
}

// runItems prints the visible items in catalog order. An empty result is
// reported but is not an error.
func runItems(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(itemsFlags.output)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	collector := &warnings.Collector{}
	restore := warnings.SetWarningWriter(collector)
	defer restore()

	in, session, _, err := newSession(&itemsFlags)
	if err != nil {
		return err
	}

	result := display.NewItemsResult(in.cfg, session.Snapshot())
	result.Warnings = collector.Messages()

	if output.IsStructuredFormat(format) {
		return output.WriteItemsResult(cmd.OutOrStdout(), format, result)
	}
	display.PrintItemsTable(cmd.OutOrStdout(), result)
	display.PrintWarnings(cmd.ErrOrStderr(), result.Warnings)
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ajxudir/cascade/pkg/display"
	"github.com/ajxudir/cascade/pkg/errors"
	"github.com/ajxudir/cascade/pkg/output"
	"github.com/ajxudir/cascade/pkg/warnings"
)

var optionsFlags inputFlags

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the selectable values of every dimension",
	Long: `Apply the given selections in order and print, for every dimension, the
current selection and the values that are still selectable.`,
	Example: `  cascade options --catalog items.yml
  cascade options --page index.html -s dim1=Region-East -s Tag=Tag1 -o json`,
	RunE: runOptions,
}

func init() {
	addInputFlags(optionsCmd, &optionsFlags, true)
}

// runOptions prints the state and selectable values after the selections.
//
// Skipped page items are reported as warnings: after the table on stderr,
// or inside the result for structured formats.
func runOptions(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(optionsFlags.output)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	collector := &warnings.Collector{}
	restore := warnings.SetWarningWriter(collector)
	defer restore()

	in, session, cleared, err := newSession(&optionsFlags)
	if err != nil {
		return err
	}

	sorter, err := display.NewSorter(in.cfg.GetLocale())
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	result := display.NewOptionsResult(in.cfg, session.Snapshot(), cleared, sorter)
	result.Warnings = collector.Messages()

	if output.IsStructuredFormat(format) {
		return output.WriteOptionsResult(cmd.OutOrStdout(), format, result)
	}
	display.PrintOptionsTable(cmd.OutOrStdout(), result)
	display.PrintWarnings(cmd.ErrOrStderr(), result.Warnings)
	return nil
}

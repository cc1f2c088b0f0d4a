// Package cmd implements the command-line interface for cascade.
// It reads a catalog from a data file or an HTML page, applies dropdown
// selections through the cascading filter engine, and prints, renders or
// serves the result.
package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajxudir/cascade/pkg/errors"
	"github.com/ajxudir/cascade/pkg/verbose"
)

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool

var rootCmd = &cobra.Command{
	Use:   "cascade",
	Short: "Cascading dropdown filter for item catalogs",
	Long: `Filter a catalog of items by three dimensions, where each dropdown only
offers values that still lead to at least one item.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
		if HasArchMismatch() {
			verbose.Infof("Binary built for %s/%s, running on %s/%s", BuildOS, BuildArch, runtime.GOOS, runtime.GOARCH)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			printVersionOutput(cmd.OutOrStdout())
			return
		}
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success, including selections that match nothing
//   - 2: Failure (read, render or rejected selection)
//   - 3: Configuration or validation error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errors.PrintErrorWithHints(os.Stderr, []error{err}, verbose.IsEnabled())
		code := errors.GetExitCode(err)
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")

	// -v/--version is local so it only works on the root command
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(serveCmd)
}

// printVersionOutput writes the version block shared by -v and the version command.
func printVersionOutput(w io.Writer) {
	buildOS, buildArch := getBuildTarget()
	_, _ = fmt.Fprintf(w, "  Build:   %s/%s\n", buildOS, buildArch)

	if buildOS != runtime.GOOS || buildArch != runtime.GOARCH {
		_, _ = fmt.Fprintf(w, "  Runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}

	_, _ = fmt.Fprintf(w, "  Go:      %s\n", runtime.Version())
	if BuildTime != "" {
		_, _ = fmt.Fprintf(w, "  Date:    %s\n", BuildTime)
	}
	_, _ = fmt.Fprintln(w)
	if GitCommit != "" {
		_, _ = fmt.Fprintf(w, "  Git:     %s\n", GitCommit)
	}
	_, _ = fmt.Fprintf(w, "  Version: %s\n", Version)
}

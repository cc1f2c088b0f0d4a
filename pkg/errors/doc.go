// Package errors provides unified error types and display for cascade.
//
// This package consolidates CLI error handling into a single location:
//   - ExitError: Command exit with specific exit code
//   - SelectionError: A requested filter change was rejected by the engine
//   - ValidationError: Configuration, catalog or selection validation failures
//
// Error Display:
//
// The package provides consistent error formatting with actionable hints:
//
//	errors.PrintErrorWithHints(os.Stderr, errs, verbose)
//
// Error Checking:
//
// Use the Is* functions to check error types:
//
//	if exitErr, ok := errors.IsExitError(err); ok {
//	    os.Exit(exitErr.Code)
//	}
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): Command completed, including when nothing matches
//   - ExitFailure (2): A read, render or selection failed
//   - ExitConfigError (3): Configuration or validation error
package errors

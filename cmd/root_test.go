package cmd

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/cascade/pkg/errors"
	"github.com/ajxudir/cascade/pkg/testutil"
	"github.com/ajxudir/cascade/pkg/verbose"
)

// TestExecute_ExitCode tests that Execute prints the error with its hint and
// exits with the error's code.
func TestExecute_ExitCode(t *testing.T) {
	workspace(t)
	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"options"})
	defer rootCmd.SetArgs(nil)

	code := -1
	original := exitFunc
	exitFunc = func(c int) { code = c }
	defer func() { exitFunc = original }()

	stderr := testutil.CaptureStderr(t, Execute)
	assert.Equal(t, errors.ExitConfigError, code)
	assert.Contains(t, stderr, "Error: no catalog source")
	assert.Contains(t, stderr, "Pass --catalog items.yml or --page index.html")
}

// TestExecute_Success tests that a successful run never calls exitFunc.
func TestExecute_Success(t *testing.T) {
	workspace(t)
	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	called := false
	original := exitFunc
	exitFunc = func(int) { called = true }
	defer func() { exitFunc = original }()

	_ = testutil.CaptureStdout(t, Execute)
	assert.False(t, called)
}

// TestVersion tests the version command and the -v flag.
func TestVersion(t *testing.T) {
	original := Version
	Version = "1.2.3"
	defer func() { Version = original }()

	for _, args := range [][]string{{"version"}, {"-v"}} {
		stdout, _, err := runCLI(t, args...)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Version: 1.2.3")
		assert.Contains(t, stdout, "Go:      "+runtime.Version())
		assert.NotContains(t, stdout, "Runtime:")
	}
	assert.Equal(t, "1.2.3", GetVersion())
}

// TestHasArchMismatch tests build target detection.
func TestHasArchMismatch(t *testing.T) {
	origOS, origArch := BuildOS, BuildArch
	defer func() { BuildOS, BuildArch = origOS, origArch }()

	BuildOS, BuildArch = "", ""
	assert.False(t, HasArchMismatch())

	BuildOS, BuildArch = runtime.GOOS, runtime.GOARCH
	assert.False(t, HasArchMismatch())

	BuildOS = "plan9"
	assert.True(t, HasArchMismatch())
	stdout, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Runtime: "+runtime.GOOS+"/"+runtime.GOARCH)
}

// TestVerboseFlag tests that --verbose enables debug output.
func TestVerboseFlag(t *testing.T) {
	dir := workspace(t)
	catalogPath := writeFile(t, dir, "items.yml", testutil.SampleCatalogYAML)

	_, _, err := runCLI(t, "items", "--verbose", "--catalog", catalogPath)
	require.NoError(t, err)
	assert.True(t, verbose.IsEnabled())
}

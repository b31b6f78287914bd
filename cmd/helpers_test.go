package cmd

import (
	"bytes"
	"testing"

	"github.com/sevenuz/cake/models"
	"github.com/sevenuz/cake/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const testSaveFile = "/cake.json"

// setupCLI isolates a test from the user's config, save files and editor.
func setupCLI(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("EDITOR", "")
	t.Setenv("NO_COLOR", "1")

	oldFs := appFs
	appFs = afero.NewMemMapFs()

	oldNow := models.Now
	clock := int64(1700000000)
	models.Now = func() int64 {
		clock++
		return clock
	}

	oldEdit := editContent
	editContent = func(string) (string, error) {
		t.Fatalf("editor opened unexpectedly")
		return "", nil
	}

	t.Cleanup(func() {
		appFs = oldFs
		models.Now = oldNow
		editContent = oldEdit
	})
}

// resetFlags restores every flag of c and its subcommands to its default so
// that values do not leak between executions of rootCmd.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command against the in-memory save file.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	b := new(bytes.Buffer)
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	rootCmd.SetArgs(append([]string{"-i", testSaveFile}, args...))
	err := rootCmd.Execute()
	return b.String(), err
}

// mustRun is run for commands that are expected to succeed.
func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err, out)
	return out
}

// loadSaved reads the save file the commands wrote.
func loadSaved(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Load(appFs, testSaveFile)
	require.NoError(t, err)
	return s
}

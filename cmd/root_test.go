package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sevenuz/cake/internal/logger"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	setupCLI(t)

	out, err := run(t, "--help")
	assert.NoError(t, err)
	assert.Contains(t, out, "cake is a personal task and note manager")
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "Available Commands:")
}

func TestVersionCmd(t *testing.T) {
	setupCLI(t)

	out := mustRun(t, "version")
	assert.Equal(t, "cake version "+GetVersion()+"\n", out)
}

func TestInitConfig_Defaults(t *testing.T) {
	setupCLI(t)

	mustRun(t, "version")
	cfg := GetConfig()
	assert.Equal(t, "cake.json", cfg.Data.SaveFileName)
	assert.Equal(t, 3, cfg.IDs.Length)
	assert.Equal(t, 10, cfg.List.MaxDepth)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Data.DefaultFilePath)
}

func TestInitConfig_EnvOverride(t *testing.T) {
	setupCLI(t)
	t.Setenv("CAKE_IDS_LENGTH", "5")
	t.Setenv("CAKE_EDITOR", "nano")

	mustRun(t, "version")
	assert.Equal(t, 5, GetConfig().IDs.Length)
	assert.Equal(t, "nano", editorName())
}

func TestVersionCmd_VerboseListsCrashLogs(t *testing.T) {
	setupCLI(t)
	dataDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataDir)
	viper.Set("verbose", true)
	t.Cleanup(func() { viper.Set("verbose", false) })

	out := mustRun(t, "version")
	assert.Contains(t, out, "No crash logs.")

	logDir := filepath.Join(dataDir, "cake", logger.CrashLogDir)
	require.NoError(t, os.MkdirAll(logDir, 0o755))
	path := filepath.Join(logDir, "crash_20250101_120000.log")
	require.NoError(t, os.WriteFile(path, []byte("crash"), 0o644))

	out = mustRun(t, "version")
	assert.Contains(t, out, "1 crash logs:")
	assert.Contains(t, out, path)
}

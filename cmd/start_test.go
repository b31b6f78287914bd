package cmd

import (
	"errors"
	"testing"

	"github.com/sevenuz/cake/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartStopCmd(t *testing.T) {
	setupCLI(t)

	mustRun(t, "add", "task", "-m", "work on it")

	out := mustRun(t, "start", "task")
	assert.Contains(t, out, "1 started.")
	item, err := loadSaved(t).GetItem("task")
	require.NoError(t, err)
	assert.True(t, item.IsStarted())

	_, err = run(t, "start", "task")
	assert.True(t, errors.Is(err, types.ErrState))

	out = mustRun(t, "stop", "task")
	assert.Contains(t, out, "1 stopped.")
	item, err = loadSaved(t).GetItem("task")
	require.NoError(t, err)
	assert.True(t, item.IsStopped())
	assert.Len(t, item.Timetrack, 2)
}

func TestStopCmd_PartialFailure(t *testing.T) {
	setupCLI(t)

	mustRun(t, "add", "a", "-m", "a")
	mustRun(t, "add", "b", "-m", "b")
	mustRun(t, "start", "a")

	out, err := run(t, "stop", "a,b")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrState))
	assert.Contains(t, out, "1 stopped.")

	item, err := loadSaved(t).GetItem("a")
	require.NoError(t, err)
	assert.True(t, item.IsStopped())
}

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCmd(t *testing.T) {
	setupCLI(t)

	mustRun(t, "add", "milk", "-m", "buy milk", "-t", "shopping")

	out := mustRun(t, "tag", "milk", "urgent,food")
	assert.Contains(t, out, "1 tagged.")
	out = mustRun(t, "tag", "milk", "~shopping")
	assert.Contains(t, out, "1 tagged.")

	item, err := loadSaved(t).GetItem("milk")
	require.NoError(t, err)
	assert.Equal(t, []string{"urgent", "food"}, item.Tags)
}

func TestTagCmd_BySelector(t *testing.T) {
	setupCLI(t)

	mustRun(t, "add", "a", "-m", "a", "-t", "work")
	mustRun(t, "add", "b", "-m", "b", "-t", "work")
	mustRun(t, "add", "c", "-m", "c")

	out := mustRun(t, "tag", "-t", "work", "urgent")
	assert.Contains(t, out, "2 tagged.")

	s := loadSaved(t)
	for id, want := range map[string]bool{"a": true, "b": true, "c": false} {
		item, err := s.GetItem(id)
		require.NoError(t, err)
		assert.Equal(t, want, item.HasTag("urgent"), id)
	}
}

func TestTagCmd_NoTags(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "tag", ",")
	assert.ErrorContains(t, err, "no tags given")
}

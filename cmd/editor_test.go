package cmd

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditorName(t *testing.T) {
	old := GlobalAppConfig.Editor
	t.Cleanup(func() { GlobalAppConfig.Editor = old })

	tests := []struct {
		name   string
		env    string
		config string
		want   string
	}{
		{name: "environment wins", env: "nano", config: "emacs", want: "nano"},
		{name: "config", config: "emacs", want: "emacs"},
		{name: "fallback", want: "vi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.env)
			GlobalAppConfig.Editor = tt.config
			assert.Equal(t, tt.want, editorName())
		})
	}
}

func TestEditContent_UnchangedFile(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}
	t.Setenv("EDITOR", "true")

	got, err := editContent("keep me\n")
	assert.NoError(t, err)
	assert.Equal(t, "keep me", got)
}

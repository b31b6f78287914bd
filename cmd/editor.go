package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sevenuz/cake/internal/config"
)

// editContent opens the configured editor on existing and returns the saved
// text. It's a variable to allow overriding in tests.
var editContent = func(existing string) (string, error) {
	tmpFile, err := os.CreateTemp("", "cake-*.md")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(existing); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	tmpFile.Close()

	editorCmd := exec.Command(editorName(), tmpFile.Name())
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return "", fmt.Errorf("run editor: %w", err)
	}

	content, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("read edited file: %w", err)
	}
	return strings.TrimRight(string(content), "\n"), nil
}

// editorName picks $EDITOR, then the editor setting, then vi.
func editorName() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if editor := GetConfig().Editor; editor != "" {
		return editor
	}
	return config.DefaultEditor
}

package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// GetConfigDir returns the directory holding the config file
// ($XDG_CONFIG_HOME/cake or ~/.config/cake).
// It's a variable to allow overriding in tests.
var GetConfigDir = func() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// GetDataDir returns the directory of the global save file and crash logs
// ($XDG_DATA_HOME/cake or ~/.local/share/cake).
// It's a variable to allow overriding in tests.
var GetDataDir = func() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", AppName), nil
}

// DefaultSaveFile returns the global save file path for name. Without a
// usable data dir it falls back to the working directory.
func DefaultSaveFile(name string) string {
	dir, err := GetDataDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, name)
}

// FindSaveFile looks for a regular file called name in start and then in
// every parent directory. It returns the first match.
func FindSaveFile(fsys afero.Fs, start, name string) (string, bool) {
	dir := filepath.Clean(start)
	for {
		candidate := filepath.Join(dir, name)
		if info, err := fsys.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// InputPath resolves the file a command reads from.
// Resolution order (first match wins):
// 1. An explicit input path (inputSet with a non-empty input)
// 2. The global default file when input was set to the empty string
// 3. The nearest saveFileName in cwd or its parents
// 4. The global default file
func InputPath(fsys afero.Fs, cwd, input string, inputSet bool, saveFileName, defaultFilePath string) string {
	if inputSet {
		if input != "" {
			return input
		}
		return defaultFilePath
	}
	if found, ok := FindSaveFile(fsys, cwd, saveFileName); ok {
		return found
	}
	return defaultFilePath
}

// OutputPath returns output, or input when no output is given.
func OutputPath(input, output string) string {
	if output != "" {
		return output
	}
	return input
}

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/sevenuz/cake/models"
	"github.com/spf13/afero"
)

// Load reads the store from path. A missing or empty file yields an empty
// store. SQLite files are opened on the OS file system, bypassing fsys.
func Load(fsys afero.Fs, path string) (*Store, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	if format == FormatSQLite {
		return loadSQLite(path)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("save file does not exist yet", "path", path)
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}
	s, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	slog.Debug("loaded store", "path", path, "format", format, "items", s.Len())
	return s, nil
}

// Save stamps the last write time and writes the store to path through a
// temporary file. Missing parent directories are created.
func (s *Store) Save(fsys afero.Fs, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	s.lastWrite = models.Now()
	if format == FormatSQLite {
		return saveSQLite(path, s)
	}

	data, err := s.Encode(format)
	if err != nil {
		return fmt.Errorf("failed to marshal items to %s: %w", format, err)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	tempFilePath := path + ".tmp"
	defer func() { _ = fsys.Remove(tempFilePath) }()

	if err := afero.WriteFile(fsys, tempFilePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write to temporary data file %s: %w", tempFilePath, err)
	}
	if err := fsys.Rename(tempFilePath, path); err != nil {
		return fmt.Errorf("failed to rename temporary data file %s to %s: %w", tempFilePath, path, err)
	}
	slog.Debug("saved store", "path", path, "format", format, "items", s.Len())
	return nil
}

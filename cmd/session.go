package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sevenuz/cake/internal/config"
	"github.com/sevenuz/cake/internal/logger"
	"github.com/sevenuz/cake/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is the file system save files are read from and written to.
// It's a variable to allow overriding in tests.
var appFs afero.Fs = afero.NewOsFs()

// session is a loaded save file together with the path it is written back to.
type session struct {
	store  store.ItemStore
	input  string
	output string
}

// openSession resolves the input and output paths of cmd and loads the store.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg := GetConfig()
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	input := config.InputPath(appFs, cwd, inputFile, cmd.Flags().Changed("input"),
		cfg.Data.SaveFileName, cfg.Data.DefaultFilePath)
	output := config.OutputPath(input, outputFile)
	logger.SetInputFile(input)
	slog.Debug("save file", "input", input, "output", output)

	s, err := store.Load(appFs, input)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", input, err)
	}
	return &session{store: s, input: input, output: output}, nil
}

// save writes the store to the output path.
func (s *session) save() error {
	if err := s.store.Save(appFs, s.output); err != nil {
		return fmt.Errorf("save %s: %w", s.output, err)
	}
	slog.Debug("saved", "path", s.output, "items", s.store.Len())
	return nil
}

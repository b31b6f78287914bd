/*
Copyright © 2025 sevenuz
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sevenuz/cake/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty save file in the working directory",
	Long: `Create an empty save file named after the saveFileName setting in the
working directory. Commands run in this directory or below use it instead of
the global save file.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	path := filepath.Join(cwd, GetConfig().Data.SaveFileName)

	exists, err := afero.Exists(appFs, path)
	if err != nil {
		return fmt.Errorf("check %s: %w", path, err)
	}
	if exists {
		return fmt.Errorf("%s already exists", path)
	}
	if err := store.New().Save(appFs, path); err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

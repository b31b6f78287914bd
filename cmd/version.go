/*
Copyright © 2025 sevenuz
*/
package cmd

import (
	"fmt"

	"github.com/sevenuz/cake/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cake",
	Long:  `Print the version number of cake. With --verbose the saved crash logs are listed too.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "cake version %s\n", GetVersion())
		if !viper.GetBool("verbose") {
			return nil
		}
		logs, err := logger.ListCrashLogs()
		if err != nil {
			return fmt.Errorf("list crash logs: %w", err)
		}
		if len(logs) == 0 {
			fmt.Fprintln(out, "No crash logs.")
			return nil
		}
		fmt.Fprintf(out, "%d crash logs:\n", len(logs))
		for _, path := range logs {
			fmt.Fprintln(out, "  "+path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

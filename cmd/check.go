/*
Copyright © 2025 sevenuz
*/
package cmd

import (
	"fmt"

	"github.com/sevenuz/cake/internal/ui"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the links of the save file",
	Long: `Check that every parent and child link points to a stored item and is
mirrored on the other side. Nothing is changed.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	violations := sess.store.Verify()
	out := cmd.OutOrStdout()
	if len(violations) == 0 {
		fmt.Fprintln(out, ui.Icon("✓", ui.StyleSuccess), fmt.Sprintf("%d items, no broken links.", sess.store.Len()))
		return nil
	}
	table := &ui.Table{Headers: []string{"ID", "Problem", "Other"}, MaxWidth: 40}
	for _, v := range violations {
		table.Rows = append(table.Rows, []string{v.ID, string(v.Kind), v.Other})
	}
	fmt.Fprint(out, table.Render())
	return fmt.Errorf("%d broken links in %s", len(violations), sess.input)
}

/*
Copyright © 2025 sevenuz
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeFlags selectorFlags

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:     "remove [ids]",
	Aliases: []string{"rm"},
	Short:   "Remove the selected items",
	Long: `Remove every item matched by the selector. Links to removed items are
dropped from their neighbours. Use -r to take children and parents along.`,
	Example: `  cake rm abc
  cake rm -t done
  cake rm project -r`,
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeFlags.register(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	sel, ids, err := removeFlags.resolve(cmd, sess, args, true)
	if err != nil {
		return err
	}
	if sel.Empty() {
		return fmt.Errorf("remove needs ids or a selector flag")
	}

	removed := 0
	for _, id := range ids {
		if _, ok := sess.store.Lookup(id); !ok {
			continue
		}
		if err := sess.store.Remove(id); err != nil {
			return err
		}
		removed++
	}
	if err := sess.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d removed.\n", removed)
	return nil
}

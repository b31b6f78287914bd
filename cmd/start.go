/*
Copyright © 2025 sevenuz
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/sevenuz/cake/models"
	"github.com/spf13/cobra"
)

var (
	startFlags selectorFlags
	stopFlags  selectorFlags
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start [ids]",
	Short: "Start time tracking of the selected items",
	Example: `  cake start abc
  cake start -t work --stopped`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrack(cmd, &startFlags, args, "started", (*models.Item).Start)
	},
}

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop [ids]",
	Short: "Stop time tracking of the selected items",
	Example: `  cake stop abc
  cake stop --started`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrack(cmd, &stopFlags, args, "stopped", (*models.Item).Stop)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	startFlags.register(startCmd)
	stopFlags.register(stopCmd)
}

// runTrack applies op to every selected item. Items in the wrong state are
// reported together; the others are still changed and saved.
func runTrack(cmd *cobra.Command, flags *selectorFlags, args []string, verb string, op func(*models.Item) error) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	_, ids, err := flags.resolve(cmd, sess, args, true)
	if err != nil {
		return err
	}

	var errs []error
	changed := 0
	for _, id := range ids {
		item, err := sess.store.GetItem(id)
		if err != nil {
			return err
		}
		if err := op(item); err != nil {
			errs = append(errs, err)
			continue
		}
		changed++
	}
	if changed > 0 {
		if err := sess.save(); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d %s.\n", changed, verb)
	return errors.Join(errs...)
}

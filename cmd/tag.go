/*
Copyright © 2025 sevenuz
*/
package cmd

import (
	"fmt"

	"github.com/sevenuz/cake/internal/util"
	"github.com/spf13/cobra"
)

var tagFlags selectorFlags

// tagCmd represents the tag command
var tagCmd = &cobra.Command{
	Use:   "tag [ids] <tags>",
	Short: "Add or remove tags of the selected items",
	Long: `Tag every item matched by the selector. The last argument is a comma
separated tag list; a tag prefixed with ~ is removed instead of added.`,
	Example: `  cake tag abc urgent,work
  cake tag -t work ~urgent`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runTag,
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagFlags.register(tagCmd)
}

func runTag(cmd *cobra.Command, args []string) error {
	tags := args[len(args)-1]
	add := util.SplitIncludeTags(tags)
	drop := util.SplitExcludeTags(tags)
	if len(add) == 0 && len(drop) == 0 {
		return fmt.Errorf("no tags given")
	}

	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	_, ids, err := tagFlags.resolve(cmd, sess, args[:len(args)-1], true)
	if err != nil {
		return err
	}

	for _, id := range ids {
		item, err := sess.store.GetItem(id)
		if err != nil {
			return err
		}
		if len(add) > 0 {
			item.AppendTags(add...)
		}
		if len(drop) > 0 {
			item.RemoveTags(drop...)
		}
	}
	if err := sess.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d tagged.\n", len(ids))
	return nil
}

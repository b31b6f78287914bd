/*
Copyright © 2025 sevenuz
*/
package cmd

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/sevenuz/cake/internal/graph"
	"github.com/sevenuz/cake/internal/ui"
	"github.com/sevenuz/cake/store"
	"github.com/spf13/cobra"
)

var (
	listFlags selectorFlags
	listLong  bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list [ids]",
	Aliases: []string{"ls"},
	Short:   "List the selected items",
	Long: `List every item matched by the selector, oldest first and root items
before linked ones. With -r the children of each item are shown as an indented
tree, with -rr the parents. Items reached twice are marked with a warning.`,
	Example: `  cake ls
  cake ls -r
  cake ls -t work --started -l`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listFlags.register(listCmd)
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "show full items with tracked durations")
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	sel, ids, err := listFlags.resolve(cmd, sess, args, false)
	if err != nil {
		return err
	}
	sortForListing(sess.store, ids)

	maxDepth := 1
	if sel.RChildren || sel.RParents {
		maxDepth = GetConfig().List.MaxDepth
	}
	dir := graph.Down
	if sel.RParents {
		dir = graph.Up
	}
	walker := graph.NewWalker(sess.store, dir, maxDepth)

	var views []graph.View
	walker.Walk(ids, func(v graph.View) bool {
		if !sel.Excluded(v.Item) {
			views = append(views, v)
		}
		return true
	})
	slog.Debug("list", "seeds", len(ids), "views", len(views), "direction", dir.String())

	if len(views) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No items found.")
		return nil
	}
	if listLong {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Long(views, nil))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.Tree(views))
	return nil
}

// sortForListing orders ids by creation time and then moves items with fewer
// parents to the front, keeping the time order within each group.
func sortForListing(s store.ItemStore, ids []string) {
	timestamp := func(id string) int64 {
		item, _ := s.Lookup(id)
		return item.Timestamp
	}
	parents := func(id string) int {
		item, _ := s.Lookup(id)
		return len(item.Parents)
	}
	slices.SortStableFunc(ids, func(a, b string) int {
		return cmp.Compare(timestamp(a), timestamp(b))
	})
	slices.SortStableFunc(ids, func(a, b string) int {
		return cmp.Compare(parents(a), parents(b))
	})
}

/*
Copyright © 2025 sevenuz
*/
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/sevenuz/cake/internal/util"
	"github.com/sevenuz/cake/models"
	"github.com/spf13/cobra"
)

var (
	addChildren  string
	addParents   string
	addTags      string
	addMessage   string
	addEdit      bool
	addOverwrite bool
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:     "add [id]",
	Aliases: []string{"edit"},
	Short:   "Add a new item or edit an existing one",
	Long: `Add a new item. Without an id a short random one is generated.

Without --message the editor ($EDITOR, the editor setting or vi) is opened.
Called as "edit" or with --edit the item with the given id is updated:
tags, children and parents are merged unless --overwrite is set.`,
	Example: `  cake add -m "buy milk" -t shopping
  cake add groceries -C milk,bread -m "weekly groceries"
  cake edit milk -t urgent`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addChildren, "children", "C", "", "children of the item (comma separated)")
	addCmd.Flags().StringVarP(&addParents, "parents", "p", "", "parents of the item (comma separated)")
	addCmd.Flags().StringVarP(&addTags, "tags", "t", "", "tags of the item (comma separated)")
	addCmd.Flags().StringVarP(&addMessage, "message", "m", "", "content of the item; opens the editor when empty")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "update the item with the given id")
	addCmd.Flags().BoolVarP(&addOverwrite, "overwrite", "w", false, "replace instead of merge when editing")
}

func runAdd(cmd *cobra.Command, args []string) error {
	edit := addEdit || cmd.CalledAs() == "edit"
	if addOverwrite && !edit {
		return fmt.Errorf("--overwrite requires --edit")
	}

	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	id := ""
	if len(args) > 0 {
		id = util.Sanitize(args[0])
	}
	if id == "" {
		if edit {
			return fmt.Errorf("edit needs the id of an existing item")
		}
		id = sess.store.GenerateID(GetConfig().IDs.Length)
	}

	item := models.New(id,
		util.SplitCommaCleanup(addChildren),
		util.SplitCommaCleanup(addParents),
		util.SplitCommaCleanup(addTags))
	if err := sess.store.CheckExistence(item, edit); err != nil {
		return err
	}

	content := addMessage
	if content == "" {
		existing := ""
		if edit {
			current, err := sess.store.GetItem(id)
			if err != nil {
				return err
			}
			existing = current.Content
		}
		if content, err = editContent(existing); err != nil {
			return err
		}
	}
	item.SetContent(content)

	if edit {
		err = sess.store.Edit(item, addOverwrite)
	} else {
		err = sess.store.Add(item)
	}
	if err != nil {
		return err
	}
	if err := sess.save(); err != nil {
		return err
	}
	slog.Debug("item stored", "id", id, "edit", edit, "overwrite", addOverwrite)

	stored, err := sess.store.GetItem(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), stored.Long(models.LongOptions{}))
	return nil
}

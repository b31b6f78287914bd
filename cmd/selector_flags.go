package cmd

import (
	"fmt"
	"log/slog"

	"github.com/sevenuz/cake/internal/selector"
	"github.com/sevenuz/cake/internal/ui"
	"github.com/sevenuz/cake/models"
	"github.com/spf13/cobra"
)

// selectorFlags holds the selector flags shared by remove, tag, start, stop
// and list.
type selectorFlags struct {
	children  string
	parents   string
	tags      string
	before    string
	after     string
	started   bool
	stopped   bool
	recursive int
	or        bool
}

func (f *selectorFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.children, "children", "C", "", "select items having these children (comma separated)")
	flags.StringVarP(&f.parents, "parents", "p", "", "select items having these parents (comma separated)")
	flags.StringVarP(&f.tags, "tags", "t", "", "select items by tags, ~tag excludes")
	flags.StringVarP(&f.before, "before", "b", "", "select items created before this duration ago, e.g. 1w2d")
	flags.StringVarP(&f.after, "after", "a", "", "select items created after this duration ago, e.g. 3h")
	flags.BoolVar(&f.started, "started", false, "select running items")
	flags.BoolVar(&f.stopped, "stopped", false, "select stopped items")
	flags.CountVarP(&f.recursive, "recursive", "r", "expand the selection: -r children, -rr parents, -rrr both")
	flags.BoolVar(&f.or, "or", false, "combine selectors with or instead of and")
}

// selector builds the selector for the positional ids.
func (f *selectorFlags) selector(ids []string) (*selector.Selector, error) {
	sel, err := selector.FromInput(selector.Input{
		IDs:       ids,
		Children:  f.children,
		Parents:   f.parents,
		Tags:      f.tags,
		Before:    f.before,
		After:     f.after,
		Started:   f.started,
		Stopped:   f.stopped,
		Recursive: f.recursive,
		Or:        f.or,
	}, models.Now())
	if err != nil {
		return nil, err
	}
	sel.MaxDepth = GetConfig().List.MaxDepth
	return sel, nil
}

// resolve builds the selector for ids and resolves it against the store of
// sess. Explicit ids that are not stored are reported on stderr.
func (f *selectorFlags) resolve(cmd *cobra.Command, sess *session, ids []string, expand bool) (*selector.Selector, []string, error) {
	sel, err := f.selector(ids)
	if err != nil {
		return nil, nil, err
	}
	for _, id := range sel.IDs {
		if _, ok := sess.store.Lookup(id); !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.StyleWarning.Render(fmt.Sprintf("Warning: %s does not exist", id)))
		}
	}
	matched := sel.Resolve(sess.store, expand)
	slog.Debug("selected", "ids", matched, "mode", sel.Mode.String())
	return sel, matched, nil
}

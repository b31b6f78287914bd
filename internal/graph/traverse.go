// Package graph walks the parent or child edges of items held in a store.
package graph

import (
	"slices"

	"github.com/sevenuz/cake/models"
)

// MaxDepth is the default depth bound of a walk.
const MaxDepth = 10

// Source resolves ids to items. Unknown ids report false.
type Source interface {
	Lookup(id string) (*models.Item, bool)
}

// Direction selects the edges a walk follows.
type Direction int

const (
	// Down follows children.
	Down Direction = iota
	// Up follows parents.
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// State classifies an emitted view.
type State int

const (
	// Normal is the first encounter of an id in a walk.
	Normal State = iota
	// Reappearance is any later encounter of an already visited id. Its
	// edges are not followed again.
	Reappearance
)

func (s State) String() string {
	if s == Reappearance {
		return "reappearance"
	}
	return "normal"
}

// View is one emitted entry of a walk.
type View struct {
	Item        *models.Item
	Depth       int
	State       State
	HasChildren bool
}

// Walker walks the graph in one direction. The visited path is shared by
// every seed and every Walk call of the same walker, so an id reached through
// a second route is reported as a Reappearance.
type Walker struct {
	src      Source
	dir      Direction
	maxDepth int
	seen     map[string]struct{}
	path     []string
}

// NewWalker creates a walker. A maxDepth below 1 falls back to MaxDepth.
func NewWalker(src Source, dir Direction, maxDepth int) *Walker {
	if maxDepth < 1 {
		maxDepth = MaxDepth
	}
	return &Walker{
		src:      src,
		dir:      dir,
		maxDepth: maxDepth,
		seen:     make(map[string]struct{}),
	}
}

// Walk visits seeds at depth 0 and everything reachable from them. Upward
// walks emit ancestors before the item, downward walks emit the item before
// its descendants. The walk stops early when visit returns false; Walk then
// returns false as well.
func (w *Walker) Walk(seeds []string, visit func(View) bool) bool {
	return w.walk(seeds, 0, visit)
}

func (w *Walker) walk(ids []string, depth int, visit func(View) bool) bool {
	if depth >= w.maxDepth {
		return true
	}
	for _, id := range ids {
		item, ok := w.src.Lookup(id)
		if !ok {
			continue
		}
		view := View{Item: item, Depth: depth, HasChildren: item.HasChildren()}

		if _, seen := w.seen[id]; seen {
			view.State = Reappearance
			if !visit(view) {
				return false
			}
			continue
		}
		w.seen[id] = struct{}{}
		w.path = append(w.path, id)

		if w.dir == Up {
			if !w.walk(item.Parents, depth+1, visit) {
				return false
			}
			if !visit(view) {
				return false
			}
			continue
		}
		if !visit(view) {
			return false
		}
		if !w.walk(item.Children, depth+1, visit) {
			return false
		}
	}
	return true
}

// Views walks seeds and collects every emitted view.
func (w *Walker) Views(seeds []string) []View {
	var views []View
	w.Walk(seeds, func(v View) bool {
		views = append(views, v)
		return true
	})
	return views
}

// Visited returns the ids seen so far in first-seen order.
func (w *Walker) Visited() []string {
	return slices.Clone(w.path)
}

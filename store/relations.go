package store

import (
	"fmt"
	"log/slog"

	"github.com/sevenuz/cake/internal/graph"
	"github.com/sevenuz/cake/internal/util"
	"github.com/sevenuz/cake/models"
	"github.com/sevenuz/cake/types"
)

// CheckID fails when the existence of id does not match mustExist.
func (s *Store) CheckID(id string, mustExist bool) error {
	_, exists := s.items[id]
	switch {
	case mustExist && !exists:
		return types.NewExistenceError(id, "does not exist")
	case !mustExist && exists:
		return types.NewExistenceError(id, "already exists")
	}
	return nil
}

// CheckExistence validates item and checks that it exists when editing (and
// does not otherwise) and that every declared parent and child exists.
func (s *Store) CheckExistence(item *models.Item, editing bool) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid item %q: %w", item.ID, err)
	}
	if err := s.CheckID(item.ID, editing); err != nil {
		return err
	}
	for _, id := range item.Children {
		if !s.exists(id, item.ID, editing) {
			return types.NewExistenceError(id, fmt.Sprintf("child of %s does not exist", item.ID))
		}
	}
	for _, id := range item.Parents {
		if !s.exists(id, item.ID, editing) {
			return types.NewExistenceError(id, fmt.Sprintf("parent of %s does not exist", item.ID))
		}
	}
	return nil
}

// exists reports whether a neighbour id is present. An edited item may refer
// to itself since it is already stored.
func (s *Store) exists(id, self string, editing bool) bool {
	if editing && id == self {
		return true
	}
	_, ok := s.items[id]
	return ok
}

// Add validates item, links it to its declared neighbours and inserts it.
func (s *Store) Add(item *models.Item) error {
	if err := s.CheckExistence(item, false); err != nil {
		return err
	}
	item.Normalize()
	for _, id := range item.Children {
		s.items[id].AddParent(item.ID)
	}
	for _, id := range item.Parents {
		s.items[id].AddChild(item.ID)
	}
	s.items[item.ID] = item
	slog.Debug("added item", "id", item.ID, "children", item.Children, "parents", item.Parents)
	return nil
}

// Edit replaces (overwrite) or merges the stored item with the values of
// item. Relations are updated by delta: neighbours that were dropped lose the
// back reference, new ones gain it, untouched ones keep their order.
func (s *Store) Edit(item *models.Item, overwrite bool) error {
	if err := s.CheckExistence(item, true); err != nil {
		return err
	}
	stored := s.items[item.ID]
	updated := stored.Clone()
	if overwrite {
		updated.Set(item)
	} else {
		updated.Merge(item)
	}

	droppedChildren := util.Remove(stored.Children, updated.Children...)
	addedChildren := util.Remove(updated.Children, stored.Children...)
	droppedParents := util.Remove(stored.Parents, updated.Parents...)
	addedParents := util.Remove(updated.Parents, stored.Parents...)

	s.items[item.ID] = updated
	for _, id := range droppedChildren {
		if n, ok := s.items[id]; ok {
			n.RetainParent(item.ID)
		}
	}
	for _, id := range droppedParents {
		if n, ok := s.items[id]; ok {
			n.RetainChild(item.ID)
		}
	}
	for _, id := range addedChildren {
		s.items[id].AddParent(item.ID)
	}
	for _, id := range addedParents {
		s.items[id].AddChild(item.ID)
	}
	slog.Debug("edited item", "id", item.ID, "overwrite", overwrite,
		"added_children", addedChildren, "dropped_children", droppedChildren,
		"added_parents", addedParents, "dropped_parents", droppedParents)
	return nil
}

// Remove deletes the item and scrubs the back references of its neighbours.
func (s *Store) Remove(id string) error {
	item, ok := s.items[id]
	if !ok {
		return types.NewExistenceError(id, "does not exist")
	}
	delete(s.items, id)
	for _, c := range item.Children {
		if n, ok := s.items[c]; ok {
			n.RetainParent(id)
		}
	}
	for _, p := range item.Parents {
		if n, ok := s.items[p]; ok {
			n.RetainChild(id)
		}
	}
	slog.Debug("removed item", "id", id)
	return nil
}

// RemoveTree removes id and every descendant reachable within maxDepth
// levels. It returns the removed ids in walk order.
func (s *Store) RemoveTree(id string, maxDepth int) ([]string, error) {
	if err := s.CheckID(id, true); err != nil {
		return nil, err
	}
	w := graph.NewWalker(s, graph.Down, maxDepth)
	w.Walk([]string{id}, func(graph.View) bool { return true })

	removed := make([]string, 0, len(w.Visited()))
	for _, victim := range w.Visited() {
		if _, ok := s.items[victim]; !ok {
			continue
		}
		if err := s.Remove(victim); err != nil {
			return removed, err
		}
		removed = append(removed, victim)
	}
	return removed, nil
}

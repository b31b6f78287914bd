// Package store holds the item graph in memory, keeps parent and child
// relations symmetric and persists the graph in one of several file formats.
package store

import (
	"log/slog"
	"slices"

	"github.com/sevenuz/cake/internal/util"
	"github.com/sevenuz/cake/models"
)

// Document is the aggregate persisted by the structured formats.
type Document struct {
	Items     map[string]*models.Item `json:"items" yaml:"items" toml:"items"`
	LastWrite int64                   `json:"last_write,omitempty" yaml:"last_write,omitempty" toml:"last_write,omitempty"`
}

// Store owns the id to item mapping.
type Store struct {
	items     map[string]*models.Item
	lastWrite int64
}

// New returns an empty store.
func New() *Store {
	return &Store{items: make(map[string]*models.Item)}
}

func fromDocument(doc *Document) *Store {
	s := New()
	if doc == nil {
		return s
	}
	for id, item := range doc.Items {
		if item == nil {
			continue
		}
		item.Normalize()
		s.items[id] = item
	}
	s.lastWrite = doc.LastWrite
	return s
}

func (s *Store) document() *Document {
	return &Document{Items: s.items, LastWrite: s.lastWrite}
}

// Lookup returns the item stored under id.
func (s *Store) Lookup(id string) (*models.Item, bool) {
	item, ok := s.items[id]
	return item, ok
}

// GetItem returns the item stored under id or an ExistenceError. The returned
// item is the stored one; mutate its relations only through the store.
func (s *Store) GetItem(id string) (*models.Item, error) {
	if err := s.CheckID(id, true); err != nil {
		return nil, err
	}
	return s.items[id], nil
}

// Items returns the underlying map. Callers must not modify it.
func (s *Store) Items() map[string]*models.Item {
	return s.items
}

// IDs returns every id ordered by creation time, then by id.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		ta, tb := s.items[a].Timestamp, s.items[b].Timestamp
		switch {
		case ta < tb:
			return -1
		case ta > tb:
			return 1
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})
	return ids
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.items)
}

// LastWrite returns the unix time of the last save, 0 if never saved.
func (s *Store) LastWrite() int64 {
	return s.lastWrite
}

// GenerateID returns a random hex id of at least length characters that is
// not used yet.
func (s *Store) GenerateID(length int) string {
	id := util.GenerateID(length, func(id string) bool {
		_, ok := s.items[id]
		return ok
	})
	slog.Debug("generated id", "id", id)
	return id
}

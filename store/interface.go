package store

import (
	"github.com/sevenuz/cake/models"
	"github.com/spf13/afero"
)

// ItemStore defines the contract the command layer works against.
// It covers lookups, the relation-maintaining mutations and persistence.
type ItemStore interface {
	// Lookup returns the item stored under id, reporting false when absent.
	Lookup(id string) (*models.Item, bool)

	// GetItem returns the item stored under id or an ExistenceError.
	GetItem(id string) (*models.Item, error)

	// IDs returns every id ordered by creation time, then by id.
	IDs() []string

	// Len returns the number of stored items.
	Len() int

	// CheckExistence validates an item before Add (editing false) or Edit
	// (editing true).
	CheckExistence(item *models.Item, editing bool) error

	// Add inserts a new item and links its declared neighbours.
	Add(item *models.Item) error

	// Edit replaces or merges an existing item, relinking neighbours.
	Edit(item *models.Item, overwrite bool) error

	// Remove deletes an item and unlinks its neighbours.
	Remove(id string) error

	// RemoveTree deletes an item and its descendants up to maxDepth levels.
	RemoveTree(id string, maxDepth int) ([]string, error)

	// GenerateID returns an unused random id.
	GenerateID(length int) string

	// Verify reports broken relation invariants.
	Verify() []Violation

	// Save persists the store to path, choosing the format by extension.
	Save(fsys afero.Fs, path string) error
}

var _ ItemStore = (*Store)(nil)

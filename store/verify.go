package store

import (
	"fmt"
	"slices"
)

// ViolationKind names a broken relation invariant.
type ViolationKind string

const (
	// DanglingChild: a child id that is not stored.
	DanglingChild ViolationKind = "dangling child"
	// DanglingParent: a parent id that is not stored.
	DanglingParent ViolationKind = "dangling parent"
	// MissingParentLink: B is a child of A but A is not a parent of B.
	MissingParentLink ViolationKind = "missing parent link"
	// MissingChildLink: B is a parent of A but A is not a child of B.
	MissingChildLink ViolationKind = "missing child link"
	// KeyMismatch: the map key differs from the item id.
	KeyMismatch ViolationKind = "key mismatch"
)

// Violation is one broken invariant found by Verify.
type Violation struct {
	ID    string        `json:"id"`
	Kind  ViolationKind `json:"kind"`
	Other string        `json:"other"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s %s", v.ID, v.Kind, v.Other)
}

// Verify checks relation symmetry and referential existence of every item.
// Violations are reported in IDs order.
func (s *Store) Verify() []Violation {
	var out []Violation
	for _, id := range s.IDs() {
		item := s.items[id]
		if item.ID != id {
			out = append(out, Violation{ID: id, Kind: KeyMismatch, Other: item.ID})
		}
		for _, c := range item.Children {
			child, ok := s.items[c]
			switch {
			case !ok:
				out = append(out, Violation{ID: id, Kind: DanglingChild, Other: c})
			case !slices.Contains(child.Parents, id):
				out = append(out, Violation{ID: id, Kind: MissingParentLink, Other: c})
			}
		}
		for _, p := range item.Parents {
			parent, ok := s.items[p]
			switch {
			case !ok:
				out = append(out, Violation{ID: id, Kind: DanglingParent, Other: p})
			case !slices.Contains(parent.Children, id):
				out = append(out, Violation{ID: id, Kind: MissingChildLink, Other: p})
			}
		}
	}
	return out
}

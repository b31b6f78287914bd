// Package util provides shared utility functions.
package util

import (
	"strings"

	"github.com/google/uuid"
)

// Standard ID lengths for cake items.
const (
	// DefaultIDLength is the number of hex characters of a generated item id.
	DefaultIDLength = 3
	// MaxIDLength caps the growth of generated ids on repeated collisions.
	MaxIDLength = 32
	// growEvery is the number of collisions tolerated before the id grows by one character.
	growEvery = 8
)

// ShortID returns a shortened version of an ID.
// If n is 0 or negative, DefaultIDLength is used.
func ShortID(id string, n int) string {
	if n <= 0 {
		n = DefaultIDLength
	}
	if len(id) <= n {
		return id
	}
	return id[:n]
}

// GenerateID returns a random lowercase hex id of n characters that is not
// rejected by exists. Every few collisions the length grows by one, so a
// crowded id space still terminates.
//
// Examples:
//
//	GenerateID(3, nil)         → "a3f"
//	GenerateID(0, store.Has)   → "0c1" (DefaultIDLength)
func GenerateID(n int, exists func(id string) bool) string {
	if n <= 0 {
		n = DefaultIDLength
	}
	if n > MaxIDLength {
		n = MaxIDLength
	}
	for attempt := 1; ; attempt++ {
		id := ShortID(hexID(), n)
		if exists == nil || !exists(id) {
			return id
		}
		if attempt%growEvery == 0 && n < MaxIDLength {
			n++
		}
	}
}

// hexID returns the 32 hex digits of a random UUID.
func hexID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

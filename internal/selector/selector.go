// Package selector resolves filter criteria into an ordered list of item ids.
package selector

import (
	"slices"

	"github.com/sevenuz/cake/internal/graph"
	"github.com/sevenuz/cake/internal/util"
	"github.com/sevenuz/cake/models"
)

// Mode combines the criteria of a selector.
type Mode int

const (
	// ModeAnd requires every specified criterion to hold.
	ModeAnd Mode = iota
	// ModeOr requires any specified criterion to hold.
	ModeOr
)

func (m Mode) String() string {
	if m == ModeOr {
		return "or"
	}
	return "and"
}

// Source is what a selector resolves against.
type Source interface {
	graph.Source
	IDs() []string
}

// Selector is a declarative item filter.
type Selector struct {
	IDs         []string
	Children    []string
	Parents     []string
	Tags        []string
	ExcludeTags []string
	// Before and After are absolute creation time cutoffs in unix seconds.
	Before  *int64
	After   *int64
	Started bool
	Stopped bool
	// RParents and RChildren expand the matches along parent or child edges.
	RParents  bool
	RChildren bool
	Mode      Mode
	// MaxDepth bounds the expansion walk; 0 means graph.MaxDepth.
	MaxDepth int
}

// Empty reports whether no matching criterion is set. Exclude tags and the
// expansion flags do not count.
func (s *Selector) Empty() bool {
	return len(s.IDs) == 0 &&
		len(s.Children) == 0 &&
		len(s.Parents) == 0 &&
		len(s.Tags) == 0 &&
		s.Before == nil &&
		s.After == nil &&
		!s.Started &&
		!s.Stopped
}

// Excluded reports whether item carries an excluded tag.
func (s *Selector) Excluded(item *models.Item) bool {
	return util.ContainsAny(s.ExcludeTags, item.Tags)
}

// Resolve returns the matching ids: explicitly given ids first, then the
// remaining items in src.IDs() order, without duplicates. Items with an
// excluded tag are dropped. With expand set, ids reached by walking up
// (RParents) and then down (RChildren) from the matches are appended.
func (s *Selector) Resolve(src Source, expand bool) []string {
	candidates := make([]string, 0, len(s.IDs))
	for _, id := range s.IDs {
		if _, ok := src.Lookup(id); ok {
			candidates = append(candidates, id)
		}
	}
	candidates = util.AppendMissing(candidates, src.IDs()...)

	empty := s.Empty()
	result := make([]string, 0, len(candidates))
	for _, id := range candidates {
		item, _ := src.Lookup(id)
		if slices.Contains(result, id) || s.Excluded(item) {
			continue
		}
		if empty || s.matches(item) {
			result = append(result, id)
		}
	}

	if !expand {
		return result
	}
	base := slices.Clone(result)
	if s.RParents {
		up := graph.NewWalker(src, graph.Up, s.MaxDepth)
		up.Walk(base, func(graph.View) bool { return true })
		result = util.AppendMissing(result, up.Visited()...)
	}
	if s.RChildren {
		down := graph.NewWalker(src, graph.Down, s.MaxDepth)
		down.Walk(base, func(graph.View) bool { return true })
		result = util.AppendMissing(result, down.Visited()...)
	}
	return result
}

func (s *Selector) matches(item *models.Item) bool {
	if s.Mode == ModeOr {
		return s.matchesAny(item)
	}
	return s.matchesAll(item)
}

func (s *Selector) matchesAny(item *models.Item) bool {
	return slices.Contains(s.IDs, item.ID) ||
		util.ContainsAny(s.Children, item.Children) ||
		util.ContainsAny(s.Parents, item.Parents) ||
		util.ContainsAny(s.Tags, item.Tags) ||
		(s.Before != nil && item.Timestamp < *s.Before) ||
		(s.After != nil && item.Timestamp > *s.After) ||
		(s.Started && item.IsStarted()) ||
		(s.Stopped && item.IsStopped())
}

func (s *Selector) matchesAll(item *models.Item) bool {
	return (len(s.IDs) == 0 || slices.Contains(s.IDs, item.ID)) &&
		util.IsSubset(s.Children, item.Children) &&
		util.IsSubset(s.Parents, item.Parents) &&
		util.IsSubset(s.Tags, item.Tags) &&
		(s.Before == nil || item.Timestamp < *s.Before) &&
		(s.After == nil || item.Timestamp > *s.After) &&
		(!s.Started || item.IsStarted()) &&
		(!s.Stopped || item.IsStopped())
}

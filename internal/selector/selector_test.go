package selector

import (
	"errors"
	"testing"

	"github.com/sevenuz/cake/models"
	"github.com/sevenuz/cake/store"
	"github.com/sevenuz/cake/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spec struct {
	id        string
	ts        int64
	parents   []string
	tags      []string
	timetrack []int64
}

func build(t *testing.T, specs ...spec) *store.Store {
	t.Helper()
	s := store.New()
	for _, sp := range specs {
		item := models.New(sp.id, nil, sp.parents, sp.tags)
		item.Timestamp = sp.ts
		if sp.timetrack != nil {
			item.Timetrack = sp.timetrack
		}
		require.NoError(t, s.Add(item))
	}
	return s
}

// cycle builds A -> B -> C -> A.
func cycle(t *testing.T) *store.Store {
	s := build(t,
		spec{id: "A", ts: 1},
		spec{id: "B", ts: 2, parents: []string{"A"}},
		spec{id: "C", ts: 3, parents: []string{"B"}},
	)
	require.NoError(t, s.Edit(models.New("A", nil, []string{"C"}, nil), false))
	return s
}

func ptr(v int64) *int64 { return &v }

func TestResolve_CycleExpandsChildrenOnce(t *testing.T) {
	s := cycle(t)
	sel := &Selector{IDs: []string{"A"}, RChildren: true}

	assert.Equal(t, []string{"A", "B", "C"}, sel.Resolve(s, true))
	assert.Equal(t, []string{"A"}, sel.Resolve(s, false))
}

func TestResolve_ExpandParentsFirst(t *testing.T) {
	s := build(t,
		spec{id: "root", ts: 1},
		spec{id: "mid", ts: 2, parents: []string{"root"}},
		spec{id: "leaf", ts: 3, parents: []string{"mid"}},
		spec{id: "kid", ts: 4, parents: []string{"mid"}},
	)
	sel := &Selector{IDs: []string{"mid"}, RParents: true, RChildren: true}
	assert.Equal(t, []string{"mid", "root", "leaf", "kid"}, sel.Resolve(s, true))
}

func TestResolve_ZeroCriteriaMatchesAll(t *testing.T) {
	s := build(t, spec{id: "b", ts: 2}, spec{id: "a", ts: 1}, spec{id: "c", ts: 3})
	for _, mode := range []Mode{ModeAnd, ModeOr} {
		sel := &Selector{Mode: mode}
		assert.Equal(t, []string{"a", "b", "c"}, sel.Resolve(s, false), mode.String())
	}
}

func TestResolve_SingleCriterionModesAgree(t *testing.T) {
	s := build(t,
		spec{id: "p", ts: 10, tags: []string{"x"}},
		spec{id: "q", ts: 20, parents: []string{"p"}, tags: []string{"y"}},
		spec{id: "r", ts: 30, parents: []string{"p", "q"}, timetrack: []int64{5}},
		spec{id: "s", ts: 40, tags: []string{"x", "y"}, timetrack: []int64{5, 6}},
	)
	selectors := map[string]Selector{
		"ids":      {IDs: []string{"s", "q"}},
		"children": {Children: []string{"q"}},
		"parents":  {Parents: []string{"p"}},
		"tags":     {Tags: []string{"x"}},
		"before":   {Before: ptr(25)},
		"after":    {After: ptr(25)},
		"started":  {Started: true},
		"stopped":  {Stopped: true},
	}
	for name, base := range selectors {
		t.Run(name, func(t *testing.T) {
			and, or := base, base
			and.Mode, or.Mode = ModeAnd, ModeOr
			got := and.Resolve(s, false)
			assert.Equal(t, got, or.Resolve(s, false))
			assert.NotEmpty(t, got)
		})
	}
}

func TestResolve_AndOr(t *testing.T) {
	s := build(t,
		spec{id: "a", ts: 1, tags: []string{"x"}},
		spec{id: "b", ts: 2, tags: []string{"x", "y"}},
		spec{id: "c", ts: 3, tags: []string{"y"}, timetrack: []int64{1}},
	)

	tests := []struct {
		name string
		sel  Selector
		want []string
	}{
		{"and requires all tags", Selector{Tags: []string{"x", "y"}}, []string{"b"}},
		{"or takes any tag", Selector{Tags: []string{"x", "y"}, Mode: ModeOr}, []string{"a", "b", "c"}},
		{"and combines criteria", Selector{Tags: []string{"y"}, Started: true}, []string{"c"}},
		{"or combines criteria", Selector{Tags: []string{"x"}, Started: true, Mode: ModeOr}, []string{"a", "b", "c"}},
		{"explicit ids come first", Selector{IDs: []string{"c", "a"}, Mode: ModeOr}, []string{"c", "a"}},
		{"unknown ids are ignored", Selector{IDs: []string{"zz", "b"}}, []string{"b"}},
		{"before is strict", Selector{Before: ptr(2)}, []string{"a"}},
		{"after is strict", Selector{After: ptr(2)}, []string{"c"}},
		{"nothing matches", Selector{Tags: []string{"nope"}}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.Resolve(s, false))
		})
	}
}

func TestResolve_ExcludeAlwaysSubtracted(t *testing.T) {
	s := build(t,
		spec{id: "a", ts: 1, tags: []string{"x"}},
		spec{id: "b", ts: 2, tags: []string{"x", "done"}},
		spec{id: "c", ts: 3},
	)
	for _, mode := range []Mode{ModeAnd, ModeOr} {
		sel := &Selector{IDs: []string{"b"}, Tags: []string{"x"}, ExcludeTags: []string{"done"}, Mode: mode}
		assert.NotContains(t, sel.Resolve(s, false), "b")
	}
	sel := &Selector{ExcludeTags: []string{"done"}}
	assert.Equal(t, []string{"a", "c"}, sel.Resolve(s, false))
	b, _ := s.Lookup("b")
	assert.True(t, sel.Excluded(b))
}

func TestFromInput(t *testing.T) {
	now := int64(1_000_000)
	sel, err := FromInput(Input{
		IDs:       []string{"a, b", "|c", "a"},
		Children:  "x,, y",
		Parents:   "p",
		Tags:      "t1,~done, t2",
		Before:    "1d",
		Recursive: 3,
		Or:        true,
	}, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, sel.IDs)
	assert.Equal(t, []string{"x", "y"}, sel.Children)
	assert.Equal(t, []string{"p"}, sel.Parents)
	assert.Equal(t, []string{"t1", "t2"}, sel.Tags)
	assert.Equal(t, []string{"done"}, sel.ExcludeTags)
	require.NotNil(t, sel.Before)
	assert.Equal(t, now-86400, *sel.Before)
	assert.Nil(t, sel.After)
	assert.True(t, sel.RChildren)
	assert.True(t, sel.RParents)
	assert.Equal(t, ModeOr, sel.Mode)
}

func TestFromInput_RecursiveCount(t *testing.T) {
	tests := []struct {
		count              int
		children, parents bool
	}{
		{0, false, false},
		{1, true, false},
		{2, false, true},
		{3, true, true},
		{5, true, true},
	}
	for _, tt := range tests {
		sel, err := FromInput(Input{Recursive: tt.count}, 0)
		require.NoError(t, err)
		if sel.RChildren != tt.children || sel.RParents != tt.parents {
			t.Fatalf("Recursive %d: children=%v parents=%v, want %v %v", tt.count, sel.RChildren, sel.RParents, tt.children, tt.parents)
		}
	}
}

func TestFromInput_BadDuration(t *testing.T) {
	_, err := FromInput(Input{After: "3x"}, 0)
	assert.True(t, errors.Is(err, types.ErrParse))
}

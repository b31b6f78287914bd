package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sevenuz/cake/internal/util"
	"github.com/sevenuz/cake/types"
)

// Now returns the current unix time in seconds. Tests replace it to get
// deterministic timestamps.
var Now = func() int64 {
	return time.Now().Unix()
}

// Item is a single task or note. Children and Parents hold ids that are
// resolved through the store; the store is the only place that keeps both
// directions in sync, so callers should not edit those slices directly.
type Item struct {
	ID       string   `json:"id" yaml:"id" toml:"id" validate:"required,excludesall=0x2C0x7C"`
	Children []string `json:"children" yaml:"children" toml:"children" validate:"dive,required,excludesall=0x2C0x7C"`
	Parents  []string `json:"parents" yaml:"parents" toml:"parents" validate:"dive,required,excludesall=0x2C0x7C"`
	Tags     []string `json:"tags" yaml:"tags" toml:"tags" validate:"dive,required,excludesall=0x2C0x7C"`
	// Timetrack holds start/stop pairs in unix seconds. An odd length means
	// the item is running.
	Timetrack    []int64 `json:"timetrack" yaml:"timetrack" toml:"timetrack"`
	Content      string  `json:"content" yaml:"content" toml:"content"`
	Timestamp    int64   `json:"timestamp" yaml:"timestamp" toml:"timestamp"`
	LastModified int64   `json:"last_modified" yaml:"last_modified" toml:"last_modified"`
}

// global validator instance
var validate = validator.New()

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var errorMessages []string
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, fmt.Sprintf("validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
}

// New creates an item with the given relations and tags. Content and
// timetrack start empty, both timestamps are set to now.
func New(id string, children, parents, tags []string) *Item {
	now := Now()
	return &Item{
		ID:           id,
		Children:     orEmpty(children),
		Parents:      orEmpty(parents),
		Tags:         orEmpty(tags),
		Timetrack:    []int64{},
		Timestamp:    now,
		LastModified: now,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

// Normalize replaces nil slices with empty ones, e.g. after decoding a file
// that omits a field.
func (i *Item) Normalize() {
	i.Children = orEmpty(i.Children)
	i.Parents = orEmpty(i.Parents)
	i.Tags = orEmpty(i.Tags)
	if i.Timetrack == nil {
		i.Timetrack = []int64{}
	}
}

// Validate checks the item fields (non-empty id, no pipes in any identifier).
func (i *Item) Validate() error {
	return ValidateStruct(i)
}

func (i *Item) touch() {
	i.LastModified = Now()
}

// SetContent replaces the content.
func (i *Item) SetContent(content string) {
	i.Content = content
	i.touch()
}

// AppendTags adds the tags that are not present yet.
func (i *Item) AppendTags(tags ...string) {
	i.Tags = util.AppendMissing(i.Tags, tags...)
	i.touch()
}

// RemoveTags drops every occurrence of the given tags.
func (i *Item) RemoveTags(tags ...string) {
	i.Tags = util.Remove(i.Tags, tags...)
	i.touch()
}

// HasTag reports whether the item carries tag.
func (i *Item) HasTag(tag string) bool {
	return slices.Contains(i.Tags, tag)
}

// HasChildren reports whether the item has any child.
func (i *Item) HasChildren() bool {
	return len(i.Children) > 0
}

// AddChild links a child id. Managed by the store.
func (i *Item) AddChild(id string) {
	i.Children = util.AppendMissing(i.Children, id)
	i.touch()
}

// RetainChild unlinks a child id. Managed by the store.
func (i *Item) RetainChild(id string) {
	i.Children = util.Remove(i.Children, id)
	i.touch()
}

// AddParent links a parent id. Managed by the store.
func (i *Item) AddParent(id string) {
	i.Parents = util.AppendMissing(i.Parents, id)
	i.touch()
}

// RetainParent unlinks a parent id. Managed by the store.
func (i *Item) RetainParent(id string) {
	i.Parents = util.Remove(i.Parents, id)
	i.touch()
}

// IsStarted reports whether time tracking is running.
func (i *Item) IsStarted() bool {
	return len(i.Timetrack)%2 == 1
}

// IsStopped reports whether time tracking is not running.
func (i *Item) IsStopped() bool {
	return len(i.Timetrack)%2 == 0
}

// Start opens a tracking interval.
func (i *Item) Start() error {
	if i.IsStarted() {
		since := i.Timetrack[len(i.Timetrack)-1]
		return &types.StateError{
			ID:      i.ID,
			Since:   since,
			Message: "runs already since " + FormatTime(since, time.Local),
		}
	}
	i.Timetrack = append(i.Timetrack, Now())
	i.touch()
	return nil
}

// Stop closes the running tracking interval.
func (i *Item) Stop() error {
	if i.IsStopped() {
		se := &types.StateError{ID: i.ID, Message: "is not running"}
		if n := len(i.Timetrack); n > 0 {
			se.Since = i.Timetrack[n-1]
		}
		return se
	}
	i.Timetrack = append(i.Timetrack, Now())
	i.touch()
	return nil
}

// Set replaces everything but the id and the creation timestamp with the
// values of other.
func (i *Item) Set(other *Item) {
	i.Children = orEmpty(other.Children)
	i.Parents = orEmpty(other.Parents)
	i.Tags = orEmpty(other.Tags)
	i.Timetrack = slices.Clone(other.Timetrack)
	if i.Timetrack == nil {
		i.Timetrack = []int64{}
	}
	i.Content = other.Content
	i.touch()
}

// Merge unions tags, children and parents of other into i and takes over its
// content.
func (i *Item) Merge(other *Item) {
	i.Tags = util.AppendMissing(i.Tags, other.Tags...)
	i.Children = util.AppendMissing(i.Children, other.Children...)
	i.Parents = util.AppendMissing(i.Parents, other.Parents...)
	i.Content = other.Content
	i.touch()
}

// Clone returns a deep copy.
func (i *Item) Clone() *Item {
	c := *i
	c.Children = slices.Clone(i.Children)
	c.Parents = slices.Clone(i.Parents)
	c.Tags = slices.Clone(i.Tags)
	c.Timetrack = slices.Clone(i.Timetrack)
	return &c
}

package selector

import (
	"github.com/sevenuz/cake/internal/util"
)

// Input carries the raw selector flags of a command.
type Input struct {
	// IDs are positional arguments; each may hold a comma separated list.
	IDs      []string
	Children string
	Parents  string
	Tags     string
	Before   string
	After    string
	Started  bool
	Stopped  bool
	// Recursive is the repeat count of the recursive flag: 1 expands
	// children, 2 parents, 3 or more both.
	Recursive int
	Or        bool
}

// FromInput builds a selector from raw flag values. now is the reference for
// relative durations.
func FromInput(in Input, now int64) (*Selector, error) {
	before, err := Cutoff(in.Before, now)
	if err != nil {
		return nil, err
	}
	after, err := Cutoff(in.After, now)
	if err != nil {
		return nil, err
	}

	s := &Selector{
		Children:    util.SplitCommaCleanup(in.Children),
		Parents:     util.SplitCommaCleanup(in.Parents),
		Tags:        util.SplitIncludeTags(in.Tags),
		ExcludeTags: util.SplitExcludeTags(in.Tags),
		Before:      before,
		After:       after,
		Started:     in.Started,
		Stopped:     in.Stopped,
		RChildren:   in.Recursive == 1 || in.Recursive > 2,
		RParents:    in.Recursive > 1,
	}
	s.IDs = []string{}
	for _, raw := range in.IDs {
		s.IDs = util.AppendMissing(s.IDs, util.SplitCommaCleanup(raw)...)
	}
	if in.Or {
		s.Mode = ModeOr
	}
	return s, nil
}

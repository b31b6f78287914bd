package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/sevenuz/cake/types"
)

// Line prefixes of the Markdown table header. Every line ends with fieldSuffix.
const (
	PrefixID           = "| id | "
	PrefixTimestamp    = "| timestamp | "
	PrefixLastModified = "| last modified | "
	PrefixTags         = "| tags | "
	PrefixTimetrack    = "| timetrack | "
	PrefixParents      = "| parents | "
	PrefixChildren     = "| children | "

	fieldSuffix = "|"
)

// ListSeparator joins list fields in the text form.
const ListSeparator = ", "

// DateLayout is used both to render and to parse dates. It carries seconds
// and a numeric zone offset so parsing restores the exact unix time.
const DateLayout = "Mon Jan _2 15:04:05 2006 -0700"

var headerPrefixes = []string{
	PrefixID,
	PrefixTimestamp,
	PrefixLastModified,
	PrefixTags,
	PrefixTimetrack,
	PrefixParents,
	PrefixChildren,
}

// FormatTime renders unix seconds with DateLayout in loc (nil means local time).
func FormatTime(ts int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(ts, 0).In(loc).Format(DateLayout)
}

// ParseTime parses a date rendered by FormatTime.
func ParseTime(s string) (int64, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

func joinList(values []string) string {
	return strings.Join(values, ListSeparator)
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ListSeparator)
}

// MarshalBlock renders the item as a Markdown block with absolute dates.
func (i *Item) MarshalBlock(loc *time.Location) string {
	return i.Long(LongOptions{Serialize: true, Location: loc})
}

// ParseBlock parses a block rendered by MarshalBlock. The header must match
// line by line; anything else fails and no item is returned.
func ParseBlock(block string) (*Item, error) {
	lines := strings.SplitN(block, "\n", len(headerPrefixes)+2)
	if len(lines) < len(headerPrefixes)+2 {
		return nil, types.NewParseError("item block", fmt.Sprintf("expected %d header lines and a blank line, got %d lines", len(headerPrefixes), len(lines)), nil)
	}

	values := make([]string, len(headerPrefixes))
	for idx, prefix := range headerPrefixes {
		v, err := headerValue(lines[idx], prefix)
		if err != nil {
			return nil, types.NewParseError(fmt.Sprintf("item block line %d", idx+1), err.Error(), nil)
		}
		values[idx] = v
	}
	if lines[len(headerPrefixes)] != "" {
		return nil, types.NewParseError(fmt.Sprintf("item block line %d", len(headerPrefixes)+1), "expected blank line after header", nil)
	}

	item := &Item{
		ID:       values[0],
		Tags:     splitList(values[3]),
		Parents:  splitList(values[5]),
		Children: splitList(values[6]),
		Content:  lines[len(headerPrefixes)+1],
	}
	if item.ID == "" {
		return nil, types.NewParseError("item block line 1", "empty id", nil)
	}

	var err error
	if item.Timestamp, err = ParseTime(values[1]); err != nil {
		return nil, types.NewParseError(item.ID, "invalid timestamp", err)
	}
	if item.LastModified, err = ParseTime(values[2]); err != nil {
		return nil, types.NewParseError(item.ID, "invalid last modified", err)
	}
	entries := splitList(values[4])
	item.Timetrack = make([]int64, 0, len(entries))
	for _, e := range entries {
		ts, err := ParseTime(e)
		if err != nil {
			return nil, types.NewParseError(item.ID, "invalid timetrack entry", err)
		}
		item.Timetrack = append(item.Timetrack, ts)
	}
	return item, nil
}

func headerValue(line, prefix string) (string, error) {
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return "", fmt.Errorf("expected prefix %q", prefix)
	}
	value, ok := strings.CutSuffix(rest, fieldSuffix)
	if !ok {
		return "", fmt.Errorf("expected suffix %q after %q", fieldSuffix, strings.TrimSpace(prefix))
	}
	return value, nil
}

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/sevenuz/cake/internal/util"
)

// Border glyphs of the short form.
const (
	borderLeaf   = "|"
	borderBranch = "\\"
	markStarted  = "*"
)

// LongOptions controls the long form rendering.
type LongOptions struct {
	// Serialize renders every timetrack entry as an absolute date, which is
	// what the Markdown codec stores. Otherwise closed intervals are shown
	// as durations.
	Serialize bool
	// Location used for dates; nil means time.Local.
	Location *time.Location
}

// Short renders a single line summary: the id centered in width columns
// between two border glyphs, a started marker and the first content line.
// mark decorates the started marker and may be nil.
func (i *Item) Short(width int, hasChildren bool, mark func(string) string) string {
	border := borderLeaf
	if hasChildren {
		border = borderBranch
	}
	marker := ""
	if i.IsStarted() {
		marker = markStarted
		if mark != nil {
			marker = mark(marker)
		}
	}
	return border + util.Center(i.ID, width) + marker + border + " " + util.FirstLine(i.Content)
}

// Long renders the full text block.
func (i *Item) Long(opts LongOptions) string {
	var tt []string
	if opts.Serialize {
		tt = make([]string, 0, len(i.Timetrack))
		for _, t := range i.Timetrack {
			tt = append(tt, FormatTime(t, opts.Location))
		}
	} else {
		for _, d := range i.Durations() {
			tt = append(tt, FormatDuration(d))
		}
	}

	var b strings.Builder
	writeField(&b, PrefixID, i.ID)
	writeField(&b, PrefixTimestamp, FormatTime(i.Timestamp, opts.Location))
	writeField(&b, PrefixLastModified, FormatTime(i.LastModified, opts.Location))
	writeField(&b, PrefixTags, joinList(i.Tags))
	writeField(&b, PrefixTimetrack, joinList(tt))
	writeField(&b, PrefixParents, joinList(i.Parents))
	writeField(&b, PrefixChildren, joinList(i.Children))
	b.WriteString("\n")
	b.WriteString(i.Content)
	return b.String()
}

// String renders the long form with durations.
func (i *Item) String() string {
	return i.Long(LongOptions{})
}

func writeField(b *strings.Builder, prefix, value string) {
	b.WriteString(prefix)
	b.WriteString(value)
	b.WriteString(fieldSuffix + "\n")
}

// Durations returns the length of every closed tracking interval in seconds.
func (i *Item) Durations() []int64 {
	out := make([]int64, 0, len(i.Timetrack)/2)
	for k := 0; k+1 < len(i.Timetrack); k += 2 {
		out = append(out, i.Timetrack[k+1]-i.Timetrack[k])
	}
	return out
}

// Tracked returns the sum of all closed tracking intervals in seconds.
func (i *Item) Tracked() int64 {
	var total int64
	for _, d := range i.Durations() {
		total += d
	}
	return total
}

// FormatDuration renders seconds as e.g. "1h2m3s", omitting zero parts.
func FormatDuration(seconds int64) string {
	if seconds <= 0 {
		return "0s"
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60

	var b strings.Builder
	if h > 0 {
		fmt.Fprintf(&b, "%dh", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%dm", m)
	}
	if s > 0 {
		fmt.Fprintf(&b, "%ds", s)
	}
	return b.String()
}

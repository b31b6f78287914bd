package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sevenuz/cake/internal/graph"
	"github.com/sevenuz/cake/models"
)

// Warnings attached to reappearing items below the top level.
const (
	ReappearanceWarning = "### Reappearance Warning ###"
	RecursionWarning    = "### Recursion Warning ###"
)

// LongDelimiter separates items in the long view.
const LongDelimiter = "\n---\n"

const rule = "---"

func markStarted(s string) string {
	return StyleStarted.Render(s)
}

// Tree renders views as indented short lines. Items that reappear at the top
// level are skipped; deeper reappearances are shown with a warning.
func Tree(views []graph.View) string {
	width := 0
	for _, v := range views {
		width = max(width, utf8.RuneCountInString(v.Item.ID))
	}

	var b strings.Builder
	for _, v := range views {
		if v.State == graph.Reappearance && v.Depth == 0 {
			continue
		}
		indent := v.Depth
		if v.HasChildren {
			indent++
		}
		b.WriteString(strings.Repeat(" ", indent))
		b.WriteString(" ")
		b.WriteString(v.Item.Short(width, v.HasChildren, markStarted))
		if v.State == graph.Reappearance {
			b.WriteString(" " + StyleRecurrence.Render(ReappearanceWarning))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Long renders views as full blocks with tracked durations. Dates use loc,
// nil means local time.
func Long(views []graph.View, loc *time.Location) string {
	blocks := make([]string, 0, len(views))
	for _, v := range views {
		block := v.Item.Long(models.LongOptions{Location: loc})
		if v.State == graph.Reappearance && v.Depth > 0 {
			block = StyleRecurrence.Render(RecursionWarning) + "\n" + block
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n"+StyleDelimiter.Render(rule)+"\n")
}

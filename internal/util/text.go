package util

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// ExcludePrefix marks a tag that should be excluded or removed.
const ExcludePrefix = "~"

// Sanitize removes characters that cannot appear in identifiers.
// A leading "~" is dropped because it marks exclusion, and "|" is dropped
// everywhere because it delimits the Markdown table header.
func Sanitize(s string) string {
	s = strings.TrimPrefix(s, ExcludePrefix)
	return strings.TrimSpace(strings.ReplaceAll(s, "|", ""))
}

// SplitCommaCleanup splits a comma separated list, trims and sanitizes every
// entry and drops empty ones. An empty input yields an empty slice.
func SplitCommaCleanup(s string) []string {
	return splitComma(s, func(string) bool { return true })
}

// SplitIncludeTags returns the entries of a comma separated tag list that are
// not prefixed with "~".
func SplitIncludeTags(s string) []string {
	return splitComma(s, func(raw string) bool { return !strings.HasPrefix(raw, ExcludePrefix) })
}

// SplitExcludeTags returns the entries of a comma separated tag list that are
// prefixed with "~", without the prefix.
func SplitExcludeTags(s string) []string {
	return splitComma(s, func(raw string) bool { return strings.HasPrefix(raw, ExcludePrefix) })
}

func splitComma(s string, keep func(raw string) bool) []string {
	out := []string{}
	for _, raw := range strings.Split(s, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" || !keep(raw) {
			continue
		}
		if clean := Sanitize(raw); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

// ContainsAny reports whether at least one element of want is in have.
func ContainsAny[T comparable](want, have []T) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}

// IsSubset reports whether every element of want is in have.
func IsSubset[T comparable](want, have []T) bool {
	for _, w := range want {
		if !slices.Contains(have, w) {
			return false
		}
	}
	return true
}

// AppendMissing appends the values of add that are not yet in dst, keeping order.
func AppendMissing(dst []string, add ...string) []string {
	for _, v := range add {
		if !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}

// Remove returns s without any occurrence of the given values.
func Remove(s []string, values ...string) []string {
	out := make([]string, 0, len(s))
	for _, v := range s {
		if !slices.Contains(values, v) {
			out = append(out, v)
		}
	}
	return out
}

// Center pads s with spaces to width runes, putting the odd space on the right.
// Strings that are already wider are returned unchanged.
func Center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// FirstLine returns s up to the first newline.
func FirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

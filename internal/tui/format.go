package tui

import (
	"strconv"
	"strings"
)

// parseTags splits comma-separated tag input. Entries are trimmed and empty
// ones dropped; an input with no tags yields nil.
func parseTags(input string) []string {
	var tags []string
	for _, part := range strings.Split(input, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// formatTags renders tags as "a, b". Only a missing list reads "No tags"; an
// empty one renders as an empty line.
func formatTags(tags []string) string {
	if tags == nil {
		return "No tags"
	}
	return strings.Join(tags, ", ")
}

// formatViews renders a view count as "N views".
func formatViews(n int64) string {
	return strconv.FormatInt(n, 10) + " views"
}

// clampLines keeps at most n lines of s, preferring the window that contains
// line focus.
func clampLines(s string, n, focus int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}

	start := 0
	if focus >= n {
		start = focus - n + 1
	}
	start = min(start, len(lines)-n)
	return strings.Join(lines[start:start+n], "\n")
}

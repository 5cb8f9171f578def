package ai

import "strings"

// extractJSON returns the part of s from the first open delimiter to the
// last close delimiter, dropping prose or code fences the model wrapped
// around its JSON. s is returned trimmed when no such region exists.
func extractJSON(s string, openDelim, closeDelim byte) string {
	start := strings.IndexByte(s, openDelim)
	end := strings.LastIndexByte(s, closeDelim)
	if start < 0 || end <= start {
		return strings.TrimSpace(s)
	}
	return s[start : end+1]
}

func extractObject(s string) string {
	return extractJSON(s, '{', '}')
}

func extractArray(s string) string {
	return extractJSON(s, '[', ']')
}

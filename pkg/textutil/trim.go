package textutil

import "strings"

// TrimEdges removes leading and trailing blank lines from content, adjusting
// startLine/endLine in lockstep so the returned bounds still refer to the
// original document's physical lines.
func TrimEdges(content string, startLine, endLine int) (string, int, int) {
	if content == "" {
		return content, startLine, endLine
	}

	lines := strings.Split(content, "\n")

	leadingBlanks := 0
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			break
		}
		leadingBlanks++
	}
	if leadingBlanks == len(lines) {
		// Entirely blank: collapse to empty but keep a valid single-line range.
		return "", startLine, startLine
	}

	trailingBlanks := 0
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			break
		}
		trailingBlanks++
	}

	trimmed := lines[leadingBlanks : len(lines)-trailingBlanks]
	return strings.Join(trimmed, "\n"), startLine + leadingBlanks, endLine - trailingBlanks
}

// IsBlank reports whether s contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

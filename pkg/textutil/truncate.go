package textutil

import "unicode"

// maxBoundarySearch bounds how far TruncateTail/TruncateHead will scan for a
// whitespace run before giving up and falling back to a hard cut.
const maxBoundarySearch = 40

// TruncateTail returns the last maxLen runes of s, trimmed backward to the
// nearest whitespace boundary within maxBoundarySearch runes of the cut
// point. If no whitespace is found in range, it falls back to a hard cut at
// maxLen. Used by the overlap annotator to avoid splitting mid-word when it
// carries trailing context from one chunk into the next.
func TruncateTail(s string, maxLen int) string {
	r := []rune(s)
	if maxLen <= 0 {
		return ""
	}
	if len(r) <= maxLen {
		return s
	}

	cut := len(r) - maxLen
	limit := cut - maxBoundarySearch
	if limit < 0 {
		limit = 0
	}
	for i := cut; i > limit; i-- {
		if unicode.IsSpace(r[i-1]) {
			return string(r[i:])
		}
	}
	return string(r[cut:])
}

// TruncateHead returns the first maxLen runes of s, trimmed forward to the
// nearest whitespace boundary within maxBoundarySearch runes of the cut
// point. If no whitespace is found in range, it falls back to a hard cut at
// maxLen. Used by the overlap annotator to avoid splitting mid-word when it
// carries leading context from one chunk back into the previous.
func TruncateHead(s string, maxLen int) string {
	r := []rune(s)
	if maxLen <= 0 {
		return ""
	}
	if len(r) <= maxLen {
		return s
	}

	cut := maxLen
	limit := cut + maxBoundarySearch
	if limit > len(r) {
		limit = len(r)
	}
	for i := cut; i < limit; i++ {
		if unicode.IsSpace(r[i]) {
			return string(r[:i])
		}
	}
	return string(r[:cut])
}

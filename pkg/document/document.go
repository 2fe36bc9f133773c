package document

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Document is an immutable, line-indexed view over a markdown input. Line
// numbers are 1-indexed; line_start_offset[i] gives the byte offset (into
// the normalized text) of line i.
type Document struct {
	text   string
	lines  []string // text of each line, without the trailing newline
	starts []int    // byte offset of the start of each line within text
}

// Scan normalizes line endings (CRLF -> LF) and builds the line index.
// Returns an error only for invalid UTF-8 input; bytes are never silently
// dropped.
func Scan(raw string) (*Document, error) {
	if !utf8.ValidString(raw) {
		return nil, fmt.Errorf("document: invalid UTF-8 input")
	}

	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	lines := strings.Split(normalized, "\n")
	starts := make([]int, len(lines))
	offset := 0
	for i, l := range lines {
		starts[i] = offset
		offset += len(l) + 1 // +1 for the newline that was split on
	}

	return &Document{
		text:   normalized,
		lines:  lines,
		starts: starts,
	}, nil
}

// Text returns the full normalized document text.
func (d *Document) Text() string { return d.text }

// LineCount returns the total number of lines in the document.
func (d *Document) LineCount() int { return len(d.lines) }

// Line returns the content of the 1-indexed line n, without its trailing
// newline. Returns "" if n is out of range.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.lines) {
		return ""
	}
	return d.lines[n-1]
}

// LineToOffset returns the byte offset of the start of 1-indexed line n.
func (d *Document) LineToOffset(n int) int {
	if n < 1 {
		return 0
	}
	if n > len(d.starts) {
		return len(d.text)
	}
	return d.starts[n-1]
}

// OffsetToLine returns the 1-indexed line number containing byte offset off.
func (d *Document) OffsetToLine(off int) int {
	// Binary search over starts for the last start <= off.
	lo, hi := 0, len(d.starts)-1
	result := 1
	for lo <= hi {
		mid := (lo + hi) / 2
		if d.starts[mid] <= off {
			result = mid + 1
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return result
}

// Slice returns the verbatim text spanning 1-indexed inclusive lines
// [start, end], joined with "\n" (no trailing newline added).
func (d *Document) Slice(start, end int) string {
	if start < 1 {
		start = 1
	}
	if end > len(d.lines) {
		end = len(d.lines)
	}
	if start > end {
		return ""
	}
	return strings.Join(d.lines[start-1:end], "\n")
}

// Package textutil provides string-level helpers shared by the chunking
// strategies and the overlap annotator: edge-trimming a chunk's content
// (adjusting its line bounds in lockstep), splitting at paragraph/sentence/
// word boundaries, and truncating a string to the nearest whitespace run.
//
// These operate purely on chunk-content strings, never on a whole document:
// the line-number invariant forbids any whole-document reflow (hard-wrap
// joining, blank-line collapsing) ahead of line-indexing, since that would
// desynchronize a chunk's start_line/end_line from the original input's
// physical lines. Edge-trimming a single already-bounded chunk is safe
// because the trimmed lines are counted and folded back into the bounds.
//
// The trimming algorithm is adapted from the teacher's blank-line pruning
// transforms (pkg/section/builtin/prune_blanks.go), generalized from
// mutating a section.Section in place to returning an adjusted
// (content, startLine, endLine) triple.
package textutil

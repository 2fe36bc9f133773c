// Package enrich implements the metadata enricher (spec §4.9): it populates
// chunk_index/total_chunks/is_first_chunk/is_last_chunk/is_continuation,
// content statistics (word_count/line_count/char_count), recomputes
// content_type by re-running the content analyzer against each chunk's own
// content, and, when enabled, computes the adaptive sizing annotations.
//
// Adaptive sizing is advisory: it never retroactively resizes a chunk that
// has already been produced by a strategy, matching the teacher's general
// preference for producing data and leaving decisions about it to the
// caller rather than mutating state in place.
package enrich

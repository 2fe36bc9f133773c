// Package validate runs the post-pipeline invariant checks: content-loss
// coverage, start_line ordering, non-empty content, size bounds, fence
// balance and line-range validity. It never re-chunks or repairs anything —
// it only reports.
//
// The checks need max_chunk_size to evaluate the size-bound invariant, so
// Validate takes a *chunkconfig.Config alongside the chunk slice and
// original text.
package validate

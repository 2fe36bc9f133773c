// Package builtin provides the three concrete chunk-packing strategies:
// CodeAware, Structural and Fallback. Each implements strategy.Strategy.
//
// The greedy-packing core (span accumulation, flush-on-overflow, the jumbo
// oversize special case) is adapted from the teacher's chunkBuilder
// (pkg/chunker/chunk.go): appendUnit/flush become packSpans' inline loop,
// generalized from a fixed token budget to the size-in-characters model and
// from "frontmatter + body parts" to arbitrary atomic/text spans.
package builtin

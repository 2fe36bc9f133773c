// Package mdchunk defines the data model and error taxonomy shared across
// the chunking pipeline: Chunk, ChunkingResult, chunk metadata keys, and the
// typed errors each stage can raise.
//
// No stage-specific logic lives here; this package is the common vocabulary
// pkg/analysis, pkg/strategy, pkg/overlap, pkg/enrich, pkg/hierarchy,
// pkg/validate and pkg/chunker all speak.
package mdchunk

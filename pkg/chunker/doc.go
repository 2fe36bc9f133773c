// Package chunker composes document -> analysis -> strategy -> overlap ->
// enrich -> hierarchy (optional) -> validate into five entry points: Chunk,
// ChunkWithMetrics, ChunkHierarchical, ChunkFile, and Validate.
//
// Each call is a pure Chunk(ctx, text) returning a fresh result: the engine
// holds no state between invocations.
package chunker

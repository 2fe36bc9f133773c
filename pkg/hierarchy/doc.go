// Package hierarchy builds the optional parent/children/sibling chunk graph.
// It never needs a graph library: the structure is a forest keyed entirely
// off a chunk's own header_path prefix relationships, so a single pass over
// the already-ordered chunk slice is enough to assign stable IDs and links.
//
// chunk_id is a sha256 digest of a chunk's position and content, truncated
// to 8 hex characters for a compact, fully deterministic identifier.
package hierarchy

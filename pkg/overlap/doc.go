// Package overlap implements the metadata-only overlap annotator (spec
// §4.8): each chunk's previous_content/next_content metadata is populated
// from its neighbors, but chunk.Content is never modified. This is a
// deliberate anti-bug-class design choice: duplicating overlap text into
// Content would bloat any downstream index and produce duplicate retrieval
// hits, so the duplication lives in metadata only, where a consumer can
// opt into using it.
package overlap

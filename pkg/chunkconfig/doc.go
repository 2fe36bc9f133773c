// Package chunkconfig holds the chunking Config model (spec §4.3): size
// bounds, thresholds, feature flags, and the eight named profile factories.
//
// Config is built through functional options, an Option func(*Config) shape:
//
//	cfg, err := chunkconfig.New(
//	    chunkconfig.WithMaxChunkSize(4096),
//	    chunkconfig.WithOverlapSize(200),
//	)
//
// Invariant violations are auto-adjusted monotonically where the spec
// allows it (e.g. min_chunk_size := max_chunk_size/2 when min > max); New
// only returns a *mdchunk.ConfigError when an invariant still breaks after
// adjustment.
package chunkconfig

package chunker

import (
	"context"
	"errors"
	"os"
	"time"
	"unicode/utf8"

	"github.com/wyvernzora/mdchunk/pkg/analysis"
	cctx "github.com/wyvernzora/mdchunk/pkg/context"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
	"github.com/wyvernzora/mdchunk/pkg/validate"
)

var errInvalidUTF8 = errors.New("file content is not valid UTF-8")

// Chunk is the minimal entry point: it returns the produced chunks with no
// aggregate metrics attached.
func (c *Chunker) Chunk(ctx context.Context, text string) ([]mdchunk.Chunk, error) {
	chunks, _, _, err := c.run(ctx, text)
	return chunks, err
}

// ChunkWithMetrics runs the full pipeline and additionally reports timing,
// document-level content classification, and complexity.
func (c *Chunker) ChunkWithMetrics(ctx context.Context, text string) (*mdchunk.ChunkingResult, error) {
	start := time.Now()
	chunks, a, fm, err := c.run(ctx, text)
	if err != nil {
		return nil, err
	}

	strategyUsed := ""
	if len(chunks) > 0 {
		strategyUsed = chunks[0].Metadata.Strategy
	}

	return &mdchunk.ChunkingResult{
		Chunks:          chunks,
		StrategyUsed:    strategyUsed,
		ProcessingTime:  time.Since(start).Seconds(),
		TotalChars:      a.TotalChars,
		TotalLines:      a.TotalLines,
		ContentType:     analysis.Classify(a, c.cfg.StructureThreshold),
		ComplexityScore: a.ComplexityScore,
		DocumentMeta:    map[string]any(fm),
	}, nil
}

// ChunkHierarchical runs the full pipeline, then assembles the optional
// parent/child/sibling hierarchy and (when configured) the synthetic
// document-summary root chunk.
func (c *Chunker) ChunkHierarchical(ctx context.Context, text string) (*mdchunk.HierarchicalChunkingResult, error) {
	metrics, err := c.ChunkWithMetrics(ctx, text)
	if err != nil {
		return nil, err
	}

	chunks, rootID, err := c.buildHierarchy(metrics.Chunks, metrics.DocumentMeta)
	if err != nil {
		return nil, err
	}
	metrics.Chunks = chunks

	return &mdchunk.HierarchicalChunkingResult{
		ChunkingResult: *metrics,
		RootChunkID:    rootID,
	}, nil
}

// ChunkFile reads path and delegates to Chunk. Missing files and invalid
// UTF-8 content surface as *mdchunk.InputError.
func (c *Chunker) ChunkFile(ctx context.Context, path string) ([]mdchunk.Chunk, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, mdchunk.NewInputError(path, err)
	}
	if !utf8.Valid(raw) {
		return nil, mdchunk.NewInputError(path, errInvalidUTF8)
	}
	ctx = cctx.WithFileInfo(ctx, cctx.FileInfo{Path: path})
	return c.Chunk(ctx, string(raw))
}

// Validate runs the spec §4.11 invariant checks against an already-built
// chunk slice.
func (c *Chunker) Validate(chunks []mdchunk.Chunk, originalText string, strict bool) *mdchunk.ValidationResult {
	return validate.Validate(chunks, originalText, c.cfg, strict)
}

package builtin

import (
	"context"
	"log/slog"

	"github.com/wyvernzora/mdchunk/pkg/analysis"
	"github.com/wyvernzora/mdchunk/pkg/chunkconfig"
	"github.com/wyvernzora/mdchunk/pkg/document"
	clog "github.com/wyvernzora/mdchunk/pkg/log"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
)

// CodeAware implements spec §4.5: it keeps fenced code blocks and tables
// whole, packing regular text greedily around them.
type CodeAware struct{}

// NewCodeAware builds a CodeAware strategy instance.
func NewCodeAware() *CodeAware { return &CodeAware{} }

func (s *CodeAware) Name() string { return mdchunk.StrategyCodeAware }

func (s *CodeAware) Chunk(ctx context.Context, doc *document.Document, a *analysis.ContentAnalysis, cfg *chunkconfig.Config) ([]mdchunk.Chunk, error) {
	logger := clog.Logger(ctx)

	spans := buildSpans(doc, a, cfg.PreserveAtomicBlocks)
	logger.Debug("code_aware strategy partitioned document",
		slog.Int("span_count", len(spans)))

	chunks, err := packSpans(spans, cfg, mdchunk.StrategyCodeAware)
	if err != nil {
		return nil, err
	}
	logger.Debug("code_aware strategy produced chunks", slog.Int("chunk_count", len(chunks)))
	return chunks, nil
}

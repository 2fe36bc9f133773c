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

// Fallback implements spec §4.7: paragraph, then sentence, then word
// greedy packing. It never fails on non-empty input and ignores atomic
// block boundaries entirely, making it the guaranteed-success terminal
// strategy.
type Fallback struct{}

// NewFallback builds a Fallback strategy instance.
func NewFallback() *Fallback { return &Fallback{} }

func (s *Fallback) Name() string { return mdchunk.StrategyFallback }

func (s *Fallback) Chunk(ctx context.Context, doc *document.Document, a *analysis.ContentAnalysis, cfg *chunkconfig.Config) ([]mdchunk.Chunk, error) {
	logger := clog.Logger(ctx)

	if doc.LineCount() == 0 || doc.Text() == "" {
		return nil, nil
	}

	spans := paragraphSpansInRange(doc, 1, doc.LineCount())
	logger.Debug("fallback strategy partitioned document into paragraphs",
		slog.Int("paragraph_count", len(spans)))

	chunks, err := packSpans(spans, cfg, mdchunk.StrategyFallback)
	if err != nil {
		// Fallback is the guaranteed-success terminal strategy (spec §4.7,
		// §7): an oversize failure here can only come from allow_oversize
		// being false, which doesn't apply since Fallback never marks
		// spans atomic. Kept defensively in case that invariant changes.
		return nil, err
	}
	logger.Debug("fallback strategy produced chunks", slog.Int("chunk_count", len(chunks)))
	return chunks, nil
}

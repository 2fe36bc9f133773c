package chunker

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/adrg/frontmatter"
	"github.com/wyvernzora/mdchunk/pkg/analysis"
	cctx "github.com/wyvernzora/mdchunk/pkg/context"
	cfm "github.com/wyvernzora/mdchunk/pkg/frontmatter"
	fmbuiltin "github.com/wyvernzora/mdchunk/pkg/frontmatter/builtin"
	"github.com/wyvernzora/mdchunk/pkg/hierarchy"
	clog "github.com/wyvernzora/mdchunk/pkg/log"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
	"github.com/wyvernzora/mdchunk/pkg/overlap"

	"github.com/wyvernzora/mdchunk/pkg/document"
	"github.com/wyvernzora/mdchunk/pkg/enrich"
	"github.com/wyvernzora/mdchunk/pkg/strategy"
)

// run executes the full pipeline up to and including enrichment, returning
// the produced chunks alongside the document-level analysis they were built
// from. Hierarchy assembly and validation are layered on top by the
// individual entry points, since not every entry point needs them.
func (c *Chunker) run(ctx context.Context, text string) ([]mdchunk.Chunk, *analysis.ContentAnalysis, cfm.FrontMatter, error) {
	logger := clog.Logger(ctx)

	if err := ctx.Err(); err != nil {
		return nil, nil, nil, mdchunk.ErrCancelled
	}

	var fm cfm.FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader([]byte(text)), &fm)
	if err != nil {
		return nil, nil, nil, mdchunk.NewInputError("", err)
	}
	if fm == nil {
		fm = cfm.EmptyFrontMatter()
	}

	// file_path is only injected when the caller identified the document
	// (ChunkFile, or a caller that set FileInfo itself); Chunk on an
	// in-memory string with no path has nothing to inject.
	if _, ok := cctx.FileInfoFrom(ctx); ok {
		if err := cfm.ApplyTransform(ctx, fm, fmbuiltin.InjectFilePath("file_path")); err != nil {
			return nil, nil, nil, mdchunk.NewInputError("", err)
		}
	}
	if c.cfg.RequireSummary {
		if err := cfm.ApplyTransform(ctx, fm, fmbuiltin.RequireSummary()); err != nil {
			return nil, nil, nil, mdchunk.NewInputError("", err)
		}
	}

	doc, err := document.Scan(string(body))
	if err != nil {
		return nil, nil, nil, mdchunk.NewInputError("", err)
	}

	a, err := analysis.Analyze(doc)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, nil, mdchunk.ErrCancelled
	}

	chunks, strategyUsed, err := c.chunkWithFallback(ctx, doc, a)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Debug("chunker: strategy selected", slog.String("strategy", strategyUsed))

	overlap.Annotate(chunks, c.cfg)

	if err := enrich.Enrich(chunks, c.cfg, c.tokenizer); err != nil {
		return nil, nil, nil, err
	}

	for i := range chunks {
		chunks[i].Metadata.Strategy = strategyUsed
	}

	return chunks, a, fm, nil
}

// chunkWithFallback implements spec §7's strategy failure recovery policy:
// the selected strategy runs first; if it returns a non-fatal
// *mdchunk.StrategyError, Structural is tried next (unless it was already
// the selection), then Fallback, which never fails on non-empty input.
func (c *Chunker) chunkWithFallback(ctx context.Context, doc *document.Document, a *analysis.ContentAnalysis) ([]mdchunk.Chunk, string, error) {
	logger := clog.Logger(ctx)

	selected, err := strategy.Select(a, c.cfg, c.registry)
	if err != nil {
		return nil, "", err
	}

	order := []strategy.Strategy{selected}
	if selected.Name() != mdchunk.StrategyStructural {
		if s, ok := c.registry[mdchunk.StrategyStructural]; ok {
			order = append(order, s)
		}
	}
	if selected.Name() != mdchunk.StrategyFallback {
		if s, ok := c.registry[mdchunk.StrategyFallback]; ok {
			order = append(order, s)
		}
	}

	var lastErr error
	for _, s := range order {
		chunks, err := s.Chunk(ctx, doc, a, c.cfg)
		if err == nil {
			return chunks, s.Name(), nil
		}
		if _, ok := err.(*mdchunk.StrategyError); !ok {
			return nil, "", err
		}
		logger.Warn("chunker: strategy failed, falling back",
			slog.String("strategy", s.Name()), slog.Any("error", err))
		lastErr = err
	}
	return nil, "", lastErr
}

// buildHierarchy layers hierarchy assembly onto an already-enriched chunk
// slice.
func (c *Chunker) buildHierarchy(chunks []mdchunk.Chunk, docMeta map[string]any) ([]mdchunk.Chunk, string, error) {
	return hierarchy.Build(chunks, c.cfg, docMeta, c.headerGen)
}

package strategy

import (
	"context"
	"errors"

	"github.com/wyvernzora/mdchunk/pkg/analysis"
	"github.com/wyvernzora/mdchunk/pkg/chunkconfig"
	"github.com/wyvernzora/mdchunk/pkg/document"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
)

// Strategy packs a scanned document's content into chunks, guided by its
// content analysis and the active configuration. Implementations never
// mutate doc or a; they return fresh Chunk slices with StartLine/EndLine
// already in document-relative, 1-indexed coordinates.
type Strategy interface {
	// Name returns one of the mdchunk.StrategyXxx labels.
	Name() string

	// Chunk produces the ordered chunk sequence for doc. ctx carries
	// cancellation and a logger per pkg/context/pkg/log convention.
	Chunk(ctx context.Context, doc *document.Document, a *analysis.ContentAnalysis, cfg *chunkconfig.Config) ([]mdchunk.Chunk, error)
}

// Registry maps strategy name labels to their implementations.
type Registry map[string]Strategy

// Select implements spec §4.4's deterministic, first-match-wins decision
// rule:
//
//  1. An explicit strategy_override always wins.
//  2. CodeAware, if code_ratio >= code_threshold, or at least one fenced
//     block coexists with at least one table.
//  3. Structural, if header_count >= structure_threshold.
//  4. Fallback, unconditionally.
func Select(a *analysis.ContentAnalysis, cfg *chunkconfig.Config, reg Registry) (Strategy, error) {
	if cfg.StrategyOverride != chunkconfig.StrategyOverrideNone {
		name := string(cfg.StrategyOverride)
		s, ok := reg[name]
		if !ok {
			return nil, mdchunk.NewStrategyError(name, errors.New("overridden strategy is not registered"))
		}
		return s, nil
	}

	mixedCodeAndTable := len(a.FencedBlocks) >= 1 && len(a.Tables) > 0
	if a.CodeRatio >= cfg.CodeThreshold || mixedCodeAndTable {
		if s, ok := reg[mdchunk.StrategyCodeAware]; ok {
			return s, nil
		}
	}

	if a.HeaderCount >= cfg.StructureThreshold {
		if s, ok := reg[mdchunk.StrategyStructural]; ok {
			return s, nil
		}
	}

	s, ok := reg[mdchunk.StrategyFallback]
	if !ok {
		return nil, mdchunk.NewStrategyError(mdchunk.StrategyFallback, errors.New("fallback strategy is not registered"))
	}
	return s, nil
}

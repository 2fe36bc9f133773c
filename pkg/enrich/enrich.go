package enrich

import (
	"math"
	"strings"

	"github.com/wyvernzora/mdchunk/pkg/analysis"
	"github.com/wyvernzora/mdchunk/pkg/chunkconfig"
	"github.com/wyvernzora/mdchunk/pkg/document"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
	"github.com/wyvernzora/mdchunk/pkg/tokenizer"
)

// Enrich populates the spec §4.9 metadata on every chunk in place. tok is
// only consulted when cfg.SizeModel is SizeModelTiktoken; callers that never
// enable token-based sizing may pass nil.
func Enrich(chunks []mdchunk.Chunk, cfg *chunkconfig.Config, tok tokenizer.Tokenizer) error {
	total := len(chunks)
	for i := range chunks {
		c := &chunks[i]

		c.Metadata.ChunkIndex = i
		c.Metadata.TotalChunks = total
		c.Metadata.IsFirstChunk = i == 0
		c.Metadata.IsLastChunk = i == total-1
		c.Metadata.IsContinuation = i > 0 &&
			chunks[i-1].StartLine == c.StartLine &&
			chunks[i-1].EndLine == c.EndLine

		c.Metadata.WordCount = len(strings.Fields(c.Content))
		c.Metadata.LineCount = strings.Count(c.Content, "\n") + 1
		c.Metadata.CharCount = len([]rune(c.Content))

		contentType, complexity, err := classifyChunk(c.Content, c.Metadata.ContentType)
		if err != nil {
			return err
		}
		c.Metadata.ContentType = contentType

		if cfg.SizeModel == chunkconfig.SizeModelTiktoken && tok != nil {
			n, err := tok.Count(c.Content)
			if err != nil {
				return err
			}
			c.Metadata.TokenCount = n
		}

		if cfg.UseAdaptiveSizing {
			scaleFactor := cfg.AdaptiveMinScale + complexity*(cfg.AdaptiveMaxScale-cfg.AdaptiveMinScale)
			c.Metadata.ContentComplexity = complexity
			c.Metadata.SizeScaleFactor = scaleFactor
			c.Metadata.AdaptiveSize = int(math.Round(float64(baseSize(c, cfg)) * scaleFactor))
		}
	}
	return nil
}

// classifyChunk re-runs the content analyzer against a chunk's own content to
// recompute content_type per spec §4.9 ("recompute from the chunk's own
// content"), returning its complexity score for adaptive sizing.
//
// Structural's preamble/header/section labels aren't part of §4.2's
// composition-based vocabulary (they describe a chunk's place in the
// header hierarchy, not what its content is made of), so they're preserved
// as-is rather than overwritten by a content-composition guess.
func classifyChunk(content, existingType string) (string, float64, error) {
	switch existingType {
	case mdchunk.ContentTypePreamble, mdchunk.ContentTypeHeader, mdchunk.ContentTypeSection:
		doc, err := document.Scan(content)
		if err != nil {
			return existingType, 0, err
		}
		a, err := analysis.Analyze(doc)
		if err != nil {
			return existingType, 0, err
		}
		return existingType, a.ComplexityScore, nil
	}

	if strings.TrimSpace(content) == "" {
		return mdchunk.ContentTypeText, 0, nil
	}

	doc, err := document.Scan(content)
	if err != nil {
		return "", 0, err
	}
	a, err := analysis.Analyze(doc)
	if err != nil {
		return "", 0, err
	}
	return composeContentType(a), a.ComplexityScore, nil
}

// composeContentType maps a chunk's own content-ratio composition onto the
// per-chunk vocabulary {text, code, table, list, mixed} (spec §6's Metadata
// content_type set), distinct from §4.2's document-level
// {code_heavy, mixed, structural, text} classification.
func composeContentType(a *analysis.ContentAnalysis) string {
	present := 0
	dominant := mdchunk.ContentTypeText
	if a.CodeRatio >= 0.5 {
		dominant = mdchunk.ContentTypeCode
	} else if a.TableRatio >= 0.5 {
		dominant = mdchunk.ContentTypeTable
	} else if a.ListRatio >= 0.5 {
		dominant = mdchunk.ContentTypeList
	}

	if a.CodeRatio >= 0.1 {
		present++
	}
	if a.TableRatio >= 0.1 {
		present++
	}
	if a.ListRatio >= 0.1 {
		present++
	}
	if present >= 2 {
		return mdchunk.ContentTypeMixed
	}
	return dominant
}

// baseSize is the unit adaptive_size scales: char count, or token count
// when the size model is tiktoken-based.
func baseSize(c *mdchunk.Chunk, cfg *chunkconfig.Config) int {
	if cfg.SizeModel == chunkconfig.SizeModelTiktoken {
		return c.Metadata.TokenCount
	}
	return c.Metadata.CharCount
}

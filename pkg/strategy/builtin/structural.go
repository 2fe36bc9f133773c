package builtin

import (
	"context"
	"log/slog"
	"strings"

	"github.com/wyvernzora/mdchunk/pkg/analysis"
	"github.com/wyvernzora/mdchunk/pkg/chunkconfig"
	"github.com/wyvernzora/mdchunk/pkg/document"
	clog "github.com/wyvernzora/mdchunk/pkg/log"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
)

// smallHeaderOnlyThreshold is the "small threshold" from spec §4.6 step 6:
// header-only chunks below this size merge with their following body
// before the general min_chunk_size merge pass runs.
const smallHeaderOnlyThreshold = 150

// Structural implements spec §4.6: content is grouped under its enclosing
// header, exposing header_path/header_level/sub_headers, with small
// adjacent sections merged back together.
//
// The header-stack popping logic (pop all entries with level >= the new
// header's level, then push) is adapted from the teacher's
// parentForLevel/fold pair in pkg/parser/builtin/default.go, generalized
// from building a nested section.Section tree to computing a flat
// header_path string per header.
type Structural struct{}

// NewStructural builds a Structural strategy instance.
func NewStructural() *Structural { return &Structural{} }

func (s *Structural) Name() string { return mdchunk.StrategyStructural }

func (s *Structural) Chunk(ctx context.Context, doc *document.Document, a *analysis.ContentAnalysis, cfg *chunkconfig.Config) ([]mdchunk.Chunk, error) {
	logger := clog.Logger(ctx)

	var chunks []mdchunk.Chunk

	if cfg.ExtractPreamble {
		if pre := preambleChunk(doc, a); pre != nil {
			chunks = append(chunks, *pre)
		}
	}

	headers := a.Headers
	paths := headerPaths(headers)

	for i, h := range headers {
		sectionStart := h.StartLine
		sectionEnd := doc.LineCount()
		if i+1 < len(headers) {
			sectionEnd = headers[i+1].StartLine - 1
		}

		spans := buildSpansInRange(doc, a, cfg.PreserveAtomicBlocks, sectionStart, sectionEnd)
		if len(spans) == 0 {
			continue
		}

		secChunks, err := packSpans(spans, cfg, mdchunk.StrategyStructural)
		if err != nil {
			return nil, err
		}
		for j := range secChunks {
			secChunks[j].Metadata.HeaderPath = paths[i]
			secChunks[j].Metadata.HeaderLevel = h.Level
			secChunks[j].Metadata.ContentType = mdchunk.ContentTypeSection
			if j == 0 {
				secChunks[j].Metadata.ContentType = mdchunk.ContentTypeHeader
			}
		}
		chunks = append(chunks, secChunks...)
	}

	merged := mergeSmallSections(chunks, cfg)
	logger.Debug("structural strategy produced chunks",
		slog.Int("header_count", len(headers)),
		slog.Int("chunk_count", len(merged)))
	return merged, nil
}

func preambleChunk(doc *document.Document, a *analysis.ContentAnalysis) *mdchunk.Chunk {
	if len(a.Headers) == 0 || a.Headers[0].StartLine <= 1 {
		return nil
	}
	content := doc.Slice(1, a.Headers[0].StartLine-1)
	if strings.TrimSpace(content) == "" {
		return nil
	}
	return &mdchunk.Chunk{
		Content:   content,
		StartLine: 1,
		EndLine:   a.Headers[0].StartLine - 1,
		Size:      runeLen(content),
		Metadata: mdchunk.Metadata{
			ContentType: mdchunk.ContentTypePreamble,
			Strategy:    mdchunk.StrategyStructural,
			StartLine:   1,
			EndLine:     a.Headers[0].StartLine - 1,
			HeaderPath:  mdchunk.PreambleHeaderPath,
		},
	}
}

// headerPaths computes each header's header_path via the stack-popping
// rule of spec §4.6 steps 1-2.
func headerPaths(headers []analysis.Header) []string {
	type frame struct {
		level int
		text  string
	}
	var stack []frame
	paths := make([]string, len(headers))

	for i, h := range headers {
		for len(stack) > 0 && stack[len(stack)-1].level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, frame{level: h.Level, text: h.Text})

		parts := make([]string, len(stack))
		for k, f := range stack {
			parts[k] = f.text
		}
		paths[i] = "/" + strings.Join(parts, "/")
	}
	return paths
}

// mergeSmallSections applies spec §4.6 step 6: header-only chunks below
// smallHeaderOnlyThreshold merge with their following body first, then
// small neighbors within the same header family merge leftward, never
// crossing a preamble boundary.
func mergeSmallSections(chunks []mdchunk.Chunk, cfg *chunkconfig.Config) []mdchunk.Chunk {
	chunks = mergeHeaderOnlyChunks(chunks, cfg)

	var out []mdchunk.Chunk
	for _, c := range chunks {
		if len(out) == 0 {
			out = append(out, c)
			continue
		}
		prev := &out[len(out)-1]
		if canMerge(*prev, c, cfg) {
			*prev = mergeChunkPair(*prev, c)
			continue
		}
		out = append(out, c)
	}
	return out
}

func mergeHeaderOnlyChunks(chunks []mdchunk.Chunk, cfg *chunkconfig.Config) []mdchunk.Chunk {
	var out []mdchunk.Chunk
	for i := 0; i < len(chunks); i++ {
		c := chunks[i]
		if c.Metadata.ContentType == mdchunk.ContentTypeHeader && c.Size < smallHeaderOnlyThreshold &&
			i+1 < len(chunks) && !isPreamble(chunks[i+1]) &&
			c.Size+chunks[i+1].Size <= cfg.MaxChunkSize {
			merged := mergeChunkPair(c, chunks[i+1])
			out = append(out, merged)
			i++
			continue
		}
		out = append(out, c)
	}
	return out
}

func canMerge(prev, next mdchunk.Chunk, cfg *chunkconfig.Config) bool {
	if isPreamble(prev) || isPreamble(next) {
		return false
	}
	if prev.Size+next.Size > cfg.MaxChunkSize {
		return false
	}
	if prev.Size >= cfg.MinChunkSize && next.Size >= cfg.MinChunkSize {
		return false
	}
	return sameSectionFamily(prev.Metadata.HeaderPath, next.Metadata.HeaderPath)
}

func isPreamble(c mdchunk.Chunk) bool {
	return c.Metadata.HeaderPath == mdchunk.PreambleHeaderPath
}

// sameSectionFamily treats two header_paths as mergeable neighbors when one
// is a prefix of the other (ancestor/descendant sections).
func sameSectionFamily(a, b string) bool {
	if a == "" || b == "" {
		return true
	}
	return strings.HasPrefix(b, a) || strings.HasPrefix(a, b)
}

func mergeChunkPair(a, b mdchunk.Chunk) mdchunk.Chunk {
	content := a.Content + "\n" + b.Content
	a.Content = content
	a.EndLine = b.EndLine
	a.Size = runeLen(content)
	a.Metadata.EndLine = b.EndLine
	if a.Metadata.ContentType == mdchunk.ContentTypeHeader {
		a.Metadata.ContentType = mdchunk.ContentTypeSection
	}
	if b.Metadata.HeaderPath != "" && b.Metadata.HeaderPath != a.Metadata.HeaderPath {
		subHeader := strings.TrimPrefix(b.Metadata.HeaderPath, a.Metadata.HeaderPath+"/")
		if subHeader != "" {
			a.Metadata.SubHeaders = append(a.Metadata.SubHeaders, subHeader)
		}
	}
	a.Metadata.SubHeaders = append(a.Metadata.SubHeaders, b.Metadata.SubHeaders...)
	return a
}

package builtin

import (
	"strings"

	"github.com/wyvernzora/mdchunk/pkg/chunkconfig"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
	"github.com/wyvernzora/mdchunk/pkg/textutil"
)

// packSpans implements spec §4.5 step 2-3's greedy packing loop: spans are
// walked left to right and accumulated into a growing chunk, flushed
// whenever the next span would overflow max_chunk_size. Oversize atomic
// spans and oversize text spans are handled as their own cases before
// falling into the general accumulation path.
func packSpans(spans []span, cfg *chunkconfig.Config, strategyName string) ([]mdchunk.Chunk, error) {
	var chunks []mdchunk.Chunk
	var cur []span
	curSize := 0

	flush := func() {
		if len(cur) == 0 {
			return
		}
		chunks = append(chunks, buildChunk(cur, strategyName))
		cur = nil
		curSize = 0
	}

	appendSpan := func(sp span) {
		spSize := runeLen(sp.content)
		if curSize+spSize > cfg.MaxChunkSize && len(cur) > 0 {
			flush()
		}
		cur = append(cur, sp)
		curSize += spSize
	}

	for _, sp := range spans {
		if sp.content == "" {
			continue
		}
		spSize := runeLen(sp.content)

		if sp.atomic && spSize > cfg.MaxChunkSize {
			flush()
			if !cfg.AllowOversize {
				return nil, mdchunk.NewOversizeError(sp.startLine, sp.endLine, spSize, cfg.MaxChunkSize, sp.atomicReason)
			}
			chunks = append(chunks, buildOversizeChunk(sp, strategyName))
			continue
		}

		if sp.atomic || spSize <= cfg.MaxChunkSize {
			appendSpan(sp)
			continue
		}

		// Oversize text span: paragraph -> sentence -> word splitting
		// (spec §4.5 step 2 / §4.7).
		for _, piece := range splitOversizedText(sp, cfg) {
			appendSpan(piece)
		}
	}
	flush()
	return chunks, nil
}

func runeLen(s string) int { return len([]rune(s)) }

func buildChunk(spans []span, strategyName string) mdchunk.Chunk {
	var sb strings.Builder
	for i, sp := range spans {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(sp.content)
	}
	content := sb.String()
	startLine, endLine := spans[0].startLine, spans[len(spans)-1].endLine

	return mdchunk.Chunk{
		Content:   content,
		StartLine: startLine,
		EndLine:   endLine,
		Size:      runeLen(content),
		Metadata: mdchunk.Metadata{
			ContentType: classifySpans(spans),
			Strategy:    strategyName,
			StartLine:   startLine,
			EndLine:     endLine,
		},
	}
}

func buildOversizeChunk(sp span, strategyName string) mdchunk.Chunk {
	return mdchunk.Chunk{
		Content:   sp.content,
		StartLine: sp.startLine,
		EndLine:   sp.endLine,
		Size:      runeLen(sp.content),
		Metadata: mdchunk.Metadata{
			ContentType:    kindToContentType(sp.kind),
			Strategy:       strategyName,
			StartLine:      sp.startLine,
			EndLine:        sp.endLine,
			AllowOversize:  true,
			OversizeReason: sp.atomicReason,
		},
	}
}

func classifySpans(spans []span) string {
	var hasCode, hasTable, hasText bool
	for _, sp := range spans {
		switch sp.kind {
		case "code":
			hasCode = true
		case "table":
			hasTable = true
		default:
			hasText = true
		}
	}
	switch {
	case hasCode && !hasTable && !hasText:
		return mdchunk.ContentTypeCode
	case hasTable && !hasCode && !hasText:
		return mdchunk.ContentTypeTable
	case !hasCode && !hasTable:
		return mdchunk.ContentTypeText
	default:
		return mdchunk.ContentTypeMixed
	}
}

func kindToContentType(kind string) string {
	switch kind {
	case "code":
		return mdchunk.ContentTypeCode
	case "table":
		return mdchunk.ContentTypeTable
	default:
		return mdchunk.ContentTypeText
	}
}

// splitOversizedText implements spec §4.5 step 2's text-span overflow
// handling: paragraph boundaries first, then sentence boundaries, then word
// boundaries as a last resort. Fragments produced from splitting a single
// paragraph inherit that paragraph's original line span; sub-paragraph
// splitting can't recover exact per-fragment line numbers since a sentence
// or word run rarely aligns with a physical line boundary.
func splitOversizedText(sp span, cfg *chunkconfig.Config) []span {
	paragraphs := textutil.SplitParagraphs(sp.content)
	if len(paragraphs) == 0 {
		return nil
	}

	var out []span
	for _, p := range paragraphs {
		if runeLen(p) <= cfg.MaxChunkSize {
			out = append(out, span{content: p, startLine: sp.startLine, endLine: sp.endLine, kind: "text"})
			continue
		}
		out = append(out, splitBySentence(p, sp, cfg)...)
	}
	return out
}

// splitBySentence packs sentences up to target_chunk_size, preferring the
// split point nearest that target (spec §4.5 step 2).
func splitBySentence(p string, sp span, cfg *chunkconfig.Config) []span {
	sentences := textutil.SplitSentences(p)

	var out []span
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen == 0 {
			return
		}
		out = append(out, span{content: cur.String(), startLine: sp.startLine, endLine: sp.endLine, kind: "text"})
		cur.Reset()
		curLen = 0
	}

	for _, sent := range sentences {
		sentLen := runeLen(sent)
		if sentLen > cfg.MaxChunkSize {
			flush()
			for _, w := range splitByWord(sent, cfg) {
				out = append(out, span{content: w, startLine: sp.startLine, endLine: sp.endLine, kind: "text"})
			}
			continue
		}
		if curLen+sentLen > cfg.TargetChunkSize && curLen > 0 {
			flush()
		}
		cur.WriteString(sent)
		curLen += sentLen
	}
	flush()
	return out
}

// splitByWord is the last-resort split for a single sentence still
// exceeding max_chunk_size.
func splitByWord(s string, cfg *chunkconfig.Config) []string {
	words := textutil.SplitWords(s)

	var out []string
	var cur strings.Builder
	curLen := 0

	for _, w := range words {
		wLen := runeLen(w) + 1
		if curLen+wLen > cfg.MaxChunkSize && curLen > 0 {
			out = append(out, cur.String())
			cur.Reset()
			curLen = 0
		}
		if curLen > 0 {
			cur.WriteString(" ")
		}
		cur.WriteString(w)
		curLen += wLen
	}
	if curLen > 0 {
		out = append(out, cur.String())
	}
	return out
}

package builtin

import (
	"sort"

	"github.com/wyvernzora/mdchunk/pkg/analysis"
	"github.com/wyvernzora/mdchunk/pkg/document"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
	"github.com/wyvernzora/mdchunk/pkg/textutil"
)

// span is a line-bounded piece of a document: either an atomic block that
// must never be split (a fenced code block or a table) or a packable text
// run.
type span struct {
	content      string
	startLine    int
	endLine      int
	atomic       bool
	atomicReason string
	kind         string // "code", "table", "text"
}

type atomicRange struct {
	start, end int
	reason     string
	kind       string
}

// buildAtomicRanges collects the document's fenced blocks and tables as a
// single, start-line-ordered sequence of non-splittable ranges.
func buildAtomicRanges(a *analysis.ContentAnalysis) []atomicRange {
	var ranges []atomicRange
	for _, fb := range a.FencedBlocks {
		ranges = append(ranges, atomicRange{fb.StartLine, fb.EndLine, mdchunk.OversizeReasonCodeBlock, "code"})
	}
	for _, tb := range a.Tables {
		ranges = append(ranges, atomicRange{tb.StartLine, tb.EndLine, mdchunk.OversizeReasonTable, "table"})
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].start < ranges[j].start })
	return ranges
}

// buildSpans partitions the whole document into atomic and text spans
// (spec §4.5 step 1).
func buildSpans(doc *document.Document, a *analysis.ContentAnalysis, preserveAtomic bool) []span {
	return buildSpansInRange(doc, a, preserveAtomic, 1, doc.LineCount())
}

// buildSpansInRange is buildSpans restricted to [rangeStart, rangeEnd],
// used by the Structural strategy to pack one section at a time.
func buildSpansInRange(doc *document.Document, a *analysis.ContentAnalysis, preserveAtomic bool, rangeStart, rangeEnd int) []span {
	if rangeStart > rangeEnd {
		return nil
	}
	if !preserveAtomic {
		return paragraphSpansInRange(doc, rangeStart, rangeEnd)
	}

	var spans []span
	cursor := rangeStart
	for _, r := range buildAtomicRanges(a) {
		if r.end < rangeStart || r.start > rangeEnd {
			continue
		}
		start, end := max(r.start, rangeStart), min(r.end, rangeEnd)
		if start > cursor {
			spans = append(spans, paragraphSpansInRange(doc, cursor, start-1)...)
		}
		spans = append(spans, span{
			content:      doc.Slice(start, end),
			startLine:    start,
			endLine:      end,
			atomic:       true,
			atomicReason: r.reason,
			kind:         r.kind,
		})
		cursor = end + 1
	}
	if cursor <= rangeEnd {
		spans = append(spans, paragraphSpansInRange(doc, cursor, rangeEnd)...)
	}
	return spans
}

// paragraphSpansInRange groups the lines in [start, end] into blank-line
// delimited paragraph spans, each carrying its real line bounds.
func paragraphSpansInRange(doc *document.Document, start, end int) []span {
	var spans []span
	i := start
	for i <= end {
		if textutil.IsBlank(doc.Line(i)) {
			i++
			continue
		}
		paraStart := i
		for i <= end && !textutil.IsBlank(doc.Line(i)) {
			i++
		}
		paraEnd := i - 1
		spans = append(spans, span{
			content:   doc.Slice(paraStart, paraEnd),
			startLine: paraStart,
			endLine:   paraEnd,
			kind:      "text",
		})
	}
	return spans
}

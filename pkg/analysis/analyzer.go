package analysis

import (
	"bytes"
	"strings"

	"github.com/wyvernzora/mdchunk/pkg/document"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// md is the shared goldmark instance: GFM tables and task lists are the
// only extensions needed, and both already ship inside the required
// yuin/goldmark module.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.TaskList),
)

// Analyze runs the single-pass content analyzer over doc (spec §4.2).
func Analyze(doc *document.Document) (*ContentAnalysis, error) {
	src := []byte(doc.Text())

	root := md.Parser().Parse(text.NewReader(src))
	if root == nil {
		return nil, mdchunk.NewAnalyzerError(1, "goldmark returned an empty document root")
	}

	a := &ContentAnalysis{
		TotalChars: len([]rune(doc.Text())),
		TotalLines: doc.LineCount(),
		TotalWords: len(strings.Fields(doc.Text())),
	}

	var walkErr error
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			collectHeading(a, doc, node, src)

		case *ast.FencedCodeBlock:
			fb, err := collectFencedBlock(doc, node, src)
			if err != nil {
				walkErr = err
				return ast.WalkStop, err
			}
			a.FencedBlocks = append(a.FencedBlocks, fb)
			a.CodeChars += len([]rune(fb.RawContent))
			return ast.WalkSkipChildren, nil

		case *east.Table:
			tbl := collectTable(doc, node, src)
			a.Tables = append(a.Tables, tbl)
			a.TableChars += len([]rune(tbl.RawContent))
			return ast.WalkSkipChildren, nil

		case *ast.List:
			// Only account for top-level lists; nested lists are folded
			// into MaxDepth by collectList's own recursive walk.
			if _, parentIsList := n.Parent().(*ast.ListItem); parentIsList {
				return ast.WalkContinue, nil
			}
			lb := collectList(doc, node, src)
			a.Lists = append(a.Lists, lb)
			a.ListChars += len([]rune(lb.RawContent))
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	a.TextChars = a.TotalChars - a.CodeChars - a.TableChars - a.ListChars
	if a.TextChars < 0 {
		a.TextChars = 0
	}

	a.CodeRatio = ratio(a.CodeChars, a.TotalChars)
	a.TableRatio = ratio(a.TableChars, a.TotalChars)
	a.ListRatio = ratio(a.ListChars, a.TotalChars)
	a.TextRatio = ratio(a.TextChars, a.TotalChars)

	a.HeaderCount = len(a.Headers)
	for _, h := range a.Headers {
		if h.Level > a.MaxHeaderDepth {
			a.MaxHeaderDepth = h.Level
		}
	}
	for _, l := range a.Lists {
		if l.MaxDepth > a.NestedListDepth {
			a.NestedListDepth = l.MaxDepth
		}
	}

	a.ComplexityScore = complexityScore(a)
	a.Preamble = computePreamble(doc, a.Headers)

	return a, nil
}

func collectHeading(a *ContentAnalysis, doc *document.Document, h *ast.Heading, src []byte) {
	startLine := doc.LineCount()
	if lines := h.Lines(); lines.Len() > 0 {
		startLine = doc.OffsetToLine(lines.At(0).Start)
	}
	a.Headers = append(a.Headers, Header{
		Level:     h.Level,
		Text:      inlineText(h, src),
		StartLine: startLine,
	})
}

func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			continue
		}
		buf.WriteString(inlineText(c, src))
	}
	return buf.String()
}

func lineSpan(doc *document.Document, n ast.Node) (start, end int, ok bool) {
	minStart, maxStop := -1, -1
	ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		lw, has := node.(interface{ Lines() *text.Segments })
		if !has {
			return ast.WalkContinue, nil
		}
		lines := lw.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if minStart == -1 || seg.Start < minStart {
				minStart = seg.Start
			}
			if seg.Stop > maxStop {
				maxStop = seg.Stop
			}
		}
		return ast.WalkContinue, nil
	})
	if minStart == -1 {
		return 0, 0, false
	}
	return doc.OffsetToLine(minStart), doc.OffsetToLine(maxStop - 1), true
}

func collectFencedBlock(doc *document.Document, n *ast.FencedCodeBlock, src []byte) (FencedBlock, error) {
	startLine, endLine, ok := lineSpan(doc, n)
	if !ok {
		return FencedBlock{}, mdchunk.NewAnalyzerError(1, "fenced code block has no line content")
	}

	lang := ""
	if l := n.Language(src); l != nil {
		lang = string(l)
	}

	fenceLen := fenceLength(doc.Line(startLine))

	return FencedBlock{
		StartLine:   startLine,
		EndLine:     endLine,
		Language:    lang,
		RawContent:  doc.Slice(startLine, endLine),
		FenceLength: fenceLen,
	}, nil
}

// fenceLength counts the run of backticks or tildes that open a fence line,
// ignoring up to 3 leading spaces of indentation (spec §4.2 rule 1).
func fenceLength(line string) int {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return 0
	}
	marker := trimmed[0]
	if marker != '`' && marker != '~' {
		return 0
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == marker {
		n++
	}
	return n
}

func collectTable(doc *document.Document, n *east.Table, src []byte) Table {
	startLine, endLine, ok := lineSpan(doc, n)
	if !ok {
		startLine, endLine = 1, 1
	}

	columnCount := len(n.Alignments)
	hasHeader := false
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if _, isHeader := c.(*east.TableHeader); isHeader {
			hasHeader = true
			break
		}
	}

	return Table{
		StartLine:   startLine,
		EndLine:     endLine,
		ColumnCount: columnCount,
		HasHeader:   hasHeader,
		RawContent:  doc.Slice(startLine, endLine),
	}
}

func collectList(doc *document.Document, n *ast.List, src []byte) ListBlock {
	startLine, endLine, ok := lineSpan(doc, n)
	if !ok {
		startLine, endLine = 1, 1
	}

	kind := ListKindUnordered
	if isOrdered(n) {
		kind = ListKindOrdered
	}
	if containsTaskItem(n) {
		kind = ListKindTask
	}

	return ListBlock{
		StartLine: startLine,
		EndLine:   endLine,
		Kind:      kind,
		MaxDepth:  listDepth(n, 1),
	}
}

func isOrdered(n *ast.List) bool {
	return n.Marker == '.' || n.Marker == ')'
}

func containsTaskItem(n ast.Node) bool {
	found := false
	ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := node.(*east.TaskCheckBox); ok {
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}

func listDepth(n ast.Node, depth int) int {
	max := depth
	ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || node == n {
			return ast.WalkContinue, nil
		}
		if child, ok := node.(*ast.List); ok {
			d := listDepth(child, depth+1)
			if d > max {
				max = d
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return max
}

func computePreamble(doc *document.Document, headers []Header) string {
	if len(headers) == 0 {
		return ""
	}
	first := headers[0]
	if first.StartLine <= 1 {
		return ""
	}
	return doc.Slice(1, first.StartLine-1)
}

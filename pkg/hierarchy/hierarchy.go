package hierarchy

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/sanity-io/litter"
	"github.com/wyvernzora/mdchunk/pkg/chunkconfig"
	"github.com/wyvernzora/mdchunk/pkg/frontmatter"
	fmbuiltin "github.com/wyvernzora/mdchunk/pkg/frontmatter/builtin"
	"github.com/wyvernzora/mdchunk/pkg/header"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
)

// lit matches pkg/header/builtin's rendering convention: compact,
// deterministic, no package-qualified type names.
var lit = litter.Options{
	Compact:           true,
	StripPackageNames: true,
	HidePrivateFields: true,
}

// Build assigns chunk_id and populates the parent/children/sibling/level
// links across chunks (spec §4.10). When cfg.IncludeDocumentSummary is set,
// a synthetic root chunk derived from docMeta is prepended and returned as
// the hierarchy's root. chunks is not mutated; Build returns a new slice.
//
// headerGen renders the synthetic root's body from the surfaced frontmatter.
// A nil headerGen falls back to documentSummaryHeader, which unlike the
// header/builtin generators never errors on non-scalar frontmatter values.
func Build(chunks []mdchunk.Chunk, cfg *chunkconfig.Config, docMeta map[string]any, headerGen header.ChunkHeader) (out []mdchunk.Chunk, rootID string, err error) {
	out = make([]mdchunk.Chunk, len(chunks))
	copy(out, chunks)

	rootIdx := -1
	if cfg.IncludeDocumentSummary {
		root, err := synthesizeRoot(docMeta, headerGen)
		if err != nil {
			return nil, "", err
		}
		out = append([]mdchunk.Chunk{root}, out...)
		rootIdx = 0
	}

	for i := range out {
		out[i].Metadata.ChunkID = chunkID(i, &out[i])
	}
	if rootIdx == 0 {
		rootID = out[0].Metadata.ChunkID
	}

	parent := make([]int, len(out))
	for i := range parent {
		parent[i] = -1
	}
	for i := range out {
		if i == rootIdx {
			continue
		}
		p := findParent(out, i, rootIdx)
		parent[i] = p
	}

	children := make([][]int, len(out))
	for i, p := range parent {
		if p >= 0 {
			children[p] = append(children[p], i)
		}
	}
	for p := range children {
		sort.Slice(children[p], func(a, b int) bool {
			return out[children[p][a]].StartLine < out[children[p][b]].StartLine
		})
	}

	for i := range out {
		if parent[i] >= 0 {
			out[i].Metadata.ParentID = out[parent[i]].Metadata.ChunkID
		}
		kids := children[i]
		ids := make([]string, len(kids))
		for j, k := range kids {
			ids[j] = out[k].Metadata.ChunkID
		}
		out[i].Metadata.ChildrenIDs = ids
		out[i].Metadata.IsLeaf = len(kids) == 0

		for j, k := range kids {
			if j > 0 {
				out[k].Metadata.PrevSiblingID = out[kids[j-1]].Metadata.ChunkID
			}
			if j < len(kids)-1 {
				out[k].Metadata.NextSiblingID = out[kids[j+1]].Metadata.ChunkID
			}
		}
	}

	if err := checkAcyclic(parent); err != nil {
		return nil, "", err
	}

	levels, err := assignLevels(children, parent, rootIdx)
	if err != nil {
		return nil, "", err
	}
	for i := range out {
		out[i].Metadata.HierarchyLevel = levels[i]
	}
	if rootIdx == 0 {
		out[0].Metadata.IsRoot = true
	}

	return out, rootID, nil
}

// findParent locates the nearest preceding chunk whose header_path is a
// strict prefix of c's. Falls back to the synthetic root (if any), else -1.
func findParent(chunks []mdchunk.Chunk, i, rootIdx int) int {
	path := chunks[i].Metadata.HeaderPath
	if path != "" {
		for j := i - 1; j > rootIdx; j-- {
			candidate := chunks[j].Metadata.HeaderPath
			if candidate == "" {
				continue
			}
			if strings.HasPrefix(path, candidate+"/") {
				return j
			}
		}
	}
	if rootIdx >= 0 {
		return rootIdx
	}
	return -1
}

// assignLevels runs a BFS from the root (or from every unparented chunk, in
// forests without a synthetic root) to compute hierarchy_level.
func assignLevels(children [][]int, parent []int, rootIdx int) ([]int, error) {
	levels := make([]int, len(parent))
	for i := range levels {
		levels[i] = -1
	}

	var queue []int
	if rootIdx >= 0 {
		levels[rootIdx] = 0
		queue = append(queue, rootIdx)
	} else {
		for i, p := range parent {
			if p < 0 {
				levels[i] = 0
				queue = append(queue, i)
			}
		}
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, c := range children[n] {
			levels[c] = levels[n] + 1
			queue = append(queue, c)
		}
	}

	for i, lvl := range levels {
		if lvl < 0 {
			return nil, fmt.Errorf("hierarchy: chunk %d unreachable from any root during level assignment", i)
		}
	}
	return levels, nil
}

// checkAcyclic walks each chunk's parent chain to the root, failing if any
// chain revisits a node (spec §4.10's no-cycles invariant). findParent only
// ever points strictly backward in index order so this can't happen in
// practice, but a corrupt parent slice shouldn't silently infinite-loop a
// caller that walks it.
func checkAcyclic(parent []int) error {
	for i := range parent {
		visited := map[int]bool{}
		cur := i
		for {
			if visited[cur] {
				return fmt.Errorf("hierarchy: cycle detected starting at chunk %d", i)
			}
			visited[cur] = true
			p := parent[cur]
			if p < 0 {
				break
			}
			cur = p
		}
	}
	return nil
}

// chunkID derives an 8-character deterministic identifier from a chunk's
// position and content using a truncated sha256 digest.
func chunkID(index int, c *mdchunk.Chunk) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%d:%d:%d:%s", index, c.StartLine, c.EndLine, c.Content)))
	return hex.EncodeToString(h[:])[:8]
}

// documentSummaryHeader is a pkg/header.ChunkHeader that renders every
// surfaced frontmatter field as a key-value line. Unlike
// builtin.KeyValueHeader it has no fixed FieldSpec allowlist and never
// errors on non-scalar values (nested maps, tag lists) — exactly the
// looser contract the document-summary chunk needs, since frontmatter
// shape varies per document. Scalars are written plainly; everything else
// falls back to the builtin package's litter-based compact rendering.
func documentSummaryHeader() header.ChunkHeader {
	return func(_ context.Context, fm frontmatter.FrontMatterView) (string, error) {
		keys := fm.Keys()
		sort.Strings(keys)

		var b strings.Builder
		for _, k := range keys {
			v, ok := fm.Get(k)
			if !ok {
				continue
			}
			b.WriteString(k)
			b.WriteString(": ")
			if s, ok := v.(string); ok {
				b.WriteString(s)
			} else {
				b.WriteString(lit.Sdump(v))
			}
			b.WriteByte('\n')
		}
		return b.String(), nil
	}
}

// synthesizeRoot renders the document-summary chunk from surfaced
// frontmatter. A missing or blank "title" field falls back to "Untitled
// document" via fmbuiltin.MergeFrontMatter, rather than a hand-rolled
// default check. headerGen renders the body; nil uses documentSummaryHeader.
func synthesizeRoot(docMeta map[string]any, headerGen header.ChunkHeader) (mdchunk.Chunk, error) {
	fm := frontmatter.FrontMatter(docMeta).Clone()
	if t, ok := fm["title"]; ok {
		if s, ok := t.(string); !ok || strings.TrimSpace(s) == "" {
			delete(fm, "title")
		}
	}
	defaults := fmbuiltin.MergeFrontMatter(frontmatter.FrontMatter{"title": "Untitled document"})
	if err := frontmatter.ApplyTransform(context.Background(), fm, defaults); err != nil {
		return mdchunk.Chunk{}, err
	}
	title, _ := fm["title"].(string)

	if headerGen == nil {
		headerGen = documentSummaryHeader()
	}
	body, err := headerGen(context.Background(), fm.View())
	if err != nil {
		return mdchunk.Chunk{}, fmt.Errorf("hierarchy: document-summary header: %w", err)
	}

	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(body)
	content := strings.TrimRight(b.String(), "\n") + "\n"

	return mdchunk.Chunk{
		Content:   content,
		StartLine: 0,
		EndLine:   0,
		Size:      len([]rune(content)),
		Metadata: mdchunk.Metadata{
			ContentType: mdchunk.ContentTypePreamble,
			HeaderPath:  "/",
			IsRoot:      true,
		},
	}, nil
}

package mdchunk

// Chunk is the principal output entity: a verbatim slice of the input
// document plus recognized metadata.
type Chunk struct {
	// Content is the verbatim slice of the input, possibly whitespace
	// trimmed at its edges.
	Content string `json:"content"`

	// StartLine and EndLine are inclusive, 1-indexed line bounds in the
	// original document.
	StartLine int `json:"start_line"`
	EndLine   int `json:"end_line"`

	// Size is len(Content) in characters (runes).
	Size int `json:"size"`

	// Metadata holds the recognized keys from spec §6.
	Metadata Metadata `json:"metadata"`
}

// Metadata is the recognized key set attached to every chunk. Fields that
// don't apply to a given chunk are left at their zero value; bool/int zero
// values are never ambiguous with "absent" for the keys this model defines
// because every producing stage sets them explicitly.
type Metadata struct {
	// Core
	ChunkIndex     int    `json:"chunk_index"`
	TotalChunks    int    `json:"total_chunks"`
	IsFirstChunk   bool   `json:"is_first_chunk"`
	IsLastChunk    bool   `json:"is_last_chunk"`
	IsContinuation bool   `json:"is_continuation"`
	ContentType    string `json:"content_type"` // text, code, table, list, mixed, header, preamble, section
	Strategy       string `json:"strategy"`     // code_aware, structural, fallback
	StartLine      int    `json:"start_line"`
	EndLine        int    `json:"end_line"`

	// Structural
	HeaderPath  string   `json:"header_path"`
	HeaderLevel int      `json:"header_level"` // 0 means absent
	SubHeaders  []string `json:"sub_headers,omitempty"`

	// Oversize
	AllowOversize  bool   `json:"allow_oversize,omitempty"`
	OversizeReason string `json:"oversize_reason,omitempty"` // code_block_integrity, table_integrity, section_integrity

	// Overlap
	PreviousContent string `json:"previous_content,omitempty"`
	NextContent     string `json:"next_content,omitempty"`
	OverlapSize     int    `json:"overlap_size,omitempty"`

	// Hierarchy
	ChunkID        string   `json:"chunk_id,omitempty"`
	ParentID       string   `json:"parent_id,omitempty"`
	ChildrenIDs    []string `json:"children_ids,omitempty"`
	PrevSiblingID  string   `json:"prev_sibling_id,omitempty"`
	NextSiblingID  string   `json:"next_sibling_id,omitempty"`
	HierarchyLevel int      `json:"hierarchy_level,omitempty"`
	IsLeaf         bool     `json:"is_leaf,omitempty"`
	IsRoot         bool     `json:"is_root,omitempty"`

	// Adaptive
	AdaptiveSize       int     `json:"adaptive_size,omitempty"`
	ContentComplexity  float64 `json:"content_complexity,omitempty"`
	SizeScaleFactor    float64 `json:"size_scale_factor,omitempty"`

	// Enrichment (SPEC_FULL.md supplement 3 / ambient statistics)
	WordCount  int `json:"word_count"`
	LineCount  int `json:"line_count"`
	CharCount  int `json:"char_count"`
	TokenCount int `json:"token_count,omitempty"` // only set when a tiktoken-based profile is active
}

// Content type labels recognized across the pipeline.
const (
	ContentTypeText      = "text"
	ContentTypeCode      = "code"
	ContentTypeTable     = "table"
	ContentTypeList      = "list"
	ContentTypeMixed     = "mixed"
	ContentTypeHeader    = "header"
	ContentTypePreamble  = "preamble"
	ContentTypeSection   = "section"
)

// Strategy name labels recognized across the pipeline.
const (
	StrategyCodeAware  = "code_aware"
	StrategyStructural = "structural"
	StrategyFallback   = "fallback"
)

// Oversize reason labels.
const (
	OversizeReasonCodeBlock = "code_block_integrity"
	OversizeReasonTable     = "table_integrity"
	OversizeReasonSection   = "section_integrity"
)

// PreambleHeaderPath is the fixed header_path assigned to preamble chunks.
const PreambleHeaderPath = "/__preamble__"

// ChunkingResult is the output of a full chunk_with_metrics invocation.
type ChunkingResult struct {
	Chunks          []Chunk `json:"chunks"`
	StrategyUsed    string  `json:"strategy_used"`
	ProcessingTime  float64 `json:"processing_time"` // seconds
	TotalChars      int     `json:"total_chars"`
	TotalLines      int     `json:"total_lines"`
	ContentType     string  `json:"content_type"`
	ComplexityScore float64 `json:"complexity_score"`

	// Warnings collects lenient-mode validation findings (spec §4.11).
	Warnings []string `json:"warnings,omitempty"`

	// DocumentMeta carries frontmatter surfaced ahead of line-scanning
	// (SPEC_FULL.md §4 supplement 1). Nil when the input had no frontmatter.
	DocumentMeta map[string]any `json:"document_meta,omitempty"`
}

// HierarchicalChunkingResult is chunk_hierarchical's output: the same
// ChunkingResult plus the hierarchy-builder-populated chunk metadata and,
// when requested, a synthetic root chunk.
type HierarchicalChunkingResult struct {
	ChunkingResult
	RootChunkID string `json:"root_chunk_id,omitempty"` // empty if include_document_summary was false
}

// ValidationResult is validate()'s output.
type ValidationResult struct {
	Valid    bool
	Errors   []error
	Warnings []string
}

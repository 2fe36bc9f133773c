package chunker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wyvernzora/mdchunk/pkg/chunkconfig"
	cctx "github.com/wyvernzora/mdchunk/pkg/context"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
)

func TestChunk_SimpleParagraphs(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	text := "First paragraph of the document.\n\nSecond paragraph with more words in it.\n"
	chunks, err := c.Chunk(context.Background(), text)
	if err != nil {
		t.Fatalf("Chunk: %v", err)
	}
	if len(chunks) == 0 {
		t.Fatal("expected at least one chunk")
	}
	for _, ch := range chunks {
		if strings.TrimSpace(ch.Content) == "" {
			t.Error("chunk content should never be blank")
		}
	}
}

func TestChunk_StructuralDocumentUsesStructuralStrategy(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	text := "# Title\n\nIntro.\n\n## Section One\n\nBody one.\n\n## Section Two\n\nBody two.\n\n## Section Three\n\nBody three.\n"
	result, err := c.ChunkWithMetrics(context.Background(), text)
	if err != nil {
		t.Fatalf("ChunkWithMetrics: %v", err)
	}
	if result.StrategyUsed != mdchunk.StrategyStructural {
		t.Errorf("StrategyUsed = %q, want %q", result.StrategyUsed, mdchunk.StrategyStructural)
	}
}

func TestChunkWithMetrics_ReportsDocumentMeta(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	text := "---\ntitle: My Doc\nauthor: Jane\n---\n\nBody content here.\n"
	result, err := c.ChunkWithMetrics(context.Background(), text)
	if err != nil {
		t.Fatalf("ChunkWithMetrics: %v", err)
	}
	if result.DocumentMeta["title"] != "My Doc" {
		t.Errorf("DocumentMeta[title] = %v, want %q", result.DocumentMeta["title"], "My Doc")
	}
	for _, ch := range result.Chunks {
		if strings.Contains(ch.Content, "title: My Doc") {
			t.Error("frontmatter block should not leak into chunk content")
		}
	}
}

func TestChunkHierarchical_AssignsChunkIDsAndRoot(t *testing.T) {
	c, err := New(chunkconfig.WithIncludeDocumentSummary(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	text := "---\ntitle: Guide\n---\n\n# Guide\n\nIntro text.\n\n## Setup\n\nSetup steps.\n"
	result, err := c.ChunkHierarchical(context.Background(), text)
	if err != nil {
		t.Fatalf("ChunkHierarchical: %v", err)
	}
	if result.RootChunkID == "" {
		t.Fatal("expected a non-empty RootChunkID")
	}
	for _, ch := range result.Chunks {
		if ch.Metadata.ChunkID == "" {
			t.Error("every chunk should have a ChunkID")
		}
	}
}

func TestChunkFile_ReadsAndChunksDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("Some content.\n\nMore content.\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	chunks, err := c.ChunkFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ChunkFile: %v", err)
	}
	if len(chunks) == 0 {
		t.Fatal("expected at least one chunk")
	}
}

func TestChunkFile_InjectsFilePathIntoDocumentMeta(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("---\ntitle: Doc\n---\n\nSome content.\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// ChunkWithMetrics is driven through ChunkFile's context instead of
	// calling it directly, so we can inspect DocumentMeta; ChunkFile itself
	// only returns the flat chunk slice.
	ctx := cctx.WithFileInfo(context.Background(), cctx.FileInfo{Path: path})
	result, err := c.ChunkWithMetrics(ctx, mustReadFile(t, path))
	if err != nil {
		t.Fatalf("ChunkWithMetrics: %v", err)
	}
	if result.DocumentMeta["file_path"] != path {
		t.Errorf("DocumentMeta[file_path] = %v, want %q", result.DocumentMeta["file_path"], path)
	}

	chunks, err := c.ChunkFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ChunkFile: %v", err)
	}
	if len(chunks) == 0 {
		t.Fatal("expected at least one chunk")
	}
}

func TestChunk_NoFilePathInjectedWithoutFileInfo(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result, err := c.ChunkWithMetrics(context.Background(), "Some content.\n")
	if err != nil {
		t.Fatalf("ChunkWithMetrics: %v", err)
	}
	if _, ok := result.DocumentMeta["file_path"]; ok {
		t.Error("file_path should not be injected when the caller never set FileInfo")
	}
}

func TestChunk_RequireSummaryRejectsMissingSummary(t *testing.T) {
	c, err := New(chunkconfig.WithRequireSummary(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.Chunk(context.Background(), "---\ntitle: Doc\n---\n\nBody.\n")
	if err == nil {
		t.Fatal("expected an error for frontmatter missing summary")
	}
	if _, ok := err.(*mdchunk.InputError); !ok {
		t.Errorf("expected *mdchunk.InputError, got %T", err)
	}
}

func TestChunk_RequireSummaryAcceptsPresentSummary(t *testing.T) {
	c, err := New(chunkconfig.WithRequireSummary(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.Chunk(context.Background(), "---\nsummary: A short overview.\n---\n\nBody.\n")
	if err != nil {
		t.Fatalf("Chunk: %v", err)
	}
}

func mustReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func TestChunkFile_MissingFileIsInputError(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.ChunkFile(context.Background(), filepath.Join(t.TempDir(), "missing.md"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if _, ok := err.(*mdchunk.InputError); !ok {
		t.Errorf("expected *mdchunk.InputError, got %T", err)
	}
}

func TestValidate_RoundTripsThroughChunkerConfig(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	text := "Some paragraph of reasonable length to validate.\n"
	chunks, err := c.Chunk(context.Background(), text)
	if err != nil {
		t.Fatalf("Chunk: %v", err)
	}
	result := c.Validate(chunks, text, true)
	if !result.Valid {
		t.Errorf("expected valid, got errors: %v", result.Errors)
	}
}

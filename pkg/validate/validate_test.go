package validate

import (
	"strings"
	"testing"

	"github.com/wyvernzora/mdchunk/pkg/chunkconfig"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
)

func mustConfig(t *testing.T, opts ...chunkconfig.Option) *chunkconfig.Config {
	t.Helper()
	cfg, err := chunkconfig.New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return cfg
}

func TestValidate_CleanInputPasses(t *testing.T) {
	original := "line one\nline two\nline three"
	chunks := []mdchunk.Chunk{
		{Content: "line one\nline two\n", StartLine: 1, EndLine: 2, Size: 18},
		{Content: "line three", StartLine: 3, EndLine: 3, Size: 10},
	}
	result := Validate(chunks, original, mustConfig(t), true)
	if !result.Valid {
		t.Errorf("expected valid, got errors: %v", result.Errors)
	}
}

func TestValidate_DataLossBelowFloor(t *testing.T) {
	original := strings.Repeat("word ", 1000)
	chunks := []mdchunk.Chunk{{Content: "word", StartLine: 1, EndLine: 1, Size: 4}}
	result := Validate(chunks, original, mustConfig(t), true)
	if result.Valid {
		t.Fatal("expected invalid due to coverage below floor")
	}
	found := false
	for _, e := range result.Errors {
		if ve, ok := e.(*mdchunk.ValidationError); ok && ve.Kind == mdchunk.IncompleteCoverageError {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an IncompleteCoverageError, got %v", result.Errors)
	}
}

func TestValidate_MonotonicOrderingViolation(t *testing.T) {
	chunks := []mdchunk.Chunk{
		{Content: "a", StartLine: 5, EndLine: 5, Size: 1},
		{Content: "b", StartLine: 2, EndLine: 2, Size: 1},
	}
	result := Validate(chunks, "a\nb\nc\nd\ne", mustConfig(t), true)
	if result.Valid {
		t.Fatal("expected invalid due to ordering regression")
	}
}

func TestValidate_EmptyChunkContent(t *testing.T) {
	chunks := []mdchunk.Chunk{{Content: "   \n  ", StartLine: 1, EndLine: 2, Size: 6}}
	result := Validate(chunks, "   \n  ", mustConfig(t), true)
	if result.Valid {
		t.Fatal("expected invalid due to empty chunk content")
	}
}

func TestValidate_OversizeAllowedWithReasonPasses(t *testing.T) {
	cfg := mustConfig(t, chunkconfig.WithMaxChunkSize(10))
	chunks := []mdchunk.Chunk{
		{
			Content: strings.Repeat("x", 50), StartLine: 1, EndLine: 1, Size: 50,
			Metadata: mdchunk.Metadata{AllowOversize: true, OversizeReason: mdchunk.OversizeReasonCodeBlock},
		},
	}
	result := Validate(chunks, strings.Repeat("x", 50), cfg, true)
	if !result.Valid {
		t.Errorf("expected valid, got errors: %v", result.Errors)
	}
}

func TestValidate_OversizeWithoutReasonFails(t *testing.T) {
	cfg := mustConfig(t, chunkconfig.WithMaxChunkSize(10))
	chunks := []mdchunk.Chunk{{Content: strings.Repeat("x", 50), StartLine: 1, EndLine: 1, Size: 50}}
	result := Validate(chunks, strings.Repeat("x", 50), cfg, true)
	if result.Valid {
		t.Fatal("expected invalid due to unexplained oversize")
	}
}

func TestValidate_FenceImbalance(t *testing.T) {
	chunks := []mdchunk.Chunk{{Content: "```go\nfunc x() {}\n", StartLine: 1, EndLine: 2, Size: 19}}
	result := Validate(chunks, "```go\nfunc x() {}\n```", mustConfig(t), true)
	if result.Valid {
		t.Fatal("expected invalid due to unbalanced fence markers")
	}
}

func TestValidate_FenceImbalanceToleratedOnContinuation(t *testing.T) {
	chunks := []mdchunk.Chunk{
		{Content: "```go\nfunc x()", StartLine: 1, EndLine: 2, Size: 14},
		{Content: " {}\n```", StartLine: 1, EndLine: 2, Size: 7, Metadata: mdchunk.Metadata{IsContinuation: true}},
	}
	result := Validate(chunks, "```go\nfunc x() {}\n```", mustConfig(t), true)
	for _, e := range result.Errors {
		if ve, ok := e.(*mdchunk.ValidationError); ok && ve.Kind == mdchunk.FenceImbalanceError && ve.ChunkIndex == 1 {
			t.Errorf("continuation chunk should not be fence-checked, got %v", ve)
		}
	}
}

func TestValidate_LineRangeOutOfBounds(t *testing.T) {
	chunks := []mdchunk.Chunk{{Content: "x", StartLine: 10, EndLine: 10, Size: 1}}
	result := Validate(chunks, "one\ntwo\nthree", mustConfig(t), true)
	if result.Valid {
		t.Fatal("expected invalid due to line range beyond total_lines")
	}
}

func TestValidate_LenientModeCollectsWarningsAndStaysValid(t *testing.T) {
	chunks := []mdchunk.Chunk{{Content: "x", StartLine: 10, EndLine: 10, Size: 1}}
	result := Validate(chunks, "one\ntwo\nthree", mustConfig(t), false)
	if !result.Valid {
		t.Error("lenient mode should never flip Valid to false")
	}
	if len(result.Warnings) == 0 {
		t.Error("expected the line-range violation to surface as a warning")
	}
}

func TestValidate_SyntheticRootExemptFromLineRangeCheck(t *testing.T) {
	chunks := []mdchunk.Chunk{
		{Content: "# Doc\n", StartLine: 0, EndLine: 0, Size: 6, Metadata: mdchunk.Metadata{IsRoot: true}},
		{Content: "body", StartLine: 1, EndLine: 1, Size: 4},
	}
	result := Validate(chunks, "body", mustConfig(t), true)
	if !result.Valid {
		t.Errorf("expected valid, synthetic root should be exempt from line-range checks: %v", result.Errors)
	}
}

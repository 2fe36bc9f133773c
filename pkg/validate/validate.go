package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wyvernzora/mdchunk/pkg/chunkconfig"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
)

var fenceMarker = regexp.MustCompile("(?m)^(`{3,}|~{3,})")

// Validate runs the spec's six invariant checks against an already-built
// chunk slice. In strict mode every violation is an error; in lenient mode
// violations are collected as warning strings instead and Valid stays true
// unless a check has no lenient form.
func Validate(chunks []mdchunk.Chunk, originalText string, cfg *chunkconfig.Config, strict bool) *mdchunk.ValidationResult {
	result := &mdchunk.ValidationResult{Valid: true}

	report := func(e *mdchunk.ValidationError) {
		if strict {
			result.Errors = append(result.Errors, e)
			result.Valid = false
		} else {
			result.Warnings = append(result.Warnings, e.Error())
		}
	}

	checkCoverage(chunks, originalText, report)
	checkOrdering(chunks, report)
	checkNonEmpty(chunks, report)
	checkSizeBounds(chunks, cfg, report)
	checkFenceBalance(chunks, report)
	checkLineRanges(chunks, originalText, report)

	return result
}

// checkCoverage sums chunk content length (excluding the metadata-only
// previous_content/next_content overlap annotations) and requires it fall
// within [0.90, 1.70] of the original character count. Below the band
// signals lost content; above it signals pathological duplication from a
// structural header being folded into too many chunk paths.
func checkCoverage(chunks []mdchunk.Chunk, originalText string, report func(*mdchunk.ValidationError)) {
	totalChars := len([]rune(originalText))
	if totalChars == 0 {
		return
	}

	var chunkChars int
	for _, c := range chunks {
		if c.Metadata.IsRoot {
			continue
		}
		chunkChars += len([]rune(c.Content))
	}

	ratio := float64(chunkChars) / float64(totalChars)
	switch {
	case ratio < 0.90:
		report(mdchunk.NewValidationError(mdchunk.IncompleteCoverageError, -1, 0, 0,
			fmt.Sprintf("chunk content covers %.1f%% of input characters, below the 90%% floor", ratio*100)))
	case ratio > 1.70:
		report(mdchunk.NewValidationError(mdchunk.DataLossError, -1, 0, 0,
			fmt.Sprintf("chunk content covers %.1f%% of input characters, above the 170%% ceiling", ratio*100)))
	}
}

func checkOrdering(chunks []mdchunk.Chunk, report func(*mdchunk.ValidationError)) {
	for i := 1; i < len(chunks); i++ {
		if chunks[i].StartLine < chunks[i-1].StartLine {
			report(mdchunk.NewValidationError(mdchunk.MonotonicOrderingError, i, chunks[i].StartLine, chunks[i].EndLine,
				fmt.Sprintf("start_line %d regresses before chunk %d's start_line %d", chunks[i].StartLine, i-1, chunks[i-1].StartLine)))
		}
	}
}

func checkNonEmpty(chunks []mdchunk.Chunk, report func(*mdchunk.ValidationError)) {
	for i, c := range chunks {
		if strings.TrimSpace(c.Content) == "" {
			report(mdchunk.NewValidationError(mdchunk.EmptyChunkError, i, c.StartLine, c.EndLine, "chunk content is empty or all whitespace"))
		}
	}
}

func checkSizeBounds(chunks []mdchunk.Chunk, cfg *chunkconfig.Config, report func(*mdchunk.ValidationError)) {
	for i, c := range chunks {
		if c.Size <= cfg.MaxChunkSize {
			continue
		}
		if c.Metadata.AllowOversize && c.Metadata.OversizeReason != "" {
			continue
		}
		report(mdchunk.NewValidationError(mdchunk.DataLossError, i, c.StartLine, c.EndLine,
			fmt.Sprintf("size %d exceeds max_chunk_size %d without a recognized oversize_reason", c.Size, cfg.MaxChunkSize)))
	}
}

func checkFenceBalance(chunks []mdchunk.Chunk, report func(*mdchunk.ValidationError)) {
	for i, c := range chunks {
		if c.Metadata.IsContinuation {
			continue
		}
		n := len(fenceMarker.FindAllStringIndex(c.Content, -1))
		if n%2 != 0 {
			report(mdchunk.NewValidationError(mdchunk.FenceImbalanceError, i, c.StartLine, c.EndLine,
				fmt.Sprintf("found %d fence markers, expected an even count", n)))
		}
	}
}

func checkLineRanges(chunks []mdchunk.Chunk, originalText string, report func(*mdchunk.ValidationError)) {
	totalLines := strings.Count(originalText, "\n") + 1
	for i, c := range chunks {
		if c.Metadata.IsRoot {
			continue
		}
		if c.StartLine < 1 || c.StartLine > c.EndLine || c.EndLine > totalLines {
			report(mdchunk.NewValidationError(mdchunk.LineRangeError, i, c.StartLine, c.EndLine,
				fmt.Sprintf("line range %d-%d invalid for a %d-line document", c.StartLine, c.EndLine, totalLines)))
		}
	}
}

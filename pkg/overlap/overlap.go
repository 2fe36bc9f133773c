package overlap

import (
	"github.com/wyvernzora/mdchunk/pkg/chunkconfig"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
	"github.com/wyvernzora/mdchunk/pkg/textutil"
)

// Annotate populates previous_content/next_content/overlap_size on every
// adjacent chunk pair in place (spec §4.8). It never touches Content.
func Annotate(chunks []mdchunk.Chunk, cfg *chunkconfig.Config) {
	if !cfg.EnableOverlap || len(chunks) < 2 {
		return
	}

	for i := 0; i < len(chunks)-1; i++ {
		cur := &chunks[i]
		next := &chunks[i+1]

		n := effectiveOverlap(cur.Size, cfg)
		if n <= 0 {
			continue
		}

		next.Metadata.PreviousContent = textutil.TruncateTail(cur.Content, n)
		cur.Metadata.NextContent = textutil.TruncateHead(next.Content, n)
		cur.Metadata.OverlapSize = n
		next.Metadata.OverlapSize = n
	}
}

// effectiveOverlap implements spec §4.8's bound:
//
//	effective_overlap = min(overlap_size, max(0, overlap_percentage * size), size / 4)
//
// overlap_percentage defaults to 0.0 and is documented as "a percentage
// fallback when overlap_size is not set" rather than an unconditional
// additional cap; taking the formula fully literally would zero out overlap
// under the default configuration despite enable_overlap defaulting to
// true. The percentage term is therefore only applied as a cap when it is
// configured to a positive value.
func effectiveOverlap(size int, cfg *chunkconfig.Config) int {
	n := float64(cfg.OverlapSize)

	if cfg.OverlapPercentage > 0 {
		if byPercentage := cfg.OverlapPercentage * float64(size); byPercentage < n {
			n = byPercentage
		}
	}
	if quarter := float64(size) / 4; quarter < n {
		n = quarter
	}
	if n < 0 {
		n = 0
	}
	return int(n)
}

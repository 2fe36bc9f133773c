package chunkconfig

import "github.com/wyvernzora/mdchunk/pkg/mdchunk"

// StrategyOverride names a forced strategy selection, bypassing the
// selector (spec §4.4).
type StrategyOverride string

const (
	// StrategyOverrideNone leaves strategy selection to the selector.
	StrategyOverrideNone StrategyOverride = ""
	StrategyOverrideCode StrategyOverride = mdchunk.StrategyCodeAware
	StrategyOverrideStructural StrategyOverride = mdchunk.StrategyStructural
	StrategyOverrideFallback StrategyOverride = mdchunk.StrategyFallback
)

// SizeModel selects what unit the adaptive size model and token_count
// enrichment (SPEC_FULL.md supplement 3) are computed in.
type SizeModel string

const (
	SizeModelChars    SizeModel = "chars"
	SizeModelTiktoken SizeModel = "tiktoken"
)

// Config holds the recognized options from spec §4.3.
type Config struct {
	MaxChunkSize    int
	MinChunkSize    int
	TargetChunkSize int

	OverlapSize       int
	OverlapPercentage float64
	EnableOverlap     bool

	PreserveAtomicBlocks bool
	ExtractPreamble      bool

	CodeThreshold      float64
	StructureThreshold int
	StrategyOverride   StrategyOverride
	AllowOversize      bool

	IncludeDocumentSummary bool
	UseAdaptiveSizing      bool
	SizeModel              SizeModel

	// RequireSummary rejects documents whose frontmatter is missing a
	// non-empty "summary" field, via pkg/frontmatter/builtin.RequireSummary.
	RequireSummary bool

	// MaxDuplicationRatio backs testable property 8 (pairwise duplication
	// ratio ceiling); not a spec §4.3 table entry but referenced by §8.
	MaxDuplicationRatio float64

	// AdaptiveMinScale / AdaptiveMaxScale parameterize §4.9's adaptive
	// sizing scale_factor formula.
	AdaptiveMinScale float64
	AdaptiveMaxScale float64

	// TiktokenEncoding selects the tiktoken-go encoding when SizeModel is
	// SizeModelTiktoken.
	TiktokenEncoding string
}

// Option configures a Config instance.
type Option func(*Config)

func defaults() *Config {
	return &Config{
		MaxChunkSize:    4096,
		MinChunkSize:    512,
		TargetChunkSize: 2048,

		OverlapSize:       200,
		OverlapPercentage: 0.0,
		EnableOverlap:     true,

		PreserveAtomicBlocks: true,
		ExtractPreamble:      true,

		CodeThreshold:      0.3,
		StructureThreshold: 3,
		StrategyOverride:   StrategyOverrideNone,
		AllowOversize:      true,

		IncludeDocumentSummary: false,
		UseAdaptiveSizing:      false,
		SizeModel:              SizeModelChars,
		RequireSummary:         false,

		MaxDuplicationRatio: 0.30,

		AdaptiveMinScale: 0.5,
		AdaptiveMaxScale: 1.5,

		TiktokenEncoding: "o200k_base",
	}
}

// WithMaxChunkSize sets the hard upper bound in characters for a regular chunk.
func WithMaxChunkSize(n int) Option { return func(c *Config) { c.MaxChunkSize = n } }

// WithMinChunkSize sets the lower bound; smaller neighboring chunks are merged if feasible.
func WithMinChunkSize(n int) Option { return func(c *Config) { c.MinChunkSize = n } }

// WithTargetChunkSize sets the preferred size strategies pack up to before forcing a boundary.
func WithTargetChunkSize(n int) Option { return func(c *Config) { c.TargetChunkSize = n } }

// WithOverlapSize sets the characters of context stored in metadata.
func WithOverlapSize(n int) Option { return func(c *Config) { c.OverlapSize = n } }

// WithOverlapPercentage sets the percentage fallback used when OverlapSize alone isn't set.
func WithOverlapPercentage(p float64) Option { return func(c *Config) { c.OverlapPercentage = p } }

// WithEnableOverlap toggles the overlap annotator.
func WithEnableOverlap(enabled bool) Option { return func(c *Config) { c.EnableOverlap = enabled } }

// WithPreserveAtomicBlocks toggles never splitting fenced code or tables.
func WithPreserveAtomicBlocks(preserve bool) Option {
	return func(c *Config) { c.PreserveAtomicBlocks = preserve }
}

// WithExtractPreamble toggles preamble extraction.
func WithExtractPreamble(extract bool) Option { return func(c *Config) { c.ExtractPreamble = extract } }

// WithCodeThreshold sets the minimum code_ratio for CodeAware eligibility.
func WithCodeThreshold(t float64) Option { return func(c *Config) { c.CodeThreshold = t } }

// WithStructureThreshold sets the minimum header count for Structural eligibility.
func WithStructureThreshold(n int) Option { return func(c *Config) { c.StructureThreshold = n } }

// WithStrategyOverride forces one of {code_aware, structural, fallback}.
func WithStrategyOverride(s StrategyOverride) Option { return func(c *Config) { c.StrategyOverride = s } }

// WithAllowOversize toggles whether oversize atomic blocks are an error.
func WithAllowOversize(allow bool) Option { return func(c *Config) { c.AllowOversize = allow } }

// WithIncludeDocumentSummary toggles the synthetic root chunk.
func WithIncludeDocumentSummary(include bool) Option {
	return func(c *Config) { c.IncludeDocumentSummary = include }
}

// WithUseAdaptiveSizing toggles the enricher's adaptive_size computation.
func WithUseAdaptiveSizing(use bool) Option { return func(c *Config) { c.UseAdaptiveSizing = use } }

// WithSizeModel selects the unit adaptive sizing and token_count are computed in.
func WithSizeModel(m SizeModel) Option { return func(c *Config) { c.SizeModel = m } }

// WithRequireSummary rejects documents missing a non-empty frontmatter
// "summary" field before line-scanning begins.
func WithRequireSummary(require bool) Option { return func(c *Config) { c.RequireSummary = require } }

// WithMaxDuplicationRatio sets the pairwise duplication ratio ceiling (spec property 8).
func WithMaxDuplicationRatio(r float64) Option { return func(c *Config) { c.MaxDuplicationRatio = r } }

// WithAdaptiveScaleRange sets the min/max scale factors for adaptive sizing.
func WithAdaptiveScaleRange(min, max float64) Option {
	return func(c *Config) { c.AdaptiveMinScale = min; c.AdaptiveMaxScale = max }
}

// WithTiktokenEncoding sets the tiktoken-go encoding name.
func WithTiktokenEncoding(name string) Option { return func(c *Config) { c.TiktokenEncoding = name } }

// New builds a Config from defaults plus the given options, then validates
// it, auto-adjusting monotonic invariants before failing.
func New(opts ...Option) (*Config, error) {
	cfg := defaults()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate enforces spec §4.3's invariants, auto-adjusting monotonic
// violations (e.g. min > max) before failing with a ConfigError.
func (c *Config) validate() error {
	if c.MaxChunkSize <= 0 {
		return mdchunk.NewConfigError("max_chunk_size", "must be positive")
	}
	if c.MinChunkSize <= 0 {
		c.MinChunkSize = c.MaxChunkSize / 2
	}
	if c.TargetChunkSize <= 0 {
		c.TargetChunkSize = (c.MinChunkSize + c.MaxChunkSize) / 2
	}

	if c.MinChunkSize > c.MaxChunkSize {
		c.MinChunkSize = c.MaxChunkSize / 2
	}
	if c.MinChunkSize <= 0 {
		return mdchunk.NewConfigError("min_chunk_size", "cannot be auto-adjusted to a positive value")
	}
	if c.TargetChunkSize < c.MinChunkSize {
		c.TargetChunkSize = c.MinChunkSize
	}
	if c.TargetChunkSize > c.MaxChunkSize {
		c.TargetChunkSize = c.MaxChunkSize
	}
	if !(c.MinChunkSize <= c.TargetChunkSize && c.TargetChunkSize <= c.MaxChunkSize) {
		return mdchunk.NewConfigError("chunk_size_bounds", "min <= target <= max still violated after adjustment")
	}

	if c.OverlapSize < 0 {
		c.OverlapSize = 0
	}
	if c.OverlapSize >= c.MaxChunkSize {
		c.OverlapSize = c.MaxChunkSize / 2
	}
	if c.OverlapSize >= c.MaxChunkSize {
		return mdchunk.NewConfigError("overlap_size", "must be < max_chunk_size after adjustment")
	}

	if c.OverlapPercentage < 0 {
		c.OverlapPercentage = 0
	}
	if c.OverlapPercentage > 1 {
		c.OverlapPercentage = 1
	}

	if c.CodeThreshold < 0 {
		c.CodeThreshold = 0
	}
	if c.CodeThreshold > 1 {
		c.CodeThreshold = 1
	}

	if c.StructureThreshold < 0 {
		c.StructureThreshold = 0
	}

	if c.MaxDuplicationRatio < 0 {
		c.MaxDuplicationRatio = 0
	}
	if c.MaxDuplicationRatio > 1 {
		c.MaxDuplicationRatio = 1
	}

	switch c.StrategyOverride {
	case StrategyOverrideNone, StrategyOverrideCode, StrategyOverrideStructural, StrategyOverrideFallback:
	default:
		return mdchunk.NewConfigError("strategy_override", "must be one of code_aware, structural, fallback, or unset")
	}

	return nil
}

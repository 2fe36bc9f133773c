package chunker

import (
	"github.com/wyvernzora/mdchunk/pkg/chunkconfig"
	"github.com/wyvernzora/mdchunk/pkg/header"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
	"github.com/wyvernzora/mdchunk/pkg/strategy"
	"github.com/wyvernzora/mdchunk/pkg/strategy/builtin"
	"github.com/wyvernzora/mdchunk/pkg/tokenizer"
	tbuiltin "github.com/wyvernzora/mdchunk/pkg/tokenizer/builtin"
)

// Chunker holds one resolved configuration plus the strategy registry and
// tokenizer it was built with. It is safe for concurrent use: every method
// is a pure function of its arguments (spec §5 — no shared mutable state).
type Chunker struct {
	cfg       *chunkconfig.Config
	registry  strategy.Registry
	tokenizer tokenizer.Tokenizer
	headerGen header.ChunkHeader
}

// WithHeaderGenerator overrides the header rendered for the hierarchy
// builder's synthetic document-summary chunk (see pkg/hierarchy.Build). A
// nil generator (the default) falls back to the hierarchy package's own
// renderer, which tolerates arbitrary frontmatter shapes; callers that know
// their documents' frontmatter fields ahead of time can instead pass
// pkg/header/builtin.FrontMatterYamlHeader or KeyValueHeader. Returns c for
// chaining.
func (c *Chunker) WithHeaderGenerator(gen header.ChunkHeader) *Chunker {
	c.headerGen = gen
	return c
}

// New builds a Chunker from chunkconfig options. If the resolved config
// needs a tiktoken-based tokenizer (SizeModelTiktoken) and none is
// supplied, one is constructed using cfg.TiktokenEncoding.
func New(opts ...chunkconfig.Option) (*Chunker, error) {
	cfg, err := chunkconfig.New(opts...)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg)
}

// NewFromConfig builds a Chunker from an already-resolved Config, letting
// callers that start from a named profile (chunkconfig.NewFromProfile) feed
// its result straight in instead of re-deriving functional options.
func NewFromConfig(cfg *chunkconfig.Config) (*Chunker, error) {
	reg := strategy.Registry{
		mdchunk.StrategyCodeAware:  builtin.NewCodeAware(),
		mdchunk.StrategyStructural: builtin.NewStructural(),
		mdchunk.StrategyFallback:   builtin.NewFallback(),
	}

	var tok tokenizer.Tokenizer
	if cfg.SizeModel == chunkconfig.SizeModelTiktoken {
		var err error
		tok, err = tbuiltin.NewTiktokenTokenizer(tbuiltin.WithEncoding(cfg.TiktokenEncoding))
		if err != nil {
			return nil, err
		}
	}

	return &Chunker{cfg: cfg, registry: reg, tokenizer: tok}, nil
}

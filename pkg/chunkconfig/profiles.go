package chunkconfig

import "fmt"

// Profile is a named, closed set of Config options (spec §6). Profile
// names are recognized verbatim by Resolve and the CLI's --profile flag.
type Profile func() []Option

// profiles maps each recognized profile name to its factory. Values here
// are the documented parameter values implementers must reproduce to stay
// compatible with downstream consumers expecting a given profile's behavior.
var profiles = map[string]Profile{
	"default": func() []Option {
		return nil // pure chunkconfig.New() defaults
	},
	"code_heavy": func() []Option {
		return []Option{
			WithMaxChunkSize(6144),
			WithMinChunkSize(768),
			WithTargetChunkSize(3072),
			WithCodeThreshold(0.15),
			WithPreserveAtomicBlocks(true),
			WithAllowOversize(true),
		}
	},
	"structured": func() []Option {
		return []Option{
			WithMaxChunkSize(4096),
			WithMinChunkSize(512),
			WithTargetChunkSize(2048),
			WithStructureThreshold(2),
			WithExtractPreamble(true),
			WithIncludeDocumentSummary(true),
		}
	},
	"dify_rag": func() []Option {
		return []Option{
			WithMaxChunkSize(1024),
			WithMinChunkSize(256),
			WithTargetChunkSize(512),
			WithOverlapSize(50),
			WithEnableOverlap(true),
		}
	},
	"chat_context": func() []Option {
		return []Option{
			WithMaxChunkSize(2048),
			WithMinChunkSize(256),
			WithTargetChunkSize(1024),
			WithOverlapSize(300),
			WithEnableOverlap(true),
		}
	},
	"search_indexing": func() []Option {
		return []Option{
			WithMaxChunkSize(512),
			WithMinChunkSize(128),
			WithTargetChunkSize(256),
			WithOverlapSize(0),
			WithEnableOverlap(false),
			WithUseAdaptiveSizing(true),
		}
	},
	"fast_processing": func() []Option {
		return []Option{
			WithMaxChunkSize(8192),
			WithMinChunkSize(1024),
			WithTargetChunkSize(4096),
			WithEnableOverlap(false),
			WithExtractPreamble(false),
		}
	},
	"minimal": func() []Option {
		return []Option{
			WithMaxChunkSize(4096),
			WithMinChunkSize(512),
			WithTargetChunkSize(2048),
			WithEnableOverlap(false),
			WithExtractPreamble(false),
			WithIncludeDocumentSummary(false),
			WithUseAdaptiveSizing(false),
		}
	},
}

// ProfileNames returns the recognized profile names (spec §6), in the
// fixed documented order.
func ProfileNames() []string {
	return []string{
		"default", "code_heavy", "structured", "dify_rag",
		"chat_context", "search_indexing", "fast_processing", "minimal",
	}
}

// NewFromProfile builds a Config starting from the named profile's option
// set, with any extra options layered on top (and able to override it).
func NewFromProfile(name string, extra ...Option) (*Config, error) {
	p, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("chunkconfig: unknown profile %q", name)
	}
	opts := append(p(), extra...)
	return New(opts...)
}

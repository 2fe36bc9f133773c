package main

import (
	"fmt"

	"github.com/wyvernzora/mdchunk/pkg/rconfig"
)

// Options is the unified configuration for both CLI flags and .mdchunkrc.
// Files stays separate from the CLI arg slot to keep it out of the struct
// kong binds as a positional argument list.
type Options struct {
	Profile      string `yaml:"profile,omitempty" help:"Named configuration profile" short:"p"`
	Max          int    `yaml:"maxSize,omitempty" help:"Maximum chunk size in characters" short:"x"`
	Min          int    `yaml:"minSize,omitempty" help:"Minimum chunk size in characters" short:"n"`
	Overlap      int    `yaml:"overlap,omitempty" help:"Overlap size in characters" short:"o"`
	Strategy     string `yaml:"strategy,omitempty" help:"Force a strategy: code_aware, structural, fallback"`
	Hierarchical bool   `yaml:"hierarchical,omitempty" help:"Build the parent/child/sibling hierarchy" short:"H"`
	Metrics      bool   `yaml:"metrics,omitempty" help:"Emit the full ChunkingResult instead of a flat chunk array" short:"m"`
	Strict       bool   `yaml:"strict,omitempty" help:"Treat validation warnings as fatal errors" short:"s"`
	Out          string `yaml:"-" help:"Write JSON to <file>.chunks.json per input instead of stdout" short:"O"`

	RequireSummary bool     `yaml:"requireSummary,omitempty" help:"Reject documents whose frontmatter has no summary field"`
	Headers        []string `yaml:"headers,omitempty" help:"Frontmatter fields for the document-summary header, as path[!][:Label]"`

	Files []string `yaml:"files,omitempty" kong:"-"`
}

func (o *Options) validate() error {
	if o.Max < 0 || o.Min < 0 || o.Overlap < 0 {
		return fmt.Errorf("size options must not be negative")
	}
	if o.Max > 0 && o.Min > 0 && o.Min > o.Max {
		return fmt.Errorf("min size %d must not exceed max size %d", o.Min, o.Max)
	}
	for _, h := range o.Headers {
		if _, err := parseHeaderField(h); err != nil {
			return fmt.Errorf("invalid --header %q: %w", h, err)
		}
	}
	return nil
}

func (o *Options) toFileOptions() *rconfig.FileOptions {
	return &rconfig.FileOptions{
		Profile:        o.Profile,
		MaxSize:        o.Max,
		MinSize:        o.Min,
		Overlap:        o.Overlap,
		Strategy:       o.Strategy,
		Hierarchical:   o.Hierarchical,
		Metrics:        o.Metrics,
		Strict:         o.Strict,
		RequireSummary: o.RequireSummary,
		Headers:        o.Headers,
		Files:          o.Files,
	}
}

func fromFileOptions(fo *rconfig.FileOptions) *Options {
	if fo == nil {
		return &Options{}
	}
	return &Options{
		Profile:        fo.Profile,
		Max:            fo.MaxSize,
		Min:            fo.MinSize,
		Overlap:        fo.Overlap,
		Strategy:       fo.Strategy,
		Hierarchical:   fo.Hierarchical,
		Metrics:        fo.Metrics,
		Strict:         fo.Strict,
		RequireSummary: fo.RequireSummary,
		Headers:        fo.Headers,
		Files:          fo.Files,
	}
}

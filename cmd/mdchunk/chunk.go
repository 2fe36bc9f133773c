package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wyvernzora/mdchunk/pkg/chunker"
	"github.com/wyvernzora/mdchunk/pkg/chunkconfig"
	cctx "github.com/wyvernzora/mdchunk/pkg/context"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
	"github.com/wyvernzora/mdchunk/pkg/rconfig"
)

// ChunkCmd is the main command: chunk FILE... [flags].
type ChunkCmd struct {
	Options

	Files []string `arg:"" optional:"" help:"Markdown files or glob patterns to chunk"`
}

// Run executes the chunk command against every resolved input file.
func (r *ChunkCmd) Run() error {
	projectRoot, foundConfig, err := rconfig.FindProjectRoot()
	if err != nil {
		return mdchunk.NewConfigError("project_root", err.Error())
	}

	var configOpts *rconfig.FileOptions
	if foundConfig {
		configOpts, err = rconfig.LoadConfig(projectRoot)
		if err != nil {
			return mdchunk.NewConfigError("mdchunkrc", err.Error())
		}
		fmt.Fprintf(os.Stderr, "Loaded configuration from %s\n", filepath.Join(projectRoot, rconfig.ConfigFileName))
	}

	cliOpts := r.Options.toFileOptions()
	cliOpts.Files = r.Files
	merged := rconfig.MergeOptions(configOpts, cliOpts)
	if err := fromFileOptions(merged).validate(); err != nil {
		return mdchunk.NewConfigError("options", err.Error())
	}

	files, err := expandGlobs(projectRoot, merged.Files)
	if err != nil {
		return mdchunk.NewInputError("", err)
	}
	if len(files) == 0 {
		return mdchunk.NewInputError("", fmt.Errorf("no input files matched"))
	}

	cfg, err := resolveConfig(merged)
	if err != nil {
		return err
	}
	eng, err := chunker.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	headerGen, err := createHeaderGenerator(merged.Headers)
	if err != nil {
		return mdchunk.NewConfigError("header", err.Error())
	}
	eng.WithHeaderGenerator(headerGen)

	ctx := context.Background()
	for _, relPath := range files {
		absPath := filepath.Join(projectRoot, relPath)
		if err := processFile(ctx, eng, merged, relPath, absPath, r.Out); err != nil {
			return err
		}
	}
	return nil
}

// resolveConfig builds a *chunkconfig.Config from a merged FileOptions,
// starting from a named profile when one was requested.
func resolveConfig(opts *rconfig.FileOptions) (*chunkconfig.Config, error) {
	if opts.Profile != "" {
		cfg, err := chunkconfig.NewFromProfile(opts.Profile, opts.ToOptions()...)
		if err != nil {
			return nil, mdchunk.NewConfigError("profile", err.Error())
		}
		return cfg, nil
	}
	cfg, err := chunkconfig.New(opts.ToOptions()...)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// processFile chunks a single file and writes its result either to stdout
// or, when outDir is set, to "<file>.chunks.json" next to the source.
func processFile(ctx context.Context, eng *chunker.Chunker, opts *rconfig.FileOptions, relPath, absPath, out string) error {
	text, err := os.ReadFile(absPath)
	if err != nil {
		return mdchunk.NewInputError(relPath, err)
	}
	raw := string(text)
	ctx = cctx.WithFileInfo(ctx, cctx.FileInfo{Path: relPath})

	var result any
	var chunks []mdchunk.Chunk

	switch {
	case opts.Hierarchical:
		hres, err := eng.ChunkHierarchical(ctx, raw)
		if err != nil {
			return annotatePath(relPath, err)
		}
		chunks, result = hres.Chunks, hres
	case opts.Metrics:
		mres, err := eng.ChunkWithMetrics(ctx, raw)
		if err != nil {
			return annotatePath(relPath, err)
		}
		chunks, result = mres.Chunks, mres
	default:
		cs, err := eng.Chunk(ctx, raw)
		if err != nil {
			return annotatePath(relPath, err)
		}
		chunks, result = cs, cs
	}

	vres := eng.Validate(chunks, raw, opts.Strict)
	printValidation(relPath, vres)
	if opts.Strict && !vres.Valid {
		return &validationFailure{path: relPath, result: vres}
	}

	return writeResult(relPath, absPath, out, result)
}

// annotatePath wraps a chunking error with the offending file path when the
// underlying error type carries no path of its own.
func annotatePath(relPath string, err error) error {
	if ie, ok := err.(*mdchunk.InputError); ok && ie.Path == "" {
		return mdchunk.NewInputError(relPath, ie.Unwrap())
	}
	return err
}

// writeResult serializes result as JSON, either to stdout (default) or to
// "<out>/<file>.chunks.json" when out is non-empty.
func writeResult(relPath, absPath, out string, result any) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize result for %s: %w", relPath, err)
	}

	if out == "" {
		fmt.Println(string(data))
		return nil
	}

	outName := strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath)) + ".chunks.json"
	outPath := filepath.Join(out, outName)
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", out, err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
	return nil
}

package rconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wyvernzora/mdchunk/pkg/chunkconfig"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the recognized project config filename.
const ConfigFileName = ".mdchunkrc"

// FileOptions is the persisted/overridable subset of chunkconfig.Config the
// CLI exposes as flags and YAML fields. Zero values mean "not set": callers
// distinguish "explicitly 0" from "unset" only where the underlying field
// can never legitimately be 0 (every field below is positive or a ratio).
type FileOptions struct {
	Profile        string `yaml:"profile,omitempty"`
	MaxSize        int    `yaml:"maxSize,omitempty"`
	MinSize        int    `yaml:"minSize,omitempty"`
	Overlap        int    `yaml:"overlap,omitempty"`
	Strategy       string `yaml:"strategy,omitempty"`
	Hierarchical   bool   `yaml:"hierarchical,omitempty"`
	Metrics        bool   `yaml:"metrics,omitempty"`
	Strict         bool   `yaml:"strict,omitempty"`
	RequireSummary bool   `yaml:"requireSummary,omitempty"`
	// Headers, when non-empty, configures the key-value document-summary
	// header (pkg/header/builtin.KeyValueHeader) in "path[!][:Label]" form
	// (see cmd/mdchunk's HeaderField). Empty means the YAML frontmatter
	// renderer is used instead.
	Headers []string `yaml:"headers,omitempty"`
	Files   []string `yaml:"files,omitempty"`
}

// FindProjectRoot searches for ConfigFileName starting from the current
// directory and walking up. Returns the directory containing it, or the
// current directory (found=false) if none exists anywhere above it.
func FindProjectRoot() (root string, found bool, err error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("rconfig: failed to get current directory: %w", err)
	}

	dir := cwd
	for {
		if _, statErr := os.Stat(filepath.Join(dir, ConfigFileName)); statErr == nil {
			return dir, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, false, nil
		}
		dir = parent
	}
}

// LoadConfig reads and parses ConfigFileName from projectRoot. Returns nil,
// nil if the file doesn't exist.
func LoadConfig(projectRoot string) (*FileOptions, error) {
	data, err := os.ReadFile(filepath.Join(projectRoot, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("rconfig: failed to read %s: %w", ConfigFileName, err)
	}

	var opts FileOptions
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("rconfig: failed to parse %s: %w", ConfigFileName, err)
	}
	return &opts, nil
}

// SaveConfig writes opts to ConfigFileName under projectRoot.
func SaveConfig(projectRoot string, opts *FileOptions) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("rconfig: failed to serialize config: %w", err)
	}
	header := "# mdchunk project configuration\n\n"
	data = append([]byte(header), data...)

	if err := os.WriteFile(filepath.Join(projectRoot, ConfigFileName), data, 0o644); err != nil {
		return fmt.Errorf("rconfig: failed to write %s: %w", ConfigFileName, err)
	}
	return nil
}

// MergeOptions layers cli on top of config: any field cli sets explicitly
// (non-zero) overrides config's value; Files are concatenated, config first.
func MergeOptions(config, cli *FileOptions) *FileOptions {
	if config == nil {
		config = &FileOptions{}
	}
	if cli == nil {
		cli = &FileOptions{}
	}

	result := &FileOptions{}
	result.Profile = pickString(cli.Profile, config.Profile)
	result.MaxSize = pickInt(cli.MaxSize, config.MaxSize)
	result.MinSize = pickInt(cli.MinSize, config.MinSize)
	result.Overlap = pickInt(cli.Overlap, config.Overlap)
	result.Strategy = pickString(cli.Strategy, config.Strategy)
	result.Hierarchical = cli.Hierarchical || config.Hierarchical
	result.Metrics = cli.Metrics || config.Metrics
	result.Strict = cli.Strict || config.Strict
	result.RequireSummary = cli.RequireSummary || config.RequireSummary
	result.Headers = pickStrings(cli.Headers, config.Headers)

	result.Files = append(result.Files, config.Files...)
	result.Files = append(result.Files, cli.Files...)
	return result
}

func pickString(cli, config string) string {
	if cli != "" {
		return cli
	}
	return config
}

func pickInt(cli, config int) int {
	if cli != 0 {
		return cli
	}
	return config
}

func pickStrings(cli, config []string) []string {
	if len(cli) > 0 {
		return cli
	}
	return config
}

// ToOptions converts resolved FileOptions into chunkconfig.Options to feed
// into chunkconfig.New or layer on top of chunkconfig.NewFromProfile. Profile
// selection is the caller's responsibility (via NewFromProfile) since a
// profile name isn't itself a chunkconfig.Option.
func (o *FileOptions) ToOptions() []chunkconfig.Option {
	var opts []chunkconfig.Option
	if o == nil {
		return opts
	}
	if o.MaxSize > 0 {
		opts = append(opts, chunkconfig.WithMaxChunkSize(o.MaxSize))
	}
	if o.MinSize > 0 {
		opts = append(opts, chunkconfig.WithMinChunkSize(o.MinSize))
	}
	if o.Overlap > 0 {
		opts = append(opts, chunkconfig.WithOverlapSize(o.Overlap))
	}
	if o.Strategy != "" {
		opts = append(opts, chunkconfig.WithStrategyOverride(chunkconfig.StrategyOverride(o.Strategy)))
	}
	if o.Hierarchical {
		opts = append(opts, chunkconfig.WithIncludeDocumentSummary(true))
	}
	if o.RequireSummary {
		opts = append(opts, chunkconfig.WithRequireSummary(true))
	}
	return opts
}

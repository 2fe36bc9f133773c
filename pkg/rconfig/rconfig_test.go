package rconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wyvernzora/mdchunk/pkg/chunkconfig"
)

func TestLoadConfig_MissingFileReturnsNil(t *testing.T) {
	dir := t.TempDir()
	opts, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if opts != nil {
		t.Errorf("expected nil opts for a missing config file, got %+v", opts)
	}
}

func TestSaveConfig_ThenLoadConfig_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	want := &FileOptions{
		Profile: "code_heavy",
		MaxSize: 8192,
		MinSize: 1024,
		Overlap: 300,
		Files:   []string{"docs/**/*.md"},
	}
	if err := SaveConfig(dir, want); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	got, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil opts after round trip")
	}
	if got.Profile != want.Profile || got.MaxSize != want.MaxSize || got.MinSize != want.MinSize || got.Overlap != want.Overlap {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
	if len(got.Files) != 1 || got.Files[0] != "docs/**/*.md" {
		t.Errorf("Files round trip mismatch: got %v", got.Files)
	}
}

func TestFindProjectRoot_WalksUpToConfigFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("profile: default\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer os.Chdir(cwd)

	if err := os.Chdir(nested); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	foundRoot, found, err := FindProjectRoot()
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	if !found {
		t.Fatal("expected to find a project root")
	}
	resolvedRoot, _ := filepath.EvalSymlinks(root)
	resolvedFound, _ := filepath.EvalSymlinks(foundRoot)
	if resolvedFound != resolvedRoot {
		t.Errorf("FindProjectRoot = %q, want %q", resolvedFound, resolvedRoot)
	}
}

func TestFindProjectRoot_NoConfigAnywhere(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	// Guard: if any ancestor of the OS temp dir happens to carry a stray
	// .mdchunkrc this test would be flaky, but temp dirs are freshly made.
	_, found, err := FindProjectRoot()
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	if found {
		t.Skip("a .mdchunkrc exists somewhere above the temp dir in this environment")
	}
}

func TestMergeOptions_CLIOverridesConfig(t *testing.T) {
	config := &FileOptions{Profile: "default", MaxSize: 4096, Files: []string{"a.md"}}
	cli := &FileOptions{MaxSize: 8192, Strict: true, Files: []string{"b.md"}}

	merged := MergeOptions(config, cli)
	if merged.Profile != "default" {
		t.Errorf("Profile = %q, want config's %q to survive", merged.Profile, "default")
	}
	if merged.MaxSize != 8192 {
		t.Errorf("MaxSize = %d, want cli's %d to win", merged.MaxSize, 8192)
	}
	if !merged.Strict {
		t.Error("expected Strict to be true from cli")
	}
	if len(merged.Files) != 2 || merged.Files[0] != "a.md" || merged.Files[1] != "b.md" {
		t.Errorf("Files = %v, want [a.md b.md] in config-then-cli order", merged.Files)
	}
}

func TestMergeOptions_NilArgumentsAreSafe(t *testing.T) {
	merged := MergeOptions(nil, nil)
	if merged.Profile != "" || merged.MaxSize != 0 || len(merged.Files) != 0 {
		t.Errorf("expected a zero-value merge, got %+v", merged)
	}
}

func TestToOptions_OnlyEmitsSetFields(t *testing.T) {
	opts := (&FileOptions{MaxSize: 8192}).ToOptions()
	cfg, err := chunkconfig.New(opts...)
	if err != nil {
		t.Fatalf("chunkconfig.New: %v", err)
	}
	if cfg.MaxChunkSize != 8192 {
		t.Errorf("MaxChunkSize = %d, want 8192", cfg.MaxChunkSize)
	}
}

func TestToOptions_NilReceiverReturnsEmpty(t *testing.T) {
	var opts *FileOptions
	if got := opts.ToOptions(); len(got) != 0 {
		t.Errorf("expected no options from a nil receiver, got %d", len(got))
	}
}

func TestToOptions_RequireSummary(t *testing.T) {
	opts := (&FileOptions{RequireSummary: true}).ToOptions()
	cfg, err := chunkconfig.New(opts...)
	if err != nil {
		t.Fatalf("chunkconfig.New: %v", err)
	}
	if !cfg.RequireSummary {
		t.Error("expected RequireSummary to be true")
	}
}

func TestMergeOptions_HeadersCLIOverridesConfig(t *testing.T) {
	config := &FileOptions{Headers: []string{"author:Author"}}
	cli := &FileOptions{Headers: []string{"title!:Title"}}

	merged := MergeOptions(config, cli)
	if len(merged.Headers) != 1 || merged.Headers[0] != "title!:Title" {
		t.Errorf("Headers = %v, want cli's value to win wholesale", merged.Headers)
	}
}

func TestMergeOptions_HeadersFallsBackToConfig(t *testing.T) {
	config := &FileOptions{Headers: []string{"author:Author"}}
	merged := MergeOptions(config, &FileOptions{})
	if len(merged.Headers) != 1 || merged.Headers[0] != "author:Author" {
		t.Errorf("Headers = %v, want config's value preserved", merged.Headers)
	}
}

func TestToOptions_StrategyOverride(t *testing.T) {
	opts := (&FileOptions{Strategy: "structural"}).ToOptions()
	cfg, err := chunkconfig.New(opts...)
	if err != nil {
		t.Fatalf("chunkconfig.New: %v", err)
	}
	if cfg.StrategyOverride != chunkconfig.StrategyOverrideStructural {
		t.Errorf("StrategyOverride = %q, want %q", cfg.StrategyOverride, chunkconfig.StrategyOverrideStructural)
	}
}

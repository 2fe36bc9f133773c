package strategy

import (
	"context"
	"testing"

	"github.com/wyvernzora/mdchunk/pkg/analysis"
	"github.com/wyvernzora/mdchunk/pkg/chunkconfig"
	"github.com/wyvernzora/mdchunk/pkg/document"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
)

type fakeStrategy struct{ name string }

func (f fakeStrategy) Name() string { return f.name }
func (f fakeStrategy) Chunk(context.Context, *document.Document, *analysis.ContentAnalysis, *chunkconfig.Config) ([]mdchunk.Chunk, error) {
	return nil, nil
}

func registry() Registry {
	return Registry{
		mdchunk.StrategyCodeAware:  fakeStrategy{mdchunk.StrategyCodeAware},
		mdchunk.StrategyStructural: fakeStrategy{mdchunk.StrategyStructural},
		mdchunk.StrategyFallback:   fakeStrategy{mdchunk.StrategyFallback},
	}
}

func mustConfig(t *testing.T, opts ...chunkconfig.Option) *chunkconfig.Config {
	t.Helper()
	cfg, err := chunkconfig.New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return cfg
}

func TestSelect_Override(t *testing.T) {
	cfg := mustConfig(t, chunkconfig.WithStrategyOverride(chunkconfig.StrategyOverrideStructural))
	a := &analysis.ContentAnalysis{}
	s, err := Select(a, cfg, registry())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if s.Name() != mdchunk.StrategyStructural {
		t.Errorf("Name() = %q, want structural", s.Name())
	}
}

func TestSelect_CodeAware_ByRatio(t *testing.T) {
	cfg := mustConfig(t, chunkconfig.WithCodeThreshold(0.3))
	a := &analysis.ContentAnalysis{CodeRatio: 0.5}
	s, err := Select(a, cfg, registry())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if s.Name() != mdchunk.StrategyCodeAware {
		t.Errorf("Name() = %q, want code_aware", s.Name())
	}
}

func TestSelect_CodeAware_ByMixedCodeAndTable(t *testing.T) {
	cfg := mustConfig(t, chunkconfig.WithCodeThreshold(0.9))
	a := &analysis.ContentAnalysis{
		CodeRatio:    0.01,
		FencedBlocks: []analysis.FencedBlock{{}},
		Tables:       []analysis.Table{{}},
	}
	s, err := Select(a, cfg, registry())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if s.Name() != mdchunk.StrategyCodeAware {
		t.Errorf("Name() = %q, want code_aware", s.Name())
	}
}

func TestSelect_Structural(t *testing.T) {
	cfg := mustConfig(t, chunkconfig.WithStructureThreshold(3))
	a := &analysis.ContentAnalysis{HeaderCount: 5}
	s, err := Select(a, cfg, registry())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if s.Name() != mdchunk.StrategyStructural {
		t.Errorf("Name() = %q, want structural", s.Name())
	}
}

func TestSelect_Fallback(t *testing.T) {
	cfg := mustConfig(t)
	a := &analysis.ContentAnalysis{}
	s, err := Select(a, cfg, registry())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if s.Name() != mdchunk.StrategyFallback {
		t.Errorf("Name() = %q, want fallback", s.Name())
	}
}

func TestSelect_OverrideNotRegistered(t *testing.T) {
	cfg := mustConfig(t, chunkconfig.WithStrategyOverride(chunkconfig.StrategyOverrideCode))
	a := &analysis.ContentAnalysis{}
	if _, err := Select(a, cfg, Registry{}); err == nil {
		t.Error("expected error when overridden strategy is not registered")
	}
}

func TestSelect_CodeBeatsStructural(t *testing.T) {
	cfg := mustConfig(t, chunkconfig.WithCodeThreshold(0.3), chunkconfig.WithStructureThreshold(3))
	a := &analysis.ContentAnalysis{CodeRatio: 0.5, HeaderCount: 10}
	s, err := Select(a, cfg, registry())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if s.Name() != mdchunk.StrategyCodeAware {
		t.Errorf("first-match-wins: Name() = %q, want code_aware", s.Name())
	}
}

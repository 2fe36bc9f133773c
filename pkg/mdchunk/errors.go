package mdchunk

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when a caller-supplied cancellation signal fires
// mid-invocation. It propagates immediately and idempotently (spec §5, §7).
var ErrCancelled = errors.New("mdchunk: cancelled")

// ConfigError signals that a Config's invariants are still violated after
// auto-adjustment (spec §4.3).
type ConfigError struct {
	Field   string
	Reason  string
	wrapped error
}

func (e *ConfigError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("mdchunk: config error on %q: %s: %v", e.Field, e.Reason, e.wrapped)
	}
	return fmt.Sprintf("mdchunk: config error on %q: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.wrapped }

// NewConfigError builds a ConfigError.
func NewConfigError(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}

// InputError signals invalid UTF-8 or an I/O failure loading a file
// (spec §7); fatal, no fallback.
type InputError struct {
	Path    string
	wrapped error
}

func (e *InputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("mdchunk: input error for %q: %v", e.Path, e.wrapped)
	}
	return fmt.Sprintf("mdchunk: input error: %v", e.wrapped)
}

func (e *InputError) Unwrap() error { return e.wrapped }

// NewInputError wraps err as an InputError for the given path.
func NewInputError(path string, err error) *InputError {
	return &InputError{Path: path, wrapped: err}
}

// AnalyzerError signals a fatal content-analysis failure: malformed UTF-8
// (already caught by pkg/document) or an unbounded fenced block whose
// closing marker is never found while preserve_atomic_blocks is set
// (spec §4.2).
type AnalyzerError struct {
	Reason    string
	StartLine int
}

func (e *AnalyzerError) Error() string {
	return fmt.Sprintf("mdchunk: analyzer error at line %d: %s", e.StartLine, e.Reason)
}

// NewAnalyzerError builds an AnalyzerError.
func NewAnalyzerError(startLine int, reason string) *AnalyzerError {
	return &AnalyzerError{Reason: reason, StartLine: startLine}
}

// OversizeError signals that an atomic block exceeds max_chunk_size while
// allow_oversize is false (spec §4.5, §7).
type OversizeError struct {
	StartLine, EndLine int
	Size, MaxSize      int
	Reason             string
}

func (e *OversizeError) Error() string {
	return fmt.Sprintf("mdchunk: oversize block at lines %d-%d: size %d exceeds max %d (%s)",
		e.StartLine, e.EndLine, e.Size, e.MaxSize, e.Reason)
}

// NewOversizeError builds an OversizeError.
func NewOversizeError(startLine, endLine, size, maxSize int, reason string) *OversizeError {
	return &OversizeError{StartLine: startLine, EndLine: endLine, Size: size, MaxSize: maxSize, Reason: reason}
}

// StrategyError signals a strategy-specific, non-fatal failure that should
// trigger fallback per the propagation policy in spec §7.
type StrategyError struct {
	Strategy string
	wrapped  error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("mdchunk: strategy %q failed: %v", e.Strategy, e.wrapped)
}

func (e *StrategyError) Unwrap() error { return e.wrapped }

// NewStrategyError wraps err as a StrategyError for the named strategy.
func NewStrategyError(strategy string, err error) *StrategyError {
	return &StrategyError{Strategy: strategy, wrapped: err}
}

// ValidationErrorKind enumerates the ValidationError subkinds from spec §7.
type ValidationErrorKind string

const (
	DataLossError           ValidationErrorKind = "DataLossError"
	MonotonicOrderingError  ValidationErrorKind = "MonotonicOrderingError"
	EmptyChunkError         ValidationErrorKind = "EmptyChunkError"
	FenceImbalanceError     ValidationErrorKind = "FenceImbalanceError"
	LineRangeError          ValidationErrorKind = "LineRangeError"
	IncompleteCoverageError ValidationErrorKind = "IncompleteCoverageError"
)

// ValidationError carries a structured context: the offending chunk index,
// its line range, and the violated invariant (spec §7).
type ValidationError struct {
	Kind       ValidationErrorKind
	ChunkIndex int
	StartLine  int
	EndLine    int
	Message    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("mdchunk: validation error %s at chunk %d (lines %d-%d): %s",
		e.Kind, e.ChunkIndex, e.StartLine, e.EndLine, e.Message)
}

// NewValidationError builds a ValidationError.
func NewValidationError(kind ValidationErrorKind, chunkIndex, startLine, endLine int, message string) *ValidationError {
	return &ValidationError{Kind: kind, ChunkIndex: chunkIndex, StartLine: startLine, EndLine: endLine, Message: message}
}

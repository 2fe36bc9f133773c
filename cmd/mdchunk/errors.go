package main

import (
	"errors"

	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
)

// validationFailure reports that --strict validation rejected a file's
// chunks; it carries the ValidationResult so callers could inspect it, but
// main only needs its exit code classification.
type validationFailure struct {
	path   string
	result *mdchunk.ValidationResult
}

func (e *validationFailure) Error() string {
	return "validation failed for " + e.path
}

// exitCode maps an error returned from a command's Run() to the process
// exit code documented for the CLI: 0 success, 1 validation failure,
// 2 configuration error, 3 input error, 4 cancelled.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var vf *validationFailure
	if errors.As(err, &vf) {
		return 1
	}

	var cfgErr *mdchunk.ConfigError
	if errors.As(err, &cfgErr) {
		return 2
	}

	var inputErr *mdchunk.InputError
	if errors.As(err, &inputErr) {
		return 3
	}

	if errors.Is(err, mdchunk.ErrCancelled) {
		return 4
	}

	return 1
}

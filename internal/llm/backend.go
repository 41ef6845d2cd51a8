// Package llm defines the uniform streaming backend contract and its two
// implementations (Gemini and OpenAI). A backend either streams real
// tokens or re-chunks a complete response; callers cannot tell the
// difference and must not need to.
package llm

import (
	"context"
	"errors"

	"github.com/blackwell-systems/readmegen/internal/prompt"
)

// Error taxonomy. The orchestrator advances through its candidate list on
// transient errors and stops immediately on ErrAuth.
var (
	// ErrRateLimited marks a rate-limit rejection.
	ErrRateLimited = errors.New("llm: rate limited")

	// ErrUnavailable marks a model-unavailable or server-side failure.
	ErrUnavailable = errors.New("llm: model unavailable")

	// ErrEmptyResponse marks a well-formed response with no usable text.
	ErrEmptyResponse = errors.New("llm: empty response")

	// ErrAuth marks an invalid-credential failure. Fatal, never retried.
	ErrAuth = errors.New("llm: authentication failed")

	// ErrNoCredential marks a backend constructed without a credential.
	ErrNoCredential = errors.New("llm: no credential configured")
)

// TokenFunc receives one streamed fragment. Fragments arrive in order and
// concatenate to the full document.
type TokenFunc func(fragment string)

// Backend is one external text-generation provider.
type Backend interface {
	// Name identifies the provider for logs and run records.
	Name() string

	// Generate executes the compiled prompt against the given model,
	// invoking onToken zero or more times, and returns the complete text.
	Generate(ctx context.Context, model string, p prompt.Compiled, onToken TokenFunc) (string, error)
}

// Transient reports whether the orchestrator should advance to the next
// candidate after this error.
func Transient(err error) bool {
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrEmptyResponse)
}

// Fatal reports whether the error ends the whole generation attempt.
func Fatal(err error) bool {
	return errors.Is(err, ErrAuth)
}

// Package generate drives prompt execution against an ordered list of
// backend candidates, with offline fallback when no credential is
// configured or every candidate is exhausted.
package generate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blackwell-systems/readmegen/internal/llm"
	"github.com/blackwell-systems/readmegen/internal/prompt"
)

// Candidate is one backend/model pair in the fallback order.
type Candidate struct {
	Backend llm.Backend
	Model   string
}

// Callbacks is the streaming delivery protocol: OnToken zero or more
// times in order, then exactly one terminal OnComplete or OnError. The
// exhaustion path is the one exception: OnError fires with the final
// failure and OnComplete still follows with offline content, so the
// caller always ends with a usable document.
type Callbacks struct {
	OnToken    func(fragment string)
	OnComplete func(full string)
	OnError    func(err error)
}

// Outcome reports what a Generate call did, for run logging.
type Outcome struct {
	// Backend and Model identify the candidate that produced the text;
	// empty when the offline generator did.
	Backend string
	Model   string

	// Offline is true when the returned document came from the offline
	// generator.
	Offline bool

	// Text is the final document.
	Text string
}

const (
	// maxNetworkRetries bounds connection-failure retries per candidate.
	maxNetworkRetries = 2

	// retryBaseBackoff is the first backoff interval; it doubles per retry.
	retryBaseBackoff = 500 * time.Millisecond
)

// Orchestrator executes compiled prompts. The candidate cursor lives only
// for the duration of one Generate call; no state crosses calls.
type Orchestrator struct {
	candidates []Candidate

	// offline supplies the deterministic fallback document.
	offline func() string

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// NewOrchestrator builds an orchestrator over the given candidates.
// candidates may be empty, in which case every Generate call answers with
// offline content.
func NewOrchestrator(candidates []Candidate, offline func() string) *Orchestrator {
	return &Orchestrator{
		candidates: candidates,
		offline:    offline,
		sleep:      time.Sleep,
	}
}

// Generate runs the prompt through the candidate list and delivers the
// result through cb. It always reaches a terminal callback.
func (o *Orchestrator) Generate(ctx context.Context, p prompt.Compiled, cb Callbacks) Outcome {
	// No credential configured: offline content is the expected result,
	// not an error.
	if len(o.candidates) == 0 {
		text := o.offline()
		if cb.OnComplete != nil {
			cb.OnComplete(text)
		}
		return Outcome{Offline: true, Text: text}
	}

	var lastErr error
	for _, cand := range o.candidates {
		text, err := o.attempt(ctx, cand, p, cb.OnToken)
		if err == nil {
			if cb.OnComplete != nil {
				cb.OnComplete(text)
			}
			return Outcome{Backend: cand.Backend.Name(), Model: cand.Model, Text: text}
		}
		if llm.Fatal(err) {
			if cb.OnError != nil {
				cb.OnError(err)
			}
			return Outcome{Backend: cand.Backend.Name(), Model: cand.Model, Text: ""}
		}
		lastErr = err
	}

	// Every candidate exhausted: surface the failure, then still deliver
	// offline content so the caller is never left without a document.
	err := fmt.Errorf("all generation backends exhausted: %w", lastErr)
	if cb.OnError != nil {
		cb.OnError(err)
	}
	text := o.offline()
	if cb.OnComplete != nil {
		cb.OnComplete(text)
	}
	return Outcome{Offline: true, Text: text}
}

// GenerateStrict runs the prompt through the candidate list with no
// offline fallback. It is used for operations that only make sense
// against a real backend, such as section regeneration and refinement.
func (o *Orchestrator) GenerateStrict(ctx context.Context, p prompt.Compiled, onToken llm.TokenFunc) (Outcome, error) {
	if len(o.candidates) == 0 {
		return Outcome{}, llm.ErrNoCredential
	}

	var lastErr error
	for _, cand := range o.candidates {
		text, err := o.attempt(ctx, cand, p, onToken)
		if err == nil {
			return Outcome{Backend: cand.Backend.Name(), Model: cand.Model, Text: text}, nil
		}
		if llm.Fatal(err) {
			return Outcome{}, err
		}
		lastErr = err
	}
	return Outcome{}, fmt.Errorf("all generation backends exhausted: %w", lastErr)
}

// attempt runs one candidate, retrying connection-level failures with
// exponential backoff. Classified backend errors pass straight through.
func (o *Orchestrator) attempt(ctx context.Context, cand Candidate, p prompt.Compiled, onToken llm.TokenFunc) (string, error) {
	var lastErr error
	for retry := 0; retry <= maxNetworkRetries; retry++ {
		if retry > 0 {
			o.sleep(retryBaseBackoff << (retry - 1))
		}
		text, err := cand.Backend.Generate(ctx, cand.Model, p, onToken)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if llm.Transient(err) || llm.Fatal(err) || errors.Is(err, context.Canceled) {
			return "", err
		}
		// Anything else is treated as a connection-level failure and
		// retried.
	}
	return "", lastErr
}

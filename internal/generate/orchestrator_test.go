package generate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/readmegen/internal/llm"
	"github.com/blackwell-systems/readmegen/internal/prompt"
)

// fakeBackend scripts one response per call: text on success, err otherwise.
type fakeBackend struct {
	name  string
	text  string
	err   error
	calls int
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Generate(ctx context.Context, model string, p prompt.Compiled, onToken llm.TokenFunc) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if onToken != nil {
		for _, word := range strings.SplitAfter(f.text, " ") {
			onToken(word)
		}
	}
	return f.text, nil
}

func testOrchestrator(offline string, candidates ...Candidate) *Orchestrator {
	o := NewOrchestrator(candidates, func() string { return offline })
	o.sleep = func(time.Duration) {}
	return o
}

func collectCallbacks() (Callbacks, *[]string, *string, *error) {
	var tokens []string
	var complete string
	var cbErr error
	cb := Callbacks{
		OnToken:    func(fragment string) { tokens = append(tokens, fragment) },
		OnComplete: func(full string) { complete = full },
		OnError:    func(err error) { cbErr = err },
	}
	return cb, &tokens, &complete, &cbErr
}

// --- no candidates ---

func TestGenerate_NoCandidatesIsOfflineNotError(t *testing.T) {
	o := testOrchestrator("offline doc")
	cb, tokens, complete, cbErr := collectCallbacks()

	outcome := o.Generate(context.Background(), prompt.Compiled{}, cb)

	assert.True(t, outcome.Offline)
	assert.Equal(t, "offline doc", outcome.Text)
	assert.Equal(t, "offline doc", *complete)
	assert.NoError(t, *cbErr, "missing credential is not an error condition")
	assert.Empty(t, *tokens)
}

// --- success paths ---

func TestGenerate_FirstCandidateSucceeds(t *testing.T) {
	b := &fakeBackend{name: "gemini", text: "# Doc\n\nGenerated."}
	o := testOrchestrator("offline", Candidate{Backend: b, Model: "gemini-2.0-flash"})
	cb, tokens, complete, cbErr := collectCallbacks()

	outcome := o.Generate(context.Background(), prompt.Compiled{}, cb)

	require.NoError(t, *cbErr)
	assert.False(t, outcome.Offline)
	assert.Equal(t, "gemini", outcome.Backend)
	assert.Equal(t, "gemini-2.0-flash", outcome.Model)
	assert.Equal(t, b.text, outcome.Text)
	assert.Equal(t, b.text, *complete)
	assert.Equal(t, b.text, strings.Join(*tokens, ""), "tokens must concatenate to the full text")
}

func TestGenerate_AdvancesPastTransientFailure(t *testing.T) {
	limited := &fakeBackend{name: "gemini", err: llm.ErrRateLimited}
	healthy := &fakeBackend{name: "openai", text: "fallback doc"}
	o := testOrchestrator("offline",
		Candidate{Backend: limited, Model: "gemini-2.0-flash"},
		Candidate{Backend: healthy, Model: "gpt-4o-mini"},
	)
	cb, _, complete, cbErr := collectCallbacks()

	outcome := o.Generate(context.Background(), prompt.Compiled{}, cb)

	require.NoError(t, *cbErr)
	assert.Equal(t, "openai", outcome.Backend)
	assert.Equal(t, "fallback doc", *complete)
	assert.Equal(t, 1, limited.calls, "transient errors must not be retried on the same candidate")
}

// --- exhaustion ---

func TestGenerate_ExhaustionDeliversErrorThenOffline(t *testing.T) {
	a := &fakeBackend{name: "gemini", err: llm.ErrUnavailable}
	b := &fakeBackend{name: "openai", err: llm.ErrRateLimited}
	o := testOrchestrator("offline skeleton",
		Candidate{Backend: a, Model: "m1"},
		Candidate{Backend: b, Model: "m2"},
	)
	cb, _, complete, cbErr := collectCallbacks()

	outcome := o.Generate(context.Background(), prompt.Compiled{}, cb)

	require.Error(t, *cbErr)
	assert.ErrorIs(t, *cbErr, llm.ErrRateLimited, "exhaustion error wraps the last failure")
	assert.True(t, outcome.Offline)
	assert.Equal(t, "offline skeleton", *complete, "caller still ends with a document")
}

// --- fatal errors ---

func TestGenerate_AuthFailureStopsImmediately(t *testing.T) {
	bad := &fakeBackend{name: "gemini", err: llm.ErrAuth}
	never := &fakeBackend{name: "openai", text: "should not run"}
	o := testOrchestrator("offline",
		Candidate{Backend: bad, Model: "m1"},
		Candidate{Backend: never, Model: "m2"},
	)
	cb, _, complete, cbErr := collectCallbacks()

	outcome := o.Generate(context.Background(), prompt.Compiled{}, cb)

	assert.ErrorIs(t, *cbErr, llm.ErrAuth)
	assert.Empty(t, *complete, "no document after a fatal failure")
	assert.Empty(t, outcome.Text)
	assert.Equal(t, 1, bad.calls, "auth failures are never retried")
	assert.Equal(t, 0, never.calls, "no candidate advancement after auth failure")
}

// --- connection retries ---

// flakyBackend fails with an unclassified error until failures runs out.
type flakyBackend struct {
	failures int
	calls    int
}

func (f *flakyBackend) Name() string { return "flaky" }

func (f *flakyBackend) Generate(ctx context.Context, model string, p prompt.Compiled, onToken llm.TokenFunc) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("connection reset")
	}
	return "recovered", nil
}

func TestGenerate_RetriesConnectionErrorsWithBackoff(t *testing.T) {
	b := &flakyBackend{failures: 2}
	o := NewOrchestrator([]Candidate{{Backend: b, Model: "m"}}, func() string { return "offline" })
	var slept []time.Duration
	o.sleep = func(d time.Duration) { slept = append(slept, d) }
	cb, _, complete, cbErr := collectCallbacks()

	outcome := o.Generate(context.Background(), prompt.Compiled{}, cb)

	require.NoError(t, *cbErr)
	assert.Equal(t, "recovered", *complete)
	assert.False(t, outcome.Offline)
	assert.Equal(t, 3, b.calls)
	assert.Equal(t, []time.Duration{retryBaseBackoff, retryBaseBackoff * 2}, slept)
}

func TestGenerate_ConnectionRetriesAreBounded(t *testing.T) {
	b := &flakyBackend{failures: 100}
	o := testOrchestrator("offline", Candidate{Backend: b, Model: "m"})
	cb, _, _, cbErr := collectCallbacks()

	o.Generate(context.Background(), prompt.Compiled{}, cb)

	assert.Error(t, *cbErr)
	assert.Equal(t, 1+maxNetworkRetries, b.calls)
}

func TestGenerate_ContextCancellationPassesThrough(t *testing.T) {
	b := &fakeBackend{name: "gemini", err: context.Canceled}
	o := testOrchestrator("offline", Candidate{Backend: b, Model: "m"})
	cb, _, _, _ := collectCallbacks()

	o.Generate(context.Background(), prompt.Compiled{}, cb)

	assert.Equal(t, 1, b.calls, "cancellation must not be retried")
}

// --- GenerateStrict ---

func TestGenerateStrict_NoCandidatesIsError(t *testing.T) {
	o := testOrchestrator("offline")
	_, err := o.GenerateStrict(context.Background(), prompt.Compiled{}, nil)
	assert.ErrorIs(t, err, llm.ErrNoCredential)
}

func TestGenerateStrict_NoOfflineFallbackOnExhaustion(t *testing.T) {
	b := &fakeBackend{name: "gemini", err: llm.ErrUnavailable}
	o := testOrchestrator("offline", Candidate{Backend: b, Model: "m"})

	outcome, err := o.GenerateStrict(context.Background(), prompt.Compiled{}, nil)

	assert.ErrorIs(t, err, llm.ErrUnavailable)
	assert.Empty(t, outcome.Text)
}

func TestGenerateStrict_Success(t *testing.T) {
	b := &fakeBackend{name: "openai", text: "strict result"}
	o := testOrchestrator("offline", Candidate{Backend: b, Model: "gpt-4o-mini"})

	var streamed strings.Builder
	outcome, err := o.GenerateStrict(context.Background(), prompt.Compiled{}, func(fragment string) {
		streamed.WriteString(fragment)
	})

	require.NoError(t, err)
	assert.Equal(t, "strict result", outcome.Text)
	assert.Equal(t, "strict result", streamed.String())
}

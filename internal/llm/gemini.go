package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	genai "google.golang.org/genai"

	"github.com/blackwell-systems/readmegen/internal/prompt"
)

// chunkWords is how many words each simulated stream fragment carries.
const chunkWords = 4

// chunkDelay paces simulated fragments so downstream rendering looks
// incremental. Zeroed in tests.
var chunkDelay = 25 * time.Millisecond

// GeminiBackend wraps the official genai client. The Gemini call returns a
// complete response; Generate re-chunks it into word groups so it presents
// the same streaming surface as a true token stream.
type GeminiBackend struct {
	cli *genai.Client
}

// NewGeminiBackend creates a backend from an API key.
func NewGeminiBackend(ctx context.Context, apiKey string) (*GeminiBackend, error) {
	if apiKey == "" {
		return nil, ErrNoCredential
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiBackend{cli: cli}, nil
}

// Name implements Backend.
func (g *GeminiBackend) Name() string { return "gemini" }

// Generate implements Backend.
func (g *GeminiBackend) Generate(ctx context.Context, model string, p prompt.Compiled, onToken TokenFunc) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: p.User}}}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: p.System}}},
		},
	)
	if err != nil {
		return "", classifyGeminiError(err)
	}
	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	streamChunks(ctx, text, onToken)
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// streamChunks delivers text as word-group fragments. This is the
// simulated half of the streaming contract; consumers see the same
// onToken sequence either way.
func streamChunks(ctx context.Context, text string, onToken TokenFunc) {
	if onToken == nil {
		return
	}
	words := strings.SplitAfter(text, " ")
	for i := 0; i < len(words); i += chunkWords {
		end := i + chunkWords
		if end > len(words) {
			end = len(words)
		}
		onToken(strings.Join(words[i:end], ""))
		if chunkDelay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(chunkDelay):
			}
		}
	}
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return fmt.Errorf("%w: %s", ErrAuth, apiErr.Message)
		case 429:
			return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Message)
		case 404, 500, 503:
			return fmt.Errorf("%w: %s", ErrUnavailable, apiErr.Message)
		}
	}
	return err
}

package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/blackwell-systems/readmegen/internal/classify"
	"github.com/blackwell-systems/readmegen/internal/config"
	"github.com/blackwell-systems/readmegen/internal/detect"
	"github.com/blackwell-systems/readmegen/internal/generate"
	"github.com/blackwell-systems/readmegen/internal/llm"
	"github.com/blackwell-systems/readmegen/internal/output"
	"github.com/blackwell-systems/readmegen/internal/scanner"
	"github.com/blackwell-systems/readmegen/internal/store"
)

// loadConfig loads configuration and applies the color flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagNoColor || !cfg.Output.Color || !output.StdoutIsTTY() {
		output.SetNoColor(true)
	}
	return cfg, nil
}

// resolveRoot picks the project root from the optional positional argument.
func resolveRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// analyzeProject scans the root and runs detection and classification.
func analyzeProject(cfg *config.Config, root string) (*scanner.ProjectInfo, detect.Result, classify.Result, error) {
	info, err := scanner.Scan(root, scanner.Options{
		MaxDepth:    cfg.Scan.MaxDepth,
		MaxFiles:    cfg.Scan.MaxFiles,
		ExcludeDirs: cfg.Scan.ExcludeDirs,
	})
	if err != nil {
		return nil, detect.Result{}, classify.Result{}, fmt.Errorf("scanning %s: %w", root, err)
	}
	det := detect.Detect(info)
	cls := classify.Classify(info, det)
	return info, det, cls, nil
}

// buildCandidates assembles the backend fallback list from configured
// models and whichever credentials are present in the environment. An
// empty list means offline generation.
func buildCandidates(ctx context.Context, cfg *config.Config) []generate.Candidate {
	var candidates []generate.Candidate

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		backend, err := llm.NewGeminiBackend(ctx, key)
		if err == nil {
			for _, model := range cfg.Models.Gemini {
				candidates = append(candidates, generate.Candidate{Backend: backend, Model: model})
			}
		} else if flagVerbose {
			fmt.Fprintln(os.Stderr, "gemini backend unavailable:", err)
		}
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		backend, err := llm.NewOpenAIBackend(key)
		if err == nil {
			for _, model := range cfg.Models.OpenAI {
				candidates = append(candidates, generate.Candidate{Backend: backend, Model: model})
			}
		} else if flagVerbose {
			fmt.Fprintln(os.Stderr, "openai backend unavailable:", err)
		}
	}

	return candidates
}

// recordRun logs one generation run. Run-log failures never fail the
// generation; the live document write is the user-visible success signal.
func recordRun(project, command, tmplID string, outcome generate.Outcome, started time.Time, versionID string) {
	db, err := store.Open(config.DBPath())
	if err != nil {
		if flagVerbose {
			fmt.Fprintln(os.Stderr, "run log unavailable:", err)
		}
		return
	}
	defer func() { _ = db.Close() }()

	_, err = db.InsertRun(&store.Run{
		TakenAt:    started,
		Project:    project,
		Command:    command,
		Template:   tmplID,
		Backend:    outcome.Backend,
		Model:      outcome.Model,
		Offline:    outcome.Offline,
		DurationMs: time.Since(started).Milliseconds(),
		OutputSize: len(outcome.Text),
		VersionID:  versionID,
	})
	if err != nil && flagVerbose {
		fmt.Fprintln(os.Stderr, "recording run:", err)
	}
}

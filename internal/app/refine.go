package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readmegen/internal/generate"
	"github.com/blackwell-systems/readmegen/internal/history"
	"github.com/blackwell-systems/readmegen/internal/llm"
	"github.com/blackwell-systems/readmegen/internal/output"
	"github.com/blackwell-systems/readmegen/internal/prompt"
)

var refineCmd = &cobra.Command{
	Use:   "refine <instruction> [path]",
	Short: "Apply a natural-language edit to the README",
	Long: `Apply one free-text change to the existing README.md, for example
"shorten the overview to two sentences" or "add a Docker usage example".
Text unrelated to the instruction is preserved unchanged. Requires a
configured API key.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRefine,
}

func init() {
	rootCmd.AddCommand(refineCmd)
}

func runRefine(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	instruction := args[0]
	root := resolveRoot(args[1:])

	livePath := filepath.Join(root, "README.md")
	currentBytes, err := os.ReadFile(livePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no README.md at %s; run 'readmegen generate' first", root)
		}
		return err
	}
	current := string(currentBytes)

	ctx := cmd.Context()
	candidates := buildCandidates(ctx, cfg)
	if len(candidates) == 0 {
		return errors.New("refinement needs an API key; set GEMINI_API_KEY or OPENAI_API_KEY")
	}

	compiled := prompt.CompileRefinement(instruction, current)

	started := time.Now()
	streaming := output.StdoutIsTTY()
	orch := generate.NewOrchestrator(candidates, nil)
	outcome, err := orch.GenerateStrict(ctx, compiled, func(fragment string) {
		if streaming {
			fmt.Print(fragment)
		}
	})
	if streaming {
		fmt.Println()
	}
	if err != nil {
		if errors.Is(err, llm.ErrAuth) {
			return fmt.Errorf("backend rejected the API key: %w", err)
		}
		return err
	}

	versionID := ""
	store := history.NewStore(root)
	if v, err := store.Save(outcome.Text); err == nil {
		versionID = v.ID
	} else {
		fmt.Fprintln(os.Stderr, output.StyleWarning.Render("saving version:"), err)
	}

	if err := os.WriteFile(livePath, []byte(outcome.Text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", livePath, err)
	}

	project := filepath.Base(root)
	if abs, err := filepath.Abs(root); err == nil {
		project = filepath.Base(abs)
	}
	recordRun(project, "refine", "", outcome, started, versionID)

	fmt.Println(output.StyleSuccess.Render("✓"), "refined", livePath)
	return nil
}

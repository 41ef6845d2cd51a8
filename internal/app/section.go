package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readmegen/internal/generate"
	"github.com/blackwell-systems/readmegen/internal/history"
	"github.com/blackwell-systems/readmegen/internal/llm"
	"github.com/blackwell-systems/readmegen/internal/output"
	"github.com/blackwell-systems/readmegen/internal/prompt"
	"github.com/blackwell-systems/readmegen/internal/template"
)

var flagSectionInstructions string

var sectionCmd = &cobra.Command{
	Use:   "section <section-id> [path]",
	Short: "Regenerate a single README section",
	Long: `Regenerate one section of the existing README.md in place. The rest of
the document is preserved byte-for-byte. Requires a configured API key;
there is no offline path for section regeneration. Section ids are
listed by 'readmegen templates'.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSection,
}

func init() {
	sectionCmd.Flags().StringVarP(&flagSectionInstructions, "instructions", "i", "", "Extra guidance for the rewritten section")
	rootCmd.AddCommand(sectionCmd)
}

func runSection(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	section := template.FindSection(args[0])
	if section == nil {
		return fmt.Errorf("unknown section %q (see 'readmegen templates')", args[0])
	}
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
		return errors.New("section regeneration needs an API key; set GEMINI_API_KEY or OPENAI_API_KEY")
	}

	info, det, cls, err := analyzeProject(cfg, root)
	if err != nil {
		return err
	}

	compiled := prompt.CompileSection(*section, info, det, cls, current, flagSectionInstructions)

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

	updated := spliceSection(current, section.Name, strings.TrimSpace(outcome.Text))

	versionID := ""
	store := history.NewStore(root)
	if v, err := store.Save(updated); err == nil {
		versionID = v.ID
	} else {
		fmt.Fprintln(os.Stderr, output.StyleWarning.Render("saving version:"), err)
	}

	if err := os.WriteFile(livePath, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", livePath, err)
	}

	recordRun(info.Name, "section", "", outcome, started, versionID)

	fmt.Println(output.StyleSuccess.Render("✓"), "updated section", output.StyleBold.Render(section.Name), "in", livePath)
	return nil
}

// spliceSection replaces the named H2 section of a markdown document with
// replacement, which must carry its own heading. The section spans from
// its "## <name>" line to the next "## " line or end of document. A
// missing section is appended at the end.
func spliceSection(doc, name, replacement string) string {
	lines := strings.Split(doc, "\n")
	heading := "## " + name

	start := -1
	for i, line := range lines {
		if strings.EqualFold(strings.TrimSpace(line), heading) {
			start = i
			break
		}
	}
	if start == -1 {
		trimmed := strings.TrimRight(doc, "\n")
		return trimmed + "\n\n" + replacement + "\n"
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "## ") {
			end = i
			break
		}
	}

	var out []string
	out = append(out, lines[:start]...)
	out = append(out, strings.Split(replacement, "\n")...)
	if end < len(lines) {
		out = append(out, "")
		out = append(out, lines[end:]...)
	} else {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

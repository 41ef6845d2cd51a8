package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readmegen/internal/generate"
	"github.com/blackwell-systems/readmegen/internal/history"
	"github.com/blackwell-systems/readmegen/internal/output"
	"github.com/blackwell-systems/readmegen/internal/prompt"
	"github.com/blackwell-systems/readmegen/internal/template"
)

var (
	flagTemplate     string
	flagSections     []string
	flagLanguage     string
	flagTone         string
	flagBadges       bool
	flagCustomBadges string
	flagInstructions string
	flagDryRun       bool
	flagOffline      bool
	flagStdout       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Scan the project and draft a README",
	Long: `Scan the project directory, detect its technologies, and generate a
README.md using the configured backend. The previous result is stored in
the local version history before the live file is replaced. With no API
key configured, a deterministic offline README is produced instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&flagTemplate, "template", "t", "", "Document template (standard, minimal, detailed, open-source)")
	generateCmd.Flags().StringSliceVar(&flagSections, "sections", nil, "Explicit section ids to include (default: template's)")
	generateCmd.Flags().StringVarP(&flagLanguage, "language", "l", "", "Target language code (en, es, fr, de, ja, zh, pt, ru, ko)")
	generateCmd.Flags().StringVar(&flagTone, "tone", "", "Writing tone (professional, friendly, technical, casual)")
	generateCmd.Flags().BoolVar(&flagBadges, "badges", true, "Embed synthesized technology badges")
	generateCmd.Flags().StringVar(&flagCustomBadges, "custom-badges", "", "Additional badge markdown included verbatim")
	generateCmd.Flags().StringVarP(&flagInstructions, "instructions", "i", "", "Extra free-text guidance for the generator")
	generateCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the compiled prompt instead of generating")
	generateCmd.Flags().BoolVar(&flagOffline, "offline", false, "Skip backends and build the deterministic offline README")
	generateCmd.Flags().BoolVar(&flagStdout, "stdout", false, "Print the document instead of writing README.md")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	root := resolveRoot(args)

	info, det, cls, err := analyzeProject(cfg, root)
	if err != nil {
		return err
	}

	tmplID := flagTemplate
	if tmplID == "" {
		tmplID = cfg.Generation.Template
	}
	tmpl := template.Get(tmplID)
	if tmpl == nil {
		return fmt.Errorf("unknown template %q (see 'readmegen templates')", tmplID)
	}

	opts := prompt.Options{
		TemplateID:    tmplID,
		Sections:      flagSections,
		Language:      pick(flagLanguage, cfg.Generation.Language),
		Tone:          pick(flagTone, cfg.Generation.Tone),
		Instructions:  flagInstructions,
		IncludeBadges: flagBadges && cfg.Generation.IncludeBadges,
		CustomBadges:  flagCustomBadges,
	}
	compiled := prompt.CompileGeneration(info, det, cls, tmpl, opts)

	if flagDryRun {
		fmt.Println(output.StyleHeader.Render("System instruction"))
		fmt.Println(compiled.System)
		fmt.Println(output.StyleHeader.Render("User instruction"))
		fmt.Println(compiled.User)
		return nil
	}

	ctx := cmd.Context()
	var candidates []generate.Candidate
	if !flagOffline {
		candidates = buildCandidates(ctx, cfg)
	}
	orch := generate.NewOrchestrator(candidates, func() string {
		return generate.OfflineDocument(info, det, cls, opts.IncludeBadges)
	})

	streaming := !flagStdout && output.StdoutIsTTY()
	started := time.Now()
	var genErr error
	outcome := orch.Generate(ctx, compiled, generate.Callbacks{
		OnToken: func(fragment string) {
			if streaming {
				fmt.Print(fragment)
			}
		},
		OnError: func(err error) {
			genErr = err
		},
	})
	if streaming && !outcome.Offline {
		fmt.Println()
	}

	if outcome.Text == "" {
		// Fatal backend failure with no fallback document.
		return genErr
	}
	if genErr != nil {
		fmt.Fprintln(os.Stderr, output.StyleWarning.Render("generation failed, using offline document:"), genErr)
	}

	if flagStdout {
		fmt.Print(outcome.Text)
		return nil
	}

	versionID := ""
	store := history.NewStore(root)
	if v, err := store.Save(outcome.Text); err == nil {
		versionID = v.ID
	} else {
		fmt.Fprintln(os.Stderr, output.StyleWarning.Render("saving version:"), err)
	}

	livePath := filepath.Join(root, "README.md")
	if err := os.WriteFile(livePath, []byte(outcome.Text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", livePath, err)
	}

	recordRun(info.Name, "generate", tmplID, outcome, started, versionID)

	source := outcome.Backend
	if outcome.Offline {
		source = "offline"
	}
	fmt.Println(output.StyleSuccess.Render("✓"), "wrote", livePath,
		output.StyleMuted.Render(fmt.Sprintf("(%s, %d bytes)", source, len(outcome.Text))))
	return nil
}

// pick returns the first non-empty value.
func pick(flag, cfg string) string {
	if flag != "" {
		return flag
	}
	return cfg
}

package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readmegen/internal/badge"
	"github.com/blackwell-systems/readmegen/internal/output"
)

var flagScanBadges bool

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Show detected technologies and project type",
	Long: `Scan the project directory and print what would feed a generation:
languages, frameworks, package manager, build and test tooling, and the
classified project type. Nothing is generated or written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&flagScanBadges, "badges", false, "Also print the synthesized badge markdown")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	root := resolveRoot(args)

	info, det, cls, err := analyzeProject(cfg, root)
	if err != nil {
		return err
	}

	if flagJSON {
		payload := map[string]any{
			"project":        info.Name,
			"file_count":     info.FileCount,
			"has_readme":     info.HasReadme,
			"detection":      det,
			"classification": cls,
		}
		if flagScanBadges {
			payload["badges"] = badge.Synthesize(info, det)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	fmt.Println(output.StyleHeader.Render("Project"))
	fmt.Printf("  %s  %s\n", output.StyleBold.Render(info.Name),
		output.StyleMuted.Render(fmt.Sprintf("(%d files scanned)", info.FileCount)))
	fmt.Printf("  %s  %s\n", cls.Label, output.ConfidenceBar(cls.Confidence, 10))
	fmt.Printf("  %s\n", output.StyleMuted.Render(cls.Reason))
	fmt.Println()

	if len(det.Languages) > 0 {
		fmt.Println(output.StyleHeader.Render("Languages"))
		t := output.NewTable("Language", "Files", "Share")
		for _, l := range det.Languages {
			t.AddRow(l.Name, fmt.Sprintf("%d", l.FileCount), fmt.Sprintf("%.1f%%", l.Percentage))
		}
		t.Print()
		fmt.Println()
	}

	if len(det.Frameworks) > 0 {
		fmt.Println(output.StyleHeader.Render("Frameworks"))
		t := output.NewTable("Framework", "Category", "Confidence")
		for _, f := range det.Frameworks {
			t.AddRow(f.Name, f.Category, output.ConfidenceBar(f.Confidence, 10))
		}
		t.Print()
		fmt.Println()
	}

	fmt.Println(output.StyleHeader.Render("Tooling"))
	t := output.NewTable("Kind", "Detected")
	t.AddRow("Package manager", orDash(det.PackageManager))
	t.AddRow("Build tools", orDash(strings.Join(det.BuildTools, ", ")))
	t.AddRow("Test frameworks", orDash(strings.Join(det.TestFrameworks, ", ")))
	t.Print()

	if flagScanBadges {
		badges := badge.Synthesize(info, det)
		if len(badges) > 0 {
			fmt.Println()
			fmt.Println(output.StyleHeader.Render("Badges"))
			fmt.Println(badge.Markdown(badges))
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

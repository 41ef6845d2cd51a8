// Package app contains the Cobra command tree for readmegen.
package app

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "readmegen",
	Short: "Generate and maintain README files from workspace analysis",
	Long: `readmegen scans a project directory, detects its languages, frameworks,
and tooling, classifies the project's shape, and drafts a README with an
external generation backend. Every generated document lands in a local
version history with rollback. Without an API key, readmegen still
produces a deterministic offline README from the scan alone.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Credentials may live in a .env next to the working directory.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("readmegen", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  generate   Scan the project and draft a README")
		fmt.Println("  scan       Show detected technologies and project type")
		fmt.Println("  section    Regenerate a single README section")
		fmt.Println("  refine     Apply a natural-language edit to the README")
		fmt.Println("  templates  List document templates and sections")
		fmt.Println("  history    List, inspect, and roll back README versions")
		fmt.Println("  runs       Show recent generation runs")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/readmegen/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

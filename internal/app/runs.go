package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readmegen/internal/config"
	"github.com/blackwell-systems/readmegen/internal/output"
	"github.com/blackwell-systems/readmegen/internal/store"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent generation runs",
	Long: `Show the generation run log: which command ran, against which project,
which backend and model answered, how long it took, and which history
version it produced. The log lives in the user config directory, not in
the project.`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 20, "Maximum runs to show")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer func() { _ = db.Close() }()

	runs, err := db.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}

	if flagJSON {
		if runs == nil {
			runs = []store.Run{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	t := output.NewTable("When", "Project", "Command", "Source", "Duration", "Size", "Version")
	for _, r := range runs {
		source := r.Backend
		if r.Model != "" {
			source = r.Backend + "/" + r.Model
		}
		if r.Offline {
			source = "offline"
		}
		t.AddRow(
			r.TakenAt.Local().Format("2006-01-02 15:04"),
			r.Project,
			r.Command,
			source,
			fmt.Sprintf("%dms", r.DurationMs),
			fmt.Sprintf("%dB", r.OutputSize),
			r.VersionID,
		)
	}
	t.Print()
	return nil
}

package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readmegen/internal/history"
	"github.com/blackwell-systems/readmegen/internal/output"
)

var flagHistoryRoot string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, inspect, and roll back README versions",
	Long: `Manage the per-project version history under .readmegen/history.
Every generate, section, and refine run saves the resulting document
before replacing the live README.md. The newest ` + fmt.Sprint(history.MaxVersions) + ` versions are kept.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored versions, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <version-id>",
	Short: "Print a stored version's content",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyRollbackCmd = &cobra.Command{
	Use:   "rollback <version-id>",
	Short: "Overwrite the live README.md with a stored version",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRollback,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <version-id>",
	Short: "Remove a stored version",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.PersistentFlags().StringVar(&flagHistoryRoot, "path", ".", "Project root")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRollbackCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func historyStore() *history.Store {
	return history.NewStore(flagHistoryRoot)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}
	versions, err := historyStore().List()
	if err != nil {
		return err
	}

	if flagJSON {
		if versions == nil {
			versions = []history.Version{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(versions)
	}

	if len(versions) == 0 {
		fmt.Println("No versions stored yet. Run 'readmegen generate' to create one.")
		return nil
	}

	t := output.NewTable("ID", "Created", "Preview")
	for _, v := range versions {
		t.AddRow(v.ID, v.Timestamp.Format("2006-01-02 15:04:05"), v.Preview)
	}
	t.Print()
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	content, err := historyStore().Read(args[0])
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("version %q not found", args[0])
		}
		return err
	}
	fmt.Print(content)
	return nil
}

func runHistoryRollback(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}
	if err := historyStore().Rollback(args[0]); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("version %q not found", args[0])
		}
		return err
	}
	fmt.Println(output.StyleSuccess.Render("✓"), "rolled back README.md to", args[0])
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}
	if err := historyStore().Delete(args[0]); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("version %q not found", args[0])
		}
		return err
	}
	fmt.Println(output.StyleSuccess.Render("✓"), "deleted version", args[0])
	return nil
}

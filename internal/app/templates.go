package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readmegen/internal/output"
	"github.com/blackwell-systems/readmegen/internal/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List document templates and sections",
	Long: `List the available README templates with their default sections, and
the full section catalog usable with --sections and 'readmegen section'.`,
	RunE: runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	if flagJSON {
		payload := map[string]any{
			"templates": template.All(),
			"sections":  template.Sections(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	fmt.Println(output.StyleHeader.Render("Templates"))
	for _, tmpl := range template.All() {
		var enabled []string
		for _, s := range tmpl.Sections {
			if s.DefaultEnabled {
				enabled = append(enabled, s.ID)
			}
		}
		marker := "  "
		if tmpl.ID == template.DefaultID {
			marker = output.StyleSuccess.Render("* ")
		}
		fmt.Printf("%s%s  %s\n", marker, output.StyleBold.Render(tmpl.ID), output.StyleMuted.Render(tmpl.Description))
		fmt.Printf("    %s\n", strings.Join(enabled, ", "))
	}

	fmt.Println()
	fmt.Println(output.StyleHeader.Render("Section catalog"))
	t := output.NewTable("ID", "Name", "Description")
	for _, s := range template.Sections() {
		t.AddRow(s.ID, s.Name, s.Description)
	}
	t.Print()
	return nil
}

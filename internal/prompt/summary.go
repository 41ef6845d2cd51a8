package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blackwell-systems/readmegen/internal/detect"
	"github.com/blackwell-systems/readmegen/internal/scanner"
)

// summary limits keep prompts bounded on large trees.
const (
	maxSummaryConfigFiles  = 15
	maxSummaryExtensions   = 8
	maxSummaryDependencies = 25
	maxSummaryScripts      = 10
	maxSummaryDirs         = 12
)

// ProjectSummary renders the textual project description embedded in every
// compiled prompt. All three compile entry points share this derivation so
// the backend always sees consistent facts.
func ProjectSummary(info *scanner.ProjectInfo, det detect.Result) string {
	var sb strings.Builder

	sb.WriteString("## Project\n\n")
	fmt.Fprintf(&sb, "- Name: %s\n", info.Name)
	fmt.Fprintf(&sb, "- Files: %d\n", info.FileCount)
	fmt.Fprintf(&sb, "- Source files: %d\n", len(info.SourceFiles))

	if dirs := info.TopLevelDirs(); len(dirs) > 0 {
		if len(dirs) > maxSummaryDirs {
			dirs = dirs[:maxSummaryDirs]
		}
		fmt.Fprintf(&sb, "- Top-level directories: %s\n", strings.Join(dirs, ", "))
	}

	if len(info.ConfigFiles) > 0 {
		names := make([]string, 0, len(info.ConfigFiles))
		for _, f := range info.ConfigFiles {
			names = append(names, f.Name)
			if len(names) == maxSummaryConfigFiles {
				break
			}
		}
		fmt.Fprintf(&sb, "- Config files: %s\n", strings.Join(names, ", "))
	}

	if hist := extensionHistogram(info); hist != "" {
		fmt.Fprintf(&sb, "- File types: %s\n", hist)
	}

	if m := info.Manifest; m != nil {
		sb.WriteString("\n## Manifest\n\n")
		if m.Description != "" {
			fmt.Fprintf(&sb, "- Description: %s\n", m.Description)
		}
		if m.Version != "" {
			fmt.Fprintf(&sb, "- Version: %s\n", m.Version)
		}
		if m.License != "" {
			fmt.Fprintf(&sb, "- License: %s\n", m.License)
		}
		if len(m.Dependencies) > 0 {
			fmt.Fprintf(&sb, "- Dependencies: %s\n", joinKeys(m.Dependencies, maxSummaryDependencies))
		}
		if len(m.DevDependencies) > 0 {
			fmt.Fprintf(&sb, "- Dev dependencies: %s\n", joinKeys(m.DevDependencies, maxSummaryDependencies))
		}
		if len(m.Scripts) > 0 {
			sb.WriteString("- Scripts:\n")
			for _, name := range sortedKeys(m.Scripts, maxSummaryScripts) {
				fmt.Fprintf(&sb, "  - %s: %s\n", name, m.Scripts[name])
			}
		}
	}

	return sb.String()
}

// TechnologyTable renders the detection result as a compact table block.
func TechnologyTable(det detect.Result) string {
	var sb strings.Builder
	sb.WriteString("## Detected technologies\n\n")

	if len(det.Languages) > 0 {
		sb.WriteString("Languages:\n")
		for _, lang := range det.Languages {
			fmt.Fprintf(&sb, "- %s: %.1f%% (%d files)\n", lang.Name, lang.Percentage, lang.FileCount)
		}
	}
	if len(det.Frameworks) > 0 {
		sb.WriteString("Frameworks and libraries:\n")
		for _, fw := range det.Frameworks {
			fmt.Fprintf(&sb, "- %s (%s, confidence %.2f)\n", fw.Name, fw.Category, fw.Confidence)
		}
	}
	if det.PackageManager != "" {
		fmt.Fprintf(&sb, "Package manager: %s\n", det.PackageManager)
	}
	if len(det.BuildTools) > 0 {
		fmt.Fprintf(&sb, "Build tools: %s\n", strings.Join(det.BuildTools, ", "))
	}
	if len(det.TestFrameworks) > 0 {
		fmt.Fprintf(&sb, "Test frameworks: %s\n", strings.Join(det.TestFrameworks, ", "))
	}

	return sb.String()
}

// extensionHistogram returns the top extensions as "ext (count)" pairs.
func extensionHistogram(info *scanner.ProjectInfo) string {
	counts := make(map[string]int)
	var order []string
	for _, f := range info.Files {
		if f.IsDir || f.Ext == "" {
			continue
		}
		if _, seen := counts[f.Ext]; !seen {
			order = append(order, f.Ext)
		}
		counts[f.Ext]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxSummaryExtensions {
		order = order[:maxSummaryExtensions]
	}
	parts := make([]string, 0, len(order))
	for _, ext := range order {
		parts = append(parts, fmt.Sprintf("%s (%d)", ext, counts[ext]))
	}
	return strings.Join(parts, ", ")
}

func joinKeys(m map[string]string, limit int) string {
	keys := sortedKeys(m, limit)
	return strings.Join(keys, ", ")
}

func sortedKeys(m map[string]string, limit int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

package generate

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/readmegen/internal/badge"
	"github.com/blackwell-systems/readmegen/internal/classify"
	"github.com/blackwell-systems/readmegen/internal/detect"
	"github.com/blackwell-systems/readmegen/internal/scanner"
)

// installCommands maps a detected package manager to install and run
// command lines for the offline skeleton.
var installCommands = map[string][2]string{
	"pnpm":       {"pnpm install", "pnpm start"},
	"yarn":       {"yarn install", "yarn start"},
	"npm":        {"npm install", "npm start"},
	"bun":        {"bun install", "bun start"},
	"pip":        {"pip install -r requirements.txt", "python main.py"},
	"cargo":      {"cargo build", "cargo run"},
	"go modules": {"go build ./...", "go run ."},
	"bundler":    {"bundle install", "bundle exec rake"},
	"composer":   {"composer install", "php artisan serve"},
	"maven":      {"mvn install", "mvn exec:java"},
	"gradle":     {"gradle build", "gradle run"},
}

// OfflineDocument renders a deterministic README skeleton from scan data
// alone. It is the fallback when no credential is configured or every
// backend candidate failed; identical inputs always produce identical
// output.
func OfflineDocument(info *scanner.ProjectInfo, det detect.Result, cls classify.Result, includeBadges bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", info.Name)

	if includeBadges {
		badges := badge.Synthesize(info, det)
		if len(badges) > 0 {
			sb.WriteString(badge.Markdown(badges))
			sb.WriteString("\n\n")
		}
	}

	if m := info.Manifest; m != nil && m.Description != "" {
		sb.WriteString(m.Description)
		sb.WriteString("\n\n")
	} else {
		fmt.Fprintf(&sb, "A %s.\n\n", strings.ToLower(cls.Label))
	}

	if len(det.Languages) > 0 || len(det.Frameworks) > 0 {
		sb.WriteString("## Tech Stack\n\n")
		for _, lang := range det.Languages {
			fmt.Fprintf(&sb, "- %s (%.1f%%)\n", lang.Name, lang.Percentage)
		}
		for _, fw := range det.Frameworks {
			fmt.Fprintf(&sb, "- %s\n", fw.Name)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Installation\n\n")
	if cmds, ok := installCommands[det.PackageManager]; ok {
		fmt.Fprintf(&sb, "```bash\n%s\n```\n\n## Usage\n\n```bash\n%s\n```\n\n", cmds[0], cmds[1])
	} else {
		sb.WriteString("```bash\n# clone the repository and install dependencies with your toolchain\n```\n\n")
	}

	if dirs := info.TopLevelDirs(); len(dirs) > 0 {
		sb.WriteString("## Project Structure\n\n```\n")
		for _, d := range dirs {
			fmt.Fprintf(&sb, "%s/\n", d)
		}
		sb.WriteString("```\n\n")
	}

	sb.WriteString("## License\n\n")
	if m := info.Manifest; m != nil && m.License != "" {
		fmt.Fprintf(&sb, "Distributed under the %s license.\n", m.License)
	} else {
		sb.WriteString("No license specified.\n")
	}

	return sb.String()
}

// Package classify assigns a single project archetype from scan and
// detection data using an ordered decision list. The first rule whose
// condition holds wins; rule order is part of the contract because the
// archetypes are mutually exclusive display labels, not probabilities.
package classify

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/readmegen/internal/detect"
	"github.com/blackwell-systems/readmegen/internal/scanner"
)

// Archetype is one closed-set classification label.
type Archetype string

const (
	Monorepo  Archetype = "monorepo"
	Mobile    Archetype = "mobile"
	Desktop   Archetype = "desktop"
	CLI       Archetype = "cli"
	Library   Archetype = "library"
	Fullstack Archetype = "fullstack"
	WebApp    Archetype = "web-app"
	Backend   Archetype = "backend"
	Unknown   Archetype = "unknown"
)

// labels maps archetypes to display labels.
var labels = map[Archetype]string{
	Monorepo:  "Monorepo",
	Mobile:    "Mobile App",
	Desktop:   "Desktop App",
	CLI:       "Command-Line Tool",
	Library:   "Library",
	Fullstack: "Full-Stack App",
	WebApp:    "Web App",
	Backend:   "Backend Service",
	Unknown:   "Project",
}

// Result is the outcome of one classification run.
type Result struct {
	Archetype  Archetype `json:"archetype"`
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	Reason     string    `json:"reason"`
}

// fullstackFrameworks are meta-frameworks that imply both tiers on their own.
var fullstackFrameworks = []string{"Next.js", "Nuxt", "Remix", "SvelteKit"}

// serverEntryFiles are file names that suggest a server process when no
// stronger signal exists.
var serverEntryFiles = []string{"server.js", "server.ts", "app.js", "app.py", "main.go", "index.js"}

// cliKeywords are manifest keywords that mark a command-line tool.
var cliKeywords = []string{"cli", "command-line", "command line", "terminal"}

// Classify evaluates the decision list top to bottom and returns the first
// matching archetype. Repeated calls with the same inputs always return
// the same result.
func Classify(info *scanner.ProjectInfo, det detect.Result) Result {
	m := info.Manifest

	// 1. Workspace/monorepo markers.
	if m.HasWorkspaces() || info.HasFile("lerna.json") || info.HasFile("pnpm-workspace.yaml") {
		return result(Monorepo, 0.9, "workspace configuration found (workspaces field, lerna.json, or pnpm-workspace.yaml)")
	}

	// 2. Mobile framework.
	if f, ok := firstInCategory(det, detect.CategoryMobile); ok {
		return result(Mobile, 0.95, fmt.Sprintf("mobile framework detected: %s", f))
	}

	// 3. Desktop framework.
	if f, ok := firstInCategory(det, detect.CategoryDesktop); ok {
		return result(Desktop, 0.95, fmt.Sprintf("desktop framework detected: %s", f))
	}

	// 4. Executable entry point or CLI keyword.
	if m.HasBin() {
		return result(CLI, 0.85, "manifest declares an executable bin entry")
	}
	if kw, ok := matchesCLIKeyword(m); ok {
		return result(CLI, 0.85, fmt.Sprintf("manifest keyword %q marks a command-line tool", kw))
	}

	// 5. Library-style fields on a non-private package.
	if m != nil && !m.Private {
		fields := libraryFields(m)
		if len(fields) > 0 {
			confidence := 0.7 + 0.05*float64(len(fields))
			return Result{
				Archetype:  Library,
				Label:      labels[Library],
				Confidence: confidence,
				Reason:     fmt.Sprintf("library-style manifest fields present: %s", strings.Join(fields, ", ")),
			}
		}
	}

	// 6. Full-stack meta-framework.
	for _, name := range fullstackFrameworks {
		if det.HasFramework(name) {
			return result(Fullstack, 0.9, fmt.Sprintf("full-stack framework detected: %s", name))
		}
	}

	// 7. Independent frontend and backend detections.
	frontend, hasFrontend := firstInCategory(det, detect.CategoryFrontend)
	backend, hasBackend := firstInCategory(det, detect.CategoryBackend)
	if hasFrontend && hasBackend {
		return result(Fullstack, 0.85, fmt.Sprintf("both frontend (%s) and backend (%s) frameworks detected", frontend, backend))
	}

	// 8. Frontend only.
	if hasFrontend {
		return result(WebApp, 0.85, fmt.Sprintf("frontend framework detected: %s", frontend))
	}

	// 9. Backend only.
	if hasBackend {
		return result(Backend, 0.85, fmt.Sprintf("backend framework detected: %s", backend))
	}

	// 10. File-presence heuristics.
	if info.HasDir("public") || info.HasFile("index.html") {
		return result(WebApp, 0.6, "static web assets found (public directory or index.html)")
	}
	for _, name := range serverEntryFiles {
		if info.HasFile(name) {
			return result(Backend, 0.6, fmt.Sprintf("server entry file found: %s", name))
		}
	}

	// 11. Nothing matched.
	return result(Unknown, 0.3, "no classification signals matched")
}

func result(a Archetype, confidence float64, reason string) Result {
	return Result{
		Archetype:  a,
		Label:      labels[a],
		Confidence: confidence,
		Reason:     reason,
	}
}

func firstInCategory(det detect.Result, category string) (string, bool) {
	matches := det.FrameworksInCategory(category)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name, true
}

func matchesCLIKeyword(m *scanner.Manifest) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, kw := range m.Keywords {
		lower := strings.ToLower(kw)
		for _, marker := range cliKeywords {
			if lower == marker {
				return kw, true
			}
		}
	}
	return "", false
}

// libraryFields lists the manifest fields that mark a publishable library.
func libraryFields(m *scanner.Manifest) []string {
	var fields []string
	if m.Main != "" {
		fields = append(fields, "main")
	}
	if m.Types != "" {
		fields = append(fields, "types")
	}
	if m.HasExports() {
		fields = append(fields, "exports")
	}
	if m.Module != "" {
		fields = append(fields, "module")
	}
	return fields
}

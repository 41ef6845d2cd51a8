// Package detect infers languages, frameworks, package manager, build
// tools, and test frameworks from a scanned project. All detectors are
// pure functions of the scan result; nothing here touches the filesystem.
package detect

import "github.com/blackwell-systems/readmegen/internal/scanner"

// Framework categories.
const (
	CategoryFrontend     = "frontend"
	CategoryBackend      = "backend"
	CategoryBuildTool    = "build-tool"
	CategoryCSSFramework = "css-framework"
	CategoryMobile       = "mobile"
	CategoryDesktop      = "desktop"
)

// LanguageStat is one detected language with its share of recognized
// source files.
type LanguageStat struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	FileCount  int     `json:"file_count"`
}

// FrameworkMatch is one detected framework or library.
type FrameworkMatch struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Result bundles everything the detectors produce.
type Result struct {
	Languages      []LanguageStat   `json:"languages"`
	Frameworks     []FrameworkMatch `json:"frameworks"`
	PackageManager string           `json:"package_manager,omitempty"`
	BuildTools     []string         `json:"build_tools"`
	TestFrameworks []string         `json:"test_frameworks"`
}

// HasFramework reports whether a framework with the given name was detected.
func (r Result) HasFramework(name string) bool {
	for _, f := range r.Frameworks {
		if f.Name == name {
			return true
		}
	}
	return false
}

// FrameworksInCategory returns the detected frameworks in the given
// category, preserving confidence order.
func (r Result) FrameworksInCategory(category string) []FrameworkMatch {
	var out []FrameworkMatch
	for _, f := range r.Frameworks {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// Detect runs every detector against the scan result.
func Detect(info *scanner.ProjectInfo) Result {
	return Result{
		Languages:      DetectLanguages(info),
		Frameworks:     DetectFrameworks(info),
		PackageManager: DetectPackageManager(info),
		BuildTools:     DetectBuildTools(info),
		TestFrameworks: DetectTestFrameworks(info),
	}
}

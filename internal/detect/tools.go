package detect

import (
	"strings"

	"github.com/blackwell-systems/readmegen/internal/scanner"
)

// buildToolChecks are independent membership checks run in fixed order.
// Output order follows this table, not the alphabet.
var buildToolChecks = []struct {
	Name string
	Dep  string
	File string
}{
	{"Vite", "vite", "vite.config"},
	{"Webpack", "webpack", "webpack.config"},
	{"Rollup", "rollup", "rollup.config"},
	{"esbuild", "esbuild", ""},
	{"Parcel", "parcel", ""},
	{"Gulp", "gulp", "gulpfile"},
	{"Grunt", "grunt", "gruntfile"},
	{"Turborepo", "turbo", "turbo.json"},
	{"Nx", "nx", "nx.json"},
	{"Make", "", "Makefile"},
	{"CMake", "", "CMakeLists.txt"},
	{"Gradle", "", "build.gradle"},
	{"Maven", "", "pom.xml"},
}

// testFrameworkChecks mirror buildToolChecks for test tooling.
var testFrameworkChecks = []struct {
	Name string
	Dep  string
	File string
}{
	{"Jest", "jest", "jest.config"},
	{"Vitest", "vitest", "vitest.config"},
	{"Mocha", "mocha", ".mocharc"},
	{"Jasmine", "jasmine", ""},
	{"AVA", "ava", ""},
	{"Cypress", "cypress", "cypress.config"},
	{"Playwright", "@playwright/test", "playwright.config"},
	{"Testing Library", "@testing-library/react", ""},
	{"pytest", "", "pytest.ini"},
	{"RSpec", "", ".rspec"},
	{"PHPUnit", "", "phpunit.xml"},
}

// DetectBuildTools returns the detected build tools in check order, each
// at most once.
func DetectBuildTools(info *scanner.ProjectInfo) []string {
	var tools []string
	for _, check := range buildToolChecks {
		if matchesToolCheck(info, check.Dep, check.File) {
			tools = append(tools, check.Name)
		}
	}
	return tools
}

// DetectTestFrameworks returns the detected test frameworks in check
// order, each at most once.
func DetectTestFrameworks(info *scanner.ProjectInfo) []string {
	var frameworks []string
	for _, check := range testFrameworkChecks {
		if matchesToolCheck(info, check.Dep, check.File) {
			frameworks = append(frameworks, check.Name)
		}
	}
	return frameworks
}

// matchesToolCheck tests a devDependency name and a config file name
// fragment. The fragment matches any file whose base name contains it.
func matchesToolCheck(info *scanner.ProjectInfo, dep, fileFragment string) bool {
	if dep != "" && info.Manifest.HasDevDependency(dep) {
		return true
	}
	if fileFragment == "" {
		return false
	}
	lower := strings.ToLower(fileFragment)
	for _, f := range info.Files {
		if !f.IsDir && strings.Contains(strings.ToLower(f.Name), lower) {
			return true
		}
	}
	return false
}

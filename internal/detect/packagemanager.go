package detect

import "github.com/blackwell-systems/readmegen/internal/scanner"

// packageManagerChecks is the fixed priority order for package manager
// detection. The first marker file found wins; this is a total-order
// tie-break, not a scored decision. Reordering entries changes results.
var packageManagerChecks = []struct {
	Manager string
	File    string
}{
	{"pnpm", "pnpm-lock.yaml"},
	{"yarn", "yarn.lock"},
	{"npm", "package-lock.json"},
	{"bun", "bun.lockb"},
	{"npm", "package.json"},
	{"pip", "requirements.txt"},
	{"pip", "Pipfile"},
	{"pip", "pyproject.toml"},
	{"cargo", "Cargo.toml"},
	{"go modules", "go.mod"},
	{"bundler", "Gemfile"},
	{"composer", "composer.json"},
	{"maven", "pom.xml"},
	{"gradle", "build.gradle"},
	{"gradle", "build.gradle.kts"},
}

// DetectPackageManager returns the first package manager whose marker file
// is present, or "" when none match.
func DetectPackageManager(info *scanner.ProjectInfo) string {
	for _, check := range packageManagerChecks {
		if info.HasFile(check.File) {
			return check.Manager
		}
	}
	return ""
}

package scanner

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// configFileNames are exact base names recognized as configuration files.
var configFileNames = map[string]bool{
	"package.json":         true,
	"tsconfig.json":        true,
	"jsconfig.json":        true,
	"vite.config.js":       true,
	"vite.config.ts":       true,
	"webpack.config.js":    true,
	"rollup.config.js":     true,
	"next.config.js":       true,
	"next.config.mjs":      true,
	"nuxt.config.js":       true,
	"nuxt.config.ts":       true,
	"svelte.config.js":     true,
	"astro.config.mjs":     true,
	"angular.json":         true,
	"vue.config.js":        true,
	"babel.config.js":      true,
	"jest.config.js":       true,
	"jest.config.ts":       true,
	"vitest.config.ts":     true,
	"cypress.config.js":    true,
	"cypress.config.ts":    true,
	"playwright.config.ts": true,
	"tailwind.config.js":   true,
	"tailwind.config.ts":   true,
	"postcss.config.js":    true,
	"eslint.config.js":     true,
	"prettier.config.js":   true,
	"tauri.conf.json":      true,
	"electron-builder.yml": true,
	"capacitor.config.ts":  true,
	"app.json":             true,
	"pubspec.yaml":         true,
	"go.mod":               true,
	"go.sum":               true,
	"Cargo.toml":           true,
	"Cargo.lock":           true,
	"pyproject.toml":       true,
	"setup.py":             true,
	"requirements.txt":     true,
	"Pipfile":              true,
	"Gemfile":              true,
	"composer.json":        true,
	"pom.xml":              true,
	"build.gradle":         true,
	"build.gradle.kts":     true,
	"settings.gradle":      true,
	"Makefile":             true,
	"CMakeLists.txt":       true,
	"Dockerfile":           true,
	"docker-compose.yml":   true,
	"docker-compose.yaml":  true,
	"lerna.json":           true,
	"pnpm-workspace.yaml":  true,
	"turbo.json":           true,
	"nx.json":              true,
}

// configFilePrefixes are base name prefixes recognized as configuration
// files (dotfile families with varying suffixes).
var configFilePrefixes = []string{
	".babelrc", ".eslintrc", ".prettierrc", ".stylelintrc", ".editorconfig",
	".npmrc", ".nvmrc", ".browserslistrc",
}

// sourceExtensions are extensions counted as source code.
var sourceExtensions = map[string]bool{
	".js": true, ".jsx": true, ".ts": true, ".tsx": true, ".mjs": true, ".cjs": true,
	".vue": true, ".svelte": true, ".astro": true,
	".py": true, ".rb": true, ".php": true, ".go": true, ".rs": true,
	".java": true, ".kt": true, ".kts": true, ".scala": true, ".groovy": true,
	".c": true, ".h": true, ".cpp": true, ".cc": true, ".hpp": true,
	".cs": true, ".fs": true, ".swift": true, ".m": true, ".mm": true,
	".dart": true, ".ex": true, ".exs": true, ".erl": true, ".clj": true,
	".hs": true, ".ml": true, ".lua": true, ".r": true, ".jl": true, ".zig": true,
	".sh": true, ".bash": true, ".ps1": true,
	".html": true, ".css": true, ".scss": true, ".sass": true, ".less": true,
	".sql": true, ".graphql": true, ".proto": true,
}

func isConfigFile(name string) bool {
	if configFileNames[name] {
		return true
	}
	for _, prefix := range configFilePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func isSourceFile(ext string) bool {
	return sourceExtensions[ext]
}

// loadManifest parses package.json at root. A missing or malformed file
// yields nil so downstream checks degrade to file-presence fallbacks.
func loadManifest(root string) *Manifest {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return &m
}

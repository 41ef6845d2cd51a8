package detect

import (
	"sort"

	"github.com/blackwell-systems/readmegen/internal/scanner"
)

// signatureRule votes for one framework with a confidence in [0,1].
// Zero means no match. Rules are independent of each other and may match
// simultaneously; order in the table carries no meaning.
type signatureRule struct {
	Name     string
	Category string
	Check    func(info *scanner.ProjectInfo) float64
}

// depRule returns full confidence on a manifest dependency hit and falls
// back to a weaker file-presence signal when the manifest is missing.
func depRule(dep string, fallback func(info *scanner.ProjectInfo) float64) func(*scanner.ProjectInfo) float64 {
	return func(info *scanner.ProjectInfo) float64 {
		if info.Manifest.HasDependency(dep) {
			return 1.0
		}
		if fallback != nil {
			return fallback(info)
		}
		return 0
	}
}

func fileFallback(name string, confidence float64) func(info *scanner.ProjectInfo) float64 {
	return func(info *scanner.ProjectInfo) float64 {
		if info.HasFile(name) {
			return confidence
		}
		return 0
	}
}

func extFallback(ext string, confidence float64) func(info *scanner.ProjectInfo) float64 {
	return func(info *scanner.ProjectInfo) float64 {
		if info.HasExt(ext) {
			return confidence
		}
		return 0
	}
}

// hasPythonDeps reports whether a generic Python dependency file exists.
// Flask and FastAPI detection deliberately stop here: without reading the
// dependency file's contents this cannot distinguish the two, so both
// report a low confidence when any Python dependency marker is present.
func hasPythonDeps(info *scanner.ProjectInfo) bool {
	return info.HasFile("requirements.txt") || info.HasFile("Pipfile") || info.HasFile("pyproject.toml")
}

// frameworkRules is the fixed signature rule table.
var frameworkRules = []signatureRule{
	{"React", CategoryFrontend, depRule("react", extFallback(".jsx", 0.5))},
	{"Vue", CategoryFrontend, depRule("vue", extFallback(".vue", 0.9))},
	{"Angular", CategoryFrontend, depRule("@angular/core", fileFallback("angular.json", 0.9))},
	{"Svelte", CategoryFrontend, depRule("svelte", extFallback(".svelte", 0.9))},
	{"Next.js", CategoryFrontend, depRule("next", func(info *scanner.ProjectInfo) float64 {
		if info.HasFile("next.config.js") || info.HasFile("next.config.mjs") || info.HasFile("next.config.ts") {
			return 0.9
		}
		return 0
	})},
	{"Nuxt", CategoryFrontend, depRule("nuxt", func(info *scanner.ProjectInfo) float64 {
		if info.HasFile("nuxt.config.js") || info.HasFile("nuxt.config.ts") {
			return 0.9
		}
		return 0
	})},
	{"Remix", CategoryFrontend, depRule("@remix-run/react", nil)},
	{"Astro", CategoryFrontend, depRule("astro", fileFallback("astro.config.mjs", 0.9))},
	{"SvelteKit", CategoryFrontend, depRule("@sveltejs/kit", nil)},

	{"Express", CategoryBackend, depRule("express", nil)},
	{"Fastify", CategoryBackend, depRule("fastify", nil)},
	{"NestJS", CategoryBackend, depRule("@nestjs/core", nil)},
	{"Koa", CategoryBackend, depRule("koa", nil)},
	{"Hapi", CategoryBackend, depRule("@hapi/hapi", nil)},
	{"Django", CategoryBackend, fileFallback("manage.py", 0.9)},
	{"Flask", CategoryBackend, func(info *scanner.ProjectInfo) float64 {
		if hasPythonDeps(info) {
			return 0.3
		}
		return 0
	}},
	{"FastAPI", CategoryBackend, func(info *scanner.ProjectInfo) float64 {
		if hasPythonDeps(info) {
			return 0.3
		}
		return 0
	}},
	{"Ruby on Rails", CategoryBackend, func(info *scanner.ProjectInfo) float64 {
		if info.HasFile("Gemfile") && info.HasFile("config.ru") {
			return 0.8
		}
		if info.HasFile("Gemfile") {
			return 0.4
		}
		return 0
	}},
	{"Laravel", CategoryBackend, func(info *scanner.ProjectInfo) float64 {
		if info.HasFile("artisan") {
			return 0.95
		}
		if info.HasFile("composer.json") {
			return 0.3
		}
		return 0
	}},
	{"Spring", CategoryBackend, func(info *scanner.ProjectInfo) float64 {
		if info.HasFile("pom.xml") || info.HasFile("build.gradle") || info.HasFile("build.gradle.kts") {
			return 0.5
		}
		return 0
	}},

	{"Tailwind CSS", CategoryCSSFramework, depRule("tailwindcss", func(info *scanner.ProjectInfo) float64 {
		if info.HasFile("tailwind.config.js") || info.HasFile("tailwind.config.ts") {
			return 0.9
		}
		return 0
	})},
	{"Bootstrap", CategoryCSSFramework, depRule("bootstrap", nil)},
	{"Sass", CategoryCSSFramework, depRule("sass", extFallback(".scss", 0.7))},

	{"Vite", CategoryBuildTool, depRule("vite", func(info *scanner.ProjectInfo) float64 {
		if info.HasFile("vite.config.js") || info.HasFile("vite.config.ts") {
			return 0.9
		}
		return 0
	})},
	{"Webpack", CategoryBuildTool, depRule("webpack", fileFallback("webpack.config.js", 0.9))},
	{"esbuild", CategoryBuildTool, depRule("esbuild", nil)},

	{"React Native", CategoryMobile, depRule("react-native", nil)},
	{"Expo", CategoryMobile, depRule("expo", nil)},
	{"Ionic", CategoryMobile, depRule("@ionic/core", nil)},
	{"Flutter", CategoryMobile, fileFallback("pubspec.yaml", 0.95)},

	{"Electron", CategoryDesktop, depRule("electron", nil)},
	{"Tauri", CategoryDesktop, depRule("@tauri-apps/api", fileFallback("tauri.conf.json", 0.95))},
}

// DetectFrameworks evaluates every signature rule and returns the matches
// sorted by confidence descending. Ties keep table order so repeated runs
// are identical.
func DetectFrameworks(info *scanner.ProjectInfo) []FrameworkMatch {
	var matches []FrameworkMatch
	for _, rule := range frameworkRules {
		confidence := rule.Check(info)
		if confidence <= 0 {
			continue
		}
		if confidence > 1 {
			confidence = 1
		}
		matches = append(matches, FrameworkMatch{
			Name:       rule.Name,
			Category:   rule.Category,
			Confidence: confidence,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

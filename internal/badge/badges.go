// Package badge maps detected technologies onto shields.io markdown.
// Evaluation order is fixed (languages, frameworks, dependencies, build
// tools, package manager, structural, meta, closing) and a key set
// guarantees each technology contributes at most one badge no matter how
// many signals detected it.
package badge

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/readmegen/internal/detect"
	"github.com/blackwell-systems/readmegen/internal/scanner"
)

// Badge is one synthesized shield.
type Badge struct {
	Label    string `json:"label"`
	Markdown string `json:"markdown"`
	Category string `json:"category"`
}

// entry is one row of the curated badge table.
type entry struct {
	markdown string
	category string
}

// shield builds a shields.io badge in the flat style used throughout.
func shield(label, slug, color, logo string) string {
	return fmt.Sprintf("![%s](https://img.shields.io/badge/%s-%s?style=flat&logo=%s&logoColor=white)", label, slug, color, logo)
}

// table is the curated technology badge table keyed by canonical name.
var table = map[string]entry{
	"JavaScript":   {shield("JavaScript", "JavaScript-F7DF1E", "F7DF1E", "javascript"), "language"},
	"TypeScript":   {shield("TypeScript", "TypeScript-3178C6", "3178C6", "typescript"), "language"},
	"Python":       {shield("Python", "Python-3776AB", "3776AB", "python"), "language"},
	"Go":           {shield("Go", "Go-00ADD8", "00ADD8", "go"), "language"},
	"Rust":         {shield("Rust", "Rust-000000", "000000", "rust"), "language"},
	"Ruby":         {shield("Ruby", "Ruby-CC342D", "CC342D", "ruby"), "language"},
	"PHP":          {shield("PHP", "PHP-777BB4", "777BB4", "php"), "language"},
	"Java":         {shield("Java", "Java-ED8B00", "ED8B00", "openjdk"), "language"},
	"Kotlin":       {shield("Kotlin", "Kotlin-7F52FF", "7F52FF", "kotlin"), "language"},
	"Swift":        {shield("Swift", "Swift-F05138", "F05138", "swift"), "language"},
	"Dart":         {shield("Dart", "Dart-0175C2", "0175C2", "dart"), "language"},
	"C":            {shield("C", "C-A8B9CC", "A8B9CC", "c"), "language"},
	"C++":          {shield("C++", "C++-00599C", "00599C", "cplusplus"), "language"},
	"C#":           {shield("C#", "C%23-239120", "239120", "csharp"), "language"},
	"HTML":         {shield("HTML5", "HTML5-E34F26", "E34F26", "html5"), "language"},
	"CSS":          {shield("CSS3", "CSS3-1572B6", "1572B6", "css3"), "language"},

	"React":         {shield("React", "React-61DAFB", "61DAFB", "react"), "framework"},
	"Vue":           {shield("Vue.js", "Vue.js-4FC08D", "4FC08D", "vuedotjs"), "framework"},
	"Angular":       {shield("Angular", "Angular-DD0031", "DD0031", "angular"), "framework"},
	"Svelte":        {shield("Svelte", "Svelte-FF3E00", "FF3E00", "svelte"), "framework"},
	"Next.js":       {shield("Next.js", "Next.js-000000", "000000", "nextdotjs"), "framework"},
	"Nuxt":          {shield("Nuxt", "Nuxt-00DC82", "00DC82", "nuxt"), "framework"},
	"Remix":         {shield("Remix", "Remix-000000", "000000", "remix"), "framework"},
	"Astro":         {shield("Astro", "Astro-BC52EE", "BC52EE", "astro"), "framework"},
	"SvelteKit":     {shield("SvelteKit", "SvelteKit-FF3E00", "FF3E00", "svelte"), "framework"},
	"Express":       {shield("Express", "Express-000000", "000000", "express"), "framework"},
	"Fastify":       {shield("Fastify", "Fastify-000000", "000000", "fastify"), "framework"},
	"NestJS":        {shield("NestJS", "NestJS-E0234E", "E0234E", "nestjs"), "framework"},
	"Koa":           {shield("Koa", "Koa-33333D", "33333D", "koa"), "framework"},
	"Django":        {shield("Django", "Django-092E20", "092E20", "django"), "framework"},
	"Flask":         {shield("Flask", "Flask-000000", "000000", "flask"), "framework"},
	"FastAPI":       {shield("FastAPI", "FastAPI-009688", "009688", "fastapi"), "framework"},
	"Ruby on Rails": {shield("Rails", "Rails-D30001", "D30001", "rubyonrails"), "framework"},
	"Laravel":       {shield("Laravel", "Laravel-FF2D20", "FF2D20", "laravel"), "framework"},
	"Spring":        {shield("Spring", "Spring-6DB33F", "6DB33F", "spring"), "framework"},
	"React Native":  {shield("React Native", "React_Native-61DAFB", "61DAFB", "react"), "framework"},
	"Expo":          {shield("Expo", "Expo-000020", "000020", "expo"), "framework"},
	"Ionic":         {shield("Ionic", "Ionic-3880FF", "3880FF", "ionic"), "framework"},
	"Flutter":       {shield("Flutter", "Flutter-02569B", "02569B", "flutter"), "framework"},
	"Electron":      {shield("Electron", "Electron-47848F", "47848F", "electron"), "framework"},
	"Tauri":         {shield("Tauri", "Tauri-24C8D8", "24C8D8", "tauri"), "framework"},
	"Tailwind CSS":  {shield("Tailwind CSS", "Tailwind_CSS-06B6D4", "06B6D4", "tailwindcss"), "framework"},
	"Bootstrap":     {shield("Bootstrap", "Bootstrap-7952B3", "7952B3", "bootstrap"), "framework"},
	"Sass":          {shield("Sass", "Sass-CC6699", "CC6699", "sass"), "framework"},

	"Vite":       {shield("Vite", "Vite-646CFF", "646CFF", "vite"), "tool"},
	"Webpack":    {shield("Webpack", "Webpack-8DD6F9", "8DD6F9", "webpack"), "tool"},
	"Rollup":     {shield("Rollup", "Rollup-EC4A3F", "EC4A3F", "rollupdotjs"), "tool"},
	"esbuild":    {shield("esbuild", "esbuild-FFCF00", "FFCF00", "esbuild"), "tool"},
	"Jest":       {shield("Jest", "Jest-C21325", "C21325", "jest"), "tool"},
	"Vitest":     {shield("Vitest", "Vitest-6E9F18", "6E9F18", "vitest"), "tool"},
	"Cypress":    {shield("Cypress", "Cypress-69D3A7", "69D3A7", "cypress"), "tool"},
	"Playwright": {shield("Playwright", "Playwright-2EAD33", "2EAD33", "playwright"), "tool"},

	"pnpm":       {shield("pnpm", "pnpm-F69220", "F69220", "pnpm"), "package-manager"},
	"yarn":       {shield("Yarn", "Yarn-2C8EBB", "2C8EBB", "yarn"), "package-manager"},
	"npm":        {shield("npm", "npm-CB3837", "CB3837", "npm"), "package-manager"},
	"bun":        {shield("Bun", "Bun-000000", "000000", "bun"), "package-manager"},
	"cargo":      {shield("Cargo", "Cargo-000000", "000000", "rust"), "package-manager"},
	"pip":        {shield("pip", "pip-3776AB", "3776AB", "pypi"), "package-manager"},
	"go modules": {shield("Go Modules", "Go_Modules-00ADD8", "00ADD8", "go"), "package-manager"},
}

// dependencyBadges maps notable manifest dependency names to badge table
// keys. These catch technologies the framework rules do not model.
var dependencyBadges = map[string]string{
	"react":       "React",
	"vue":         "Vue",
	"svelte":      "Svelte",
	"express":     "Express",
	"typescript":  "TypeScript",
	"tailwindcss": "Tailwind CSS",
	"electron":    "Electron",
	"vite":        "Vite",
	"webpack":     "Webpack",
	"jest":        "Jest",
	"vitest":      "Vitest",
}

// dependencyOrder fixes iteration over dependencyBadges so output never
// depends on map ordering.
var dependencyOrder = []string{
	"react", "vue", "svelte", "express", "typescript",
	"tailwindcss", "electron", "vite", "webpack", "jest", "vitest",
}

const contributionsBadge = "![Contributions welcome](https://img.shields.io/badge/contributions-welcome-brightgreen.svg?style=flat)"

// Synthesize produces the deduplicated badge list in fixed evaluation
// order: languages, frameworks, manifest dependencies, build tools,
// package manager, structural markers, manifest meta, closing badge.
func Synthesize(info *scanner.ProjectInfo, det detect.Result) []Badge {
	var badges []Badge
	added := make(map[string]bool)

	add := func(key string) {
		if added[key] {
			return
		}
		e, ok := table[key]
		if !ok {
			return
		}
		added[key] = true
		badges = append(badges, Badge{Label: key, Markdown: e.markdown, Category: e.category})
	}

	for _, lang := range det.Languages {
		add(lang.Name)
	}
	for _, fw := range det.Frameworks {
		add(fw.Name)
	}
	if info.Manifest != nil {
		for _, dep := range dependencyOrder {
			if info.Manifest.HasDependency(dep) {
				add(dependencyBadges[dep])
			}
		}
	}
	for _, tool := range det.BuildTools {
		add(tool)
	}
	if det.PackageManager != "" {
		add(det.PackageManager)
	}

	// Structural badges.
	if info.HasFile("Dockerfile") || info.HasFile("docker-compose.yml") || info.HasFile("docker-compose.yaml") {
		badges = append(badges, Badge{
			Label:    "Docker",
			Markdown: shield("Docker", "Docker-2496ED", "2496ED", "docker"),
			Category: "structural",
		})
	}
	if hasCIWorkflow(info) {
		badges = append(badges, Badge{
			Label:    "CI",
			Markdown: "![CI](https://img.shields.io/badge/CI-passing-brightgreen?style=flat&logo=githubactions&logoColor=white)",
			Category: "structural",
		})
	}

	// Manifest meta badges.
	if m := info.Manifest; m != nil {
		if m.License != "" {
			badges = append(badges, Badge{
				Label:    "License",
				Markdown: fmt.Sprintf("![License](https://img.shields.io/badge/license-%s-blue.svg?style=flat)", urlEscapeBadge(m.License)),
				Category: "meta",
			})
		}
		if m.Version != "" {
			badges = append(badges, Badge{
				Label:    "Version",
				Markdown: fmt.Sprintf("![Version](https://img.shields.io/badge/version-%s-blue.svg?style=flat)", urlEscapeBadge(m.Version)),
				Category: "meta",
			})
		}
	}

	badges = append(badges, Badge{
		Label:    "Contributions welcome",
		Markdown: contributionsBadge,
		Category: "meta",
	})

	return badges
}

// Markdown renders the badge list as a single space-joined line.
func Markdown(badges []Badge) string {
	parts := make([]string, 0, len(badges))
	for _, b := range badges {
		parts = append(parts, b.Markdown)
	}
	return strings.Join(parts, " ")
}

func hasCIWorkflow(info *scanner.ProjectInfo) bool {
	for _, f := range info.Files {
		if f.IsDir {
			continue
		}
		if strings.HasPrefix(f.RelPath, ".github/workflows/") && (f.Ext == ".yml" || f.Ext == ".yaml") {
			return true
		}
		if f.Name == ".gitlab-ci.yml" || f.Name == ".travis.yml" {
			return true
		}
	}
	return false
}

// urlEscapeBadge escapes the characters shields.io treats specially.
func urlEscapeBadge(s string) string {
	s = strings.ReplaceAll(s, "-", "--")
	s = strings.ReplaceAll(s, "_", "__")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

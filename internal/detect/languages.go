package detect

import (
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/blackwell-systems/readmegen/internal/scanner"
)

// maxLanguages caps how many languages are surfaced.
const maxLanguages = 5

// languageLabels maps extensions to display labels. Variant labels such as
// "JavaScript (React)" share a merge key with their base language: the
// merge key is the text before the first space.
var languageLabels = map[string]string{
	".js":     "JavaScript",
	".mjs":    "JavaScript",
	".cjs":    "JavaScript",
	".jsx":    "JavaScript (React)",
	".ts":     "TypeScript",
	".tsx":    "TypeScript (React)",
	".vue":    "Vue",
	".svelte": "Svelte",
	".py":     "Python",
	".rb":     "Ruby",
	".php":    "PHP",
	".go":     "Go",
	".rs":     "Rust",
	".java":   "Java",
	".kt":     "Kotlin",
	".kts":    "Kotlin",
	".swift":  "Swift",
	".c":      "C",
	".h":      "C",
	".cpp":    "C++",
	".cc":     "C++",
	".hpp":    "C++",
	".cs":     "C#",
	".dart":   "Dart",
	".scala":  "Scala",
	".ex":     "Elixir",
	".exs":    "Elixir",
	".hs":     "Haskell",
	".lua":    "Lua",
	".r":      "R",
	".jl":     "Julia",
	".zig":    "Zig",
	".sh":     "Shell",
	".bash":   "Shell",
	".html":   "HTML",
	".css":    "CSS",
	".scss":   "SCSS",
	".sass":   "SCSS",
	".less":   "Less",
	".sql":    "SQL",
}

// labelForExtension resolves an extension to a language label, falling back
// to enry's extension tables for anything outside the curated map.
func labelForExtension(name, ext string) string {
	if label, ok := languageLabels[ext]; ok {
		return label
	}
	if ext == "" {
		return ""
	}
	if lang, ok := enry.GetLanguageByExtension(name); ok {
		return lang
	}
	return ""
}

// DetectLanguages builds an extension histogram over non-directory files,
// merges variant labels into their base language, and returns the top five
// languages by file count. Percentages are shares of the recognized-file
// total, recomputed after the merge so count/total always agrees with the
// reported percentage.
func DetectLanguages(info *scanner.ProjectInfo) []LanguageStat {
	counts := make(map[string]int)
	var order []string

	recognized := 0
	for _, f := range info.Files {
		if f.IsDir {
			continue
		}
		label := labelForExtension(f.Name, f.Ext)
		if label == "" {
			continue
		}
		key := mergeKey(label)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
		recognized++
	}

	if recognized == 0 {
		return nil
	}

	stats := make([]LanguageStat, 0, len(order))
	for _, key := range order {
		stats = append(stats, LanguageStat{
			Name:       key,
			FileCount:  counts[key],
			Percentage: float64(counts[key]) / float64(recognized) * 100,
		})
	}

	// Sort by count descending; ties keep first-encountered order.
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].FileCount > stats[j].FileCount
	})

	if len(stats) > maxLanguages {
		stats = stats[:maxLanguages]
	}
	return stats
}

// mergeKey folds variant labels into their base language: everything
// before the first space.
func mergeKey(label string) string {
	if i := strings.IndexByte(label, ' '); i > 0 {
		return label[:i]
	}
	return label
}

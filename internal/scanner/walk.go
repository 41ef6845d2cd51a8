package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Options controls a scan.
type Options struct {
	// MaxDepth is the maximum directory depth below the root (root entries
	// are depth 1). Zero means DefaultMaxDepth.
	MaxDepth int

	// MaxFiles caps the number of collected entries. Zero means
	// DefaultMaxFiles.
	MaxFiles int

	// ExcludeDirs are directory names skipped entirely. Nil means
	// DefaultExcludeDirs.
	ExcludeDirs []string
}

const (
	// DefaultMaxDepth bounds traversal so pathological trees cannot stall
	// a scan.
	DefaultMaxDepth = 5

	// DefaultMaxFiles caps the collected entry count.
	DefaultMaxFiles = 2000
)

// DefaultExcludeDirs are directory names never descended into: version
// control, dependency trees, build output, and tool caches.
var DefaultExcludeDirs = []string{
	".git", ".svn", ".hg",
	"node_modules", "bower_components", "vendor",
	"dist", "build", "out", "target", ".next", ".nuxt", ".output",
	"coverage", ".nyc_output",
	"__pycache__", ".venv", "venv", ".tox", ".mypy_cache", ".pytest_cache",
	".idea", ".vscode", ".gradle", ".cache",
	".readmegen",
}

// secretFilePrefixes are file name prefixes excluded from the scan so that
// environment secrets never reach detection output or prompts.
var secretFilePrefixes = []string{".env"}

// Scan walks root and returns the populated ProjectInfo. The walk respects
// the default exclude list, the project's own .gitignore when present, a
// depth cap, and a file count cap. A missing manifest is not an error.
func Scan(root string, opts Options) (*ProjectInfo, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, err
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	maxFiles := opts.MaxFiles
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}
	excludes := opts.ExcludeDirs
	if excludes == nil {
		excludes = DefaultExcludeDirs
	}
	excludeSet := make(map[string]bool, len(excludes))
	for _, name := range excludes {
		excludeSet[name] = true
	}

	ignorer := loadIgnoreRules(abs)

	info := &ProjectInfo{
		Name: filepath.Base(abs),
		Root: abs,
	}

	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == abs {
			return nil
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		name := d.Name()
		if d.IsDir() {
			if excludeSet[name] {
				return filepath.SkipDir
			}
			if strings.Count(rel, "/")+1 > maxDepth {
				return filepath.SkipDir
			}
			if ignorer != nil && ignorer.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
		} else {
			if isSecretFile(name) {
				return nil
			}
			if ignorer != nil && ignorer.MatchesPath(rel) {
				return nil
			}
		}

		if len(info.Files) >= maxFiles {
			return filepath.SkipAll
		}

		f := ProjectFile{
			Path:    path,
			RelPath: rel,
			Name:    name,
			Ext:     strings.ToLower(filepath.Ext(name)),
			IsDir:   d.IsDir(),
		}
		info.Files = append(info.Files, f)
		if !f.IsDir {
			info.FileCount++
			if isConfigFile(name) {
				info.ConfigFiles = append(info.ConfigFiles, f)
			}
			if isSourceFile(f.Ext) {
				info.SourceFiles = append(info.SourceFiles, f)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	info.Manifest = loadManifest(abs)
	if info.Manifest != nil && info.Manifest.Name != "" {
		info.Name = info.Manifest.Name
	}

	if data, err := os.ReadFile(filepath.Join(abs, "README.md")); err == nil {
		info.HasReadme = true
		info.ReadmeContent = string(data)
	}

	return info, nil
}

// loadIgnoreRules compiles the project's .gitignore patterns, returning nil
// when the file is absent or empty.
func loadIgnoreRules(root string) *gitignore.GitIgnore {
	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if len(patterns) == 0 {
		return nil
	}
	return gitignore.CompileIgnoreLines(patterns...)
}

func isSecretFile(name string) bool {
	for _, prefix := range secretFilePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

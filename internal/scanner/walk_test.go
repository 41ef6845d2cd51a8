package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTree creates files under root. Keys use forward slashes; parent
// directories are created as needed.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func relPaths(info *ProjectInfo) map[string]bool {
	out := make(map[string]bool, len(info.Files))
	for _, f := range info.Files {
		out[f.RelPath] = true
	}
	return out
}

// --- basic collection ---

func TestScan_CollectsFilesAndDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/index.ts": "export {}",
		"src/app.tsx":  "export {}",
		"package.json": `{"name":"demo"}`,
	})

	info, err := Scan(root, Options{})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	paths := relPaths(info)
	for _, want := range []string{"src", "src/index.ts", "src/app.tsx", "package.json"} {
		if !paths[want] {
			t.Errorf("missing %q in scan result", want)
		}
	}
	if info.FileCount != 3 {
		t.Errorf("expected 3 files, got %d", info.FileCount)
	}
	if info.Name != "demo" {
		t.Errorf("expected manifest name to win, got %q", info.Name)
	}
}

func TestScan_ClassifiesConfigAndSourceFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"package.json":  `{}`,
		"tsconfig.json": `{}`,
		".eslintrc.js":  "module.exports = {}",
		"src/main.ts":   "",
		"README.md":     "# Demo",
	})

	info, err := Scan(root, Options{})
	if err != nil {
		t.Fatal(err)
	}

	configs := make(map[string]bool)
	for _, f := range info.ConfigFiles {
		configs[f.Name] = true
	}
	if !configs["package.json"] || !configs["tsconfig.json"] || !configs[".eslintrc.js"] {
		t.Errorf("config files misclassified: %v", configs)
	}

	if len(info.SourceFiles) != 2 {
		// main.ts and .eslintrc.js (a .js file) both count as source.
		t.Errorf("expected 2 source files, got %d", len(info.SourceFiles))
	}
	if !info.HasReadme || !strings.Contains(info.ReadmeContent, "# Demo") {
		t.Error("existing README not loaded")
	}
}

// --- exclusions ---

func TestScan_SkipsExcludedDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"node_modules/react/index.js": "",
		".git/HEAD":                   "",
		"dist/bundle.js":              "",
		"src/index.js":                "",
	})

	info, err := Scan(root, Options{})
	if err != nil {
		t.Fatal(err)
	}
	paths := relPaths(info)
	for _, banned := range []string{"node_modules", ".git", "dist", "node_modules/react/index.js"} {
		if paths[banned] {
			t.Errorf("excluded path %q leaked into scan result", banned)
		}
	}
	if !paths["src/index.js"] {
		t.Error("expected src/index.js to be collected")
	}
}

func TestScan_NeverCollectsSecretFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".env":        "API_KEY=secret",
		".env.local":  "API_KEY=secret",
		".envrc":      "export API_KEY=secret",
		"src/main.js": "",
	})

	info, err := Scan(root, Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range info.Files {
		if strings.HasPrefix(f.Name, ".env") {
			t.Errorf("secret file %q leaked into scan result", f.RelPath)
		}
	}
}

func TestScan_RespectsGitignore(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore":       "generated/\n*.log\n",
		"generated/gen.ts": "",
		"debug.log":        "",
		"src/main.ts":      "",
	})

	info, err := Scan(root, Options{})
	if err != nil {
		t.Fatal(err)
	}
	paths := relPaths(info)
	if paths["generated"] || paths["generated/gen.ts"] {
		t.Error("gitignored directory leaked into scan result")
	}
	if paths["debug.log"] {
		t.Error("gitignored file leaked into scan result")
	}
	if !paths["src/main.ts"] {
		t.Error("expected src/main.ts to be collected")
	}
}

// --- caps ---

func TestScan_DepthCap(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/one.txt":       "",
		"a/b/two.txt":     "",
		"a/b/c/three.txt": "",
	})

	info, err := Scan(root, Options{MaxDepth: 2})
	if err != nil {
		t.Fatal(err)
	}
	paths := relPaths(info)
	if !paths["a/one.txt"] || !paths["a/b"] {
		t.Error("expected depth-2 entries to be collected")
	}
	if paths["a/b/c"] || paths["a/b/c/three.txt"] {
		t.Error("entries beyond the depth cap leaked into scan result")
	}
}

func TestScan_FileCap(t *testing.T) {
	root := t.TempDir()
	files := make(map[string]string)
	for i := 0; i < 30; i++ {
		files[filepath.Join("src", "f"+strings.Repeat("x", i)+".js")] = ""
	}
	writeTree(t, root, files)

	info, err := Scan(root, Options{MaxFiles: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(info.Files) > 10 {
		t.Errorf("file cap exceeded: %d entries", len(info.Files))
	}
}

// --- manifest handling ---

func TestScan_MalformedManifestIsNil(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"package.json": "{not json",
	})
	info, err := Scan(root, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if info.Manifest != nil {
		t.Error("malformed manifest must yield nil")
	}
	if info.Name != filepath.Base(root) {
		t.Errorf("expected directory-name fallback, got %q", info.Name)
	}
}

func TestScan_MissingRoot(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "nope"), Options{}); err == nil {
		t.Fatal("expected error for missing root")
	}
}

// --- helpers on ProjectInfo ---

func TestTopLevelDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/a.ts":  "",
		"docs/b.md": "",
		"top.txt":   "",
	})
	info, err := Scan(root, Options{})
	if err != nil {
		t.Fatal(err)
	}
	dirs := info.TopLevelDirs()
	if len(dirs) != 2 {
		t.Fatalf("expected 2 top-level dirs, got %v", dirs)
	}
}

func TestManifestHelpers_NilSafe(t *testing.T) {
	var m *Manifest
	if m.HasDependency("react") || m.HasDevDependency("jest") || m.HasWorkspaces() || m.HasBin() || m.HasExports() {
		t.Error("nil manifest helpers must all report false")
	}
}

package badge

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/readmegen/internal/detect"
	"github.com/blackwell-systems/readmegen/internal/scanner"
)

func labels(badges []Badge) []string {
	out := make([]string, 0, len(badges))
	for _, b := range badges {
		out = append(out, b.Label)
	}
	return out
}

func hasLabel(badges []Badge, label string) int {
	count := 0
	for _, b := range badges {
		if b.Label == label {
			count++
		}
	}
	return count
}

// --- dedup ---

func TestSynthesize_ReactOnceDespiteThreeSignals(t *testing.T) {
	// React appears as a framework match, a manifest dependency, and a
	// (react-flavored) language variant. One badge must result.
	info := &scanner.ProjectInfo{
		Manifest: &scanner.Manifest{Dependencies: map[string]string{"react": "^18.0.0"}},
	}
	det := detect.Result{
		Languages:  []detect.LanguageStat{{Name: "JavaScript", FileCount: 3, Percentage: 100}},
		Frameworks: []detect.FrameworkMatch{{Name: "React", Category: detect.CategoryFrontend, Confidence: 1.0}},
	}
	badges := Synthesize(info, det)
	if n := hasLabel(badges, "React"); n != 1 {
		t.Fatalf("expected exactly 1 React badge, got %d (%v)", n, labels(badges))
	}
}

func TestSynthesize_ViteOnceAsFrameworkAndBuildTool(t *testing.T) {
	info := &scanner.ProjectInfo{
		Manifest: &scanner.Manifest{DevDependencies: map[string]string{"vite": "^5.0.0"}},
	}
	det := detect.Result{
		Frameworks: []detect.FrameworkMatch{{Name: "Vite", Category: detect.CategoryBuildTool, Confidence: 1.0}},
		BuildTools: []string{"Vite"},
	}
	badges := Synthesize(info, det)
	if n := hasLabel(badges, "Vite"); n != 1 {
		t.Fatalf("expected exactly 1 Vite badge, got %d (%v)", n, labels(badges))
	}
}

// --- ordering ---

func TestSynthesize_LanguagesBeforeFrameworksBeforePackageManager(t *testing.T) {
	info := &scanner.ProjectInfo{}
	det := detect.Result{
		Languages:      []detect.LanguageStat{{Name: "TypeScript", FileCount: 5, Percentage: 100}},
		Frameworks:     []detect.FrameworkMatch{{Name: "Express", Category: detect.CategoryBackend, Confidence: 1.0}},
		PackageManager: "pnpm",
	}
	got := labels(Synthesize(info, det))
	want := []string{"TypeScript", "Express", "pnpm", "Contributions welcome"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q (all: %v)", i, want[i], got[i], got)
		}
	}
}

// --- structural and meta badges ---

func TestSynthesize_DockerAndCI(t *testing.T) {
	info := &scanner.ProjectInfo{Files: []scanner.ProjectFile{
		{RelPath: "Dockerfile", Name: "Dockerfile"},
		{RelPath: ".github/workflows/ci.yml", Name: "ci.yml", Ext: ".yml"},
	}}
	badges := Synthesize(info, detect.Result{})
	if hasLabel(badges, "Docker") != 1 {
		t.Errorf("expected Docker badge, got %v", labels(badges))
	}
	if hasLabel(badges, "CI") != 1 {
		t.Errorf("expected CI badge, got %v", labels(badges))
	}
}

func TestSynthesize_LicenseAndVersionFromManifest(t *testing.T) {
	info := &scanner.ProjectInfo{
		Manifest: &scanner.Manifest{License: "MIT", Version: "1.2.3"},
	}
	badges := Synthesize(info, detect.Result{})
	var license, version string
	for _, b := range badges {
		switch b.Label {
		case "License":
			license = b.Markdown
		case "Version":
			version = b.Markdown
		}
	}
	if !strings.Contains(license, "license-MIT-blue") {
		t.Errorf("unexpected license badge: %q", license)
	}
	if !strings.Contains(version, "version-1.2.3-blue") {
		t.Errorf("unexpected version badge: %q", version)
	}
}

func TestSynthesize_ContributionsBadgeAlwaysLast(t *testing.T) {
	badges := Synthesize(&scanner.ProjectInfo{}, detect.Result{})
	if len(badges) == 0 {
		t.Fatal("expected at least the closing badge")
	}
	if badges[len(badges)-1].Label != "Contributions welcome" {
		t.Errorf("expected contributions badge last, got %v", labels(badges))
	}
}

// --- shields escaping ---

func TestURLEscapeBadge(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Apache-2.0", "Apache--2.0"},
		{"BSD 3 Clause", "BSD_3_Clause"},
		{"foo_bar", "foo__bar"},
	}
	for _, c := range cases {
		if got := urlEscapeBadge(c.in); got != c.want {
			t.Errorf("urlEscapeBadge(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

// --- Markdown ---

func TestMarkdown_SpaceJoined(t *testing.T) {
	badges := []Badge{
		{Label: "A", Markdown: "![A](a)"},
		{Label: "B", Markdown: "![B](b)"},
	}
	if got := Markdown(badges); got != "![A](a) ![B](b)" {
		t.Errorf("unexpected joined markdown: %q", got)
	}
}

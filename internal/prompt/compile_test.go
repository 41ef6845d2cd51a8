package prompt

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/readmegen/internal/classify"
	"github.com/blackwell-systems/readmegen/internal/detect"
	"github.com/blackwell-systems/readmegen/internal/scanner"
	"github.com/blackwell-systems/readmegen/internal/template"
)

func sampleProject() (*scanner.ProjectInfo, detect.Result, classify.Result) {
	info := &scanner.ProjectInfo{
		Name:      "acme-app",
		FileCount: 12,
		Manifest: &scanner.Manifest{
			Name:         "acme-app",
			Description:  "An example application",
			Dependencies: map[string]string{"react": "^18.0.0"},
			Scripts:      map[string]string{"dev": "vite", "build": "vite build"},
		},
	}
	det := detect.Result{
		Languages:      []detect.LanguageStat{{Name: "TypeScript", Percentage: 100, FileCount: 10}},
		Frameworks:     []detect.FrameworkMatch{{Name: "React", Category: detect.CategoryFrontend, Confidence: 1.0}},
		PackageManager: "pnpm",
	}
	cls := classify.Result{Archetype: classify.WebApp, Label: "Web App", Confidence: 0.85, Reason: "frontend framework detected: React"}
	return info, det, cls
}

// --- directives ---

func TestLanguageDirective_KnownAndFallback(t *testing.T) {
	if d := LanguageDirective("ja"); !strings.Contains(d, "Japanese") {
		t.Errorf("expected Japanese directive, got %q", d)
	}
	if d := LanguageDirective("klingon"); !strings.Contains(d, "English") {
		t.Errorf("expected English fallback, got %q", d)
	}
	if LanguageDirective("") != LanguageDirective("en") {
		t.Error("empty code must fall back to English")
	}
}

func TestToneDirective_KnownAndFallback(t *testing.T) {
	if d := ToneDirective(ToneTechnical); !strings.Contains(d, "technical") {
		t.Errorf("expected technical directive, got %q", d)
	}
	if ToneDirective("sarcastic") != ToneDirective(ToneProfessional) {
		t.Error("unknown tone must fall back to professional")
	}
}

// --- CompileGeneration ---

func TestCompileGeneration_IncludesSummaryAndSections(t *testing.T) {
	info, det, cls := sampleProject()
	tmpl := template.Get("standard")
	c := CompileGeneration(info, det, cls, tmpl, Options{TemplateID: "standard"})

	if !strings.Contains(c.User, "acme-app") {
		t.Error("user instruction must carry the project name")
	}
	if !strings.Contains(c.User, "Web App") {
		t.Error("user instruction must carry the classification label")
	}
	if !strings.Contains(c.User, "Installation") {
		t.Error("user instruction must list the template's sections")
	}
	if !strings.Contains(c.System, "H1 title") {
		t.Error("system instruction must carry the formatting rules")
	}
	if !strings.Contains(c.System, tmpl.StyleDirective[:30]) {
		t.Error("system instruction must carry the template style directive")
	}
}

func TestCompileGeneration_BadgesOnlyWhenRequested(t *testing.T) {
	info, det, cls := sampleProject()
	tmpl := template.Get("standard")

	with := CompileGeneration(info, det, cls, tmpl, Options{IncludeBadges: true})
	if !strings.Contains(with.User, "img.shields.io") {
		t.Error("expected badge markdown when IncludeBadges is set")
	}

	without := CompileGeneration(info, det, cls, tmpl, Options{IncludeBadges: false})
	if strings.Contains(without.User, "img.shields.io") {
		t.Error("expected no badge markdown when IncludeBadges is off")
	}
}

func TestCompileGeneration_CustomBadgesAndInstructions(t *testing.T) {
	info, det, cls := sampleProject()
	c := CompileGeneration(info, det, cls, template.Get("minimal"), Options{
		CustomBadges: "![Custom](https://example.com/custom.svg)",
		Instructions: "Mention the hosted demo at demo.example.com.",
	})
	if !strings.Contains(c.User, "custom.svg") {
		t.Error("custom badges must appear verbatim")
	}
	if !strings.Contains(c.User, "demo.example.com") {
		t.Error("free-text instructions must be carried through")
	}
}

func TestCompileGeneration_Deterministic(t *testing.T) {
	info, det, cls := sampleProject()
	tmpl := template.Get("detailed")
	opts := Options{TemplateID: "detailed", Language: "de", Tone: ToneFriendly, IncludeBadges: true}
	first := CompileGeneration(info, det, cls, tmpl, opts)
	for range 10 {
		if again := CompileGeneration(info, det, cls, tmpl, opts); again != first {
			t.Fatal("compiled prompt changed between identical calls")
		}
	}
}

// --- CompileSection ---

func TestCompileSection_NamesSectionAndEmbedsDocument(t *testing.T) {
	info, det, cls := sampleProject()
	section := template.FindSection("usage")
	current := "# acme-app\n\n## Usage\n\nOld usage text.\n"
	c := CompileSection(*section, info, det, cls, current, "add a quickstart")

	if !strings.Contains(c.System, `"Usage"`) {
		t.Error("system instruction must name the target section")
	}
	if !strings.Contains(c.System, "nothing else") {
		t.Error("system instruction must restrict output to the one section")
	}
	if !strings.Contains(c.User, "Old usage text.") {
		t.Error("current document must be embedded as context")
	}
	if !strings.Contains(c.User, "add a quickstart") {
		t.Error("section instructions must be carried through")
	}
}

// --- CompileRefinement ---

func TestCompileRefinement_PreservationContract(t *testing.T) {
	c := CompileRefinement("shorten the overview", "# Doc\n\nBody text.")

	if !strings.Contains(c.System, "byte-for-byte") {
		t.Error("system instruction must demand byte-for-byte preservation")
	}
	if !strings.Contains(c.System, "do not reformat, reflow, or rewrap") {
		t.Error("system instruction must forbid reflowing untouched lines")
	}
	if !strings.Contains(c.User, "shorten the overview") {
		t.Error("user instruction must carry the requested change")
	}
	if !strings.Contains(c.User, "Body text.") {
		t.Error("user instruction must carry the current document")
	}
}

// --- ProjectSummary ---

func TestProjectSummary_ManifestFacts(t *testing.T) {
	info, det, _ := sampleProject()
	s := ProjectSummary(info, det)
	if !strings.Contains(s, "An example application") {
		t.Error("summary must include the manifest description")
	}
	if !strings.Contains(s, "react") {
		t.Error("summary must list dependencies")
	}
	if !strings.Contains(s, "build: vite build") {
		t.Error("summary must list scripts")
	}
}

func TestProjectSummary_NoManifest(t *testing.T) {
	s := ProjectSummary(&scanner.ProjectInfo{Name: "bare"}, detect.Result{})
	if strings.Contains(s, "## Manifest") {
		t.Error("summary must omit the manifest block when there is none")
	}
}

// --- TechnologyTable ---

func TestTechnologyTable(t *testing.T) {
	_, det, _ := sampleProject()
	s := TechnologyTable(det)
	if !strings.Contains(s, "TypeScript: 100.0% (10 files)") {
		t.Errorf("unexpected language line in %q", s)
	}
	if !strings.Contains(s, "React (frontend, confidence 1.00)") {
		t.Errorf("unexpected framework line in %q", s)
	}
	if !strings.Contains(s, "Package manager: pnpm") {
		t.Errorf("missing package manager line in %q", s)
	}
}

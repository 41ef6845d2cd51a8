package template

import "testing"

// --- registry ---

func TestGet_KnownTemplates(t *testing.T) {
	for _, id := range []string{"standard", "minimal", "detailed", "open-source"} {
		if Get(id) == nil {
			t.Errorf("expected template %q to exist", id)
		}
	}
}

func TestGet_UnknownTemplate(t *testing.T) {
	if Get("nope") != nil {
		t.Error("expected nil for unknown template id")
	}
}

func TestAll_DeclarationOrder(t *testing.T) {
	all := All()
	want := []string{"standard", "minimal", "detailed", "open-source"}
	if len(all) != len(want) {
		t.Fatalf("expected %d templates, got %d", len(want), len(all))
	}
	for i, tmpl := range all {
		if tmpl.ID != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], tmpl.ID)
		}
	}
}

func TestDefaultID_Exists(t *testing.T) {
	if Get(DefaultID) == nil {
		t.Fatalf("default template %q missing from registry", DefaultID)
	}
}

func TestTemplates_EverySectionInCatalog(t *testing.T) {
	catalog := make(map[string]bool)
	for _, s := range Sections() {
		catalog[s.ID] = true
	}
	for _, tmpl := range All() {
		for _, s := range tmpl.Sections {
			if !catalog[s.ID] {
				t.Errorf("template %q has section %q outside the catalog", tmpl.ID, s.ID)
			}
		}
	}
}

func TestMinimal_HasNoBadgesSection(t *testing.T) {
	tmpl := Get("minimal")
	for _, s := range tmpl.Sections {
		if s.ID == "badges" && s.DefaultEnabled {
			t.Error("minimal template must not enable badges by default")
		}
	}
}

// --- FindSection ---

func TestFindSection(t *testing.T) {
	s := FindSection("installation")
	if s == nil || s.Name != "Installation" {
		t.Fatalf("expected Installation section, got %+v", s)
	}
	if FindSection("bogus") != nil {
		t.Error("expected nil for unknown section id")
	}
}

func TestFindSection_ReturnsCopy(t *testing.T) {
	s := FindSection("overview")
	s.Name = "mutated"
	if FindSection("overview").Name != "Overview" {
		t.Error("FindSection must not expose the catalog for mutation")
	}
}

// --- ResolveSections ---

func TestResolveSections_DefaultsWhenNoExplicitList(t *testing.T) {
	tmpl := Get("minimal")
	sections := ResolveSections(tmpl, nil)
	want := []string{"overview", "installation", "usage", "license"}
	if len(sections) != len(want) {
		t.Fatalf("expected %v, got %d sections", want, len(sections))
	}
	for i, s := range sections {
		if s.ID != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], s.ID)
		}
	}
}

func TestResolveSections_ExplicitListKeepsCatalogOrder(t *testing.T) {
	tmpl := Get("standard")
	sections := ResolveSections(tmpl, []string{"license", "overview"})
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].ID != "overview" || sections[1].ID != "license" {
		t.Errorf("expected catalog order [overview license], got [%s %s]", sections[0].ID, sections[1].ID)
	}
}

func TestResolveSections_UnknownIDsDropped(t *testing.T) {
	tmpl := Get("standard")
	sections := ResolveSections(tmpl, []string{"overview", "nonsense"})
	if len(sections) != 1 || sections[0].ID != "overview" {
		t.Fatalf("expected only overview, got %+v", sections)
	}
}

// Package template holds the static catalog of README templates and the
// canonical section catalog they draw from. Templates are configuration,
// not user-editable at runtime.
package template

// Section is one README section descriptor. The section catalog is
// template-independent; templates only override which sections default to
// enabled.
type Section struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	DefaultEnabled bool   `json:"default_enabled"`
}

// Template is one document template.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`

	// Sections is the catalog with this template's default-enabled flags
	// applied, in canonical order.
	Sections []Section `json:"sections"`

	// StyleDirective is injected verbatim into the compiled system
	// instruction.
	StyleDirective string `json:"-"`
}

// sectionCatalog is the canonical section list in presentation order.
var sectionCatalog = []Section{
	{"overview", "Overview", "What the project does and why it exists", true},
	{"badges", "Badges", "Technology and status badges", true},
	{"features", "Features", "Key capabilities as a bulleted list", true},
	{"tech-stack", "Tech Stack", "Languages, frameworks, and tools in use", true},
	{"installation", "Installation", "Prerequisites and setup commands", true},
	{"usage", "Usage", "How to run and basic examples", true},
	{"configuration", "Configuration", "Environment variables and settings", false},
	{"project-structure", "Project Structure", "Annotated directory layout", false},
	{"api", "API Reference", "Endpoints or public API surface", false},
	{"screenshots", "Screenshots", "Visual preview placeholders", false},
	{"testing", "Testing", "How to run the test suite", false},
	{"deployment", "Deployment", "How to ship to production", false},
	{"roadmap", "Roadmap", "Planned work and known gaps", false},
	{"contributing", "Contributing", "How to propose changes", true},
	{"license", "License", "License statement", true},
	{"acknowledgments", "Acknowledgments", "Credits and inspirations", false},
}

// templateDef declares a template as overrides against the catalog.
type templateDef struct {
	id          string
	name        string
	description string
	icon        string
	enabled     []string
	style       string
}

var templateDefs = []templateDef{
	{
		id:          "standard",
		name:        "Standard",
		description: "Balanced README for most projects",
		icon:        "file-text",
		enabled: []string{
			"overview", "badges", "features", "tech-stack", "installation",
			"usage", "contributing", "license",
		},
		style: `Write a clear, well-organized README. Favor short paragraphs and
scannable lists over dense prose. Every section earns its place; omit
filler. Use sentence-case headings.`,
	},
	{
		id:          "minimal",
		name:        "Minimal",
		description: "Short README with only the essentials",
		icon:        "minus-square",
		enabled:     []string{"overview", "installation", "usage", "license"},
		style: `Write a compact README. No badges, no marketing language, no
section longer than a few lines. A reader should finish it in under a
minute.`,
	},
	{
		id:          "detailed",
		name:        "Detailed",
		description: "Comprehensive documentation-style README",
		icon:        "book-open",
		enabled: []string{
			"overview", "badges", "features", "tech-stack", "installation",
			"usage", "configuration", "project-structure", "api", "testing",
			"deployment", "contributing", "license", "acknowledgments",
		},
		style: `Write a thorough README that doubles as entry-level
documentation. Explain not just how but why. Include worked examples in
fenced code blocks and document configuration exhaustively.`,
	},
	{
		id:          "open-source",
		name:        "Open Source",
		description: "Community-oriented README for public projects",
		icon:        "users",
		enabled: []string{
			"overview", "badges", "features", "tech-stack", "installation",
			"usage", "roadmap", "contributing", "license", "acknowledgments",
		},
		style: `Write a welcoming README for an open-source audience. Emphasize
how to get involved, keep the tone friendly but precise, and make the
contributing path obvious.`,
	},
}

// registry is built once at init from templateDefs.
var registry = buildRegistry()

func buildRegistry() map[string]*Template {
	reg := make(map[string]*Template, len(templateDefs))
	for _, def := range templateDefs {
		enabled := make(map[string]bool, len(def.enabled))
		for _, id := range def.enabled {
			enabled[id] = true
		}
		sections := make([]Section, len(sectionCatalog))
		copy(sections, sectionCatalog)
		for i := range sections {
			sections[i].DefaultEnabled = enabled[sections[i].ID]
		}
		reg[def.id] = &Template{
			ID:             def.id,
			Name:           def.name,
			Description:    def.description,
			Icon:           def.icon,
			Sections:       sections,
			StyleDirective: def.style,
		}
	}
	return reg
}

// DefaultID is the template used when none is requested.
const DefaultID = "standard"

// Get returns the template with the given id, or nil.
func Get(id string) *Template {
	return registry[id]
}

// All returns every template in declaration order.
func All() []*Template {
	out := make([]*Template, 0, len(templateDefs))
	for _, def := range templateDefs {
		out = append(out, registry[def.id])
	}
	return out
}

// Sections returns the canonical section catalog.
func Sections() []Section {
	out := make([]Section, len(sectionCatalog))
	copy(out, sectionCatalog)
	return out
}

// FindSection returns the catalog section with the given id, or nil.
func FindSection(id string) *Section {
	for i := range sectionCatalog {
		if sectionCatalog[i].ID == id {
			s := sectionCatalog[i]
			return &s
		}
	}
	return nil
}

// ResolveSections returns the sections enabled for a generation request:
// the explicit id list when provided, otherwise the template's defaults.
// Unknown explicit ids are dropped; catalog order is preserved.
func ResolveSections(tmpl *Template, explicit []string) []Section {
	if len(explicit) == 0 {
		var out []Section
		for _, s := range tmpl.Sections {
			if s.DefaultEnabled {
				out = append(out, s)
			}
		}
		return out
	}
	want := make(map[string]bool, len(explicit))
	for _, id := range explicit {
		want[id] = true
	}
	var out []Section
	for _, s := range tmpl.Sections {
		if want[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

package prompt

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/readmegen/internal/badge"
	"github.com/blackwell-systems/readmegen/internal/classify"
	"github.com/blackwell-systems/readmegen/internal/detect"
	"github.com/blackwell-systems/readmegen/internal/scanner"
	"github.com/blackwell-systems/readmegen/internal/template"
)

// Options are the per-request generation knobs. They are supplied by the
// caller and never persisted.
type Options struct {
	// TemplateID selects the document template.
	TemplateID string

	// Sections is an explicit list of enabled section ids; empty means the
	// template's defaults.
	Sections []string

	// Language is the target-language code (see LanguageDirective).
	Language string

	// Tone is the tone name (see ToneDirective).
	Tone string

	// Instructions is free-text guidance appended to the user instruction.
	Instructions string

	// IncludeBadges controls whether synthesized badges are embedded.
	IncludeBadges bool

	// CustomBadges is caller-supplied badge markdown used verbatim.
	CustomBadges string
}

// CompileGeneration builds the full-document generation prompt.
func CompileGeneration(info *scanner.ProjectInfo, det detect.Result, cls classify.Result, tmpl *template.Template, opts Options) Compiled {
	var system strings.Builder
	system.WriteString("You are an expert technical writer generating a README.md for a software project.\n\n")
	system.WriteString(tmpl.StyleDirective)
	system.WriteString("\n\n")
	system.WriteString(LanguageDirective(opts.Language))
	system.WriteString("\n")
	system.WriteString(ToneDirective(opts.Tone))
	system.WriteString("\n\n")
	system.WriteString(formattingRules)

	var user strings.Builder
	user.WriteString(ProjectSummary(info, det))
	user.WriteString("\n")
	user.WriteString(TechnologyTable(det))
	fmt.Fprintf(&user, "\nProject type: %s (%s, confidence %.2f). Basis: %s\n", cls.Label, cls.Archetype, cls.Confidence, cls.Reason)

	sections := template.ResolveSections(tmpl, opts.Sections)
	fmt.Fprintf(&user, "\n## Requested document\n\nTemplate: %s\nSections to include, in order:\n", tmpl.Name)
	for _, s := range sections {
		fmt.Fprintf(&user, "- %s: %s\n", s.Name, s.Description)
	}

	if opts.IncludeBadges {
		badges := badge.Synthesize(info, det)
		if len(badges) > 0 {
			user.WriteString("\nUse these badges verbatim directly under the title:\n")
			user.WriteString(badge.Markdown(badges))
			user.WriteString("\n")
		}
	}
	if opts.CustomBadges != "" {
		user.WriteString("\nAlso include these user-supplied badges verbatim:\n")
		user.WriteString(opts.CustomBadges)
		user.WriteString("\n")
	}
	if opts.Instructions != "" {
		user.WriteString("\n## Additional instructions\n\n")
		user.WriteString(opts.Instructions)
		user.WriteString("\n")
	}

	return Compiled{System: system.String(), User: user.String()}
}

// CompileSection builds the narrower regenerate-one-section prompt. The
// current document is embedded as read-only context; the backend must emit
// only the named section.
func CompileSection(section template.Section, info *scanner.ProjectInfo, det detect.Result, cls classify.Result, current string, instructions string) Compiled {
	var system strings.Builder
	system.WriteString("You are an expert technical writer revising one section of an existing README.md.\n\n")
	fmt.Fprintf(&system, "Rewrite only the %q section (%s). Output exactly that section, its H2 heading followed by its content, and nothing else.\n", section.Name, section.Description)
	system.WriteString("Treat the rest of the document as read-only context; do not restate or modify it.\n\n")
	system.WriteString(formattingRules)

	var user strings.Builder
	user.WriteString(ProjectSummary(info, det))
	user.WriteString("\n")
	user.WriteString(TechnologyTable(det))
	fmt.Fprintf(&user, "\nProject type: %s. Basis: %s\n", cls.Label, cls.Reason)
	user.WriteString("\n## Current document (context only)\n\n")
	user.WriteString(current)
	user.WriteString("\n")
	if instructions != "" {
		user.WriteString("\n## Section instructions\n\n")
		user.WriteString(instructions)
		user.WriteString("\n")
	}

	return Compiled{System: system.String(), User: user.String()}
}

// CompileRefinement builds the free-form refinement prompt. The system
// instruction pins everything except the requested change: unrelated text
// must survive byte-for-byte.
func CompileRefinement(instruction, current string) Compiled {
	var system strings.Builder
	system.WriteString("You are editing an existing README.md on behalf of its author.\n\n")
	system.WriteString("Apply only the requested change. Preserve all unrelated text byte-for-byte: ")
	system.WriteString("do not reformat, reflow, or rewrap any line you were not asked to change, ")
	system.WriteString("including badge lines and tables. ")
	system.WriteString("Return the complete modified document with no surrounding commentary and no code fencing.")

	var user strings.Builder
	user.WriteString("## Requested change\n\n")
	user.WriteString(instruction)
	user.WriteString("\n\n## Document\n\n")
	user.WriteString(current)

	return Compiled{System: system.String(), User: user.String()}
}

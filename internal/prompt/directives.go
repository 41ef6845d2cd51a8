// Package prompt compiles scan, detection, and classification data into
// the instruction pairs consumed by a generation backend. Every entry
// point is a pure function: same inputs, same prompt text.
package prompt

// Compiled is one ready-to-send prompt: a style/system instruction and a
// context/user instruction.
type Compiled struct {
	System string
	User   string
}

// Tones accepted by the tone directive.
const (
	ToneProfessional = "professional"
	ToneFriendly     = "friendly"
	ToneMinimal      = "minimal"
	ToneTechnical    = "technical"
)

// languageDirectives is the fixed target-language enum. Unrecognized
// values fall back to fluent English.
var languageDirectives = map[string]string{
	"en":        "Write the document in fluent, natural English.",
	"simple-en": "Write the document in simplified English suitable for non-native readers: short sentences, common vocabulary.",
	"es":        "Write the document in Spanish.",
	"fr":        "Write the document in French.",
	"de":        "Write the document in German.",
	"pt":        "Write the document in Portuguese.",
	"ja":        "Write the document in Japanese.",
	"zh":        "Write the document in Simplified Chinese.",
	"ko":        "Write the document in Korean.",
}

var toneDirectives = map[string]string{
	ToneProfessional: "Use a professional, confident tone.",
	ToneFriendly:     "Use a friendly, approachable tone without being chatty.",
	ToneMinimal:      "Use a terse, minimal tone. No filler sentences.",
	ToneTechnical:    "Use a precise, technical tone aimed at experienced developers.",
}

// LanguageDirective resolves a target language code to its directive,
// defaulting to fluent English.
func LanguageDirective(code string) string {
	if d, ok := languageDirectives[code]; ok {
		return d
	}
	return languageDirectives["en"]
}

// ToneDirective resolves a tone name to its directive, defaulting to
// professional.
func ToneDirective(tone string) string {
	if d, ok := toneDirectives[tone]; ok {
		return d
	}
	return toneDirectives[ToneProfessional]
}

// formattingRules is the fixed style contract shared by all generation
// prompts.
const formattingRules = `Formatting rules:
- Start with a single H1 title matching the project name; all other headings are H2.
- Write features as bulleted lists, one capability per bullet, bold lead phrase followed by a short explanation.
- Installation commands must match the detected package manager exactly; never invent commands for tools the project does not use.
- Derive the project structure section, if requested, from the actual file listing provided; never invent directories.
- Use fenced code blocks with language tags for all commands and code.
- Do not wrap the final document in a code fence and do not add commentary before or after it.`

package app

import (
	"strings"
	"testing"
)

const sampleDoc = `# acme

Intro paragraph.

## Installation

` + "```bash\nnpm install\n```" + `

## Usage

Old usage text.

## License

MIT
`

func TestSpliceSection_ReplacesMiddleSection(t *testing.T) {
	replacement := "## Usage\n\nNew usage text."
	out := spliceSection(sampleDoc, "Usage", replacement)

	if !strings.Contains(out, "New usage text.") {
		t.Error("replacement missing from result")
	}
	if strings.Contains(out, "Old usage text.") {
		t.Error("old section text survived the splice")
	}
	if !strings.Contains(out, "Intro paragraph.") || !strings.Contains(out, "npm install") {
		t.Error("content before the section was altered")
	}
	if !strings.Contains(out, "## License") || !strings.Contains(out, "MIT") {
		t.Error("content after the section was altered")
	}
}

func TestSpliceSection_ReplacesLastSection(t *testing.T) {
	out := spliceSection(sampleDoc, "License", "## License\n\nApache-2.0")
	if !strings.Contains(out, "Apache-2.0") {
		t.Error("replacement missing")
	}
	if strings.Contains(out, "\nMIT\n") {
		t.Error("old trailing section survived")
	}
	if !strings.Contains(out, "Old usage text.") {
		t.Error("earlier sections must be untouched")
	}
}

func TestSpliceSection_AppendsMissingSection(t *testing.T) {
	out := spliceSection("# acme\n\nIntro.\n", "Roadmap", "## Roadmap\n\n- ship it")
	if !strings.Contains(out, "## Roadmap") || !strings.Contains(out, "- ship it") {
		t.Error("missing section must be appended")
	}
	if !strings.HasPrefix(out, "# acme") {
		t.Error("document head must be preserved")
	}
}

func TestSpliceSection_HeadingMatchIsCaseInsensitive(t *testing.T) {
	doc := "# x\n\n## usage\n\nold\n"
	out := spliceSection(doc, "Usage", "## Usage\n\nnew")
	if strings.Contains(out, "old") {
		t.Error("case-insensitive heading match failed")
	}
}

func TestSpliceSection_PreservesUnrelatedBytes(t *testing.T) {
	out := spliceSection(sampleDoc, "Usage", "## Usage\n\nNew.")
	head := strings.SplitN(sampleDoc, "## Usage", 2)[0]
	if !strings.HasPrefix(out, head) {
		t.Error("bytes before the spliced section changed")
	}
}

func TestPick(t *testing.T) {
	if pick("flag", "config") != "flag" {
		t.Error("flag value must win")
	}
	if pick("", "config") != "config" {
		t.Error("config value must be the fallback")
	}
}

// Package config provides configuration loading and defaults for readmegen.
package config

// DefaultConfigDir is the default location for readmegen configuration.
const DefaultConfigDir = "~/.config/readmegen"

// DefaultDBName is the filename for the SQLite run log.
const DefaultDBName = "readmegen.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultMaxDepth is the default scan recursion depth.
const DefaultMaxDepth = 5

// DefaultMaxFiles is the default scan file cap.
const DefaultMaxFiles = 2000

// DefaultTemplate is the template used when none is requested.
const DefaultTemplate = "standard"

// DefaultTone is the tone used when none is requested.
const DefaultTone = "professional"

// DefaultLanguage is the target-language code used when none is requested.
const DefaultLanguage = "en"

// DefaultGeminiModels are the Gemini candidates, in fallback order.
var DefaultGeminiModels = []string{"gemini-2.0-flash", "gemini-1.5-flash"}

// DefaultOpenAIModels are the OpenAI candidates, in fallback order.
var DefaultOpenAIModels = []string{"gpt-4o-mini"}

// DefaultGeneration holds the default generation preferences.
var DefaultGeneration = Generation{
	Template:      DefaultTemplate,
	Tone:          DefaultTone,
	Language:      DefaultLanguage,
	IncludeBadges: true,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

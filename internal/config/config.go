package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level readmegen configuration.
type Config struct {
	Scan       Scan       `mapstructure:"scan"`
	Generation Generation `mapstructure:"generation"`
	Models     Models     `mapstructure:"models"`
	Output     Output     `mapstructure:"output"`
}

// Scan controls workspace traversal.
type Scan struct {
	MaxDepth    int      `mapstructure:"max_depth"`
	MaxFiles    int      `mapstructure:"max_files"`
	ExcludeDirs []string `mapstructure:"exclude_dirs"`
}

// Generation holds default generation preferences.
type Generation struct {
	Template      string `mapstructure:"template"`
	Tone          string `mapstructure:"tone"`
	Language      string `mapstructure:"language"`
	IncludeBadges bool   `mapstructure:"include_badges"`
}

// Models lists backend model candidates in fallback order.
type Models struct {
	Gemini []string `mapstructure:"gemini"`
	OpenAI []string `mapstructure:"openai"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("scan.max_depth", DefaultMaxDepth)
	v.SetDefault("scan.max_files", DefaultMaxFiles)
	v.SetDefault("generation.template", DefaultGeneration.Template)
	v.SetDefault("generation.tone", DefaultGeneration.Tone)
	v.SetDefault("generation.language", DefaultGeneration.Language)
	v.SetDefault("generation.include_badges", DefaultGeneration.IncludeBadges)
	v.SetDefault("models.gemini", DefaultGeminiModels)
	v.SetDefault("models.openai", DefaultOpenAIModels)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite run log.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}

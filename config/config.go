// Package config loads the sintaxis settings from defaults, a yaml file,
// SINTAXIS_* environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/revelaction/sintaxis/annotate"
	"github.com/spf13/pflag"
)

const (
	// FileName is the config file looked up in the working directory.
	FileName = "sintaxis.yaml"

	EnvPrefix = "SINTAXIS_"

	OutputModeNone = "none"
	OutputModeDir  = "dir"

	FormatText = "text"
	FormatJSON = "json"

	DefaultOutputDir = "output"
	DefaultModel     = "en_core_web_sm"
	DefaultCommand   = "python3"
)

// DefaultArgs run the bundled spaCy exporter on the configured model.
var DefaultArgs = []string{"-c", annotate.ExporterPlaceholder, "--model", annotate.ModelPlaceholder}

type AnnotatorConfig struct {
	Command string   `koanf:"command"`
	Args    []string `koanf:"args"`
}

type Config struct {
	Translate  bool            `koanf:"translate"`
	OutputMode string          `koanf:"output_mode"`
	OutputDir  string          `koanf:"output_dir"`
	Format     string          `koanf:"format"`
	Model      string          `koanf:"model"`
	Annotator  AnnotatorConfig `koanf:"annotator"`
	Cache      bool            `koanf:"cache"`
	DBPath     string          `koanf:"db_path"`
	Verbose    int             `koanf:"verbose"`

	// File is the config file that was loaded, empty if none.
	File string `koanf:"-"`
}

// DefaultDBPath is the database of stored docs, in the XDG data directory.
func DefaultDBPath() string {
	return filepath.Join(xdg.DataHome, "sintaxis", "sintaxis.db")
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"translate":         false,
		"output_mode":       OutputModeNone,
		"output_dir":        DefaultOutputDir,
		"format":            FormatText,
		"model":             DefaultModel,
		"annotator.command": DefaultCommand,
		"annotator.args":    DefaultArgs,
		"cache":             false,
		"db_path":           DefaultDBPath(),
		"verbose":           0,
	}
}

// findConfigFile finds the config file to use.
// Priority: explicit path > sintaxis.yaml in the working directory
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	return ""
}

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file. An explicit file must exist.
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Load environment variables (SINTAXIS_ prefix)
	// Transform: SINTAXIS_OUTPUT_MODE -> output_mode, SINTAXIS_ANNOTATOR__COMMAND -> annotator.command
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			if _, ok := flagKeys[f.Name]; !ok {
				return "", nil
			}
			return flagKeys[f.Name], posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// flagKeys maps the command line flags to config keys.
var flagKeys = map[string]string{
	"translate":   "translate",
	"output-mode": "output_mode",
	"output-dir":  "output_dir",
	"format":      "format",
	"model":       "model",
	"annotator":   "annotator.command",
	"cache":       "cache",
	"db":          "db_path",
	"verbose":     "verbose",
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.OutputMode {
	case OutputModeNone, OutputModeDir:
	default:
		return fmt.Errorf("invalid output_mode %q: allowed values are %s, %s", c.OutputMode, OutputModeNone, OutputModeDir)
	}

	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q: allowed values are %s, %s", c.Format, FormatText, FormatJSON)
	}

	return nil
}

// SPDX-License-Identifier: MPL-2.0

// Package config loads launcher configuration from a CUE file validated
// against the embedded schema, with viper providing defaults and
// environment overrides.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"

	"kindling-cli/internal/issue"
	"kindling-cli/pkg/cueutil"
	"kindling-cli/pkg/types"
)

const (
	// AppName is the application name.
	AppName = "kindling"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
)

//go:embed config_schema.cue
var configSchema string

type (
	// Config is the loaded launcher configuration.
	Config struct {
		// ProgramName is the <ProgramName> of the anchor layout.
		ProgramName string `mapstructure:"program_name"`
		// SourceSuffix is the source-file suffix, including the dot.
		SourceSuffix string `mapstructure:"source_suffix"`
		// Strict promotes toolchain warnings to build failures.
		Strict bool `mapstructure:"strict"`
		// Entry names the compiled module and the entry symbol.
		Entry EntryConfig `mapstructure:"entry"`
		// Hooks are optional scripts around pipeline stages.
		Hooks HooksConfig `mapstructure:"hooks"`
		// UI holds presentation preferences.
		UI UIConfig `mapstructure:"ui"`
	}

	// EntryConfig names the entry point.
	EntryConfig struct {
		Module   string `mapstructure:"module"`
		Function string `mapstructure:"function"`
	}

	// HooksConfig holds the pipeline hook scripts.
	HooksConfig struct {
		PreCompile string `mapstructure:"pre_compile"`
	}

	// UIConfig holds presentation preferences.
	UIConfig struct {
		Verbose bool `mapstructure:"verbose"`
	}

	// LoadOptions controls config loading. Zero values mean the default
	// search locations.
	LoadOptions struct {
		// ConfigFilePath is an explicit config file; when set it is used
		// exclusively and must exist.
		ConfigFilePath string
		// ConfigDirPath overrides the platform config directory.
		ConfigDirPath string
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ProgramName:  AppName,
		SourceSuffix: ".go",
		Strict:       true,
		Entry: EntryConfig{
			Module:   "main",
			Function: "Main",
		},
	}
}

// ConfigDir returns the kindling configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration using explicit options. Search order when no
// explicit file is given: the config directory, then the current directory.
// No config file at all is not an error; defaults apply.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("program_name", defaults.ProgramName)
	v.SetDefault("source_suffix", defaults.SourceSuffix)
	v.SetDefault("strict", defaults.Strict)
	v.SetDefault("entry.module", defaults.Entry.Module)
	v.SetDefault("entry.function", defaults.Entry.Function)
	v.SetDefault("hooks.pre_compile", defaults.Hooks.PreCompile)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		if err := loadCUEIntoViper(v, opts.ConfigFilePath); err != nil {
			return nil, wrapCUELoadError(err, opts.ConfigFilePath)
		}
	} else {
		cfgDir := opts.ConfigDirPath
		if cfgDir == "" {
			var err error
			cfgDir, err = ConfigDir()
			if err != nil {
				return nil, err
			}
		}

		cuePath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
		switch {
		case fileExists(cuePath):
			if err := loadCUEIntoViper(v, cuePath); err != nil {
				return nil, wrapCUELoadError(err, cuePath)
			}
		case fileExists(ConfigFileName + "." + ConfigFileExt):
			localPath := ConfigFileName + "." + ConfigFileExt
			if err := loadCUEIntoViper(v, localPath); err != nil {
				return nil, wrapCUELoadError(err, localPath)
			}
		}
		// No config file found: defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks constraints the CUE schema cannot express: entry names
// must be identifier-shaped.
func (c *Config) validate() error {
	for field, name := range map[string]types.SymbolName{
		"entry.module":   types.SymbolName(c.Entry.Module),
		"entry.function": types.SymbolName(c.Entry.Function),
	} {
		if ok, errs := name.IsValid(); !ok {
			return issue.NewErrorContext().
				WithOperation("validate configuration").
				WithResource(field).
				WithSuggestion("Entry names must be plain identifiers, like \"main\" or \"Main\"").
				Wrap(errs[0]).
				BuildError()
		}
	}
	return nil
}

// wrapCUELoadError attaches user guidance to a CUE parse/validation failure.
func wrapCUELoadError(err error, path string) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE syntax").
		WithSuggestion("Verify the configuration values match the expected schema").
		Wrap(err).
		BuildError()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config
// schema, and merges its contents into viper. Concrete(false) keeps every
// field optional; defaults fill the gaps.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

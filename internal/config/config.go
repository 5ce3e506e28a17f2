// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"

	"github.com/specpush/specpush/internal/issue"
	"github.com/specpush/specpush/pkg/cueutil"
)

const (
	// AppName is the application name.
	AppName = "specpush"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment variable overrides.
	EnvPrefix = "SPECPUSH"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the specpush configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
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
	default:
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

// loadWithOptions resolves defaults, the config file and environment
// overrides into a validated Config. It also returns the file it read, if any.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, explicit, err := resolveConfigFile(opts)
	if err != nil {
		return nil, "", err
	}
	if explicit && !fileExists(path) {
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Use 'specpush config show' to see the default configuration").
			Wrap(fmt.Errorf("config file not found: %s", path)).
			BuildError()
	}
	if fileExists(path) {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				Wrap(err).
				BuildError()
		}
	} else {
		path = ""
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(errors.Join(errs...)).
			BuildError()
	}

	return &cfg, path, nil
}

func setDefaults(v *viper.Viper, defaults *Config) {
	protected := make([]string, 0, len(defaults.ProtectedURLs))
	for _, u := range defaults.ProtectedURLs {
		protected = append(protected, u.String())
	}

	v.SetDefault("repos_dir", defaults.ReposDir)
	v.SetDefault("protected_urls", protected)
	v.SetDefault("editor", defaults.Editor)
	v.SetDefault("git.binary", defaults.Git.Binary)
	v.SetDefault("git.remote", defaults.Git.Remote)
	v.SetDefault("lint.command", defaults.Lint.Command)
	v.SetDefault("ui.color_scheme", string(defaults.UI.ColorScheme))
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
}

// resolveConfigFile returns the config file to read and whether the user
// named it explicitly.
func resolveConfigFile(opts LoadOptions) (string, bool, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, true, nil
	}

	cfgDir := opts.ConfigDirPath
	if cfgDir == "" {
		dir, err := ConfigDir()
		if err != nil {
			return "", false, err
		}
		cfgDir = dir
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), false, nil
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
//
// Config decodes to map[string]any rather than through cueutil.Decode so that
// absent fields keep their Viper defaults and environment overrides.
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

	unified := schemaValue.LookupPath(cue.ParsePath("#Config")).Unify(userValue)
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

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// GenerateCUE renders cfg as a config file.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// specpush configuration file\n\n")
	fmt.Fprintf(&sb, "repos_dir: %q\n", cfg.ReposDir)
	if cfg.Editor != "" {
		fmt.Fprintf(&sb, "editor: %q\n", cfg.Editor)
	}

	sb.WriteString("\nprotected_urls: [\n")
	for _, u := range cfg.ProtectedURLs {
		fmt.Fprintf(&sb, "\t%q,\n", u.String())
	}
	sb.WriteString("]\n")

	sb.WriteString("\ngit: {\n")
	fmt.Fprintf(&sb, "\tbinary: %q\n", cfg.Git.Binary)
	fmt.Fprintf(&sb, "\tremote: %q\n", cfg.Git.Remote)
	sb.WriteString("}\n")

	sb.WriteString("\nlint: {\n")
	fmt.Fprintf(&sb, "\tcommand: %q\n", cfg.Lint.Command)
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}

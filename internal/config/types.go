// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/shell"

	"github.com/specpush/specpush/internal/specrepo"
	"github.com/specpush/specpush/pkg/types"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultReposDir is where spec repos live unless configured otherwise.
	DefaultReposDir = "~/.specpush/repos"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidGitConfig is the sentinel error wrapped by InvalidGitConfigError.
	ErrInvalidGitConfig = errors.New("invalid git config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidGitConfigError is returned when a GitConfig has blank fields.
	InvalidGitConfigError struct {
		Field string
	}

	// InvalidConfigError collects the field-level errors of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// ReposDir holds one git clone per spec repo. A leading "~" is the home directory.
		ReposDir string `json:"repos_dir" mapstructure:"repos_dir"`
		// ProtectedURLs are remotes that are never published to, in addition
		// to specrepo.DefaultProtectedURLs which are always protected.
		ProtectedURLs []specrepo.GitURL `json:"protected_urls" mapstructure:"protected_urls"`
		// Editor edits interactive commit messages.
		Editor string `json:"editor" mapstructure:"editor"`
		// Git configures the git client.
		Git GitConfig `json:"git" mapstructure:"git"`
		// Lint selects the podspec linter.
		Lint LintConfig `json:"lint" mapstructure:"lint"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// GitConfig configures the git client used for network operations.
	GitConfig struct {
		Binary string `json:"binary" mapstructure:"binary"`
		Remote string `json:"remote" mapstructure:"remote"`
	}

	// LintConfig selects the podspec linter.
	LintConfig struct {
		// Command is an external linter command line; empty means built-in.
		Command string `json:"command" mapstructure:"command"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ReposDir: DefaultReposDir,
		Git: GitConfig{
			Binary: specrepo.DefaultGitBinary,
			Remote: specrepo.DefaultRemote,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(c.ReposDir) == "" {
		errs = append(errs, errors.New("repos_dir must not be empty"))
	}
	for _, u := range c.ProtectedURLs {
		if err := u.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if valid, fieldErrs := c.Git.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// ReposPath resolves ReposDir, expanding a leading "~" to homeDir.
func (c Config) ReposPath(homeDir string) types.FilesystemPath {
	dir := c.ReposDir
	if dir == "~" {
		dir = homeDir
	} else if rest, ok := strings.CutPrefix(dir, "~/"); ok {
		dir = filepath.Join(homeDir, rest)
	}
	return types.FilesystemPath(filepath.Clean(dir))
}

// EditorCommand returns the editor argv: the configured editor, else
// $VISUAL, else $EDITOR. It is empty when none is set.
func (c Config) EditorCommand(getenv func(string) string) ([]string, error) {
	line := c.Editor
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if line != "" {
			break
		}
		line = getenv(name)
	}
	return SplitCommand(line, getenv)
}

// LintCommand returns the external linter argv, empty for the built-in linter.
func (c Config) LintCommand(getenv func(string) string) ([]string, error) {
	return SplitCommand(c.Lint.Command, getenv)
}

// SplitCommand splits a command line into words with shell quoting and
// parameter expansion rules, resolving variables through getenv.
func SplitCommand(line string, getenv func(string) string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	fields, err := shell.Fields(line, getenv)
	if err != nil {
		return nil, fmt.Errorf("invalid command %q: %w", line, err)
	}
	return fields, nil
}

// IsValid returns whether both git fields are set.
func (g GitConfig) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(g.Binary) == "" {
		errs = append(errs, &InvalidGitConfigError{Field: "binary"})
	}
	if strings.TrimSpace(g.Remote) == "" {
		errs = append(errs, &InvalidGitConfigError{Field: "remote"})
	}
	return len(errs) == 0, errs
}

// Error implements the error interface.
func (e *InvalidGitConfigError) Error() string {
	return fmt.Sprintf("git.%s must not be empty", e.Field)
}

// Unwrap returns ErrInvalidGitConfig for errors.Is() compatibility.
func (e *InvalidGitConfigError) Unwrap() error { return ErrInvalidGitConfig }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

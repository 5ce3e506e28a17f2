// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"
)

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme ColorScheme
		want   bool
	}{
		{ColorSchemeAuto, true},
		{ColorSchemeDark, true},
		{ColorSchemeLight, true},
		{"", false},
		{"AUTO", false},
	}

	for _, tt := range tests {
		valid, errs := tt.scheme.IsValid()
		if valid != tt.want {
			t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.scheme, valid, tt.want)
		}
		if !tt.want && (len(errs) == 0 || !errors.Is(errs[0], ErrInvalidColorScheme)) {
			t.Errorf("ColorScheme(%q) errors = %v, want ErrInvalidColorScheme", tt.scheme, errs)
		}
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.ReposDir = " "
	cfg.Git.Binary = ""
	cfg.ProtectedURLs = append(cfg.ProtectedURLs, "nope")

	valid, errs := cfg.IsValid()
	if valid || len(errs) != 1 {
		t.Fatalf("IsValid() = %v, %v", valid, errs)
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig, got %v", errs[0])
	}
	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) || len(cfgErr.FieldErrors) != 3 {
		t.Fatalf("FieldErrors = %v, want 3", cfgErr)
	}
	if !errors.Is(cfgErr.FieldErrors[2], ErrInvalidGitConfig) {
		t.Errorf("third field error = %v, want ErrInvalidGitConfig", cfgErr.FieldErrors[2])
	}
}

func TestConfig_ReposPath(t *testing.T) {
	t.Parallel()

	home := filepath.FromSlash("/home/jane")
	tests := []struct {
		dir  string
		want string
	}{
		{"~/.specpush/repos", filepath.Join(home, ".specpush", "repos")},
		{"~", home},
		{"/srv/specs/", filepath.FromSlash("/srv/specs")},
		{"relative/repos", filepath.FromSlash("relative/repos")},
	}

	for _, tt := range tests {
		cfg := Config{ReposDir: tt.dir}
		if got := cfg.ReposPath(home); string(got) != tt.want {
			t.Errorf("ReposPath(%q) = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestConfig_EditorCommand(t *testing.T) {
	t.Parallel()

	env := map[string]string{"EDITOR": "vim", "VISUAL": "code --wait", "HOME": "/home/jane"}
	getenv := func(k string) string { return env[k] }

	tests := []struct {
		name   string
		editor string
		env    func(string) string
		want   []string
	}{
		{"configured", `emacs -nw "$HOME/x"`, getenv, []string{"emacs", "-nw", "/home/jane/x"}},
		{"visual first", "", getenv, []string{"code", "--wait"}},
		{"editor fallback", "", func(k string) string {
			if k == "EDITOR" {
				return "vi"
			}
			return ""
		}, []string{"vi"}},
		{"none", "", func(string) string { return "" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Config{Editor: tt.editor}.EditorCommand(tt.env)
			if err != nil {
				t.Fatalf("EditorCommand() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("EditorCommand() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitCommand(t *testing.T) {
	t.Parallel()

	none := func(string) string { return "" }
	got, err := SplitCommand(`podlint --flag 'two words' "x y"`, none)
	if err != nil {
		t.Fatalf("SplitCommand() error = %v", err)
	}
	if want := []string{"podlint", "--flag", "two words", "x y"}; !slices.Equal(got, want) {
		t.Errorf("SplitCommand() = %q, want %q", got, want)
	}

	if got, err := SplitCommand("   ", none); err != nil || got != nil {
		t.Errorf("SplitCommand(blank) = %q, %v", got, err)
	}
	if _, err := SplitCommand(`podlint "unterminated`, none); err == nil {
		t.Error("SplitCommand() accepted an unterminated quote")
	}
}

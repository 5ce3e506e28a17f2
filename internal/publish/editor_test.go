// SPDX-License-Identifier: MPL-2.0

package publish

import (
	"errors"
	"io"
	"os/exec"
	"testing"
)

func TestStripComments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Fix the thing\n# comment\n", "Fix the thing"},
		{"\n\n# only comments\n#\n", ""},
		{"Title\n\nBody line\n# trailing", "Title\n\nBody line"},
		{"  not # a comment  \n", "not # a comment"},
	}

	for _, tt := range tests {
		if got := StripComments(tt.in); got != tt.want {
			t.Errorf("StripComments(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCommandEditor(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"writes message", `printf 'Edited message\n# ignored\n' > "$0"`, "Edited message"},
		{"keeps template", `true`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := &CommandEditor{
				Command: []string{"sh", "-c", tt.script},
				Stdout:  io.Discard,
				Stderr:  io.Discard,
				TempDir: t.TempDir(),
			}
			got, err := e.Edit(t.Context(), "")
			if err != nil {
				t.Fatalf("Edit() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Edit() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandEditor_Errors(t *testing.T) {
	t.Parallel()

	if _, err := (&CommandEditor{}).Edit(t.Context(), ""); !errors.Is(err, ErrNoEditor) {
		t.Errorf("Edit() without command error = %v, want ErrNoEditor", err)
	}

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	e := &CommandEditor{Command: []string{"sh", "-c", "exit 3"}, TempDir: t.TempDir()}
	if _, err := e.Edit(t.Context(), ""); err == nil {
		t.Error("Edit() error = nil for a failing editor")
	}
}

// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"
)

func TestCommandValidator_Args(t *testing.T) {
	t.Parallel()

	v := NewCommandValidator(
		[]string{"pod", "spec", "lint"},
		"/work/Foo.podspec",
		[]string{"https://a.example/specs.git", "https://b.example/specs.git"},
		Options{AllowWarnings: true, StaticLinking: true, ExcludePrivateChecks: true},
		nil, nil,
	)

	want := []string{
		"spec", "lint", "/work/Foo.podspec",
		"--allow-warnings", "--use-libraries", "--private",
		"--sources=https://a.example/specs.git,https://b.example/specs.git",
	}
	if got := v.Args(); !slices.Equal(got, want) {
		t.Errorf("Args() = %v, want %v", got, want)
	}
}

func TestCommandValidator_Outcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		command       []string
		wantErr       bool
		wantValidated bool
	}{
		{name: "exit zero validates", command: []string{"sh", "-c", "echo linted; exit 0"}, wantValidated: true},
		{name: "non-zero exit does not validate", command: []string{"sh", "-c", "exit 3"}},
		{name: "missing binary is an error", command: []string{"specpush-no-such-linter"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			v := NewCommandValidator(tt.command, "Foo.podspec", nil, Options{}, &out, nil)
			err := v.Validate(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if v.Validated() != tt.wantValidated {
				t.Errorf("Validated() = %v, want %v", v.Validated(), tt.wantValidated)
			}
			if tt.wantValidated && !strings.Contains(out.String(), "linted") {
				t.Errorf("linter output should be passed through, got %q", out.String())
			}
		})
	}
}

func TestNewFactory(t *testing.T) {
	t.Parallel()

	builtin := NewFactory(nil, nil, nil)("Foo.podspec", nil, Options{})
	if _, ok := builtin.(*SchemaValidator); !ok {
		t.Errorf("NewFactory(nil) built %T, want *SchemaValidator", builtin)
	}
	external := NewFactory([]string{"pod", "spec", "lint"}, nil, nil)("Foo.podspec", nil, Options{})
	if _, ok := external.(*CommandValidator); !ok {
		t.Errorf("NewFactory(command) built %T, want *CommandValidator", external)
	}
}

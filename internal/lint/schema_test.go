// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specpush/specpush/pkg/types"
)

const validPodspec = `name:     "Foo"
version:  "1.0"
summary:  "Foo does things."
description: "Foo does a great many things, all of them well."
homepage: "https://example.com/foo"
license:  {type: "MIT"}
authors:  {"Jane": "jane@example.com"}
source:   {git: "https://example.com/foo.git", tag: "1.0"}
platforms: {ios: "12.0"}
dependencies: {Bar: ["~> 2.0"], Baz: []}
`

func writePodspec(t *testing.T, content string) types.FilesystemPath {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Foo.podspec")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return types.FilesystemPath(path)
}

func TestSchemaValidator_Valid(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	v := NewSchemaValidator(writePodspec(t, validPodspec), []string{"https://example.com/specs.git"}, Options{}, &out, nil)
	if err := v.Validate(context.Background()); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !v.Validated() {
		t.Errorf("Validated() = false, results: %v", v.Results())
	}
	if len(v.Results()) != 0 {
		t.Errorf("Results() = %v, want none", v.Results())
	}
	if !strings.Contains(out.String(), "-> Foo (1.0)") {
		t.Errorf("output should name the podspec, got %q", out.String())
	}
}

func TestSchemaValidator_Findings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		content       string
		sources       []string
		opts          Options
		wantValidated bool
		wantAttr      string
		wantSeverity  Severity
	}{
		{
			name:         "missing summary",
			content:      strings.Replace(validPodspec, `summary:  "Foo does things."`, "", 1),
			wantAttr:     "summary",
			wantSeverity: SeverityError,
		},
		{
			name:          "missing summary with warnings allowed",
			content:       strings.Replace(validPodspec, `summary:  "Foo does things."`, "", 1),
			opts:          Options{AllowWarnings: true},
			wantAttr:      "summary",
			wantSeverity:  SeverityError,
			wantValidated: false,
		},
		{
			name:         "missing license",
			content:      strings.Replace(validPodspec, `license:  {type: "MIT"}`, "", 1),
			wantAttr:     "license",
			wantSeverity: SeverityWarning,
		},
		{
			name:          "missing license with warnings allowed",
			content:       strings.Replace(validPodspec, `license:  {type: "MIT"}`, "", 1),
			opts:          Options{AllowWarnings: true},
			wantValidated: true,
			wantAttr:      "license",
			wantSeverity:  SeverityWarning,
		},
		{
			name:         "tag does not contain version",
			content:      strings.Replace(validPodspec, `tag: "1.0"`, `tag: "release"`, 1),
			wantAttr:     "source",
			wantSeverity: SeverityWarning,
		},
		{
			name:         "no source",
			content:      strings.Replace(validPodspec, `source:   {git: "https://example.com/foo.git", tag: "1.0"}`, "", 1),
			wantAttr:     "source",
			wantSeverity: SeverityError,
		},
		{
			name:         "description equals summary",
			content:      strings.Replace(validPodspec, "Foo does a great many things, all of them well.", "Foo does things.", 1),
			wantAttr:     "description",
			wantSeverity: SeverityWarning,
		},
		{
			name:         "bad dependency requirement",
			content:      strings.Replace(validPodspec, `"~> 2.0"`, `"~> two"`, 1),
			wantAttr:     "dependencies",
			wantSeverity: SeverityError,
		},
		{
			name:         "invalid source url",
			content:      validPodspec,
			sources:      []string{"not a url"},
			wantAttr:     "sources",
			wantSeverity: SeverityError,
		},
		{
			name:          "static framework note",
			content:       validPodspec + "static_framework: true\n",
			wantValidated: true,
			wantAttr:      "static_framework",
			wantSeverity:  SeverityNote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := NewSchemaValidator(writePodspec(t, tt.content), tt.sources, tt.opts, nil, nil)
			if err := v.Validate(context.Background()); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if v.Validated() != tt.wantValidated {
				t.Errorf("Validated() = %v, want %v (results: %v)", v.Validated(), tt.wantValidated, v.Results())
			}
			found := false
			for _, r := range v.Results() {
				if r.Attribute == tt.wantAttr && r.Severity == tt.wantSeverity {
					found = true
				}
			}
			if !found {
				t.Errorf("no %s finding for %q in %v", tt.wantSeverity, tt.wantAttr, v.Results())
			}
		})
	}
}

func TestSchemaValidator_ExcludePrivateChecks(t *testing.T) {
	t.Parallel()

	content := strings.Replace(validPodspec, `license:  {type: "MIT"}`, "", 1)
	content = strings.Replace(content, "https://example.com/foo\"", "http://example.com/foo\"", 1)

	v := NewSchemaValidator(writePodspec(t, content), nil, Options{ExcludePrivateChecks: true}, nil, nil)
	if err := v.Validate(context.Background()); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !v.Validated() {
		t.Errorf("public-only checks should be skipped, results: %v", v.Results())
	}
}

func TestSchemaValidator_ParseFailure(t *testing.T) {
	t.Parallel()

	v := NewSchemaValidator(writePodspec(t, `name: "Foo"`), nil, Options{}, nil, nil)
	err := v.Validate(context.Background())
	if err == nil {
		t.Fatal("Validate() should return the decode error")
	}
	if v.Validated() {
		t.Error("Validated() should be false after a failed run")
	}
}

func TestCheckRequirement(t *testing.T) {
	t.Parallel()

	valid := []string{"", "1.0", "~> 1.0", ">= 2.1.3", "= 3", "< 4.0.0-beta"}
	for _, req := range valid {
		if err := checkRequirement(req); err != nil {
			t.Errorf("checkRequirement(%q) = %v, want nil", req, err)
		}
	}
	invalid := []string{"~>", "latest", "> v1"}
	for _, req := range invalid {
		if err := checkRequirement(req); err == nil {
			t.Errorf("checkRequirement(%q) = nil, want error", req)
		}
	}
}

func TestResultString(t *testing.T) {
	t.Parallel()

	r := Result{Severity: SeverityWarning, Attribute: "license", Message: "missing license type"}
	if got := r.String(); got != "warning | license: missing license type" {
		t.Errorf("String() = %q", got)
	}
	r = Result{Severity: SeverityError, Message: "boom"}
	if got := r.String(); got != "error   | boom" {
		t.Errorf("String() = %q", got)
	}
}

// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/specpush/specpush/pkg/types"
)

const (
	// SeverityError marks a finding that always fails validation.
	SeverityError Severity = "error"
	// SeverityWarning marks a finding that fails validation unless warnings are allowed.
	SeverityWarning Severity = "warning"
	// SeverityNote marks an informational finding.
	SeverityNote Severity = "note"
)

type (
	// Severity classifies a lint Result.
	Severity string

	// Options configures a validator run.
	Options struct {
		// AllowWarnings lets a podspec with warnings (but no errors) validate.
		AllowWarnings bool
		// StaticLinking lints as if the pod were linked as a static library.
		StaticLinking bool
		// ExcludePrivateChecks skips checks that only matter for public pods.
		ExcludePrivateChecks bool
	}

	// Result is a single lint finding.
	Result struct {
		Severity  Severity
		Attribute string
		Message   string
	}

	// Validator lints one podspec file.
	Validator interface {
		// Validate runs the lint. A non-nil error means the lint itself failed.
		Validate(ctx context.Context) error
		// Validated reports whether the last Validate call passed.
		Validated() bool
		// Results returns the findings of the last Validate call.
		Results() []Result
	}

	// Factory builds a Validator for a file and its dependency sources.
	Factory func(file types.FilesystemPath, sources []string, opts Options) Validator
)

// String renders the result the way it is printed under a podspec label.
func (r Result) String() string {
	if r.Attribute == "" {
		return fmt.Sprintf("%-7s | %s", r.Severity, r.Message)
	}
	return fmt.Sprintf("%-7s | %s: %s", r.Severity, r.Attribute, r.Message)
}

// NewFactory returns a Factory for the built-in linter, or for an external
// linter when command is non-empty. Validator output is written to out.
func NewFactory(command []string, out io.Writer, logger *log.Logger) Factory {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if len(command) > 0 {
		return func(file types.FilesystemPath, sources []string, opts Options) Validator {
			return NewCommandValidator(command, file, sources, opts, out, logger)
		}
	}
	return func(file types.FilesystemPath, sources []string, opts Options) Validator {
		return NewSchemaValidator(file, sources, opts, out, logger)
	}
}

// passed applies the severity policy to a set of findings.
func passed(results []Result, opts Options) bool {
	for _, r := range results {
		switch r.Severity {
		case SeverityError:
			return false
		case SeverityWarning:
			if !opts.AllowWarnings {
				return false
			}
		}
	}
	return true
}

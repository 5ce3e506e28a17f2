// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"context"
	"fmt"
	"io"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/specpush/specpush/pkg/podspec"
	"github.com/specpush/specpush/pkg/types"
)

// maxSummaryLength mirrors the limit spec repo search indexes truncate at.
const maxSummaryLength = 140

var requirementOperators = []string{"~>", ">=", "<=", "!=", ">", "<", "="}

// SchemaValidator runs the built-in podspec checks.
type SchemaValidator struct {
	file    types.FilesystemPath
	sources []string
	opts    Options
	out     io.Writer
	logger  *log.Logger

	results   []Result
	validated bool
}

// NewSchemaValidator creates a SchemaValidator for file.
func NewSchemaValidator(file types.FilesystemPath, sources []string, opts Options, out io.Writer, logger *log.Logger) *SchemaValidator {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SchemaValidator{file: file, sources: sources, opts: opts, out: out, logger: logger}
}

// Validate decodes the podspec and runs every check against it.
func (v *SchemaValidator) Validate(ctx context.Context) error {
	v.results = nil
	v.validated = false

	if err := ctx.Err(); err != nil {
		return err
	}

	v.logger.Debug("linting podspec", "file", v.file, "sources", v.sources)

	spec, err := podspec.Parse(v.file)
	if err != nil {
		return err
	}

	v.checkSources()
	v.checkSpec(spec)

	v.validated = passed(v.results, v.opts)
	v.print(spec)
	return nil
}

// Validated reports whether the last Validate call passed.
func (v *SchemaValidator) Validated() bool { return v.validated }

// Results returns the findings of the last Validate call.
func (v *SchemaValidator) Results() []Result { return v.results }

func (v *SchemaValidator) add(severity Severity, attribute, format string, args ...any) {
	v.results = append(v.results, Result{
		Severity:  severity,
		Attribute: attribute,
		Message:   fmt.Sprintf(format, args...),
	})
}

func (v *SchemaValidator) checkSources() {
	for _, source := range v.sources {
		if !isRepositoryURL(source) {
			v.add(SeverityError, "sources", "%q is not a valid spec repo URL", source)
		}
	}
}

func (v *SchemaValidator) checkSpec(spec *podspec.Specification) {
	switch {
	case strings.TrimSpace(spec.Summary) == "":
		v.add(SeverityError, "summary", "a summary is required")
	case len(spec.Summary) > maxSummaryLength:
		v.add(SeverityWarning, "summary", "the summary should be shorter than %d characters", maxSummaryLength)
	}

	if spec.Description != "" {
		switch {
		case spec.Description == spec.Summary:
			v.add(SeverityWarning, "description", "the description is equal to the summary")
		case len(spec.Description) < len(spec.Summary):
			v.add(SeverityWarning, "description", "the description is shorter than the summary")
		}
	}

	if spec.Authors == nil {
		v.add(SeverityError, "authors", "at least one author is required")
	}

	if spec.Homepage == "" {
		v.add(SeverityError, "homepage", "a homepage is required")
	} else if !v.opts.ExcludePrivateChecks && strings.HasPrefix(spec.Homepage, "http://") {
		v.add(SeverityWarning, "homepage", "the homepage should use https")
	}

	if !v.opts.ExcludePrivateChecks && spec.License == nil {
		v.add(SeverityWarning, "license", "missing license type")
	}

	v.checkSource(spec)

	if len(spec.Platforms) == 0 {
		v.add(SeverityNote, "platforms", "no platforms specified, the pod is assumed to support all of them")
	}

	if spec.StaticFramework && !v.opts.StaticLinking {
		v.add(SeverityNote, "static_framework", "linted with dynamic linkage although the pod declares a static framework")
	}

	for _, name := range slices.Sorted(maps.Keys(spec.Dependencies)) {
		for _, req := range spec.Dependencies[name] {
			if err := checkRequirement(req); err != nil {
				v.add(SeverityError, "dependencies", "%s: %v", name, err)
			}
		}
	}
}

func (v *SchemaValidator) checkSource(spec *podspec.Specification) {
	src := spec.Source
	if src == nil || (src.Git == "" && src.HTTP == "") {
		v.add(SeverityError, "source", "a git or http source is required")
		return
	}
	if src.Git == "" {
		return
	}
	if src.Tag == "" && src.Commit == "" && src.Branch == "" {
		v.add(SeverityWarning, "source", "git sources should specify a tag")
		return
	}
	if src.Tag != "" && !strings.Contains(src.Tag, string(spec.Version)) {
		v.add(SeverityWarning, "source", "the version of the spec (%s) should be included in the git tag (%s)", spec.Version, src.Tag)
	}
}

func (v *SchemaValidator) print(spec *podspec.Specification) {
	fmt.Fprintf(v.out, " -> %s\n", spec.Label())
	for _, r := range v.results {
		fmt.Fprintf(v.out, "    - %s\n", r)
	}
}

// checkRequirement accepts "1.0", "~> 1.0", ">= 2.1.3" and the like.
// An empty requirement means any version.
func checkRequirement(req string) error {
	req = strings.TrimSpace(req)
	if req == "" {
		return nil
	}
	for _, op := range requirementOperators {
		if rest, ok := strings.CutPrefix(req, op); ok {
			req = strings.TrimSpace(rest)
			break
		}
	}
	return podspec.Version(req).Validate()
}

func isRepositoryURL(raw string) bool {
	if strings.HasPrefix(raw, "git@") && strings.Contains(raw, ":") {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Host == "" && u.Scheme != "file") {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "https", "http", "ssh", "git", "file":
		return true
	}
	return false
}

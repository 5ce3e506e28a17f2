// SPDX-License-Identifier: MPL-2.0

package podspec

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"

	"github.com/specpush/specpush/pkg/cueutil"
	"github.com/specpush/specpush/pkg/types"
)

const (
	// Extension is the suffix of an authored podspec.
	Extension = ".podspec"
	// JSONExtension is the suffix of a serialized podspec.
	JSONExtension = ".podspec.json"

	schemaDefinition = "#Podspec"
)

//go:embed podspec_schema.cue
var schema []byte

type (
	// Source describes where the pod's code is fetched from.
	Source struct {
		Git    string `json:"git,omitempty"`
		Tag    string `json:"tag,omitempty"`
		Commit string `json:"commit,omitempty"`
		Branch string `json:"branch,omitempty"`
		HTTP   string `json:"http,omitempty"`
	}

	// Specification is a decoded podspec. Only the attributes specpush and its
	// built-in linter read are modelled; the full document is kept for
	// re-serialization.
	Specification struct {
		Name            string              `json:"name"`
		Version         Version             `json:"version"`
		Summary         string              `json:"summary,omitempty"`
		Description     string              `json:"description,omitempty"`
		Homepage        string              `json:"homepage,omitempty"`
		License         any                 `json:"license,omitempty"`
		Authors         any                 `json:"authors,omitempty"`
		Source          *Source             `json:"source,omitempty"`
		Platforms       map[string]string   `json:"platforms,omitempty"`
		Dependencies    map[string][]string `json:"dependencies,omitempty"`
		StaticFramework bool                `json:"static_framework,omitempty"`

		path    types.FilesystemPath
		raw     []byte
		unified cue.Value
	}
)

// Parse reads and decodes the podspec at path.
func Parse(path types.FilesystemPath) (*Specification, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read podspec: %w", err)
	}
	spec, err := ParseBytes(data, path)
	if err != nil {
		return nil, err
	}
	return spec, nil
}

// ParseBytes decodes podspec content. path is used for error messages and to
// decide whether the document was authored as JSON.
func ParseBytes(data []byte, path types.FilesystemPath) (*Specification, error) {
	result, err := cueutil.Decode[Specification](schema, data, schemaDefinition,
		cueutil.WithFilename(path.Base()),
		cueutil.WithConcrete(true),
	)
	if err != nil {
		return nil, err
	}

	spec := result.Value
	if err := ValidateName(spec.Name); err != nil {
		return nil, fmt.Errorf("%s: %w", path.Base(), err)
	}
	if err := spec.Version.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path.Base(), err)
	}
	spec.path = path
	spec.raw = data
	spec.unified = result.Unified
	return spec, nil
}

// IsJSONFile reports whether path names a serialized podspec.
func IsJSONFile(path types.FilesystemPath) bool {
	return strings.HasSuffix(string(path), JSONExtension)
}

// Path returns the file the specification was read from.
func (s *Specification) Path() types.FilesystemPath { return s.path }

// Label renders the specification as "Name (Version)".
func (s *Specification) Label() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Version)
}

// String implements fmt.Stringer.
func (s *Specification) String() string { return s.Label() }

// RelativeDir returns the directory the podspec occupies inside a spec repo:
// "<name>/<version>", slash-separated.
func (s *Specification) RelativeDir() string {
	return s.Name + "/" + string(s.Version)
}

// FileName returns the name the podspec is stored under in a spec repo. The
// JSON form is used when asJSON is set or when the podspec was authored as JSON.
func (s *Specification) FileName(asJSON bool) string {
	if asJSON || IsJSONFile(s.path) {
		return s.Name + JSONExtension
	}
	return s.Name + Extension
}

// Content returns the bytes to store in the spec repo: the file as authored,
// or the document re-encoded as indented JSON when asJSON is set.
func (s *Specification) Content(asJSON bool) ([]byte, error) {
	if !asJSON {
		return s.raw, nil
	}
	return s.MarshalPrettyJSON()
}

// MarshalPrettyJSON encodes the full podspec document, including attributes
// the Go type does not model, as two-space indented JSON.
func (s *Specification) MarshalPrettyJSON() ([]byte, error) {
	if !s.unified.Exists() {
		return nil, fmt.Errorf("podspec %s was not decoded from a document", s.Name)
	}
	compact, err := s.unified.MarshalJSON()
	if err != nil {
		return nil, cueutil.FormatError(err, s.path.Base())
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent podspec JSON: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// DisplayName returns the file name of path relative to dir when possible.
func DisplayName(dir, path types.FilesystemPath) string {
	if rel, err := filepath.Rel(string(dir), string(path)); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return string(path)
}

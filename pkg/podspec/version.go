// SPDX-License-Identifier: MPL-2.0

package podspec

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrInvalidVersion is the sentinel error wrapped by InvalidVersionError.
var ErrInvalidVersion = errors.New("invalid podspec version")

type (
	// Version is a podspec version such as "1.0", "2.3.4" or "1.0.0-beta.1".
	// It follows semantic versioning but, like podspecs in the wild, allows the
	// minor and patch components to be omitted. A leading "v" is not allowed
	// because the version doubles as a directory name in the spec repo.
	Version string

	// InvalidVersionError is returned when a Version is not semver-like.
	InvalidVersionError struct {
		Value Version
	}
)

// Error implements the error interface.
func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version %q (expected semantic version like 1.0 or 1.2.3)", e.Value)
}

// Unwrap returns ErrInvalidVersion for errors.Is() compatibility.
func (e *InvalidVersionError) Unwrap() error { return ErrInvalidVersion }

// Validate returns an error if the version is not semver-like.
func (v Version) Validate() error {
	if v == "" || strings.HasPrefix(string(v), "v") || !semver.IsValid(v.semver()) {
		return &InvalidVersionError{Value: v}
	}
	return nil
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to
// or after other. Invalid versions sort before valid ones.
func (v Version) Compare(other Version) int {
	return semver.Compare(v.semver(), other.semver())
}

// IsPrerelease reports whether the version carries a prerelease suffix.
func (v Version) IsPrerelease() bool {
	return semver.Prerelease(v.semver()) != ""
}

// String returns the string representation of the Version.
func (v Version) String() string { return string(v) }

func (v Version) semver() string { return "v" + string(v) }

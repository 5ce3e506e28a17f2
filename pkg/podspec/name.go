// SPDX-License-Identifier: MPL-2.0

package podspec

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidName is the sentinel error wrapped by InvalidNameError.
var ErrInvalidName = errors.New("invalid pod name")

// InvalidNameError is returned when a pod name cannot be used as the
// top-level directory of the pod inside a spec repo.
type InvalidNameError struct {
	Value  string
	Reason string
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid pod name %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidName for errors.Is() compatibility.
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// ValidateName checks that name is usable as a spec repo directory: non-empty,
// not starting with a dot, and free of path separators and whitespace.
func ValidateName(name string) error {
	switch {
	case name == "":
		return &InvalidNameError{Value: name, Reason: "must not be empty"}
	case strings.HasPrefix(name, "."):
		return &InvalidNameError{Value: name, Reason: "must not start with a dot"}
	case strings.ContainsAny(name, `/\`):
		return &InvalidNameError{Value: name, Reason: "must not contain path separators"}
	case strings.ContainsFunc(name, unicode.IsSpace):
		return &InvalidNameError{Value: name, Reason: "must not contain whitespace"}
	}
	return nil
}

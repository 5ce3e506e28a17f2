// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidFilesystemPath is the sentinel error wrapped by InvalidFilesystemPathError.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

type (
	// FilesystemPath represents an absolute or relative filesystem path.
	// A valid path must be non-empty and not whitespace-only.
	FilesystemPath string

	// InvalidFilesystemPathError is returned when a FilesystemPath value is
	// empty or whitespace-only.
	InvalidFilesystemPathError struct {
		Value FilesystemPath
	}
)

// String returns the string representation of the FilesystemPath.
func (p FilesystemPath) String() string { return string(p) }

// Validate returns an error if the path is empty or whitespace-only.
func (p FilesystemPath) Validate() error {
	if strings.TrimSpace(string(p)) == "" {
		return &InvalidFilesystemPathError{Value: p}
	}
	return nil
}

// Base returns the last element of the path.
func (p FilesystemPath) Base() string { return filepath.Base(string(p)) }

// Join appends elements to the path.
func (p FilesystemPath) Join(elem ...string) FilesystemPath {
	return FilesystemPath(filepath.Join(append([]string{string(p)}, elem...)...))
}

// IsAbs reports whether the path is absolute.
func (p FilesystemPath) IsAbs() bool { return filepath.IsAbs(string(p)) }

// IsDir reports whether the path exists and is a directory.
func (p FilesystemPath) IsDir() bool {
	info, err := os.Stat(string(p))
	return err == nil && info.IsDir()
}

// Exists reports whether anything exists at the path.
func (p FilesystemPath) Exists() bool {
	_, err := os.Stat(string(p))
	return err == nil
}

// Error implements the error interface for InvalidFilesystemPathError.
func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid filesystem path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidFilesystemPath for errors.Is() compatibility.
func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }

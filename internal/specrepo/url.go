// SPDX-License-Identifier: MPL-2.0

package specrepo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGitURL is the sentinel error wrapped by InvalidGitURLError.
var ErrInvalidGitURL = errors.New("invalid git URL")

var gitURLPrefixes = []string{"https://", "http://", "ssh://", "git://", "file://", "git@"}

type (
	// GitURL is a spec repo remote URL (HTTPS, SSH, git@ or file form).
	GitURL string

	// InvalidGitURLError is returned when a GitURL value has an unsupported form.
	InvalidGitURLError struct {
		Value GitURL
	}
)

// Error implements the error interface.
func (e *InvalidGitURLError) Error() string {
	return fmt.Sprintf("invalid git URL %q (must start with https://, http://, ssh://, git://, file:// or git@)", e.Value)
}

// Unwrap returns ErrInvalidGitURL so callers can use errors.Is for programmatic detection.
func (e *InvalidGitURLError) Unwrap() error { return ErrInvalidGitURL }

// Validate returns nil if the GitURL has a supported form.
func (u GitURL) Validate() error {
	s := string(u)
	for _, prefix := range gitURLPrefixes {
		if strings.HasPrefix(s, prefix) && len(s) > len(prefix) {
			return nil
		}
	}
	return &InvalidGitURLError{Value: u}
}

// Normalize returns a comparison key for the URL: lower-cased, without
// surrounding whitespace, trailing slashes or a ".git" suffix.
func (u GitURL) Normalize() string {
	s := strings.ToLower(strings.TrimSpace(string(u)))
	s = strings.TrimRight(s, "/")
	return strings.TrimSuffix(s, ".git")
}

// Equal reports whether two URLs name the same repository.
func (u GitURL) Equal(other GitURL) bool {
	return u.Normalize() == other.Normalize()
}

// IsSSH reports whether the URL uses an SSH transport.
func (u GitURL) IsSSH() bool {
	s := string(u)
	return strings.HasPrefix(s, "git@") || strings.HasPrefix(s, "ssh://")
}

// String returns the string representation of the GitURL.
func (u GitURL) String() string { return string(u) }

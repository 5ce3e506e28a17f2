// SPDX-License-Identifier: MPL-2.0

package publish

import (
	"errors"
	"fmt"

	"github.com/specpush/specpush/pkg/types"
)

// TrunkPushCommand publishes a podspec to the public master spec repo.
const TrunkPushCommand = "pod trunk push"

var (
	// ErrConfiguration marks problems with the target repo: it cannot be
	// found or it may not be pushed to.
	ErrConfiguration = errors.New("configuration error")
	// ErrInput marks problems locating the podspecs to publish.
	ErrInput = errors.New("input error")
	// ErrValidation marks a podspec that failed linting.
	ErrValidation = errors.New("validation error")
	// ErrRepositoryState marks a spec repo whose working tree is not clean.
	ErrRepositoryState = errors.New("repository state error")
	// ErrRemote marks a failed push.
	ErrRemote = errors.New("remote error")
)

type (
	// ConfigurationError is returned when the repo cannot be resolved or is protected.
	ConfigurationError struct {
		Repo      string
		Protected bool
		Cause     error
	}

	// InputError is returned when podspec discovery or parsing fails.
	InputError struct {
		Cause error
	}

	// ValidationError is returned when a podspec does not validate. Cause is
	// nil when the linter ran but reported failures.
	ValidationError struct {
		File  string
		Cause error
	}

	// RepositoryStateError is returned when the spec repo has uncommitted changes.
	RepositoryStateError struct {
		Repo string
		Root types.FilesystemPath
	}

	// RemoteError is returned when pushing the spec repo fails.
	RemoteError struct {
		Repo  string
		Cause error
	}
)

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Protected {
		return fmt.Sprintf("the `%s` repo is the public master spec repo; "+
			"use `%s` to publish to it instead", e.Repo, TrunkPushCommand)
	}
	return fmt.Sprintf("unable to find the `%s` repo", e.Repo)
}

// Unwrap returns ErrConfiguration and the underlying cause.
func (e *ConfigurationError) Unwrap() []error { return unwrapAll(ErrConfiguration, e.Cause) }

// Error implements the error interface.
func (e *InputError) Error() string { return e.Cause.Error() }

// Unwrap returns ErrInput and the underlying cause.
func (e *InputError) Unwrap() []error { return unwrapAll(ErrInput, e.Cause) }

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("the `%s` specification does not validate: %v", e.File, e.Cause)
	}
	return fmt.Sprintf("the `%s` specification does not validate", e.File)
}

// Unwrap returns ErrValidation and the underlying cause.
func (e *ValidationError) Unwrap() []error { return unwrapAll(ErrValidation, e.Cause) }

// Error implements the error interface.
func (e *RepositoryStateError) Error() string {
	return fmt.Sprintf("the repo `%s` at `%s` is not clean", e.Repo, e.Root)
}

// Unwrap returns ErrRepositoryState so callers can use errors.Is for programmatic detection.
func (e *RepositoryStateError) Unwrap() error { return ErrRepositoryState }

// Error implements the error interface.
func (e *RemoteError) Error() string {
	return fmt.Sprintf("failed to push the `%s` repo: %v", e.Repo, e.Cause)
}

// Unwrap returns ErrRemote and the underlying cause.
func (e *RemoteError) Unwrap() []error { return unwrapAll(ErrRemote, e.Cause) }

func unwrapAll(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}

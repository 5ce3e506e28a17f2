// SPDX-License-Identifier: MPL-2.0

package publish

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/specpush/specpush/pkg/podspec"
)

const (
	// ChangeAdd means the pod is new to the repo.
	ChangeAdd ChangeKind = iota
	// ChangeUpdate means the pod exists but not at this version.
	ChangeUpdate
	// ChangeFix means this exact version is already present.
	ChangeFix
)

// ChangeKind classifies a publication by what the repo already holds.
type ChangeKind int

// String returns the tag used in generated commit messages.
func (k ChangeKind) String() string {
	switch k {
	case ChangeAdd:
		return "Add"
	case ChangeUpdate:
		return "Update"
	case ChangeFix:
		return "Fix"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// ClassifyTarget inspects the repo before a podspec is written:
// <name>/<version> present is a Fix, <name> present is an Update, anything
// else is an Add.
func ClassifyTarget(repoFS billy.Filesystem, spec *podspec.Specification) (ChangeKind, error) {
	if ok, err := exists(repoFS, spec.RelativeDir()); err != nil || ok {
		return ChangeFix, err
	}
	if ok, err := exists(repoFS, spec.Name); err != nil || ok {
		return ChangeUpdate, err
	}
	return ChangeAdd, nil
}

// ResolveCommitMessage returns explicit verbatim when it has content, and
// otherwise "[<kind>] <Name> (<Version>)".
func ResolveCommitMessage(explicit string, kind ChangeKind, spec *podspec.Specification) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	return fmt.Sprintf("[%s] %s", kind, spec.Label())
}

func exists(repoFS billy.Filesystem, name string) (bool, error) {
	_, err := repoFS.Stat(name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", name, err)
	}
}

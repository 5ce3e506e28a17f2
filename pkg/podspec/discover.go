// SPDX-License-Identifier: MPL-2.0

package podspec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/specpush/specpush/pkg/types"
)

// discoveryPattern matches both podspec variants at the top of a directory.
const discoveryPattern = "*{" + Extension + "," + JSONExtension + "}"

var (
	// ErrNoSpecsFound is returned when a directory holds no podspec files.
	ErrNoSpecsFound = errors.New("no podspec files found")

	// ErrSpecNotFound is the sentinel error wrapped by SpecNotFoundError.
	ErrSpecNotFound = errors.New("podspec not found")
)

// SpecNotFoundError is returned when an explicitly named podspec does not exist.
type SpecNotFoundError struct {
	Path types.FilesystemPath
}

// Error implements the error interface.
func (e *SpecNotFoundError) Error() string {
	return fmt.Sprintf("couldn't find %s", e.Path)
}

// Unwrap returns ErrSpecNotFound for errors.Is() compatibility.
func (e *SpecNotFoundError) Unwrap() error { return ErrSpecNotFound }

// Discover returns the podspec files to publish. When explicit is set it is
// the only result and must name an existing file (relative paths resolve
// against dir). Otherwise dir is globbed for *.podspec and *.podspec.json.
// Files are returned sorted; nothing is parsed.
func Discover(dir, explicit types.FilesystemPath) ([]types.FilesystemPath, error) {
	if explicit != "" {
		path := explicit
		if !filepath.IsAbs(string(path)) {
			path = dir.Join(string(explicit))
		}
		info, err := os.Stat(string(path))
		if err != nil || info.IsDir() {
			return nil, &SpecNotFoundError{Path: explicit}
		}
		return []types.FilesystemPath{path}, nil
	}

	matches, err := doublestar.Glob(os.DirFS(string(dir)), discoveryPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to search %s for podspecs: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, ErrNoSpecsFound
	}

	slices.Sort(matches)
	files := make([]types.FilesystemPath, 0, len(matches))
	for _, m := range matches {
		files = append(files, dir.Join(m))
	}
	return files, nil
}

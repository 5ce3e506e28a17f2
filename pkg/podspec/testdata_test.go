// SPDX-License-Identifier: MPL-2.0

package podspec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specpush/specpush/pkg/types"
)

const fooPodspec = `name:    "Foo"
version: "1.0"
summary: "Foo does things."
homepage: "https://example.com/foo"
license: {type: "MIT"}
authors: {"Jane": "jane@example.com"}
source: {git: "https://example.com/foo.git", tag: "1.0"}
platforms: {ios: "12.0"}
requires_arc: true
`

const barPodspecJSON = `{
  "name": "Bar",
  "version": "2.1.0",
  "summary": "Bar.",
  "dependencies": {"Foo": ["~> 1.0"]}
}
`

// writeFile creates name under dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) types.FilesystemPath {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return types.FilesystemPath(path)
}

// SPDX-License-Identifier: MPL-2.0

package specrepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/specpush/specpush/pkg/types"
)

// ErrRepoNotFound is the sentinel error wrapped by RepoNotFoundError.
var ErrRepoNotFound = errors.New("spec repo not found")

type (
	// Resolver turns a repo name or remote URL into a Repository.
	Resolver interface {
		Lookup(ctx context.Context, nameOrURL string) (Repository, error)
	}

	// DirResolver resolves spec repos among the git clones directly under a
	// repos directory.
	DirResolver struct {
		dir    types.FilesystemPath
		opts   []Option
		logger *log.Logger
	}

	// RepoNotFoundError is returned when no repo matches a name or URL.
	RepoNotFoundError struct {
		Query string
		Cause error
	}
)

// Error implements the error interface.
func (e *RepoNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("spec repo %q not found: %v", e.Query, e.Cause)
	}
	return fmt.Sprintf("spec repo %q not found", e.Query)
}

// Unwrap returns ErrRepoNotFound so callers can use errors.Is for programmatic detection.
func (e *RepoNotFoundError) Unwrap() error { return ErrRepoNotFound }

// NewDirResolver creates a resolver over dir. opts are applied to every
// Repository it opens.
func NewDirResolver(dir types.FilesystemPath, logger *log.Logger, opts ...Option) *DirResolver {
	return &DirResolver{dir: dir, opts: opts, logger: logger}
}

// Dir returns the repos directory.
func (d *DirResolver) Dir() types.FilesystemPath { return d.dir }

// Lookup finds a repo by directory name, falling back to matching the
// query against every remote URL of every repo in the directory.
func (d *DirResolver) Lookup(ctx context.Context, nameOrURL string) (Repository, error) {
	query := strings.TrimSpace(nameOrURL)
	if query == "" {
		return nil, &RepoNotFoundError{Query: nameOrURL}
	}

	if isPlainName(query) {
		root := d.dir.Join(query)
		if root.IsDir() {
			repo, err := Open(query, root, d.opts...)
			if err != nil {
				return nil, &RepoNotFoundError{Query: query, Cause: err}
			}
			return repo, nil
		}
	}

	repos, err := d.List(ctx)
	if err != nil {
		return nil, &RepoNotFoundError{Query: query, Cause: err}
	}
	for _, repo := range repos {
		urls, err := repo.RemoteURLs()
		if err != nil {
			continue
		}
		if slices.ContainsFunc(urls, GitURL(query).Equal) {
			return repo, nil
		}
	}

	return nil, &RepoNotFoundError{Query: query}
}

// List opens every git working tree directly under the repos directory,
// sorted by name. Entries that are not git repositories are skipped.
func (d *DirResolver) List(_ context.Context) ([]Repository, error) {
	entries, err := os.ReadDir(string(d.dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read repos directory: %w", err)
	}

	var repos []Repository
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		repo, err := Open(entry.Name(), d.dir.Join(entry.Name()), d.opts...)
		if err != nil {
			if d.logger != nil {
				d.logger.Debug("skipping non-repository entry", "path", entry.Name(), "error", err)
			}
			continue
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// isPlainName reports whether s can name a directory directly under the
// repos directory. Dot names, "." and ".." included, never do; List skips
// them too.
func isPlainName(s string) bool {
	return !strings.HasPrefix(s, ".") && !strings.ContainsAny(s, `/\:@`)
}

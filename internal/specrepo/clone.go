// SPDX-License-Identifier: MPL-2.0

package specrepo

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
)

// ErrRepoExists is the sentinel error wrapped by RepoExistsError.
var ErrRepoExists = errors.New("spec repo already exists")

type (
	// CloneOptions configures Clone.
	CloneOptions struct {
		// Name is the directory name under the repos directory.
		Name string
		// URL is the remote to clone.
		URL GitURL
		// Branch selects a single branch to clone; empty clones the default.
		Branch string
		// Auth overrides credential detection when set.
		Auth transport.AuthMethod
	}

	// RepoExistsError is returned when the clone destination is already taken.
	RepoExistsError struct {
		Name string
	}
)

// Error implements the error interface.
func (e *RepoExistsError) Error() string {
	return fmt.Sprintf("a spec repo named %q already exists", e.Name)
}

// Unwrap returns ErrRepoExists so callers can use errors.Is for programmatic detection.
func (e *RepoExistsError) Unwrap() error { return ErrRepoExists }

// Clone clones a spec repo into the resolver's repos directory and opens it.
// A partially written destination is removed on failure.
func (d *DirResolver) Clone(ctx context.Context, opts CloneOptions) (Repository, error) {
	if opts.Name == "" || !isPlainName(opts.Name) {
		return nil, fmt.Errorf("invalid repo name %q", opts.Name)
	}
	if err := opts.URL.Validate(); err != nil {
		return nil, err
	}

	dest := d.dir.Join(opts.Name)
	if dest.Exists() {
		return nil, &RepoExistsError{Name: opts.Name}
	}
	if err := os.MkdirAll(string(d.dir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create repos directory: %w", err)
	}

	cloneOpts := &git.CloneOptions{
		URL:  opts.URL.String(),
		Auth: opts.Auth,
	}
	if opts.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
		cloneOpts.SingleBranch = true
	}

	if d.logger != nil {
		d.logger.Debug("cloning spec repo", "name", opts.Name, "url", opts.URL, "branch", opts.Branch)
	}
	repo, err := git.PlainCloneContext(ctx, string(dest), false, cloneOpts)
	if err != nil {
		_ = os.RemoveAll(string(dest))
		return nil, fmt.Errorf("clone %s: %w", opts.URL, err)
	}

	return New(opts.Name, dest, repo, d.opts...)
}

// SPDX-License-Identifier: MPL-2.0

package specrepo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/specpush/specpush/pkg/types"
)

// DefaultRemote is the remote pushed to when none is configured.
const DefaultRemote = "origin"

const (
	// Committed means a commit was created.
	Committed CommitOutcome = iota
	// NoChange means nothing under the path differed from HEAD; no commit was made.
	NoChange
)

// ErrDetachedHead is returned by Push when HEAD does not point at a branch.
var ErrDetachedHead = errors.New("HEAD is not on a branch")

type (
	// CommitOutcome tells whether CommitIfChanged created a commit.
	CommitOutcome int

	// CommitResult is the outcome of CommitIfChanged.
	CommitResult struct {
		Outcome CommitOutcome
		// Hash is the new commit, zero for NoChange.
		Hash plumbing.Hash
		// Paths are the repository-relative paths that were staged.
		Paths []string
	}

	// Repository is a local spec repo working tree.
	Repository interface {
		// Name is the directory name of the repo under the repos directory.
		Name() string
		// Root is the absolute path of the working tree.
		Root() types.FilesystemPath
		// FS exposes the working tree for writing podspecs.
		FS() billy.Filesystem
		// RemoteURLs lists the URLs of every configured remote.
		RemoteURLs() ([]GitURL, error)
		// IsClean reports whether the working tree has no changes at all.
		IsClean(ctx context.Context) (bool, error)
		// Pull fetches and merges the upstream branch, returning git's output.
		Pull(ctx context.Context) (string, error)
		// CommitIfChanged stages and commits the changed paths under relPath.
		CommitIfChanged(ctx context.Context, relPath, message string) (CommitResult, error)
		// Push pushes the current branch to the configured remote.
		Push(ctx context.Context) error
		// Branch returns the short name of the checked-out branch.
		Branch() (string, error)
	}

	// Option configures a Repository.
	Option func(*gitRepository)

	gitRepository struct {
		name      string
		root      types.FilesystemPath
		repo      *git.Repository
		fs        billy.Filesystem
		runner    Runner
		remote    string
		signature *object.Signature
		logger    *log.Logger
	}
)

// WithRunner sets the runner used for pull and push.
func WithRunner(r Runner) Option {
	return func(g *gitRepository) { g.runner = r }
}

// WithRemote sets the remote that Push targets.
func WithRemote(remote string) Option {
	return func(g *gitRepository) {
		if remote != "" {
			g.remote = remote
		}
	}
}

// WithSignature sets the commit author. Without it the author is read from
// the git configuration.
func WithSignature(sig *object.Signature) Option {
	return func(g *gitRepository) { g.signature = sig }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *log.Logger) Option {
	return func(g *gitRepository) { g.logger = l }
}

// String returns the string representation of the CommitOutcome.
func (o CommitOutcome) String() string {
	switch o {
	case Committed:
		return "committed"
	case NoChange:
		return "no change"
	default:
		return fmt.Sprintf("CommitOutcome(%d)", int(o))
	}
}

// Open opens the git working tree at root as a spec repo named name.
func Open(name string, root types.FilesystemPath, opts ...Option) (Repository, error) {
	repo, err := git.PlainOpen(string(root))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", root, err)
	}
	return New(name, root, repo, opts...)
}

// New wraps an already opened go-git repository, such as an in-memory one.
func New(name string, root types.FilesystemPath, repo *git.Repository, opts ...Option) (Repository, error) {
	g, err := newRepository(name, root, repo, opts...)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func newRepository(name string, root types.FilesystemPath, repo *git.Repository, opts ...Option) (*gitRepository, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%s has no working tree: %w", root, err)
	}

	g := &gitRepository{
		name:   name,
		root:   root,
		repo:   repo,
		fs:     wt.Filesystem,
		runner: ExecRunner{},
		remote: DefaultRemote,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *gitRepository) Name() string               { return g.name }
func (g *gitRepository) Root() types.FilesystemPath { return g.root }
func (g *gitRepository) FS() billy.Filesystem       { return g.fs }

func (g *gitRepository) RemoteURLs() ([]GitURL, error) {
	remotes, err := g.repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("list remotes: %w", err)
	}

	var urls []GitURL
	for _, r := range remotes {
		for _, u := range r.Config().URLs {
			urls = append(urls, GitURL(u))
		}
	}
	return urls, nil
}

func (g *gitRepository) IsClean(_ context.Context) (bool, error) {
	changed, err := g.changedPaths()
	if err != nil {
		return false, err
	}
	return len(changed) == 0, nil
}

func (g *gitRepository) Pull(ctx context.Context) (string, error) {
	return g.runner.Run(ctx, g.root, "pull")
}

func (g *gitRepository) CommitIfChanged(_ context.Context, relPath, message string) (CommitResult, error) {
	status, err := g.status()
	if err != nil {
		return CommitResult{}, err
	}

	prefix := path.Clean(strings.ReplaceAll(relPath, "\\", "/"))
	var selected []string
	for p, fs := range status {
		if !isChanged(fs) || !isUnder(p, prefix) {
			continue
		}
		selected = append(selected, p)
	}
	if len(selected) == 0 {
		return CommitResult{Outcome: NoChange}, nil
	}
	slices.Sort(selected)

	wt, err := g.repo.Worktree()
	if err != nil {
		return CommitResult{}, err
	}
	for _, p := range selected {
		if status[p].Worktree == git.Deleted {
			_, err = wt.Remove(p)
		} else {
			_, err = wt.Add(p)
		}
		if err != nil {
			return CommitResult{}, fmt.Errorf("stage %s: %w", p, err)
		}
	}

	// go-git commits never run hooks.
	hash, err := wt.Commit(message, &git.CommitOptions{Author: g.signature})
	if err != nil {
		return CommitResult{}, fmt.Errorf("commit %s: %w", prefix, err)
	}
	g.logger.Debug("committed", "repo", g.name, "hash", hash.String(), "paths", selected)

	return CommitResult{Outcome: Committed, Hash: hash, Paths: selected}, nil
}

func (g *gitRepository) Push(ctx context.Context) error {
	branch, err := g.Branch()
	if err != nil {
		return err
	}
	_, err = g.runner.Run(ctx, g.root, "push", g.remote, branch)
	return err
}

func (g *gitRepository) Branch() (string, error) {
	head, err := g.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", ErrDetachedHead
	}
	return head.Name().Short(), nil
}

func (g *gitRepository) status() (git.Status, error) {
	wt, err := g.repo.Worktree()
	if err != nil {
		return nil, err
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("read status of %s: %w", g.root, err)
	}
	return status, nil
}

func (g *gitRepository) changedPaths() ([]string, error) {
	status, err := g.status()
	if err != nil {
		return nil, err
	}

	var changed []string
	for p, fs := range status {
		if isChanged(fs) {
			changed = append(changed, p)
		}
	}
	slices.Sort(changed)
	return changed, nil
}

func isChanged(fs *git.FileStatus) bool {
	return fs.Staging != git.Unmodified || fs.Worktree != git.Unmodified
}

// isUnder reports whether p equals prefix or lies below it, by path
// segment rather than by substring.
func isUnder(p, prefix string) bool {
	if prefix == "." || prefix == "" {
		return true
	}
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

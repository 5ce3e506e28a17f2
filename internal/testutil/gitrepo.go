// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	// FixtureAuthorName is the committer identity written into fixture repos.
	FixtureAuthorName = "Spec Bot"
	// FixtureAuthorEmail pairs with FixtureAuthorName.
	FixtureAuthorEmail = "specs@example.com"
	// InitialCommitMessage is the message of the commit made by InitGitRepo
	// when GitRepoOptions.InitialCommit is set.
	InitialCommitMessage = "Initial commit"
)

// GitRepoOptions configures InitGitRepo.
type GitRepoOptions struct {
	// Remote is the URL of the "origin" remote. Empty means no remote.
	Remote string
	// InitialCommit commits a README so HEAD points at a branch.
	InitialCommit bool
}

// FixtureSignature returns a signature with a fixed timestamp.
func FixtureSignature() *object.Signature {
	return &object.Signature{
		Name:  FixtureAuthorName,
		Email: FixtureAuthorEmail,
		When:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// InitGitRepo creates a git work tree at dir. The repo-local config carries
// a user identity so commits made without an explicit author succeed.
func InitGitRepo(t testing.TB, dir string, opts GitRepoOptions) *git.Repository {
	t.Helper()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit(%s) error = %v", dir, err)
	}

	if opts.Remote != "" {
		if _, err = repo.CreateRemote(&config.RemoteConfig{Name: "origin", URLs: []string{opts.Remote}}); err != nil {
			t.Fatalf("CreateRemote(%s) error = %v", opts.Remote, err)
		}
	}

	cfg, err := repo.Config()
	if err != nil {
		t.Fatalf("Config() error = %v", err)
	}
	cfg.User.Name = FixtureAuthorName
	cfg.User.Email = FixtureAuthorEmail
	if err = repo.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig() error = %v", err)
	}

	if !opts.InitialCommit {
		return repo
	}

	MustWriteFile(t, dir, "README.md", "Specs\n")
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree() error = %v", err)
	}
	if _, err = wt.Add("README.md"); err != nil {
		t.Fatalf("Add(README.md) error = %v", err)
	}
	if _, err = wt.Commit(InitialCommitMessage, &git.CommitOptions{Author: FixtureSignature()}); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	return repo
}

// LastCommitMessage returns the message of the HEAD commit of the repo at dir.
func LastCommitMessage(t testing.TB, dir string) string {
	t.Helper()

	repo, err := git.PlainOpen(dir)
	if err != nil {
		t.Fatalf("PlainOpen(%s) error = %v", dir, err)
	}
	head, err := repo.Head()
	if err != nil {
		t.Fatalf("Head() error = %v", err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		t.Fatalf("CommitObject() error = %v", err)
	}
	return commit.Message
}

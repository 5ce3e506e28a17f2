// SPDX-License-Identifier: MPL-2.0

package specrepo

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/specpush/specpush/pkg/types"
)

type recordingRunner struct {
	mu    sync.Mutex
	calls []string
	out   string
	err   error
}

func (r *recordingRunner) Run(_ context.Context, dir types.FilesystemPath, args ...string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, string(dir)+": "+strings.Join(args, " "))
	return r.out, r.err
}

func testSignature() *object.Signature {
	return &object.Signature{
		Name:  "Spec Bot",
		Email: "specs@example.com",
		When:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// newMemRepository creates an in-memory repo with one initial commit and an
// origin remote.
func newMemRepository(t *testing.T, opts ...Option) (*gitRepository, *git.Repository) {
	t.Helper()

	fs := memfs.New()
	repo, err := git.Init(memory.NewStorage(), fs)
	if err != nil {
		t.Fatalf("git.Init() error = %v", err)
	}
	if _, err = repo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://example.com/acme/Specs.git"},
	}); err != nil {
		t.Fatalf("CreateRemote() error = %v", err)
	}

	if err = util.WriteFile(fs, "README.md", []byte("specs\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}
	if _, err = wt.Add("README.md"); err != nil {
		t.Fatal(err)
	}
	if _, err = wt.Commit("Initial commit", &git.CommitOptions{Author: testSignature()}); err != nil {
		t.Fatalf("initial Commit() error = %v", err)
	}

	opts = append([]Option{WithSignature(testSignature())}, opts...)
	g, err := newRepository("acme", "/repos/acme", repo, opts...)
	if err != nil {
		t.Fatalf("newRepository() error = %v", err)
	}
	return g, repo
}

func commitCount(t *testing.T, repo *git.Repository) int {
	t.Helper()

	iter, err := repo.Log(&git.LogOptions{})
	if err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	n := 0
	_ = iter.ForEach(func(*object.Commit) error {
		n++
		return nil
	})
	return n
}

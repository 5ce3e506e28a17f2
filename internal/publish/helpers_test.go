// SPDX-License-Identifier: MPL-2.0

package publish

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/specpush/specpush/internal/lint"
	"github.com/specpush/specpush/internal/specrepo"
	"github.com/specpush/specpush/pkg/types"
)

const (
	fooPodspec = `name:    "Foo"
version: "1.0"
summary: "Foo does things."
`
	fooPodspecFixed = `name:    "Foo"
version: "1.0"
summary: "Foo does things better."
`
	barPodspec = `name:    "Bar"
version: "2.0.0"
summary: "Bar."
`
	privateRemote = "https://example.com/acme/Specs.git"
	masterRemote  = "https://github.com/CocoaPods/Specs.git"
)

type (
	fakeRunner struct {
		calls   []string
		pullOut string
		pullErr error
		pushErr error
	}

	fakeResolver struct {
		repos   map[string]specrepo.Repository
		lookups []string
	}

	verdict struct {
		err       error
		validated bool
	}

	fakeValidator struct {
		v verdict
	}

	// validatorScript hands out validators with canned verdicts keyed by
	// file base name. Unlisted files validate.
	validatorScript struct {
		verdicts map[string]verdict
		calls    []string
		opts     []lint.Options
	}

	fakeEditor struct {
		text  string
		err   error
		calls int
	}

	recordingReporter struct {
		sections []string
		items    []string
		outputs  []string
		warnings []string
	}

	fixture struct {
		t         *testing.T
		git       *git.Repository
		repo      specrepo.Repository
		runner    *fakeRunner
		resolver  *fakeResolver
		script    *validatorScript
		editor    *fakeEditor
		reporter  *recordingReporter
		workDir   types.FilesystemPath
		publisher *Publisher
	}
)

func (r *fakeRunner) Run(_ context.Context, _ types.FilesystemPath, args ...string) (string, error) {
	r.calls = append(r.calls, strings.Join(args, " "))
	switch args[0] {
	case "pull":
		return r.pullOut, r.pullErr
	case "push":
		return "", r.pushErr
	}
	return "", nil
}

func (r *fakeRunner) count(verb string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, verb) {
			n++
		}
	}
	return n
}

func (f *fakeResolver) Lookup(_ context.Context, name string) (specrepo.Repository, error) {
	f.lookups = append(f.lookups, name)
	if repo, ok := f.repos[name]; ok {
		return repo, nil
	}
	return nil, &specrepo.RepoNotFoundError{Query: name}
}

func (v *fakeValidator) Validate(context.Context) error { return v.v.err }
func (v *fakeValidator) Validated() bool                { return v.v.err == nil && v.v.validated }
func (v *fakeValidator) Results() []lint.Result         { return nil }

func (s *validatorScript) factory(file types.FilesystemPath, _ []string, opts lint.Options) lint.Validator {
	s.calls = append(s.calls, file.Base())
	s.opts = append(s.opts, opts)
	v, ok := s.verdicts[file.Base()]
	if !ok {
		v = verdict{validated: true}
	}
	return &fakeValidator{v: v}
}

func (e *fakeEditor) Edit(context.Context, string) (string, error) {
	e.calls++
	return e.text, e.err
}

func (r *recordingReporter) Section(s string) { r.sections = append(r.sections, s) }
func (r *recordingReporter) Item(s string)    { r.items = append(r.items, s) }
func (r *recordingReporter) Output(s string)  { r.outputs = append(r.outputs, s) }
func (r *recordingReporter) Warn(s string)    { r.warnings = append(r.warnings, s) }

func testSignature() *object.Signature {
	return &object.Signature{Name: "Spec Bot", Email: "specs@example.com", When: time.Unix(1700000000, 0).UTC()}
}

// newFixture builds a publisher over an in-memory spec repo named "acme"
// whose origin is remoteURL.
func newFixture(t *testing.T, remoteURL string) *fixture {
	t.Helper()

	fs := memfs.New()
	repo, err := git.Init(memory.NewStorage(), fs)
	if err != nil {
		t.Fatalf("git.Init() error = %v", err)
	}
	if _, err = repo.CreateRemote(&config.RemoteConfig{Name: "origin", URLs: []string{remoteURL}}); err != nil {
		t.Fatal(err)
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
		t.Fatal(err)
	}

	f := &fixture{
		t:        t,
		git:      repo,
		runner:   &fakeRunner{},
		script:   &validatorScript{verdicts: map[string]verdict{}},
		editor:   &fakeEditor{},
		reporter: &recordingReporter{},
		workDir:  types.FilesystemPath(t.TempDir()),
	}
	f.repo, err = specrepo.New("acme", "/repos/acme", repo,
		specrepo.WithRunner(f.runner), specrepo.WithSignature(testSignature()))
	if err != nil {
		t.Fatal(err)
	}
	f.resolver = &fakeResolver{repos: map[string]specrepo.Repository{"acme": f.repo}}
	f.publisher = New(Dependencies{
		Resolver:   f.resolver,
		Validators: f.script.factory,
		Editor:     f.editor,
		Reporter:   f.reporter,
	})
	return f
}

func (f *fixture) writeSpec(name, content string) types.FilesystemPath {
	f.t.Helper()
	p := filepath.Join(string(f.workDir), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		f.t.Fatal(err)
	}
	return types.FilesystemPath(p)
}

// seed commits content at path in the spec repo.
func (f *fixture) seed(path, content string) {
	f.t.Helper()
	if err := util.WriteFile(f.repo.FS(), path, []byte(content), 0o644); err != nil {
		f.t.Fatal(err)
	}
	if _, err := f.repo.CommitIfChanged(f.t.Context(), path, "seed "+path); err != nil {
		f.t.Fatal(err)
	}
}

func (f *fixture) request() Request {
	return Request{Repo: "acme", WorkingDir: f.workDir}
}

func (f *fixture) commits() []string {
	f.t.Helper()
	iter, err := f.git.Log(&git.LogOptions{})
	if err != nil {
		f.t.Fatal(err)
	}
	var msgs []string
	_ = iter.ForEach(func(c *object.Commit) error {
		msgs = append(msgs, c.Message)
		return nil
	})
	return msgs
}

func (f *fixture) readRepoFile(path string) string {
	f.t.Helper()
	data, err := util.ReadFile(f.repo.FS(), path)
	if err != nil {
		f.t.Fatalf("read %s from repo: %v", path, err)
	}
	return string(data)
}
